package service

import (
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/gpa"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/monitoring"
)

type TranscriptService struct {
	StudentRepo   *repository.StudentRepository
	CourseRepo    *repository.CourseRepository
	GradeRepo     *repository.GradeRepository
	TestScoreRepo *repository.TestScoreRepository
	ActivityRepo  *repository.ActivityRepository
}

func NewTranscriptService(
	studentRepo *repository.StudentRepository,
	courseRepo *repository.CourseRepository,
	gradeRepo *repository.GradeRepository,
	testScoreRepo *repository.TestScoreRepository,
	activityRepo *repository.ActivityRepository,
) *TranscriptService {
	return &TranscriptService{
		StudentRepo:   studentRepo,
		CourseRepo:    courseRepo,
		GradeRepo:     gradeRepo,
		TestScoreRepo: testScoreRepo,
		ActivityRepo:  activityRepo,
	}
}

// TranscriptData is the full document payload handed to the renderer or
// dashboard: identity, the computed aggregate, requirements progress and
// the reported-but-not-computed sections.
type TranscriptData struct {
	Student      *model.Student         `json:"student"`
	Status       gpa.TranscriptStatus   `json:"status"`
	Transcript   *gpa.Transcript        `json:"transcript"`
	Requirements gpa.RequirementsReport `json:"requirements"`
	TestScores   []model.TestScore      `json:"testScores"`
	Activities   []model.Activity       `json:"activities"`

	// MeetsOwnMinimum compares earned credits against the student's own
	// editable minimum, a separate number from the fixed 24-credit
	// distribution table.
	MeetsOwnMinimum bool `json:"meetsOwnMinimum"`
}

// Build assembles the transcript for one student from a fresh snapshot.
// It recomputes everything on every call; results depend only on the
// stored rows.
func (s *TranscriptService) Build(tenantID string, studentID uint) (*TranscriptData, error) {
	student, err := s.StudentRepo.FindByID(tenantID, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.courseGradePairs(tenantID, studentID)
	if err != nil {
		return nil, err
	}

	testScores, err := s.TestScoreRepo.FindByStudent(tenantID, studentID)
	if err != nil {
		return nil, err
	}
	activities, err := s.ActivityRepo.FindByStudent(tenantID, studentID)
	if err != nil {
		return nil, err
	}

	transcript := gpa.Aggregate(records)
	requirements := gpa.EvaluateRequirements(records)
	monitoring.TranscriptComputations.Inc()

	return &TranscriptData{
		Student:         student,
		Status:          gpa.Status(len(records)),
		Transcript:      transcript,
		Requirements:    requirements,
		TestScores:      testScores,
		Activities:      activities,
		MeetsOwnMinimum: requirements.TotalEarned >= student.MinCreditsForGraduation,
	}, nil
}

// Requirements evaluates graduation progress without assembling the full
// document.
func (s *TranscriptService) Requirements(tenantID string, studentID uint) (*gpa.RequirementsReport, error) {
	if _, err := s.StudentRepo.FindByID(tenantID, studentID); err != nil {
		return nil, err
	}
	records, err := s.courseGradePairs(tenantID, studentID)
	if err != nil {
		return nil, err
	}
	report := gpa.EvaluateRequirements(records)
	return &report, nil
}

// courseGradePairs fetches the snapshot and pairs each course with its
// current grade. When a course has several semester grades the most
// recently updated one is the current grade for GPA purposes.
func (s *TranscriptService) courseGradePairs(tenantID string, studentID uint) ([]gpa.CourseGrade, error) {
	courses, err := s.CourseRepo.FindByStudent(tenantID, studentID)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]uint, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	grades, err := s.GradeRepo.FindByCourseIDs(tenantID, courseIDs)
	if err != nil {
		return nil, err
	}

	return PairCourseGrades(courses, grades), nil
}

// PairCourseGrades matches grades to their courses. Grades are expected
// ordered by update time ascending, so the last write per course wins.
func PairCourseGrades(courses []model.Course, grades []model.Grade) []gpa.CourseGrade {
	byCourse := make(map[uint]*model.Grade, len(grades))
	for i := range grades {
		byCourse[grades[i].CourseID] = &grades[i]
	}

	records := make([]gpa.CourseGrade, len(courses))
	for i, course := range courses {
		records[i] = gpa.CourseGrade{
			Course: course,
			Grade:  byCourse[course.ID],
		}
	}
	return records
}
