package service

import (
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/gpa"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
)

type GradeService struct {
	GradeRepo   *repository.GradeRepository
	CourseRepo  *repository.CourseRepository
	StudentRepo *repository.StudentRepository
}

func NewGradeService(
	gradeRepo *repository.GradeRepository,
	courseRepo *repository.CourseRepository,
	studentRepo *repository.StudentRepository,
) *GradeService {
	return &GradeService{
		GradeRepo:   gradeRepo,
		CourseRepo:  courseRepo,
		StudentRepo: studentRepo,
	}
}

// Record upserts the grade for a course+semester. Quality points are
// resolved from the student's scale and the course level here, at write
// time, and stored on the row. Later edits to the scale or level do not
// rewrite existing grades; see RecalculatePoints.
func (s *GradeService) Record(tenantID string, courseID uint, letter model.LetterGrade, semester string) (*model.Grade, error) {
	course, err := s.CourseRepo.FindByID(tenantID, courseID)
	if err != nil {
		return nil, err
	}
	student, err := s.StudentRepo.FindByID(tenantID, course.StudentID)
	if err != nil {
		return nil, err
	}

	if semester == "" {
		semester = model.DefaultSemester
	}

	grade := &model.Grade{
		TenantModel: model.TenantModel{TenantID: tenantID},
		CourseID:    courseID,
		LetterGrade: letter,
		GPAPoints:   gpa.Points(letter, student.GPAScale, gpa.IsHonorsOrAP(course.Level)),
		Semester:    semester,
	}

	if err := s.GradeRepo.Upsert(grade); err != nil {
		return nil, err
	}
	return grade, nil
}

func (s *GradeService) Delete(tenantID string, courseID uint, semester string) error {
	if _, err := s.CourseRepo.FindByID(tenantID, courseID); err != nil {
		return err
	}
	return s.GradeRepo.DeleteByCourse(tenantID, courseID, semester)
}

// RecalculatePoints re-resolves stored quality points for every grade of
// a student against the current scale and course levels. This is the
// explicit repair path for points left stale by a scale or level change;
// it rewrites history, so it only runs when a guardian asks for it.
func (s *GradeService) RecalculatePoints(tenantID string, studentID uint) (int, error) {
	student, err := s.StudentRepo.FindByID(tenantID, studentID)
	if err != nil {
		return 0, err
	}
	courses, err := s.CourseRepo.FindByStudent(tenantID, studentID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, course := range courses {
		grades, err := s.GradeRepo.FindByCourse(tenantID, course.ID)
		if err != nil {
			return updated, err
		}
		for i := range grades {
			points := gpa.Points(grades[i].LetterGrade, student.GPAScale, gpa.IsHonorsOrAP(course.Level))
			if points == grades[i].GPAPoints {
				continue
			}
			grades[i].GPAPoints = points
			if err := s.GradeRepo.Update(&grades[i]); err != nil {
				return updated, err
			}
			updated++
		}
	}
	return updated, nil
}
