package service

import (
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type CourseService struct {
	CourseRepo  *repository.CourseRepository
	StudentRepo *repository.StudentRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, studentRepo *repository.StudentRepository) *CourseService {
	return &CourseService{
		CourseRepo:  courseRepo,
		StudentRepo: studentRepo,
	}
}

func (s *CourseService) Create(tenantID string, studentID uint, course *model.Course) error {
	if _, err := s.StudentRepo.FindByID(tenantID, studentID); err != nil {
		return util.ErrStudentNotFound
	}
	if !util.ValidAcademicYear(course.AcademicYear) {
		return util.ErrInvalidAcademicYear
	}

	course.TenantID = tenantID
	course.StudentID = studentID
	if course.CreditHours <= 0 {
		course.CreditHours = 1.0
	}
	if course.Level == "" {
		course.Level = model.LevelRegular
	}
	return s.CourseRepo.Create(course)
}

func (s *CourseService) Get(tenantID string, id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(tenantID, id)
}

func (s *CourseService) ListByStudent(tenantID string, studentID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByStudent(tenantID, studentID)
}

func (s *CourseService) Update(tenantID string, id uint, updated *model.Course) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if updated.AcademicYear != "" {
		if !util.ValidAcademicYear(updated.AcademicYear) {
			return nil, util.ErrInvalidAcademicYear
		}
		course.AcademicYear = updated.AcademicYear
	}
	if updated.Name != "" {
		course.Name = updated.Name
	}
	if updated.Subject != "" {
		course.Subject = updated.Subject
	}
	if updated.Level != "" {
		course.Level = updated.Level
	}
	if updated.CreditHours > 0 {
		course.CreditHours = updated.CreditHours
	}
	course.Description = updated.Description

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(tenantID string, id uint) error {
	if _, err := s.CourseRepo.FindByID(tenantID, id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(tenantID, id)
}
