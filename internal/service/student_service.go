package service

import (
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
)

type StudentService struct {
	StudentRepo *repository.StudentRepository
}

func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{StudentRepo: studentRepo}
}

func (s *StudentService) Create(tenantID string, student *model.Student) error {
	student.TenantID = tenantID
	if student.GPAScale == "" {
		student.GPAScale = model.Scale40
	}
	if student.MinCreditsForGraduation == 0 {
		student.MinCreditsForGraduation = model.DefaultMinCredits
	}
	return s.StudentRepo.Create(student)
}

func (s *StudentService) Get(tenantID string, id uint) (*model.Student, error) {
	return s.StudentRepo.FindByID(tenantID, id)
}

func (s *StudentService) List(tenantID string) ([]model.Student, error) {
	return s.StudentRepo.FindByTenant(tenantID)
}

// Update edits identity and GPA settings. Changing GPAScale does not
// touch stored grade points; callers repair stale points explicitly
// through GradeService.RecalculatePoints.
func (s *StudentService) Update(tenantID string, id uint, updated *model.Student) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	student.FirstName = updated.FirstName
	student.LastName = updated.LastName
	student.GraduationYear = updated.GraduationYear
	if updated.GPAScale != "" {
		student.GPAScale = updated.GPAScale
	}
	if updated.MinCreditsForGraduation > 0 {
		student.MinCreditsForGraduation = updated.MinCreditsForGraduation
	}

	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(tenantID string, id uint) error {
	if _, err := s.StudentRepo.FindByID(tenantID, id); err != nil {
		return err
	}
	return s.StudentRepo.Delete(tenantID, id)
}
