package service

import (
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	StudentRepo  *repository.StudentRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository, studentRepo *repository.StudentRepository) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		StudentRepo:  studentRepo,
	}
}

func (s *ActivityService) Create(tenantID string, studentID uint, activity *model.Activity) error {
	if _, err := s.StudentRepo.FindByID(tenantID, studentID); err != nil {
		return util.ErrStudentNotFound
	}
	if activity.AcademicYear != "" && !util.ValidAcademicYear(activity.AcademicYear) {
		return util.ErrInvalidAcademicYear
	}
	activity.TenantID = tenantID
	activity.StudentID = studentID
	return s.ActivityRepo.Create(activity)
}

func (s *ActivityService) ListByStudent(tenantID string, studentID uint) ([]model.Activity, error) {
	return s.ActivityRepo.FindByStudent(tenantID, studentID)
}

func (s *ActivityService) Update(tenantID string, id uint, updated *model.Activity) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if updated.Type != "" {
		activity.Type = updated.Type
	}
	if updated.Title != "" {
		activity.Title = updated.Title
	}
	if updated.AcademicYear != "" {
		if !util.ValidAcademicYear(updated.AcademicYear) {
			return nil, util.ErrInvalidAcademicYear
		}
		activity.AcademicYear = updated.AcademicYear
	}
	activity.Description = updated.Description
	activity.Hours = updated.Hours

	if err := s.ActivityRepo.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(tenantID string, id uint) error {
	if _, err := s.ActivityRepo.FindByID(tenantID, id); err != nil {
		return err
	}
	return s.ActivityRepo.Delete(tenantID, id)
}
