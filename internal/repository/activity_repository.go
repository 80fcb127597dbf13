package repository

import (
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindByID(tenantID string, id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.Where("tenant_id = ?", tenantID).First(&activity, id).Error
	return &activity, err
}

func (r *ActivityRepository) FindByStudent(tenantID string, studentID uint) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Where("tenant_id = ? AND student_id = ?", tenantID, studentID).
		Order("academic_year, title").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) Update(activity *model.Activity) error {
	return r.DB.Save(activity).Error
}

func (r *ActivityRepository) Delete(tenantID string, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).
		Delete(&model.Activity{}, id).Error
}
