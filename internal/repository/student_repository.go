package repository

import (
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(tenantID string, id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("tenant_id = ?", tenantID).First(&student, id).Error
	return &student, err
}

func (r *StudentRepository) FindByTenant(tenantID string) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Where("tenant_id = ?", tenantID).
		Order("graduation_year, last_name").
		Find(&students).Error
	return students, err
}

func (r *StudentRepository) CountByTenant(tenantID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}

// Delete removes the student and all dependent academic rows in one
// transaction. Soft deletes throughout.
func (r *StudentRepository) Delete(tenantID string, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var courseIDs []uint
		if err := tx.Model(&model.Course{}).
			Where("tenant_id = ? AND student_id = ?", tenantID, id).
			Pluck("id", &courseIDs).Error; err != nil {
			return err
		}

		if len(courseIDs) > 0 {
			if err := tx.Where("course_id IN ?", courseIDs).
				Delete(&model.Grade{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tenant_id = ? AND student_id = ?", tenantID, id).
				Delete(&model.Course{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("tenant_id = ? AND student_id = ?", tenantID, id).
			Delete(&model.TestScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ? AND student_id = ?", tenantID, id).
			Delete(&model.Activity{}).Error; err != nil {
			return err
		}

		return tx.Where("tenant_id = ?", tenantID).
			Delete(&model.Student{}, id).Error
	})
}
