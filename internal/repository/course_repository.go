package repository

import (
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(tenantID string, id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("tenant_id = ?", tenantID).First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindByStudent(tenantID string, studentID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("tenant_id = ? AND student_id = ?", tenantID, studentID).
		Order("academic_year, name").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) CountByStudent(tenantID string, studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).
		Where("tenant_id = ? AND student_id = ?", tenantID, studentID).
		Count(&count).Error
	return count, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete removes the course along with its grades.
func (r *CourseRepository) Delete(tenantID string, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ? AND course_id = ?", tenantID, id).
			Delete(&model.Grade{}).Error; err != nil {
			return err
		}
		return tx.Where("tenant_id = ?", tenantID).
			Delete(&model.Course{}, id).Error
	})
}
