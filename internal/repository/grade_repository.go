package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type GradeRepository struct {
	DB *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{DB: db}
}

// Upsert writes the grade for its (course, semester) key, replacing any
// existing record. One active grade per key.
func (r *GradeRepository) Upsert(grade *model.Grade) error {
	var existing model.Grade
	err := r.DB.Where("tenant_id = ? AND course_id = ? AND semester = ?",
		grade.TenantID, grade.CourseID, grade.Semester).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(grade).Error
	}
	if err != nil {
		return err
	}

	existing.LetterGrade = grade.LetterGrade
	existing.GPAPoints = grade.GPAPoints
	if err := r.DB.Save(&existing).Error; err != nil {
		return err
	}
	*grade = existing
	return nil
}

func (r *GradeRepository) FindByCourse(tenantID string, courseID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.DB.Where("tenant_id = ? AND course_id = ?", tenantID, courseID).
		Find(&grades).Error
	return grades, err
}

func (r *GradeRepository) FindByCourseIDs(tenantID string, courseIDs []uint) ([]model.Grade, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	var grades []model.Grade
	err := r.DB.Where("tenant_id = ? AND course_id IN ?", tenantID, courseIDs).
		Order("updated_at").
		Find(&grades).Error
	return grades, err
}

func (r *GradeRepository) DeleteByCourse(tenantID string, courseID uint, semester string) error {
	q := r.DB.Where("tenant_id = ? AND course_id = ?", tenantID, courseID)
	if semester != "" {
		q = q.Where("semester = ?", semester)
	}
	return q.Delete(&model.Grade{}).Error
}

func (r *GradeRepository) Update(grade *model.Grade) error {
	return r.DB.Save(grade).Error
}
