package repository

import (
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type TestScoreRepository struct {
	DB *gorm.DB
}

func NewTestScoreRepository(db *gorm.DB) *TestScoreRepository {
	return &TestScoreRepository{DB: db}
}

func (r *TestScoreRepository) Create(score *model.TestScore) error {
	return r.DB.Create(score).Error
}

func (r *TestScoreRepository) FindByID(tenantID string, id uint) (*model.TestScore, error) {
	var score model.TestScore
	err := r.DB.Where("tenant_id = ?", tenantID).First(&score, id).Error
	return &score, err
}

func (r *TestScoreRepository) FindByStudent(tenantID string, studentID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	err := r.DB.Where("tenant_id = ? AND student_id = ?", tenantID, studentID).
		Order("test_date DESC").
		Find(&scores).Error
	return scores, err
}

func (r *TestScoreRepository) Update(score *model.TestScore) error {
	return r.DB.Save(score).Error
}

func (r *TestScoreRepository) Delete(tenantID string, id uint) error {
	return r.DB.Where("tenant_id = ?", tenantID).
		Delete(&model.TestScore{}, id).Error
}
