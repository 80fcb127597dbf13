package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

type GuardianRepository struct {
	DB *gorm.DB
}

func NewGuardianRepository(db *gorm.DB) *GuardianRepository {
	return &GuardianRepository{DB: db}
}

func (r *GuardianRepository) Create(guardian *model.GuardianAccount) error {
	return r.DB.Create(guardian).Error
}

func (r *GuardianRepository) FindByID(id uint) (*model.GuardianAccount, error) {
	var guardian model.GuardianAccount
	err := r.DB.First(&guardian, id).Error
	return &guardian, err
}

func (r *GuardianRepository) FindByEmail(email string) (*model.GuardianAccount, error) {
	var guardian model.GuardianAccount
	err := r.DB.Where("email = ?", email).First(&guardian).Error
	return &guardian, err
}

func (r *GuardianRepository) FindByTenant(tenantID string) ([]model.GuardianAccount, error) {
	var guardians []model.GuardianAccount
	err := r.DB.Where("tenant_id = ?", tenantID).Find(&guardians).Error
	return guardians, err
}

func (r *GuardianRepository) Update(guardian *model.GuardianAccount) error {
	return r.DB.Save(guardian).Error
}

func (r *GuardianRepository) UpdateLastLogin(id uint) error {
	return r.DB.Model(&model.GuardianAccount{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
