package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model
type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TenantModel is the base for every row owned by a guardian household.
// Repositories must always filter on TenantID; a row is never visible
// across tenants.
type TenantModel struct {
	BaseModel
	TenantID string `gorm:"index;type:varchar(36);not null" json:"-"`
}

func GenerateTenantID() string {
	return uuid.New().String()
}
