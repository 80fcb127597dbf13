package model

import "time"

type GuardianRole string

const (
	PrimaryGuardian GuardianRole = "primary_guardian"
	Guardian        GuardianRole = "guardian"
	SupportAdmin    GuardianRole = "support_admin"
)

// GuardianAccount is the authenticated user. The first account registered
// for a household becomes the primary guardian and owns billing; invited
// accounts join the same tenant with the plain guardian role.
// swagger:model GuardianAccount
type GuardianAccount struct {
	BaseModel
	TenantID  string       `gorm:"index;type:varchar(36);not null" json:"-"`
	Name      string       `gorm:"size:100;not null" json:"name"`
	Email     string       `gorm:"size:100;unique;not null" json:"email"`
	Password  string       `gorm:"size:100;not null" json:"-"`
	Role      GuardianRole `gorm:"size:20;default:'guardian'" json:"role"`
	LastLogin time.Time    `json:"lastLogin"`
}

func (GuardianAccount) TableName() string {
	return "guardian_accounts"
}
