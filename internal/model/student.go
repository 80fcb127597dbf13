package model

type GPAScale string

const (
	Scale40 GPAScale = "4.0"
	Scale50 GPAScale = "5.0"
)

// DefaultMinCredits matches the total of the graduation requirement table.
const DefaultMinCredits = 24.0

// swagger:model Student
type Student struct {
	TenantModel
	FirstName               string   `gorm:"size:100;not null" json:"firstName"`
	LastName                string   `gorm:"size:100;not null" json:"lastName"`
	GraduationYear          int      `gorm:"not null" json:"graduationYear"`
	GPAScale                GPAScale `gorm:"size:3;default:'4.0'" json:"gpaScale"`
	MinCreditsForGraduation float64  `gorm:"default:24.0" json:"minCreditsForGraduation"`
}

func (Student) TableName() string {
	return "students"
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
