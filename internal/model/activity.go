package model

type ActivityType string

const (
	ActivityExtracurricular ActivityType = "extracurricular"
	ActivityAward           ActivityType = "award"
	ActivityVolunteer       ActivityType = "volunteer"
	ActivityEmployment      ActivityType = "employment"
)

// Activity covers the non-academic transcript sections: clubs, awards,
// volunteer work and jobs.
// swagger:model Activity
type Activity struct {
	TenantModel
	StudentID    uint         `gorm:"index;not null" json:"studentId"`
	Type         ActivityType `gorm:"size:20;not null" json:"type"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description,omitempty"`
	AcademicYear string       `gorm:"size:9" json:"academicYear,omitempty"`
	Hours        float64      `gorm:"default:0" json:"hours,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}
