package model

type Subject string

const (
	SubjectEnglish           Subject = "English"
	SubjectMathematics       Subject = "Mathematics"
	SubjectScience           Subject = "Science"
	SubjectComputerScience   Subject = "Computer Science"
	SubjectSocialStudies     Subject = "Social Studies"
	SubjectForeignLanguage   Subject = "Foreign Language"
	SubjectFineArts          Subject = "Fine Arts"
	SubjectPhysicalEducation Subject = "Physical Education"
	SubjectCareerTechnical   Subject = "Career/Technical Education"
	SubjectElective          Subject = "Elective"
	SubjectOther             Subject = "Other"
)

type CourseLevel string

const (
	LevelRegular            CourseLevel = "Regular"
	LevelHonors             CourseLevel = "Honors"
	LevelAdvancedPlacement  CourseLevel = "Advanced Placement"
	LevelDualEnrollment     CourseLevel = "Dual Enrollment"
	LevelCollegePrep        CourseLevel = "College Prep"
)

// swagger:model Course
type Course struct {
	TenantModel
	StudentID    uint        `gorm:"index;not null" json:"studentId"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Subject      Subject     `gorm:"size:30;not null" json:"subject"`
	Level        CourseLevel `gorm:"size:30;default:'Regular'" json:"level"`
	CreditHours  float64     `gorm:"default:1.0" json:"creditHours"`
	AcademicYear string      `gorm:"size:9;not null" json:"academicYear"` // "YYYY-YYYY"
	Description  string      `gorm:"type:text" json:"description,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
