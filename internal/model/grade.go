package model

type LetterGrade string

const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeF LetterGrade = "F"
)

// DefaultSemester is the semester designation used when none is given;
// a full-year course carries a single grade record.
const DefaultSemester = "Full Year"

// Grade is the recorded result for one course+semester. GPAPoints is
// resolved from (letter, scale, level) when the grade is written and
// stored as-is; it is not re-derived on read. Historical transcripts stay
// stable even if the student's scale or the course level changes later.
// swagger:model Grade
type Grade struct {
	TenantModel
	CourseID    uint        `gorm:"index;not null;uniqueIndex:idx_course_semester" json:"courseId"`
	LetterGrade LetterGrade `gorm:"size:1;not null" json:"letterGrade"`
	GPAPoints   float64     `gorm:"not null" json:"gpaPoints"`
	Semester    string      `gorm:"size:50;default:'Full Year';uniqueIndex:idx_course_semester" json:"semester"`
}

func (Grade) TableName() string {
	return "grades"
}
