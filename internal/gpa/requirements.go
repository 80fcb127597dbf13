package gpa

import (
	"math"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

// RequirementCategory is a bucket in the graduation distribution table.
// Subjects outside the seven named categories roll up into Electives.
type RequirementCategory string

const (
	ReqEnglish           RequirementCategory = "English"
	ReqMathematics       RequirementCategory = "Mathematics"
	ReqScience           RequirementCategory = "Science"
	ReqSocialStudies     RequirementCategory = "Social Studies"
	ReqForeignLanguage   RequirementCategory = "Foreign Language"
	ReqFineArts          RequirementCategory = "Fine Arts"
	ReqPhysicalEducation RequirementCategory = "Physical Education"
	ReqElectives         RequirementCategory = "Electives"
)

// requiredCredits is the fixed 24-credit distribution. It is independent
// of the per-student MinCreditsForGraduation field, which is a separate
// editable overall minimum used for simple pass/fail display.
var requiredCredits = map[RequirementCategory]float64{
	ReqEnglish:           4,
	ReqMathematics:       4,
	ReqScience:           3,
	ReqSocialStudies:     3,
	ReqForeignLanguage:   2,
	ReqFineArts:          1,
	ReqPhysicalEducation: 1,
	ReqElectives:         6,
}

// TotalRequiredCredits is the sum of the requirement table.
const TotalRequiredCredits = 24.0

// CategoryFor maps a course subject onto its requirement bucket.
func CategoryFor(subject model.Subject) RequirementCategory {
	switch subject {
	case model.SubjectEnglish:
		return ReqEnglish
	case model.SubjectMathematics:
		return ReqMathematics
	case model.SubjectScience:
		return ReqScience
	case model.SubjectSocialStudies:
		return ReqSocialStudies
	case model.SubjectForeignLanguage:
		return ReqForeignLanguage
	case model.SubjectFineArts:
		return ReqFineArts
	case model.SubjectPhysicalEducation:
		return ReqPhysicalEducation
	default:
		return ReqElectives
	}
}

type RequirementProgress struct {
	Required float64 `json:"required"`
	Earned   float64 `json:"earned"`
}

type RequirementsReport struct {
	Subjects          map[RequirementCategory]RequirementProgress `json:"requirements"`
	TotalRequired     float64                                     `json:"totalRequired"`
	TotalEarned       float64                                     `json:"totalEarned"`
	MeetsRequirements bool                                        `json:"meetsRequirements"`
	CreditsRemaining  float64                                     `json:"creditsRemaining"`
	Progress          float64                                     `json:"progress"`
}

// EvaluateRequirements compares earned (graded) credits against the fixed
// distribution table. A bucket may exceed its requirement and the excess
// still counts toward the overall total; only the displayed percentage is
// clamped at 100.
func EvaluateRequirements(records []CourseGrade) RequirementsReport {
	report := RequirementsReport{
		Subjects:      make(map[RequirementCategory]RequirementProgress, len(requiredCredits)),
		TotalRequired: TotalRequiredCredits,
	}

	earned := make(map[RequirementCategory]float64)
	for _, rec := range records {
		if rec.Grade == nil {
			continue
		}
		earned[CategoryFor(rec.Course.Subject)] += rec.Course.CreditHours
	}

	for category, required := range requiredCredits {
		report.Subjects[category] = RequirementProgress{
			Required: required,
			Earned:   earned[category],
		}
		report.TotalEarned += earned[category]
	}

	report.MeetsRequirements = report.TotalEarned >= report.TotalRequired
	report.CreditsRemaining = math.Max(0, report.TotalRequired-report.TotalEarned)
	report.Progress = math.Min(100, report.TotalEarned/report.TotalRequired*100)

	return report
}
