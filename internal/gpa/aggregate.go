package gpa

import (
	"math"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

// CourseGrade pairs a course with its current grade, nil when the course
// is still in progress.
type CourseGrade struct {
	Course model.Course `json:"course"`
	Grade  *model.Grade `json:"grade"`
}

// YearSummary is the GPA and earned credit total for one academic year,
// computed over graded courses only.
type YearSummary struct {
	GPA     float64 `json:"gpa"`
	Credits float64 `json:"credits"`
}

// Transcript is the aggregate a renderer or dashboard consumes.
//
// TotalCredits counts every course, graded or not (the student's academic
// load). The GPA denominators and TotalQualityPoints only count graded
// courses. CumulativeGPA and per-year GPAs are rounded to two decimals;
// TotalQualityPoints is left unrounded for display.
type Transcript struct {
	CoursesByYear      map[string][]CourseGrade `json:"coursesByYear"`
	GPAByYear          map[string]YearSummary   `json:"gpaByYear"`
	CumulativeGPA      float64                  `json:"cumulativeGPA"`
	TotalCredits       float64                  `json:"totalCredits"`
	TotalQualityPoints float64                  `json:"totalQualityPoints"`
}

// Round2 rounds to two decimal places, the display precision for every
// GPA value.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Aggregate computes the transcript metrics for one student's snapshot.
// It is deterministic and order-independent: results depend only on the
// grouping keys, never on the input ordering. An empty snapshot yields
// zero values, not an error.
func Aggregate(records []CourseGrade) *Transcript {
	t := &Transcript{
		CoursesByYear: make(map[string][]CourseGrade),
		GPAByYear:     make(map[string]YearSummary),
	}

	type yearTotals struct {
		qualityPoints float64
		credits       float64
	}
	byYear := make(map[string]*yearTotals)

	var totalQuality, gradedCredits float64

	for _, rec := range records {
		year := rec.Course.AcademicYear
		t.CoursesByYear[year] = append(t.CoursesByYear[year], rec)
		t.TotalCredits += rec.Course.CreditHours

		if rec.Grade == nil {
			continue
		}

		quality := rec.Grade.GPAPoints * rec.Course.CreditHours
		totalQuality += quality
		gradedCredits += rec.Course.CreditHours

		yt := byYear[year]
		if yt == nil {
			yt = &yearTotals{}
			byYear[year] = yt
		}
		yt.qualityPoints += quality
		yt.credits += rec.Course.CreditHours
	}

	// Years with no graded courses are omitted rather than reported as 0/0.
	for year, yt := range byYear {
		if yt.credits == 0 {
			continue
		}
		t.GPAByYear[year] = YearSummary{
			GPA:     Round2(yt.qualityPoints / yt.credits),
			Credits: yt.credits,
		}
	}

	t.TotalQualityPoints = totalQuality
	if gradedCredits > 0 {
		t.CumulativeGPA = Round2(totalQuality / gradedCredits)
	}

	return t
}

// EarnedCreditsBySubject sums graded credit hours per subject. In-progress
// courses have not been earned yet and are excluded.
func EarnedCreditsBySubject(records []CourseGrade) map[model.Subject]float64 {
	earned := make(map[model.Subject]float64)
	for _, rec := range records {
		if rec.Grade == nil {
			continue
		}
		earned[rec.Course.Subject] += rec.Course.CreditHours
	}
	return earned
}
