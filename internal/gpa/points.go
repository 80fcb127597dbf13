// Package gpa holds the transcript math: letter-grade point resolution,
// credit-weighted GPA aggregation and graduation-requirement progress.
// Everything here is pure computation over a snapshot the caller already
// fetched; there is no state, I/O or caching.
package gpa

import "github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"

var basePoints = map[model.LetterGrade]float64{
	model.GradeA: 4.0,
	model.GradeB: 3.0,
	model.GradeC: 2.0,
	model.GradeD: 1.0,
	model.GradeF: 0.0,
}

// honorsBonus is only ever granted on the 5.0 scale. A 4.0-scale course
// can never receive weighted credit; families who want Honors/AP weighting
// pick the 5.0 scale on the student.
const honorsBonus = 1.0

// IsHonorsOrAP reports whether a course level qualifies for the weighted
// bonus. Dual Enrollment and College Prep do not qualify.
func IsHonorsOrAP(level model.CourseLevel) bool {
	return level == model.LevelHonors || level == model.LevelAdvancedPlacement
}

// Points resolves a letter grade to its quality-point value under the
// given scale. An F earns no bonus regardless of level. The result is
// capped at the numeric value of the scale.
func Points(letter model.LetterGrade, scale model.GPAScale, honorsOrAP bool) float64 {
	points := basePoints[letter]

	if scale == model.Scale50 && honorsOrAP && letter != model.GradeF {
		points += honorsBonus
	}

	limit := 4.0
	if scale == model.Scale50 {
		limit = 5.0
	}
	if points > limit {
		points = limit
	}
	return points
}
