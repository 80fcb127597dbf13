package gpa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

func course(subject model.Subject, credits float64, year string) model.Course {
	return model.Course{
		Subject:      subject,
		CreditHours:  credits,
		AcademicYear: year,
	}
}

func graded(c model.Course, letter model.LetterGrade, points float64) CourseGrade {
	return CourseGrade{
		Course: c,
		Grade:  &model.Grade{LetterGrade: letter, GPAPoints: points},
	}
}

func ungraded(c model.Course) CourseGrade {
	return CourseGrade{Course: c}
}

func TestAggregateEmpty(t *testing.T) {
	tr := Aggregate(nil)

	assert.Equal(t, 0.0, tr.CumulativeGPA)
	assert.Equal(t, 0.0, tr.TotalCredits)
	assert.Equal(t, 0.0, tr.TotalQualityPoints)
	assert.Empty(t, tr.GPAByYear)
	assert.Empty(t, tr.CoursesByYear)
}

func TestAggregateSingleCourse(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectMathematics, 3, "2023-2024"), model.GradeA, 4.0),
	}

	tr := Aggregate(records)

	assert.Equal(t, 4.00, tr.CumulativeGPA)
	assert.Equal(t, 3.0, tr.TotalCredits)
	require.Contains(t, tr.GPAByYear, "2023-2024")
	assert.Equal(t, YearSummary{GPA: 4.00, Credits: 3}, tr.GPAByYear["2023-2024"])
	assert.Len(t, tr.CoursesByYear["2023-2024"], 1)
}

func TestAggregateUngradedExcludedFromGPA(t *testing.T) {
	year := "2023-2024"
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 4, year), model.GradeA, 4.0),
		ungraded(course(model.SubjectScience, 3, year)),
	}

	tr := Aggregate(records)

	// Ungraded course is excluded from the GPA denominator but still
	// counts toward the total academic load.
	assert.Equal(t, YearSummary{GPA: 4.00, Credits: 4}, tr.GPAByYear[year])
	assert.Equal(t, 7.0, tr.TotalCredits)
	assert.Len(t, tr.CoursesByYear[year], 2)
}

func TestAggregateYearWithOnlyUngradedOmitted(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 1, "2022-2023"), model.GradeB, 3.0),
		ungraded(course(model.SubjectScience, 1, "2023-2024")),
	}

	tr := Aggregate(records)

	assert.Contains(t, tr.GPAByYear, "2022-2023")
	assert.NotContains(t, tr.GPAByYear, "2023-2024", "a year with zero graded courses must be omitted, not emitted as 0/0")
	assert.Contains(t, tr.CoursesByYear, "2023-2024")
}

func TestAggregateMixedGradesRounding(t *testing.T) {
	year := "2023-2024"
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 3, year), model.GradeA, 4.0),  // 12 quality points
		graded(course(model.SubjectScience, 4, year), model.GradeB, 3.0),  // 12
		graded(course(model.SubjectFineArts, 2, year), model.GradeC, 2.0), // 4
	}

	tr := Aggregate(records)

	// 28 / 9 = 3.111... rounds to 3.11
	assert.Equal(t, 3.11, tr.CumulativeGPA)
	assert.Equal(t, 28.0, tr.TotalQualityPoints, "quality points are exposed unrounded")
	assert.Equal(t, 9.0, tr.TotalCredits)
}

func TestAggregateMultiYear(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 1, "2022-2023"), model.GradeA, 4.0),
		graded(course(model.SubjectEnglish, 1, "2023-2024"), model.GradeC, 2.0),
	}

	tr := Aggregate(records)

	assert.Equal(t, 4.00, tr.GPAByYear["2022-2023"].GPA)
	assert.Equal(t, 2.00, tr.GPAByYear["2023-2024"].GPA)
	assert.Equal(t, 3.00, tr.CumulativeGPA)
}

func TestAggregateOrderIndependent(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 3, "2022-2023"), model.GradeA, 4.0),
		graded(course(model.SubjectMathematics, 4, "2023-2024"), model.GradeB, 3.0),
		graded(course(model.SubjectScience, 2, "2023-2024"), model.GradeC, 2.0),
		ungraded(course(model.SubjectFineArts, 1, "2024-2025")),
	}

	want := Aggregate(records)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]CourseGrade, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Aggregate(shuffled)
		assert.Equal(t, want.GPAByYear, got.GPAByYear)
		assert.Equal(t, want.CumulativeGPA, got.CumulativeGPA)
		assert.Equal(t, want.TotalCredits, got.TotalCredits)
		assert.Equal(t, want.TotalQualityPoints, got.TotalQualityPoints)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 3, "2023-2024"), model.GradeA, 4.0),
		ungraded(course(model.SubjectScience, 2, "2023-2024")),
	}

	first := Aggregate(records)
	second := Aggregate(records)

	assert.Equal(t, first, second)
}

func TestEarnedCreditsBySubject(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 4, "2022-2023"), model.GradeA, 4.0),
		graded(course(model.SubjectEnglish, 4, "2023-2024"), model.GradeB, 3.0),
		ungraded(course(model.SubjectEnglish, 1, "2024-2025")),
		graded(course(model.SubjectScience, 3, "2023-2024"), model.GradeA, 4.0),
	}

	earned := EarnedCreditsBySubject(records)

	assert.Equal(t, 8.0, earned[model.SubjectEnglish])
	assert.Equal(t, 3.0, earned[model.SubjectScience])
	assert.NotContains(t, earned, model.SubjectMathematics)
}
