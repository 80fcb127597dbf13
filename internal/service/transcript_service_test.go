package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

func courseWithID(id uint, subject model.Subject, credits float64, year string) model.Course {
	c := model.Course{
		Subject:      subject,
		CreditHours:  credits,
		AcademicYear: year,
	}
	c.ID = id
	return c
}

func gradeFor(courseID uint, letter model.LetterGrade, points float64, updatedAt time.Time) model.Grade {
	g := model.Grade{
		CourseID:    courseID,
		LetterGrade: letter,
		GPAPoints:   points,
	}
	g.UpdatedAt = updatedAt
	return g
}

func TestPairCourseGrades(t *testing.T) {
	now := time.Now()
	courses := []model.Course{
		courseWithID(1, model.SubjectEnglish, 1, "2023-2024"),
		courseWithID(2, model.SubjectScience, 1, "2023-2024"),
	}
	grades := []model.Grade{
		gradeFor(1, model.GradeA, 4.0, now),
	}

	records := PairCourseGrades(courses, grades)

	require.Len(t, records, 2)
	require.NotNil(t, records[0].Grade)
	assert.Equal(t, model.GradeA, records[0].Grade.LetterGrade)
	assert.Nil(t, records[1].Grade, "ungraded course pairs with nil")
}

func TestPairCourseGradesLastWriteWins(t *testing.T) {
	now := time.Now()
	courses := []model.Course{
		courseWithID(1, model.SubjectEnglish, 1, "2023-2024"),
	}
	// ordered by update time ascending, as the repository returns them
	grades := []model.Grade{
		gradeFor(1, model.GradeC, 2.0, now.Add(-time.Hour)),
		gradeFor(1, model.GradeB, 3.0, now),
	}

	records := PairCourseGrades(courses, grades)

	require.Len(t, records, 1)
	require.NotNil(t, records[0].Grade)
	assert.Equal(t, model.GradeB, records[0].Grade.LetterGrade)
}

func TestPairCourseGradesEmpty(t *testing.T) {
	assert.Empty(t, PairCourseGrades(nil, nil))
}
