package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

var allLetters = []model.LetterGrade{
	model.GradeA, model.GradeB, model.GradeC, model.GradeD, model.GradeF,
}

func TestPointsBaseTable(t *testing.T) {
	tests := []struct {
		letter model.LetterGrade
		want   float64
	}{
		{model.GradeA, 4.0},
		{model.GradeB, 3.0},
		{model.GradeC, 2.0},
		{model.GradeD, 1.0},
		{model.GradeF, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			assert.Equal(t, tt.want, Points(tt.letter, model.Scale40, false))
			assert.Equal(t, tt.want, Points(tt.letter, model.Scale50, false))
		})
	}
}

func TestPointsNoBonusOn40Scale(t *testing.T) {
	for _, letter := range allLetters {
		assert.Equal(t,
			Points(letter, model.Scale40, false),
			Points(letter, model.Scale40, true),
			"honors flag must not change points on the 4.0 scale for %s", letter)
	}
}

func TestPointsHonorsBonusOn50Scale(t *testing.T) {
	for _, letter := range allLetters {
		base := Points(letter, model.Scale50, false)
		weighted := Points(letter, model.Scale50, true)

		if letter == model.GradeF {
			assert.Equal(t, 0.0, weighted, "F never earns a bonus")
			continue
		}
		assert.Equal(t, base+1.0, weighted, "letter %s", letter)
		assert.LessOrEqual(t, weighted, 5.0)
	}
}

func TestPointsCap(t *testing.T) {
	// A weighted A lands exactly on the 5.0 cap.
	assert.Equal(t, 5.0, Points(model.GradeA, model.Scale50, true))
}

func TestIsHonorsOrAP(t *testing.T) {
	assert.True(t, IsHonorsOrAP(model.LevelHonors))
	assert.True(t, IsHonorsOrAP(model.LevelAdvancedPlacement))
	assert.False(t, IsHonorsOrAP(model.LevelRegular))
	assert.False(t, IsHonorsOrAP(model.LevelDualEnrollment))
	assert.False(t, IsHonorsOrAP(model.LevelCollegePrep))
}
