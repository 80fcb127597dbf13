package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

func TestRequirementTableTotals24(t *testing.T) {
	var total float64
	for _, required := range requiredCredits {
		total += required
	}
	assert.Equal(t, TotalRequiredCredits, total)
}

func TestCategoryForBucketsUnnamedIntoElectives(t *testing.T) {
	tests := []struct {
		subject model.Subject
		want    RequirementCategory
	}{
		{model.SubjectEnglish, ReqEnglish},
		{model.SubjectMathematics, ReqMathematics},
		{model.SubjectScience, ReqScience},
		{model.SubjectSocialStudies, ReqSocialStudies},
		{model.SubjectForeignLanguage, ReqForeignLanguage},
		{model.SubjectFineArts, ReqFineArts},
		{model.SubjectPhysicalEducation, ReqPhysicalEducation},
		{model.SubjectComputerScience, ReqElectives},
		{model.SubjectCareerTechnical, ReqElectives},
		{model.SubjectElective, ReqElectives},
		{model.SubjectOther, ReqElectives},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.subject), "subject %s", tt.subject)
	}
}

func TestEvaluateRequirementsEmpty(t *testing.T) {
	report := EvaluateRequirements(nil)

	assert.Equal(t, 24.0, report.TotalRequired)
	assert.Equal(t, 0.0, report.TotalEarned)
	assert.False(t, report.MeetsRequirements)
	assert.Equal(t, 24.0, report.CreditsRemaining)
	assert.Equal(t, 0.0, report.Progress)

	require.Len(t, report.Subjects, 8)
	for category, progress := range report.Subjects {
		assert.Equal(t, 0.0, progress.Earned, "category %s", category)
		assert.Greater(t, progress.Required, 0.0)
	}
}

func TestEvaluateRequirementsSingleCourse(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectMathematics, 3, "2023-2024"), model.GradeA, 4.0),
	}

	report := EvaluateRequirements(records)

	assert.Equal(t, RequirementProgress{Required: 4, Earned: 3}, report.Subjects[ReqMathematics])
	assert.Equal(t, 3.0, report.TotalEarned)
	assert.False(t, report.MeetsRequirements)
	assert.Equal(t, 21.0, report.CreditsRemaining)
}

func TestEvaluateRequirementsUngradedNotEarned(t *testing.T) {
	records := []CourseGrade{
		ungraded(course(model.SubjectEnglish, 4, "2023-2024")),
	}

	report := EvaluateRequirements(records)

	assert.Equal(t, 0.0, report.Subjects[ReqEnglish].Earned)
	assert.Equal(t, 0.0, report.TotalEarned)
}

func TestEvaluateRequirementsOverfulfilledNotCapped(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 4, "2022-2023"), model.GradeA, 4.0),
		graded(course(model.SubjectEnglish, 4, "2023-2024"), model.GradeB, 3.0),
	}

	report := EvaluateRequirements(records)

	// 8 English credits against a requirement of 4: the excess still
	// contributes to the overall total.
	assert.Equal(t, 8.0, report.Subjects[ReqEnglish].Earned)
	assert.Equal(t, 8.0, report.TotalEarned)
	assert.InDelta(t, 33.33, report.Progress, 0.01)
}

func TestEvaluateRequirementsProgressClampedAt100(t *testing.T) {
	records := []CourseGrade{
		graded(course(model.SubjectEnglish, 30, "2023-2024"), model.GradeA, 4.0),
	}

	report := EvaluateRequirements(records)

	assert.Equal(t, 100.0, report.Progress)
	assert.True(t, report.MeetsRequirements)
	assert.Equal(t, 0.0, report.CreditsRemaining)
}
