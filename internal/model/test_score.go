package model

import (
	"time"

	"gorm.io/datatypes"
)

type TestType string

const (
	TestSAT   TestType = "SAT"
	TestACT   TestType = "ACT"
	TestPSAT  TestType = "PSAT"
	TestAP    TestType = "AP"
	TestCLEP  TestType = "CLEP"
	TestState TestType = "State Assessment"
	TestOther TestType = "Other"
)

// ScoreDetails is the typed shape of the per-test score blob. Fields are
// pointers because different test types report different subsets.
type ScoreDetails struct {
	Total      *float64           `json:"total,omitempty"`
	MaxScore   *float64           `json:"maxScore,omitempty"`
	Percentile *float64           `json:"percentile,omitempty"`
	Sections   map[string]float64 `json:"sections,omitempty"`
}

// TestScore is reported on the transcript but never enters GPA computation.
// swagger:model TestScore
type TestScore struct {
	TenantModel
	StudentID uint                                 `gorm:"index;not null" json:"studentId"`
	TestType  TestType                             `gorm:"size:30;not null" json:"testType"`
	TestDate  time.Time                            `json:"testDate"`
	Scores    datatypes.JSONType[ScoreDetails]     `json:"scores"`
	ReportKey string                               `gorm:"size:255" json:"reportKey,omitempty"` // object storage key of an uploaded score report
}

func (TestScore) TableName() string {
	return "test_scores"
}
