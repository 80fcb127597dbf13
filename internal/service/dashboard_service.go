package service

import (
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/gpa"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
)

type DashboardService struct {
	StudentRepo       *repository.StudentRepository
	SubscriptionRepo  *repository.SubscriptionRepository
	TranscriptService *TranscriptService
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	transcriptService *TranscriptService,
) *DashboardService {
	return &DashboardService{
		StudentRepo:       studentRepo,
		SubscriptionRepo:  subscriptionRepo,
		TranscriptService: transcriptService,
	}
}

type StudentSummary struct {
	Student       model.Student        `json:"student"`
	Status        gpa.TranscriptStatus `json:"status"`
	CumulativeGPA float64              `json:"cumulativeGPA"`
	TotalCredits  float64              `json:"totalCredits"`
	CourseCount   int                  `json:"courseCount"`
	Progress      float64              `json:"graduationProgress"`
}

type Dashboard struct {
	Students     []StudentSummary    `json:"students"`
	Subscription *model.Subscription `json:"subscription,omitempty"`
}

// GetDashboard summarizes every student in the household, recomputing
// each transcript from the current snapshot.
func (s *DashboardService) GetDashboard(tenantID string) (*Dashboard, error) {
	students, err := s.StudentRepo.FindByTenant(tenantID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{Students: make([]StudentSummary, 0, len(students))}

	for _, student := range students {
		data, err := s.TranscriptService.Build(tenantID, student.ID)
		if err != nil {
			return nil, err
		}

		courseCount := 0
		for _, yearCourses := range data.Transcript.CoursesByYear {
			courseCount += len(yearCourses)
		}

		dashboard.Students = append(dashboard.Students, StudentSummary{
			Student:       student,
			Status:        data.Status,
			CumulativeGPA: data.Transcript.CumulativeGPA,
			TotalCredits:  data.Transcript.TotalCredits,
			CourseCount:   courseCount,
			Progress:      data.Requirements.Progress,
		})
	}

	if sub, err := s.SubscriptionRepo.FindByTenant(tenantID); err == nil {
		dashboard.Subscription = sub
	}

	return dashboard, nil
}
