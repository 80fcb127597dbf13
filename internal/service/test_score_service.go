package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type TestScoreService struct {
	TestScoreRepo *repository.TestScoreRepository
	StudentRepo   *repository.StudentRepository
	Storage       StorageProvider
}

func NewTestScoreService(
	testScoreRepo *repository.TestScoreRepository,
	studentRepo *repository.StudentRepository,
	storage StorageProvider,
) *TestScoreService {
	return &TestScoreService{
		TestScoreRepo: testScoreRepo,
		StudentRepo:   studentRepo,
		Storage:       storage,
	}
}

func (s *TestScoreService) Create(tenantID string, studentID uint, score *model.TestScore) error {
	if _, err := s.StudentRepo.FindByID(tenantID, studentID); err != nil {
		return util.ErrStudentNotFound
	}
	score.TenantID = tenantID
	score.StudentID = studentID
	if score.TestDate.IsZero() {
		score.TestDate = time.Now()
	}
	return s.TestScoreRepo.Create(score)
}

func (s *TestScoreService) ListByStudent(tenantID string, studentID uint) ([]model.TestScore, error) {
	return s.TestScoreRepo.FindByStudent(tenantID, studentID)
}

func (s *TestScoreService) Update(tenantID string, id uint, updated *model.TestScore) (*model.TestScore, error) {
	score, err := s.TestScoreRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	if updated.TestType != "" {
		score.TestType = updated.TestType
	}
	if !updated.TestDate.IsZero() {
		score.TestDate = updated.TestDate
	}
	score.Scores = updated.Scores

	if err := s.TestScoreRepo.Update(score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *TestScoreService) Delete(tenantID string, id uint) error {
	score, err := s.TestScoreRepo.FindByID(tenantID, id)
	if err != nil {
		return err
	}
	if score.ReportKey != "" {
		// best effort; an orphaned object is not worth failing the delete
		_ = s.Storage.Delete(context.Background(), score.ReportKey)
	}
	return s.TestScoreRepo.Delete(tenantID, id)
}

// AttachReport stores an uploaded score report (PDF or image) and links
// its object key to the test score.
func (s *TestScoreService) AttachReport(ctx context.Context, tenantID string, id uint, filename string, reader io.Reader, size int64, contentType string) (*model.TestScore, error) {
	score, err := s.TestScoreRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("score-reports/%s/%d/%s%s",
		tenantID, score.StudentID, uuid.New().String(), filepath.Ext(filename))

	if _, err := s.Storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return nil, err
	}

	if score.ReportKey != "" {
		_ = s.Storage.Delete(ctx, score.ReportKey)
	}
	score.ReportKey = key
	if err := s.TestScoreRepo.Update(score); err != nil {
		return nil, err
	}
	return score, nil
}

// NewScoreDetails builds the typed score blob from optional fields.
func NewScoreDetails(total, maxScore, percentile *float64, sections map[string]float64) datatypes.JSONType[model.ScoreDetails] {
	return datatypes.NewJSONType(model.ScoreDetails{
		Total:      total,
		MaxScore:   maxScore,
		Percentile: percentile,
		Sections:   sections,
	})
}
