package controller

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type TestScoreController struct {
	TestScoreService *service.TestScoreService
}

func NewTestScoreController(testScoreService *service.TestScoreService) *TestScoreController {
	return &TestScoreController{TestScoreService: testScoreService}
}

type testScoreRequest struct {
	TestType   model.TestType     `json:"testType" binding:"required,oneof=SAT ACT PSAT AP CLEP 'State Assessment' Other"`
	TestDate   time.Time          `json:"testDate"`
	Total      *float64           `json:"total"`
	MaxScore   *float64           `json:"maxScore"`
	Percentile *float64           `json:"percentile"`
	Sections   map[string]float64 `json:"sections"`
}

func (r *testScoreRequest) toModel() *model.TestScore {
	return &model.TestScore{
		TestType: r.TestType,
		TestDate: r.TestDate,
		Scores:   service.NewScoreDetails(r.Total, r.MaxScore, r.Percentile, r.Sections),
	}
}

// @Summary List a student's test scores
// @Tags test-scores
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/test-scores [get]
func (c *TestScoreController) ListByStudent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	scores, err := c.TestScoreService.ListByStudent(claims.TenantID, studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, scores)
}

// @Summary Record a test score for a student
// @Tags test-scores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 201 {object} util.Response
// @Router /api/students/{id}/test-scores [post]
func (c *TestScoreController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req testScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score := req.toModel()
	if err := c.TestScoreService.Create(claims.TenantID, studentID, score); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, score)
}

// @Summary Update a test score
// @Tags test-scores
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "test score ID"
// @Success 200 {object} util.Response
// @Router /api/test-scores/{id} [put]
func (c *TestScoreController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req testScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.TestScoreService.Update(claims.TenantID, id, req.toModel())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, score)
}

// @Summary Delete a test score
// @Tags test-scores
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "test score ID"
// @Success 200 {object} util.Response
// @Router /api/test-scores/{id} [delete]
func (c *TestScoreController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.TestScoreService.Delete(claims.TenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Test score deleted"})
}

// @Summary Upload a score report for a test score
// @Description Attaches a PDF or image report to the test score
// @Tags test-scores
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "test score ID"
// @Param file formData file true "score report (PDF or image)"
// @Success 200 {object} util.Response
// @Router /api/test-scores/{id}/report [post]
func (c *TestScoreController) UploadReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	// sniff the MIME type, then stitch the sniffed bytes back in front
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		util.LogInternalError(ctx, err)
		return
	}
	contentType, err := util.ValidateMimeType(bytes.NewReader(head[:n]), util.ScoreReportTypes)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	reader := io.MultiReader(bytes.NewReader(head[:n]), src)

	score, err := c.TestScoreService.AttachReport(ctx.Request.Context(), claims.TenantID, id, file.Filename, reader, file.Size, contentType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, score)
}
