package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type TranscriptController struct {
	TranscriptService *service.TranscriptService
}

func NewTranscriptController(transcriptService *service.TranscriptService) *TranscriptController {
	return &TranscriptController{TranscriptService: transcriptService}
}

// @Summary Get a student's transcript
// @Description Per-year course lists and GPAs, cumulative GPA, test scores, activities and graduation requirement progress
// @Tags transcripts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/transcript [get]
func (c *TranscriptController) GetTranscript(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	transcript, err := c.TranscriptService.Build(claims.TenantID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, transcript)
}

// @Summary Get a student's graduation requirement progress
// @Tags transcripts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/requirements [get]
func (c *TranscriptController) GetRequirements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.TranscriptService.Requirements(claims.TenantID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
