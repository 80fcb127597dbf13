package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type GradeController struct {
	GradeService *service.GradeService
}

func NewGradeController(gradeService *service.GradeService) *GradeController {
	return &GradeController{GradeService: gradeService}
}

// @Summary Record a grade for a course
// @Description Upserts the grade for the course+semester key; quality points are resolved and stored at write time
// @Tags grades
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/grade [put]
func (c *GradeController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		LetterGrade model.LetterGrade `json:"letterGrade" binding:"required,oneof=A B C D F"`
		Semester    string            `json:"semester"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	grade, err := c.GradeService.Record(claims.TenantID, courseID, req.LetterGrade, req.Semester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, grade)
}

// @Summary Delete a course's grade
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course ID"
// @Param semester query string false "semester designation, all semesters when omitted"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/grade [delete]
func (c *GradeController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.GradeService.Delete(claims.TenantID, courseID, ctx.Query("semester")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Grade deleted"})
}

// @Summary Recalculate stored grade points for a student
// @Description Re-resolves every stored grade against the current GPA scale and course levels. Rewrites transcript history; explicit opt-in only.
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/grades/recalculate [post]
func (c *GradeController) Recalculate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	updated, err := c.GradeService.RecalculatePoints(claims.TenantID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"updated": updated})
}
