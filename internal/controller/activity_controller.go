package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

type activityRequest struct {
	Type         model.ActivityType `json:"type" binding:"required,oneof=extracurricular award volunteer employment"`
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	AcademicYear string             `json:"academicYear"`
	Hours        float64            `json:"hours" binding:"omitempty,gte=0"`
}

func (r *activityRequest) toModel() *model.Activity {
	return &model.Activity{
		Type:         r.Type,
		Title:        r.Title,
		Description:  r.Description,
		AcademicYear: r.AcademicYear,
		Hours:        r.Hours,
	}
}

// @Summary List a student's activities
// @Tags activities
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/activities [get]
func (c *ActivityController) ListByStudent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	activities, err := c.ActivityService.ListByStudent(claims.TenantID, studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}

// @Summary Add an activity for a student
// @Tags activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 201 {object} util.Response
// @Router /api/students/{id}/activities [post]
func (c *ActivityController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req activityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity := req.toModel()
	if err := c.ActivityService.Create(claims.TenantID, studentID, activity); err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidAcademicYear):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, activity)
}

// @Summary Update an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "activity ID"
// @Success 200 {object} util.Response
// @Router /api/activities/{id} [put]
func (c *ActivityController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req activityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.Update(claims.TenantID, id, req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidAcademicYear):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, activity)
}

// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "activity ID"
// @Success 200 {object} util.Response
// @Router /api/activities/{id} [delete]
func (c *ActivityController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.ActivityService.Delete(claims.TenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Activity deleted"})
}
