package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

type courseRequest struct {
	Name         string            `json:"name" binding:"required"`
	Subject      model.Subject     `json:"subject" binding:"required,oneof=English Mathematics Science 'Computer Science' 'Social Studies' 'Foreign Language' 'Fine Arts' 'Physical Education' 'Career/Technical Education' Elective Other"`
	Level        model.CourseLevel `json:"level" binding:"omitempty,oneof=Regular Honors 'Advanced Placement' 'Dual Enrollment' 'College Prep'"`
	CreditHours  float64           `json:"creditHours" binding:"omitempty,gt=0"`
	AcademicYear string            `json:"academicYear" binding:"required"`
	Description  string            `json:"description"`
}

// @Summary List a student's courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id}/courses [get]
func (c *CourseController) ListByStudent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.CourseService.ListByStudent(claims.TenantID, studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Add a course for a student
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 201 {object} util.Response
// @Router /api/students/{id}/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req courseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Name:         req.Name,
		Subject:      req.Subject,
		Level:        req.Level,
		CreditHours:  req.CreditHours,
		AcademicYear: req.AcademicYear,
		Description:  req.Description,
	}

	if err := c.CourseService.Create(claims.TenantID, studentID, course); err != nil {
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

	util.Created(ctx, course)
}

// @Summary Get one course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.CourseService.Get(claims.TenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req courseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(claims.TenantID, id, &model.Course{
		Name:         req.Name,
		Subject:      req.Subject,
		Level:        req.Level,
		CreditHours:  req.CreditHours,
		AcademicYear: req.AcademicYear,
		Description:  req.Description,
	})
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

	util.Success(ctx, course)
}

// @Summary Delete a course and its grades
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.CourseService.Delete(claims.TenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Course deleted"})
}
