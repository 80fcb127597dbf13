package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// @Summary List students in the household
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/students [get]
func (c *StudentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	students, err := c.StudentService.List(claims.TenantID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, students)
}

// @Summary Add a student
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /api/students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		FirstName               string         `json:"firstName" binding:"required"`
		LastName                string         `json:"lastName" binding:"required"`
		GraduationYear          int            `json:"graduationYear" binding:"required"`
		GPAScale                model.GPAScale `json:"gpaScale" binding:"omitempty,oneof=4.0 5.0"`
		MinCreditsForGraduation float64        `json:"minCreditsForGraduation" binding:"omitempty,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student := &model.Student{
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		GraduationYear:          req.GraduationYear,
		GPAScale:                req.GPAScale,
		MinCreditsForGraduation: req.MinCreditsForGraduation,
	}

	if err := c.StudentService.Create(claims.TenantID, student); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, student)
}

// @Summary Get one student
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.StudentService.Get(claims.TenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, student)
}

// @Summary Update a student
// @Description Changing the GPA scale does not rewrite stored grade points; use the recalculate endpoint for that.
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		FirstName               string         `json:"firstName" binding:"required"`
		LastName                string         `json:"lastName" binding:"required"`
		GraduationYear          int            `json:"graduationYear" binding:"required"`
		GPAScale                model.GPAScale `json:"gpaScale" binding:"omitempty,oneof=4.0 5.0"`
		MinCreditsForGraduation float64        `json:"minCreditsForGraduation" binding:"omitempty,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.StudentService.Update(claims.TenantID, id, &model.Student{
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		GraduationYear:          req.GraduationYear,
		GPAScale:                req.GPAScale,
		MinCreditsForGraduation: req.MinCreditsForGraduation,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, student)
}

// @Summary Delete a student and all their records
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "student ID"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.StudentService.Delete(claims.TenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Student deleted"})
}
