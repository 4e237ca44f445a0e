package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/models/dto"
	"github.com/acadex/registry/internal/app/services"
	"github.com/acadex/registry/internal/middleware"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll handles POST /enrollments
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid enrollment data", err.Error())
		return
	}

	id, err := c.enrollmentService.Enroll(ctx.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// ListStudentCourses handles GET /students/:id/enrollments
func (c *EnrollmentController) ListStudentCourses(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.ListStudentCourses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments))
}
