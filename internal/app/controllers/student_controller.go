package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/models/dto"
	"github.com/acadex/registry/internal/app/services"
	"github.com/acadex/registry/internal/middleware"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent handles POST /students
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid student data", err.Error())
		return
	}

	dob, err := parseDateField(req.DateOfBirth)
	if err != nil {
		badRequest(ctx, err.Error(), nil)
		return
	}

	id, err := c.studentService.RegisterStudent(ctx.Request.Context(), services.RegisterStudentInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// GetStudent handles GET /students/:id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// ListStudents handles GET /students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// UpdateContact handles PATCH /students/:id/contact
func (c *StudentController) UpdateContact(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid contact data", err.Error())
		return
	}

	err := c.studentService.UpdateContact(ctx.Request.Context(), id, services.ContactUpdate{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"updated": true}))
}

// DeleteStudent handles DELETE /students/:id
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}

// FullName handles GET /students/:id/full-name. A missing student yields an
// empty name, not a 404.
func (c *StudentController) FullName(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	name, err := c.studentService.FullName(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FullNameResponse{FullName: name}))
}

// AuditTrail handles GET /students/:id/audit
func (c *StudentController) AuditTrail(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	records, err := c.studentService.ListAuditTrail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}
