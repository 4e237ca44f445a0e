package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/app/models/dto"
	"github.com/acadex/registry/internal/app/services"
	"github.com/acadex/registry/internal/middleware"
)

// FacultyController handles faculty endpoints
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

func facultyFromRequest(req *dto.FacultyRequest) (*models.Faculty, error) {
	hireDate, err := parseDateField(req.HireDate)
	if err != nil {
		return nil, err
	}
	return &models.Faculty{
		FullName:   req.FullName,
		Department: req.Department,
		Email:      req.Email,
		Salary:     req.Salary,
		HireDate:   hireDate,
	}, nil
}

// CreateFaculty handles POST /faculty
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid faculty data", err.Error())
		return
	}

	faculty, err := facultyFromRequest(&req)
	if err != nil {
		badRequest(ctx, err.Error(), nil)
		return
	}

	id, err := c.facultyService.CreateFaculty(ctx.Request.Context(), faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// GetFaculty handles GET /faculty/:id
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty))
}

// ListFaculty handles GET /faculty
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	members, err := c.facultyService.ListFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}

// UpdateFaculty handles PUT /faculty/:id
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid faculty data", err.Error())
		return
	}

	faculty, err := facultyFromRequest(&req)
	if err != nil {
		badRequest(ctx, err.Error(), nil)
		return
	}
	faculty.ID = id

	if err := c.facultyService.UpdateFaculty(ctx.Request.Context(), faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty))
}

// DeleteFaculty handles DELETE /faculty/:id
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
