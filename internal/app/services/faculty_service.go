package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

// FacultyStore is the persistence surface the faculty service needs.
type FacultyStore interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	ListFaculty(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	ListFaculty(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	faculty FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculty FacultyStore) FacultyService {
	return &facultyServiceImpl{faculty: faculty}
}

// validateFaculty validates faculty data before database operations
func validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return fmt.Errorf("%w: faculty is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(faculty.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if faculty.Salary != nil && *faculty.Salary < 0 {
		return apperrors.NewConstraintError(
			fmt.Sprintf("salary must be non-negative, got %.2f", *faculty.Salary), nil)
	}
	return nil
}

// CreateFaculty creates a new faculty member
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	if err := validateFaculty(faculty); err != nil {
		return 0, err
	}

	id, err := s.faculty.CreateFaculty(ctx, faculty)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetFacultyByID retrieves a faculty member by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}
	return s.faculty.GetFacultyByID(ctx, id)
}

// ListFaculty retrieves all faculty members
func (s *facultyServiceImpl) ListFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.faculty.ListFaculty(ctx)
}

// UpdateFaculty updates an existing faculty member
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := validateFaculty(faculty); err != nil {
		return err
	}
	if faculty.ID <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}
	return s.faculty.UpdateFaculty(ctx, faculty)
}

// DeleteFaculty removes a faculty member
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}
	return s.faculty.DeleteFaculty(ctx, id)
}
