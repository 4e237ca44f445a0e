package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

// CourseStore is the persistence surface the course service needs.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.Credits < models.MinCourseCredits || course.Credits > models.MaxCourseCredits {
		return apperrors.NewConstraintError(
			fmt.Sprintf("credits must be between %d and %d, got %d",
				models.MinCourseCredits, models.MaxCourseCredits, course.Credits), nil)
	}
	if course.Code != nil && !isValidCourseCode(*course.Code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", apperrors.ErrValidationFailed)
	}
	return nil
}

// isValidCourseCode checks if a course code is uppercase alphanumeric.
func isValidCourseCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	if err := validateCourse(course); err != nil {
		return 0, err
	}

	id, err := s.courses.CreateCourse(ctx, course)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courses.GetCourseByID(ctx, id)
}

// GetCourseByCode retrieves a course by its unique code
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.courses.GetCourseByCode(ctx, code)
}

// ListCourses retrieves all courses
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.ListCourses(ctx)
}

// DeleteCourse removes a course; enrollments referencing it cascade away.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courses.DeleteCourse(ctx, id)
}
