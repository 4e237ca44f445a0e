package services

import (
	"context"
	"fmt"

	"github.com/juju/clock"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

// EnrollmentStore is the persistence surface the enrollment service needs.
type EnrollmentStore interface {
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
}

// StudentFinder answers student existence pre-checks.
type StudentFinder interface {
	StudentExists(ctx context.Context, id int64) (bool, error)
}

// CourseFinder answers course existence pre-checks.
type CourseFinder interface {
	CourseExists(ctx context.Context, id int64) (bool, error)
}

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (int64, error)
	ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollments EnrollmentStore
	students    StudentFinder
	courses     CourseFinder
	clock       clock.Clock
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollments EnrollmentStore, students StudentFinder, courses CourseFinder, clk clock.Clock) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		clock:       clk,
	}
}

// Enroll enrolls an existing student in an existing course. The existence
// pre-checks validate the references and name the missing id; the duplicate
// (student, course) pair is left to the unique constraint so a race between
// concurrent duplicates resolves to exactly one success.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) (int64, error) {
	exists, err := s.students.StudentExists(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("enrollment failed: %w", err)
	}
	if !exists {
		return 0, apperrors.NewNotFoundError("student", studentID)
	}

	exists, err = s.courses.CourseExists(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("enrollment failed: %w", err)
	}
	if !exists {
		return 0, apperrors.NewNotFoundError("course", courseID)
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: s.clock.Now(),
		Status:     models.EnrollmentStatusEnrolled,
	}

	id, err := s.enrollments.CreateEnrollment(ctx, enrollment)
	if err != nil {
		return 0, fmt.Errorf("enrollment failed: %w", err)
	}
	return id, nil
}

// ListStudentCourses returns a student's enrollments with course details and
// enrollment dates.
func (s *enrollmentServiceImpl) ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	exists, err := s.students.StudentExists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("student", studentID)
	}
	return s.enrollments.ListByStudent(ctx, studentID)
}
