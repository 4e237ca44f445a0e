package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/juju/clock"

	"github.com/acadex/registry/internal/app/audit"
	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/app/repositories"
	"github.com/acadex/registry/internal/db"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

// TxRunner runs a function within a single database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// StudentStore is the persistence surface the student service needs.
type StudentStore interface {
	CreateStudent(ctx context.Context, q repositories.Querier, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudentForUpdate(ctx context.Context, q repositories.Querier, id int64) (*models.Student, error)
	UpdateContact(ctx context.Context, q repositories.Querier, student *models.Student) error
	DeleteStudent(ctx context.Context, q repositories.Querier, id int64) error
	FullName(ctx context.Context, id int64) (string, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// ChangeLogger appends audit records alongside student mutations.
type ChangeLogger interface {
	StudentCreated(ctx context.Context, q repositories.Querier, studentID int64) error
	StudentUpdated(ctx context.Context, q repositories.Querier, before, after *models.Student) ([]audit.FieldChange, error)
	StudentDeleted(ctx context.Context, q repositories.Querier, studentID int64) error
}

// AuditTrailStore reads the audit log.
type AuditTrailStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.AuditRecord, error)
}

// RegisterStudentInput carries the fields for a new student record.
type RegisterStudentInput struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Email       *string
	Phone       *string
	Gender      *string
}

// ContactUpdate carries new contact values; nil leaves a field unchanged.
type ContactUpdate struct {
	Email *string
	Phone *string
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (int64, error)
	UpdateContact(ctx context.Context, id int64, update ContactUpdate) error
	DeleteStudent(ctx context.Context, id int64) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	FullName(ctx context.Context, id int64) (string, error)
	ListAuditTrail(ctx context.Context, id int64) ([]*models.AuditRecord, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	tx        TxRunner
	students  StudentStore
	changeLog ChangeLogger
	trail     AuditTrailStore
	clock     clock.Clock
}

// NewStudentService creates a new student service instance
func NewStudentService(tx TxRunner, students StudentStore, changeLog ChangeLogger, trail AuditTrailStore, clk clock.Clock) StudentService {
	return &studentServiceImpl{
		tx:        tx,
		students:  students,
		changeLog: changeLog,
		trail:     trail,
		clock:     clk,
	}
}

// validateRegistration validates student data before database operations
func validateRegistration(input *RegisterStudentInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	if input.Gender != nil && !models.ValidGender(*input.Gender) {
		return apperrors.NewConstraintError(fmt.Sprintf("gender must be one of M, F, O, got %q", *input.Gender), nil)
	}
	return nil
}

// RegisterStudent creates a student record and its 'insert' audit record in
// one transaction, returning the newly assigned student id.
func (s *studentServiceImpl) RegisterStudent(ctx context.Context, input RegisterStudentInput) (int64, error) {
	if err := validateRegistration(&input); err != nil {
		return 0, err
	}

	student := &models.Student{
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		DateOfBirth:   input.DateOfBirth,
		Email:         input.Email,
		Phone:         input.Phone,
		Gender:        input.Gender,
		AdmissionDate: s.clock.Now(),
		IsActive:      true,
	}

	var id int64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		id, err = s.students.CreateStudent(ctx, tx, student)
		if err != nil {
			return err
		}
		return s.changeLog.StudentCreated(ctx, tx, id)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateContact changes a student's email and/or phone, appending one audit
// record per tracked field that actually changed. The row lock, update, and
// audit rows share one transaction.
func (s *studentServiceImpl) UpdateContact(ctx context.Context, id int64, update ContactUpdate) error {
	if update.Email == nil && update.Phone == nil {
		return fmt.Errorf("%w: no contact fields to update", apperrors.ErrValidationFailed)
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		before, err := s.students.GetStudentForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		after := *before
		if update.Email != nil {
			after.Email = update.Email
		}
		if update.Phone != nil {
			after.Phone = update.Phone
		}

		if err := s.students.UpdateContact(ctx, tx, &after); err != nil {
			return err
		}

		_, err = s.changeLog.StudentUpdated(ctx, tx, before, &after)
		return err
	})
}

// DeleteStudent removes a student. Enrollments and payments cascade away in
// the database; a 'delete' audit record is appended in the same transaction
// and survives the deletion.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.students.GetStudentForUpdate(ctx, tx, id); err != nil {
			return err
		}
		if err := s.students.DeleteStudent(ctx, tx, id); err != nil {
			return err
		}
		return s.changeLog.StudentDeleted(ctx, tx, id)
	})
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	return s.students.GetStudentByID(ctx, id)
}

// ListStudents retrieves all students
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.ListStudents(ctx)
}

// FullName returns "First Last" for the student, or "" when the student does
// not exist. A missing student is never an error.
func (s *studentServiceImpl) FullName(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return "", nil
	}
	return s.students.FullName(ctx, id)
}

// ListAuditTrail returns the student's change history, oldest first. The
// trail outlives the student, so no existence check is made.
func (s *studentServiceImpl) ListAuditTrail(ctx context.Context, id int64) ([]*models.AuditRecord, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	return s.trail.ListByStudent(ctx, id)
}
