package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

// PaymentStore is the persistence surface the payment service needs.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Payment, error)
	TotalByStudent(ctx context.Context, studentID int64) (float64, error)
}

// RecordPaymentInput carries the fields for a new payment. Mode defaults to
// "Bank Transfer" and Reference to a generated identifier when unset.
type RecordPaymentInput struct {
	StudentID int64
	Amount    float64
	Mode      *string
	Reference *string
}

// PaymentService defines the interface for payment operations
type PaymentService interface {
	RecordPayment(ctx context.Context, input RecordPaymentInput) (int64, error)
	ListPayments(ctx context.Context, studentID int64) ([]*models.Payment, error)
	TotalPayments(ctx context.Context, studentID int64) (float64, error)
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	payments PaymentStore
	students StudentFinder
	clock    clock.Clock
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(payments PaymentStore, students StudentFinder, clk clock.Clock) PaymentService {
	return &paymentServiceImpl{
		payments: payments,
		students: students,
		clock:    clk,
	}
}

// RecordPayment records a payment for an existing student and returns the
// newly assigned payment id. The amount check is also enforced by the table
// constraint; the early check just fails before touching the store.
func (s *paymentServiceImpl) RecordPayment(ctx context.Context, input RecordPaymentInput) (int64, error) {
	if input.Amount < 0 {
		return 0, apperrors.NewConstraintError(fmt.Sprintf("amount must be non-negative, got %.2f", input.Amount), nil)
	}

	exists, err := s.students.StudentExists(ctx, input.StudentID)
	if err != nil {
		return 0, fmt.Errorf("error recording payment: %w", err)
	}
	if !exists {
		return 0, apperrors.NewNotFoundError("student", input.StudentID)
	}

	mode := models.PaymentModeBankTransfer
	if input.Mode != nil && *input.Mode != "" {
		mode = *input.Mode
	}

	reference := input.Reference
	if reference == nil {
		generated := uuid.New().String()
		reference = &generated
	}

	payment := &models.Payment{
		StudentID: input.StudentID,
		Amount:    input.Amount,
		PaidAt:    s.clock.Now(),
		Mode:      mode,
		Reference: reference,
	}

	id, err := s.payments.CreatePayment(ctx, payment)
	if err != nil {
		return 0, fmt.Errorf("error recording payment: %w", err)
	}
	return id, nil
}

// ListPayments returns a student's payments in payment order.
func (s *paymentServiceImpl) ListPayments(ctx context.Context, studentID int64) ([]*models.Payment, error) {
	exists, err := s.students.StudentExists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("student", studentID)
	}
	return s.payments.ListByStudent(ctx, studentID)
}

// TotalPayments returns the sum of a student's payments, 0 when none exist.
func (s *paymentServiceImpl) TotalPayments(ctx context.Context, studentID int64) (float64, error) {
	exists, err := s.students.StudentExists(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("error summing payments: %w", err)
	}
	if !exists {
		return 0, apperrors.NewNotFoundError("student", studentID)
	}
	return s.payments.TotalByStudent(ctx, studentID)
}
