package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
	"github.com/acadex/registry/internal/pkg/dberrors"
	"github.com/acadex/registry/internal/pkg/logger"
)

const paymentStudentFKConstraint = "payments_student_id_fkey"

// PaymentRepository handles payment database operations
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePayment inserts a new payment. The non-negative amount check is
// backed by the table constraint; a service-level check catches it earlier.
func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (int64, error) {
	sql, args, err := r.sb.Insert("payments").
		Columns("student_id", "amount", "paid_at", "mode", "reference").
		Values(payment.StudentID, payment.Amount, payment.PaidAt, payment.Mode, payment.Reference).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return 0, apperrors.NewConstraintError(dberrors.ConstraintName(err), err)
		}
		if dberrors.IsForeignKeyViolation(err) && dberrors.ConstraintName(err) == paymentStudentFKConstraint {
			return 0, apperrors.NewNotFoundError(studentEntity, payment.StudentID)
		}
		logger.Error().Err(err).Int64("studentID", payment.StudentID).Msg("Error executing create payment query")
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	return id, nil
}

// ListByStudent retrieves a student's payments ordered by payment date.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Payment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "amount", "paid_at", "mode", "reference").
		From("payments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("paid_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.StudentID, &payment.Amount,
			&payment.PaidAt, &payment.Mode, &payment.Reference); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// TotalByStudent returns the sum of a student's payments, 0 when there are none.
func (r *PaymentRepository) TotalByStudent(ctx context.Context, studentID int64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE student_id = $1`,
		studentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing payments: %w", err)
	}
	return total, nil
}
