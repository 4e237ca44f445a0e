package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadex/registry/internal/app/models"
)

// AuditRepository handles the append-only student change log. There are no
// update or delete methods on purpose.
type AuditRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append inserts one audit record. It takes a Querier so the record joins
// the transaction of the student mutation it describes.
func (r *AuditRepository) Append(ctx context.Context, q Querier, record *models.AuditRecord) error {
	sql, args, err := r.sb.Insert("student_audit").
		Columns("student_id", "change_type", "field_name", "old_value", "new_value", "changed_by", "changed_at").
		Values(record.StudentID, record.ChangeType, record.FieldName, record.OldValue,
			record.NewValue, record.ChangedBy, record.ChangedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build append audit query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&record.ID); err != nil {
		return fmt.Errorf("error appending audit record: %w", err)
	}
	return nil
}

// ListByStudent retrieves the audit trail for a student in change order.
func (r *AuditRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.AuditRecord, error) {
	sql, args, err := r.sb.Select("id", "student_id", "change_type", "field_name",
		"old_value", "new_value", "changed_by", "changed_at").
		From("student_audit").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list audit query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying audit records: %w", err)
	}
	defer rows.Close()

	records := []*models.AuditRecord{}
	for rows.Next() {
		record := &models.AuditRecord{}
		if err := rows.Scan(&record.ID, &record.StudentID, &record.ChangeType, &record.FieldName,
			&record.OldValue, &record.NewValue, &record.ChangedBy, &record.ChangedAt); err != nil {
			return nil, fmt.Errorf("error scanning audit row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", err)
	}

	return records, nil
}
