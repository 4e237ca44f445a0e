package audit

import (
	"context"

	"github.com/juju/clock"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/app/repositories"
	"github.com/acadex/registry/internal/pkg/auth"
)

// Appender persists audit records inside a caller-owned transaction.
type Appender interface {
	Append(ctx context.Context, q repositories.Querier, record *models.AuditRecord) error
}

// Recorder appends audit records for student mutations. Callers pass the
// transaction the mutation ran in; if the append fails the transaction rolls
// back, so the mutation and its audit trail are all-or-nothing.
type Recorder struct {
	store  Appender
	fields []TrackedField
	clock  clock.Clock
}

// NewRecorder creates a Recorder over the given store and tracked-field
// registry.
func NewRecorder(store Appender, fields []TrackedField, clk clock.Clock) *Recorder {
	return &Recorder{
		store:  store,
		fields: fields,
		clock:  clk,
	}
}

// StudentCreated appends one 'insert' record for the new student. No
// field-level detail is logged for inserts.
func (r *Recorder) StudentCreated(ctx context.Context, q repositories.Querier, studentID int64) error {
	return r.store.Append(ctx, q, &models.AuditRecord{
		StudentID:  studentID,
		ChangeType: models.ChangeTypeInsert,
		ChangedBy:  auth.ActorFromContext(ctx),
		ChangedAt:  r.clock.Now(),
	})
}

// StudentUpdated diffs the before and after images and appends one 'update'
// record per tracked field that changed. It returns the changes it logged;
// an update touching no tracked field appends nothing.
func (r *Recorder) StudentUpdated(ctx context.Context, q repositories.Querier, before, after *models.Student) ([]FieldChange, error) {
	changes := Diff(r.fields, before, after)
	actor := auth.ActorFromContext(ctx)
	now := r.clock.Now()

	for i := range changes {
		change := changes[i]
		if err := r.store.Append(ctx, q, &models.AuditRecord{
			StudentID:  before.ID,
			ChangeType: models.ChangeTypeUpdate,
			FieldName:  &change.Field,
			OldValue:   &change.Old,
			NewValue:   &change.New,
			ChangedBy:  actor,
			ChangedAt:  now,
		}); err != nil {
			return nil, err
		}
	}
	return changes, nil
}

// StudentDeleted appends one 'delete' record for the removed student. The
// record survives the deletion: student_audit has no foreign key to students.
func (r *Recorder) StudentDeleted(ctx context.Context, q repositories.Querier, studentID int64) error {
	return r.store.Append(ctx, q, &models.AuditRecord{
		StudentID:  studentID,
		ChangeType: models.ChangeTypeDelete,
		ChangedBy:  auth.ActorFromContext(ctx),
		ChangedAt:  r.clock.Now(),
	})
}
