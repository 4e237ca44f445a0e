package audit

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/app/repositories"
	"github.com/acadex/registry/internal/pkg/auth"
)

type fakeAppender struct {
	records []*models.AuditRecord
	err     error
}

func (f *fakeAppender) Append(_ context.Context, _ repositories.Querier, record *models.AuditRecord) error {
	if f.err != nil {
		return f.err
	}
	copied := *record
	f.records = append(f.records, &copied)
	return nil
}

func TestRecorderStudentCreated(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeAppender{}
	recorder := NewRecorder(store, DefaultTrackedFields(), testclock.NewClock(t0))

	err := recorder.StudentCreated(context.Background(), nil, 42)
	require.NoError(t, err)
	require.Len(t, store.records, 1)

	record := store.records[0]
	assert.Equal(t, int64(42), record.StudentID)
	assert.Equal(t, models.ChangeTypeInsert, record.ChangeType)
	assert.Nil(t, record.FieldName)
	assert.Nil(t, record.OldValue)
	assert.Nil(t, record.NewValue)
	assert.Nil(t, record.ChangedBy)
	assert.Equal(t, t0, record.ChangedAt)
}

func TestRecorderStudentUpdatedLogsOneRecordPerChangedField(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeAppender{}
	recorder := NewRecorder(store, DefaultTrackedFields(), testclock.NewClock(t0))

	before := &models.Student{ID: 7, Email: strPtr("old@example.com"), Phone: strPtr("111")}
	after := &models.Student{ID: 7, Email: strPtr("new@example.com"), Phone: strPtr("222")}

	changes, err := recorder.StudentUpdated(context.Background(), nil, before, after)
	require.NoError(t, err)
	assert.Len(t, changes, 2)
	require.Len(t, store.records, 2)

	emailRecord := store.records[0]
	assert.Equal(t, int64(7), emailRecord.StudentID)
	assert.Equal(t, models.ChangeTypeUpdate, emailRecord.ChangeType)
	require.NotNil(t, emailRecord.FieldName)
	assert.Equal(t, "Email", *emailRecord.FieldName)
	assert.Equal(t, "old@example.com", *emailRecord.OldValue)
	assert.Equal(t, "new@example.com", *emailRecord.NewValue)

	phoneRecord := store.records[1]
	require.NotNil(t, phoneRecord.FieldName)
	assert.Equal(t, "Phone", *phoneRecord.FieldName)
	assert.Equal(t, "111", *phoneRecord.OldValue)
	assert.Equal(t, "222", *phoneRecord.NewValue)
}

func TestRecorderStudentUpdatedNoTrackedChanges(t *testing.T) {
	store := &fakeAppender{}
	recorder := NewRecorder(store, DefaultTrackedFields(), testclock.NewClock(time.Now()))

	before := &models.Student{ID: 7, FirstName: "Asha", Email: strPtr("same@example.com")}
	after := &models.Student{ID: 7, FirstName: "Aisha", Email: strPtr("same@example.com")}

	changes, err := recorder.StudentUpdated(context.Background(), nil, before, after)
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Empty(t, store.records)
}

func TestRecorderStudentDeleted(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeAppender{}
	recorder := NewRecorder(store, DefaultTrackedFields(), testclock.NewClock(t0))

	err := recorder.StudentDeleted(context.Background(), nil, 99)
	require.NoError(t, err)
	require.Len(t, store.records, 1)
	assert.Equal(t, models.ChangeTypeDelete, store.records[0].ChangeType)
	assert.Equal(t, int64(99), store.records[0].StudentID)
}

func TestRecorderAttributesActorFromContext(t *testing.T) {
	store := &fakeAppender{}
	recorder := NewRecorder(store, DefaultTrackedFields(), testclock.NewClock(time.Now()))

	ctx := auth.WithActor(context.Background(), "registrar@acadex.example")
	require.NoError(t, recorder.StudentCreated(ctx, nil, 5))

	require.Len(t, store.records, 1)
	require.NotNil(t, store.records[0].ChangedBy)
	assert.Equal(t, "registrar@acadex.example", *store.records[0].ChangedBy)
}

func TestRecorderPropagatesAppendError(t *testing.T) {
	store := &fakeAppender{err: assert.AnError}
	recorder := NewRecorder(store, DefaultTrackedFields(), testclock.NewClock(time.Now()))

	err := recorder.StudentCreated(context.Background(), nil, 1)
	assert.ErrorIs(t, err, assert.AnError)

	before := &models.Student{ID: 1, Email: strPtr("a@example.com")}
	after := &models.Student{ID: 1, Email: strPtr("b@example.com")}
	_, err = recorder.StudentUpdated(context.Background(), nil, before, after)
	assert.ErrorIs(t, err, assert.AnError)
}
