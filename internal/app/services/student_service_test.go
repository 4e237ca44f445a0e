package services

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadex/registry/internal/app/audit"
	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/app/repositories"
	"github.com/acadex/registry/internal/db"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

// fakeTxRunner runs the transaction function directly; fakes below ignore the
// Querier so a nil tx is fine.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) CreateStudent(_ context.Context, _ repositories.Querier, student *models.Student) (int64, error) {
	id := f.nextID
	f.nextID++
	copied := *student
	copied.ID = id
	f.students[id] = &copied
	return id, nil
}

func (f *fakeStudentStore) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("student", id)
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) GetStudentForUpdate(ctx context.Context, _ repositories.Querier, id int64) (*models.Student, error) {
	return f.GetStudentByID(ctx, id)
}

func (f *fakeStudentStore) UpdateContact(_ context.Context, _ repositories.Querier, student *models.Student) error {
	existing, ok := f.students[student.ID]
	if !ok {
		return apperrors.NewNotFoundError("student", student.ID)
	}
	existing.Email = student.Email
	existing.Phone = student.Phone
	return nil
}

func (f *fakeStudentStore) DeleteStudent(_ context.Context, _ repositories.Querier, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.NewNotFoundError("student", id)
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) FullName(_ context.Context, id int64) (string, error) {
	student, ok := f.students[id]
	if !ok {
		return "", nil
	}
	return student.FullName(), nil
}

func (f *fakeStudentStore) ListStudents(_ context.Context) ([]*models.Student, error) {
	list := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		copied := *s
		list = append(list, &copied)
	}
	return list, nil
}

// fakeAuditStore doubles as the recorder's Appender and the service's trail
// reader.
type fakeAuditStore struct {
	records []*models.AuditRecord
}

func (f *fakeAuditStore) Append(_ context.Context, _ repositories.Querier, record *models.AuditRecord) error {
	copied := *record
	f.records = append(f.records, &copied)
	return nil
}

func (f *fakeAuditStore) ListByStudent(_ context.Context, studentID int64) ([]*models.AuditRecord, error) {
	var out []*models.AuditRecord
	for _, record := range f.records {
		if record.StudentID == studentID {
			out = append(out, record)
		}
	}
	return out, nil
}

func newStudentServiceForTest(t0 time.Time) (StudentService, *fakeStudentStore, *fakeAuditStore) {
	students := newFakeStudentStore()
	auditStore := &fakeAuditStore{}
	clk := testclock.NewClock(t0)
	recorder := audit.NewRecorder(auditStore, audit.DefaultTrackedFields(), clk)
	svc := NewStudentService(fakeTxRunner{}, students, recorder, auditStore, clk)
	return svc, students, auditStore
}

func TestRegisterStudent(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc, students, auditStore := newStudentServiceForTest(t0)

	id, err := svc.RegisterStudent(context.Background(), RegisterStudentInput{
		FirstName: "  Asha ",
		LastName:  "Patel",
		Email:     strPtr("asha.patel@example.com"),
		Gender:    strPtr(models.GenderFemale),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored := students.students[id]
	require.NotNil(t, stored)
	assert.Equal(t, "Asha", stored.FirstName)
	assert.Equal(t, "Patel", stored.LastName)
	assert.True(t, stored.IsActive)
	assert.Equal(t, t0, stored.AdmissionDate)

	require.Len(t, auditStore.records, 1)
	assert.Equal(t, models.ChangeTypeInsert, auditStore.records[0].ChangeType)
	assert.Equal(t, id, auditStore.records[0].StudentID)
}

func TestRegisterStudentValidation(t *testing.T) {
	svc, _, auditStore := newStudentServiceForTest(time.Now())

	tests := []struct {
		name    string
		input   RegisterStudentInput
		wantErr error
	}{
		{
			name:    "empty first name",
			input:   RegisterStudentInput{FirstName: "  ", LastName: "Patel"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "empty last name",
			input:   RegisterStudentInput{FirstName: "Asha", LastName: ""},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "invalid gender code",
			input:   RegisterStudentInput{FirstName: "Asha", LastName: "Patel", Gender: strPtr("X")},
			wantErr: apperrors.ErrConstraintViolation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterStudent(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Nothing reached the store or the audit log.
	assert.Empty(t, auditStore.records)
}

func TestUpdateContactAuditsChangedFields(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	id, err := svc.RegisterStudent(context.Background(), RegisterStudentInput{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     strPtr("asha.patel@example.com"),
		Phone:     strPtr("+91-9000000000"),
	})
	require.NoError(t, err)

	err = svc.UpdateContact(context.Background(), id, ContactUpdate{
		Email: strPtr("asha2@example.com"),
		Phone: strPtr("+91-9111111111"),
	})
	require.NoError(t, err)

	trail, err := svc.ListAuditTrail(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, trail, 3) // insert + two field updates

	emailRecord := trail[1]
	assert.Equal(t, models.ChangeTypeUpdate, emailRecord.ChangeType)
	require.NotNil(t, emailRecord.FieldName)
	assert.Equal(t, "Email", *emailRecord.FieldName)
	assert.Equal(t, "asha.patel@example.com", *emailRecord.OldValue)
	assert.Equal(t, "asha2@example.com", *emailRecord.NewValue)

	phoneRecord := trail[2]
	require.NotNil(t, phoneRecord.FieldName)
	assert.Equal(t, "Phone", *phoneRecord.FieldName)
	assert.Equal(t, "+91-9000000000", *phoneRecord.OldValue)
	assert.Equal(t, "+91-9111111111", *phoneRecord.NewValue)
}

func TestUpdateContactSameValueAppendsNothing(t *testing.T) {
	svc, _, auditStore := newStudentServiceForTest(time.Now())

	id, err := svc.RegisterStudent(context.Background(), RegisterStudentInput{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     strPtr("asha.patel@example.com"),
	})
	require.NoError(t, err)

	err = svc.UpdateContact(context.Background(), id, ContactUpdate{Email: strPtr("asha.patel@example.com")})
	require.NoError(t, err)

	require.Len(t, auditStore.records, 1) // only the insert record
}

func TestUpdateContactNoFields(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Now())

	err := svc.UpdateContact(context.Background(), 1, ContactUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateContactMissingStudent(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Now())

	err := svc.UpdateContact(context.Background(), 404, ContactUpdate{Email: strPtr("x@example.com")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteStudentKeepsAuditTrail(t *testing.T) {
	svc, students, _ := newStudentServiceForTest(time.Now())

	id, err := svc.RegisterStudent(context.Background(), RegisterStudentInput{
		FirstName: "Asha",
		LastName:  "Patel",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(context.Background(), id))
	assert.NotContains(t, students.students, id)

	// The trail outlives the student.
	trail, err := svc.ListAuditTrail(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, models.ChangeTypeInsert, trail[0].ChangeType)
	assert.Equal(t, models.ChangeTypeDelete, trail[1].ChangeType)
}

func TestDeleteStudentMissing(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Now())

	err := svc.DeleteStudent(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFullName(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Now())

	id, err := svc.RegisterStudent(context.Background(), RegisterStudentInput{
		FirstName: "Asha",
		LastName:  "Patel",
	})
	require.NoError(t, err)

	name, err := svc.FullName(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Asha Patel", name)
}

func TestFullNameMissingStudentReturnsEmpty(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Now())

	name, err := svc.FullName(context.Background(), 404)
	require.NoError(t, err)
	assert.Equal(t, "", name)

	name, err = svc.FullName(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "", name)

	name, err = svc.FullName(context.Background(), -5)
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestGetStudentByIDInvalid(t *testing.T) {
	svc, _, _ := newStudentServiceForTest(time.Now())

	_, err := svc.GetStudentByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
