package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

type fakeFacultyStore struct {
	members map[int64]*models.Faculty
	nextID  int64
}

func newFakeFacultyStore() *fakeFacultyStore {
	return &fakeFacultyStore{members: make(map[int64]*models.Faculty), nextID: 1}
}

func (f *fakeFacultyStore) CreateFaculty(_ context.Context, faculty *models.Faculty) (int64, error) {
	id := f.nextID
	f.nextID++
	copied := *faculty
	copied.ID = id
	f.members[id] = &copied
	return id, nil
}

func (f *fakeFacultyStore) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("faculty member", id)
	}
	copied := *member
	return &copied, nil
}

func (f *fakeFacultyStore) ListFaculty(_ context.Context) ([]*models.Faculty, error) {
	out := make([]*models.Faculty, 0, len(f.members))
	for _, m := range f.members {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeFacultyStore) UpdateFaculty(_ context.Context, faculty *models.Faculty) error {
	if _, ok := f.members[faculty.ID]; !ok {
		return apperrors.NewNotFoundError("faculty member", faculty.ID)
	}
	copied := *faculty
	f.members[faculty.ID] = &copied
	return nil
}

func (f *fakeFacultyStore) DeleteFaculty(_ context.Context, id int64) error {
	if _, ok := f.members[id]; !ok {
		return apperrors.NewNotFoundError("faculty member", id)
	}
	delete(f.members, id)
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateFaculty(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())

	id, err := svc.CreateFaculty(context.Background(), &models.Faculty{
		FullName:   "Dr. Meera Iyer",
		Department: strPtr("Computer Science"),
		Salary:     floatPtr(85000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	member, err := svc.GetFacultyByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Meera Iyer", member.FullName)
}

func TestCreateFacultyValidation(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())

	_, err := svc.CreateFaculty(context.Background(), &models.Faculty{FullName: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateFaculty(context.Background(), &models.Faculty{
		FullName: "Dr. Meera Iyer",
		Salary:   floatPtr(-1),
	})
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)

	// Zero salary passes the non-negative check.
	_, err = svc.CreateFaculty(context.Background(), &models.Faculty{
		FullName: "Visiting Lecturer",
		Salary:   floatPtr(0),
	})
	assert.NoError(t, err)
}

func TestUpdateFaculty(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())

	id, err := svc.CreateFaculty(context.Background(), &models.Faculty{FullName: "Dr. Meera Iyer"})
	require.NoError(t, err)

	err = svc.UpdateFaculty(context.Background(), &models.Faculty{
		ID:       id,
		FullName: "Dr. Meera Iyer",
		Salary:   floatPtr(92000),
	})
	require.NoError(t, err)

	member, err := svc.GetFacultyByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, member.Salary)
	assert.Equal(t, 92000.0, *member.Salary)
}

func TestUpdateFacultyInvalidID(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())

	err := svc.UpdateFaculty(context.Background(), &models.Faculty{ID: 0, FullName: "Dr. Meera Iyer"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteFaculty(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyStore())

	id, err := svc.CreateFaculty(context.Background(), &models.Faculty{FullName: "Dr. Meera Iyer"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFaculty(context.Background(), id))

	_, err = svc.GetFacultyByID(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
