package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	courses map[int64]*models.Course
	byCode  map[string]int64
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		courses: make(map[int64]*models.Course),
		byCode:  make(map[string]int64),
		nextID:  1,
	}
}

func (f *fakeCourseStore) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	if course.Code != nil {
		if _, ok := f.byCode[*course.Code]; ok {
			return 0, apperrors.NewUniquenessError("code", nil)
		}
	}
	id := f.nextID
	f.nextID++
	copied := *course
	copied.ID = id
	f.courses[id] = &copied
	if course.Code != nil {
		f.byCode[*course.Code] = id
	}
	return id, nil
}

func (f *fakeCourseStore) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("course", id)
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	id, ok := f.byCode[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return f.GetCourseByID(ctx, id)
}

func (f *fakeCourseStore) ListCourses(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCourseStore) DeleteCourse(_ context.Context, id int64) error {
	course, ok := f.courses[id]
	if !ok {
		return apperrors.NewNotFoundError("course", id)
	}
	if course.Code != nil {
		delete(f.byCode, *course.Code)
	}
	delete(f.courses, id)
	return nil
}

func TestCreateCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	id, err := svc.CreateCourse(context.Background(), &models.Course{
		Name:    "Introduction to Databases",
		Code:    strPtr("DB101"),
		Credits: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	course, err := svc.GetCourseByCode(context.Background(), "DB101")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Databases", course.Name)
}

func TestCreateCourseValidation(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	tests := []struct {
		name    string
		course  *models.Course
		wantErr error
	}{
		{
			name:    "empty name",
			course:  &models.Course{Name: "  ", Credits: 3},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "credits below minimum",
			course:  &models.Course{Name: "Databases", Credits: 0},
			wantErr: apperrors.ErrConstraintViolation,
		},
		{
			name:    "credits above maximum",
			course:  &models.Course{Name: "Databases", Credits: 11},
			wantErr: apperrors.ErrConstraintViolation,
		},
		{
			name:    "lowercase course code",
			course:  &models.Course{Name: "Databases", Code: strPtr("db101"), Credits: 3},
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCourse(context.Background(), tc.course)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateCourseCreditBounds(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Seminar", Credits: 1})
	assert.NoError(t, err)
	_, err = svc.CreateCourse(context.Background(), &models.Course{Name: "Thesis", Credits: 10})
	assert.NoError(t, err)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Databases", Code: strPtr("DB101"), Credits: 3})
	require.NoError(t, err)

	_, err = svc.CreateCourse(context.Background(), &models.Course{Name: "Databases II", Code: strPtr("DB101"), Credits: 3})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestGetCourseByCodeEmpty(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.GetCourseByCode(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	id, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Databases", Credits: 3})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(context.Background(), id))

	_, err = svc.GetCourseByID(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
