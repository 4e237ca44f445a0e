package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/acadex/registry/internal/app/models"
	appRepos "github.com/acadex/registry/internal/app/repositories"
	"github.com/acadex/registry/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData creates the default course catalog and a faculty record
// if they don't exist. Errors are collected rather than aborting the boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	facultyRepo := appRepos.NewFacultyRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (courses/faculty)...")
	var finalErr error

	courses := []*appModels.Course{
		{Name: "Introduction to Databases", Code: strPtr("DB101"), Credits: 3,
			Description: strPtr("Relational model, SQL, and transactions")},
		{Name: "Data Structures", Code: strPtr("CS201"), Credits: 4},
		{Name: "Calculus I", Code: strPtr("MA101"), Credits: 3},
	}
	for _, course := range courses {
		if _, err := courseRepo.CreateCourse(ctx, course); err != nil && !errors.Is(err, apperrors.ErrAlreadyExists) {
			lgr.Error().Err(err).Str("code", *course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	salary := 85000.0
	hireDate := time.Date(2019, 8, 1, 0, 0, 0, 0, time.UTC)
	member := &appModels.Faculty{
		FullName:   "Dr. Meera Iyer",
		Department: strPtr("Computer Science"),
		Email:      strPtr("meera.iyer@acadex.example"),
		Salary:     &salary,
		HireDate:   &hireDate,
	}
	if _, err := facultyRepo.CreateFaculty(ctx, member); err != nil && !errors.Is(err, apperrors.ErrAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default faculty member")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
