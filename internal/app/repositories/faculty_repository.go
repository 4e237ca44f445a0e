package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadex/registry/internal/app/models"
	"github.com/acadex/registry/internal/pkg/apperrors"
	"github.com/acadex/registry/internal/pkg/dberrors"
	"github.com/acadex/registry/internal/pkg/logger"
)

const facultyEntity = "faculty member"

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateFaculty creates a new faculty member
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("full_name", "department", "email", "salary", "hire_date").
		Values(faculty.FullName, faculty.Department, faculty.Email, faculty.Salary, faculty.HireDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewUniquenessError("email", err)
		}
		if dberrors.IsCheckViolation(err) {
			return 0, apperrors.NewConstraintError(dberrors.ConstraintName(err), err)
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty member: %w", err)
	}

	return id, nil
}

// GetFacultyByID retrieves a faculty member by ID
func (r *FacultyRepository) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "full_name", "department", "email", "salary", "hire_date").
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.FullName, &faculty.Department,
		&faculty.Email, &faculty.Salary, &faculty.HireDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(facultyEntity, id)
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty member by ID: %w", err)
	}

	return faculty, nil
}

// ListFaculty retrieves all faculty members ordered by name.
func (r *FacultyRepository) ListFaculty(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "full_name", "department", "email", "salary", "hire_date").
		From("faculty").
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	members := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.FullName, &faculty.Department,
			&faculty.Email, &faculty.Salary, &faculty.HireDate); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

// UpdateFaculty updates an existing faculty member
func (r *FacultyRepository) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		SetMap(map[string]interface{}{
			"full_name":  faculty.FullName,
			"department": faculty.Department,
			"email":      faculty.Email,
			"salary":     faculty.Salary,
			"hire_date":  faculty.HireDate,
		}).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewUniquenessError("email", err)
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.NewConstraintError(dberrors.ConstraintName(err), err)
		}
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(facultyEntity, faculty.ID)
	}
	return nil
}

// DeleteFaculty removes a faculty member.
func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(facultyEntity, id)
	}
	return nil
}
