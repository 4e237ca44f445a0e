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

const studentEntity = "student"

// StudentRepository handles student database operations. Mutating methods
// take a Querier so the service layer can run them in the same transaction
// as the audit rows they imply.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent inserts a new student and returns the assigned id.
func (r *StudentRepository) CreateStudent(ctx context.Context, q Querier, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "date_of_birth", "email", "phone", "gender", "admission_date", "is_active").
		Values(student.FirstName, student.LastName, student.DateOfBirth, student.Email,
			student.Phone, student.Gender, student.AdmissionDate, student.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewUniquenessError("email", err)
		}
		if dberrors.IsCheckViolation(err) {
			return 0, apperrors.NewConstraintError(dberrors.ConstraintName(err), err)
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

const studentColumns = "id, first_name, last_name, date_of_birth, email, phone, gender, admission_date, is_active"

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.FirstName, &student.LastName, &student.DateOfBirth,
		&student.Email, &student.Phone, &student.Gender, &student.AdmissionDate, &student.IsActive)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(studentEntity, id)
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetStudentForUpdate retrieves a student inside the caller's transaction,
// locking the row so the audit diff is computed against a stable before-image.
func (r *StudentRepository) GetStudentForUpdate(ctx context.Context, q Querier, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student for update query: %w", err)
	}

	student, err := scanStudent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(studentEntity, id)
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error locking student row")
		return nil, fmt.Errorf("error getting student for update: %w", err)
	}

	return student, nil
}

// StudentExists reports whether a student row exists.
func (r *StudentRepository) StudentExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// UpdateContact updates a student's email and phone.
func (r *StudentRepository) UpdateContact(ctx context.Context, q Querier, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"email": student.Email,
			"phone": student.Phone,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewUniquenessError("email", err)
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(studentEntity, student.ID)
	}
	return nil
}

// DeleteStudent removes a student row. Enrollments and payments cascade via
// foreign keys; audit history is kept.
func (r *StudentRepository) DeleteStudent(ctx context.Context, q Querier, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(studentEntity, id)
	}
	return nil
}

// FullName returns "First Last" for a student, or "" when no such student
// exists. A missing student is not an error here.
func (r *StudentRepository) FullName(ctx context.Context, id int64) (string, error) {
	var first, last string
	err := r.db.QueryRow(ctx, `SELECT first_name, last_name FROM students WHERE id = $1`, id).Scan(&first, &last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error deriving full name: %w", err)
	}

	s := models.Student{FirstName: first, LastName: last}
	return s.FullName(), nil
}

// ListStudents retrieves all students ordered by id.
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
