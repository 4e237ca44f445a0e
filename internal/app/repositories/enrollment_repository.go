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

// Constraint names from migrations/001_init.sql.
const (
	enrollmentPairConstraint      = "enrollments_student_course_key"
	enrollmentStudentFKConstraint = "enrollments_student_id_fkey"
	enrollmentCourseFKConstraint  = "enrollments_course_id_fkey"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateEnrollment inserts a new enrollment. Duplicate (student, course)
// pairs and vanished references are detected by the database constraints, not
// pre-checks, so concurrent duplicates resolve to exactly one success.
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "enrolled_at", "status").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.EnrolledAt, enrollment.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, enrollmentPairConstraint) {
			return 0, apperrors.NewUniquenessError("(student, course) pair", err)
		}
		// A referenced row deleted between the service pre-check and this insert
		if dberrors.IsForeignKeyViolation(err) {
			switch dberrors.ConstraintName(err) {
			case enrollmentStudentFKConstraint:
				return 0, apperrors.NewNotFoundError(studentEntity, enrollment.StudentID)
			case enrollmentCourseFKConstraint:
				return 0, apperrors.NewNotFoundError(courseEntity, enrollment.CourseID)
			}
		}
		logger.Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// ListByStudent retrieves a student's enrollments with their courses,
// ordered by enrollment date.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.course_id", "e.enrolled_at", "e.status",
		"c.id", "c.name", "c.code", "c.credits", "c.description").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{Course: &models.Course{}}
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.EnrolledAt, &enrollment.Status,
			&enrollment.Course.ID, &enrollment.Course.Name, &enrollment.Course.Code,
			&enrollment.Course.Credits, &enrollment.Course.Description); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// EnrollmentExists reports whether a (student, course) pair is already
// enrolled. Advisory only: the unique constraint is the authority.
func (r *EnrollmentRepository) EnrollmentExists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}
	return exists, nil
}

// DeleteEnrollment removes an enrollment row.
func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("enrollment", id)
	}
	return nil
}
