package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	pairErr := &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_student_course_key"}

	assert.True(t, IsDuplicateConstraintError(pairErr, "enrollments_student_course_key"))
	assert.False(t, IsDuplicateConstraintError(pairErr, "students_email_key"))
	// A check violation with the same constraint name is not a duplicate.
	assert.False(t, IsDuplicateConstraintError(
		&pgconn.PgError{Code: "23514", ConstraintName: "enrollments_student_course_key"},
		"enrollments_student_course_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_student_id_fkey"}

	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("wrapped: %w", fkErr)))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

func TestIsCheckViolation(t *testing.T) {
	checkErr := &pgconn.PgError{Code: "23514", ConstraintName: "payments_amount_check"}

	assert.True(t, IsCheckViolation(checkErr))
	assert.False(t, IsCheckViolation(&pgconn.PgError{Code: "23505"}))
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "students_email_key",
		ConstraintName(&pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}))
	assert.Equal(t, "courses_credits_check",
		ConstraintName(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23514", ConstraintName: "courses_credits_check"})))
	assert.Equal(t, "", ConstraintName(errors.New("plain error")))
	assert.Equal(t, "", ConstraintName(nil))
}
