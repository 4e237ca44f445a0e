package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("student", 42)

	assert.EqualError(t, err, "student 42 not found")
	assert.ErrorIs(t, err, ErrNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "student", notFound.Entity)
	assert.Equal(t, int64(42), notFound.ID)
}

func TestNotFoundErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("enrollment failed: %w", NewNotFoundError("course", 7))

	assert.ErrorIs(t, err, ErrNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "course", notFound.Entity)
}

func TestUniquenessError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := NewUniquenessError("email", cause)

	assert.ErrorIs(t, err, ErrAlreadyExists)
	// The storage error stays reachable through the chain.
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "email")
}

func TestUniquenessErrorWithoutCause(t *testing.T) {
	err := NewUniquenessError("(student, course) pair", nil)

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.EqualError(t, err, "duplicate value for (student, course) pair")
}

func TestConstraintError(t *testing.T) {
	err := NewConstraintError("credits must be between 1 and 10, got 12", nil)

	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Contains(t, err.Error(), "credits must be between 1 and 10")

	var constraint *ConstraintError
	require.ErrorAs(t, err, &constraint)
	assert.Equal(t, "credits must be between 1 and 10, got 12", constraint.Constraint)
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, NewNotFoundError("student", 1), ErrAlreadyExists)
	assert.NotErrorIs(t, NewUniquenessError("email", nil), ErrNotFound)
	assert.NotErrorIs(t, NewConstraintError("check", nil), ErrValidationFailed)
}

func TestIsHelper(t *testing.T) {
	err := NewNotFoundError("student", 1)

	assert.True(t, Is(err, ErrNotFound))
	assert.True(t, Is(err, ErrAlreadyExists, ErrNotFound))
	assert.False(t, Is(err, ErrAlreadyExists, ErrConstraintViolation))
}
