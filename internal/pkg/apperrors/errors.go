package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when a unique value or pair is duplicated.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrConstraintViolation is returned when a value-range or enumerated-value
	// check fails (credits out of range, negative amount, invalid gender code).
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrValidationFailed is returned for malformed input detected before any
	// storage access.
	ErrValidationFailed = errors.New("validation failed")
)

// NotFoundError reports a missing entity, naming the entity type and id.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given entity type and id.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// UniquenessError reports a duplicate value on a unique column or column pair.
// The underlying storage error is kept in the chain for diagnostics.
type UniquenessError struct {
	Field string
	Err   error
}

func (e *UniquenessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("duplicate value for %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *UniquenessError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrAlreadyExists, e.Err}
	}
	return []error{ErrAlreadyExists}
}

// NewUniquenessError creates a UniquenessError for the given field, wrapping
// the storage engine error when present.
func NewUniquenessError(field string, err error) error {
	return &UniquenessError{Field: field, Err: err}
}

// ConstraintError reports a failed value check.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("constraint violated: %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint violated: %s", e.Constraint)
}

func (e *ConstraintError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConstraintViolation, e.Err}
	}
	return []error{ErrConstraintViolation}
}

// NewConstraintError creates a ConstraintError describing the failed check.
func NewConstraintError(constraint string, err error) error {
	return &ConstraintError{Constraint: constraint, Err: err}
}

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
