// Package audit implements the student change log as an explicit step the
// service layer runs inside the same transaction as the mutation it
// describes, rather than logic hidden in a database trigger.
package audit

import (
	"github.com/acadex/registry/internal/app/models"
)

// TrackedField names a student column whose updates are logged field by
// field. Adding a field to the update audit is one entry here.
type TrackedField struct {
	Name string
	Get  func(*models.Student) string
}

// FieldChange is one tracked field whose value differs between the before
// and after images of a student row.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DefaultTrackedFields returns the update-audit allow-list. Untracked fields
// changing produce no audit rows. Null values compare as empty strings.
func DefaultTrackedFields() []TrackedField {
	return []TrackedField{
		{Name: "Email", Get: func(s *models.Student) string { return deref(s.Email) }},
		{Name: "Phone", Get: func(s *models.Student) string { return deref(s.Phone) }},
	}
}

// Diff returns one FieldChange per tracked field whose value differs between
// before and after, in registry order.
func Diff(fields []TrackedField, before, after *models.Student) []FieldChange {
	var changes []FieldChange
	for _, field := range fields {
		oldValue, newValue := field.Get(before), field.Get(after)
		if oldValue != newValue {
			changes = append(changes, FieldChange{Field: field.Name, Old: oldValue, New: newValue})
		}
	}
	return changes
}
