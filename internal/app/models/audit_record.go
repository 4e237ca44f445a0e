package models

import "time"

// ChangeType classifies a student mutation in the audit trail.
type ChangeType string

const (
	ChangeTypeInsert ChangeType = "insert"
	ChangeTypeUpdate ChangeType = "update"
	ChangeTypeDelete ChangeType = "delete"
)

// AuditRecord is one row of the append-only student change log. Field-level
// detail (FieldName/OldValue/NewValue) is present only for updates; inserts
// and deletes log the affected student id alone. Rows are never updated or
// deleted by application logic, and deliberately survive deletion of the
// student they describe.
type AuditRecord struct {
	ID         int64      `json:"id" db:"id"`
	StudentID  int64      `json:"studentId" db:"student_id"`
	ChangeType ChangeType `json:"changeType" db:"change_type"`
	FieldName  *string    `json:"fieldName,omitempty" db:"field_name"`
	OldValue   *string    `json:"oldValue,omitempty" db:"old_value"`
	NewValue   *string    `json:"newValue,omitempty" db:"new_value"`
	ChangedBy  *string    `json:"changedBy,omitempty" db:"changed_by"`
	ChangedAt  time.Time  `json:"changedAt" db:"changed_at"`
}
