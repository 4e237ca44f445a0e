package models

import "time"

// Faculty represents a member of the teaching staff.
type Faculty struct {
	ID         int64      `json:"id" db:"id"`
	FullName   string     `json:"fullName" db:"full_name"`
	Department *string    `json:"department,omitempty" db:"department"`
	Email      *string    `json:"email,omitempty" db:"email"` // Nullable, unique when present
	Salary     *float64   `json:"salary,omitempty" db:"salary"`
	HireDate   *time.Time `json:"hireDate,omitempty" db:"hire_date"`
}
