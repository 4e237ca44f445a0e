package models

import (
	"strings"
	"time"
)

// Gender codes accepted on the students table.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// ValidGender reports whether code is one of the accepted gender codes.
func ValidGender(code string) bool {
	return code == GenderMale || code == GenderFemale || code == GenderOther
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64      `json:"id" db:"id" example:"1"` // Unique identifier for the student record
	FirstName     string     `json:"firstName" db:"first_name" example:"Asha"`
	LastName      string     `json:"lastName" db:"last_name" example:"Patel"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"` // Nullable
	Email         *string    `json:"email,omitempty" db:"email"`               // Nullable, unique when present
	Phone         *string    `json:"phone,omitempty" db:"phone"`               // Nullable
	Gender        *string    `json:"gender,omitempty" db:"gender"`             // Nullable, one of M/F/O
	AdmissionDate time.Time  `json:"admissionDate" db:"admission_date"`
	IsActive      bool       `json:"isActive" db:"is_active"`
}

// FullName returns "First Last" with surrounding whitespace trimmed.
func (s *Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
