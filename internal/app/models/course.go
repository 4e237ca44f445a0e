package models

// Credit bounds enforced on the courses table.
const (
	MinCourseCredits = 1
	MaxCourseCredits = 10
)

// Course represents a course students can enroll in.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Code        *string `json:"code,omitempty" db:"code"` // Nullable, unique when present
	Credits     int     `json:"credits" db:"credits"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
}
