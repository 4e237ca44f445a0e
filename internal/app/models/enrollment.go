package models

import "time"

// EnrollmentStatusEnrolled is the default status assigned to new enrollments.
const EnrollmentStatusEnrolled = "Enrolled"

// Enrollment links a student to a course. The (student, course) pair is
// unique: a student enrolls in a given course at most once.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	Status     string    `json:"status" db:"status"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
