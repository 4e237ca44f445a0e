package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	FacultyRepository    *FacultyRepository
	EnrollmentRepository *EnrollmentRepository
	PaymentRepository    *PaymentRepository
	AuditRepository      *AuditRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
		AuditRepository:      NewAuditRepository(db),
	}
}
