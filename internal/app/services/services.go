package services

import (
	"github.com/juju/clock"

	"github.com/acadex/registry/internal/app/audit"
	"github.com/acadex/registry/internal/app/repositories"
	"github.com/acadex/registry/internal/db"
)

// Services holds all the service instances
type Services struct {
	StudentService    StudentService
	EnrollmentService EnrollmentService
	PaymentService    PaymentService
	CourseService     CourseService
	FacultyService    FacultyService
}

// NewServices initializes all services over the given database, repositories
// and audit recorder.
func NewServices(database *db.PostgresDB, repos *repositories.Repositories, recorder *audit.Recorder, clk clock.Clock) *Services {
	return &Services{
		StudentService: NewStudentService(
			database,
			repos.StudentRepository,
			recorder,
			repos.AuditRepository,
			clk,
		),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository,
			repos.StudentRepository,
			repos.CourseRepository,
			clk,
		),
		PaymentService: NewPaymentService(
			repos.PaymentRepository,
			repos.StudentRepository,
			clk,
		),
		CourseService:  NewCourseService(repos.CourseRepository),
		FacultyService: NewFacultyService(repos.FacultyRepository),
	}
}
