package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/controllers"
	"github.com/acadex/registry/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	facultyController *controllers.FacultyController,
	enrollmentController *controllers.EnrollmentController,
	paymentController *controllers.PaymentController,
	actorMiddleware *middleware.ActorMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Actor attribution applies everywhere so mutations carry a changed_by
	v1.Use(actorMiddleware.ActorAttribution())

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.RegisterStudent)
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.PATCH("/:id/contact", studentController.UpdateContact)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/full-name", studentController.FullName)
		students.GET("/:id/audit", studentController.AuditTrail)
		students.GET("/:id/enrollments", enrollmentController.ListStudentCourses)
		students.GET("/:id/payments", paymentController.ListStudentPayments)
		students.GET("/:id/payments/total", paymentController.TotalStudentPayments)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/code/:code", courseController.GetCourseByCode)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Faculty routes
	faculty := v1.Group("/faculty")
	{
		faculty.POST("", facultyController.CreateFaculty)
		faculty.GET("", facultyController.ListFaculty)
		faculty.GET("/:id", facultyController.GetFaculty)
		faculty.PUT("/:id", facultyController.UpdateFaculty)
		faculty.DELETE("/:id", facultyController.DeleteFaculty)
	}

	// Enrollment and payment routes
	v1.POST("/enrollments", enrollmentController.Enroll)
	v1.POST("/payments", paymentController.RecordPayment)
}
