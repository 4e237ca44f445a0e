package dto

// EnrollRequest is the payload for enrolling a student in a course.
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"1"`
	CourseID  int64 `json:"courseId" binding:"required" example:"2"`
}
