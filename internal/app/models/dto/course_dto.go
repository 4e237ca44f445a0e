package dto

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required" example:"Introduction to Databases"`
	Code        *string `json:"code,omitempty" example:"DB101"`
	Credits     int     `json:"credits" binding:"required" example:"3"` // 1..10
	Description *string `json:"description,omitempty"`
}
