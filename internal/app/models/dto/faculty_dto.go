package dto

// FacultyRequest is the payload for creating or updating a faculty member.
type FacultyRequest struct {
	FullName   string   `json:"fullName" binding:"required" example:"Dr. Meera Iyer"`
	Department *string  `json:"department,omitempty" example:"Computer Science"`
	Email      *string  `json:"email,omitempty" binding:"omitempty,email"`
	Salary     *float64 `json:"salary,omitempty" example:"85000"`
	HireDate   *string  `json:"hireDate,omitempty" example:"2019-08-01"` // YYYY-MM-DD
}
