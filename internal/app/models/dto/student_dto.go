package dto

// CreateStudentRequest is the payload for registering a student.
type CreateStudentRequest struct {
	FirstName   string  `json:"firstName" binding:"required" example:"Asha"`
	LastName    string  `json:"lastName" binding:"required" example:"Patel"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" example:"2001-04-12"` // YYYY-MM-DD
	Email       *string `json:"email,omitempty" binding:"omitempty,email" example:"asha.patel@example.com"`
	Phone       *string `json:"phone,omitempty" example:"+91-9000000000"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,gendercode" example:"F"` // M, F or O
}

// UpdateContactRequest carries new contact values; omitted fields are left
// unchanged.
type UpdateContactRequest struct {
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// FullNameResponse is the result of the full-name derivation. FullName is ""
// when the student does not exist.
type FullNameResponse struct {
	FullName string `json:"fullName" example:"Asha Patel"`
}
