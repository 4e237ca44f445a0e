package dto

// RecordPaymentRequest is the payload for recording a payment. Mode defaults
// to "Bank Transfer" and Reference is generated when omitted.
type RecordPaymentRequest struct {
	StudentID int64   `json:"studentId" binding:"required" example:"1"`
	Amount    float64 `json:"amount" example:"5000"`
	Mode      *string `json:"mode,omitempty" example:"Bank Transfer"`
	Reference *string `json:"reference,omitempty"`
}

// TotalPaymentsResponse reports the sum of a student's payments.
type TotalPaymentsResponse struct {
	StudentID int64   `json:"studentId" example:"1"`
	Total     float64 `json:"total" example:"5000"`
}
