package models

import "time"

// PaymentModeBankTransfer is the default mode assigned to new payments.
const PaymentModeBankTransfer = "Bank Transfer"

// Payment records money received from a student.
type Payment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Amount    float64   `json:"amount" db:"amount"` // Non-negative
	PaidAt    time.Time `json:"paidAt" db:"paid_at"`
	Mode      string    `json:"mode" db:"mode"`
	Reference *string   `json:"reference,omitempty" db:"reference"`
}
