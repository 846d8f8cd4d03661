package domain

import "time"

// PaymentStatus enumerates ledger entry states.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one entry of the payment ledger.
type Payment struct {
	ID         string        `json:"id"`
	UserName   string        `json:"userName"`
	Email      string        `json:"email"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Method     string        `json:"method"`
	Status     PaymentStatus `json:"status"`
	Date       time.Time     `json:"date"`
	CourseSlug string        `json:"courseSlug"`
}
