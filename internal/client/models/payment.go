package models

import "time"

// PaymentStatus is the approval workflow state of a payment request.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusRequested PaymentStatus = "REQUESTED"
	PaymentStatusInReview  PaymentStatus = "IN_REVIEW"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusRejected  PaymentStatus = "REJECTED"
)

// PaymentStatuses lists every status in workflow order.
var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusRequested,
	PaymentStatusInReview,
	PaymentStatusPaid,
	PaymentStatusRejected,
}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// PaymentRequest is a tutor initiated withdrawal.
type PaymentRequest struct {
	ID        ID            `json:"id"`
	TutorID   ID            `json:"tutorId"`
	TutorName string        `json:"tutorName,omitempty"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency,omitempty"`
	Status    PaymentStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
