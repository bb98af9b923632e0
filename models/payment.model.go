package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment statuses. "created" is the only initial state; the other three
// are terminal and absorbing.
const (
	PaymentCreated   = "created"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment tracks a course purchase through the external gateway. The row is
// persisted in "created" state before the gateway is called so asynchronous
// confirmations can always be correlated back.
type Payment struct {
	gorm.Model
	UserID                uint           `json:"user_id" gorm:"index;not null"`
	CourseID              uint           `json:"course_id" gorm:"index;not null"`
	AmountCents           int64          `json:"amount_cents" gorm:"not null"`
	Currency              string         `json:"currency" gorm:"size:10;default:'usd'"`
	Status                string         `json:"status" gorm:"size:50;default:'created'"`
	StripePaymentIntentID string         `json:"stripe_payment_intent_id" gorm:"size:255;index"`
	GatewayResponse       datatypes.JSON `json:"-"` // raw gateway payload, kept for reconciliation audits
}
