package services

import (
	"edutrack/gateway"
	"edutrack/pdfgen"
)

// Collaborator contracts. Concrete implementations live in gateway/, pdfgen/,
// ws/ and utils/; services only ever see these interfaces so tests can swap
// in fakes and nothing reaches for ambient globals.

// PaymentGateway creates payment intents with the external processor
type PaymentGateway interface {
	Configured() bool
	CreateIntent(amountCents int64, currency string, metadata map[string]string) (*gateway.Intent, error)
}

// CertificateRenderer turns certificate fields into a document
type CertificateRenderer interface {
	Render(fields pdfgen.Fields) ([]byte, error)
}

// Pusher delivers an event to a user's live connections, if any
type Pusher interface {
	Send(userID uint, event string, payload interface{}) error
}

// Mailer sends best-effort transactional email
type Mailer interface {
	SendWelcomeEmail(email, name string)
	SendEnrollmentEmail(email, name, courseTitle string)
	SendPaymentReceiptEmail(email, name, courseTitle, currency string, amountCents int64)
	SendCertificateEmail(email, name, courseTitle, serialNumber string)
}
