package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"edutrack/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email. It prefers the SendGrid API when a key
// is configured and falls back to plain SMTP otherwise. Every trigger is
// fire-and-forget: mail failures are logged, never surfaced to the caller.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether any delivery path is configured
func (m *Mailer) Enabled() bool {
	return m.cfg.SendgridAPIKey != "" || (m.cfg.EmailSender != "" && m.cfg.EmailPassword != "")
}

// SendEmail delivers one HTML email to the recipients
func (m *Mailer) SendEmail(to []string, subject, htmlBody string) error {
	if m.cfg.SendgridAPIKey != "" {
		return m.sendViaSendgrid(to, subject, htmlBody)
	}
	return m.sendViaSMTP(to, subject, htmlBody)
}

func (m *Mailer) sendViaSendgrid(to []string, subject, htmlBody string) error {
	from := sgmail.NewEmail(m.cfg.CertificateIssuer, m.cfg.EmailSender)
	client := sendgrid.NewSendClient(m.cfg.SendgridAPIKey)

	for _, recipient := range to {
		message := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", recipient), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
		}
	}
	return nil
}

func (m *Mailer) sendViaSMTP(to []string, subject, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := m.cfg.EmailSender
	password := m.cfg.EmailPassword

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", m.cfg.CertificateIssuer, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// getEmailTemplate wraps body content in the shared HTML layout
func (m *Mailer) getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B5C; line-height: 1.6; }
			.content h2 { color: #1A2B5C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3FA796; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; %s. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, strings.ToUpper(m.cfg.CertificateIssuer), title, bodyContent, m.cfg.CertificateIssuer)
}

func (m *Mailer) deliver(to, subject, title, body string) {
	if !m.Enabled() || to == "" {
		return
	}
	go func() {
		if err := m.SendEmail([]string{to}, subject, m.getEmailTemplate(title, body)); err != nil {
			log.Printf("Error sending email to %s: %v", to, err)
		}
	}()
}

// --- Triggers ---

// SendWelcomeEmail greets a freshly registered user
func (m *Mailer) SendWelcomeEmail(email, name string) {
	subject := "Welcome to " + m.cfg.CertificateIssuer
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been created successfully.</p>
		<p>Browse the course catalog, enroll, and track your progress from your dashboard.</p>
	`, name)

	m.deliver(email, subject, "Welcome Onboard!", body)
}

// SendEnrollmentEmail confirms course access
func (m *Mailer) SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			Complete all lessons to unlock your certificate of completion.
		</div>
	`, name, courseTitle)

	m.deliver(email, subject, "Enrollment Successful", body)
}

// SendPaymentReceiptEmail confirms a successful payment
func (m *Mailer) SendPaymentReceiptEmail(email, name, courseTitle, currency string, amountCents int64) {
	subject := "Payment Received: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>%.2f %s</strong> for <strong>%s</strong>.</p>
		<p>Course access has been granted to your account.</p>
	`, name, float64(amountCents)/100, strings.ToUpper(currency), courseTitle)

	m.deliver(email, subject, "Payment Confirmed", body)
}

// SendCertificateEmail notifies the student that a certificate was issued
func (m *Mailer) SendCertificateEmail(email, name, courseTitle, serialNumber string) {
	subject := "Course Completion Certificate"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box">
			Your certificate serial number: <strong>%s</strong>
		</div>
		<p>You can download the certificate from your dashboard at any time.</p>
	`, name, courseTitle, serialNumber)

	m.deliver(email, subject, "Certificate Issued", body)
}
