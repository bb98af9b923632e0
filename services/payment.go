package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"edutrack/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentService tracks course purchases through the external gateway and
// reconciles their asynchronous confirmations
type PaymentService struct {
	db            *gorm.DB
	gateway       PaymentGateway
	enrollments   *EnrollmentService
	notifications *NotificationService
	mailer        Mailer
	audit         *AuditService
}

func NewPaymentService(db *gorm.DB, gw PaymentGateway, enrollments *EnrollmentService, notifications *NotificationService, mailer Mailer, audit *AuditService) *PaymentService {
	return &PaymentService{
		db:            db,
		gateway:       gw,
		enrollments:   enrollments,
		notifications: notifications,
		mailer:        mailer,
		audit:         audit,
	}
}

// CreateIntent starts a purchase. The payment row is persisted in "created"
// state before the gateway is called, so a confirmation that arrives while
// the request is still in flight can always be correlated back. Free courses
// are not purchasable; enroll directly instead.
func (s *PaymentService) CreateIntent(userID, courseID uint) (*models.Payment, string, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	if course.PriceCents <= 0 {
		return nil, "", fmt.Errorf("%w: course is free, enroll directly", ErrValidation)
	}
	if !s.gateway.Configured() {
		return nil, "", ErrGatewayNotConfigured
	}

	payment := models.Payment{
		UserID:      userID,
		CourseID:    courseID,
		AmountCents: course.PriceCents,
		Currency:    "usd",
		Status:      models.PaymentCreated,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, "", err
	}

	metadata := map[string]string{
		"payment_id": strconv.FormatUint(uint64(payment.ID), 10),
		"user_id":    strconv.FormatUint(uint64(userID), 10),
		"course_id":  strconv.FormatUint(uint64(courseID), 10),
	}
	intent, err := s.gateway.CreateIntent(payment.AmountCents, payment.Currency, metadata)
	if err != nil {
		// The row stays correlatable; a retry starts a fresh payment
		s.db.Model(&models.Payment{}).
			Where("id = ? AND status = ?", payment.ID, models.PaymentCreated).
			Update("status", models.PaymentFailed)
		return nil, "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	updates := map[string]interface{}{
		"stripe_payment_intent_id": intent.ID,
		"gateway_response":         datatypes.JSON(intent.Raw),
	}
	if err := s.db.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(updates).Error; err != nil {
		return nil, "", err
	}
	payment.StripePaymentIntentID = intent.ID

	return &payment, intent.ClientSecret, nil
}

// Reconcile confirms a payment identified by its gateway reference. The
// transition to succeeded happens at most once: replays and concurrent
// confirmations are absorbed, and only the winning call grants course access.
func (s *PaymentService) Reconcile(externalRef string) error {
	payment, err := s.findByRef(externalRef)
	if err != nil {
		return err
	}
	if payment.Status == models.PaymentSucceeded {
		return nil
	}

	result := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentCreated).
		Update("status", models.PaymentSucceeded)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Lost to a concurrent confirmation or the payment already reached a
		// terminal state; either way this delivery has nothing left to do
		return nil
	}

	if _, err := s.enrollments.Enroll(payment.UserID, payment.CourseID); err != nil {
		return fmt.Errorf("payment %d confirmed but enrollment failed: %w", payment.ID, err)
	}

	s.audit.Record(nil, "payment.succeeded", "payment", payment.ID)

	var course models.Course
	var user models.User
	if err := s.db.First(&course, payment.CourseID).Error; err != nil {
		log.Printf("Payment %d reconciled but course %d lookup failed: %v", payment.ID, payment.CourseID, err)
		return nil
	}
	message := fmt.Sprintf("Payment received. You are now enrolled in %s.", course.Title)
	if _, err := s.notifications.Record(payment.UserID, message); err != nil {
		log.Printf("Payment %d reconciled but notification failed: %v", payment.ID, err)
	}
	if err := s.db.First(&user, payment.UserID).Error; err == nil {
		s.mailer.SendPaymentReceiptEmail(user.Email, user.FullName, course.Title, payment.Currency, payment.AmountCents)
	}
	return nil
}

// MarkFailed records a gateway-reported failure. Terminal payments are left
// untouched.
func (s *PaymentService) MarkFailed(externalRef string) error {
	payment, err := s.findByRef(externalRef)
	if err != nil {
		return err
	}

	result := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentCreated).
		Update("status", models.PaymentFailed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		s.audit.Record(nil, "payment.failed", "payment", payment.ID)
	}
	return nil
}

// MarkRefunded records a gateway-reported refund of a succeeded payment.
// Course access is kept; revoking it is an admin decision, not an automatic
// one.
func (s *PaymentService) MarkRefunded(externalRef string) error {
	payment, err := s.findByRef(externalRef)
	if err != nil {
		return err
	}

	result := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", payment.ID, models.PaymentSucceeded).
		Update("status", models.PaymentRefunded)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		s.audit.Record(nil, "payment.refunded", "payment", payment.ID)
	}
	return nil
}

// ListForUser returns the caller's payments, newest first
func (s *PaymentService) ListForUser(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ExpireStale fails "created" payments older than the cutoff. Gateway intents
// that never confirmed would otherwise linger forever.
func (s *PaymentService) ExpireStale(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result := s.db.Model(&models.Payment{}).
		Where("status = ? AND created_at < ?", models.PaymentCreated, cutoff).
		Update("status", models.PaymentFailed)
	return result.RowsAffected, result.Error
}

func (s *PaymentService) findByRef(externalRef string) (*models.Payment, error) {
	if externalRef == "" {
		return nil, ErrNotFound
	}
	var payment models.Payment
	if err := s.db.Where("stripe_payment_intent_id = ?", externalRef).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}
