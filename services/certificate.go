package services

import (
	"errors"
	"time"

	"edutrack/models"
	"edutrack/pdfgen"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService issues course-completion certificates
type CertificateService struct {
	db       *gorm.DB
	renderer CertificateRenderer
	mailer   Mailer
	issuer   string
}

func NewCertificateService(db *gorm.DB, renderer CertificateRenderer, mailer Mailer, issuer string) *CertificateService {
	return &CertificateService{db: db, renderer: renderer, mailer: mailer, issuer: issuer}
}

// Issue renders the caller's certificate for a completed course. The first
// call mints a serial number and records the issuance; later calls reuse the
// same record, so the serial printed on the document never changes.
func (s *CertificateService) Issue(userID, courseID uint) ([]byte, *models.Certificate, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ? AND status = ?",
		userID, courseID, models.EnrollmentCompleted).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotEligible
		}
		return nil, nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, nil, err
	}
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		return nil, nil, err
	}

	certificate := models.Certificate{
		UserID:   userID,
		CourseID: courseID,
	}
	result := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Attrs(models.Certificate{
			SerialNumber: uuid.NewString(),
			IssuedAt:     time.Now(),
		}).FirstOrCreate(&certificate)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	if result.RowsAffected > 0 {
		s.mailer.SendCertificateEmail(user.Email, user.FullName, course.Title, certificate.SerialNumber)
	}

	pdfBytes, err := s.renderer.Render(pdfgen.Fields{
		HolderName:   user.FullName,
		CourseTitle:  course.Title,
		Issuer:       s.issuer,
		SerialNumber: certificate.SerialNumber,
		IssueDate:    certificate.IssuedAt.Format("2006-01-02"),
	})
	if err != nil {
		return nil, nil, err
	}
	return pdfBytes, &certificate, nil
}

// ListForUser returns the caller's issued certificates, newest first
func (s *CertificateService) ListForUser(userID uint) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := s.db.Where("user_id = ?", userID).Order("issued_at DESC").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}
