package services

import (
	"edutrack/models"

	"gorm.io/gorm"
)

// Summary is a platform-wide snapshot for the admin dashboard
type Summary struct {
	Users              int64 `json:"users"`
	Courses            int64 `json:"courses"`
	PublishedCourses   int64 `json:"published_courses"`
	ActiveEnrollments  int64 `json:"active_enrollments"`
	CompletedCourses   int64 `json:"completed_courses"`
	QuizSubmissions    int64 `json:"quiz_submissions"`
	CertificatesIssued int64 `json:"certificates_issued"`
	RevenueCents       int64 `json:"revenue_cents"`
}

// AnalyticsService aggregates platform counters
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Summarize computes the dashboard counters in one pass of simple counts.
// Revenue only counts succeeded payments; refunds are subtracted.
func (s *AnalyticsService) Summarize() (*Summary, error) {
	var summary Summary

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{s.db.Model(&models.User{}), &summary.Users},
		{s.db.Model(&models.Course{}), &summary.Courses},
		{s.db.Model(&models.Course{}).Where("published = ?", true), &summary.PublishedCourses},
		{s.db.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentActive), &summary.ActiveEnrollments},
		{s.db.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentCompleted), &summary.CompletedCourses},
		{s.db.Model(&models.Submission{}), &summary.QuizSubmissions},
		{s.db.Model(&models.Certificate{}), &summary.CertificatesIssued},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var gross, refunded int64
	err := s.db.Model(&models.Payment{}).Where("status = ?", models.PaymentSucceeded).
		Select("COALESCE(SUM(amount_cents), 0)").Scan(&gross).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Payment{}).Where("status = ?", models.PaymentRefunded).
		Select("COALESCE(SUM(amount_cents), 0)").Scan(&refunded).Error
	if err != nil {
		return nil, err
	}
	summary.RevenueCents = gross - refunded

	return &summary, nil
}
