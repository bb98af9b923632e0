package services

import (
	"errors"
	"time"

	"edutrack/models"

	"gorm.io/gorm"
)

// EnrollmentService owns the user-course enrollment lifecycle
type EnrollmentService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewEnrollmentService(db *gorm.DB, mailer Mailer) *EnrollmentService {
	return &EnrollmentService{db: db, mailer: mailer}
}

// Enroll grants course access. Enrolling is idempotent: an existing
// enrollment is returned unchanged, whatever its status, and a concurrent
// duplicate insert is resolved by re-reading the winning row.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     models.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the other writer's row is the enrollment
			if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err == nil {
		s.mailer.SendEnrollmentEmail(user.Email, user.FullName, course.Title)
	}
	return &enrollment, nil
}

// ListForUser returns the caller's enrollments in every status
func (s *EnrollmentService) ListForUser(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).Order("enrolled_at DESC").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Get fetches one enrollment scoped to its owner. A foreign enrollment is
// reported as missing, not forbidden, so ids cannot be probed.
func (s *EnrollmentService) Get(enrollmentID, callerID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if enrollment.UserID != callerID {
		return nil, ErrNotFound
	}
	return &enrollment, nil
}

// Cancel moves the caller's enrollment from active to cancelled. Completed
// and cancelled enrollments stay as they are.
func (s *EnrollmentService) Cancel(enrollmentID, callerID uint) (*models.Enrollment, error) {
	enrollment, err := s.Get(enrollmentID, callerID)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Enrollment{}).
		Where("id = ? AND status = ?", enrollmentID, models.EnrollmentActive).
		Update("status", models.EnrollmentCancelled)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotEligible
	}

	enrollment.Status = models.EnrollmentCancelled
	return enrollment, nil
}

// CompleteByPair moves an active enrollment to completed and reports whether
// the transition happened now. Called when course progress reaches 100%.
func (s *EnrollmentService) CompleteByPair(userID, courseID uint) (bool, error) {
	result := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, models.EnrollmentActive).
		Update("status", models.EnrollmentCompleted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
