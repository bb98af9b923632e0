package services

import (
	"errors"
	"fmt"

	"edutrack/models"

	"gorm.io/gorm"
)

// ProgressService records lesson completion events and derives course
// completion from them
type ProgressService struct {
	db            *gorm.DB
	enrollments   *EnrollmentService
	notifications *NotificationService
}

func NewProgressService(db *gorm.DB, enrollments *EnrollmentService, notifications *NotificationService) *ProgressService {
	return &ProgressService{db: db, enrollments: enrollments, notifications: notifications}
}

// RecordCompletion appends a progress event. Events are never upserted, so
// re-completing a lesson adds a row and the history stays intact. When the
// event brings the user to 100% of the course's lessons, the active
// enrollment flips to completed.
func (s *ProgressService) RecordCompletion(userID, courseID uint, lessonID *uint, completed bool) (*models.Progress, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if lessonID != nil {
		var lesson models.Lesson
		if err := s.db.First(&lesson, *lessonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown lesson", ErrValidation)
			}
			return nil, err
		}
		if lesson.CourseID != courseID {
			return nil, fmt.Errorf("%w: lesson does not belong to the course", ErrValidation)
		}
	}

	event := models.Progress{
		UserID:    userID,
		CourseID:  courseID,
		LessonID:  lessonID,
		Completed: completed,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}

	if completed && lessonID != nil {
		if err := s.maybeCompleteCourse(userID, courseID, course.Title); err != nil {
			return nil, err
		}
	}
	return &event, nil
}

// ListForCourse returns the caller's progress events for a course, oldest
// first
func (s *ProgressService) ListForCourse(userID, courseID uint) ([]models.Progress, error) {
	var events []models.Progress
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("created_at ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CompletionPercent reports how much of the course's lessons the user has
// completed, 0-100. A course with no lessons counts as 0.
func (s *ProgressService) CompletionPercent(userID, courseID uint) (int, error) {
	var totalLessons int64
	if err := s.db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&totalLessons).Error; err != nil {
		return 0, err
	}
	if totalLessons == 0 {
		return 0, nil
	}

	var completedLessons int64
	err := s.db.Model(&models.Progress{}).
		Where("user_id = ? AND course_id = ? AND completed = ? AND lesson_id IS NOT NULL", userID, courseID, true).
		Distinct("lesson_id").Count(&completedLessons).Error
	if err != nil {
		return 0, err
	}

	return int(completedLessons * 100 / totalLessons), nil
}

func (s *ProgressService) maybeCompleteCourse(userID, courseID uint, courseTitle string) error {
	percent, err := s.CompletionPercent(userID, courseID)
	if err != nil {
		return err
	}
	if percent < 100 {
		return nil
	}

	transitioned, err := s.enrollments.CompleteByPair(userID, courseID)
	if err != nil {
		return err
	}
	if transitioned {
		message := fmt.Sprintf("Congratulations! You completed %s. Your certificate is ready.", courseTitle)
		if _, err := s.notifications.Record(userID, message); err != nil {
			return err
		}
	}
	return nil
}
