package services

import (
	"errors"
	"fmt"

	"edutrack/models"

	"gorm.io/gorm"
)

// CatalogService owns course and lesson authoring plus the public catalog
type CatalogService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewCatalogService(db *gorm.DB, audit *AuditService) *CatalogService {
	return &CatalogService{db: db, audit: audit}
}

// CourseUpdate carries the editable course fields; nil means unchanged
type CourseUpdate struct {
	Title       *string
	Description *string
	PriceCents  *int64
	Published   *bool
}

// ListCourses returns the catalog, newest first. When publishedOnly is set,
// drafts are hidden.
func (s *CatalogService) ListCourses(publishedOnly bool) ([]models.Course, error) {
	query := s.db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches one course
func (s *CatalogService) GetCourse(courseID uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course owned by the instructor
func (s *CatalogService) CreateCourse(instructorID uint, title, description string, priceCents int64, published bool) (*models.Course, error) {
	if priceCents < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	course := models.Course{
		Title:        title,
		Description:  description,
		InstructorID: instructorID,
		PriceCents:   priceCents,
		Published:    published,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies the given changes. Only the owning instructor or an
// admin may edit; ownership is checked here, not in routing.
func (s *CatalogService) UpdateCourse(courseID, actorID uint, actorRole string, update CourseUpdate) (*models.Course, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return nil, ErrForbidden
	}

	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.PriceCents != nil {
		if *update.PriceCents < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		course.PriceCents = *update.PriceCents
	}
	if update.Published != nil {
		course.Published = *update.Published
	}

	if err := s.db.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course and everything hanging off it: lessons,
// resources, quizzes with their questions, options and submissions, and
// enrollments. Payments are kept for bookkeeping.
func (s *CatalogService) DeleteCourse(courseID, actorID uint, actorRole string) error {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return ErrForbidden
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uint
		if err := tx.Model(&models.Quiz{}).Where("course_id = ?", courseID).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			var questionIDs []uint
			if err := tx.Model(&models.Question{}).Where("quiz_id IN ?", quizIDs).Pluck("id", &questionIDs).Error; err != nil {
				return err
			}
			if len(questionIDs) > 0 {
				if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.QuizOption{}).Error; err != nil {
					return err
				}
				if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&models.Question{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&models.Submission{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", courseID).Delete(&models.Quiz{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, courseID).Error
	})
	if err != nil {
		return err
	}

	s.audit.Record(&actorID, "course.delete", "course", courseID)
	return nil
}

// ListLessons returns the lessons of a course in display order
func (s *CatalogService) ListLessons(courseID uint) ([]models.Lesson, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}

	var lessons []models.Lesson
	if err := s.db.Where("course_id = ?", courseID).Order("position ASC, id ASC").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetLesson fetches one lesson
func (s *CatalogService) GetLesson(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

// CreateLesson appends a lesson to a course. A zero position places it after
// the current last lesson.
func (s *CatalogService) CreateLesson(courseID, actorID uint, actorRole, title, content, videoURL string, position int) (*models.Lesson, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return nil, ErrForbidden
	}

	if position == 0 {
		var maxPosition int
		s.db.Model(&models.Lesson{}).Where("course_id = ?", courseID).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPosition)
		position = maxPosition + 1
	}

	lesson := models.Lesson{
		CourseID: courseID,
		Title:    title,
		Content:  content,
		VideoURL: videoURL,
		Position: position,
	}
	if err := s.db.Create(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// LessonUpdate carries the editable lesson fields; nil means unchanged
type LessonUpdate struct {
	Title    *string
	Content  *string
	VideoURL *string
	Position *int
}

// UpdateLesson applies the given changes after an ownership check on the
// parent course
func (s *CatalogService) UpdateLesson(lessonID, actorID uint, actorRole string, update LessonUpdate) (*models.Lesson, error) {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	course, err := s.GetCourse(lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return nil, ErrForbidden
	}

	if update.Title != nil {
		lesson.Title = *update.Title
	}
	if update.Content != nil {
		lesson.Content = *update.Content
	}
	if update.VideoURL != nil {
		lesson.VideoURL = *update.VideoURL
	}
	if update.Position != nil {
		lesson.Position = *update.Position
	}

	if err := s.db.Save(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson removes a lesson and its progress events
func (s *CatalogService) DeleteLesson(lessonID, actorID uint, actorRole string) error {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return err
	}
	course, err := s.GetCourse(lesson.CourseID)
	if err != nil {
		return err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return ErrForbidden
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Lesson{}, lessonID).Error
	})
	if err != nil {
		return err
	}

	s.audit.Record(&actorID, "lesson.delete", "lesson", lessonID)
	return nil
}
