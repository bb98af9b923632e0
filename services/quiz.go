package services

import (
	"errors"
	"fmt"
	"time"

	"edutrack/models"

	"gorm.io/gorm"
)

// QuizService owns quiz authoring, grading and submissions
type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// ListByCourse returns the quizzes of a course with their questions and
// options loaded
func (s *QuizService) ListByCourse(courseID uint) ([]models.Quiz, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var quizzes []models.Quiz
	err := s.db.Preload("Questions.Options").Where("course_id = ?", courseID).
		Order("created_at ASC").Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Get fetches one quiz with questions and options
func (s *QuizService) Get(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Preload("Questions.Options").First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// CreateQuiz attaches a new quiz to a course after an ownership check
func (s *QuizService) CreateQuiz(courseID, actorID uint, actorRole, title string, passingScore int) (*models.Quiz, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if passingScore < 0 || passingScore > 100 {
		return nil, fmt.Errorf("%w: passing score must be between 0 and 100", ErrValidation)
	}

	quiz := models.Quiz{
		CourseID:     courseID,
		Title:        title,
		PassingScore: passingScore,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// AddQuestion creates a question together with its options in one
// transaction, so a half-written question is never visible. A correct index
// outside the option range is clamped to the nearest valid option.
func (s *QuizService) AddQuestion(quizID, actorID uint, actorRole, text string, optionTexts []string, correctIndex int) (*models.Question, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var course models.Course
	if err := s.db.First(&course, quiz.CourseID).Error; err != nil {
		return nil, err
	}
	if course.InstructorID != actorID && actorRole != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if len(optionTexts) < 2 {
		return nil, fmt.Errorf("%w: a question needs at least two options", ErrValidation)
	}

	if correctIndex < 0 {
		correctIndex = 0
	}
	if correctIndex >= len(optionTexts) {
		correctIndex = len(optionTexts) - 1
	}

	question := models.Question{QuizID: quizID, Text: text}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, optionText := range optionTexts {
			option := models.QuizOption{QuestionID: question.ID, Text: optionText}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			question.Options = append(question.Options, option)
		}
		correctID := question.Options[correctIndex].ID
		question.CorrectOptionID = &correctID
		return tx.Model(&models.Question{}).Where("id = ?", question.ID).
			Update("correct_option_id", correctID).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Grade scores a set of answers against a quiz, 0-100, rounded down. A quiz
// with no questions scores 100. Answers keyed by an id that is not one of
// the quiz's questions are ignored.
func (s *QuizService) Grade(quiz *models.Quiz, answers map[uint]uint) int {
	if len(quiz.Questions) == 0 {
		return 100
	}

	correct := 0
	for _, question := range quiz.Questions {
		selected, answered := answers[question.ID]
		if !answered || question.CorrectOptionID == nil {
			continue
		}
		if selected == *question.CorrectOptionID {
			correct++
		}
	}
	return correct * 100 / len(quiz.Questions)
}

// Submit grades the answers and records the attempt. Every attempt is
// persisted, passing or not, and scores are never rewritten.
func (s *QuizService) Submit(userID, quizID uint, answers map[uint]uint) (*models.Submission, bool, error) {
	quiz, err := s.Get(quizID)
	if err != nil {
		return nil, false, err
	}

	score := s.Grade(quiz, answers)
	submission := models.Submission{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		SubmittedAt: time.Now(),
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, false, err
	}
	return &submission, score >= quiz.PassingScore, nil
}

// ListSubmissions returns the caller's attempts for one quiz, newest first
func (s *QuizService) ListSubmissions(userID, quizID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("submitted_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
