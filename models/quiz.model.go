package models

import (
	"time"

	"gorm.io/gorm"
)

// Quiz represents a graded quiz attached to a course
type Quiz struct {
	gorm.Model
	CourseID     uint       `json:"course_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	PassingScore int        `json:"passing_score" gorm:"default:70"` // 0-100
	Questions    []Question `json:"-" gorm:"foreignKey:QuizID"`
}

// Question represents a multiple choice question; options are stored
// separately and the correct one is referenced by id
type Question struct {
	gorm.Model
	QuizID          uint         `json:"quiz_id" gorm:"index;not null"`
	Text            string       `json:"text" gorm:"type:text;not null"`
	CorrectOptionID *uint        `json:"-"`
	Options         []QuizOption `json:"options" gorm:"foreignKey:QuestionID"`
}

// QuizOption represents a selectable answer for a question
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"size:255;not null"`
}

// Submission records a graded quiz attempt; the score never changes once
// recorded, "passed" is derived from the quiz passing score on read
type Submission struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	QuizID      uint      `json:"quiz_id" gorm:"index;not null"`
	Score       int       `json:"score" gorm:"default:0"` // 0-100
	SubmittedAt time.Time `json:"submitted_at"`
}
