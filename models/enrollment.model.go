package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. Only active enrollments may transition.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// Enrollment links a user to a course. The composite unique index keeps
// at most one row per (user, course) pair even under concurrent enrolls.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status     string    `json:"status" gorm:"size:50;default:'active'"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Progress is an append-only log of lesson completion events; rows
// accumulate rather than being upserted so history is preserved
type Progress struct {
	gorm.Model
	UserID    uint  `json:"user_id" gorm:"index;not null"`
	CourseID  uint  `json:"course_id" gorm:"index;not null"`
	LessonID  *uint `json:"lesson_id"`
	Completed bool  `json:"completed" gorm:"default:false"`
}
