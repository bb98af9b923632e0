package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate records an issued course-completion credential. The serial
// number is stable: re-downloading a certificate reuses the same row.
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID     uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	SerialNumber string    `json:"serial_number" gorm:"size:64;uniqueIndex"`
	IssuedAt     time.Time `json:"issued_at"`
}
