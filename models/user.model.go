package models

import "gorm.io/gorm"

// Role names are a fixed set seeded at migration time.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// RoleNames lists every role the platform accepts at registration
func RoleNames() []string {
	return []string{RoleAdmin, RoleInstructor, RoleStudent}
}

// Role represents a user role (admin, instructor, student)
type Role struct {
	gorm.Model
	Name  string `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}

// User represents a registered account
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"not null"`
	FullName string `json:"full_name" gorm:"size:255;not null"`
	RoleID   uint   `json:"-" gorm:"index;not null"`
	Role     Role   `json:"-"`
}
