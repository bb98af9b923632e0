package models

import "gorm.io/gorm"

// Notification is a durable per-user message; live delivery over the push
// channel is best-effort on top of this record
type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Message string `json:"message" gorm:"size:512;not null"`
	Read    bool   `json:"read" gorm:"default:false"`
}
