package models

import "gorm.io/gorm"

// AuditLog records destructive and admin actions for after-the-fact review
type AuditLog struct {
	gorm.Model
	UserID   *uint  `json:"user_id" gorm:"index"`
	Action   string `json:"action" gorm:"size:255;not null"`
	Entity   string `json:"entity" gorm:"size:255"`
	EntityID uint   `json:"entity_id"`
}
