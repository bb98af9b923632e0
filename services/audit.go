package services

import (
	"log"

	"edutrack/models"

	"gorm.io/gorm"
)

// AuditService records destructive and admin actions. Recording is
// best-effort: a failed audit write is logged and never blocks the action
// that triggered it.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Record(userID *uint, action, entity string, entityID uint) {
	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to write audit log entry (%s %s/%d): %v", action, entity, entityID, err)
	}
}
