package services

import (
	"errors"
	"log"

	"edutrack/models"

	"gorm.io/gorm"
)

// NotificationService durably records per-user messages and pushes them to
// live connections when possible
type NotificationService struct {
	db     *gorm.DB
	pusher Pusher
}

func NewNotificationService(db *gorm.DB, pusher Pusher) *NotificationService {
	return &NotificationService{db: db, pusher: pusher}
}

// Record stores a notification, then attempts a live push. The push is
// best-effort: an offline user still finds the notification on next fetch.
func (s *NotificationService) Record(userID uint, message string) (*models.Notification, error) {
	notification := models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return nil, err
	}

	if err := s.pusher.Send(userID, "notification", notification); err != nil {
		log.Printf("Live push skipped for user %d: %v", userID, err)
	}
	return &notification, nil
}

// ListForUser returns the caller's notifications, newest first
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags one notification as read. A notification owned by someone
// else is reported as missing so ids cannot be probed across users.
func (s *NotificationService) MarkRead(notificationID, callerID uint) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if notification.UserID != callerID {
		return nil, ErrNotFound
	}

	if !notification.Read {
		notification.Read = true
		if err := s.db.Save(&notification).Error; err != nil {
			return nil, err
		}
	}
	return &notification, nil
}
