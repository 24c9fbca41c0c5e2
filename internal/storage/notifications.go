package storage

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// CreateNotification inserts one notification row.
func (s *Service) CreateNotification(n *models.Notification) error {
	if err := s.DB.Create(n).Error; err != nil {
		log.Printf("ERROR: Failed to create notification for user %d: %v", n.UserID, err)
		return err
	}
	return nil
}

// GetNotificationByID loads one notification.
func (s *Service) GetNotificationByID(id uint) (*models.Notification, error) {
	var n models.Notification
	err := s.DB.First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Notification with id '%d' not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// SaveNotification persists a mutated notification (read flag).
func (s *Service) SaveNotification(n *models.Notification) error {
	return s.DB.Save(n).Error
}

// ListNotificationsByUser returns a user's notifications, newest first.
func (s *Service) ListNotificationsByUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	q := s.DB.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var notifications []models.Notification
	if err := q.Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
