package storage

import (
	"log"

	"participium/backend/internal/models"
)

// CreatePublicMessage appends one message to a report's public room.
func (s *Service) CreatePublicMessage(msg *models.PublicMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save public message for report %d: %v", msg.ReportID, err)
		return err
	}
	return nil
}

// ListPublicMessagesByReport returns the public room in creation order.
func (s *Service) ListPublicMessagesByReport(reportID uint) ([]models.PublicMessage, error) {
	var messages []models.PublicMessage
	if err := s.DB.Where("report_id = ?", reportID).Order("id asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateInternalMessage appends one officer/maintainer message.
func (s *Service) CreateInternalMessage(msg *models.InternalMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save internal message for report %d: %v", msg.ReportID, err)
		return err
	}
	return nil
}

// ListInternalMessagesByReport returns the internal conversation in
// creation order.
func (s *Service) ListInternalMessagesByReport(reportID uint) ([]models.InternalMessage, error) {
	var messages []models.InternalMessage
	if err := s.DB.Where("report_id = ?", reportID).Order("id asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
