package storage

import (
	"errors"

	"gorm.io/gorm"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// ListFaqs returns every FAQ entry in creation order.
func (s *Service) ListFaqs() ([]models.Faq, error) {
	var faqs []models.Faq
	if err := s.DB.Order("id asc").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// GetFaqByID loads one FAQ entry.
func (s *Service) GetFaqByID(id uint) (*models.Faq, error) {
	var faq models.Faq
	err := s.DB.First(&faq, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("FAQ with id '%d' not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

// CreateFaq inserts one FAQ entry.
func (s *Service) CreateFaq(faq *models.Faq) error {
	return s.DB.Create(faq).Error
}

// SaveFaq persists an edited FAQ entry.
func (s *Service) SaveFaq(faq *models.Faq) error {
	return s.DB.Save(faq).Error
}

// DeleteFaq removes one FAQ entry. Deleting an absent id is a no-op.
func (s *Service) DeleteFaq(id uint) error {
	return s.DB.Delete(&models.Faq{}, id).Error
}
