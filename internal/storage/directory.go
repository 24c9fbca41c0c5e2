package storage

import (
	"errors"

	"gorm.io/gorm"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// GetUserByID loads one citizen account.
func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User with id '%d' not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail loads a citizen by email.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User with email '%s' not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a citizen account.
func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// BindTelegramChat stores the chat-session binding the chat-bot channel
// delivers to.
func (s *Service) BindTelegramChat(userID uint, chatID int64) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("telegram_chat_id", chatID).Error
}

// GetOfficerByID loads one officer.
func (s *Service) GetOfficerByID(id uint) (*models.Officer, error) {
	var officer models.Officer
	err := s.DB.First(&officer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Officer with id '%d' not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &officer, nil
}

// CreateOfficer inserts an officer account.
func (s *Service) CreateOfficer(officer *models.Officer) error {
	return s.DB.Create(officer).Error
}

// ListOfficersByOffice returns the officers staffed on one office.
func (s *Service) ListOfficersByOffice(office models.OfficeType) ([]models.Officer, error) {
	var officers []models.Officer
	if err := s.DB.Where("office = ?", office).Find(&officers).Error; err != nil {
		return nil, err
	}
	return officers, nil
}

// GetMaintainerByID loads one maintainer.
func (s *Service) GetMaintainerByID(id uint) (*models.Maintainer, error) {
	var maintainer models.Maintainer
	err := s.DB.First(&maintainer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Maintainer with id '%d' not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &maintainer, nil
}

// CreateMaintainer inserts a maintainer account.
func (s *Service) CreateMaintainer(maintainer *models.Maintainer) error {
	return s.DB.Create(maintainer).Error
}

// ListMaintainersByCategory returns the active maintainers serving one
// office category.
func (s *Service) ListMaintainersByCategory(category models.OfficeType) ([]models.Maintainer, error) {
	var maintainers []models.Maintainer
	err := s.DB.
		Where("? = ANY(categories)", string(category)).
		Where("active = ?", true).
		Find(&maintainers).Error
	if err != nil {
		return nil, err
	}
	return maintainers, nil
}
