package storage

import (
	"errors"

	"gorm.io/gorm"

	"participium/backend/internal/models"
)

// GetFollow returns the follow row for (userID, reportID, channel), or
// nil without error when none exists.
func (s *Service) GetFollow(userID, reportID uint, channel models.Channel) (*models.Follow, error) {
	var follow models.Follow
	err := s.DB.
		Where("user_id = ? AND report_id = ? AND channel = ?", userID, reportID, channel).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// CreateFollow inserts a follow row.
func (s *Service) CreateFollow(follow *models.Follow) error {
	return s.DB.Create(follow).Error
}

// DeleteFollow removes one follow. Deleting a row that does not exist is
// a no-op, which makes unfollow idempotent.
func (s *Service) DeleteFollow(userID, reportID uint, channel models.Channel) error {
	return s.DB.
		Where("user_id = ? AND report_id = ? AND channel = ?", userID, reportID, channel).
		Delete(&models.Follow{}).Error
}

// DeleteFollowsByUser removes every follow of one user on one channel.
func (s *Service) DeleteFollowsByUser(userID uint, channel models.Channel) error {
	return s.DB.
		Where("user_id = ? AND channel = ?", userID, channel).
		Delete(&models.Follow{}).Error
}

// ListFollowersOfReport returns the users following a report on a channel,
// in follow-creation order.
func (s *Service) ListFollowersOfReport(reportID uint, channel models.Channel) ([]models.User, error) {
	var users []models.User
	err := s.DB.Model(&models.User{}).
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.report_id = ? AND follows.channel = ?", reportID, channel).
		Order("follows.id asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListFollowedReports returns the reports a user follows on a channel, in
// follow-creation order.
func (s *Service) ListFollowedReports(userID uint, channel models.Channel) ([]models.Report, error) {
	var reports []models.Report
	err := s.DB.Model(&models.Report{}).
		Joins("JOIN follows ON follows.report_id = reports.id").
		Where("follows.user_id = ? AND follows.channel = ?", userID, channel).
		Order("follows.id asc").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
