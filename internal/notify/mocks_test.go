package notify_test

import (
	"github.com/stretchr/testify/mock"

	"participium/backend/internal/models"
)

// MockStorage is a testify mock of the notify storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListFollowersOfReport(reportID uint, channel models.Channel) ([]models.User, error) {
	args := m.Called(reportID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) GetFollow(userID, reportID uint, channel models.Channel) (*models.Follow, error) {
	args := m.Called(userID, reportID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) CreateNotification(n *models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockStorage) GetNotificationByID(id uint) (*models.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockStorage) SaveNotification(n *models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockStorage) ListNotificationsByUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}
