package follows_test

import (
	"github.com/stretchr/testify/mock"

	"participium/backend/internal/models"
)

// MockStorage is a testify mock of the follows storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetFollow(userID, reportID uint, channel models.Channel) (*models.Follow, error) {
	args := m.Called(userID, reportID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockStorage) CreateFollow(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockStorage) DeleteFollow(userID, reportID uint, channel models.Channel) error {
	args := m.Called(userID, reportID, channel)
	return args.Error(0)
}

func (m *MockStorage) DeleteFollowsByUser(userID uint, channel models.Channel) error {
	args := m.Called(userID, channel)
	return args.Error(0)
}

func (m *MockStorage) ListFollowersOfReport(reportID uint, channel models.Channel) ([]models.User, error) {
	args := m.Called(reportID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStorage) ListFollowedReports(userID uint, channel models.Channel) ([]models.Report, error) {
	args := m.Called(userID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) GetReportByID(id uint) (*models.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) ListReportsByAuthor(authorID uint) ([]models.Report, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}
