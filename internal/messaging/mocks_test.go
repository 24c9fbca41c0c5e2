package messaging_test

import (
	"github.com/stretchr/testify/mock"

	"participium/backend/internal/models"
)

// MockStorage is a testify mock of the messaging storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetReportByID(id uint) (*models.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockStorage) CreatePublicMessage(msg *models.PublicMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) ListPublicMessagesByReport(reportID uint) ([]models.PublicMessage, error) {
	args := m.Called(reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicMessage), args.Error(1)
}

func (m *MockStorage) CreateInternalMessage(msg *models.InternalMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) ListInternalMessagesByReport(reportID uint) ([]models.InternalMessage, error) {
	args := m.Called(reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InternalMessage), args.Error(1)
}

// MockNotifier records staff-message fan-outs.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) StaffMessage(report *models.Report, officerID uint, text string) {
	m.Called(report, officerID, text)
}
