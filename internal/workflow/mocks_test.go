package workflow_test

import (
	"github.com/stretchr/testify/mock"

	"participium/backend/internal/models"
)

// MockStorage is a testify mock of the workflow storage interface. The
// transactional update is simulated by running the mutation against the
// report the test primed GetReportByID with.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateReport(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockStorage) GetReportByID(id uint) (*models.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockStorage) UpdateReportTx(id uint, mutate func(*models.Report) error) (*models.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	report := args.Get(0).(*models.Report)
	if err := mutate(report); err != nil {
		return nil, err
	}
	return report, args.Error(1)
}

func (m *MockStorage) DeleteReport(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListReportsByState(state models.ReportState) ([]models.Report, error) {
	args := m.Called(state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) ListPublicReports() ([]models.Report, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) ListReportsByCategory(category models.OfficeType) ([]models.Report, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) ListReportsByAuthor(authorID uint) ([]models.Report, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) ListReportsByAssignedOfficer(officerID uint) ([]models.Report, error) {
	args := m.Called(officerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) ResetAssignmentsByOfficer(officerID uint) error {
	args := m.Called(officerID)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetOfficerByID(id uint) (*models.Officer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Officer), args.Error(1)
}

func (m *MockStorage) GetMaintainerByID(id uint) (*models.Maintainer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Maintainer), args.Error(1)
}

func (m *MockStorage) CreateFollow(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

// MockNotifier records the reports it was handed.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) StatusChanged(report *models.Report) {
	m.Called(report)
}
