package stats_test

import (
	"time"

	"github.com/stretchr/testify/mock"

	"participium/backend/internal/models"
)

// MockStorage is a testify mock of the stats storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CountReportsByCategory() ([]models.CategoryCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryCount), args.Error(1)
}

func (m *MockStorage) CountReportsInCategory(category models.OfficeType) (int64, error) {
	args := m.Called(category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CountReportsByState() ([]models.StateCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StateCount), args.Error(1)
}

func (m *MockStorage) CountReportsByBucket(bucket string, since time.Time, category models.OfficeType) ([]models.TrendPoint, error) {
	args := m.Called(bucket, since, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrendPoint), args.Error(1)
}
