// Package stats aggregates report counts for the public dashboard:
// breakdowns by category and state plus submission trends over a
// selectable period.
package stats

import (
	"time"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// Storage is the slice of the store the aggregations need.
type Storage interface {
	CountReportsByCategory() ([]models.CategoryCount, error)
	CountReportsInCategory(category models.OfficeType) (int64, error)
	CountReportsByState() ([]models.StateCount, error)
	CountReportsByBucket(bucket string, since time.Time, category models.OfficeType) ([]models.TrendPoint, error)
}

// Period selects the trend bucket size.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth
}

// window returns the date_trunc bucket and the start of the lookback
// range: 30 days of daily buckets, 12 weeks, or 12 months.
func (p Period) window() (string, time.Time) {
	now := time.Now()
	switch p {
	case PeriodWeek:
		return "week", now.AddDate(0, 0, -12*7)
	case PeriodMonth:
		return "month", now.AddDate(0, -12, 0)
	}
	return "day", now.AddDate(0, 0, -30)
}

// Trends is the submission trend for one period.
type Trends struct {
	Period Period              `json:"period"`
	Data   []models.TrendPoint `json:"data"`
}

// Overview is the statistics payload. Exactly one of Count and
// ByCategory is set, depending on whether a category filter was given;
// ByState only appears on the unfiltered overview.
type Overview struct {
	Category   models.OfficeType      `json:"category,omitempty"`
	Count      *int64                 `json:"count,omitempty"`
	ByCategory []models.CategoryCount `json:"byCategory,omitempty"`
	ByState    []models.StateCount    `json:"byState,omitempty"`
	Trends     *Trends                `json:"trends,omitempty"`
}

// Service computes report statistics.
type Service struct {
	Storage Storage
}

// NewService wires the statistics service.
func NewService(s Storage) *Service {
	return &Service{Storage: s}
}

// Overview assembles the statistics for an optional period and category
// filter. With a category the per-category breakdown collapses to a
// single count; with a period the trend is added; with neither filter
// the per-state breakdown is included.
func (s *Service) Overview(period Period, category models.OfficeType) (*Overview, error) {
	if period != "" && !period.Valid() {
		return nil, apperr.Validation("Invalid period. Must be one of: day, week, month")
	}
	if category != "" && !models.ValidOffice(category) {
		return nil, apperr.Validation("Invalid category value: %s", category)
	}

	out := &Overview{}

	if category != "" {
		count, err := s.Storage.CountReportsInCategory(category)
		if err != nil {
			return nil, err
		}
		out.Category = category
		out.Count = &count
	} else {
		byCategory, err := s.Storage.CountReportsByCategory()
		if err != nil {
			return nil, err
		}
		out.ByCategory = byCategory
	}

	switch {
	case period != "":
		bucket, since := period.window()
		data, err := s.Storage.CountReportsByBucket(bucket, since, category)
		if err != nil {
			return nil, err
		}
		out.Trends = &Trends{Period: period, Data: data}
	case category == "":
		byState, err := s.Storage.CountReportsByState()
		if err != nil {
			return nil, err
		}
		out.ByState = byState
	}

	return out, nil
}
