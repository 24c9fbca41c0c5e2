package storage

import (
	"time"

	"participium/backend/internal/models"
)

// CountReportsByCategory returns the report count of every category that
// has at least one report, largest first.
func (s *Service) CountReportsByCategory() ([]models.CategoryCount, error) {
	var rows []models.CategoryCount
	err := s.DB.Model(&models.Report{}).
		Select("category, count(*) as count").
		Group("category").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountReportsInCategory returns the report count of one category.
func (s *Service) CountReportsInCategory(category models.OfficeType) (int64, error) {
	var n int64
	err := s.DB.Model(&models.Report{}).
		Where("category = ?", category).
		Count(&n).Error
	return n, err
}

// CountReportsByState returns the report count per lifecycle state.
func (s *Service) CountReportsByState() ([]models.StateCount, error) {
	var rows []models.StateCount
	err := s.DB.Model(&models.Report{}).
		Select("state, count(*) as count").
		Group("state").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountReportsByBucket returns submission counts truncated to the given
// date_trunc bucket, oldest bucket first. An empty category counts every
// report.
func (s *Service) CountReportsByBucket(bucket string, since time.Time, category models.OfficeType) ([]models.TrendPoint, error) {
	q := s.DB.Model(&models.Report{}).
		Select("date_trunc(?, created_at) as bucket, count(*) as count", bucket).
		Where("created_at >= ?", since).
		Group("bucket").
		Order("bucket asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []models.TrendPoint
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
