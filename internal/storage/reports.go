package storage

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// CreateReport inserts a new report row.
func (s *Service) CreateReport(report *models.Report) error {
	if err := s.DB.Create(report).Error; err != nil {
		log.Printf("ERROR: Failed to create report %q: %v", report.Title, err)
		return err
	}
	return nil
}

// GetReportByID loads one report.
func (s *Service) GetReportByID(id uint) (*models.Report, error) {
	var report models.Report
	err := s.DB.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Report with id '%d' not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReportTx runs mutate on the report row under a row-level lock and
// persists the result. The read-validate-write is atomic with respect to
// concurrent transitions on the same id; any error from mutate rolls the
// row back untouched.
func (s *Service) UpdateReportTx(id uint, mutate func(*models.Report) error) (*models.Report, error) {
	var report models.Report
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&report, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Report with id '%d' not found", id)
		}
		if err != nil {
			return err
		}
		if err := mutate(&report); err != nil {
			return err
		}
		return tx.Save(&report).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport removes a report and its follows unconditionally. The
// administrative delete bypasses the state machine.
func (s *Service) DeleteReport(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Report{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("Report with id '%d' not found", id)
		}
		return tx.Where("report_id = ?", id).Delete(&models.Follow{}).Error
	})
}

// ListReportsByState returns all reports in the given state.
func (s *Service) ListReportsByState(state models.ReportState) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("state = ?", state).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListPublicReports returns every report that passed review, newest first.
// Pending and declined reports never show on the public map.
func (s *Service) ListPublicReports() ([]models.Report, error) {
	var reports []models.Report
	err := s.DB.
		Where("state IN ?", []models.ReportState{
			models.StateApproved,
			models.StateInProgress,
			models.StateSuspended,
			models.StateResolved,
		}).
		Order("created_at desc").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListReportsByCategory returns the work queue of one office.
func (s *Service) ListReportsByCategory(category models.OfficeType) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("category = ?", category).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListReportsByAssignedOfficer returns every report assigned to an officer.
func (s *Service) ListReportsByAssignedOfficer(officerID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("assigned_officer_id = ?", officerID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListReportsByAuthor returns a citizen's own reports.
func (s *Service) ListReportsByAuthor(authorID uint) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("author_id = ?", authorID).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ClearReports wipes every report together with the follows and
// notifications that reference them. Development helper, not exposed
// over HTTP.
func (s *Service) ClearReports() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id IS NOT NULL").Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.PublicMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.InternalMessage{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Report{}).Error
	})
}

// ResetAssignmentsByOfficer reverts every non-terminal report held by the
// officer to PENDING with both assignment fields cleared. Used when an
// officer account is removed.
func (s *Service) ResetAssignmentsByOfficer(officerID uint) error {
	return s.DB.Model(&models.Report{}).
		Where("assigned_officer_id = ?", officerID).
		Where("state IN ?", []models.ReportState{
			models.StateAssigned,
			models.StateApproved,
			models.StateInProgress,
			models.StateSuspended,
		}).
		Updates(map[string]interface{}{
			"state":                  models.StatePending,
			"assigned_officer_id":    nil,
			"assigned_maintainer_id": nil,
		}).Error
}
