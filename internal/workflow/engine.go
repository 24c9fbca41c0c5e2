// Package workflow enforces the report lifecycle state machine and the
// role-gated assignment rules on top of the report store.
package workflow

import (
	"log"
	"strings"

	"participium/backend/internal/apperr"
	"participium/backend/internal/config"
	"participium/backend/internal/models"
)

// Storage is the slice of the store the engine needs.
type Storage interface {
	CreateReport(report *models.Report) error
	GetReportByID(id uint) (*models.Report, error)
	UpdateReportTx(id uint, mutate func(*models.Report) error) (*models.Report, error)
	DeleteReport(id uint) error
	ListReportsByState(state models.ReportState) ([]models.Report, error)
	ListPublicReports() ([]models.Report, error)
	ListReportsByCategory(category models.OfficeType) ([]models.Report, error)
	ListReportsByAuthor(authorID uint) ([]models.Report, error)
	ListReportsByAssignedOfficer(officerID uint) ([]models.Report, error)
	ResetAssignmentsByOfficer(officerID uint) error

	GetUserByID(id uint) (*models.User, error)
	GetOfficerByID(id uint) (*models.Officer, error)
	GetMaintainerByID(id uint) (*models.Maintainer, error)

	CreateFollow(follow *models.Follow) error
}

// Notifier receives the post-commit workflow events. The engine never
// waits on delivery; implementations must only record and enqueue.
type Notifier interface {
	StatusChanged(report *models.Report)
}

// Engine is the report workflow service.
type Engine struct {
	Storage  Storage
	Notifier Notifier
}

// NewEngine wires the workflow engine.
func NewEngine(s Storage, n Notifier) *Engine {
	return &Engine{Storage: s, Notifier: n}
}

// Decision is a review outcome.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionDecline Decision = "DECLINE"
)

// CreateInput carries the citizen-supplied fields of a new report.
type CreateInput struct {
	Title        string
	Category     models.OfficeType
	LocationName string
	Latitude     *float64
	Longitude    *float64
	Description  string
	Photos       []string
	AuthorID     *uint
	Anonymity    bool
}

// Create files a new report in PENDING state. A non-anonymous author is
// self-followed on the web channel so the final notification always has
// at least one recipient.
func (e *Engine) Create(in CreateInput) (*models.Report, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("Missing required field: title")
	}
	if in.Category == "" {
		return nil, apperr.Validation("Missing required field: category")
	}
	if !models.ValidOffice(in.Category) {
		return nil, apperr.Validation("Invalid category value: %s", in.Category)
	}
	if in.Latitude == nil || in.Longitude == nil {
		return nil, apperr.Validation("Missing or invalid location coordinates")
	}
	if len(in.Photos) < config.MinPhotos || len(in.Photos) > config.MaxPhotos {
		return nil, apperr.Validation("A report requires between %d and %d photos", config.MinPhotos, config.MaxPhotos)
	}

	var authorID *uint
	if !in.Anonymity && in.AuthorID != nil {
		author, err := e.Storage.GetUserByID(*in.AuthorID)
		if err != nil {
			return nil, err
		}
		authorID = &author.ID
	}

	report := &models.Report{
		Title:        in.Title,
		Category:     in.Category,
		LocationName: in.LocationName,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Description:  in.Description,
		Photos:       in.Photos,
		AuthorID:     authorID,
		Anonymity:    in.Anonymity,
		State:        models.StatePending,
	}
	if err := e.Storage.CreateReport(report); err != nil {
		return nil, err
	}

	if authorID != nil {
		err := e.Storage.CreateFollow(&models.Follow{
			UserID:   *authorID,
			ReportID: report.ID,
			Channel:  models.ChannelWeb,
		})
		if err != nil {
			// The report exists either way; the author can still follow
			// explicitly.
			log.Printf("ERROR: Failed to self-follow author %d on report %d: %v", *authorID, report.ID, err)
		}
	}

	return report, nil
}

// Assign hands a PENDING report to an officer and moves it to ASSIGNED.
// Only public-relations officers and administrators route reports.
func (e *Engine) Assign(reportID, officerID uint, actingRole models.OfficerRole) (*models.Report, error) {
	if actingRole != models.RolePublicRelations && actingRole != models.RoleAdministrator {
		return nil, apperr.Forbidden("Not allowed to assign reports")
	}
	officer, err := e.Storage.GetOfficerByID(officerID)
	if err != nil {
		return nil, err
	}

	report, err := e.Storage.UpdateReportTx(reportID, func(r *models.Report) error {
		if r.State != models.StatePending {
			return apperr.Conflict("Only PENDING reports can be assigned")
		}
		r.AssignedOfficerID = &officer.ID
		r.State = models.StateAssigned
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.Notifier.StatusChanged(report)
	return report, nil
}

// Review approves or declines a report. Review is a separation-of-duties
// boundary: public relations routes reports but never judges them, so
// only administrators and technical-office staff may review.
//
// APPROVE moves ASSIGNED to APPROVED, or straight to IN_PROGRESS when a
// maintainer is already on the report. DECLINE is legal from PENDING and
// ASSIGNED and requires a reason.
func (e *Engine) Review(reportID uint, decision Decision, reason string, actingRole models.OfficerRole) (*models.Report, error) {
	if actingRole != models.RoleAdministrator && actingRole != models.RoleTechnicalStaff {
		return nil, apperr.Forbidden("Not allowed to review reports")
	}

	var report *models.Report
	var err error

	switch decision {
	case DecisionDecline:
		if strings.TrimSpace(reason) == "" {
			return nil, apperr.Validation("Decline requires a reason")
		}
		report, err = e.Storage.UpdateReportTx(reportID, func(r *models.Report) error {
			if r.State != models.StatePending && r.State != models.StateAssigned {
				return apperr.Conflict("Report in state %s cannot be declined", r.State)
			}
			r.State = models.StateDeclined
			r.Reason = &reason
			return nil
		})

	case DecisionApprove:
		report, err = e.Storage.UpdateReportTx(reportID, func(r *models.Report) error {
			if r.State != models.StateAssigned {
				return apperr.Conflict("Report in state %s cannot be approved", r.State)
			}
			if r.AssignedMaintainerID != nil {
				r.State = models.StateInProgress
			} else {
				r.State = models.StateApproved
			}
			return nil
		})

	default:
		return nil, apperr.Validation("Unknown review decision: %s", decision)
	}

	if err != nil {
		return nil, err
	}

	e.Notifier.StatusChanged(report)
	return report, nil
}

// AssignMaintainer puts an external maintainer on a report. Legal once an
// officer holds the report; an APPROVED report starts work immediately
// (APPROVED -> IN_PROGRESS), otherwise the state is untouched.
func (e *Engine) AssignMaintainer(reportID, maintainerID uint) (*models.Report, error) {
	maintainer, err := e.Storage.GetMaintainerByID(maintainerID)
	if err != nil {
		return nil, err
	}
	if !maintainer.Active {
		return nil, apperr.Conflict("Maintainer %d is not active", maintainerID)
	}

	var changedState bool
	report, err := e.Storage.UpdateReportTx(reportID, func(r *models.Report) error {
		if r.State.IsTerminal() {
			return apperr.Conflict("Report in state %s cannot be modified", r.State)
		}
		if r.AssignedOfficerID == nil {
			return apperr.Conflict("Report has no assigned officer yet")
		}
		r.AssignedMaintainerID = &maintainer.ID
		if r.State == models.StateApproved {
			r.State = models.StateInProgress
			changedState = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changedState {
		e.Notifier.StatusChanged(report)
	}
	return report, nil
}

// TransitionTo performs the guarded work-progress transitions:
// IN_PROGRESS <-> SUSPENDED and IN_PROGRESS -> RESOLVED. Terminal states
// admit no further transition.
func (e *Engine) TransitionTo(reportID uint, next models.ReportState, actingRole models.OfficerRole) (*models.Report, error) {
	switch actingRole {
	case models.RoleAdministrator, models.RoleTechnicalStaff, models.RoleMaintainer:
	default:
		return nil, apperr.Forbidden("Not allowed to update report state")
	}

	report, err := e.Storage.UpdateReportTx(reportID, func(r *models.Report) error {
		if r.State.IsTerminal() {
			return apperr.Conflict("Report in state %s cannot be modified", r.State)
		}
		if !legalEdge(r.State, next) {
			return apperr.Conflict("Illegal transition %s -> %s", r.State, next)
		}
		r.State = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.Notifier.StatusChanged(report)
	return report, nil
}

// legalEdge holds the generic edges TransitionTo may walk. Assignment and
// review edges have their own operations.
func legalEdge(from, to models.ReportState) bool {
	switch from {
	case models.StateInProgress:
		return to == models.StateSuspended || to == models.StateResolved
	case models.StateSuspended:
		return to == models.StateInProgress
	}
	return false
}

// Delete removes a report unconditionally, bypassing the state machine.
// Administrators only.
func (e *Engine) Delete(reportID uint, actingRole models.OfficerRole) error {
	if actingRole != models.RoleAdministrator {
		return apperr.Forbidden("Not allowed to delete reports")
	}
	return e.Storage.DeleteReport(reportID)
}

// ResetAssignmentsByOfficer reverts the open reports of a removed officer
// to PENDING.
func (e *Engine) ResetAssignmentsByOfficer(officerID uint) error {
	return e.Storage.ResetAssignmentsByOfficer(officerID)
}

// Get returns one report.
func (e *Engine) Get(reportID uint) (*models.Report, error) {
	return e.Storage.GetReportByID(reportID)
}

// ListPublic returns the reports visible on the public map.
func (e *Engine) ListPublic() ([]models.Report, error) {
	return e.Storage.ListPublicReports()
}

// ListByState returns every report in one lifecycle state, newest first.
// PENDING is the triage queue of the public-relations desk.
func (e *Engine) ListByState(state models.ReportState) ([]models.Report, error) {
	return e.Storage.ListReportsByState(state)
}

// ListByOffice returns the work queue of one office category.
func (e *Engine) ListByOffice(category models.OfficeType) ([]models.Report, error) {
	return e.Storage.ListReportsByCategory(category)
}

// ListByAuthor returns a citizen's own reports.
func (e *Engine) ListByAuthor(authorID uint) ([]models.Report, error) {
	return e.Storage.ListReportsByAuthor(authorID)
}

// ListByAssignedOfficer returns the reports an officer currently holds.
func (e *Engine) ListByAssignedOfficer(officerID uint) ([]models.Report, error) {
	return e.Storage.ListReportsByAssignedOfficer(officerID)
}
