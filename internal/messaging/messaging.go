// Package messaging holds the two report conversations and the
// authorization rules derived from the report's assignment state.
package messaging

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// Storage is the slice of the store the conversations need.
type Storage interface {
	GetReportByID(id uint) (*models.Report, error)

	CreatePublicMessage(msg *models.PublicMessage) error
	ListPublicMessagesByReport(reportID uint) ([]models.PublicMessage, error)
	CreateInternalMessage(msg *models.InternalMessage) error
	ListInternalMessagesByReport(reportID uint) ([]models.InternalMessage, error)
}

// Notifier receives staff messages for fan-out to the report's followers.
type Notifier interface {
	StaffMessage(report *models.Report, officerID uint, text string)
}

// Publisher pushes a realtime event to the report room.
type Publisher interface {
	PublishEvent(event models.RoomEvent) error
}

// Service implements both conversations.
type Service struct {
	Storage   Storage
	Notifier  Notifier
	Publisher Publisher
}

// NewService wires the messaging service. notifier and publisher may be
// nil in tests.
func NewService(s Storage, notifier Notifier, publisher Publisher) *Service {
	return &Service{Storage: s, Notifier: notifier, Publisher: publisher}
}

// kindForRole maps a caller role onto the participant kind its id refers
// to.
func kindForRole(role models.OfficerRole) models.ParticipantKind {
	switch role {
	case models.RoleCitizen:
		return models.KindCitizen
	case models.RoleMaintainer:
		return models.KindMaintainer
	default:
		return models.KindOfficer
	}
}

// authorizePublic admits the report author, the assigned officer, the
// assigned maintainer, administrators and public-relations officers.
func authorizePublic(report *models.Report, callerID uint, role models.OfficerRole) error {
	if role == "" {
		return apperr.Unauthorized("Authentication required")
	}
	switch role {
	case models.RoleAdministrator, models.RolePublicRelations:
		return nil
	case models.RoleCitizen:
		if report.AuthorID != nil && *report.AuthorID == callerID {
			return nil
		}
	case models.RoleTechnicalStaff:
		if report.AssignedOfficerID != nil && *report.AssignedOfficerID == callerID {
			return nil
		}
	case models.RoleMaintainer:
		if report.AssignedMaintainerID != nil && *report.AssignedMaintainerID == callerID {
			return nil
		}
	}
	return apperr.Forbidden("Not allowed to access this conversation")
}

// SendPublic posts one message to the report's public room. Staff
// messages additionally fan out as notifications to the followers. The
// stored message keeps its original whitespace; trimming is for the
// emptiness check only.
func (s *Service) SendPublic(reportID, callerID uint, role models.OfficerRole, text string) (*models.PublicMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("Message cannot be empty")
	}
	report, err := s.Storage.GetReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if err := authorizePublic(report, callerID, role); err != nil {
		return nil, err
	}

	msg := &models.PublicMessage{
		ReportID:   report.ID,
		SenderType: kindForRole(role),
		SenderID:   callerID,
		Message:    text,
	}
	if err := s.Storage.CreatePublicMessage(msg); err != nil {
		return nil, err
	}

	s.publishRoom(report.ID, "public-message:new", msg)
	if msg.SenderType != models.KindCitizen && s.Notifier != nil {
		s.Notifier.StaffMessage(report, callerID, text)
	}
	return msg, nil
}

// ListPublic returns the public room in creation order.
func (s *Service) ListPublic(reportID, callerID uint, role models.OfficerRole) ([]models.PublicMessage, error) {
	report, err := s.Storage.GetReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if err := authorizePublic(report, callerID, role); err != nil {
		return nil, err
	}
	return s.Storage.ListPublicMessagesByReport(report.ID)
}

// ensureInternal checks both ends of an internal message against the
// report's assignment: the sender must be the exact assigned party of
// their kind and the receiver must be the other assigned party.
func ensureInternal(report *models.Report, sender, receiver models.Participant) error {
	switch sender.Kind {
	case models.KindOfficer:
		if report.AssignedOfficerID == nil || *report.AssignedOfficerID != sender.ID {
			return apperr.Forbidden("Not assigned to this report")
		}
		if receiver.Kind != models.KindMaintainer || report.AssignedMaintainerID == nil || *report.AssignedMaintainerID != receiver.ID {
			return apperr.Forbidden("Invalid receiver for this report")
		}
	case models.KindMaintainer:
		if report.AssignedMaintainerID == nil || *report.AssignedMaintainerID != sender.ID {
			return apperr.Forbidden("Not assigned to this report")
		}
		if receiver.Kind != models.KindOfficer || report.AssignedOfficerID == nil || *report.AssignedOfficerID != receiver.ID {
			return apperr.Forbidden("Invalid receiver for this report")
		}
	default:
		return apperr.Forbidden("Not assigned to this report")
	}
	return nil
}

// SendInternal posts one officer/maintainer message.
func (s *Service) SendInternal(reportID uint, sender, receiver models.Participant, text string) (*models.InternalMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("Message cannot be empty")
	}
	report, err := s.Storage.GetReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if err := ensureInternal(report, sender, receiver); err != nil {
		return nil, err
	}

	msg := &models.InternalMessage{
		ReportID:     report.ID,
		SenderType:   sender.Kind,
		SenderID:     sender.ID,
		ReceiverType: receiver.Kind,
		ReceiverID:   receiver.ID,
		Message:      text,
	}
	if err := s.Storage.CreateInternalMessage(msg); err != nil {
		return nil, err
	}

	s.publishRoom(report.ID, "internal-message:new", msg)
	return msg, nil
}

// ListInternal returns the internal conversation, chronological
// ascending. Either assigned party may list.
func (s *Service) ListInternal(reportID uint, caller models.Participant) ([]models.InternalMessage, error) {
	report, err := s.Storage.GetReportByID(reportID)
	if err != nil {
		return nil, err
	}

	allowed := false
	switch caller.Kind {
	case models.KindOfficer:
		allowed = report.AssignedOfficerID != nil && *report.AssignedOfficerID == caller.ID
	case models.KindMaintainer:
		allowed = report.AssignedMaintainerID != nil && *report.AssignedMaintainerID == caller.ID
	}
	if !allowed {
		return nil, apperr.Forbidden("Not assigned to this report")
	}
	return s.Storage.ListInternalMessagesByReport(report.ID)
}

func (s *Service) publishRoom(reportID uint, event string, payload any) {
	if s.Publisher == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ERROR: Could not encode %s event for report %d: %v", event, reportID, err)
		return
	}
	roomEvent := models.RoomEvent{
		Room:    fmt.Sprintf("report:%d", reportID),
		Event:   event,
		Payload: data,
	}
	if err := s.Publisher.PublishEvent(roomEvent); err != nil {
		log.Printf("ERROR: Realtime push of %s failed for report %d: %v", event, reportID, err)
	}
}
