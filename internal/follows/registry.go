// Package follows owns the subscriber/report/channel relation that
// decides who gets told about a report's changes.
package follows

import (
	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// Storage is the slice of the store the registry needs.
type Storage interface {
	GetFollow(userID, reportID uint, channel models.Channel) (*models.Follow, error)
	CreateFollow(follow *models.Follow) error
	DeleteFollow(userID, reportID uint, channel models.Channel) error
	DeleteFollowsByUser(userID uint, channel models.Channel) error
	ListFollowersOfReport(reportID uint, channel models.Channel) ([]models.User, error)
	ListFollowedReports(userID uint, channel models.Channel) ([]models.Report, error)

	GetReportByID(id uint) (*models.Report, error)
	GetUserByID(id uint) (*models.User, error)
	ListReportsByAuthor(authorID uint) ([]models.Report, error)
}

// Registry is the subscription service.
type Registry struct {
	Storage Storage
}

// NewRegistry wires the registry.
func NewRegistry(s Storage) *Registry {
	return &Registry{Storage: s}
}

// Follow subscribes a user to a report on a channel. Idempotent: a second
// call returns the existing row. Closed reports refuse new follows but
// keep existing ones, so the final notification still reaches everyone
// who subscribed earlier.
func (r *Registry) Follow(userID, reportID uint, channel models.Channel) (*models.Follow, error) {
	if channel == "" {
		channel = models.ChannelWeb
	}
	if !models.ValidChannel(channel) {
		return nil, apperr.Validation("Invalid channel: %s", channel)
	}

	report, err := r.Storage.GetReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if report.State.IsTerminal() {
		return nil, apperr.Conflict("Closed reports cannot be followed")
	}

	user, err := r.Storage.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	existing, err := r.Storage.GetFollow(user.ID, report.ID, channel)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	follow := &models.Follow{UserID: user.ID, ReportID: report.ID, Channel: channel}
	if err := r.Storage.CreateFollow(follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// FollowAll subscribes a user to every report they authored. Per-report
// idempotent; reports already followed or already closed are skipped, not
// failed, so the result only lists the follows that exist afterwards.
func (r *Registry) FollowAll(userID uint, channel models.Channel) ([]models.Follow, error) {
	if channel == "" {
		channel = models.ChannelWeb
	}
	if !models.ValidChannel(channel) {
		return nil, apperr.Validation("Invalid channel: %s", channel)
	}
	user, err := r.Storage.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	reports, err := r.Storage.ListReportsByAuthor(user.ID)
	if err != nil {
		return nil, err
	}

	var result []models.Follow
	for _, report := range reports {
		existing, err := r.Storage.GetFollow(user.ID, report.ID, channel)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result = append(result, *existing)
			continue
		}
		if report.State.IsTerminal() {
			continue
		}
		follow := &models.Follow{UserID: user.ID, ReportID: report.ID, Channel: channel}
		if err := r.Storage.CreateFollow(follow); err != nil {
			return nil, err
		}
		result = append(result, *follow)
	}
	return result, nil
}

// Unfollow removes one subscription. Absence of the row is a no-op.
func (r *Registry) Unfollow(userID, reportID uint, channel models.Channel) error {
	if channel == "" {
		channel = models.ChannelWeb
	}
	return r.Storage.DeleteFollow(userID, reportID, channel)
}

// UnfollowAll removes every subscription of a user on a channel.
func (r *Registry) UnfollowAll(userID uint, channel models.Channel) error {
	if channel == "" {
		channel = models.ChannelWeb
	}
	return r.Storage.DeleteFollowsByUser(userID, channel)
}

// ListFollowers returns the subscribers of a report on a channel in
// follow-creation order.
func (r *Registry) ListFollowers(reportID uint, channel models.Channel) ([]models.User, error) {
	if channel == "" {
		channel = models.ChannelWeb
	}
	return r.Storage.ListFollowersOfReport(reportID, channel)
}

// ListFollowed returns the reports a user follows on a channel in
// follow-creation order.
func (r *Registry) ListFollowed(userID uint, channel models.Channel) ([]models.Report, error) {
	if channel == "" {
		channel = models.ChannelWeb
	}
	return r.Storage.ListFollowedReports(userID, channel)
}
