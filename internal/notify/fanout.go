// Package notify turns workflow events into per-recipient notification
// records and hands them to the delivery dispatcher. The durable row is
// the source of truth; external delivery is advisory.
package notify

import (
	"fmt"
	"log"

	"participium/backend/internal/apperr"
	"participium/backend/internal/models"
)

// Storage is the slice of the store the fan-out needs.
type Storage interface {
	ListFollowersOfReport(reportID uint, channel models.Channel) ([]models.User, error)
	GetFollow(userID, reportID uint, channel models.Channel) (*models.Follow, error)
	GetUserByID(id uint) (*models.User, error)

	CreateNotification(n *models.Notification) error
	GetNotificationByID(id uint) (*models.Notification, error)
	SaveNotification(n *models.Notification) error
	ListNotificationsByUser(userID uint, unreadOnly bool) ([]models.Notification, error)
}

// Fanout resolves the audience of a workflow event and materializes one
// notification row per recipient. It is invoked by the workflow engine
// and the messaging service only, never by external callers.
type Fanout struct {
	Storage    Storage
	Dispatcher *Dispatcher
}

// NewFanout wires the fan-out. dispatcher may be nil in tests that only
// care about the rows.
func NewFanout(s Storage, dispatcher *Dispatcher) *Fanout {
	return &Fanout{Storage: s, Dispatcher: dispatcher}
}

// StatusChanged fans a state transition out to the report's followers.
// Anonymous reports generate no notification: there is no subscriber
// identity to notify, even though a web self-follow may exist from the
// reporting flow.
func (f *Fanout) StatusChanged(report *models.Report) {
	if report.AuthorID == nil {
		return
	}
	f.fanOut(report, models.NotificationStatusChange, statusMessage(report))
}

// StaffMessage fans an officer's public message out to the followers.
// Anonymous reports are skipped under the same rule as status changes:
// with no author identity there is no audience to anchor, so followers
// of an anonymous report read staff messages in the public room only.
func (f *Fanout) StaffMessage(report *models.Report, officerID uint, text string) {
	if report.AuthorID == nil {
		return
	}
	msg := fmt.Sprintf("Message from officer #%d: %s", officerID, text)
	f.fanOut(report, models.NotificationStaffMessage, msg)
}

// fanOut creates exactly one notification row per recipient. Multi-channel
// follows influence delivery attempts, never the row count. Failures for
// one recipient never block the rest; the triggering transition has
// already committed.
func (f *Fanout) fanOut(report *models.Report, kind models.NotificationType, message string) {
	recipients := f.audience(report)

	for _, user := range recipients {
		reportID := report.ID
		n := &models.Notification{
			UserID:   user.ID,
			ReportID: &reportID,
			Type:     kind,
			Message:  message,
		}
		if err := f.Storage.CreateNotification(n); err != nil {
			log.Printf("ERROR: Fan-out could not record notification for user %d on report %d: %v", user.ID, report.ID, err)
			continue
		}
		if f.Dispatcher != nil {
			f.Dispatcher.Enqueue(Delivery{Notification: *n, Recipient: user})
		}
	}
}

// audience returns the web-channel followers with the author guaranteed
// to be among them.
func (f *Fanout) audience(report *models.Report) []models.User {
	followers, err := f.Storage.ListFollowersOfReport(report.ID, models.ChannelWeb)
	if err != nil {
		log.Printf("ERROR: Fan-out could not list followers of report %d: %v", report.ID, err)
		followers = nil
	}

	for _, u := range followers {
		if u.ID == *report.AuthorID {
			return followers
		}
	}

	author, err := f.Storage.GetUserByID(*report.AuthorID)
	if err != nil {
		// Stale author id: deliver to whoever does follow.
		log.Printf("ERROR: Fan-out could not resolve author %d of report %d: %v", *report.AuthorID, report.ID, err)
		return followers
	}
	return append([]models.User{*author}, followers...)
}

// statusMessage renders the recipient-facing text for a state change.
func statusMessage(report *models.Report) string {
	if report.State == models.StateDeclined {
		reason := "N/A"
		if report.Reason != nil && *report.Reason != "" {
			reason = *report.Reason
		}
		return fmt.Sprintf("Your report #%d has been DECLINED. Reason: %s", report.ID, reason)
	}
	return fmt.Sprintf("Your report #%d is now %s", report.ID, report.State)
}

// ListByUser returns a recipient's notifications, newest first.
func (f *Fanout) ListByUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	return f.Storage.ListNotificationsByUser(userID, unreadOnly)
}

// MarkRead marks one notification read. Recipients may only mark their
// own.
func (f *Fanout) MarkRead(id, userID uint) (*models.Notification, error) {
	n, err := f.Storage.GetNotificationByID(id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, apperr.Forbidden("Not allowed to modify this notification")
	}
	n.Read = true
	if err := f.Storage.SaveNotification(n); err != nil {
		return nil, err
	}
	return n, nil
}
