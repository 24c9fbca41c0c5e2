package models

import "time"

// NotificationType distinguishes workflow events from staff messages.
type NotificationType string

const (
	NotificationStatusChange NotificationType = "STATUS_CHANGE"
	NotificationStaffMessage NotificationType = "STAFF_MESSAGE"
)

// Notification is the durable per-recipient record of one workflow event.
// Rows are created only by the fan-out and mutated only by the recipient
// marking them read.
type Notification struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	UserID   uint             `gorm:"not null;index" json:"userId"`
	ReportID *uint            `gorm:"index" json:"reportId"`
	Type     NotificationType `gorm:"type:varchar(32);not null" json:"type"`
	Message  string           `gorm:"type:text;not null" json:"message"`
	Read     bool             `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}
