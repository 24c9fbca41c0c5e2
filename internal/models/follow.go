package models

import "time"

// Channel is the delivery medium a follow subscribes to.
type Channel string

const (
	ChannelWeb   Channel = "web"
	ChannelEmail Channel = "email"
	ChannelChat  Channel = "chat"
)

// ValidChannel reports whether c is a known delivery channel.
func ValidChannel(c Channel) bool {
	return c == ChannelWeb || c == ChannelEmail || c == ChannelChat
}

// Follow subscribes one user to one report on one channel. The triple
// (UserID, ReportID, Channel) is unique; the autoincrement id doubles as
// the insertion-order key for follower listings.
type Follow struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"not null;uniqueIndex:idx_user_report_channel" json:"userId"`
	ReportID uint    `gorm:"not null;uniqueIndex:idx_user_report_channel" json:"reportId"`
	Channel  Channel `gorm:"type:varchar(16);not null;default:'web';uniqueIndex:idx_user_report_channel" json:"channel"`

	CreatedAt time.Time `json:"createdAt"`
}
