package models

import "time"

// PublicMessage is one entry of the citizen-facing conversation on a
// report. The whole report "room" can read it; SenderType tells citizens
// apart from staff. Messages are immutable once created, ordered by id.
type PublicMessage struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ReportID   uint            `gorm:"not null;index" json:"reportId"`
	SenderType ParticipantKind `gorm:"type:varchar(32);not null" json:"senderType"`
	SenderID   uint            `gorm:"not null" json:"senderId"`
	Message    string          `gorm:"type:text;not null" json:"message"`
	Read       bool            `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}

// InternalMessage is one entry of the officer/maintainer conversation on
// a report. Unlike public messages it is addressed to a single receiver.
type InternalMessage struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ReportID     uint            `gorm:"not null;index" json:"reportId"`
	SenderType   ParticipantKind `gorm:"type:varchar(32);not null" json:"senderType"`
	SenderID     uint            `gorm:"not null" json:"senderId"`
	ReceiverType ParticipantKind `gorm:"type:varchar(32);not null" json:"receiverType"`
	ReceiverID   uint            `gorm:"not null" json:"receiverId"`
	Message      string          `gorm:"type:text;not null" json:"message"`
	Read         bool            `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}
