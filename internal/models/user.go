package models

import "time"

// User is a citizen account: the subscriber side of the follow registry
// and the recipient side of notification delivery.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`

	// TelegramChatID is the chat-session binding used by the chat-bot
	// delivery channel. Nil means the user never linked the bot; chat
	// delivery is then a silent no-op.
	TelegramChatID *int64 `gorm:"uniqueIndex" json:"-"`

	// EmailNotifications gates the email channel regardless of follows.
	EmailNotifications bool `gorm:"default:true" json:"emailNotifications"`

	CreatedAt time.Time `json:"createdAt"`
}
