package models

import "time"

// Faq is one public question/answer entry. Anyone can read the list;
// only municipal staff maintain it.
type Faq struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`

	CreatedAt time.Time `json:"createdAt"`
}
