package models

import "time"

type ContactMessage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:100;not null" json:"full_name"`
	Email    string `gorm:"size:120;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone,omitempty"`
	Message  string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
