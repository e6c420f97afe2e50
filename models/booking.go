package models

import "time"

// Booking statuses. Pending is the schema default but the creation path
// always writes Confirmed; Edited is set whenever the owner changes a
// booking inside its edit window.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusEdited    = "Edited"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceType string `gorm:"size:100;not null" json:"service_type"`
	Date        string `gorm:"size:20;not null" json:"date"` // YYYY-MM-DD
	Time        string `gorm:"size:20;not null" json:"time"`
	Rooms       string `gorm:"size:20;not null" json:"rooms"`

	Address string `gorm:"size:255;not null" json:"address"`
	Note    string `gorm:"type:text" json:"note,omitempty"`

	Photo1 string `gorm:"size:255" json:"photo1,omitempty"`
	Photo2 string `gorm:"size:255" json:"photo2,omitempty"`
	Photo3 string `gorm:"size:255" json:"photo3,omitempty"`

	Status    string    `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"index;not null;column:user_id" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
