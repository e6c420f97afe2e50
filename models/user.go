package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:100;not null" json:"full_name"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized

	Phone      string `gorm:"size:20" json:"phone,omitempty"`
	Address    string `gorm:"size:255" json:"address,omitempty"`
	ProfilePic string `gorm:"size:255;default:'default.jpg'" json:"profile_pic"`

	IsAdmin bool `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}
