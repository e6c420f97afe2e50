package services

import (
	"fmt"

	"cleaning-backend/models"

	"gorm.io/gorm"
)

type AdminOverview struct {
	Users    []models.User           `json:"users"`
	Bookings []models.Booking        `json:"bookings"`
	Messages []models.ContactMessage `json:"messages"`
}

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// Overview returns everything the admin dashboard shows, in natural
// storage order. No pagination; the dataset is small by design.
func (s *AdminService) Overview() (*AdminOverview, error) {
	var out AdminOverview

	if err := s.DB.Find(&out.Users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if err := s.DB.Find(&out.Bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if err := s.DB.Find(&out.Messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return &out, nil
}
