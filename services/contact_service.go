package services

import (
	"fmt"
	"strings"

	"cleaning-backend/models"

	"gorm.io/gorm"
)

type ContactInput struct {
	FullName string
	Email    string
	Phone    string
	Message  string
}

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// Submit stores an inbound inquiry. Messages are append-only.
func (s *ContactService) Submit(in ContactInput) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Message:  in.Message,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return &msg, nil
}
