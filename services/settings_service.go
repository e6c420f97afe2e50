package services

import (
	"errors"
	"fmt"

	"cleaning-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingsInput struct {
	BusinessName   string
	Address        string
	Phone          string
	Email          string
	BusinessHours  datatypes.JSON
	ServiceCatalog datatypes.JSON
}

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the singleton settings row, or an empty record when none
// has been created yet.
func (s *SettingsService) Get() (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := s.DB.First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.SiteSetting{}, nil
		}
		return nil, fmt.Errorf("load site settings: %w", err)
	}
	return &setting, nil
}

// Update upserts the singleton settings row.
func (s *SettingsService) Update(in SettingsInput) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := s.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	setting.BusinessName = in.BusinessName
	setting.Address = in.Address
	setting.Phone = in.Phone
	setting.Email = in.Email
	if in.BusinessHours != nil {
		setting.BusinessHours = in.BusinessHours
	}
	if in.ServiceCatalog != nil {
		setting.ServiceCatalog = in.ServiceCatalog
	}

	if err := s.DB.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("save site settings: %w", err)
	}
	return &setting, nil
}
