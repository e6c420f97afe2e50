package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting is a single-row table holding the business details shown on
// the public site plus the catalog of offered service types.
type SiteSetting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BusinessName string `gorm:"size:255" json:"business_name"`
	Address      string `gorm:"type:text" json:"address"`
	Phone        string `gorm:"size:50" json:"phone"`
	Email        string `gorm:"size:150" json:"email"`

	BusinessHours  datatypes.JSON `gorm:"column:business_hours" json:"business_hours,omitempty"`
	ServiceCatalog datatypes.JSON `gorm:"column:service_catalog" json:"service_catalog,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
