package controllers

import (
	"log"
	"net/http"

	"cleaning-backend/services"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type settingsPayload struct {
	BusinessName   string         `json:"business_name"`
	Address        string         `json:"address"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	BusinessHours  datatypes.JSON `json:"business_hours"`
	ServiceCatalog datatypes.JSON `json:"service_catalog"`
}

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

func (ctrl *SettingsController) Get(c *gin.Context) {
	setting, err := ctrl.Settings.Get()
	if err != nil {
		log.Printf("load settings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Could not load settings.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func (ctrl *SettingsController) Update(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	setting, err := ctrl.Settings.Update(services.SettingsInput{
		BusinessName:   payload.BusinessName,
		Address:        payload.Address,
		Phone:          payload.Phone,
		Email:          payload.Email,
		BusinessHours:  payload.BusinessHours,
		ServiceCatalog: payload.ServiceCatalog,
	})
	if err != nil {
		log.Printf("update settings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Could not update settings.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, setting)
}
