package controllers

import (
	"log"
	"net/http"

	"cleaning-backend/services"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

func (ctrl *AdminController) Overview(c *gin.Context) {
	overview, err := ctrl.Admin.Overview()
	if err != nil {
		log.Printf("admin overview failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Could not load admin overview.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, overview)
}
