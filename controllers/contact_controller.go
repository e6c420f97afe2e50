package controllers

import (
	"log"
	"net/http"

	"cleaning-backend/services"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message" binding:"required"`
}

type ContactController struct {
	Contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{Contacts: contacts}
}

func (ctrl *ContactController) Submit(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, email and message are required")
		return
	}

	msg, err := ctrl.Contacts.Submit(services.ContactInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Message:  payload.Message,
	})
	if err != nil {
		log.Printf("contact submit failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Message could not be sent. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, msg)
}
