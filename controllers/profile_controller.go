package controllers

import (
	"log"
	"net/http"

	"cleaning-backend/middleware"
	"cleaning-backend/services"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
)

type profileForm struct {
	FullName string `form:"full_name" binding:"required"`
	Phone    string `form:"phone"`
	Address  string `form:"address"`
}

type ProfileController struct {
	Users   *services.UserService
	Uploads *services.UploadService
}

func NewProfileController(users *services.UserService, uploads *services.UploadService) *ProfileController {
	return &ProfileController{Users: users, Uploads: uploads}
}

func (ctrl *ProfileController) Get(c *gin.Context) {
	user, err := ctrl.Users.GetByID(middleware.SessionUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *ProfileController) Update(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name is required")
		return
	}

	var profilePic string
	if fh, err := c.FormFile("profile_pic"); err == nil && fh != nil && fh.Filename != "" {
		name, err := ctrl.Uploads.Save(fh, services.ProfilePicDir)
		if err != nil {
			log.Printf("saving profile picture failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Profile update failed. Please try again.")
			return
		}
		profilePic = name
	}

	user, err := ctrl.Users.UpdateProfile(middleware.SessionUserID(c), services.ProfileInput{
		FullName: form.FullName,
		Phone:    form.Phone,
		Address:  form.Address,
	}, profilePic)
	if err != nil {
		log.Printf("profile update failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Profile update failed. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, user)
}
