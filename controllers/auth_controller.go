package controllers

import (
	"errors"
	"log"
	"net/http"

	"cleaning-backend/middleware"
	"cleaning-backend/services"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
)

type signupPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, email and password are required")
		return
	}

	user, err := ctrl.Users.Signup(services.SignupInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Email already registered. Please log in.")
			return
		}
		log.Printf("signup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Signup failed. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := ctrl.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		log.Printf("login failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	token, err := middleware.IssueSessionToken(user)
	if err != nil {
		log.Printf("session token issue failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	middleware.SetSessionCookie(c, token)

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"is_admin":  user.IsAdmin,
		},
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.Users.GetByID(middleware.SessionUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "User not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
