package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cleaning-backend/controllers"
	"cleaning-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type Controllers struct {
	Auth     *controllers.AuthController
	Bookings *controllers.BookingController
	Profile  *controllers.ProfileController
	Contact  *controllers.ContactController
	Admin    *controllers.AdminController
	Settings *controllers.SettingsController
}

func SetupRouter(ctrl Controllers, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", uploadDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ctrl.Auth.Signup)
			auth.POST("/login", ctrl.Auth.Login)
			auth.POST("/logout", ctrl.Auth.Logout)
			auth.GET("/me", middleware.RequireUser(), ctrl.Auth.Me)
		}

		bookings := api.Group("/bookings", middleware.RequireUser())
		{
			bookings.GET("", ctrl.Bookings.List)
			bookings.POST("", ctrl.Bookings.Create)
			bookings.PUT("/:id", ctrl.Bookings.Edit)
		}

		profile := api.Group("/profile", middleware.RequireUser())
		{
			profile.GET("", ctrl.Profile.Get)
			profile.PUT("", ctrl.Profile.Update)
		}

		api.POST("/contact", ctrl.Contact.Submit)

		api.GET("/settings", ctrl.Settings.Get)
		api.PUT("/settings", middleware.RequireUser(), middleware.RequireAdmin(), ctrl.Settings.Update)

		admin := api.Group("/admin", middleware.RequireUser(), middleware.RequireAdmin())
		{
			admin.GET("/overview", ctrl.Admin.Overview)
		}
	}

	return r
}
