package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cleaning-backend/config"
	"cleaning-backend/controllers"
	"cleaning-backend/routes"
	"cleaning-backend/services"
	"cleaning-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("SESSION_SECRET") == "" {
		log.Fatal("SESSION_SECRET environment variable is not set; sessions cannot be signed")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established and migrations applied")

	uploadDir := config.EnvOrDefault("UPLOAD_DIR", "uploads")

	mailer := utils.NewSMTPMailerFromEnv()
	adminEmail := config.EnvOrDefault("ADMIN_EMAIL", mailer.Username)
	notifier := services.NewBookingNotifier(mailer, adminEmail)

	userService := services.NewUserService(db)
	bookingService := services.NewBookingService(db, notifier)
	contactService := services.NewContactService(db)
	adminService := services.NewAdminService(db)
	settingsService := services.NewSettingsService(db)
	uploadService := services.NewUploadService(uploadDir)

	router := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(userService),
		Bookings: controllers.NewBookingController(bookingService, uploadService),
		Profile:  controllers.NewProfileController(userService, uploadService),
		Contact:  controllers.NewContactController(contactService),
		Admin:    controllers.NewAdminController(adminService),
		Settings: controllers.NewSettingsController(settingsService),
	}, uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
