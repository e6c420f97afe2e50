package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"cleaning-backend/middleware"
	"cleaning-backend/services"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
)

// bookingForm is bound from the multipart booking form. The photo slots
// are read separately via FormFile.
type bookingForm struct {
	ServiceType string `form:"service_type" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Time        string `form:"time" binding:"required"`
	Rooms       string `form:"rooms" binding:"required"`
	Address     string `form:"address" binding:"required"`
	Note        string `form:"note"`
}

type BookingController struct {
	Bookings *services.BookingService
	Uploads  *services.UploadService
}

func NewBookingController(bookings *services.BookingService, uploads *services.UploadService) *BookingController {
	return &BookingController{Bookings: bookings, Uploads: uploads}
}

func (ctrl *BookingController) List(c *gin.Context) {
	bookings, err := ctrl.Bookings.ListByUser(middleware.SessionUserID(c))
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Could not load bookings.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// savePhotos stores up to three optional photo uploads. A missing slot is
// not an error; a failed write is logged and the slot left empty so a bad
// photo never sinks the booking.
func (ctrl *BookingController) savePhotos(c *gin.Context) [3]string {
	var photos [3]string
	for i, field := range []string{"photo1", "photo2", "photo3"} {
		fh, err := c.FormFile(field)
		if err != nil || fh == nil || fh.Filename == "" {
			continue
		}
		name, err := ctrl.Uploads.Save(fh, services.BookingPhotoDir)
		if err != nil {
			log.Printf("saving %s failed: %v", field, err)
			continue
		}
		photos[i] = name
	}
	return photos
}

func (ctrl *BookingController) Create(c *gin.Context) {
	var form bookingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "service_type, date, time, rooms and address are required")
		return
	}

	photos := ctrl.savePhotos(c)

	booking, err := ctrl.Bookings.Create(middleware.SessionUserID(c), services.BookingInput{
		ServiceType: form.ServiceType,
		Date:        form.Date,
		Time:        form.Time,
		Rooms:       form.Rooms,
		Address:     form.Address,
		Note:        form.Note,
	}, photos)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		log.Printf("create booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var form bookingForm
	if err := c.ShouldBind(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "service_type, date, time, rooms and address are required")
		return
	}

	booking, err := ctrl.Bookings.Edit(middleware.SessionUserID(c), uint(id), services.BookingInput{
		ServiceType: form.ServiceType,
		Date:        form.Date,
		Time:        form.Time,
		Rooms:       form.Rooms,
		Address:     form.Address,
		Note:        form.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found.")
		case errors.Is(err, services.ErrNotBookingOwner):
			utils.JSONError(c, http.StatusForbidden, "You are not allowed to edit this booking.")
		case errors.Is(err, services.ErrPastBooking):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Past bookings cannot be edited.")
		case errors.Is(err, services.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		default:
			log.Printf("edit booking %d failed: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Update failed. Please try again.")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}
