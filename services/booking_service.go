package services

import (
	"errors"
	"fmt"
	"time"

	"cleaning-backend/models"

	"gorm.io/gorm"
)

const bookingDateLayout = "2006-01-02"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
	ErrPastBooking     = errors.New("past bookings cannot be edited")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)

type BookingInput struct {
	ServiceType string
	Date        string
	Time        string
	Rooms       string
	Address     string
	Note        string
}

// BookingCreatedNotifier receives a best-effort callback after a booking
// is persisted. Implementations must never fail the booking.
type BookingCreatedNotifier interface {
	BookingCreated(booking *models.Booking, owner *models.User)
}

type BookingService struct {
	DB       *gorm.DB
	Notifier BookingCreatedNotifier
}

func NewBookingService(db *gorm.DB, notifier BookingCreatedNotifier) *BookingService {
	return &BookingService{DB: db, Notifier: notifier}
}

func parseBookingDate(s string) (time.Time, error) {
	d, err := time.Parse(bookingDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Create persists a new booking for the given owner. The status is always
// Confirmed; photo slots may be empty. Notification runs after the commit
// and cannot affect the outcome.
func (s *BookingService) Create(userID uint, in BookingInput, photos [3]string) (*models.Booking, error) {
	if _, err := parseBookingDate(in.Date); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ServiceType: in.ServiceType,
		Date:        in.Date,
		Time:        in.Time,
		Rooms:       in.Rooms,
		Address:     in.Address,
		Note:        in.Note,
		Photo1:      photos[0],
		Photo2:      photos[1],
		Photo3:      photos[2],
		Status:      models.StatusConfirmed,
		UserID:      userID,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if s.Notifier != nil {
		var owner models.User
		if err := s.DB.First(&owner, userID).Error; err == nil {
			s.Notifier.BookingCreated(&booking, &owner)
		}
	}

	return &booking, nil
}

// ListByUser returns the owner's bookings, newest first.
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Edit overwrites a booking's details. Only the owner may edit, and only
// while the booking date has not passed. The status becomes Edited.
func (s *BookingService) Edit(userID, bookingID uint, in BookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	bookingDate, err := parseBookingDate(booking.Date)
	if err != nil {
		return nil, err
	}
	if bookingDate.Before(todayUTC()) {
		return nil, ErrPastBooking
	}

	if _, err := parseBookingDate(in.Date); err != nil {
		return nil, err
	}

	booking.ServiceType = in.ServiceType
	booking.Date = in.Date
	booking.Time = in.Time
	booking.Rooms = in.Rooms
	booking.Address = in.Address
	booking.Note = in.Note
	booking.Status = models.StatusEdited

	if err := s.DB.Save(&booking).Error; err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &booking, nil
}
