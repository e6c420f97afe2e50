package services

import (
	"fmt"
	"log"

	"cleaning-backend/models"
)

// Mailer is the outbound transport used by the notifier.
type Mailer interface {
	Send(to, subject, body string) error
}

// BookingNotifier sends the two booking-created emails: one to the admin
// address and one to the customer. The sends are independent; a failure
// is logged and never propagated, so booking persistence is unaffected.
type BookingNotifier struct {
	Mailer     Mailer
	AdminEmail string
}

func NewBookingNotifier(mailer Mailer, adminEmail string) *BookingNotifier {
	return &BookingNotifier{Mailer: mailer, AdminEmail: adminEmail}
}

func (n *BookingNotifier) BookingCreated(booking *models.Booking, owner *models.User) {
	if n.Mailer == nil {
		return
	}

	if n.AdminEmail != "" {
		body := fmt.Sprintf(
			"A new cleaning booking has been received.\n\n"+
				"-------------------------\n"+
				"CUSTOMER INFORMATION\n"+
				"-------------------------\n"+
				"Name: %s\nEmail: %s\nPhone: %s\n\n"+
				"-------------------------\n"+
				"BOOKING DETAILS\n"+
				"-------------------------\n"+
				"Service: %s\nDate: %s\nTime: %s\nRooms: %s\nAddress: %s\nNotes: %s\n\n"+
				"Submitted On: %s\n",
			owner.FullName, owner.Email, owner.Phone,
			booking.ServiceType, booking.Date, booking.Time, booking.Rooms,
			booking.Address, booking.Note,
			booking.CreatedAt.Format("2006-01-02 15:04:05"),
		)
		if err := n.Mailer.Send(n.AdminEmail, "New Cleaning Booking Received", body); err != nil {
			log.Printf("admin notification failed for booking %d: %v", booking.ID, err)
		}
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for booking with Fabulous Cleaning Services!\n\n"+
			"We have received your booking with the details below:\n\n"+
			"Service: %s\nDate: %s\nTime: %s\nAddress: %s\n\n"+
			"Our team will contact you shortly to confirm the details.\n\n"+
			"Warm regards,\nFabulous Cleaning Services\n",
		owner.FullName,
		booking.ServiceType, booking.Date, booking.Time, booking.Address,
	)
	if err := n.Mailer.Send(owner.Email, "We've Received Your Booking", body); err != nil {
		log.Printf("customer confirmation failed for booking %d: %v", booking.ID, err)
	}
}
