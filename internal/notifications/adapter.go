package notifications

import (
	"context"
	"fmt"

	"eventuraa/internal/bookings"
	"eventuraa/internal/tickets"
	"eventuraa/pkg/logger"
)

// Adapter bridges the domain modules' notifier interfaces to the Kafka
// producer. Publish failures are logged and swallowed; a notification
// outage must never fail a booking or purchase.
type Adapter struct {
	producer Producer
	log      *logger.Logger
}

func NewAdapter(producer Producer) *Adapter {
	return &Adapter{
		producer: producer,
		log:      logger.GetDefault(),
	}
}

// NotifyBookingEvent implements the booking module's notifier contract.
func (a *Adapter) NotifyBookingEvent(ctx context.Context, event string, booking *bookings.Booking) {
	var notifType NotificationType
	var subject string

	switch event {
	case "booking.created":
		notifType = NotificationTypeBookingCreated
		subject = fmt.Sprintf("Booking received: %s", booking.BookingReference)
	case "booking.confirmed":
		notifType = NotificationTypeBookingConfirmed
		subject = fmt.Sprintf("Booking confirmed: %s", booking.BookingReference)
	case "booking.cancelled":
		notifType = NotificationTypeBookingCancelled
		subject = fmt.Sprintf("Booking cancelled: %s", booking.BookingReference)
	default:
		return
	}

	recipientName := booking.ContactFirstName + " " + booking.ContactLastName
	notification := NewNotification(notifType, booking.ContactEmail, recipientName)
	notification.Subject = subject
	notification.BookingRef = booking.BookingReference
	notification.Data["venue_id"] = booking.VenueID.String()
	notification.Data["check_in_date"] = booking.CheckInDate.Format("2006-01-02")
	notification.Data["check_out_date"] = booking.CheckOutDate.Format("2006-01-02")
	notification.Data["total_price"] = booking.TotalPrice

	if err := a.producer.Publish(ctx, notification); err != nil {
		a.log.ErrorWithContext(ctx, "failed to publish booking notification", err,
			map[string]interface{}{"booking_reference": booking.BookingReference})
	}
}

// NotifyPurchase implements the ticket module's notifier contract.
func (a *Adapter) NotifyPurchase(ctx context.Context, event string, purchase *tickets.TicketPurchase) {
	if event != "ticket.purchased" {
		return
	}

	notification := NewNotification(NotificationTypeTicketPurchased, purchase.ContactEmail, purchase.ContactName)
	notification.Subject = fmt.Sprintf("Your %d ticket(s) are confirmed", purchase.TicketCount)
	notification.TransactionID = purchase.TransactionID
	notification.Data["event_id"] = purchase.EventID.String()
	notification.Data["ticket_count"] = purchase.TicketCount
	notification.Data["total_amount"] = purchase.TotalAmount

	if err := a.producer.Publish(ctx, notification); err != nil {
		a.log.ErrorWithContext(ctx, "failed to publish purchase notification", err,
			map[string]interface{}{"transaction_id": purchase.TransactionID})
	}
}
