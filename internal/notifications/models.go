package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeBookingCreated   NotificationType = "booking_created"
	NotificationTypeBookingConfirmed NotificationType = "booking_confirmed"
	NotificationTypeBookingCancelled NotificationType = "booking_cancelled"
	NotificationTypeTicketPurchased  NotificationType = "ticket_purchased"
)

// Notification is the message published to the notification topic for
// downstream delivery workers.
type Notification struct {
	ID             uuid.UUID              `json:"id"`
	Type           NotificationType       `json:"type"`
	RecipientEmail string                 `json:"recipient_email"`
	RecipientName  string                 `json:"recipient_name"`
	Subject        string                 `json:"subject"`
	BookingRef     string                 `json:"booking_ref,omitempty"`
	TransactionID  string                 `json:"transaction_id,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func NewNotification(notifType NotificationType, email, name string) *Notification {
	return &Notification{
		ID:             uuid.New(),
		Type:           notifType,
		RecipientEmail: email,
		RecipientName:  name,
		Data:           make(map[string]interface{}),
		CreatedAt:      time.Now(),
	}
}

func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// PartitionKey routes all messages for one recipient to the same
// partition so delivery order per recipient is preserved.
func (n *Notification) PartitionKey() string {
	if n.RecipientEmail != "" {
		return n.RecipientEmail
	}
	return n.ID.String()
}
