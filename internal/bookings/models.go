package bookings

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus mirrors the opaque gateway status on the booking record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Booking is a room reservation for a date range. AccountID is nil for
// guest checkout; RoomID is nil until a concrete unit is assigned.
type Booking struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingReference string     `json:"booking_reference" gorm:"uniqueIndex;not null;size:32"`
	VenueID          uuid.UUID  `json:"venue_id" gorm:"type:uuid;index;not null"`
	RoomTypeID       uuid.UUID  `json:"room_type_id" gorm:"type:uuid;index;not null"`
	RoomID           *uuid.UUID `json:"room_id,omitempty" gorm:"type:uuid;index"`
	AccountID        *uuid.UUID `json:"account_id,omitempty" gorm:"type:uuid;index"`

	CheckInDate  time.Time `json:"check_in_date" gorm:"not null;index"`
	CheckOutDate time.Time `json:"check_out_date" gorm:"not null;index"`
	Guests       int       `json:"guests" gorm:"not null;check:guests > 0"`

	Status     Status `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	TotalPrice int64  `json:"total_price" gorm:"not null"` // minor currency units

	// Contact details captured at checkout (guest bookings have no account).
	ContactFirstName string `json:"contact_first_name" gorm:"not null;size:100"`
	ContactLastName  string `json:"contact_last_name" gorm:"not null;size:100"`
	ContactEmail     string `json:"contact_email" gorm:"not null;size:255"`
	ContactPhone     string `json:"contact_phone" gorm:"size:32"`
	SpecialRequests  string `json:"special_requests,omitempty" gorm:"type:text"`

	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'PENDING'"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// Nights returns the number of room-nights this booking spans.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

func (b *Booking) Cancel(reason string) {
	b.Status = StatusCancelled
	now := time.Now()
	b.CancelledAt = &now
	b.CancellationReason = reason
	b.UpdatedAt = now
}
