package bookings

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// RegisterValidators installs the "bookingdate" tag on gin's validator
// engine. Called once from route setup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
	}
}

type ContactInfo struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
}

type CreateBookingRequest struct {
	VenueID         string      `json:"venue" binding:"required,uuid"`
	RoomTypeID      string      `json:"room_type" binding:"required,uuid"`
	CheckInDate     string      `json:"check_in_date" binding:"required,bookingdate"`
	CheckOutDate    string      `json:"check_out_date" binding:"required,bookingdate"`
	Guests          int         `json:"guests" binding:"required,min=1"`
	ContactInfo     ContactInfo `json:"contact_info" binding:"required"`
	SpecialRequests string      `json:"special_requests" binding:"omitempty,max=1000"`
	// TotalPrice is what the client believes it owes; the server recomputes
	// and rejects a mismatch rather than trusting it.
	TotalPrice int64 `json:"total_price" binding:"omitempty,min=0"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type CheckAvailabilityQuery struct {
	CheckInDate  string `form:"check_in_date" binding:"required,bookingdate"`
	CheckOutDate string `form:"check_out_date" binding:"required,bookingdate"`
}
