package bookings

import "time"

type BookingResponse struct {
	ID               string    `json:"id"`
	BookingReference string    `json:"booking_reference"`
	VenueID          string    `json:"venue_id"`
	RoomTypeID       string    `json:"room_type_id"`
	RoomID           string    `json:"room_id,omitempty"`
	CheckInDate      string    `json:"check_in_date"`
	CheckOutDate     string    `json:"check_out_date"`
	Guests           int       `json:"guests"`
	Status           string    `json:"status"`
	TotalPrice       int64     `json:"total_price"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:               b.ID.String(),
		BookingReference: b.BookingReference,
		VenueID:          b.VenueID.String(),
		RoomTypeID:       b.RoomTypeID.String(),
		CheckInDate:      b.CheckInDate.Format(DateLayout),
		CheckOutDate:     b.CheckOutDate.Format(DateLayout),
		Guests:           b.Guests,
		Status:           string(b.Status),
		TotalPrice:       b.TotalPrice,
		PaymentStatus:    string(b.PaymentStatus),
		CreatedAt:        b.CreatedAt,
	}
	if b.RoomID != nil {
		resp.RoomID = b.RoomID.String()
	}
	return resp
}
