package bookings

import (
	"context"
	"errors"
	"time"

	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/apperrors"
	"eventuraa/internal/venues"
	"eventuraa/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService is the slice of the venues service this module needs
// (kept as a local interface to avoid a hard wiring dependency).
type InventoryService interface {
	GetRoomType(ctx context.Context, id uuid.UUID) (*venues.RoomType, error)
}

// Notifier publishes booking lifecycle messages to the notification sink.
// Delivery is best effort; a sink failure never fails the booking.
type Notifier interface {
	NotifyBookingEvent(ctx context.Context, event string, booking *Booking)
}

// Service interface defines the contract for booking business logic
type Service interface {
	CheckAvailability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID uuid.UUID) (bool, error)
	CreateBooking(ctx context.Context, accountID *uuid.UUID, req CreateBookingRequest) (*BookingResponse, error)
	ChangeStatus(ctx context.Context, bookingID uuid.UUID, newStatus Status, actorRole accounts.Role, reason string) (*BookingResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	GetAccountBookings(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]Booking, error)
}

type service struct {
	repo      Repository
	inventory InventoryService
	notifier  Notifier
	log       *logger.Logger
}

// NewService creates a new booking service instance. notifier may be nil.
func NewService(repo Repository, inventory InventoryService, notifier Notifier) Service {
	return &service{
		repo:      repo,
		inventory: inventory,
		notifier:  notifier,
		log:       logger.GetDefault(),
	}
}

// CheckAvailability reports whether the room type has capacity left for
// [checkIn, checkOut). Read-only; the authoritative check re-runs inside
// the insert transaction.
func (s *service) CheckAvailability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID uuid.UUID) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, apperrors.Validation("check_out_date must be after check_in_date")
	}

	roomType, err := s.inventory.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return false, err
	}

	conflicts, err := s.repo.CountOverlapping(ctx, roomTypeID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}

	return conflicts < roomType.TotalRooms, nil
}

// CreateBooking validates the request, checks availability and persists a
// PENDING booking with an assigned room unit.
func (s *service) CreateBooking(ctx context.Context, accountID *uuid.UUID, req CreateBookingRequest) (*BookingResponse, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperrors.Validation("invalid venue ID")
	}
	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, apperrors.Validation("invalid room type ID")
	}

	checkIn, err := time.Parse(DateLayout, req.CheckInDate)
	if err != nil {
		return nil, apperrors.Validation("check_in_date must be in YYYY-MM-DD format")
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOutDate)
	if err != nil {
		return nil, apperrors.Validation("check_out_date must be in YYYY-MM-DD format")
	}
	if !checkOut.After(checkIn) {
		return nil, apperrors.Validation("check_out_date must be after check_in_date")
	}

	roomType, err := s.inventory.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType.VenueID != venueID {
		return nil, apperrors.Validation("room type does not belong to the given venue")
	}
	if req.Guests > roomType.Capacity {
		return nil, apperrors.Validation("guests %d exceeds room capacity %d", req.Guests, roomType.Capacity)
	}

	// The server recomputes the total; a client-supplied total is only
	// accepted when it matches.
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := int64(nights) * roomType.PricePerNight
	if req.TotalPrice != 0 && req.TotalPrice != totalPrice {
		return nil, apperrors.Validation("total_price mismatch: expected %d for %d nights", totalPrice, nights)
	}

	// Fast pre-check. The same predicate runs again under a row lock
	// inside the insert transaction.
	conflicts, err := s.repo.CountOverlapping(ctx, roomTypeID, checkIn, checkOut, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if conflicts >= roomType.TotalRooms {
		return nil, apperrors.Availability("room type is not available for selected dates")
	}

	reference, err := GenerateBookingReference()
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		BookingReference: reference,
		VenueID:          venueID,
		RoomTypeID:       roomTypeID,
		AccountID:        accountID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Guests:           req.Guests,
		Status:           StatusPending,
		TotalPrice:       totalPrice,
		ContactFirstName: req.ContactInfo.FirstName,
		ContactLastName:  req.ContactInfo.LastName,
		ContactEmail:     req.ContactInfo.Email,
		ContactPhone:     req.ContactInfo.Phone,
		SpecialRequests:  req.SpecialRequests,
		PaymentStatus:    PaymentPending,
	}

	if err := s.repo.CreateBookingWithAvailabilityCheck(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.BookingReference, roomTypeID.String())

	if s.notifier != nil {
		s.notifier.NotifyBookingEvent(ctx, "booking.created", booking)
	}

	resp := booking.ToResponse()
	return &resp, nil
}

// ChangeStatus moves a booking through its lifecycle. CONFIRMED is gated
// to host/admin actors; terminal states reject every transition.
func (s *service) ChangeStatus(ctx context.Context, bookingID uuid.UUID, newStatus Status, actorRole accounts.Role, reason string) (*BookingResponse, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.Validation("invalid booking status %q", newStatus)
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking %s not found", bookingID)
		}
		return nil, err
	}

	if newStatus == StatusConfirmed && !actorRole.CanConfirmBookings() {
		return nil, apperrors.Authorization("role %s cannot confirm bookings", actorRole)
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, apperrors.InvalidTransition("cannot transition booking from %s to %s", booking.Status, newStatus)
	}

	var cancelledAt *time.Time
	if newStatus == StatusCancelled {
		now := time.Now()
		cancelledAt = &now
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, newStatus, cancelledAt, reason); err != nil {
		return nil, err
	}

	// Room unit bookkeeping. Cancellation and completion release the unit,
	// which together with the status filter in the overlap count makes the
	// range bookable again.
	if booking.RoomID != nil {
		switch newStatus {
		case StatusConfirmed:
			err = s.repo.SetRoomStatus(ctx, *booking.RoomID, venues.RoomOccupied)
		case StatusCancelled, StatusCompleted:
			err = s.repo.SetRoomStatus(ctx, *booking.RoomID, venues.RoomAvailable)
		}
		if err != nil {
			s.log.ErrorWithContext(ctx, "failed to update room status after transition", err,
				map[string]interface{}{"booking_id": bookingID.String()})
		}
	}

	s.log.LogBookingStatusChanged(ctx, bookingID.String(), string(booking.Status), string(newStatus))

	booking.Status = newStatus
	if cancelledAt != nil {
		booking.CancelledAt = cancelledAt
		booking.CancellationReason = reason
	}

	if s.notifier != nil {
		switch newStatus {
		case StatusConfirmed:
			s.notifier.NotifyBookingEvent(ctx, "booking.confirmed", booking)
		case StatusCancelled:
			s.notifier.NotifyBookingEvent(ctx, "booking.cancelled", booking)
		}
	}

	resp := booking.ToResponse()
	return &resp, nil
}

// GetBooking retrieves a booking by ID
func (s *service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking %s not found", bookingID)
		}
		return nil, err
	}
	return booking, nil
}

// GetAccountBookings retrieves bookings for a specific account
func (s *service) GetAccountBookings(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]Booking, error) {
	return s.repo.GetAccountBookings(ctx, accountID, limit, offset)
}
