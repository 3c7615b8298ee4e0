package bookings

import (
	"context"
	"testing"
	"time"

	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/apperrors"
	"eventuraa/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory Repository sharing the overlap predicate with
// the SQL path through CountConflicts.
type fakeRepo struct {
	totalRooms   map[uuid.UUID]int
	bookings     []Booking
	roomStatuses map[uuid.UUID]venues.RoomStatus
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		totalRooms:   make(map[uuid.UUID]int),
		roomStatuses: make(map[uuid.UUID]venues.RoomStatus),
	}
}

func (r *fakeRepo) byRoomType(roomTypeID uuid.UUID) []Booking {
	var out []Booking
	for i := range r.bookings {
		if r.bookings[i].RoomTypeID == roomTypeID {
			out = append(out, r.bookings[i])
		}
	}
	return out
}

func (r *fakeRepo) CreateBookingWithAvailabilityCheck(ctx context.Context, booking *Booking) error {
	total, ok := r.totalRooms[booking.RoomTypeID]
	if !ok {
		return apperrors.NotFound("room type %s not found", booking.RoomTypeID)
	}

	conflicts := CountConflicts(r.byRoomType(booking.RoomTypeID), booking.CheckInDate, booking.CheckOutDate, uuid.Nil)
	if conflicts >= total {
		return apperrors.Availability("room type is not available for selected dates")
	}

	booking.ID = uuid.New()
	roomID := uuid.New()
	booking.RoomID = &roomID
	r.roomStatuses[roomID] = venues.RoomReserved
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *fakeRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetBookingByReference(ctx context.Context, reference string) (*Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].BookingReference == reference {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time, reason string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			if cancelledAt != nil {
				r.bookings[i].CancelledAt = cancelledAt
				r.bookings[i].CancellationReason = reason
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) CountOverlapping(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (int, error) {
	return CountConflicts(r.byRoomType(roomTypeID), checkIn, checkOut, excludeID), nil
}

func (r *fakeRepo) SetRoomStatus(ctx context.Context, roomID uuid.UUID, status venues.RoomStatus) error {
	r.roomStatuses[roomID] = status
	return nil
}

func (r *fakeRepo) GetAccountBookings(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]Booking, error) {
	var out []Booking
	for i := range r.bookings {
		if r.bookings[i].AccountID != nil && *r.bookings[i].AccountID == accountID {
			out = append(out, r.bookings[i])
		}
	}
	return out, nil
}

type fakeInventory struct {
	roomTypes map[uuid.UUID]*venues.RoomType
}

func (f *fakeInventory) GetRoomType(ctx context.Context, id uuid.UUID) (*venues.RoomType, error) {
	rt, ok := f.roomTypes[id]
	if !ok {
		return nil, apperrors.NotFound("room type %s not found", id)
	}
	return rt, nil
}

func newTestService(totalRooms int, pricePerNight int64) (Service, *fakeRepo, uuid.UUID, uuid.UUID) {
	venueID := uuid.New()
	roomTypeID := uuid.New()

	repo := newFakeRepo()
	repo.totalRooms[roomTypeID] = totalRooms

	inventory := &fakeInventory{
		roomTypes: map[uuid.UUID]*venues.RoomType{
			roomTypeID: {
				ID:            roomTypeID,
				VenueID:       venueID,
				Name:          "Standard Double",
				Capacity:      2,
				TotalRooms:    totalRooms,
				PricePerNight: pricePerNight,
			},
		},
	}

	return NewService(repo, inventory, nil), repo, venueID, roomTypeID
}

func createRequest(venueID, roomTypeID uuid.UUID, checkIn, checkOut string) CreateBookingRequest {
	return CreateBookingRequest{
		VenueID:      venueID.String(),
		RoomTypeID:   roomTypeID.String(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       2,
		ContactInfo: ContactInfo{
			FirstName: "Ada",
			LastName:  "Lseth",
			Email:     "ada@example.com",
		},
	}
}

func TestCreateBookingOverlapRejection(t *testing.T) {
	svc, _, venueID, roomTypeID := newTestService(1, 10000)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-12"))
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if first.Status != string(StatusPending) {
		t.Errorf("new booking status = %s, want PENDING", first.Status)
	}

	_, err = svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-11", "2025-01-13"))
	if !apperrors.IsKind(err, apperrors.KindAvailability) {
		t.Fatalf("overlapping booking error = %v, want availability kind", err)
	}

	// Touching the checkout boundary is a handover, not an overlap
	_, err = svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-12", "2025-01-14"))
	if err != nil {
		t.Fatalf("boundary booking failed: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, venueID, roomTypeID := newTestService(1, 10000)
	ctx := context.Background()

	// Reversed dates
	_, err := svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-12", "2025-01-10"))
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("reversed dates error = %v, want validation kind", err)
	}

	// Zero-length stay
	_, err = svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-10"))
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("zero-length stay error = %v, want validation kind", err)
	}

	// Too many guests
	req := createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-12")
	req.Guests = 5
	_, err = svc.CreateBooking(ctx, nil, req)
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("excess guests error = %v, want validation kind", err)
	}

	// Room type from another venue
	req = createRequest(uuid.New(), roomTypeID, "2025-01-10", "2025-01-12")
	_, err = svc.CreateBooking(ctx, nil, req)
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("venue mismatch error = %v, want validation kind", err)
	}
}

func TestCreateBookingRecomputesTotal(t *testing.T) {
	svc, _, venueID, roomTypeID := newTestService(2, 10000)
	ctx := context.Background()

	// Wrong client total is rejected
	req := createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-12")
	req.TotalPrice = 5
	_, err := svc.CreateBooking(ctx, nil, req)
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("wrong total error = %v, want validation kind", err)
	}

	// Matching total is accepted; 2 nights at 10000
	req.TotalPrice = 20000
	resp, err := svc.CreateBooking(ctx, nil, req)
	if err != nil {
		t.Fatalf("booking with correct total failed: %v", err)
	}
	if resp.TotalPrice != 20000 {
		t.Errorf("total price = %d, want 20000", resp.TotalPrice)
	}
}

func TestCancellationReleasesInventory(t *testing.T) {
	svc, _, venueID, roomTypeID := newTestService(1, 10000)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-12"))
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	firstID := uuid.MustParse(first.ID)

	if _, err := svc.ChangeStatus(ctx, firstID, StatusConfirmed, accounts.RoleHost, ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	// Overlapping range is blocked while the first booking is live
	_, err = svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-11", "2025-01-13"))
	if !apperrors.IsKind(err, apperrors.KindAvailability) {
		t.Fatalf("overlap while confirmed error = %v, want availability kind", err)
	}

	cancelled, err := svc.ChangeStatus(ctx, firstID, StatusCancelled, accounts.RoleUser, "change of plans")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != string(StatusCancelled) {
		t.Errorf("status after cancel = %s, want CANCELLED", cancelled.Status)
	}

	// The same range is bookable again
	if _, err := svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-11", "2025-01-13")); err != nil {
		t.Fatalf("rebooking after cancellation failed: %v", err)
	}
}

func TestConfirmRequiresHostOrAdmin(t *testing.T) {
	svc, _, venueID, roomTypeID := newTestService(1, 10000)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-12"))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	bookingID := uuid.MustParse(created.ID)

	for _, role := range []accounts.Role{accounts.RoleGuest, accounts.RoleUser, accounts.RoleOrganizer} {
		if _, err := svc.ChangeStatus(ctx, bookingID, StatusConfirmed, role, ""); !apperrors.IsKind(err, apperrors.KindAuthorization) {
			t.Errorf("confirm as %s error = %v, want authorization kind", role, err)
		}
	}

	if _, err := svc.ChangeStatus(ctx, bookingID, StatusConfirmed, accounts.RoleAdmin, ""); err != nil {
		t.Errorf("confirm as admin failed: %v", err)
	}
}

func TestTerminalStatusRejectsTransitions(t *testing.T) {
	svc, repo, venueID, roomTypeID := newTestService(1, 10000)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, nil, createRequest(venueID, roomTypeID, "2025-01-10", "2025-01-12"))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	bookingID := uuid.MustParse(created.ID)

	if _, err := svc.ChangeStatus(ctx, bookingID, StatusCancelled, accounts.RoleUser, "no longer needed"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	_, err = svc.ChangeStatus(ctx, bookingID, StatusConfirmed, accounts.RoleAdmin, "")
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Fatalf("confirm after cancel error = %v, want invalid transition kind", err)
	}

	// State must be unchanged
	stored, err := repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Status != StatusCancelled {
		t.Errorf("status after rejected transition = %s, want CANCELLED", stored.Status)
	}
}

func TestChangeStatusUnknownBooking(t *testing.T) {
	svc, _, _, _ := newTestService(1, 10000)

	_, err := svc.ChangeStatus(context.Background(), uuid.New(), StatusCancelled, accounts.RoleAdmin, "")
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("unknown booking error = %v, want not found kind", err)
	}
}
