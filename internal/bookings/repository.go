package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventuraa/internal/shared/apperrors"
	"eventuraa/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Core booking operations
	CreateBookingWithAvailabilityCheck(ctx context.Context, booking *Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time, reason string) error

	// Availability reads
	CountOverlapping(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (int, error)

	// Room release on cancellation/completion
	SetRoomStatus(ctx context.Context, roomID uuid.UUID, status venues.RoomStatus) error

	// Account booking history
	GetAccountBookings(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithAvailabilityCheck inserts a booking atomically. The
// availability predicate already ran once in the service as a fast pre-check;
// it runs again here under a FOR UPDATE lock on the room type row so two
// concurrent requests cannot both slip past the count.
func (r *repository) CreateBookingWithAvailabilityCheck(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the room type row to serialize capacity checks
		var roomType struct {
			ID         uuid.UUID `gorm:"column:id"`
			TotalRooms int       `gorm:"column:total_rooms"`
		}

		err := roomTypeLockQuery(tx, booking.RoomTypeID).First(&roomType).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("room type %s not found", booking.RoomTypeID)
			}
			return fmt.Errorf("failed to lock room type: %w", err)
		}

		// 2. Re-run the overlap count under the lock
		var conflicts int64
		err = tx.Model(&Booking{}).
			Where("room_type_id = ?", booking.RoomTypeID).
			Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
			Where("check_in_date < ? AND check_out_date > ?", booking.CheckOutDate, booking.CheckInDate).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("failed to count overlapping bookings: %w", err)
		}

		if int(conflicts) >= roomType.TotalRooms {
			return apperrors.Availability("room type is not available for selected dates")
		}

		// 3. Assign a concrete free unit: AVAILABLE and not attached to a
		// live overlapping booking. Capacity math said one exists; if the
		// physical room records disagree that is an inventory bug, not a
		// user error.
		bookedRooms := tx.Model(&Booking{}).
			Select("room_id").
			Where("room_type_id = ?", booking.RoomTypeID).
			Where("room_id IS NOT NULL").
			Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
			Where("check_in_date < ? AND check_out_date > ?", booking.CheckOutDate, booking.CheckInDate)

		var room struct {
			ID uuid.UUID `gorm:"column:id"`
		}
		err = tx.Table("rooms").
			Select("id").
			Where("room_type_id = ?", booking.RoomTypeID).
			Where("status = ?", venues.RoomAvailable).
			Where("id NOT IN (?)", bookedRooms).
			Order("room_number ASC").
			First(&room).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.InventoryInconsistency(
					"no free room unit for room type %s despite capacity %d exceeding %d live bookings",
					booking.RoomTypeID, roomType.TotalRooms, conflicts)
			}
			return fmt.Errorf("failed to select free room: %w", err)
		}

		booking.RoomID = &room.ID

		// 4. Persist the booking in PENDING state
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// 5. Mark the assigned unit reserved
		err = tx.Table("rooms").
			Where("id = ?", room.ID).
			Update("status", venues.RoomReserved).Error
		if err != nil {
			return fmt.Errorf("failed to reserve room: %w", err)
		}

		return nil
	})
}

// roomTypeLockQuery builds the SELECT ... FOR UPDATE that serializes
// capacity checks on a room type row. GORM only emits the locking clause
// through clause.Locking; the old string query option is silently dropped.
func roomTypeLockQuery(tx *gorm.DB, roomTypeID uuid.UUID) *gorm.DB {
	return tx.Table("room_types").
		Select("id, total_rooms").
		Where("id = ?", roomTypeID).
		Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetBookingByReference(ctx context.Context, reference string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("booking_reference = ?", reference).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time, reason string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}

	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
		updates["cancellation_reason"] = reason
	}

	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) CountOverlapping(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (int, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	err := query.Count(&count).Error
	return int(count), err
}

func (r *repository) SetRoomStatus(ctx context.Context, roomID uuid.UUID, status venues.RoomStatus) error {
	return r.db.WithContext(ctx).
		Table("rooms").
		Where("id = ?", roomID).
		Update("status", status).Error
}

func (r *repository) GetAccountBookings(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}
