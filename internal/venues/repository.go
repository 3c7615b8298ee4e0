package venues

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Venues
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenueWithRoomTypes(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, query VenueListQuery) ([]Venue, int64, error)
	UpdateVenue(ctx context.Context, venue *Venue) error

	// Room types
	CreateRoomType(ctx context.Context, roomType *RoomType) error
	GetRoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomType, error)
	ListRoomTypesByVenue(ctx context.Context, venueID uuid.UUID) ([]RoomType, error)

	// Rooms
	CreateRoom(ctx context.Context, room *Room) error
	GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error)
	ListRoomsByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]Room, error)
	UpdateRoomStatus(ctx context.Context, id uuid.UUID, status RoomStatus) error
	CountRoomsByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetVenueWithRoomTypes(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).
		Preload("RoomTypes").
		Where("id = ?", id).
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) ListVenues(ctx context.Context, query VenueListQuery) ([]Venue, int64, error) {
	var venues []Venue
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Venue{}).Where("is_active = ?", true)

	if query.Search != "" {
		baseQuery = baseQuery.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.Approval != "" {
		baseQuery = baseQuery.Where("approval_status = ?", query.Approval)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&venues).Error

	return venues, totalCount, err
}

func (r *repository) UpdateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *repository) CreateRoomType(ctx context.Context, roomType *RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *repository) GetRoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomType, error) {
	var roomType RoomType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&roomType).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *repository) ListRoomTypesByVenue(ctx context.Context, venueID uuid.UUID) ([]RoomType, error) {
	var roomTypes []RoomType
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("name ASC").
		Find(&roomTypes).Error
	return roomTypes, err
}

func (r *repository) CreateRoom(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *repository) GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	var room Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) ListRoomsByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]Room, error) {
	var rooms []Room
	err := r.db.WithContext(ctx).
		Where("room_type_id = ?", roomTypeID).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (r *repository) UpdateRoomStatus(ctx context.Context, id uuid.UUID, status RoomStatus) error {
	return r.db.WithContext(ctx).
		Model(&Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CountRoomsByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Room{}).
		Where("room_type_id = ?", roomTypeID).
		Count(&count).Error
	return count, err
}

// CalculateTotalPages computes page count for paginated listings.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
