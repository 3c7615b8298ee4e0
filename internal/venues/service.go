package venues

import (
	"context"
	"errors"
	"time"

	"eventuraa/internal/shared/apperrors"
	"eventuraa/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service interface defines the contract for venue inventory management
type Service interface {
	CreateVenue(ctx context.Context, ownerID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error)
	ListVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error)
	SetApproval(ctx context.Context, id uuid.UUID, status ApprovalStatus) error

	CreateRoomType(ctx context.Context, venueID uuid.UUID, req CreateRoomTypeRequest) (*RoomTypeResponse, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomType, error)
	ListRoomTypes(ctx context.Context, venueID uuid.UUID) ([]RoomTypeResponse, error)

	CreateRoom(ctx context.Context, roomTypeID uuid.UUID, req CreateRoomRequest) (*RoomResponse, error)
	ListRooms(ctx context.Context, roomTypeID uuid.UUID) ([]RoomResponse, error)
	UpdateRoomStatus(ctx context.Context, roomID uuid.UUID, status RoomStatus) error
}

// venueListCacheTTL bounds staleness of the cached venue listings.
const venueListCacheTTL = 10 * time.Minute

type service struct {
	repo  Repository
	cache cache.Service
}

// NewService creates a new venue service instance. The cache service is
// optional; a nil cache disables the read-through layer.
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) CreateVenue(ctx context.Context, ownerID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error) {
	if req.MinCapacity > req.MaxCapacity {
		return nil, apperrors.Validation("min_capacity cannot exceed max_capacity")
	}

	venue := &Venue{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		OwnerID:        ownerID,
		MinCapacity:    req.MinCapacity,
		MaxCapacity:    req.MaxCapacity,
		ApprovalStatus: ApprovalPending,
		IsActive:       true,
	}

	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}

	s.invalidateVenueCaches(ctx, venue.ID)

	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error) {
	venue, err := s.repo.GetVenueWithRoomTypes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("venue %s not found", id)
		}
		return nil, err
	}

	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) ListVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	fetcher := func() (interface{}, error) {
		venues, totalCount, err := s.repo.ListVenues(ctx, query)
		if err != nil {
			return nil, err
		}

		responses := make([]VenueResponse, 0, len(venues))
		for i := range venues {
			responses = append(responses, venues[i].ToResponse())
		}

		return &PaginatedVenues{
			Venues:     responses,
			TotalCount: totalCount,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: CalculateTotalPages(totalCount, query.Limit),
		}, nil
	}

	var result PaginatedVenues
	if s.cache != nil {
		key := cache.VenueListKey(query.Page, query.Limit, query.Search, query.Approval)
		if err := s.cache.GetOrSet(ctx, key, venueListCacheTTL, fetcher, &result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	data, err := fetcher()
	if err != nil {
		return nil, err
	}
	return data.(*PaginatedVenues), nil
}

func (s *service) UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error) {
	venue, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("venue %s not found", id)
		}
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Location != nil {
		venue.Location = *req.Location
	}
	if req.MinCapacity != nil {
		venue.MinCapacity = *req.MinCapacity
	}
	if req.MaxCapacity != nil {
		venue.MaxCapacity = *req.MaxCapacity
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}

	if venue.MinCapacity > venue.MaxCapacity {
		return nil, apperrors.Validation("min_capacity cannot exceed max_capacity")
	}

	if err := s.repo.UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}

	s.invalidateVenueCaches(ctx, venue.ID)

	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) SetApproval(ctx context.Context, id uuid.UUID, status ApprovalStatus) error {
	if !status.IsValid() {
		return apperrors.Validation("invalid approval status %q", status)
	}

	venue, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("venue %s not found", id)
		}
		return err
	}

	venue.ApprovalStatus = status
	if err := s.repo.UpdateVenue(ctx, venue); err != nil {
		return err
	}

	s.invalidateVenueCaches(ctx, venue.ID)
	return nil
}

func (s *service) CreateRoomType(ctx context.Context, venueID uuid.UUID, req CreateRoomTypeRequest) (*RoomTypeResponse, error) {
	if _, err := s.repo.GetVenueByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("venue %s not found", venueID)
		}
		return nil, err
	}

	roomType := &RoomType{
		VenueID:       venueID,
		Name:          req.Name,
		Capacity:      req.Capacity,
		TotalRooms:    req.TotalRooms,
		PricePerNight: req.PricePerNight,
	}

	if err := s.repo.CreateRoomType(ctx, roomType); err != nil {
		return nil, err
	}

	s.invalidateVenueCaches(ctx, venueID)

	resp := roomType.ToResponse()
	return &resp, nil
}

func (s *service) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomType, error) {
	roomType, err := s.repo.GetRoomTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("room type %s not found", id)
		}
		return nil, err
	}
	return roomType, nil
}

func (s *service) ListRoomTypes(ctx context.Context, venueID uuid.UUID) ([]RoomTypeResponse, error) {
	roomTypes, err := s.repo.ListRoomTypesByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	responses := make([]RoomTypeResponse, 0, len(roomTypes))
	for i := range roomTypes {
		responses = append(responses, roomTypes[i].ToResponse())
	}
	return responses, nil
}

func (s *service) CreateRoom(ctx context.Context, roomTypeID uuid.UUID, req CreateRoomRequest) (*RoomResponse, error) {
	roomType, err := s.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	// Physical room records must not exceed the declared room count; the
	// availability math counts against TotalRooms.
	existing, err := s.repo.CountRoomsByRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if existing >= int64(roomType.TotalRooms) {
		return nil, apperrors.Validation("room type %s already has %d of %d rooms registered",
			roomTypeID, existing, roomType.TotalRooms)
	}

	status := RoomAvailable
	if req.Status != "" {
		status = RoomStatus(req.Status)
	}

	room := &Room{
		RoomTypeID: roomTypeID,
		RoomNumber: req.RoomNumber,
		Status:     status,
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	resp := room.ToResponse()
	return &resp, nil
}

func (s *service) ListRooms(ctx context.Context, roomTypeID uuid.UUID) ([]RoomResponse, error) {
	rooms, err := s.repo.ListRoomsByRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	responses := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, rooms[i].ToResponse())
	}
	return responses, nil
}

func (s *service) UpdateRoomStatus(ctx context.Context, roomID uuid.UUID, status RoomStatus) error {
	if !status.IsValid() {
		return apperrors.Validation("invalid room status %q", status)
	}

	if _, err := s.repo.GetRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("room %s not found", roomID)
		}
		return err
	}

	return s.repo.UpdateRoomStatus(ctx, roomID, status)
}

func (s *service) invalidateVenueCaches(ctx context.Context, venueID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, cache.VenueKey(venueID.String()))
	_ = s.cache.DeletePattern(ctx, cache.VenueListPattern())
}
