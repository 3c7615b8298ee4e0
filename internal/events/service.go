package events

import (
	"context"
	"errors"
	"time"

	"eventuraa/internal/shared/apperrors"
	"eventuraa/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const eventListCacheTTL = 5 * time.Minute

// Service interface defines the contract for event management
type Service interface {
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	ListEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

// NewService creates a new event service instance. cacheService may be nil.
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateEvent(ctx context.Context, organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	seen := make(map[string]bool, len(req.TicketTypes))
	for _, tt := range req.TicketTypes {
		if seen[tt.Name] {
			return nil, apperrors.Validation("duplicate ticket type %q", tt.Name)
		}
		seen[tt.Name] = true
	}

	event := &Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		OrganizerID: organizerID,
		Date:        req.Date,
		Status:      StatusDraft,
		IsActive:    true,
	}
	for _, tt := range req.TicketTypes {
		event.TicketTypes = append(event.TicketTypes, TicketType{
			Name:      tt.Name,
			Price:     tt.Price,
			Quantity:  tt.Quantity,
			Available: tt.Quantity,
			Sold:      0,
		})
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateEventCaches(ctx, event.ID)

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetEventWithTicketTypes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event %s not found", id)
		}
		return nil, err
	}

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) ListEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	fetcher := func() (interface{}, error) {
		events, totalCount, err := s.repo.ListEvents(ctx, query)
		if err != nil {
			return nil, err
		}

		responses := make([]EventResponse, 0, len(events))
		for i := range events {
			responses = append(responses, events[i].ToResponse())
		}

		return &PaginatedEvents{
			Events:     responses,
			TotalCount: totalCount,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: CalculateTotalPages(totalCount, query.Limit),
		}, nil
	}

	var result PaginatedEvents
	if s.cache != nil {
		key := cache.EventListKey(query.Page, query.Limit, query.Status)
		if err := s.cache.GetOrSet(ctx, key, eventListCacheTTL, fetcher, &result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	data, err := fetcher()
	if err != nil {
		return nil, err
	}
	return data.(*PaginatedEvents), nil
}

func (s *service) UpdateEventStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.IsValid() {
		return apperrors.Validation("invalid event status %q", status)
	}

	if _, err := s.repo.GetEventByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("event %s not found", id)
		}
		return err
	}

	if err := s.repo.UpdateEventStatus(ctx, id, status); err != nil {
		return err
	}

	s.invalidateEventCaches(ctx, id)
	return nil
}

func (s *service) invalidateEventCaches(ctx context.Context, eventID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, cache.EventKey(eventID.String()))
	_ = s.cache.DeletePattern(ctx, cache.EventListPattern())
}
