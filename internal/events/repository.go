package events

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetEventWithTicketTypes(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context, query EventListQuery) ([]Event, int64, error)
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status Status) error

	GetTicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEvent(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetEventWithTicketTypes(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).
		Preload("TicketTypes").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) ListEvents(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	var events []Event
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Event{}).Where("is_active = ?", true)

	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("TicketTypes").
		Order("date ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&events).Error

	return events, totalCount, err
}

func (r *repository) UpdateEventStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) GetTicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	var ticketTypes []TicketType
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("price ASC").
		Find(&ticketTypes).Error
	return ticketTypes, err
}

// CalculateTotalPages computes page count for paginated listings.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
