package events

import (
	"context"
	"testing"
	"time"

	"eventuraa/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*Event)}
}

func (r *fakeEventRepo) CreateEvent(ctx context.Context, event *Event) error {
	event.ID = uuid.New()
	for i := range event.TicketTypes {
		event.TicketTypes[i].ID = uuid.New()
		event.TicketTypes[i].EventID = event.ID
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) GetEventWithTicketTypes(ctx context.Context, id uuid.UUID) (*Event, error) {
	return r.GetEventByID(ctx, id)
}

func (r *fakeEventRepo) ListEvents(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	var out []Event
	for _, e := range r.events {
		if query.Status == "" || string(e.Status) == query.Status {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeEventRepo) UpdateEventStatus(ctx context.Context, id uuid.UUID, status Status) error {
	event, ok := r.events[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	event.Status = status
	return nil
}

func (r *fakeEventRepo) GetTicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	event, ok := r.events[eventID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return event.TicketTypes, nil
}

func validCreateRequest() CreateEventRequest {
	return CreateEventRequest{
		Title: "Harbor Lights Festival",
		Date:  time.Now().AddDate(0, 1, 0),
		TicketTypes: []TicketTypeRequest{
			{Name: "VIP", Price: 12000, Quantity: 50},
			{Name: "General", Price: 4500, Quantity: 500},
		},
	}
}

func TestCreateEventInitializesLedger(t *testing.T) {
	svc := NewService(newFakeEventRepo(), nil)

	resp, err := svc.CreateEvent(context.Background(), uuid.New(), validCreateRequest())
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	if resp.Status != string(StatusDraft) {
		t.Errorf("new event status = %s, want DRAFT", resp.Status)
	}
	for _, tt := range resp.TicketTypes {
		if tt.Available != tt.Quantity {
			t.Errorf("ticket type %s available = %d, want %d", tt.Name, tt.Available, tt.Quantity)
		}
		if tt.Sold != 0 {
			t.Errorf("ticket type %s sold = %d, want 0", tt.Name, tt.Sold)
		}
	}
}

func TestCreateEventRejectsDuplicateTicketTypes(t *testing.T) {
	svc := NewService(newFakeEventRepo(), nil)

	req := validCreateRequest()
	req.TicketTypes = append(req.TicketTypes, TicketTypeRequest{Name: "VIP", Price: 1, Quantity: 1})

	_, err := svc.CreateEvent(context.Background(), uuid.New(), req)
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("duplicate ticket type error = %v, want validation kind", err)
	}
}

func TestUpdateEventStatus(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, uuid.New(), validCreateRequest())
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	eventID := uuid.MustParse(created.ID)

	if err := svc.UpdateEventStatus(ctx, eventID, StatusApproved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if repo.events[eventID].Status != StatusApproved {
		t.Errorf("status = %s, want APPROVED", repo.events[eventID].Status)
	}

	if err := svc.UpdateEventStatus(ctx, eventID, Status("BOGUS")); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("bogus status error = %v, want validation kind", err)
	}
	if err := svc.UpdateEventStatus(ctx, uuid.New(), StatusApproved); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("unknown event error = %v, want not found kind", err)
	}
}
