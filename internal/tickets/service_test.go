package tickets

import (
	"context"
	"strings"
	"testing"

	"eventuraa/internal/events"
	"eventuraa/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeLedger is an in-memory Repository enforcing the same all-or-nothing
// rule as the transactional SQL path: every line is checked before any
// decrement happens.
type fakeLedger struct {
	event     *events.Event
	purchases []TicketPurchase
}

func (r *fakeLedger) typeByID(id uuid.UUID) *events.TicketType {
	for i := range r.event.TicketTypes {
		if r.event.TicketTypes[i].ID == id {
			return &r.event.TicketTypes[i]
		}
	}
	return nil
}

func (r *fakeLedger) PurchaseWithInventoryCheck(ctx context.Context, purchase *TicketPurchase, quantities map[uuid.UUID]int) error {
	for typeID, requested := range quantities {
		ticketType := r.typeByID(typeID)
		if ticketType == nil {
			return apperrors.NotFound("ticket type %s not found", typeID)
		}
		if ticketType.Available < requested {
			return apperrors.InsufficientInventory(
				"insufficient tickets for type %q: requested %d, available %d",
				ticketType.Name, requested, ticketType.Available)
		}
	}

	for typeID, requested := range quantities {
		ticketType := r.typeByID(typeID)
		ticketType.Available -= requested
		ticketType.Sold += requested
	}
	r.event.TicketsSold += purchase.TicketCount

	purchase.ID = uuid.New()
	r.purchases = append(r.purchases, *purchase)
	return nil
}

func (r *fakeLedger) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*TicketPurchase, error) {
	for i := range r.purchases {
		if r.purchases[i].ID == id {
			p := r.purchases[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLedger) GetPurchaseByTransactionID(ctx context.Context, transactionID string) (*TicketPurchase, error) {
	for i := range r.purchases {
		if r.purchases[i].TransactionID == transactionID {
			p := r.purchases[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLedger) GetAccountPurchases(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]TicketPurchase, int64, error) {
	var out []TicketPurchase
	for i := range r.purchases {
		if r.purchases[i].AccountID != nil && *r.purchases[i].AccountID == accountID {
			out = append(out, r.purchases[i])
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeLedger) GetOrganizerSales(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]TicketPurchase, int64, error) {
	if r.event.OrganizerID != organizerID {
		return nil, 0, nil
	}
	return r.purchases, int64(len(r.purchases)), nil
}

type fakeCatalog struct {
	event *events.Event
}

func (f *fakeCatalog) GetEventWithTicketTypes(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	if f.event.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.event, nil
}

func newTestService() (Service, *fakeLedger, *events.Event) {
	event := &events.Event{
		ID:          uuid.New(),
		Title:       "Harbor Lights Festival",
		OrganizerID: uuid.New(),
		Status:      events.StatusApproved,
		IsActive:    true,
		TicketTypes: []events.TicketType{
			{ID: uuid.New(), Name: "VIP", Price: 12000, Quantity: 5, Available: 5, Sold: 0},
			{ID: uuid.New(), Name: "General", Price: 4500, Quantity: 100, Available: 100, Sold: 0},
		},
	}
	event.TicketTypes[0].EventID = event.ID
	event.TicketTypes[1].EventID = event.ID

	ledger := &fakeLedger{event: event}
	catalog := &fakeCatalog{event: event}
	return NewService(ledger, catalog, nil), ledger, event
}

func purchaseRequest(eventID uuid.UUID, lines ...LineItem) PurchaseRequest {
	return PurchaseRequest{
		EventID: eventID.String(),
		Tickets: lines,
		ContactInfo: ContactInfo{
			Name:  "Uma Usmani",
			Email: "uma@example.com",
		},
	}
}

func TestPurchaseDecrementsInventory(t *testing.T) {
	svc, _, event := newTestService()
	ctx := context.Background()

	resp, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID, LineItem{TicketType: "VIP", Quantity: 3}))
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if resp.TicketCount != 3 {
		t.Errorf("ticket count = %d, want 3", resp.TicketCount)
	}
	if resp.TotalAmount != 36000 {
		t.Errorf("total amount = %d, want 36000", resp.TotalAmount)
	}
	if len(resp.Tickets) != 3 {
		t.Fatalf("issued tickets = %d, want 3", len(resp.Tickets))
	}
	if !strings.HasPrefix(resp.TransactionID, "TXN-") {
		t.Errorf("transaction id %q missing TXN prefix", resp.TransactionID)
	}

	vip := &event.TicketTypes[0]
	if vip.Available != 2 || vip.Sold != 3 {
		t.Errorf("VIP ledger = available %d / sold %d, want 2 / 3", vip.Available, vip.Sold)
	}
	if vip.Available+vip.Sold != vip.Quantity {
		t.Errorf("ledger invariant broken: %d + %d != %d", vip.Available, vip.Sold, vip.Quantity)
	}
	if event.TicketsSold != 3 {
		t.Errorf("event tickets sold = %d, want 3", event.TicketsSold)
	}
}

func TestPurchaseShortfallLeavesStateUnchanged(t *testing.T) {
	svc, _, event := newTestService()
	ctx := context.Background()

	if _, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID, LineItem{TicketType: "VIP", Quantity: 3})); err != nil {
		t.Fatalf("setup purchase failed: %v", err)
	}

	_, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID, LineItem{TicketType: "VIP", Quantity: 3}))
	if !apperrors.IsKind(err, apperrors.KindInsufficientInventory) {
		t.Fatalf("shortfall error = %v, want insufficient inventory kind", err)
	}
	if !strings.Contains(err.Error(), "VIP") {
		t.Errorf("shortfall error %q does not name the ticket type", err.Error())
	}

	vip := &event.TicketTypes[0]
	if vip.Available != 2 || vip.Sold != 3 {
		t.Errorf("ledger after failed purchase = available %d / sold %d, want 2 / 3", vip.Available, vip.Sold)
	}
	if event.TicketsSold != 3 {
		t.Errorf("event tickets sold after failed purchase = %d, want 3", event.TicketsSold)
	}
}

func TestPurchaseAllOrNothingAcrossTypes(t *testing.T) {
	svc, ledger, event := newTestService()
	ctx := context.Background()

	// General has plenty, VIP does not; the whole purchase must abort
	_, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID,
		LineItem{TicketType: "General", Quantity: 10},
		LineItem{TicketType: "VIP", Quantity: 6},
	))
	if !apperrors.IsKind(err, apperrors.KindInsufficientInventory) {
		t.Fatalf("mixed purchase error = %v, want insufficient inventory kind", err)
	}

	general := &event.TicketTypes[1]
	if general.Available != 100 || general.Sold != 0 {
		t.Errorf("general ledger after aborted purchase = available %d / sold %d, want 100 / 0", general.Available, general.Sold)
	}
	if len(ledger.purchases) != 0 {
		t.Errorf("purchases persisted = %d, want 0", len(ledger.purchases))
	}
}

func TestPurchaseRecomputesTotal(t *testing.T) {
	svc, _, event := newTestService()
	ctx := context.Background()

	// Wrong client total is rejected
	req := purchaseRequest(event.ID, LineItem{TicketType: "General", Quantity: 2})
	req.TotalAmount = 1
	if _, err := svc.Purchase(ctx, nil, req); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("wrong total error = %v, want validation kind", err)
	}

	// Matching total including service fee is accepted
	req.ServiceFee = 500
	req.TotalAmount = 2*4500 + 500
	resp, err := svc.Purchase(ctx, nil, req)
	if err != nil {
		t.Fatalf("purchase with correct total failed: %v", err)
	}
	if resp.TotalAmount != 9500 {
		t.Errorf("total amount = %d, want 9500", resp.TotalAmount)
	}

	// Per-unit price claims are checked too
	req = purchaseRequest(event.ID, LineItem{TicketType: "General", Quantity: 1, PricePerTicket: 1})
	if _, err := svc.Purchase(ctx, nil, req); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("wrong unit price error = %v, want validation kind", err)
	}
}

func TestPurchaseRejectsClosedEvent(t *testing.T) {
	svc, _, event := newTestService()
	ctx := context.Background()

	event.Status = events.StatusDraft
	_, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID, LineItem{TicketType: "VIP", Quantity: 1}))
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("draft event error = %v, want validation kind", err)
	}

	event.Status = events.StatusApproved
	event.IsActive = false
	_, err = svc.Purchase(ctx, nil, purchaseRequest(event.ID, LineItem{TicketType: "VIP", Quantity: 1}))
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("inactive event error = %v, want validation kind", err)
	}
}

func TestPurchaseRejectsUnknownTypeAndDuplicates(t *testing.T) {
	svc, _, event := newTestService()
	ctx := context.Background()

	_, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID, LineItem{TicketType: "Backstage", Quantity: 1}))
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("unknown type error = %v, want not found kind", err)
	}

	_, err = svc.Purchase(ctx, nil, purchaseRequest(event.ID,
		LineItem{TicketType: "VIP", Quantity: 1},
		LineItem{TicketType: "VIP", Quantity: 1},
	))
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("duplicate line item error = %v, want validation kind", err)
	}
}

func TestPurchaseRejectsOversizedRequest(t *testing.T) {
	svc, ledger, event := newTestService()
	ctx := context.Background()

	_, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID,
		LineItem{TicketType: "General", Quantity: MaxTicketsPerPurchase + 1},
	))
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("oversized purchase error = %v, want validation", err)
	}
	if len(ledger.purchases) != 0 {
		t.Errorf("oversized purchase persisted %d purchases, want 0", len(ledger.purchases))
	}
}

func TestPurchaseIssuesUniqueTicketNumbers(t *testing.T) {
	svc, _, event := newTestService()
	ctx := context.Background()

	resp, err := svc.Purchase(ctx, nil, purchaseRequest(event.ID,
		LineItem{TicketType: "VIP", Quantity: 2},
		LineItem{TicketType: "General", Quantity: 3},
	))
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, ticket := range resp.Tickets {
		if seen[ticket.TicketNumber] {
			t.Fatalf("duplicate ticket number %q in one purchase", ticket.TicketNumber)
		}
		seen[ticket.TicketNumber] = true
	}
	if len(seen) != 5 {
		t.Errorf("issued %d distinct tickets, want 5", len(seen))
	}
}
