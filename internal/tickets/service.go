package tickets

import (
	"context"
	"errors"

	"eventuraa/internal/events"
	"eventuraa/internal/shared/apperrors"
	"eventuraa/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventCatalog is the slice of the events module this module needs
// (kept as a local interface to avoid a hard wiring dependency).
type EventCatalog interface {
	GetEventWithTicketTypes(ctx context.Context, id uuid.UUID) (*events.Event, error)
}

// Notifier publishes purchase messages to the notification sink.
// Delivery is best effort; a sink failure never fails the purchase.
type Notifier interface {
	NotifyPurchase(ctx context.Context, event string, purchase *TicketPurchase)
}

// Service interface defines the contract for ticket purchase logic
type Service interface {
	Purchase(ctx context.Context, accountID *uuid.UUID, req PurchaseRequest) (*PurchaseResponse, error)
	GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*TicketPurchase, error)
	GetAccountPurchases(ctx context.Context, accountID uuid.UUID, limit, offset int) (*PaginatedPurchases, error)
	GetOrganizerSales(ctx context.Context, organizerID uuid.UUID, limit, offset int) (*PaginatedPurchases, error)
}

type service struct {
	repo     Repository
	catalog  EventCatalog
	notifier Notifier
	log      *logger.Logger
}

// NewService creates a new ticket service instance. notifier may be nil.
func NewService(repo Repository, catalog EventCatalog, notifier Notifier) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		log:      logger.GetDefault(),
	}
}

// Purchase validates the request against the event's ticket types,
// recomputes the total server-side and commits all line items atomically.
// Either every requested ticket is issued or none are.
func (s *service) Purchase(ctx context.Context, accountID *uuid.UUID, req PurchaseRequest) (*PurchaseResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperrors.Validation("invalid event ID")
	}

	event, err := s.catalog.GetEventWithTicketTypes(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event %s not found", eventID)
		}
		return nil, err
	}
	if !event.IsPurchasable() {
		return nil, apperrors.Validation("event %q is not open for ticket sales", event.Title)
	}

	typesByName := make(map[string]*events.TicketType, len(event.TicketTypes))
	for i := range event.TicketTypes {
		typesByName[event.TicketTypes[i].Name] = &event.TicketTypes[i]
	}

	requested := 0
	for _, line := range req.Tickets {
		requested += line.Quantity
	}
	if requested > MaxTicketsPerPurchase {
		return nil, apperrors.Validation("a single purchase is limited to %d tickets", MaxTicketsPerPurchase)
	}

	// Resolve line items, fast pre-check stock and recompute the total.
	// The authoritative stock check re-runs under row locks in the
	// purchase transaction.
	quantities := make(map[uuid.UUID]int, len(req.Tickets))
	seen := make(map[string]bool, len(req.Tickets))
	ticketCount := 0
	var ticketsTotal int64

	for _, line := range req.Tickets {
		if seen[line.TicketType] {
			return nil, apperrors.Validation("duplicate line item for ticket type %q", line.TicketType)
		}
		seen[line.TicketType] = true

		ticketType, ok := typesByName[line.TicketType]
		if !ok {
			return nil, apperrors.NotFound("ticket type %q not found for event %s", line.TicketType, eventID)
		}
		if line.PricePerTicket != 0 && line.PricePerTicket != ticketType.Price {
			return nil, apperrors.Validation("price mismatch for ticket type %q: expected %d", line.TicketType, ticketType.Price)
		}
		if ticketType.Available < line.Quantity {
			return nil, apperrors.InsufficientInventory(
				"insufficient tickets for type %q: requested %d, available %d",
				line.TicketType, line.Quantity, ticketType.Available)
		}

		quantities[ticketType.ID] = line.Quantity
		ticketCount += line.Quantity
		ticketsTotal += ticketType.Price * int64(line.Quantity)
	}

	totalAmount := ticketsTotal + req.ServiceFee
	if req.TotalAmount != 0 && req.TotalAmount != totalAmount {
		return nil, apperrors.Validation("total_amount mismatch: expected %d", totalAmount)
	}

	transactionID, err := GenerateTransactionID()
	if err != nil {
		return nil, err
	}
	batch := GenerateTicketBatch()

	purchase := &TicketPurchase{
		TransactionID: transactionID,
		EventID:       eventID,
		AccountID:     accountID,
		ContactName:   req.ContactInfo.Name,
		ContactEmail:  req.ContactInfo.Email,
		ContactPhone:  req.ContactInfo.Phone,
		TicketCount:   ticketCount,
		ServiceFee:    req.ServiceFee,
		TotalAmount:   totalAmount,
		PaymentStatus: PaymentCompleted,
	}
	if req.Payment.Status != "" {
		purchase.PaymentStatus = PaymentStatus(req.Payment.Status)
	}

	index := 1
	for _, line := range req.Tickets {
		ticketType := typesByName[line.TicketType]
		for i := 0; i < line.Quantity; i++ {
			purchase.Tickets = append(purchase.Tickets, Ticket{
				TicketNumber: GenerateTicketNumber(batch, index),
				EventID:      eventID,
				TicketTypeID: ticketType.ID,
				TicketType:   ticketType.Name,
				Price:        ticketType.Price,
			})
			index++
		}
	}

	if err := s.repo.PurchaseWithInventoryCheck(ctx, purchase, quantities); err != nil {
		return nil, err
	}

	s.log.LogPurchaseCompleted(ctx, purchase.TransactionID, eventID.String(), ticketCount)

	if s.notifier != nil {
		s.notifier.NotifyPurchase(ctx, "ticket.purchased", purchase)
	}

	resp := purchase.ToResponse()
	return &resp, nil
}

// GetPurchase retrieves a purchase by ID with its ticket rows
func (s *service) GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*TicketPurchase, error) {
	purchase, err := s.repo.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("purchase %s not found", purchaseID)
		}
		return nil, err
	}
	return purchase, nil
}

// GetAccountPurchases retrieves the buyer-side purchase history
func (s *service) GetAccountPurchases(ctx context.Context, accountID uuid.UUID, limit, offset int) (*PaginatedPurchases, error) {
	purchases, totalCount, err := s.repo.GetAccountPurchases(ctx, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	return paginate(purchases, totalCount, limit, offset), nil
}

// GetOrganizerSales retrieves the organizer-side sales ledger across
// that organizer's events
func (s *service) GetOrganizerSales(ctx context.Context, organizerID uuid.UUID, limit, offset int) (*PaginatedPurchases, error) {
	purchases, totalCount, err := s.repo.GetOrganizerSales(ctx, organizerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return paginate(purchases, totalCount, limit, offset), nil
}

func paginate(purchases []TicketPurchase, totalCount int64, limit, offset int) *PaginatedPurchases {
	result := &PaginatedPurchases{
		Purchases:  make([]PurchaseResponse, 0, len(purchases)),
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}
	for i := range purchases {
		result.Purchases = append(result.Purchases, purchases[i].ToResponse())
	}
	return result
}
