package tickets

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"eventuraa/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// All-or-nothing purchase commit
	PurchaseWithInventoryCheck(ctx context.Context, purchase *TicketPurchase, quantities map[uuid.UUID]int) error

	// Purchase reads
	GetPurchaseByID(ctx context.Context, id uuid.UUID) (*TicketPurchase, error)
	GetPurchaseByTransactionID(ctx context.Context, transactionID string) (*TicketPurchase, error)

	// History ledgers
	GetAccountPurchases(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]TicketPurchase, int64, error)
	GetOrganizerSales(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]TicketPurchase, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// PurchaseWithInventoryCheck commits a purchase atomically. Each requested
// ticket type row is locked FOR UPDATE and its availability re-checked under
// the lock; any shortfall aborts the whole transaction so no partial
// decrement ever lands. Rows lock in ID order to avoid deadlock between
// concurrent purchases of overlapping type sets.
func (r *repository) PurchaseWithInventoryCheck(ctx context.Context, purchase *TicketPurchase, quantities map[uuid.UUID]int) error {
	typeIDs := make([]uuid.UUID, 0, len(quantities))
	for id := range quantities {
		typeIDs = append(typeIDs, id)
	}
	sort.Slice(typeIDs, func(i, j int) bool {
		return typeIDs[i].String() < typeIDs[j].String()
	})

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock every requested ticket type row and verify stock
		for _, typeID := range typeIDs {
			var ticketType struct {
				ID        uuid.UUID `gorm:"column:id"`
				Name      string    `gorm:"column:name"`
				Available int       `gorm:"column:available"`
			}

			err := ticketTypeLockQuery(tx, typeID).First(&ticketType).Error

			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("ticket type %s not found", typeID)
				}
				return fmt.Errorf("failed to lock ticket type: %w", err)
			}

			requested := quantities[typeID]
			if ticketType.Available < requested {
				return apperrors.InsufficientInventory(
					"insufficient tickets for type %q: requested %d, available %d",
					ticketType.Name, requested, ticketType.Available)
			}
		}

		// 2. Decrement under the locks
		for _, typeID := range typeIDs {
			requested := quantities[typeID]
			err := tx.Table("ticket_types").
				Where("id = ?", typeID).
				Updates(map[string]interface{}{
					"available": gorm.Expr("available - ?", requested),
					"sold":      gorm.Expr("sold + ?", requested),
				}).Error
			if err != nil {
				return fmt.Errorf("failed to decrement ticket type inventory: %w", err)
			}
		}

		// 3. Bump the event counter
		err := tx.Table("events").
			Where("id = ?", purchase.EventID).
			Update("tickets_sold", gorm.Expr("tickets_sold + ?", purchase.TicketCount)).Error
		if err != nil {
			return fmt.Errorf("failed to update event tickets sold: %w", err)
		}

		// 4. Persist purchase with its ticket rows; unique indexes on
		// transaction_id and ticket_number backstop the generators
		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to create ticket purchase: %w", err)
		}

		return nil
	})
}

// ticketTypeLockQuery builds the SELECT ... FOR UPDATE that pins a ticket
// type row for the duration of the purchase transaction. GORM only emits
// the locking clause through clause.Locking; the old string query option is
// silently dropped.
func ticketTypeLockQuery(tx *gorm.DB, typeID uuid.UUID) *gorm.DB {
	return tx.Table("ticket_types").
		Select("id, name, available").
		Where("id = ?", typeID).
		Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *repository) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*TicketPurchase, error) {
	var purchase TicketPurchase
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Where("id = ?", id).
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *repository) GetPurchaseByTransactionID(ctx context.Context, transactionID string) (*TicketPurchase, error) {
	var purchase TicketPurchase
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Where("transaction_id = ?", transactionID).
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *repository) GetAccountPurchases(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]TicketPurchase, int64, error) {
	var purchases []TicketPurchase
	var totalCount int64

	base := r.db.WithContext(ctx).Model(&TicketPurchase{}).Where("account_id = ?", accountID)
	if err := base.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("Tickets").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&purchases).Error
	return purchases, totalCount, err
}

func (r *repository) GetOrganizerSales(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]TicketPurchase, int64, error) {
	var purchases []TicketPurchase
	var totalCount int64

	base := r.db.WithContext(ctx).Model(&TicketPurchase{}).
		Joins("JOIN events ON events.id = ticket_purchases.event_id").
		Where("events.organizer_id = ?", organizerID)

	if err := base.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("Tickets").
		Order("ticket_purchases.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&purchases).Error
	return purchases, totalCount, err
}
