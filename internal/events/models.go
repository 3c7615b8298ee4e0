package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"size:255"`
	OrganizerID uuid.UUID `json:"organizer_id" gorm:"type:uuid;index;not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:'DRAFT'"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	TicketsSold int       `json:"tickets_sold" gorm:"default:0;check:tickets_sold >= 0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	TicketTypes []TicketType `json:"ticket_types,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
}

// TicketType is a per-event inventory counter pair. The invariant
// available + sold == quantity holds after every purchase, including
// aborted ones.
type TicketType struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_ticket_type"`
	Name      string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_event_ticket_type"`
	Price     int64     `json:"price" gorm:"not null;check:price >= 0"` // minor currency units
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 0"`
	Available int       `json:"available" gorm:"not null;check:available >= 0"`
	Sold      int       `json:"sold" gorm:"not null;default:0;check:sold >= 0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Event
func (Event) TableName() string {
	return "events"
}

// TableName sets the table name for TicketType
func (TicketType) TableName() string {
	return "ticket_types"
}

// IsPurchasable reports whether tickets may be sold for this event.
func (e *Event) IsPurchasable() bool {
	return e.Status == StatusApproved && e.IsActive
}
