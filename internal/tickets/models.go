package tickets

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// TicketPurchase is one completed checkout: a transaction covering one or
// more ticket types of a single event.
type TicketPurchase struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TransactionID string        `json:"transaction_id" gorm:"uniqueIndex;not null"`
	EventID       uuid.UUID     `json:"event_id" gorm:"type:uuid;not null;index"`
	AccountID     *uuid.UUID    `json:"account_id,omitempty" gorm:"type:uuid;index"`
	ContactName   string        `json:"contact_name" gorm:"not null"`
	ContactEmail  string        `json:"contact_email" gorm:"not null"`
	ContactPhone  string        `json:"contact_phone"`
	TicketCount   int           `json:"ticket_count" gorm:"not null"`
	ServiceFee    int64         `json:"service_fee" gorm:"not null;default:0"`
	TotalAmount   int64         `json:"total_amount" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'COMPLETED'"`
	Tickets       []Ticket      `json:"tickets,omitempty" gorm:"foreignKey:PurchaseID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (TicketPurchase) TableName() string {
	return "ticket_purchases"
}

// Ticket is a single admission unit issued by a purchase.
type Ticket struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TicketNumber string         `json:"ticket_number" gorm:"uniqueIndex;not null"`
	PurchaseID   uuid.UUID      `json:"purchase_id" gorm:"type:uuid;not null;index"`
	EventID      uuid.UUID      `json:"event_id" gorm:"type:uuid;not null;index"`
	TicketTypeID uuid.UUID      `json:"ticket_type_id" gorm:"type:uuid;not null"`
	TicketType   string         `json:"ticket_type" gorm:"not null"`
	Price        int64          `json:"price" gorm:"not null"`
	IsUsed       bool           `json:"is_used" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Ticket) TableName() string {
	return "tickets"
}
