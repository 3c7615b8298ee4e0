package venues

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// RoomStatus tracks the state of a physical room unit.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomReserved    RoomStatus = "RESERVED"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

type Venue struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name           string         `json:"name" gorm:"not null;size:255"`
	Description    string         `json:"description" gorm:"type:text"`
	Location       string         `json:"location" gorm:"size:255"`
	OwnerID        uuid.UUID      `json:"owner_id" gorm:"type:uuid;index;not null"`
	MinCapacity    int            `json:"min_capacity" gorm:"default:0;check:min_capacity >= 0"`
	MaxCapacity    int            `json:"max_capacity" gorm:"not null;check:max_capacity > 0"`
	ApprovalStatus ApprovalStatus `json:"approval_status" gorm:"type:varchar(20);default:'PENDING'"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Relationships
	RoomTypes []RoomType `json:"room_types,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;"`
}

// RoomType groups identical room units of a venue. TotalRooms is the
// capacity ceiling the availability check counts against.
type RoomType struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID       uuid.UUID `json:"venue_id" gorm:"type:uuid;index;not null"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Capacity      int       `json:"capacity" gorm:"not null;check:capacity > 0"` // max guests per room
	TotalRooms    int       `json:"total_rooms" gorm:"not null;check:total_rooms >= 0"`
	PricePerNight int64     `json:"price_per_night" gorm:"not null;check:price_per_night >= 0"` // minor currency units
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE;"`
}

// Room is one physical unit of a RoomType.
type Room struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RoomTypeID uuid.UUID  `json:"room_type_id" gorm:"type:uuid;index;not null;uniqueIndex:idx_room_type_number"`
	RoomNumber string     `json:"room_number" gorm:"not null;size:32;uniqueIndex:idx_room_type_number"`
	Status     RoomStatus `json:"status" gorm:"type:varchar(20);default:'AVAILABLE'"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName sets the table name for Venue
func (Venue) TableName() string {
	return "venues"
}

// TableName sets the table name for RoomType
func (RoomType) TableName() string {
	return "room_types"
}

// TableName sets the table name for Room
func (Room) TableName() string {
	return "rooms"
}
