package accounts

import (
	"time"

	"github.com/google/uuid"
)

// Role is the single role tag shared by every actor type. Users, hosts,
// organizers and admins all live in one accounts table; role-specific
// fields go in the Account payload column instead of separate tables.
type Role string

const (
	RoleGuest     Role = "GUEST"
	RoleUser      Role = "USER"
	RoleHost      Role = "HOST"
	RoleOrganizer Role = "ORGANIZER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleHost, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// CanConfirmBookings reports whether this role may move a booking to CONFIRMED.
func (r Role) CanConfirmBookings() bool {
	return r == RoleHost || r == RoleAdmin
}

// CanManageInventory reports whether this role may mutate venues, room types
// and rooms.
func (r Role) CanManageInventory() bool {
	return r == RoleHost || r == RoleAdmin
}

func IsValidRole(role string) bool {
	return Role(role).IsValid()
}

type Account struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"size:32"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"type:varchar(16);not null;default:'USER'"`

	// Role-specific payload; null for plain users.
	OrganizerCompany *string `json:"organizer_company,omitempty"`
	HostBusinessName *string `json:"host_business_name,omitempty"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Account) TableName() string {
	return "accounts"
}
