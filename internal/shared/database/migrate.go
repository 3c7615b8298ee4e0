package database

import (
	"eventuraa/internal/accounts"
	"eventuraa/internal/bookings"
	"eventuraa/internal/events"
	"eventuraa/internal/tickets"
	"eventuraa/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&accounts.Account{},
		&venues.Venue{},
		&venues.RoomType{},
		&venues.Room{},
		&events.Event{},
		&events.TicketType{},
		&bookings.Booking{},
		&tickets.TicketPurchase{},
		&tickets.Ticket{},
	)
}
