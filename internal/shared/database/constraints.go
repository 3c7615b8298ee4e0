package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the constraints AutoMigrate cannot express.
// These are the authoritative guards behind the application-level checks.
func MigrateConstraints(db *gorm.DB) error {
	// Ticket-type ledger must always balance
	err := addCheckConstraint(db, "ticket_types", "chk_ticket_type_ledger",
		"available >= 0 AND sold >= 0 AND available + sold = quantity")
	if err != nil {
		return err
	}

	// Bookings must hold a valid stay range
	err = addCheckConstraint(db, "bookings", "chk_booking_date_range",
		"check_in_date < check_out_date")
	if err != nil {
		return err
	}

	// Supports the overlap count in the booking transaction
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_overlap_scan
		ON bookings (room_type_id, status, check_in_date, check_out_date);
	`).Error
	if err != nil {
		return err
	}

	// Supports history ledger queries
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ticket_purchases_event_created
		ON ticket_purchases (event_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

// addCheckConstraint adds a CHECK constraint, skipping it when it already
// exists (ALTER TABLE has no IF NOT EXISTS for constraints).
func addCheckConstraint(db *gorm.DB, table, name, expr string) error {
	var count int64
	err := db.Raw(
		`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, name,
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Exec(
		"ALTER TABLE " + table + " ADD CONSTRAINT " + name + " CHECK (" + expr + ")",
	).Error
}
