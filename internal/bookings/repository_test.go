package bookings

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=dryrun dbname=dryrun",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestRoomTypeLockQueryEmitsForUpdate(t *testing.T) {
	db := newDryRunDB(t)

	var roomType struct {
		ID         uuid.UUID `gorm:"column:id"`
		TotalRooms int       `gorm:"column:total_rooms"`
	}
	stmt := roomTypeLockQuery(db, uuid.New()).First(&roomType).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("room type lock query lost its FOR UPDATE clause: %s", sql)
	}
	if !strings.Contains(sql, `"room_types"`) {
		t.Fatalf("lock query targets the wrong table: %s", sql)
	}
}
