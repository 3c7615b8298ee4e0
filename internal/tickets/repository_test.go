package tickets

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

func TestTicketTypeLockQueryEmitsForUpdate(t *testing.T) {
	db := newDryRunDB(t)

	var ticketType struct {
		ID        uuid.UUID `gorm:"column:id"`
		Name      string    `gorm:"column:name"`
		Available int       `gorm:"column:available"`
	}
	stmt := ticketTypeLockQuery(db, uuid.New()).First(&ticketType).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("ticket type lock query lost its FOR UPDATE clause: %s", sql)
	}
	if !strings.Contains(sql, `"ticket_types"`) {
		t.Fatalf("lock query targets the wrong table: %s", sql)
	}
}
