package tickets

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// MaxTicketsPerPurchase bounds the ticket index so it always fits the
// three-digit slot in the ticket number format.
const MaxTicketsPerPurchase = 999

// GenerateTransactionID produces an id of the form TXN-<epoch-ms>-<4digit>.
// The unique index on ticket_purchases.transaction_id is the authoritative
// guard against the rare millisecond collision.
func GenerateTransactionID() (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TXN-%d-%04d", time.Now().UnixMilli(), suffix.Int64()), nil
}

// GenerateTicketNumber produces TCKT-<6digit date>-<8digit batch>-<3digit index>:
// the UTC date, a millisecond-resolution block shared by the whole purchase,
// and the position of the ticket within it.
func GenerateTicketNumber(batch string, index int) string {
	return fmt.Sprintf("TCKT-%s-%s-%03d", time.Now().UTC().Format("060102"), batch, index)
}

// GenerateTicketBatch returns the block shared by every ticket number in one
// purchase: milliseconds since midnight UTC. Two purchases only collide when
// they land on the same millisecond of the same day; the unique index on
// tickets.ticket_number backstops that.
func GenerateTicketBatch() string {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%08d", now.Sub(midnight).Milliseconds())
}
