package bookings

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBookingReference produces a human-readable reference of the form
// BKG<YYMMDD><6 alnum>. Entropy makes collisions unlikely; the unique index
// on bookings.booking_reference is the authoritative guard.
func GenerateBookingReference() (string, error) {
	datePart := time.Now().Format("060102")

	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceCharset))))
		if err != nil {
			return "", err
		}
		randomPart[i] = referenceCharset[num.Int64()]
	}

	return fmt.Sprintf("BKG%s%s", datePart, string(randomPart)), nil
}
