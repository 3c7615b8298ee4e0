package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Overlaps implements the half-open interval test used everywhere a date
// range is compared: [aStart, aEnd) intersects [bStart, bEnd) iff
// aStart < bEnd && aEnd > bStart. A checkout that lands on another
// booking's check-in day is a handover, not a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CountConflicts counts live bookings whose range overlaps [checkIn,
// checkOut), skipping excludeID (used when re-checking an existing
// booking's own dates). The SQL path in the repository applies the same
// predicate; this form exists so the in-memory fakes and the transaction
// hook share one definition.
func CountConflicts(existing []Booking, checkIn, checkOut time.Time, excludeID uuid.UUID) int {
	count := 0
	for i := range existing {
		b := &existing[i]
		if excludeID != uuid.Nil && b.ID == excludeID {
			continue
		}
		if !b.Status.IsLive() {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			count++
		}
	}
	return count
}
