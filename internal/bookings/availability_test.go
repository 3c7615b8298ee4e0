package bookings

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(day int) time.Time {
	return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart int
		aEnd   int
		bStart int
		bEnd   int
		want   bool
	}{
		{"identical ranges", 10, 12, 10, 12, true},
		{"partial overlap", 11, 13, 10, 12, true},
		{"contained range", 10, 14, 11, 12, true},
		{"checkout on checkin boundary", 12, 14, 10, 12, false},
		{"checkin on checkout boundary", 8, 10, 10, 12, false},
		{"disjoint before", 5, 8, 10, 12, false},
		{"disjoint after", 13, 15, 10, 12, false},
		{"one night overlap", 11, 12, 10, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps([%d,%d), [%d,%d)) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestCountConflicts(t *testing.T) {
	roomTypeID := uuid.New()

	existing := []Booking{
		{ID: uuid.New(), RoomTypeID: roomTypeID, CheckInDate: date(10), CheckOutDate: date(12), Status: StatusPending},
		{ID: uuid.New(), RoomTypeID: roomTypeID, CheckInDate: date(10), CheckOutDate: date(12), Status: StatusConfirmed},
		{ID: uuid.New(), RoomTypeID: roomTypeID, CheckInDate: date(10), CheckOutDate: date(12), Status: StatusCancelled},
		{ID: uuid.New(), RoomTypeID: roomTypeID, CheckInDate: date(10), CheckOutDate: date(12), Status: StatusCompleted},
	}

	// Only PENDING and CONFIRMED hold capacity
	if got := CountConflicts(existing, date(11), date(13), uuid.Nil); got != 2 {
		t.Errorf("CountConflicts = %d, want 2", got)
	}

	// Boundary touch on either side is not a conflict
	if got := CountConflicts(existing, date(12), date(14), uuid.Nil); got != 0 {
		t.Errorf("CountConflicts at checkout boundary = %d, want 0", got)
	}
	if got := CountConflicts(existing, date(8), date(10), uuid.Nil); got != 0 {
		t.Errorf("CountConflicts at checkin boundary = %d, want 0", got)
	}

	// Excluding a booking skips it
	if got := CountConflicts(existing, date(11), date(13), existing[0].ID); got != 1 {
		t.Errorf("CountConflicts with exclusion = %d, want 1", got)
	}
}
