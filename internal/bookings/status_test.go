package bookings

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},

		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusCancelled, false},

		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusPending.IsLive() || !StatusConfirmed.IsLive() {
		t.Error("PENDING and CONFIRMED must be live")
	}
	if StatusCancelled.IsLive() || StatusCompleted.IsLive() {
		t.Error("terminal statuses must not be live")
	}
	if !StatusCancelled.IsTerminal() || !StatusCompleted.IsTerminal() {
		t.Error("CANCELLED and COMPLETED must be terminal")
	}
	if StatusPending.IsTerminal() || StatusConfirmed.IsTerminal() {
		t.Error("live statuses must not be terminal")
	}
	if Status("UNKNOWN").IsValid() {
		t.Error("unknown status must not validate")
	}
}
