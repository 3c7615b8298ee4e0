package bookings

// Status is the booking lifecycle state. Transitions are enforced centrally
// by CanTransitionTo; no call site compares raw strings.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsLive reports whether the booking consumes room capacity. Only live
// bookings count toward the availability conflict total.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo is the single transition table for the booking state
// machine: PENDING -> CONFIRMED -> COMPLETED, with cancellation allowed
// any time before completion.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		// CANCELLED and COMPLETED are terminal.
		return false
	}
}

// LiveStatuses returns the statuses that hold capacity, for query filters.
func LiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}
