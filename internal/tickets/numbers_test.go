package tickets

import (
	"regexp"
	"testing"
)

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-\d{13}-\d{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateTransactionID()
		if err != nil {
			t.Fatalf("GenerateTransactionID failed: %v", err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("transaction id %q does not match expected format", id)
		}
		seen[id] = true
	}
}

func TestGenerateTicketNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^TCKT-\d{6}-\d{8}-\d{3}$`)

	batch := GenerateTicketBatch()
	if len(batch) != 8 {
		t.Fatalf("batch %q length = %d, want 8", batch, len(batch))
	}

	for _, index := range []int{1, 42, 999} {
		num := GenerateTicketNumber(batch, index)
		if !pattern.MatchString(num) {
			t.Errorf("ticket number %q does not match expected format", num)
		}
	}

	// Numbers within one batch differ only by index, so they never collide
	if GenerateTicketNumber(batch, 1) == GenerateTicketNumber(batch, 2) {
		t.Error("distinct indices produced identical ticket numbers")
	}

	// The max index a purchase can reach still fits the three-digit slot
	if got := GenerateTicketNumber(batch, MaxTicketsPerPurchase); !pattern.MatchString(got) {
		t.Errorf("ticket number %q at max index does not match expected format", got)
	}
}
