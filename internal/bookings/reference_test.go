package bookings

import (
	"regexp"
	"testing"
)

func TestGenerateBookingReference(t *testing.T) {
	pattern := regexp.MustCompile(`^BKG\d{6}[A-Z0-9]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref, err := GenerateBookingReference()
		if err != nil {
			t.Fatalf("GenerateBookingReference failed: %v", err)
		}
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match expected format", ref)
		}
		if seen[ref] {
			t.Fatalf("duplicate reference generated: %q", ref)
		}
		seen[ref] = true
	}
}
