package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Availability("no rooms"), http.StatusBadRequest},
		{InsufficientInventory("sold out"), http.StatusBadRequest},
		{InvalidTransition("no path"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Authorization("denied"), http.StatusForbidden},
		{InventoryInconsistency("ledger broken"), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := InsufficientInventory("sold out")
	wrapped := fmt.Errorf("purchase failed: %w", inner)

	if !IsKind(wrapped, KindInsufficientInventory) {
		t.Error("kind lost through fmt.Errorf wrapping")
	}
	if KindOf(wrapped) != KindInsufficientInventory {
		t.Errorf("KindOf = %s, want %s", KindOf(wrapped), KindInsufficientInventory)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("driver failure")
	err := Wrap(KindValidation, "invalid request body", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if HTTPStatus(err) != http.StatusBadRequest {
		t.Errorf("HTTPStatus = %d, want 400", HTTPStatus(err))
	}
}
