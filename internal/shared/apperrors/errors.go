package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures raised by the booking and ticketing core so the
// route boundary can map them to a single HTTP status.
type Kind string

const (
	KindValidation             Kind = "VALIDATION_ERROR"
	KindNotFound               Kind = "NOT_FOUND"
	KindAvailability           Kind = "AVAILABILITY_ERROR"
	KindInsufficientInventory  Kind = "INSUFFICIENT_INVENTORY"
	KindAuthorization          Kind = "AUTHORIZATION_ERROR"
	KindInvalidTransition      Kind = "INVALID_TRANSITION"
	KindInventoryInconsistency Kind = "INVENTORY_INCONSISTENCY"
)

// Error is the typed failure returned by services. Services never panic;
// every failure path returns one of these wrapped around the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Availability(format string, args ...interface{}) *Error {
	return New(KindAvailability, fmt.Sprintf(format, args...))
}

func InsufficientInventory(format string, args ...interface{}) *Error {
	return New(KindInsufficientInventory, fmt.Sprintf(format, args...))
}

func Authorization(format string, args ...interface{}) *Error {
	return New(KindAuthorization, fmt.Sprintf(format, args...))
}

func InvalidTransition(format string, args ...interface{}) *Error {
	return New(KindInvalidTransition, fmt.Sprintf(format, args...))
}

func InventoryInconsistency(format string, args ...interface{}) *Error {
	return New(KindInventoryInconsistency, fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind from an error chain, or "" for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code the route boundary responds with.
// Untyped errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindAvailability, KindInsufficientInventory, KindInvalidTransition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindInventoryInconsistency:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides internal detail for kinds treated as bug signals.
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "internal server error"
	}
	if appErr.Kind == KindInventoryInconsistency {
		return "internal inventory inconsistency"
	}
	return appErr.Message
}
