package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure classes the application distinguishes.
// Handlers fail fast and let these bubble up unchanged; the HTTP layer
// translates them into status codes with StatusOf.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
)

// NotFound wraps ErrNotFound with a human-readable subject,
// e.g. NotFound("user") -> "user: not found".
func NotFound(subject string) error {
	return fmt.Errorf("%s: %w", subject, ErrNotFound)
}

// Conflict wraps ErrConflict with a reason.
func Conflict(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// Forbidden wraps ErrForbidden with a reason.
func Forbidden(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrForbidden)
}

// StatusOf maps an application error to an HTTP status code.
// Unrecognized errors (store or persistence failures included) are
// treated as server faults and never downgraded to client errors.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
