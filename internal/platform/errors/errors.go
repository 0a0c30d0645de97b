package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("not found")
	ErrNoProfile             = errors.New("no active profile")
	ErrCatalogUnavailable    = errors.New("catalog unavailable")
	ErrWordsUnavailable      = errors.New("words unavailable")
	ErrCapabilityUnsupported = errors.New("speech capability unsupported")
	ErrCapabilityBusy        = errors.New("speech capability busy")
	ErrCapabilityError       = errors.New("speech capability error")
)

// StatusError reports a non-success HTTP status from the backend.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}
