package remote

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the network layer. Callers branch on these with
// errors.Is instead of probing response shapes.
var (
	// ErrNotFound indicates the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable indicates the store could not be reached or failed
	// internally.
	ErrUnavailable = errors.New("store unavailable")
	// ErrFailed is the catch-all kind for any other non-success response.
	ErrFailed = errors.New("request failed")
)

// RemoteError describes a failed call against the record store. Status is the
// HTTP status code, or 0 when the request never produced a response.
type RemoteError struct {
	Verb   string
	Path   string
	Status int
	cause  error
}

func (e *RemoteError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Verb, e.Path, e.cause)
	}
	return fmt.Sprintf("%s %s failed: %d", e.Verb, e.Path, e.Status)
}

// Unwrap maps the failure onto one of the closed error kinds so that
// errors.Is(err, ErrNotFound) and friends work across layers.
func (e *RemoteError) Unwrap() error {
	switch {
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 0 || e.Status >= 500:
		return ErrUnavailable
	default:
		return ErrFailed
	}
}
