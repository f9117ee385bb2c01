package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or incomplete client input. Reported to
	// the caller as a client error, never retried.
	ErrValidation = fmt.Errorf("validation error")

	// ErrStorage marks a durable store failure. Surfaced as a server error,
	// not retried by the core.
	ErrStorage = fmt.Errorf("storage error")

	// ErrStaleConnection marks a delivery target that is no longer reachable.
	// Triggers lazy eviction from the registry, never a request failure.
	ErrStaleConnection = fmt.Errorf("stale connection")

	// ErrTransientDelivery marks a delivery attempt that failed for a reason
	// other than staleness. Logged, not retried.
	ErrTransientDelivery = fmt.Errorf("transient delivery error")

	// ErrSequenceContention is returned when sequence assignment keeps
	// colliding with concurrent writers after all retries.
	ErrSequenceContention = fmt.Errorf("sequence assignment contention")
)

// StatusFor maps an error to the status code reported to the client.
// Delivery errors never reach clients as request failures, so only the
// validation and storage kinds matter here.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return 200
	case errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}
