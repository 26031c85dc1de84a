package booking

import "errors"

// Expected domain failures. Collaborators mark their errors with these
// sentinels and the booking workflow propagates them to the caller
// unchanged, so the caller can tell which step failed with errors.Is.
var (
	// ErrInvalidRequest rejects structurally invalid input
	// (check-out not after check-in, non-positive guest count).
	ErrInvalidRequest = errors.New("invalid booking request")

	// ErrNoRoomAvailable is signaled by the inventory when no room
	// matches the request's dates and guest count.
	ErrNoRoomAvailable = errors.New("no room available")

	// ErrPaymentDeclined covers any processor failure: decline, limit
	// exceeded, processor unreachable.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrConfirmationFailed is signaled by the notifier when delivery of
	// the booking confirmation cannot be confirmed. The booking stays
	// persisted when this surfaces from the booking workflow.
	ErrConfirmationFailed = errors.New("booking confirmation not delivered")

	// ErrNotFound is signaled by the booking store for unknown ids.
	ErrNotFound = errors.New("booking not found")

	// ErrRateUnavailable is signaled by the currency converter when the
	// exchange rate cannot be obtained.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
