package booking

import "github.com/BruksfildServices01/slot-exchange/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusScheduled     Status = "scheduled"
	StatusCancelPending Status = "cancel_pending"
	StatusCancelled     Status = "cancelled"
	StatusExchanged     Status = "exchanged"
)

// ===============================
// Cancellation parties
// ===============================

const (
	CancelledByProvider = "PROVIDER"
	CancelledByConsumer = "CONSUMER"
)

const MaxReasonLength = 500

// ===============================
// Validations
// ===============================

// CanCancel allows a cancellation request only from scheduled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrConflict("invalid_state")
	}
	return nil
}

// CanResolve allows the provider decision only on a pending request.
func CanResolve(current Status) error {
	if current != StatusCancelPending {
		return httperr.ErrConflict("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
