package booking

import (
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type Resolution string

const (
	ResolutionApprove Resolution = "approve"
	ResolutionDecline Resolution = "decline"
)

func ParseResolution(s string) (Resolution, error) {
	switch r := Resolution(s); r {
	case ResolutionApprove, ResolutionDecline:
		return r, nil
	default:
		return "", httperr.ErrValidation("invalid_action")
	}
}

// ===============================
// Domain Actions
// ===============================

// Cancel applies a cancellation request by actor. The owning provider
// cancels outright; the consumer (or a delegate) opens a request that the
// provider has to resolve.
func Cancel(b *models.Booking, actor auth.Context, reason string, now time.Time) error {
	var next Status
	var by string
	switch {
	case actor.OwnsProvider(b.ProviderID):
		next, by = StatusCancelled, CancelledByProvider
	case actor.ActsFor(b.ConsumerID):
		next, by = StatusCancelPending, CancelledByConsumer
	default:
		return httperr.ErrForbidden("not_booking_owner")
	}

	if utf8.RuneCountInString(reason) > MaxReasonLength {
		return httperr.ErrValidation("reason_too_long")
	}

	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	if !b.StartTime.After(now) {
		return httperr.ErrPolicy("booking_in_past")
	}

	b.Status = string(next)
	b.CancelledBy = &by
	b.CancellationReason = nil
	if reason != "" {
		b.CancellationReason = &reason
	}
	return nil
}

// Resolve applies the provider decision on a cancel_pending booking.
// Decline restores the booking as if no request had been made.
func Resolve(b *models.Booking, actor auth.Context, r Resolution) error {
	if !actor.OwnsProvider(b.ProviderID) {
		return httperr.ErrForbidden("not_booking_provider")
	}

	if err := CanResolve(Status(b.Status)); err != nil {
		return err
	}

	switch r {
	case ResolutionApprove:
		b.Status = string(StatusCancelled)
	case ResolutionDecline:
		b.Status = string(StatusScheduled)
		b.CancelledBy = nil
		b.CancellationReason = nil
	default:
		return httperr.ErrValidation("invalid_action")
	}
	return nil
}
