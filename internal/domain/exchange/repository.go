package exchange

import (
	"context"
	"time"

	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

// SwapResult carries the rows as committed by a swap.
type SwapResult struct {
	Exchange        models.Exchange
	OriginalBooking models.Booking
	TargetBooking   models.Booking
}

type Repository interface {
	// -------- Bookings --------
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// -------- Exchange (create) --------
	HasPendingExchange(
		ctx context.Context,
		requesterID string,
		originalBookingID string,
	) (bool, error)

	CreateExchange(
		ctx context.Context,
		ex *models.Exchange,
	) error

	// -------- Exchange (state change) --------
	GetExchange(
		ctx context.Context,
		id string,
	) (*models.Exchange, error)

	ListExchangesForConsumers(
		ctx context.Context,
		consumerIDs []string,
	) ([]models.Exchange, error)

	ListExchangesForProvider(
		ctx context.Context,
		providerID string,
	) ([]models.Exchange, error)

	// SaveTransition writes the exchange flags and status only if the row
	// is still in expected.
	SaveTransition(
		ctx context.Context,
		ex *models.Exchange,
		expected Status,
	) error

	// ExecuteSwap writes ex (expected -> its new status) and swaps the
	// consumers of both bookings in a single transaction.
	ExecuteSwap(
		ctx context.Context,
		ex *models.Exchange,
		expected Status,
	) (*SwapResult, error)

	// -------- Duplicate cleanup --------
	ListSlotDuplicates(
		ctx context.Context,
		providerID string,
		start time.Time,
		excludeIDs []string,
	) ([]models.Booking, error)

	DeleteBookingWithReminders(
		ctx context.Context,
		bookingID string,
	) error
}

// PolicyStore is the read-only provider configuration source.
type PolicyStore interface {
	GetPolicy(
		ctx context.Context,
		providerID string,
	) (*models.ProviderPolicy, error)
}
