package booking

import (
	"context"

	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type Repository interface {
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// SaveTransition writes status and cancellation fields only if the row
	// is still in expected; otherwise it returns a conflict.
	SaveTransition(
		ctx context.Context,
		b *models.Booking,
		expected Status,
	) error
}
