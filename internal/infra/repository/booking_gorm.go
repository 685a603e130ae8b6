package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/booking"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

// SaveTransition is a compare-and-swap on status: the row is written only
// when it still holds expected.
func (r *BookingGormRepository) SaveTransition(
	ctx context.Context,
	b *models.Booking,
	expected domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, string(expected)).
		Updates(map[string]any{
			"status":              b.Status,
			"cancelled_by":        b.CancelledBy,
			"cancellation_reason": b.CancellationReason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrConflict("stale_state")
	}

	return r.db.WithContext(ctx).
		Where("id = ?", b.ID).
		First(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
