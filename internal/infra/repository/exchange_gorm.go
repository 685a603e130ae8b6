package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/slot-exchange/internal/domain/booking"
	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type ExchangeGormRepository struct {
	db *gorm.DB
}

func NewExchangeGormRepository(db *gorm.DB) *ExchangeGormRepository {
	return &ExchangeGormRepository{db: db}
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *ExchangeGormRepository) GetBooking(
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

// --------------------------------------------------
// Exchange (create)
// --------------------------------------------------

func (r *ExchangeGormRepository) HasPendingExchange(
	ctx context.Context,
	requesterID string,
	originalBookingID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Exchange{}).
		Where(
			"requester_id = ? AND original_booking_id = ? AND status = ?",
			requesterID,
			originalBookingID,
			string(domain.StatusPending),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ExchangeGormRepository) CreateExchange(
	ctx context.Context,
	ex *models.Exchange,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ex).Error

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("exchange_already_pending")
	}
	return err
}

// --------------------------------------------------
// Exchange (read)
// --------------------------------------------------

func (r *ExchangeGormRepository) GetExchange(
	ctx context.Context,
	id string,
) (*models.Exchange, error) {

	var ex models.Exchange
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ex).Error; err != nil {
		return nil, notFound(err, "exchange_not_found")
	}
	return &ex, nil
}

func (r *ExchangeGormRepository) ListExchangesForConsumers(
	ctx context.Context,
	consumerIDs []string,
) ([]models.Exchange, error) {

	exchanges := []models.Exchange{}
	if len(consumerIDs) == 0 {
		return exchanges, nil
	}

	err := r.db.WithContext(ctx).
		Where(
			"requester_id IN ? OR target_consumer_id IN ?",
			consumerIDs,
			consumerIDs,
		).
		Order("created_at DESC").
		Find(&exchanges).Error

	return exchanges, err
}

func (r *ExchangeGormRepository) ListExchangesForProvider(
	ctx context.Context,
	providerID string,
) ([]models.Exchange, error) {

	exchanges := []models.Exchange{}
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&exchanges).Error

	return exchanges, err
}

// --------------------------------------------------
// Exchange (state change)
// --------------------------------------------------

func (r *ExchangeGormRepository) SaveTransition(
	ctx context.Context,
	ex *models.Exchange,
	expected domain.Status,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := casExchange(tx, ex, expected); err != nil {
			return err
		}
		return tx.Where("id = ?", ex.ID).First(ex).Error
	})
}

// ExecuteSwap re-reads the exchange and both bookings under row locks,
// checks nothing moved since the caller loaded them, then writes the
// exchange and both bookings. Any failure rolls everything back.
func (r *ExchangeGormRepository) ExecuteSwap(
	ctx context.Context,
	ex *models.Exchange,
	expected domain.Status,
) (*domain.SwapResult, error) {

	var result domain.SwapResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Exchange
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ex.ID).
			First(&current).Error; err != nil {
			return notFound(err, "exchange_not_found")
		}

		if domain.Status(current.Status) != expected {
			return httperr.ErrConflict("exchange_not_pending")
		}

		original, err := lockBooking(tx, current.OriginalBookingID)
		if err != nil {
			return err
		}
		target, err := lockBooking(tx, current.TargetBookingID)
		if err != nil {
			return err
		}

		if booking.Status(original.Status) != booking.StatusScheduled ||
			booking.Status(target.Status) != booking.StatusScheduled ||
			original.ConsumerID != current.RequesterID ||
			target.ConsumerID != current.TargetConsumerID {
			return httperr.ErrConflict("booking_state_changed")
		}

		if err := casExchange(tx, ex, expected); err != nil {
			return err
		}

		if err := swapConsumer(tx, original.ID, current.RequesterID, current.TargetConsumerID); err != nil {
			return err
		}
		if err := swapConsumer(tx, target.ID, current.TargetConsumerID, current.RequesterID); err != nil {
			return err
		}

		if err := tx.Where("id = ?", ex.ID).First(&result.Exchange).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", original.ID).First(&result.OriginalBooking).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", target.ID).First(&result.TargetBooking).Error
	})
	if err != nil {
		return nil, err
	}

	*ex = result.Exchange
	return &result, nil
}

func lockBooking(tx *gorm.DB, id string) (*models.Booking, error) {
	var b models.Booking
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func casExchange(tx *gorm.DB, ex *models.Exchange, expected domain.Status) error {
	res := tx.
		Model(&models.Exchange{}).
		Where("id = ? AND status = ?", ex.ID, string(expected)).
		Updates(map[string]any{
			"status":            ex.Status,
			"target_confirmed":  ex.TargetConfirmed,
			"provider_approved": ex.ProviderApproved,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrConflict("stale_state")
	}
	return nil
}

func swapConsumer(tx *gorm.DB, bookingID, from, to string) error {
	res := tx.
		Model(&models.Booking{}).
		Where(
			"id = ? AND consumer_id = ? AND status = ?",
			bookingID,
			from,
			string(booking.StatusScheduled),
		).
		Updates(map[string]any{
			"consumer_id": to,
			"status":      string(booking.StatusExchanged),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrConflict("booking_state_changed")
	}
	return nil
}

// --------------------------------------------------
// Duplicate cleanup
// --------------------------------------------------

func (r *ExchangeGormRepository) ListSlotDuplicates(
	ctx context.Context,
	providerID string,
	start time.Time,
	excludeIDs []string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where("provider_id = ? AND start_time = ?", providerID, start)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var dups []models.Booking
	if err := q.Find(&dups).Error; err != nil {
		return nil, err
	}
	return dups, nil
}

func (r *ExchangeGormRepository) DeleteBookingWithReminders(
	ctx context.Context,
	bookingID string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("booking_id = ?", bookingID).
			Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ?", bookingID).
			Delete(&models.Booking{}).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ExchangeGormRepository)(nil)
