package exchange

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

// CleanupDuplicates removes bookings that share a provider and start time
// with either side of a committed swap. It never fails the caller.
type CleanupDuplicates struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewCleanupDuplicates(repo domain.Repository, log *zap.Logger) *CleanupDuplicates {
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupDuplicates{repo: repo, log: log}
}

// Execute returns how many bookings were removed.
func (uc *CleanupDuplicates) Execute(ctx context.Context, res *domain.SwapResult) int {
	keep := []string{res.OriginalBooking.ID, res.TargetBooking.ID}
	removed := 0

	for _, b := range []models.Booking{res.OriginalBooking, res.TargetBooking} {
		dups, err := uc.repo.ListSlotDuplicates(ctx, b.ProviderID, b.StartTime, keep)
		if err != nil {
			uc.log.Warn("duplicate cleanup failed",
				zap.String("booking_id", b.ID),
				zap.Error(err),
			)
			continue
		}

		for _, dup := range dups {
			if err := uc.repo.DeleteBookingWithReminders(ctx, dup.ID); err != nil {
				uc.log.Warn("duplicate cleanup failed",
					zap.String("booking_id", b.ID),
					zap.String("duplicate_id", dup.ID),
					zap.Error(err),
				)
				continue
			}
			removed++
			uc.log.Info("duplicate booking removed",
				zap.String("booking_id", b.ID),
				zap.String("duplicate_id", dup.ID),
			)
		}
	}

	return removed
}
