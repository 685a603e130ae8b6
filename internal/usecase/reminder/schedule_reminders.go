package reminder

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/reminder"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

// Enqueuer hands a stored reminder to the delivery side.
type Enqueuer interface {
	Enqueue(ctx context.Context, r models.Reminder) error
}

type ScheduleReminders struct {
	repo  domain.Repository
	queue Enqueuer
	clock timezone.Clock
	log   *zap.Logger
}

// NewScheduleReminders accepts a nil queue, in which case reminders are
// only stored.
func NewScheduleReminders(
	repo domain.Repository,
	queue Enqueuer,
	clock timezone.Clock,
	log *zap.Logger,
) *ScheduleReminders {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleReminders{
		repo:  repo,
		queue: queue,
		clock: clock,
		log:   log,
	}
}

// Execute stores the reminders owed to the current consumer of each
// booking and returns the rows that were newly created.
func (uc *ScheduleReminders) Execute(
	ctx context.Context,
	policy *models.ProviderPolicy,
	bookings ...models.Booking,
) ([]models.Reminder, error) {

	now := uc.clock.Now()
	var created []models.Reminder

	for _, b := range bookings {
		for _, r := range domain.Plan(b, policy) {
			ok, err := uc.repo.CreateReminder(ctx, &r)
			if err != nil {
				return created, err
			}
			if !ok {
				continue
			}
			created = append(created, r)

			if uc.queue == nil || !domain.ShouldDeliver(r, policy, now) {
				continue
			}
			if err := uc.queue.Enqueue(ctx, r); err != nil {
				uc.log.Warn("reminder enqueue failed",
					zap.String("reminder_id", r.ID),
					zap.String("booking_id", r.BookingID),
					zap.Error(err),
				)
			}
		}
	}

	return created, nil
}
