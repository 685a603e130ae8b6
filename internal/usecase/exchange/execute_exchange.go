package exchange

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-exchange/internal/audit"
	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/infra/queue"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
	"github.com/BruksfildServices01/slot-exchange/internal/usecase/reminder"
)

// ExecuteExchange commits a swap and then runs the follow-up steps. Only
// the swap itself can fail the request; reminders, duplicate cleanup and
// the event are logged on failure.
type ExecuteExchange struct {
	repo      domain.Repository
	reminders *reminder.ScheduleReminders
	cleanup   *CleanupDuplicates
	events    queue.Publisher
	clock     timezone.Clock
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewExecuteExchange(
	repo domain.Repository,
	reminders *reminder.ScheduleReminders,
	cleanup *CleanupDuplicates,
	events queue.Publisher,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ExecuteExchange {
	if events == nil {
		events = queue.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ExecuteExchange{
		repo:      repo,
		reminders: reminders,
		cleanup:   cleanup,
		events:    events,
		clock:     clock,
		audit:     audit,
		log:       log,
	}
}

// Execute expects ex to already carry its post-transition state.
func (uc *ExecuteExchange) Execute(
	ctx context.Context,
	actor auth.Context,
	ex *models.Exchange,
	expected domain.Status,
	policy *models.ProviderPolicy,
) (*models.Exchange, error) {

	res, err := uc.repo.ExecuteSwap(ctx, ex, expected)
	if err != nil {
		return nil, err
	}

	log := uc.log.With(zap.String("exchange_id", res.Exchange.ID))

	if _, err := uc.reminders.Execute(ctx, policy, res.OriginalBooking, res.TargetBooking); err != nil {
		log.Warn("reminder scheduling failed", zap.Error(err))
	}

	uc.cleanup.Execute(ctx, res)

	if err := uc.events.PublishExchangeConfirmed(ctx, queue.ExchangeConfirmedEvent{
		ExchangeID:        res.Exchange.ID,
		ProviderID:        res.Exchange.ProviderID,
		OriginalBookingID: res.OriginalBooking.ID,
		TargetBookingID:   res.TargetBooking.ID,
		RequesterID:       res.Exchange.RequesterID,
		TargetConsumerID:  res.Exchange.TargetConsumerID,
		ConfirmedAt:       uc.clock.Now(),
	}); err != nil {
		log.Warn("exchange confirmed event publish failed", zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: res.Exchange.ProviderID,
		ActorID:    actor.UserID,
		Action:     "exchange_confirmed",
		Entity:     "exchange",
		EntityID:   res.Exchange.ID,
	})

	return &res.Exchange, nil
}
