package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-exchange/internal/audit"
	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/booking"
	"github.com/BruksfildServices01/slot-exchange/internal/infra/queue"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	events queue.Publisher
	clock  timezone.Clock
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	events queue.Publisher,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CancelBooking {
	if events == nil {
		events = queue.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CancelBooking{
		repo:   repo,
		events: events,
		clock:  clock,
		audit:  audit,
		log:    log,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor auth.Context,
	bookingID string,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	expected := domain.Status(b.Status)
	if err := domain.Cancel(b, actor, reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTransition(ctx, b, expected); err != nil {
		return nil, err
	}

	action := "booking_cancel_requested"
	if domain.Status(b.Status) == domain.StatusCancelled {
		action = "booking_cancelled"
		publishCancelled(ctx, uc.events, uc.log, b, uc.clock)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		ActorID:    actor.UserID,
		Action:     action,
		Entity:     "booking",
		EntityID:   b.ID,
		Metadata:   map[string]any{"reason": reason},
	})

	return b, nil
}

func publishCancelled(
	ctx context.Context,
	events queue.Publisher,
	log *zap.Logger,
	b *models.Booking,
	clock timezone.Clock,
) {
	ev := queue.BookingCancelledEvent{
		BookingID:   b.ID,
		ProviderID:  b.ProviderID,
		ConsumerID:  b.ConsumerID,
		CancelledAt: clock.Now(),
	}
	if b.CancelledBy != nil {
		ev.CancelledBy = *b.CancelledBy
	}
	if b.CancellationReason != nil {
		ev.Reason = *b.CancellationReason
	}

	if err := events.PublishBookingCancelled(ctx, ev); err != nil {
		log.Warn("booking cancelled event publish failed",
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
	}
}
