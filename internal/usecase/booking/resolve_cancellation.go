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

type ResolveCancellation struct {
	repo   domain.Repository
	events queue.Publisher
	clock  timezone.Clock
	audit  *audit.Dispatcher
	log    *zap.Logger
}

func NewResolveCancellation(
	repo domain.Repository,
	events queue.Publisher,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ResolveCancellation {
	if events == nil {
		events = queue.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ResolveCancellation{
		repo:   repo,
		events: events,
		clock:  clock,
		audit:  audit,
		log:    log,
	}
}

func (uc *ResolveCancellation) Execute(
	ctx context.Context,
	actor auth.Context,
	bookingID string,
	action string,
) (*models.Booking, error) {

	resolution, err := domain.ParseResolution(action)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Resolve(b, actor, resolution); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTransition(ctx, b, domain.StatusCancelPending); err != nil {
		return nil, err
	}

	auditAction := "booking_cancellation_declined"
	if resolution == domain.ResolutionApprove {
		auditAction = "booking_cancellation_approved"
		publishCancelled(ctx, uc.events, uc.log, b, uc.clock)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		ActorID:    actor.UserID,
		Action:     auditAction,
		Entity:     "booking",
		EntityID:   b.ID,
	})

	return b, nil
}
