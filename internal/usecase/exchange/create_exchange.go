package exchange

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/slot-exchange/internal/audit"
	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

type CreateExchangeInput struct {
	MyBookingID     string
	TargetBookingID string
	Message         string
}

type CreateExchange struct {
	repo     domain.Repository
	policies domain.PolicyStore
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewCreateExchange(
	repo domain.Repository,
	policies domain.PolicyStore,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CreateExchange {
	return &CreateExchange{
		repo:     repo,
		policies: policies,
		clock:    clock,
		audit:    audit,
	}
}

func (uc *CreateExchange) Execute(
	ctx context.Context,
	actor auth.Context,
	in CreateExchangeInput,
) (*models.Exchange, error) {

	in.MyBookingID = strings.TrimSpace(in.MyBookingID)
	in.TargetBookingID = strings.TrimSpace(in.TargetBookingID)

	if in.MyBookingID == "" || in.TargetBookingID == "" {
		return nil, httperr.ErrValidation("missing_booking_id")
	}
	if in.MyBookingID == in.TargetBookingID {
		return nil, httperr.ErrValidation("same_booking")
	}
	if utf8.RuneCountInString(in.Message) > domain.MaxMessageLength {
		return nil, httperr.ErrValidation("message_too_long")
	}

	mine, err := uc.repo.GetBooking(ctx, in.MyBookingID)
	if err != nil {
		return nil, err
	}
	// Someone else's booking is reported exactly like a missing one.
	if !actor.ActsFor(mine.ConsumerID) {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	target, err := uc.repo.GetBooking(ctx, in.TargetBookingID)
	if err != nil {
		return nil, err
	}

	if mine.ConsumerID == target.ConsumerID {
		return nil, httperr.ErrValidation("same_consumer")
	}

	policy, err := uc.policies.GetPolicy(ctx, mine.ProviderID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateExchange(mine, target, policy, uc.clock.Now()); err != nil {
		return nil, err
	}

	pending, err := uc.repo.HasPendingExchange(ctx, mine.ConsumerID, mine.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, httperr.ErrConflict("exchange_already_pending")
	}

	ex := &models.Exchange{
		ProviderID:         mine.ProviderID,
		RequesterID:        mine.ConsumerID,
		TargetConsumerID:   target.ConsumerID,
		OriginalBookingID:  mine.ID,
		TargetBookingID:    target.ID,
		RequesterConfirmed: true,
		Status:             string(domain.InitialStatus()),
		Message:            in.Message,
	}

	if err := uc.repo.CreateExchange(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ex.ProviderID,
		ActorID:    actor.UserID,
		Action:     "exchange_created",
		Entity:     "exchange",
		EntityID:   ex.ID,
		Metadata: map[string]string{
			"original_booking_id": ex.OriginalBookingID,
			"target_booking_id":   ex.TargetBookingID,
		},
	})

	return ex, nil
}
