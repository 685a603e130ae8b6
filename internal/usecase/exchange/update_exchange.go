package exchange

import (
	"context"

	"github.com/BruksfildServices01/slot-exchange/internal/audit"
	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type UpdateExchange struct {
	repo     domain.Repository
	policies domain.PolicyStore
	execute  *ExecuteExchange
	audit    *audit.Dispatcher
}

func NewUpdateExchange(
	repo domain.Repository,
	policies domain.PolicyStore,
	execute *ExecuteExchange,
	audit *audit.Dispatcher,
) *UpdateExchange {
	return &UpdateExchange{
		repo:     repo,
		policies: policies,
		execute:  execute,
		audit:    audit,
	}
}

func (uc *UpdateExchange) Execute(
	ctx context.Context,
	actor auth.Context,
	exchangeID string,
	action string,
) (*models.Exchange, error) {

	act, err := domain.ParseAction(action)
	if err != nil {
		return nil, err
	}

	ex, err := uc.repo.GetExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	policy, err := uc.policies.GetPolicy(ctx, ex.ProviderID)
	if err != nil {
		return nil, err
	}

	expected := domain.Status(ex.Status)
	effect, err := domain.Apply(ex, act, domain.RolesOf(ex, actor), policy.RequireProviderApproval)
	if err != nil {
		return nil, err
	}

	if effect.Swap {
		return uc.execute.Execute(ctx, actor, ex, expected, policy)
	}

	if err := uc.repo.SaveTransition(ctx, ex, expected); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ex.ProviderID,
		ActorID:    actor.UserID,
		Action:     auditAction(act),
		Entity:     "exchange",
		EntityID:   ex.ID,
	})

	return ex, nil
}

func auditAction(a domain.Action) string {
	switch a {
	case domain.ActionConfirm:
		return "exchange_target_confirmed"
	case domain.ActionDecline:
		return "exchange_declined"
	case domain.ActionCancel:
		return "exchange_cancelled"
	default:
		return "exchange_" + string(a)
	}
}
