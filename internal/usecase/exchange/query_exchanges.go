package exchange

import (
	"context"

	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	domain "github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type GetExchange struct {
	repo domain.Repository
}

func NewGetExchange(repo domain.Repository) *GetExchange {
	return &GetExchange{repo: repo}
}

// Execute returns the exchange only to its participants.
func (uc *GetExchange) Execute(
	ctx context.Context,
	actor auth.Context,
	exchangeID string,
) (*models.Exchange, error) {

	ex, err := uc.repo.GetExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	if !domain.RolesOf(ex, actor).Participant() {
		return nil, httperr.ErrForbidden("not_a_participant")
	}
	return ex, nil
}

type ListExchanges struct {
	repo domain.Repository
}

func NewListExchanges(repo domain.Repository) *ListExchanges {
	return &ListExchanges{repo: repo}
}

// Execute lists every exchange the provider owns, or every exchange in
// which one of the actor's consumer ids takes part.
func (uc *ListExchanges) Execute(
	ctx context.Context,
	actor auth.Context,
) ([]models.Exchange, error) {

	if actor.Role == auth.RoleProvider {
		return uc.repo.ListExchangesForProvider(ctx, actor.ProviderID)
	}
	return uc.repo.ListExchangesForConsumers(ctx, actor.ConsumerIDs)
}
