package exchange

import (
	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

// Roles is the set of parts an actor plays on one exchange. A delegate
// holding several consumer ids can be requester and target at once.
type Roles struct {
	Requester bool
	Target    bool
	Provider  bool
}

func (r Roles) Participant() bool {
	return r.Requester || r.Target || r.Provider
}

func RolesOf(ex *models.Exchange, actor auth.Context) Roles {
	return Roles{
		Requester: actor.ActsFor(ex.RequesterID),
		Target:    actor.ActsFor(ex.TargetConsumerID),
		Provider:  actor.OwnsProvider(ex.ProviderID),
	}
}

// Effect tells the caller what has to happen after the row is written.
type Effect struct {
	Swap bool
}

// Apply runs one action of the exchange state machine against ex, mutating
// it in place. Authorization is decided before state so that outsiders
// learn nothing about the exchange.
func Apply(
	ex *models.Exchange,
	action Action,
	roles Roles,
	requireApproval bool,
) (Effect, error) {
	if err := authorize(action, roles); err != nil {
		return Effect{}, err
	}

	if Status(ex.Status) != StatusPending {
		return Effect{}, httperr.ErrConflict("exchange_not_pending")
	}

	switch action {
	case ActionConfirm:
		ex.TargetConfirmed = true
		if requireApproval {
			return Effect{}, nil
		}
		ex.ProviderApproved = true
		ex.Status = string(StatusConfirmed)
		return Effect{Swap: true}, nil

	case ActionDecline:
		ex.Status = string(StatusDeclined)
		return Effect{}, nil

	case ActionCancel:
		ex.Status = string(StatusCancelled)
		return Effect{}, nil

	case ActionApprove:
		if !ex.TargetConfirmed {
			return Effect{}, httperr.ErrConflict("target_not_confirmed")
		}
		ex.ProviderApproved = true
		ex.Status = string(StatusConfirmed)
		return Effect{Swap: true}, nil
	}

	return Effect{}, httperr.ErrValidation("invalid_action")
}

func authorize(action Action, roles Roles) error {
	if !roles.Participant() {
		return httperr.ErrForbidden("not_a_participant")
	}

	var allowed bool
	switch action {
	case ActionConfirm, ActionDecline:
		allowed = roles.Target
	case ActionCancel:
		allowed = roles.Requester
	case ActionApprove:
		allowed = roles.Provider
	default:
		return httperr.ErrValidation("invalid_action")
	}

	if !allowed {
		return httperr.ErrForbidden("action_not_allowed")
	}
	return nil
}
