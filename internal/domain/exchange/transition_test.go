package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

func pendingExchange() *models.Exchange {
	return &models.Exchange{
		ID:                 "ex-1",
		ProviderID:         "p-1",
		RequesterID:        "x",
		TargetConsumerID:   "y",
		OriginalBookingID:  "b1",
		TargetBookingID:    "b2",
		RequesterConfirmed: true,
		Status:             string(StatusPending),
	}
}

var (
	asRequester = Roles{Requester: true}
	asTarget    = Roles{Target: true}
	asProvider  = Roles{Provider: true}
)

func TestRolesOf(t *testing.T) {
	ex := pendingExchange()

	assert.Equal(t, asRequester, RolesOf(ex, auth.Context{Role: auth.RoleConsumer, ConsumerIDs: []string{"x"}}))
	assert.Equal(t, asTarget, RolesOf(ex, auth.Context{Role: auth.RoleConsumer, ConsumerIDs: []string{"y"}}))
	assert.Equal(t, asProvider, RolesOf(ex, auth.Context{Role: auth.RoleProvider, ProviderID: "p-1"}))
	assert.Equal(t, Roles{Requester: true, Target: true},
		RolesOf(ex, auth.Context{Role: auth.RoleParent, ConsumerIDs: []string{"x", "y"}}))
	assert.False(t, RolesOf(ex, auth.Context{Role: auth.RoleConsumer, ConsumerIDs: []string{"z"}}).Participant())
}

func TestConfirmWithoutApprovalSwaps(t *testing.T) {
	ex := pendingExchange()

	eff, err := Apply(ex, ActionConfirm, asTarget, false)

	require.NoError(t, err)
	assert.True(t, eff.Swap)
	assert.Equal(t, string(StatusConfirmed), ex.Status)
	assert.True(t, ex.TargetConfirmed)
	assert.True(t, ex.ProviderApproved)
}

func TestConfirmWithApprovalWaitsForProvider(t *testing.T) {
	ex := pendingExchange()

	eff, err := Apply(ex, ActionConfirm, asTarget, true)

	require.NoError(t, err)
	assert.False(t, eff.Swap)
	assert.Equal(t, string(StatusPending), ex.Status)
	assert.True(t, ex.TargetConfirmed)
	assert.False(t, ex.ProviderApproved)

	eff, err = Apply(ex, ActionApprove, asProvider, true)

	require.NoError(t, err)
	assert.True(t, eff.Swap)
	assert.Equal(t, string(StatusConfirmed), ex.Status)
	assert.True(t, ex.ProviderApproved)
}

func TestApproveBeforeTargetConfirmed(t *testing.T) {
	ex := pendingExchange()

	_, err := Apply(ex, ActionApprove, asProvider, true)

	assert.True(t, httperr.IsBusiness(err, "target_not_confirmed"))
	assert.Equal(t, string(StatusPending), ex.Status)
}

func TestDeclineAndCancel(t *testing.T) {
	ex := pendingExchange()
	_, err := Apply(ex, ActionDecline, asTarget, false)
	require.NoError(t, err)
	assert.Equal(t, string(StatusDeclined), ex.Status)

	ex = pendingExchange()
	_, err = Apply(ex, ActionCancel, asRequester, false)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), ex.Status)
}

func TestWrongActorIsForbidden(t *testing.T) {
	cases := []struct {
		action Action
		roles  Roles
		code   string
	}{
		{ActionConfirm, asRequester, "action_not_allowed"},
		{ActionDecline, asProvider, "action_not_allowed"},
		{ActionCancel, asTarget, "action_not_allowed"},
		{ActionApprove, asTarget, "action_not_allowed"},
		{ActionConfirm, Roles{}, "not_a_participant"},
	}

	for _, tc := range cases {
		ex := pendingExchange()
		_, err := Apply(ex, tc.action, tc.roles, false)

		kind, _ := httperr.KindOf(err)
		assert.Equal(t, httperr.KindAuthorization, kind, tc.action)
		assert.True(t, httperr.IsBusiness(err, tc.code), tc.action)
		assert.Equal(t, string(StatusPending), ex.Status)
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	actions := []struct {
		action Action
		roles  Roles
	}{
		{ActionConfirm, asTarget},
		{ActionDecline, asTarget},
		{ActionCancel, asRequester},
		{ActionApprove, asProvider},
	}

	for _, st := range []Status{StatusConfirmed, StatusDeclined, StatusCancelled} {
		assert.True(t, st.Terminal())

		for _, a := range actions {
			ex := pendingExchange()
			ex.Status = string(st)
			ex.TargetConfirmed = true

			_, err := Apply(ex, a.action, a.roles, false)

			kind, _ := httperr.KindOf(err)
			assert.Equal(t, httperr.KindConflict, kind, "%s on %s", a.action, st)
			assert.Equal(t, string(st), ex.Status)
		}
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("approve")
	require.NoError(t, err)
	assert.Equal(t, ActionApprove, a)

	_, err = ParseAction("accept")
	assert.True(t, httperr.IsBusiness(err, "invalid_action"))
}
