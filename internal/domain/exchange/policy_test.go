package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

// Friday 2026-10-16 12:00 UTC.
var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newBooking(id, consumer string, start time.Time) *models.Booking {
	return &models.Booking{
		ID:         id,
		ConsumerID: consumer,
		ProviderID: "p-1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     "scheduled",
	}
}

func testPolicy() *models.ProviderPolicy {
	p := DefaultPolicy("p-1")
	p.Timezone = "UTC"
	return p
}

var (
	monday1500    = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	wednesday1530 = time.Date(2026, 10, 21, 15, 30, 0, 0, time.UTC)
	monday1700    = time.Date(2026, 10, 26, 17, 0, 0, 0, time.UTC)
)

func TestValidateExchangeAccepts(t *testing.T) {
	err := ValidateExchange(
		newBooking("b1", "x", monday1500),
		newBooking("b2", "y", wednesday1530),
		testPolicy(),
		now,
	)
	assert.NoError(t, err)
}

func TestValidateExchangeRules(t *testing.T) {
	cases := []struct {
		name   string
		mine   func() *models.Booking
		target func() *models.Booking
		policy func() *models.ProviderPolicy
		code   string
	}{
		{
			name: "my booking not scheduled",
			mine: func() *models.Booking {
				b := newBooking("b1", "x", monday1500)
				b.Status = "cancel_pending"
				return b
			},
			target: func() *models.Booking { return newBooking("b2", "y", wednesday1530) },
			policy: testPolicy,
			code:   "booking_not_scheduled",
		},
		{
			name: "target already exchanged",
			mine: func() *models.Booking { return newBooking("b1", "x", monday1500) },
			target: func() *models.Booking {
				b := newBooking("b2", "y", wednesday1530)
				b.Status = "exchanged"
				return b
			},
			policy: testPolicy,
			code:   "booking_not_scheduled",
		},
		{
			name: "different providers",
			mine: func() *models.Booking { return newBooking("b1", "x", monday1500) },
			target: func() *models.Booking {
				b := newBooking("b2", "y", wednesday1530)
				b.ProviderID = "p-2"
				return b
			},
			policy: testPolicy,
			code:   "provider_mismatch",
		},
		{
			name:   "too soon",
			mine:   func() *models.Booking { return newBooking("b1", "x", now.Add(23*time.Hour+59*time.Minute)) },
			target: func() *models.Booking { return newBooking("b2", "y", wednesday1530) },
			policy: testPolicy,
			code:   "advance_notice_too_short",
		},
		{
			name:   "cross day when disallowed",
			mine:   func() *models.Booking { return newBooking("b1", "x", monday1500) },
			target: func() *models.Booking { return newBooking("b2", "y", wednesday1530) },
			policy: func() *models.ProviderPolicy {
				p := testPolicy()
				p.AllowCrossDayExchanges = false
				return p
			},
			code: "cross_day_not_allowed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateExchange(tc.mine(), tc.target(), tc.policy(), now)

			kind, ok := httperr.KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, httperr.KindPolicy, kind)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestValidateExchangeExactlyAtMinimumNotice(t *testing.T) {
	err := ValidateExchange(
		newBooking("b1", "x", now.Add(24*time.Hour)),
		newBooking("b2", "y", wednesday1530),
		testPolicy(),
		now,
	)
	assert.NoError(t, err)
}

func TestValidateExchangeSameWeekdayAllowed(t *testing.T) {
	p := testPolicy()
	p.AllowCrossDayExchanges = false

	err := ValidateExchange(newBooking("b1", "x", monday1500), newBooking("b2", "y", monday1700), p, now)
	assert.NoError(t, err)
}

func TestValidateExchangeWeekdayInProviderTimezone(t *testing.T) {
	p := testPolicy()
	p.AllowCrossDayExchanges = false
	p.Timezone = "America/Sao_Paulo"

	// Tuesday 01:00 UTC is Monday 22:00 in Sao Paulo.
	lateMonday := time.Date(2026, 10, 27, 1, 0, 0, 0, time.UTC)

	err := ValidateExchange(newBooking("b1", "x", monday1500), newBooking("b2", "y", lateMonday), p, now)
	assert.NoError(t, err)
}

func TestValidateExchangeFailsFast(t *testing.T) {
	// Every rule is broken; only the first one is reported.
	mine := newBooking("b1", "x", now.Add(time.Hour))
	mine.Status = "cancelled"
	target := newBooking("b2", "y", wednesday1530)
	target.ProviderID = "p-2"
	p := testPolicy()
	p.AllowCrossDayExchanges = false

	err := ValidateExchange(mine, target, p, now)
	assert.True(t, httperr.IsBusiness(err, "booking_not_scheduled"))
}
