package exchange

import (
	"time"

	"github.com/BruksfildServices01/slot-exchange/internal/domain/booking"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

const (
	defaultMinAdvanceHours     = 24
	defaultMaxAdvanceDays      = 30
	defaultReminderHoursBefore = 2
)

// DefaultPolicy is what a provider without stored configuration gets.
func DefaultPolicy(providerID string) *models.ProviderPolicy {
	return &models.ProviderPolicy{
		ProviderID:              providerID,
		MinAdvanceHours:         defaultMinAdvanceHours,
		MaxAdvanceDays:          defaultMaxAdvanceDays,
		AllowCrossDayExchanges:  true,
		RequireProviderApproval: false,
		ReminderEnabled:         true,
		ReminderDayBefore:       true,
		ReminderHoursBefore:     defaultReminderHoursBefore,
		Timezone:                timezone.DefaultTimezone,
	}
}

// ValidateExchange checks a proposed swap of mine for target against the
// provider policy. Rules run in a fixed order and the first failure wins.
func ValidateExchange(
	mine *models.Booking,
	target *models.Booking,
	policy *models.ProviderPolicy,
	now time.Time,
) error {
	if booking.Status(mine.Status) != booking.StatusScheduled ||
		booking.Status(target.Status) != booking.StatusScheduled {
		return httperr.ErrPolicy("booking_not_scheduled")
	}

	if mine.ProviderID != target.ProviderID {
		return httperr.ErrPolicy("provider_mismatch")
	}

	hoursUntil := mine.StartTime.Sub(now).Hours()
	if hoursUntil < float64(policy.MinAdvanceHours) {
		return httperr.ErrPolicy("advance_notice_too_short")
	}

	if !policy.AllowCrossDayExchanges &&
		timezone.Weekday(mine.StartTime, policy.Timezone) != timezone.Weekday(target.StartTime, policy.Timezone) {
		return httperr.ErrPolicy("cross_day_not_allowed")
	}

	return nil
}
