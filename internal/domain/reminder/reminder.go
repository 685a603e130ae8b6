package reminder

import (
	"time"

	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type Type string

const (
	TypeDayBefore   Type = "day_before"
	TypeHoursBefore Type = "hours_before"
)

const (
	dayBeforeOffset    = 24 * time.Hour
	defaultHoursBefore = 2
)

// Plan returns the reminder rows owed to the current consumer of b.
// Rows are always planned; whether they are delivered is decided by
// ShouldDeliver.
func Plan(b models.Booking, policy *models.ProviderPolicy) []models.Reminder {
	hours := defaultHoursBefore
	if policy != nil && policy.ReminderHoursBefore > 0 {
		hours = policy.ReminderHoursBefore
	}

	return []models.Reminder{
		{
			BookingID:    b.ID,
			ConsumerID:   b.ConsumerID,
			Type:         string(TypeDayBefore),
			ScheduledFor: b.StartTime.Add(-dayBeforeOffset),
		},
		{
			BookingID:    b.ID,
			ConsumerID:   b.ConsumerID,
			Type:         string(TypeHoursBefore),
			ScheduledFor: b.StartTime.Add(-time.Duration(hours) * time.Hour),
		},
	}
}

// ShouldDeliver reports whether r must be handed to the delivery queue.
func ShouldDeliver(r models.Reminder, policy *models.ProviderPolicy, now time.Time) bool {
	if policy == nil || !policy.ReminderEnabled {
		return false
	}
	if Type(r.Type) == TypeDayBefore && !policy.ReminderDayBefore {
		return false
	}
	return r.ScheduledFor.After(now)
}
