package models

import "time"

// ProviderPolicy is read-only configuration owned by a provider.
type ProviderPolicy struct {
	ProviderID string `gorm:"primaryKey;size:36" json:"provider_id"`

	MinAdvanceHours         int  `json:"min_advance_hours"`
	MaxAdvanceDays          int  `json:"max_advance_days"`
	AllowCrossDayExchanges  bool `json:"allow_cross_day_exchanges"`
	RequireProviderApproval bool `json:"require_provider_approval"`

	ReminderEnabled     bool `json:"reminder_enabled"`
	ReminderDayBefore   bool `json:"reminder_day_before"`
	ReminderHoursBefore int  `json:"reminder_hours_before"`

	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
