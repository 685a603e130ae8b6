package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ConsumerID string `gorm:"size:36;index;not null" json:"consumer_id"`
	ProviderID string `gorm:"size:36;index:idx_bookings_provider_start,priority:1;not null" json:"provider_id"`

	StartTime time.Time `gorm:"index:idx_bookings_provider_start,priority:2;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled';not null" json:"status"`

	CancelledBy        *string `gorm:"size:10" json:"cancelled_by"`
	CancellationReason *string `gorm:"size:500" json:"cancellation_reason"`

	ProviderNotes string `gorm:"type:text" json:"provider_notes"`
	ConsumerNotes string `gorm:"type:text" json:"consumer_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
