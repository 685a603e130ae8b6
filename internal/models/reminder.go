package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BookingID string  `gorm:"size:36;uniqueIndex:idx_reminders_booking_consumer_type,priority:1;not null" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ConsumerID string `gorm:"size:36;uniqueIndex:idx_reminders_booking_consumer_type,priority:2;not null" json:"consumer_id"`

	Type         string     `gorm:"size:20;uniqueIndex:idx_reminders_booking_consumer_type,priority:3;not null" json:"type"`
	ScheduledFor time.Time  `gorm:"index;not null" json:"scheduled_for"`
	SentAt       *time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
