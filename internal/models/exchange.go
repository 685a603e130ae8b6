package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exchange is a proposal to swap the consumers of two bookings held with
// the same provider.
type Exchange struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ProviderID string `gorm:"size:36;index;not null" json:"provider_id"`

	RequesterID      string `gorm:"size:36;index;not null" json:"requester_id"`
	TargetConsumerID string `gorm:"size:36;index;not null" json:"target_consumer_id"`

	OriginalBookingID string  `gorm:"size:36;not null" json:"original_booking_id"`
	OriginalBooking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TargetBookingID string  `gorm:"size:36;not null" json:"target_booking_id"`
	TargetBooking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RequesterConfirmed bool `gorm:"not null" json:"requester_confirmed"`
	TargetConfirmed    bool `gorm:"not null" json:"target_confirmed"`
	ProviderApproved   bool `gorm:"not null" json:"provider_approved"`

	Status  string `gorm:"size:20;default:'pending';not null" json:"status"`
	Message string `gorm:"size:500" json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Exchange) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
