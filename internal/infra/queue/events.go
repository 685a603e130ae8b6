package queue

import (
	"context"
	"time"
)

const (
	ExchangeConfirmedQueue = "exchange.confirmed"
	BookingCancelledQueue  = "booking.cancelled"
)

// ExchangeConfirmedEvent is published once a swap has been committed.
type ExchangeConfirmedEvent struct {
	ExchangeID        string    `json:"exchangeId"`
	ProviderID        string    `json:"providerId"`
	OriginalBookingID string    `json:"originalBookingId"`
	TargetBookingID   string    `json:"targetBookingId"`
	RequesterID       string    `json:"requesterId"`
	TargetConsumerID  string    `json:"targetConsumerId"`
	ConfirmedAt       time.Time `json:"confirmedAt"`
}

// BookingCancelledEvent is published when a booking reaches cancelled.
type BookingCancelledEvent struct {
	BookingID   string    `json:"bookingId"`
	ProviderID  string    `json:"providerId"`
	ConsumerID  string    `json:"consumerId"`
	CancelledBy string    `json:"cancelledBy"`
	Reason      string    `json:"reason,omitempty"`
	CancelledAt time.Time `json:"cancelledAt"`
}

type Publisher interface {
	PublishExchangeConfirmed(ctx context.Context, ev ExchangeConfirmedEvent) error
	PublishBookingCancelled(ctx context.Context, ev BookingCancelledEvent) error
}

// NopPublisher is used when event publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishExchangeConfirmed(context.Context, ExchangeConfirmedEvent) error {
	return nil
}

func (NopPublisher) PublishBookingCancelled(context.Context, BookingCancelledEvent) error {
	return nil
}
