package dto

import (
	"time"

	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type ExchangeListDTO struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	RequesterID       string    `json:"requester_id"`
	TargetConsumerID  string    `json:"target_consumer_id"`
	OriginalBookingID string    `json:"original_booking_id"`
	TargetBookingID   string    `json:"target_booking_id"`
	TargetConfirmed   bool      `json:"target_confirmed"`
	ProviderApproved  bool      `json:"provider_approved"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewExchangeList(exchanges []models.Exchange) []ExchangeListDTO {
	out := make([]ExchangeListDTO, 0, len(exchanges))
	for _, ex := range exchanges {
		out = append(out, ExchangeListDTO{
			ID:                ex.ID,
			Status:            ex.Status,
			RequesterID:       ex.RequesterID,
			TargetConsumerID:  ex.TargetConsumerID,
			OriginalBookingID: ex.OriginalBookingID,
			TargetBookingID:   ex.TargetBookingID,
			TargetConfirmed:   ex.TargetConfirmed,
			ProviderApproved:  ex.ProviderApproved,
			CreatedAt:         ex.CreatedAt,
		})
	}
	return out
}
