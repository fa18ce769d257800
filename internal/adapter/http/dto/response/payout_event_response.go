package response

import (
	"time"

	"hours_tracker/internal/domain/entities"
)

type PayoutEventResponse struct {
	ID                string     `json:"id"`
	Source            string     `json:"source"`
	Amount            float64    `json:"amount"`
	ReceivedAt        time.Time  `json:"received_at"`
	ExternalPaymentID string     `json:"external_payment_id,omitempty"`
	TransactionID     string     `json:"transaction_id,omitempty"`
	EstimatedArrival  *time.Time `json:"estimated_arrival,omitempty"`
	MessageID         string     `json:"message_id,omitempty"`
}

func FromPayoutEvent(e entities.PayoutEvent) PayoutEventResponse {
	return PayoutEventResponse{
		ID:                e.ID,
		Source:            string(e.Source),
		Amount:            e.Amount,
		ReceivedAt:        e.ReceivedAt,
		ExternalPaymentID: e.ExternalPaymentID,
		TransactionID:     e.TransactionID,
		EstimatedArrival:  e.EstimatedArrival,
		MessageID:         e.MessageID,
	}
}

func FromPayoutEvents(events []entities.PayoutEvent) []PayoutEventResponse {
	out := make([]PayoutEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromPayoutEvent(e))
	}
	return out
}
