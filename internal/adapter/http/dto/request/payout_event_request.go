package request

import (
	"time"

	"hours_tracker/internal/domain/entities"
)

// PayoutEventRequest is one email-derived observation posted by the mailbox
// scraper. Which identity field applies depends on source:
//   - dataannotation: external_payment_id
//   - paypal_transfer: transaction_id (+ optional estimated_arrival)
//   - bank_deposit: message_id
type PayoutEventRequest struct {
	Source            string     `json:"source" binding:"required"`
	Amount            float64    `json:"amount"`
	ReceivedAt        time.Time  `json:"received_at" binding:"required"`
	ExternalPaymentID string     `json:"external_payment_id"`
	TransactionID     string     `json:"transaction_id"`
	EstimatedArrival  *time.Time `json:"estimated_arrival"`
	MessageID         string     `json:"message_id"`
}

// PayoutEventBatchRequest is the envelope the scraper posts after each
// mailbox scan.
type PayoutEventBatchRequest struct {
	Events []PayoutEventRequest `json:"events" binding:"required"`
}

func (r PayoutEventRequest) ToEntity() entities.PayoutEvent {
	return entities.PayoutEvent{
		Source:            entities.EventSource(r.Source),
		Amount:            r.Amount,
		ReceivedAt:        r.ReceivedAt,
		ExternalPaymentID: r.ExternalPaymentID,
		TransactionID:     r.TransactionID,
		EstimatedArrival:  r.EstimatedArrival,
		MessageID:         r.MessageID,
	}
}

func (r PayoutEventBatchRequest) ToEntities() []entities.PayoutEvent {
	events := make([]entities.PayoutEvent, 0, len(r.Events))
	for _, e := range r.Events {
		events = append(events, e.ToEntity())
	}
	return events
}
