package entities

import "time"

// EventSource discriminates the origin of a payout observation.
//
//   - dataannotation: gig-platform payout confirmation email.
//   - paypal_transfer: processor-to-bank transfer initiated.
//   - bank_deposit: bank confirms the funds landed.

type EventSource string

const (
	SourceDataAnnotation EventSource = "dataannotation"
	SourcePayPalTransfer EventSource = "paypal_transfer"
	SourceBankDeposit    EventSource = "bank_deposit"
)

// PayoutEvent is an observation extracted from an external email by the
// ingestion collaborator, representing money having moved one step along the
// payout pipeline. It is a tagged union over Source; only the fields for the
// matching source are populated.
//
// Storage model (DynamoDB):
//   - PK: id (equal to the source-specific dedupe key)
//
// Immutability:
//   - Events are never modified after creation, with one exception: a
//     paypal_transfer event's EstimatedArrival is rewritten by the deposit
//     matcher when a matching bank deposit confirms the landing date.
type PayoutEvent struct {
	ID         string      `json:"id"`
	Source     EventSource `json:"source"`
	Amount     float64     `json:"amount"`
	ReceivedAt time.Time   `json:"received_at"`

	// Source: dataannotation
	ExternalPaymentID string `json:"external_payment_id,omitempty"`

	// Source: paypal_transfer
	TransactionID    string     `json:"transaction_id,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`

	// Source: bank_deposit
	MessageID string `json:"message_id,omitempty"`
}

// DedupeKey returns the source-specific identity the ingestion collaborator
// dedupes on. Empty when the event is missing its identity field.
func (e PayoutEvent) DedupeKey() string {
	switch e.Source {
	case SourceDataAnnotation:
		return e.ExternalPaymentID
	case SourcePayPalTransfer:
		return e.TransactionID
	case SourceBankDeposit:
		return e.MessageID
	}
	return ""
}

// InFlight reports whether a transfer event has not yet landed: its
// estimated arrival is strictly in the future, or unknown.
func (e PayoutEvent) InFlight(now time.Time) bool {
	if e.Source != SourcePayPalTransfer {
		return false
	}
	return e.EstimatedArrival == nil || e.EstimatedArrival.After(now)
}
