package response

import "hours_tracker/internal/domain/entities"

// PipelineResponse carries the five stage totals in journey order.
type PipelineResponse struct {
	Submitted     float64 `json:"submitted"`
	PendingPayout float64 `json:"pending_payout"`
	PaidOut       float64 `json:"paid_out"`
	Transferring  float64 `json:"transferring"`
	InBank        float64 `json:"in_bank"`
}

func FromPipelineTotals(t entities.PipelineTotals) PipelineResponse {
	return PipelineResponse{
		Submitted:     t.Submitted,
		PendingPayout: t.PendingPayout,
		PaidOut:       t.PaidOut,
		Transferring:  t.Transferring,
		InBank:        t.InBank,
	}
}

type CooldownResponse struct {
	Available      bool   `json:"available"`
	RemainingLabel string `json:"remaining_label,omitempty"`
	Urgency        string `json:"urgency,omitempty"`
}

func FromCooldownStatus(s entities.CooldownStatus) CooldownResponse {
	return CooldownResponse{
		Available:      s.Available,
		RemainingLabel: s.RemainingLabel,
		Urgency:        string(s.Urgency),
	}
}
