package entities

// Stage is one of the five mutually-exclusive monetary buckets representing
// money's current position in the payout pipeline, in journey order:
// logged-but-not-yet-payable, payable-but-not-yet-paid, paid-to-processor,
// transferring-to-bank, confirmed-in-bank.

type Stage string

const (
	StageSubmitted     Stage = "submitted"
	StagePendingPayout Stage = "pending_payout"
	StagePaidOut       Stage = "paid_out"
	StageTransferring  Stage = "transferring"
	StageInBank        Stage = "in_bank"
)

// Stages lists the pipeline stages in journey order.
var Stages = []Stage{StageSubmitted, StagePendingPayout, StagePaidOut, StageTransferring, StageInBank}

// PipelineTotals is a derived, non-persisted view: the amount sitting in each
// stage, recomputed from work sessions and payout events on every query.
// All totals are clamped to >= 0.
type PipelineTotals struct {
	Submitted     float64 `json:"submitted"`
	PendingPayout float64 `json:"pending_payout"`
	PaidOut       float64 `json:"paid_out"`
	Transferring  float64 `json:"transferring"`
	InBank        float64 `json:"in_bank"`
}

// ByStage returns the totals keyed by stage name, in no particular order.
func (t PipelineTotals) ByStage() map[Stage]float64 {
	return map[Stage]float64{
		StageSubmitted:     t.Submitted,
		StagePendingPayout: t.PendingPayout,
		StagePaidOut:       t.PaidOut,
		StageTransferring:  t.Transferring,
		StageInBank:        t.InBank,
	}
}

// Urgency is the three-tier banding applied to the payout cooldown countdown.

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// CooldownStatus is a derived, non-persisted view of the platform's
// payout-request rate limit, computed from the most recent dataannotation
// event. RemainingLabel and Urgency are only meaningful when Available is
// false.
type CooldownStatus struct {
	Available      bool    `json:"available"`
	RemainingLabel string  `json:"remaining_label,omitempty"`
	Urgency        Urgency `json:"urgency,omitempty"`
}
