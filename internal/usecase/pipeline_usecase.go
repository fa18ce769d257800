package usecase

import (
	"context"
	"log"
	"math"
	"time"

	"hours_tracker/internal/domain/entities"
	"hours_tracker/internal/usecase/interfaces"
)

// IPipelineUseCase exposes the event-sourced payout pipeline view.
//
// Stage totals are recomputed from raw work sessions and payout events on
// every call; nothing here is persisted or cached between invocations, so the
// calculation is safe to trigger on any refresh cadence.

type IPipelineUseCase interface {
	StageTotals(ctx context.Context) (entities.PipelineTotals, error)
	PayoutCooldown(ctx context.Context) (entities.CooldownStatus, error)
}

type PipelineUseCase struct {
	sessions interfaces.IWorkSessionRepository
	events   interfaces.IPayoutEventRepository
	cfg      PipelineConfig
	now      func() time.Time
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(sessions interfaces.IWorkSessionRepository, events interfaces.IPayoutEventRepository, cfg PipelineConfig) *PipelineUseCase {
	return &PipelineUseCase{sessions: sessions, events: events, cfg: cfg, now: time.Now}
}

// StageTotals derives where the money currently sits across the five pipeline
// stages. Fetch failures are surfaced to the caller; the derivation itself
// never fails — malformed amounts degrade to zero contribution.
func (u *PipelineUseCase) StageTotals(ctx context.Context) (entities.PipelineTotals, error) {
	sessions, err := u.sessions.List(ctx)
	if err != nil {
		log.Printf("[pipeline][usecase] listing work sessions failed err=%v", err)
		return entities.PipelineTotals{}, err
	}
	events, err := u.events.List(ctx)
	if err != nil {
		log.Printf("[pipeline][usecase] listing payout events failed err=%v", err)
		return entities.PipelineTotals{}, err
	}

	totals := computeStageTotals(sessions, events, u.cfg, u.now().UTC())
	log.Printf("[pipeline][usecase] stage totals sessions=%d events=%d submitted=%.2f pending=%.2f paid_out=%.2f transferring=%.2f in_bank=%.2f",
		len(sessions), len(events), totals.Submitted, totals.PendingPayout, totals.PaidOut, totals.Transferring, totals.InBank)
	return totals, nil
}

// computeStageTotals is the pure derivation. The five stage totals are not
// independent running balances tied to session IDs: emails carry no session
// identifiers, so downstream stages are derived by subtraction across
// aggregate totals and clamped to zero. During overlapping payout cycles the
// subtraction can transiently under- or over-represent a stage; clamping
// shows 0 rather than a negative backlog correction.
func computeStageTotals(sessions []entities.WorkSession, events []entities.PayoutEvent, cfg PipelineConfig, now time.Time) entities.PipelineTotals {
	var waiting, cleared float64
	for _, s := range sessions {
		earnings := amountOrZero(s.Earnings)
		if earnings <= 0 {
			continue
		}
		if sessionStillWaiting(s, cfg, now) {
			waiting += earnings
		} else {
			cleared += earnings
		}
	}

	var daTotal, transfersInProgress, transfersCompleted float64
	for _, e := range events {
		amount := amountOrZero(e.Amount)
		switch e.Source {
		case entities.SourceDataAnnotation:
			daTotal += amount
		case entities.SourcePayPalTransfer:
			if e.InFlight(now) {
				transfersInProgress += amount
			} else {
				transfersCompleted += amount
			}
		}
	}

	return entities.PipelineTotals{
		Submitted:     clampStage(waiting),
		PendingPayout: clampStage(cleared - daTotal),
		PaidOut:       clampStage(daTotal - transfersCompleted - transfersInProgress),
		Transferring:  clampStage(transfersInProgress),
		InBank:        clampStage(transfersCompleted),
	}
}

// sessionStillWaiting reports whether a session is inside its payout-latency
// window. A session without a submission timestamp is treated as already past
// the waiting period.
func sessionStillWaiting(s entities.WorkSession, cfg PipelineConfig, now time.Time) bool {
	if s.SubmittedAt == nil {
		return false
	}
	latency := cfg.ProjectPayoutHours
	if s.WorkKind == entities.WorkKindTask {
		latency = cfg.TaskPayoutHours
	}
	return now.Before(s.SubmittedAt.Add(time.Duration(latency) * time.Hour))
}

func amountOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampStage(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
