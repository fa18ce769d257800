package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"hours_tracker/internal/domain/dates"
	"hours_tracker/internal/domain/entities"
	"hours_tracker/internal/usecase/interfaces"
)

var (
	ErrEmptyEventBatch = errors.New("empty event batch")
)

// IngestResult summarizes one ingestion batch.
type IngestResult struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
	Matched    int `json:"matched"`
}

// IPayoutEventUseCase accepts batches of email-derived payout events from
// the ingestion collaborator (the mailbox scraper) and exposes the stored
// event log.
//
// Ingestion is idempotent per dedupe key: re-posting a batch adds nothing and
// triggers no further deposit matching, since matching only runs over the
// deposits that were actually new.

type IPayoutEventUseCase interface {
	IngestBatch(ctx context.Context, batch []entities.PayoutEvent) (IngestResult, error)
	List(ctx context.Context) ([]entities.PayoutEvent, error)
}

type PayoutEventUseCase struct {
	events interfaces.IPayoutEventRepository
	cfg    PipelineConfig
	now    func() time.Time
}

var _ IPayoutEventUseCase = (*PayoutEventUseCase)(nil)

func NewPayoutEventUseCase(events interfaces.IPayoutEventRepository, cfg PipelineConfig) *PayoutEventUseCase {
	return &PayoutEventUseCase{events: events, cfg: cfg, now: time.Now}
}

// IngestBatch stores the parseable events of a batch and reconciles any
// newly-observed bank deposits against in-flight transfers.
//
// Per-event policy, matching the calculator's never-throw stance: an event
// with an unknown source or a missing dedupe key is skipped and counted, not
// rejected wholesale. Transfer events arriving without a stated estimate get
// one projected from the configured business-day window.
func (u *PayoutEventUseCase) IngestBatch(ctx context.Context, batch []entities.PayoutEvent) (IngestResult, error) {
	if len(batch) == 0 {
		return IngestResult{}, ErrEmptyEventBatch
	}
	log.Printf("[events][usecase] ingest start batch=%d", len(batch))

	var res IngestResult
	var newDeposits []entities.PayoutEvent
	for _, e := range batch {
		key := e.DedupeKey()
		if key == "" || !knownSource(e.Source) {
			log.Printf("[events][usecase] skipping unparseable event source=%q key=%q", e.Source, key)
			res.Skipped++
			continue
		}
		e.ID = key
		e.ReceivedAt = e.ReceivedAt.UTC()
		if e.Source == entities.SourcePayPalTransfer && e.EstimatedArrival == nil {
			projected := dates.AddBusinessDays(e.ReceivedAt, u.cfg.TransferBusinessDays)
			e.EstimatedArrival = &projected
		}

		created, err := u.events.Create(ctx, e)
		if err != nil {
			log.Printf("[events][usecase] event create failed id=%s err=%v", e.ID, err)
			return res, err
		}
		if created.ID == "" {
			res.Duplicates++
			continue
		}
		res.Added++
		if created.Source == entities.SourceBankDeposit {
			newDeposits = append(newDeposits, created)
		}
	}

	if len(newDeposits) > 0 {
		matched, err := u.reconcileDeposits(ctx, newDeposits)
		if err != nil {
			return res, err
		}
		res.Matched = matched
	}

	log.Printf("[events][usecase] ingest done added=%d duplicates=%d skipped=%d matched=%d",
		res.Added, res.Duplicates, res.Skipped, res.Matched)
	return res, nil
}

func (u *PayoutEventUseCase) reconcileDeposits(ctx context.Context, deposits []entities.PayoutEvent) (int, error) {
	stored, err := u.events.List(ctx)
	if err != nil {
		log.Printf("[events][usecase] listing events for deposit matching failed err=%v", err)
		return 0, err
	}

	var transfers []entities.PayoutEvent
	for _, e := range stored {
		if e.Source == entities.SourcePayPalTransfer {
			transfers = append(transfers, e)
		}
	}

	rewrites := matchDeposits(deposits, transfers, u.now().UTC())
	for _, rw := range rewrites {
		if _, err := u.events.UpdateEstimatedArrival(ctx, rw.EventID, rw.Arrival); err != nil {
			log.Printf("[events][usecase] arrival rewrite failed event_id=%s err=%v", rw.EventID, err)
			return len(rewrites), err
		}
		log.Printf("[events][usecase] transfer settled by deposit event_id=%s arrival=%s", rw.EventID, rw.Arrival.Format(time.RFC3339))
	}
	return len(rewrites), nil
}

func (u *PayoutEventUseCase) List(ctx context.Context) ([]entities.PayoutEvent, error) {
	return u.events.List(ctx)
}

func knownSource(s entities.EventSource) bool {
	switch s {
	case entities.SourceDataAnnotation, entities.SourcePayPalTransfer, entities.SourceBankDeposit:
		return true
	}
	return false
}
