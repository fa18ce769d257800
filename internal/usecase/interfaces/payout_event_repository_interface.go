package interfaces

import (
	"context"
	"time"

	"hours_tracker/internal/domain/entities"
)

// IPayoutEventRepository abstracts DynamoDB persistence for PayoutEvent.
//
// The ingestion collaborator must never double-count an email, so Create is
// conditional on the event ID (= dedupe key) not existing yet; a duplicate
// returns a zero-value event and no error.
//
// UpdateEstimatedArrival is the single permitted mutation on a stored event,
// used by the deposit matcher to pull a transfer's arrival into the past once
// a bank deposit confirms it landed.

type IPayoutEventRepository interface {
	Create(ctx context.Context, e entities.PayoutEvent) (entities.PayoutEvent, error)
	GetByID(ctx context.Context, id string) (entities.PayoutEvent, error)
	List(ctx context.Context) ([]entities.PayoutEvent, error)
	UpdateEstimatedArrival(ctx context.Context, id string, arrival time.Time) (entities.PayoutEvent, error)
}
