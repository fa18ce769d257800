package usecase

import (
	"testing"
	"time"

	"hours_tracker/internal/domain/entities"
)

func depositEvent(id string, amount float64, receivedAt time.Time) entities.PayoutEvent {
	return entities.PayoutEvent{ID: id, Source: entities.SourceBankDeposit, MessageID: id, Amount: amount, ReceivedAt: receivedAt}
}

func TestMatchDeposits(t *testing.T) {
	inFlight := testNow.Add(48 * time.Hour)

	t.Run("deposit settles a matching in-flight transfer", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 100, testNow)}
		transfers := []entities.PayoutEvent{transferEvent("tx-1", 100, inFlight)}

		got := matchDeposits(deposits, transfers, testNow)
		if len(got) != 1 {
			t.Fatalf("expected one rewrite, got %d", len(got))
		}
		if got[0].EventID != "tx-1" || !got[0].Arrival.Equal(testNow) {
			t.Fatalf("unexpected rewrite: %+v", got[0])
		}
	})

	t.Run("amounts compared with epsilon", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 99.995, testNow)}
		transfers := []entities.PayoutEvent{transferEvent("tx-1", 100, inFlight)}

		if got := matchDeposits(deposits, transfers, testNow); len(got) != 1 {
			t.Fatalf("expected epsilon match, got %d rewrites", len(got))
		}
	})

	t.Run("settled transfers are never re-matched", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 100, testNow)}
		transfers := []entities.PayoutEvent{transferEvent("tx-1", 100, testNow.Add(-time.Hour))}

		if got := matchDeposits(deposits, transfers, testNow); len(got) != 0 {
			t.Fatalf("expected no rewrites, got %+v", got)
		}
	})

	t.Run("at most one transfer per deposit", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 100, testNow)}
		transfers := []entities.PayoutEvent{
			transferEvent("tx-1", 100, inFlight),
			transferEvent("tx-2", 100, inFlight),
		}

		got := matchDeposits(deposits, transfers, testNow)
		if len(got) != 1 || got[0].EventID != "tx-1" {
			t.Fatalf("expected single first-found match on tx-1, got %+v", got)
		}
	})

	t.Run("two deposits of equal amount claim distinct transfers", func(t *testing.T) {
		deposits := []entities.PayoutEvent{
			depositEvent("m-1", 100, testNow),
			depositEvent("m-2", 100, testNow),
		}
		transfers := []entities.PayoutEvent{
			transferEvent("tx-1", 100, inFlight),
			transferEvent("tx-2", 100, inFlight),
		}

		got := matchDeposits(deposits, transfers, testNow)
		if len(got) != 2 || got[0].EventID != "tx-1" || got[1].EventID != "tx-2" {
			t.Fatalf("expected tx-1 and tx-2 claimed, got %+v", got)
		}
	})

	t.Run("unmatched deposit produces no rewrite", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 250, testNow)}
		transfers := []entities.PayoutEvent{transferEvent("tx-1", 100, inFlight)}

		if got := matchDeposits(deposits, transfers, testNow); len(got) != 0 {
			t.Fatalf("expected no rewrites, got %+v", got)
		}
	})

	t.Run("zero and malformed deposit amounts are skipped", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 0, testNow)}
		transfers := []entities.PayoutEvent{transferEvent("tx-1", 0, inFlight)}

		if got := matchDeposits(deposits, transfers, testNow); len(got) != 0 {
			t.Fatalf("expected no rewrites, got %+v", got)
		}
	})

	t.Run("idempotent after rewrites are applied", func(t *testing.T) {
		deposits := []entities.PayoutEvent{depositEvent("m-1", 100, testNow)}
		transfers := []entities.PayoutEvent{transferEvent("tx-1", 100, inFlight)}

		first := matchDeposits(deposits, transfers, testNow)
		if len(first) != 1 {
			t.Fatalf("expected one rewrite, got %d", len(first))
		}

		// Apply the rewrite the way the ingestion usecase would.
		transfers[0].EstimatedArrival = &first[0].Arrival

		if second := matchDeposits(deposits, transfers, testNow); len(second) != 0 {
			t.Fatalf("second pass should produce no mutations, got %+v", second)
		}
	})
}
