package usecase

import (
	"math"
	"time"

	"hours_tracker/internal/domain/entities"
)

// amountEpsilon absorbs float representation noise when comparing money.
const amountEpsilon = 0.01

// arrivalRewrite is a mutation the matcher asks the caller to apply: set the
// transfer event's estimated arrival to the confirmed deposit date.
type arrivalRewrite struct {
	EventID string
	Arrival time.Time
}

// matchDeposits reconciles newly-observed bank deposits against transfers
// still in flight. For each deposit it takes the first in-flight transfer
// whose amount matches within amountEpsilon (greedy, first-found-wins, at
// most one match per deposit) and emits a rewrite pulling that transfer's
// estimated arrival to the deposit's received time. Transfers whose arrival
// has already elapsed are never re-matched; unmatched deposits produce no
// rewrites.
//
// Known limitation inherited from the email shapes: when two in-flight
// transfers of identical amount coexist, the earliest-scanned one wins and
// may be misattributed. Emails carry no correlating identifier that would
// allow an exact pairing.
func matchDeposits(deposits, transfers []entities.PayoutEvent, now time.Time) []arrivalRewrite {
	claimed := make(map[string]bool, len(transfers))
	var rewrites []arrivalRewrite

	for _, d := range deposits {
		if d.Source != entities.SourceBankDeposit {
			continue
		}
		amount := amountOrZero(d.Amount)
		if amount <= 0 {
			continue
		}
		for _, t := range transfers {
			if claimed[t.ID] || !t.InFlight(now) {
				continue
			}
			if math.Abs(amountOrZero(t.Amount)-amount) > amountEpsilon {
				continue
			}
			claimed[t.ID] = true
			rewrites = append(rewrites, arrivalRewrite{EventID: t.ID, Arrival: d.ReceivedAt})
			break
		}
	}
	return rewrites
}
