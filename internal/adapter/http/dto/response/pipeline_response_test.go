package response

import (
	"testing"

	"hours_tracker/internal/domain/entities"
)

func TestFromPipelineTotals(t *testing.T) {
	totals := entities.PipelineTotals{
		Submitted:     10,
		PendingPayout: 20,
		PaidOut:       30,
		Transferring:  40,
		InBank:        50,
	}

	res := FromPipelineTotals(totals)
	if res.Submitted != 10 || res.PendingPayout != 20 || res.PaidOut != 30 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Transferring != 40 || res.InBank != 50 {
		t.Fatalf("unexpected transfer fields: %+v", res)
	}
}

func TestFromCooldownStatus(t *testing.T) {
	s := entities.CooldownStatus{
		Available:      false,
		RemainingLabel: "1d 3h 5m",
		Urgency:        entities.UrgencyMedium,
	}

	res := FromCooldownStatus(s)
	if res.Available || res.RemainingLabel != "1d 3h 5m" || res.Urgency != "medium" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
