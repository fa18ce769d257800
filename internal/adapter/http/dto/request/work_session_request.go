package request

import (
	"time"

	"hours_tracker/internal/domain/entities"
)

// WorkSessionRequest is the tracker-form payload for logging one work
// interval. SubmittedAt is optional; omitting it marks the session as
// already past its payout waiting period.
type WorkSessionRequest struct {
	Date          string     `json:"date" binding:"required"`
	DurationHours float64    `json:"duration_hours"`
	WorkKind      string     `json:"work_kind" binding:"required"`
	Earnings      float64    `json:"earnings"`
	SubmittedAt   *time.Time `json:"submitted_at"`
}

func (r WorkSessionRequest) ToEntity() entities.WorkSession {
	return entities.WorkSession{
		Date:          r.Date,
		DurationHours: r.DurationHours,
		WorkKind:      entities.WorkKind(r.WorkKind),
		Earnings:      r.Earnings,
		SubmittedAt:   r.SubmittedAt,
	}
}
