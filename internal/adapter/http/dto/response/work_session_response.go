package response

import (
	"time"

	"hours_tracker/internal/domain/entities"
)

type WorkSessionResponse struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	DurationHours float64    `json:"duration_hours"`
	WorkKind      string     `json:"work_kind"`
	Earnings      float64    `json:"earnings"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromWorkSession(s entities.WorkSession) WorkSessionResponse {
	return WorkSessionResponse{
		ID:            s.ID,
		Date:          s.Date,
		DurationHours: s.DurationHours,
		WorkKind:      string(s.WorkKind),
		Earnings:      s.Earnings,
		SubmittedAt:   s.SubmittedAt,
		CreatedAt:     s.CreatedAt,
	}
}

func FromWorkSessions(sessions []entities.WorkSession) []WorkSessionResponse {
	out := make([]WorkSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromWorkSession(s))
	}
	return out
}
