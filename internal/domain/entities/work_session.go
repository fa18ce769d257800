package entities

import "time"

// WorkKind determines which payout-latency window applies to a session.
//
// Domain notes:
//   - Hourly "project" work pays out on the platform's weekly cycle.
//   - Flat-fee "task" work clears faster and may carry zero duration.

type WorkKind string

const (
	WorkKindProject WorkKind = "project"
	WorkKindTask    WorkKind = "task"
)

// WorkSession is one recorded work interval persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle:
//   - Created by the tracker form; immutable once the money has moved into
//     downstream payout events. There is intentionally no foreign key to
//     PayoutEvent: emails carry no session IDs, so downstream reconciliation
//     matches on aggregate amounts instead.
//
// SubmittedAt is optional; a nil value means the session is treated as
// already past its payout waiting period.
type WorkSession struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	DurationHours float64    `json:"duration_hours"`
	WorkKind      WorkKind   `json:"work_kind"`
	Earnings      float64    `json:"earnings"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
