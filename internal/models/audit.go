package models

import "time"

// TransitionEvent is one audited status transition. It records what a
// tap did, not current state: the store keeps the live record, the
// trail keeps history.
type TransitionEvent struct {
	ID         string    `db:"id"`
	Day        string    `db:"day"`
	Student    string    `db:"student"`
	Action     Action    `db:"action"`
	FromStatus Status    `db:"from_status"`
	ToStatus   Status    `db:"to_status"`
	Campus     string    `db:"campus"`
	Classroom  string    `db:"classroom"`
	OccurredAt time.Time `db:"occurred_at"`
}
