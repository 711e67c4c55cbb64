// Package store holds the day-partitioned attendance record store. The
// backing document store owns the data; this package only adapts it:
// writes pass straight through and every subscription emission carries
// the full current map for the day, never a diff.
package store

import (
	"context"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// Store is the attendance record store contract. Keys are the day
// partition (YYYY-MM-DD in the attendance timezone) and the student's
// full name.
//
// Subscribe delivers a fresh full snapshot of the day's records on every
// change; consumers must replace, not merge, their previous map. Slow
// consumers are coalesced to the latest emission. The returned cancel
// func releases the subscription; the channel is closed afterwards.
type Store interface {
	Snapshot(ctx context.Context, day string) (map[string]models.AttendanceRecord, error)
	Write(ctx context.Context, day, student string, rec models.AttendanceRecord) error
	Delete(ctx context.Context, day, student string) error
	Subscribe(ctx context.Context, day string) (<-chan map[string]models.AttendanceRecord, func(), error)
}

func cloneRecords(src map[string]models.AttendanceRecord) map[string]models.AttendanceRecord {
	out := make(map[string]models.AttendanceRecord, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
