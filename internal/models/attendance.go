package models

import "time"

// Status is the per-student-per-day attendance state. NotArrived is the
// implicit default: the store never holds an explicit NotArrived record,
// absence of a record means exactly that.
type Status string

const (
	StatusNotArrived Status = "NotArrived"
	StatusHere       Status = "Here"
	StatusPickedUp   Status = "PickedUp"
)

// Valid returns true when the status is a supported value.
func (s Status) Valid() bool {
	switch s {
	case StatusNotArrived, StatusHere, StatusPickedUp:
		return true
	default:
		return false
	}
}

// Action is the transition a tap performs from a given status.
type Action string

const (
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
	ActionReset    Action = "reset"
)

// NextAction returns the single legal transition out of the current
// status. The cycle is strictly linear and wraps:
// NotArrived -> Here -> PickedUp -> (record deleted).
func NextAction(current Status) Action {
	switch current {
	case StatusHere:
		return ActionCheckOut
	case StatusPickedUp:
		return ActionReset
	default:
		return ActionCheckIn
	}
}

// AttendanceRecord is one day-scoped attendance document, keyed by
// student name under a day partition. Campus and classroom are copied
// from the roster at check-in time so the record stays filterable
// without a join back to the roster.
type AttendanceRecord struct {
	Status       Status `json:"status"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
	Campus       string `json:"campus,omitempty"`
	Classroom    string `json:"classroom,omitempty"`
}

// ResolveStatus collapses record absence into the implicit default.
// Every read of a student's status goes through this boundary; nothing
// downstream inspects a possibly-nil record directly.
func ResolveStatus(rec *AttendanceRecord) Status {
	if rec == nil || !rec.Status.Valid() {
		return StatusNotArrived
	}
	return rec.Status
}

// DayKey formats the day partition identifier for an instant already in
// the attendance timezone.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockTime formats a wall-clock instant the way check-in and check-out
// stamps are stored: 12-hour with no leading zero, e.g. "9:05 AM".
func ClockTime(t time.Time) string {
	return t.Format("3:04 PM")
}
