package models

import (
	"strings"
	"time"
)

// Weekday identifies a school day. The preschool runs Monday to Friday;
// weekend dates map to Monday, matching the behaviour the staff expect
// when opening a dashboard on a Sunday evening.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
)

// Weekdays lists school days in order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid returns true when the weekday is a school day.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	default:
		return false
	}
}

// ParseWeekday normalises a day token ("mon", "Tue", ...). It returns
// false when the token is not a school day.
func ParseWeekday(raw string) (Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mon", "monday":
		return Monday, true
	case "tue", "tuesday":
		return Tuesday, true
	case "wed", "wednesday":
		return Wednesday, true
	case "thu", "thursday":
		return Thursday, true
	case "fri", "friday":
		return Friday, true
	default:
		return "", false
	}
}

// WeekdayOf maps a wall-clock instant to the school day it belongs to.
// Saturday and Sunday resolve to Monday.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return Monday
	}
}

// Session is a half-day slot.
type Session string

const (
	SessionAM Session = "AM"
	SessionPM Session = "PM"
)

// ParseSession normalises a session token.
func ParseSession(raw string) (Session, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "AM":
		return SessionAM, true
	case "PM":
		return SessionPM, true
	default:
		return "", false
	}
}

// SessionAssignment holds the classroom a student attends in each half
// of a given weekday. An empty string means not scheduled for that
// session.
type SessionAssignment struct {
	AM string `json:"am,omitempty"`
	PM string `json:"pm,omitempty"`
}

// Room returns the classroom assigned for the session, empty when the
// student is not scheduled.
func (a SessionAssignment) Room(session Session) string {
	if session == SessionPM {
		return a.PM
	}
	return a.AM
}

// Student is one enrolled child from the roster snapshot. The full name
// is the identity key throughout the system; there is no surrogate ID
// in the roster source, so two children with identical full names would
// collide (known limitation).
type Student struct {
	Name      string                        `json:"name"`
	Campus    string                        `json:"campus"`
	Classroom string                        `json:"classroom"`
	Schedule  map[Weekday]SessionAssignment `json:"schedule,omitempty"`
}

// FirstName returns the leading name token, used for kiosk and roster
// display ordering.
func (s Student) FirstName() string {
	name := strings.TrimSpace(s.Name)
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}

// ScheduledRoom returns the classroom the student is assigned to for
// the weekday/session, or empty when not scheduled.
func (s Student) ScheduledRoom(day Weekday, session Session) string {
	return s.Schedule[day].Room(session)
}
