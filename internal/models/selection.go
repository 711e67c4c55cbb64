package models

import "strings"

// FilterAll is the wildcard value for campus and classroom filters.
const FilterAll = "All"

// ViewMode switches the dashboard between the daily session view and
// the flat full-roster table.
type ViewMode string

const (
	ViewDaily      ViewMode = "Daily"
	ViewFullRoster ViewMode = "FullRoster"
)

// SessionFilter selects AM, PM or both sessions in the daily view.
type SessionFilter string

const (
	SessionFilterAM  SessionFilter = "AM"
	SessionFilterPM  SessionFilter = "PM"
	SessionFilterAll SessionFilter = "All"
)

// ParseSessionFilter normalises a session filter token, defaulting to All.
func ParseSessionFilter(raw string) SessionFilter {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "AM":
		return SessionFilterAM
	case "PM":
		return SessionFilterPM
	default:
		return SessionFilterAll
	}
}

// Selection is the transient filter state a single view holds. It is
// built per request (or per live-stream connection) and never persisted.
type Selection struct {
	Campus    string
	Classroom string
	Weekday   Weekday
	Session   SessionFilter
	ViewMode  ViewMode
}

// NewSelection returns the default selection: everything visible, daily
// view for the given school day.
func NewSelection(day Weekday) Selection {
	return Selection{
		Campus:    FilterAll,
		Classroom: FilterAll,
		Weekday:   day,
		Session:   SessionFilterAll,
		ViewMode:  ViewDaily,
	}
}

// SetCampus switches campuses and resets the classroom filter: a
// classroom from the previous campus may not exist in the new one.
func (s *Selection) SetCampus(campus string) {
	if campus == "" {
		campus = FilterAll
	}
	if campus != s.Campus {
		s.Classroom = FilterAll
	}
	s.Campus = campus
}

// SetClassroom narrows the classroom filter.
func (s *Selection) SetClassroom(classroom string) {
	if classroom == "" {
		classroom = FilterAll
	}
	s.Classroom = classroom
}

// MatchesStudent applies the campus/classroom filter pass.
func (s Selection) MatchesStudent(student Student) bool {
	if s.Campus != FilterAll && student.Campus != s.Campus {
		return false
	}
	if s.Classroom != FilterAll && student.Classroom != s.Classroom {
		return false
	}
	return true
}
