package dto

// StudentStatus is the shared per-student display shape used across
// kiosk and roster views.
type StudentStatus struct {
	Name         string `json:"name"`
	Campus       string `json:"campus,omitempty"`
	Classroom    string `json:"classroom,omitempty"`
	Status       string `json:"status"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
}

// KioskCounts summarises the filtered kiosk list. The three status
// buckets always sum to Total.
type KioskCounts struct {
	NotHere  int `json:"notHere"`
	Here     int `json:"here"`
	PickedUp int `json:"pickedUp"`
	Total    int `json:"total"`
}

// KioskGroup is one first-letter section of the kiosk list.
type KioskGroup struct {
	Letter   string          `json:"letter"`
	Students []StudentStatus `json:"students"`
}

// KioskView is the check-in screen payload: letter-grouped students
// plus the jump-bar letters and summary counts.
type KioskView struct {
	Day     string       `json:"day"`
	Groups  []KioskGroup `json:"groups"`
	Letters []string     `json:"letters"`
	Counts  KioskCounts  `json:"counts"`
}

// ClassroomGroup is one classroom section of a daily session.
type ClassroomGroup struct {
	Classroom string          `json:"classroom"`
	Here      int             `json:"here"`
	Total     int             `json:"total"`
	Students  []StudentStatus `json:"students"`
}

// SessionView is one half-day of the daily dashboard.
type SessionView struct {
	Session    string           `json:"session"`
	Here       int              `json:"here"`
	Total      int              `json:"total"`
	Classrooms []ClassroomGroup `json:"classrooms"`
}

// DailyView is the daily dashboard payload: both sessions of one
// weekday, grouped by assigned classroom.
type DailyView struct {
	Day     string      `json:"day"`
	Weekday string      `json:"weekday"`
	AM      SessionView `json:"am"`
	PM      SessionView `json:"pm"`
}

// RosterView is the flat full-roster list in enrollment order.
type RosterView struct {
	Day      string          `json:"day"`
	Students []StudentStatus `json:"students"`
}

// ClassroomStats is one classroom bucket of the statistics view. The
// three status buckets partition Expected.
type ClassroomStats struct {
	Classroom   string `json:"classroom"`
	Expected    int    `json:"expected"`
	Here        int    `json:"here"`
	PickedUp    int    `json:"pickedUp"`
	NotHere     int    `json:"notHere"`
	RatePercent int    `json:"ratePercent"`
}

// CampusStats aggregates one campus.
type CampusStats struct {
	Campus      string           `json:"campus"`
	Expected    int              `json:"expected"`
	Here        int              `json:"here"`
	PickedUp    int              `json:"pickedUp"`
	NotHere     int              `json:"notHere"`
	RatePercent int              `json:"ratePercent"`
	Classrooms  []ClassroomStats `json:"classrooms"`
}

// StatsView is the statistics payload for one (weekday, session).
type StatsView struct {
	Day         string        `json:"day"`
	Weekday     string        `json:"weekday"`
	Session     string        `json:"session"`
	Campuses    []CampusStats `json:"campuses"`
	Expected    int           `json:"expected"`
	Here        int           `json:"here"`
	PickedUp    int           `json:"pickedUp"`
	NotHere     int           `json:"notHere"`
	RatePercent int           `json:"ratePercent"`
}

// RosterInfo describes the current roster snapshot for the admin view.
type RosterInfo struct {
	Students   []RosterStudent `json:"students"`
	Campuses   []string        `json:"campuses"`
	Classrooms []string        `json:"classrooms"`
	FetchedAt  string          `json:"fetchedAt,omitempty"`
}

// RosterStudent is one enrollment row with its weekly schedule.
type RosterStudent struct {
	Name      string            `json:"name"`
	Campus    string            `json:"campus"`
	Classroom string            `json:"classroom"`
	Schedule  map[string]string `json:"schedule,omitempty"`
}
