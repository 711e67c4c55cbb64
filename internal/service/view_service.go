package service

import (
	"sort"
	"sync"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
)

// ViewService derives every display view from the same three inputs:
// the roster snapshot, the day's attendance records and the caller's
// selection. Derivation is a full recompute each time, never an
// incremental patch, so a view can never drift from the records that
// produced it.
type ViewService struct {
	mu  sync.Mutex
	col *collate.Collator
}

func NewViewService() *ViewService {
	return &ViewService{col: collate.New(language.English, collate.IgnoreCase)}
}

// compareNames orders display names with locale-aware collation. The
// collator is not safe for concurrent use, hence the lock.
func (v *ViewService) compareNames(a, b string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.col.CompareString(a, b)
}

func (v *ViewService) sortByFirstName(students []models.Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return v.compareNames(students[i].FirstName(), students[j].FirstName()) < 0
	})
}

func resolveFor(records map[string]models.AttendanceRecord, name string) (models.Status, models.AttendanceRecord) {
	if rec, ok := records[name]; ok {
		return models.ResolveStatus(&rec), rec
	}
	return models.ResolveStatus(nil), models.AttendanceRecord{}
}

func studentStatus(st models.Student, records map[string]models.AttendanceRecord) dto.StudentStatus {
	status, rec := resolveFor(records, st.Name)
	return dto.StudentStatus{
		Name:         st.Name,
		Campus:       st.Campus,
		Classroom:    st.Classroom,
		Status:       string(status),
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
	}
}

func filterStudents(students []models.Student, sel models.Selection) []models.Student {
	out := make([]models.Student, 0, len(students))
	for _, st := range students {
		if sel.MatchesStudent(st) {
			out = append(out, st)
		}
	}
	return out
}

// letterOf returns the jump-bar bucket for a first name. Names that do
// not start with a letter land under "#".
func letterOf(firstName string) string {
	for _, r := range firstName {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
		break
	}
	return "#"
}

// Kiosk builds the check-in screen: the filtered roster sorted by first
// name and grouped by starting letter. The notHereOnly toggle narrows
// the listed set, and the count chips describe exactly that listed set.
func (v *ViewService) Kiosk(students []models.Student, records map[string]models.AttendanceRecord, sel models.Selection, notHereOnly bool, day string) dto.KioskView {
	filtered := filterStudents(students, sel)

	listed := filtered
	if notHereOnly {
		listed = make([]models.Student, 0, len(filtered))
		for _, st := range filtered {
			if status, _ := resolveFor(records, st.Name); status == models.StatusNotArrived {
				listed = append(listed, st)
			}
		}
	}
	v.sortByFirstName(listed)

	var counts dto.KioskCounts
	for _, st := range listed {
		status, _ := resolveFor(records, st.Name)
		switch status {
		case models.StatusHere:
			counts.Here++
		case models.StatusPickedUp:
			counts.PickedUp++
		default:
			counts.NotHere++
		}
	}
	counts.Total = len(listed)

	view := dto.KioskView{Day: day, Counts: counts, Groups: []dto.KioskGroup{}, Letters: []string{}}
	for _, st := range listed {
		letter := letterOf(st.FirstName())
		if n := len(view.Groups); n == 0 || view.Groups[n-1].Letter != letter {
			view.Groups = append(view.Groups, dto.KioskGroup{Letter: letter})
			view.Letters = append(view.Letters, letter)
		}
		group := &view.Groups[len(view.Groups)-1]
		group.Students = append(group.Students, studentStatus(st, records))
	}
	return view
}

// Daily builds the session dashboard for one weekday: each half-day
// lists only the students scheduled for it, grouped by their assigned
// classroom for that session. A missing assignment excludes the student
// from the session entirely, it does not count them absent.
func (v *ViewService) Daily(students []models.Student, records map[string]models.AttendanceRecord, sel models.Selection, day string) dto.DailyView {
	filtered := filterStudents(students, sel)
	return dto.DailyView{
		Day:     day,
		Weekday: string(sel.Weekday),
		AM:      v.sessionView(filtered, records, sel.Weekday, models.SessionAM),
		PM:      v.sessionView(filtered, records, sel.Weekday, models.SessionPM),
	}
}

func (v *ViewService) sessionView(students []models.Student, records map[string]models.AttendanceRecord, weekday models.Weekday, session models.Session) dto.SessionView {
	byRoom := make(map[string][]models.Student)
	for _, st := range students {
		room := st.ScheduledRoom(weekday, session)
		if room == "" {
			continue
		}
		byRoom[room] = append(byRoom[room], st)
	}

	rooms := make([]string, 0, len(byRoom))
	for room := range byRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	view := dto.SessionView{Session: string(session), Classrooms: []dto.ClassroomGroup{}}
	for _, room := range rooms {
		group := dto.ClassroomGroup{Classroom: room}
		v.sortByFirstName(byRoom[room])
		for _, st := range byRoom[room] {
			entry := studentStatus(st, records)
			// A child picked up no longer counts as here.
			if entry.Status == string(models.StatusHere) {
				group.Here++
			}
			group.Students = append(group.Students, entry)
			group.Total++
		}
		view.Here += group.Here
		view.Total += group.Total
		view.Classrooms = append(view.Classrooms, group)
	}
	return view
}

// FullRoster builds the flat table view: every filtered student in
// enrollment order with their resolved status.
func (v *ViewService) FullRoster(students []models.Student, records map[string]models.AttendanceRecord, sel models.Selection, day string) dto.RosterView {
	filtered := filterStudents(students, sel)
	view := dto.RosterView{Day: day, Students: make([]dto.StudentStatus, 0, len(filtered))}
	for _, st := range filtered {
		view.Students = append(view.Students, studentStatus(st, records))
	}
	return view
}
