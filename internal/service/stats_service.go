package service

import (
	"math"
	"sort"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
)

// Stats builds the attendance statistics for one (weekday, session):
// campus and classroom buckets where here/pickedUp/notHere partition
// the expected count. The session assignment only gates whether a
// student is scheduled at all; counted students land under their home
// classroom, not the room assigned for the session.
func (v *ViewService) Stats(students []models.Student, records map[string]models.AttendanceRecord, sel models.Selection, session models.Session, day string) dto.StatsView {
	filtered := filterStudents(students, sel)

	type bucket struct {
		expected, here, pickedUp, notHere int
	}
	campuses := make(map[string]map[string]*bucket)

	for _, st := range filtered {
		if st.ScheduledRoom(sel.Weekday, session) == "" {
			continue
		}
		rooms := campuses[st.Campus]
		if rooms == nil {
			rooms = make(map[string]*bucket)
			campuses[st.Campus] = rooms
		}
		b := rooms[st.Classroom]
		if b == nil {
			b = &bucket{}
			rooms[st.Classroom] = b
		}

		b.expected++
		status, _ := resolveFor(records, st.Name)
		switch status {
		case models.StatusHere:
			b.here++
		case models.StatusPickedUp:
			b.pickedUp++
		default:
			b.notHere++
		}
	}

	view := dto.StatsView{
		Day:      day,
		Weekday:  string(sel.Weekday),
		Session:  string(session),
		Campuses: []dto.CampusStats{},
	}

	campusNames := make([]string, 0, len(campuses))
	for name := range campuses {
		campusNames = append(campusNames, name)
	}
	sort.Strings(campusNames)

	for _, campusName := range campusNames {
		rooms := campuses[campusName]
		campus := dto.CampusStats{Campus: campusName, Classrooms: []dto.ClassroomStats{}}

		roomNames := make([]string, 0, len(rooms))
		for name := range rooms {
			roomNames = append(roomNames, name)
		}
		sort.Strings(roomNames)

		for _, roomName := range roomNames {
			b := rooms[roomName]
			campus.Classrooms = append(campus.Classrooms, dto.ClassroomStats{
				Classroom:   roomName,
				Expected:    b.expected,
				Here:        b.here,
				PickedUp:    b.pickedUp,
				NotHere:     b.notHere,
				RatePercent: ratePercent(b.here, b.pickedUp, b.expected),
			})
			campus.Expected += b.expected
			campus.Here += b.here
			campus.PickedUp += b.pickedUp
			campus.NotHere += b.notHere
		}
		campus.RatePercent = ratePercent(campus.Here, campus.PickedUp, campus.Expected)

		view.Expected += campus.Expected
		view.Here += campus.Here
		view.PickedUp += campus.PickedUp
		view.NotHere += campus.NotHere
		view.Campuses = append(view.Campuses, campus)
	}
	view.RatePercent = ratePercent(view.Here, view.PickedUp, view.Expected)
	return view
}

// ratePercent is the attendance rate: arrived students (still here or
// already picked up) over expected, as a whole percentage.
func ratePercent(here, pickedUp, expected int) int {
	if expected == 0 {
		return 0
	}
	return int(math.Round(float64(here+pickedUp) / float64(expected) * 100))
}
