package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cms-preschool/checkin-api/internal/models"
)

func viewFixture() ([]models.Student, map[string]models.AttendanceRecord) {
	students := []models.Student{
		{Name: "Zoe Park", Campus: "Main", Classroom: "Toddler A", Schedule: map[models.Weekday]models.SessionAssignment{
			models.Monday: {AM: "Toddler A", PM: "Toddler A"},
		}},
		{Name: "Ada Mitchell", Campus: "Main", Classroom: "Toddler A", Schedule: map[models.Weekday]models.SessionAssignment{
			models.Monday: {AM: "Toddler A"},
		}},
		{Name: "Ben Okafor", Campus: "Main", Classroom: "Toddler B", Schedule: map[models.Weekday]models.SessionAssignment{
			models.Monday: {PM: "Toddler B"},
		}},
		{Name: "Carmen Diaz", Campus: "North", Classroom: "Preschool 1", Schedule: map[models.Weekday]models.SessionAssignment{
			models.Monday: {AM: "Preschool 1", PM: "Preschool 1"},
		}},
	}
	records := map[string]models.AttendanceRecord{
		"Ada Mitchell": {Status: models.StatusHere, CheckInTime: "8:05 AM", Campus: "Main", Classroom: "Toddler A"},
		"Zoe Park":     {Status: models.StatusPickedUp, CheckInTime: "8:00 AM", CheckOutTime: "11:30 AM", Campus: "Main", Classroom: "Toddler A"},
	}
	return students, records
}

func mondaySelection() models.Selection {
	return models.NewSelection(models.Monday)
}

func TestKioskViewGroupsAndCounts(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	view := v.Kiosk(students, records, mondaySelection(), false, "2026-03-02")

	assert.Equal(t, 4, view.Counts.Total)
	assert.Equal(t, 1, view.Counts.Here)
	assert.Equal(t, 1, view.Counts.PickedUp)
	assert.Equal(t, 2, view.Counts.NotHere)
	assert.Equal(t, view.Counts.Total, view.Counts.Here+view.Counts.PickedUp+view.Counts.NotHere,
		"status counts partition the filtered set")

	// Sorted by first name and grouped by starting letter.
	require.Equal(t, []string{"A", "B", "C", "Z"}, view.Letters)
	require.Len(t, view.Groups, 4)
	assert.Equal(t, "Ada Mitchell", view.Groups[0].Students[0].Name)
	assert.Equal(t, "Zoe Park", view.Groups[3].Students[0].Name)
	assert.Equal(t, string(models.StatusPickedUp), view.Groups[3].Students[0].Status)
}

func TestKioskViewNotHereOnly(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	view := v.Kiosk(students, records, mondaySelection(), true, "2026-03-02")

	require.Equal(t, []string{"B", "C"}, view.Letters)
	for _, group := range view.Groups {
		for _, st := range group.Students {
			assert.Equal(t, string(models.StatusNotArrived), st.Status)
		}
	}

	// The chips describe the listed set, so narrowing to not-here
	// students zeroes the arrived counters.
	assert.Equal(t, 2, view.Counts.Total)
	assert.Equal(t, 2, view.Counts.NotHere)
	assert.Equal(t, 0, view.Counts.Here)
	assert.Equal(t, 0, view.Counts.PickedUp)
}

func TestKioskViewCampusFilter(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	sel := mondaySelection()
	sel.SetCampus("North")
	view := v.Kiosk(students, records, sel, false, "2026-03-02")

	assert.Equal(t, 1, view.Counts.Total)
	require.Len(t, view.Groups, 1)
	assert.Equal(t, "Carmen Diaz", view.Groups[0].Students[0].Name)
}

func TestDailyViewSessionsAndCounts(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	view := v.Daily(students, records, mondaySelection(), "2026-03-02")

	assert.Equal(t, "Mon", view.Weekday)

	// AM: Ada + Zoe in Toddler A, Carmen in Preschool 1. Ben has no AM
	// assignment and is excluded, not counted absent.
	assert.Equal(t, 3, view.AM.Total)
	assert.Equal(t, 1, view.AM.Here, "picked-up students no longer count as here")
	require.Len(t, view.AM.Classrooms, 2)
	assert.Equal(t, "Preschool 1", view.AM.Classrooms[0].Classroom)
	assert.Equal(t, "Toddler A", view.AM.Classrooms[1].Classroom)
	assert.Equal(t, []string{"Ada Mitchell", "Zoe Park"}, []string{
		view.AM.Classrooms[1].Students[0].Name,
		view.AM.Classrooms[1].Students[1].Name,
	})

	// PM: Zoe, Ben, Carmen are scheduled; Ada is not.
	assert.Equal(t, 3, view.PM.Total)
	assert.Equal(t, 0, view.PM.Here)
	require.Len(t, view.PM.Classrooms, 3)
}

func TestDailyViewClassroomFilter(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	sel := mondaySelection()
	sel.SetCampus("Main")
	sel.SetClassroom("Toddler B")
	view := v.Daily(students, records, sel, "2026-03-02")

	assert.Equal(t, 0, view.AM.Total)
	assert.Equal(t, 1, view.PM.Total)
	require.Len(t, view.PM.Classrooms, 1)
	assert.Equal(t, "Ben Okafor", view.PM.Classrooms[0].Students[0].Name)
}

func TestFullRosterViewKeepsEnrollmentOrder(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	view := v.FullRoster(students, records, mondaySelection(), "2026-03-02")

	require.Len(t, view.Students, 4)
	assert.Equal(t, "Zoe Park", view.Students[0].Name, "full roster keeps enrollment order")
	assert.Equal(t, string(models.StatusPickedUp), view.Students[0].Status)
	assert.Equal(t, "11:30 AM", view.Students[0].CheckOutTime)
	assert.Equal(t, string(models.StatusNotArrived), view.Students[2].Status)
}

func TestLetterOf(t *testing.T) {
	assert.Equal(t, "A", letterOf("ada"))
	assert.Equal(t, "Z", letterOf("Zoe"))
	assert.Equal(t, "#", letterOf("4th"))
	assert.Equal(t, "#", letterOf(""))
}
