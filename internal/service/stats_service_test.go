package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cms-preschool/checkin-api/internal/models"
)

func TestStatsBucketsPartitionExpected(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	view := v.Stats(students, records, mondaySelection(), models.SessionAM, "2026-03-02")

	assert.Equal(t, "AM", view.Session)
	assert.Equal(t, 3, view.Expected, "only students scheduled for the session count")
	assert.Equal(t, 1, view.Here)
	assert.Equal(t, 1, view.PickedUp)
	assert.Equal(t, 1, view.NotHere)
	assert.Equal(t, view.Expected, view.Here+view.PickedUp+view.NotHere)
	assert.Equal(t, 67, view.RatePercent, "2 of 3 arrived, rounded to a whole percent")

	require.Len(t, view.Campuses, 2)
	main := view.Campuses[0]
	assert.Equal(t, "Main", main.Campus)
	assert.Equal(t, 2, main.Expected)
	assert.Equal(t, 100, main.RatePercent)
	require.Len(t, main.Classrooms, 1)
	assert.Equal(t, "Toddler A", main.Classrooms[0].Classroom)

	north := view.Campuses[1]
	assert.Equal(t, "North", north.Campus)
	assert.Equal(t, 1, north.Expected)
	assert.Equal(t, 0, north.RatePercent)
}

func TestStatsBucketsByHomeClassroom(t *testing.T) {
	// The Monday-AM assignment is the Gym, but stats still file the
	// student under their home classroom; the assignment only decides
	// whether they are scheduled at all.
	students := []models.Student{
		{Name: "Ruth Allen", Campus: "Main", Classroom: "Toddler A", Schedule: map[models.Weekday]models.SessionAssignment{
			models.Monday: {AM: "Gym"},
		}},
	}
	v := NewViewService()

	view := v.Stats(students, nil, mondaySelection(), models.SessionAM, "2026-03-02")

	require.Len(t, view.Campuses, 1)
	require.Len(t, view.Campuses[0].Classrooms, 1)
	assert.Equal(t, "Toddler A", view.Campuses[0].Classrooms[0].Classroom)
	assert.Equal(t, 1, view.Campuses[0].Classrooms[0].Expected)
}

func TestStatsPMSession(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	view := v.Stats(students, records, mondaySelection(), models.SessionPM, "2026-03-02")

	// PM: Zoe (picked up), Ben and Carmen (not arrived). Ada is not
	// scheduled and touches no counter.
	assert.Equal(t, 3, view.Expected)
	assert.Equal(t, 0, view.Here)
	assert.Equal(t, 1, view.PickedUp)
	assert.Equal(t, 2, view.NotHere)
	assert.Equal(t, 33, view.RatePercent)
}

func TestStatsEmptySelection(t *testing.T) {
	students, records := viewFixture()
	v := NewViewService()

	sel := mondaySelection()
	sel.SetCampus("Nowhere")
	view := v.Stats(students, records, sel, models.SessionAM, "2026-03-02")

	assert.Equal(t, 0, view.Expected)
	assert.Equal(t, 0, view.RatePercent, "rate is zero when nobody is expected")
	assert.Empty(t, view.Campuses)
}

func TestRatePercentRounding(t *testing.T) {
	assert.Equal(t, 0, ratePercent(0, 0, 0))
	assert.Equal(t, 50, ratePercent(1, 0, 2))
	assert.Equal(t, 67, ratePercent(1, 1, 3))
	assert.Equal(t, 33, ratePercent(1, 0, 3))
	assert.Equal(t, 100, ratePercent(2, 1, 3))
}
