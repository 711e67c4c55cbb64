package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionDefaults(t *testing.T) {
	sel := NewSelection(Wednesday)
	assert.Equal(t, FilterAll, sel.Campus)
	assert.Equal(t, FilterAll, sel.Classroom)
	assert.Equal(t, Wednesday, sel.Weekday)
	assert.Equal(t, SessionFilterAll, sel.Session)
	assert.Equal(t, ViewDaily, sel.ViewMode)
}

func TestSetCampusResetsClassroom(t *testing.T) {
	sel := NewSelection(Monday)
	sel.SetCampus("Main")
	sel.SetClassroom("Toddler A")

	sel.SetCampus("North")
	assert.Equal(t, "North", sel.Campus)
	assert.Equal(t, FilterAll, sel.Classroom, "classrooms belong to a campus")

	// Re-selecting the same campus keeps the classroom.
	sel.SetClassroom("Preschool 1")
	sel.SetCampus("North")
	assert.Equal(t, "Preschool 1", sel.Classroom)

	// Empty means All.
	sel.SetCampus("")
	assert.Equal(t, FilterAll, sel.Campus)
	assert.Equal(t, FilterAll, sel.Classroom)
}

func TestMatchesStudent(t *testing.T) {
	st := Student{Name: "Ada Mitchell", Campus: "Main", Classroom: "Toddler A"}

	sel := NewSelection(Monday)
	assert.True(t, sel.MatchesStudent(st))

	sel.SetCampus("Main")
	assert.True(t, sel.MatchesStudent(st))

	sel.SetClassroom("Toddler B")
	assert.False(t, sel.MatchesStudent(st))

	sel.SetCampus("North")
	assert.False(t, sel.MatchesStudent(st))
}

func TestStudentFirstName(t *testing.T) {
	assert.Equal(t, "Ada", Student{Name: "Ada Mitchell"}.FirstName())
	assert.Equal(t, "Ada", Student{Name: "  Ada Mitchell Jr"}.FirstName())
	assert.Equal(t, "Cher", Student{Name: "Cher"}.FirstName())
	assert.Equal(t, "", Student{Name: ""}.FirstName())
}
