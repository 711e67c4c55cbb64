// Package handler wires HTTP endpoints to the services. Every endpoint
// speaks the shared response envelope; the selection a view uses is
// rebuilt from query parameters on each request.
package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/models"
	"github.com/cms-preschool/checkin-api/internal/service"
)

// selectionFromQuery builds the filter state for one request. Defaults:
// everything visible, today's school day (weekends read as Monday).
func selectionFromQuery(c *gin.Context, clock *service.Clock) models.Selection {
	sel := models.NewSelection(clock.SchoolDay())
	sel.SetCampus(c.Query("campus"))
	sel.SetClassroom(c.Query("classroom"))
	if wd, ok := models.ParseWeekday(c.Query("weekday")); ok {
		sel.Weekday = wd
	}
	sel.Session = models.ParseSessionFilter(c.Query("session"))
	if strings.EqualFold(c.Query("viewMode"), string(models.ViewFullRoster)) {
		sel.ViewMode = models.ViewFullRoster
	}
	return sel
}

func notHereOnlyFromQuery(c *gin.Context) bool {
	switch strings.ToLower(c.Query("notHereOnly")) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func sessionFromQuery(c *gin.Context) models.Session {
	if session, ok := models.ParseSession(c.Query("session")); ok {
		return session
	}
	return models.SessionAM
}
