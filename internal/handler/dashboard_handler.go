package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/service"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// DashboardHandler serves the staff dashboard views.
type DashboardHandler struct {
	dashboards *service.DashboardService
	clock      *service.Clock
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(dashboards *service.DashboardService, clock *service.Clock) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, clock: clock}
}

// Daily godoc
// @Summary Daily session dashboard
// @Description AM and PM classroom groupings for one weekday
// @Tags Dashboard
// @Produce json
// @Param campus query string false "Campus filter"
// @Param classroom query string false "Classroom filter"
// @Param weekday query string false "School day (Mon..Fri), defaults to today"
// @Success 200 {object} response.Envelope
// @Router /dashboard/daily [get]
func (h *DashboardHandler) Daily(c *gin.Context) {
	sel := selectionFromQuery(c, h.clock)
	view, err := h.dashboards.Daily(c.Request.Context(), sel)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Roster godoc
// @Summary Full roster table
// @Description Every filtered student with their resolved status
// @Tags Dashboard
// @Produce json
// @Param campus query string false "Campus filter"
// @Param classroom query string false "Classroom filter"
// @Success 200 {object} response.Envelope
// @Router /dashboard/roster [get]
func (h *DashboardHandler) Roster(c *gin.Context) {
	sel := selectionFromQuery(c, h.clock)
	view, err := h.dashboards.FullRoster(c.Request.Context(), sel)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Stats godoc
// @Summary Attendance statistics
// @Description Campus and classroom buckets for one weekday session
// @Tags Dashboard
// @Produce json
// @Param campus query string false "Campus filter"
// @Param classroom query string false "Classroom filter"
// @Param weekday query string false "School day (Mon..Fri), defaults to today"
// @Param session query string false "AM or PM, defaults to AM"
// @Success 200 {object} response.Envelope
// @Router /stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	sel := selectionFromQuery(c, h.clock)
	view, err := h.dashboards.Stats(c.Request.Context(), sel, sessionFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}
