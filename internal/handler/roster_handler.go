package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
	"github.com/cms-preschool/checkin-api/internal/roster"
	"github.com/cms-preschool/checkin-api/internal/service"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// RosterHandler exposes the enrollment snapshot and its refresh.
type RosterHandler struct {
	roster  *roster.Service
	metrics *service.Metrics
}

// NewRosterHandler creates a new handler.
func NewRosterHandler(rosterSvc *roster.Service, metrics *service.Metrics) *RosterHandler {
	return &RosterHandler{roster: rosterSvc, metrics: metrics}
}

// Get godoc
// @Summary Current roster snapshot
// @Description Students with schedules plus campus/classroom option lists
// @Tags Roster
// @Produce json
// @Param campus query string false "Scope classroom options to one campus"
// @Success 200 {object} response.Envelope
// @Router /roster [get]
func (h *RosterHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.info(c.Query("campus")), nil)
}

// Refresh godoc
// @Summary Refresh the roster
// @Description Re-fetches the roster from its source
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /roster/refresh [post]
func (h *RosterHandler) Refresh(c *gin.Context) {
	if err := h.roster.Refresh(c.Request.Context()); err != nil {
		h.metrics.RosterRefreshed("failure", 0)
		response.Error(c, err)
		return
	}
	info := h.info(c.Query("campus"))
	h.metrics.RosterRefreshed("success", len(info.Students))
	response.JSON(c, http.StatusOK, info, nil)
}

func (h *RosterHandler) info(campus string) dto.RosterInfo {
	students := h.roster.Students()
	info := dto.RosterInfo{
		Students:   make([]dto.RosterStudent, 0, len(students)),
		Campuses:   h.roster.Campuses(),
		Classrooms: h.roster.Classrooms(campus),
	}
	if fetched := h.roster.FetchedAt(); !fetched.IsZero() {
		info.FetchedAt = fetched.Format(time.RFC3339)
	}
	for _, st := range students {
		info.Students = append(info.Students, dto.RosterStudent{
			Name:      st.Name,
			Campus:    st.Campus,
			Classroom: st.Classroom,
			Schedule:  scheduleMap(st),
		})
	}
	return info
}

func scheduleMap(st models.Student) map[string]string {
	out := make(map[string]string)
	for _, day := range models.Weekdays {
		assignment, ok := st.Schedule[day]
		if !ok {
			continue
		}
		if assignment.AM != "" {
			out[string(day)+"AM"] = assignment.AM
		}
		if assignment.PM != "" {
			out[string(day)+"PM"] = assignment.PM
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
