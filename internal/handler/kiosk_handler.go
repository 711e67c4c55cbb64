package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/service"
	appErrors "github.com/cms-preschool/checkin-api/pkg/errors"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// KioskHandler serves the check-in screen: the letter-grouped student
// list and the tap endpoint that advances a student's status.
type KioskHandler struct {
	dashboards  *service.DashboardService
	transitions *service.TransitionService
	metrics     *service.Metrics
	clock       *service.Clock
}

// NewKioskHandler creates a new handler.
func NewKioskHandler(dashboards *service.DashboardService, transitions *service.TransitionService, metrics *service.Metrics, clock *service.Clock) *KioskHandler {
	return &KioskHandler{dashboards: dashboards, transitions: transitions, metrics: metrics, clock: clock}
}

// List godoc
// @Summary Kiosk student list
// @Description Filtered students grouped by first letter with status counts
// @Tags Kiosk
// @Produce json
// @Param campus query string false "Campus filter"
// @Param classroom query string false "Classroom filter"
// @Param notHereOnly query bool false "Only students not yet here"
// @Success 200 {object} response.Envelope
// @Router /kiosk [get]
func (h *KioskHandler) List(c *gin.Context) {
	sel := selectionFromQuery(c, h.clock)
	view, err := h.dashboards.Kiosk(c.Request.Context(), sel, notHereOnlyFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Tap godoc
// @Summary Advance a student's status
// @Description Cycles NotArrived to Here to PickedUp and back to NotArrived
// @Tags Kiosk
// @Accept json
// @Produce json
// @Param payload body dto.TapRequest true "Tap payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /kiosk/tap [post]
func (h *KioskHandler) Tap(c *gin.Context) {
	var req dto.TapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid tap payload"))
		return
	}

	res, err := h.transitions.Tap(c.Request.Context(), req.Student)
	if err != nil {
		if errors.Is(err, appErrors.ErrTapInFlight) {
			h.metrics.TapConflict()
		}
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}
