package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/service"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// AuditHandler exposes the transition trail.
type AuditHandler struct {
	audit *service.AuditService
	clock *service.Clock
}

// NewAuditHandler creates a new handler.
func NewAuditHandler(audit *service.AuditService, clock *service.Clock) *AuditHandler {
	return &AuditHandler{audit: audit, clock: clock}
}

// List godoc
// @Summary Transition trail for a day
// @Description Paginated list of applied transitions, newest first
// @Tags Audit
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /attendance/events [get]
func (h *AuditHandler) List(c *gin.Context) {
	day := c.DefaultQuery("day", h.clock.Day())
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	events, pagination, err := h.audit.ListByDay(c.Request.Context(), day, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, &pagination)
}
