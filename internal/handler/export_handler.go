package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/service"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// ExportHandler serves downloadable roster files.
type ExportHandler struct {
	dashboards *service.DashboardService
	exports    *service.ExportService
	clock      *service.Clock
}

// NewExportHandler creates a new handler.
func NewExportHandler(dashboards *service.DashboardService, exports *service.ExportService, clock *service.Clock) *ExportHandler {
	return &ExportHandler{dashboards: dashboards, exports: exports, clock: clock}
}

// RosterCSV godoc
// @Summary Roster export (CSV)
// @Description Today's full roster with statuses as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {string} string "csv file"
// @Router /exports/roster.csv [get]
func (h *ExportHandler) RosterCSV(c *gin.Context) {
	view, err := h.dashboards.FullRoster(c.Request.Context(), selectionFromQuery(c, h.clock))
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.exports.RosterCSV(view)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "roster-"+view.Day+".csv"))
	c.Data(http.StatusOK, "text/csv", data)
}

// RosterPDF godoc
// @Summary Roster export (PDF)
// @Description Today's full roster with statuses as PDF
// @Tags Exports
// @Produce application/pdf
// @Success 200 {string} string "pdf file"
// @Router /exports/roster.pdf [get]
func (h *ExportHandler) RosterPDF(c *gin.Context) {
	view, err := h.dashboards.FullRoster(c.Request.Context(), selectionFromQuery(c, h.clock))
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.exports.RosterPDF(view)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "roster-"+view.Day+".pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
