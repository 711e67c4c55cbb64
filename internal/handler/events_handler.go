package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/service"
	appErrors "github.com/cms-preschool/checkin-api/pkg/errors"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// EventsHandler serves the live update stream over SSE. Each connection
// pins its view and selection at connect time; a viewer changing
// filters opens a new stream.
type EventsHandler struct {
	feed  *service.FeedService
	clock *service.Clock
}

// NewEventsHandler creates a new handler.
func NewEventsHandler(feed *service.FeedService, clock *service.Clock) *EventsHandler {
	return &EventsHandler{feed: feed, clock: clock}
}

// Stream godoc
// @Summary Live view updates
// @Description Server-sent events; each event carries the full recomputed view
// @Tags Events
// @Produce text/event-stream
// @Param view query string false "daily, roster, stats or kiosk (default daily)"
// @Param campus query string false "Campus filter"
// @Param classroom query string false "Classroom filter"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} response.Envelope
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	view, ok := service.ParseViewKind(c.DefaultQuery("view", string(service.ViewKindDaily)))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown view "+c.Query("view")))
		return
	}

	req := service.StreamRequest{
		View:        view,
		Selection:   selectionFromQuery(c, h.clock),
		NotHereOnly: notHereOnlyFromQuery(c),
	}

	ch, cancel, err := h.feed.Stream(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(io.Writer) bool {
		select {
		case payload, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent(string(payload.View), payload.Data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
