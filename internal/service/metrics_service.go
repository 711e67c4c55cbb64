package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// Metrics encapsulates Prometheus instrumentation for the service: HTTP
// request timings plus the attendance-specific counters the dashboards
// care about.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	tapsTotal       *prometheus.CounterVec
	tapConflicts    prometheus.Counter
	rosterRefreshes *prometheus.CounterVec
	rosterSize      prometheus.Gauge
	liveViewers     prometheus.Gauge
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	tapsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_taps_total",
		Help: "Applied attendance transitions by action",
	}, []string{"action"})

	tapConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "attendance_tap_conflicts_total",
		Help: "Taps rejected because one was already in flight for the student",
	})

	rosterRefreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_refreshes_total",
		Help: "Roster refresh attempts by outcome",
	}, []string{"outcome"})

	rosterSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_students",
		Help: "Students in the current roster snapshot",
	})

	liveViewers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "live_stream_viewers",
		Help: "Currently connected event-stream viewers",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, tapsTotal, tapConflicts,
		rosterRefreshes, rosterSize, liveViewers, goroutines)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		tapsTotal:       tapsTotal,
		tapConflicts:    tapConflicts,
		rosterRefreshes: rosterRefreshes,
		rosterSize:      rosterSize,
		liveViewers:     liveViewers,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one completed request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// TapApplied counts a successful transition.
func (m *Metrics) TapApplied(action models.Action) {
	if m == nil {
		return
	}
	m.tapsTotal.WithLabelValues(string(action)).Inc()
}

// TapConflict counts a tap rejected by the in-flight guard.
func (m *Metrics) TapConflict() {
	if m == nil {
		return
	}
	m.tapConflicts.Inc()
}

// RosterRefreshed records a refresh outcome and, on success, the
// snapshot size.
func (m *Metrics) RosterRefreshed(outcome string, students int) {
	if m == nil {
		return
	}
	m.rosterRefreshes.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.rosterSize.Set(float64(students))
	}
}

// ViewerConnected and ViewerDisconnected track the live-stream gauge.
func (m *Metrics) ViewerConnected() {
	if m == nil {
		return
	}
	m.liveViewers.Inc()
}

func (m *Metrics) ViewerDisconnected() {
	if m == nil {
		return
	}
	m.liveViewers.Dec()
}
