package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/models"
	"github.com/cms-preschool/checkin-api/internal/store"
	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

// RosterSnapshot is what the feed needs from the roster service: the
// current student list and a change signal.
type RosterSnapshot interface {
	Students() []models.Student
	Watch() (<-chan struct{}, func())
}

// ViewKind names a live-streamable view.
type ViewKind string

const (
	ViewKindDaily  ViewKind = "daily"
	ViewKindRoster ViewKind = "roster"
	ViewKindStats  ViewKind = "stats"
	ViewKindKiosk  ViewKind = "kiosk"
)

// ParseViewKind normalises a view token.
func ParseViewKind(raw string) (ViewKind, bool) {
	switch ViewKind(strings.ToLower(strings.TrimSpace(raw))) {
	case ViewKindDaily:
		return ViewKindDaily, true
	case ViewKindRoster:
		return ViewKindRoster, true
	case ViewKindStats:
		return ViewKindStats, true
	case ViewKindKiosk:
		return ViewKindKiosk, true
	default:
		return "", false
	}
}

// StreamRequest is one viewer's subscription: which view to derive and
// the selection it is pinned to for the life of the connection.
type StreamRequest struct {
	View        ViewKind
	Selection   models.Selection
	NotHereOnly bool
}

// StreamPayload is one pushed update.
type StreamPayload struct {
	View ViewKind
	Data any
}

// FeedService fans live updates out to connected viewers. Each stream
// recomputes its view from scratch on every store emission and on every
// roster refresh; slow viewers are coalesced to the newest payload.
type FeedService struct {
	store   store.Store
	roster  RosterSnapshot
	views   *ViewService
	clock   *Clock
	logger  *zap.Logger
	metrics *Metrics
}

func NewFeedService(st store.Store, roster RosterSnapshot, views *ViewService, clock *Clock, metrics *Metrics, logger *zap.Logger) *FeedService {
	return &FeedService{
		store:   st,
		roster:  roster,
		views:   views,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// Stream opens a live feed for today's records. The first payload
// arrives as soon as the store delivers its initial snapshot. The
// returned cancel func must be called when the viewer disconnects.
func (s *FeedService) Stream(ctx context.Context, req StreamRequest) (<-chan StreamPayload, func(), error) {
	if _, ok := ParseViewKind(string(req.View)); !ok {
		return nil, nil, apperrors.Clone(apperrors.ErrValidation, "unknown view "+string(req.View))
	}

	day := s.clock.Day()
	records, storeCancel, err := s.store.Subscribe(ctx, day)
	if err != nil {
		return nil, nil, err
	}
	rosterChanged, rosterCancel := s.roster.Watch()

	out := make(chan StreamPayload, 1)
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			storeCancel()
			rosterCancel()
		})
	}

	s.metrics.ViewerConnected()
	go func() {
		defer close(out)
		defer cancel()
		defer s.metrics.ViewerDisconnected()

		var latest map[string]models.AttendanceRecord
		seeded := false
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-records:
				if !ok {
					return
				}
				latest = m
				seeded = true
			case _, ok := <-rosterChanged:
				if !ok {
					return
				}
				if !seeded {
					// No store snapshot yet; the initial emission will
					// carry the roster change along.
					continue
				}
			}
			pushPayload(out, StreamPayload{View: req.View, Data: s.derive(req, day, latest)})
		}
	}()

	return out, cancel, nil
}

func (s *FeedService) derive(req StreamRequest, day string, records map[string]models.AttendanceRecord) any {
	students := s.roster.Students()
	switch req.View {
	case ViewKindRoster:
		return s.views.FullRoster(students, records, req.Selection, day)
	case ViewKindStats:
		session := models.SessionAM
		if req.Selection.Session == models.SessionFilterPM {
			session = models.SessionPM
		}
		return s.views.Stats(students, records, req.Selection, session, day)
	case ViewKindKiosk:
		return s.views.Kiosk(students, records, req.Selection, req.NotHereOnly, day)
	default:
		return s.views.Daily(students, records, req.Selection, day)
	}
}

// pushPayload keeps only the newest payload for a slow viewer.
func pushPayload(ch chan StreamPayload, p StreamPayload) {
	select {
	case ch <- p:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- p:
		default:
		}
	}
}
