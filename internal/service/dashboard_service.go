package service

import (
	"context"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
	"github.com/cms-preschool/checkin-api/internal/store"
)

// RosterDirectory is the read side of the roster the dashboards need.
type RosterDirectory interface {
	Students() []models.Student
}

// DashboardService answers one-shot view requests: it pairs the current
// store snapshot with the current roster and hands both to the view
// derivation. Live consumers use FeedService instead.
type DashboardService struct {
	store  store.Store
	roster RosterDirectory
	views  *ViewService
	clock  *Clock
}

func NewDashboardService(st store.Store, roster RosterDirectory, views *ViewService, clock *Clock) *DashboardService {
	return &DashboardService{store: st, roster: roster, views: views, clock: clock}
}

func (s *DashboardService) snapshot(ctx context.Context) (string, []models.Student, map[string]models.AttendanceRecord, error) {
	day := s.clock.Day()
	records, err := s.store.Snapshot(ctx, day)
	if err != nil {
		return "", nil, nil, err
	}
	return day, s.roster.Students(), records, nil
}

// Kiosk returns the check-in screen list for today.
func (s *DashboardService) Kiosk(ctx context.Context, sel models.Selection, notHereOnly bool) (dto.KioskView, error) {
	day, students, records, err := s.snapshot(ctx)
	if err != nil {
		return dto.KioskView{}, err
	}
	return s.views.Kiosk(students, records, sel, notHereOnly, day), nil
}

// Daily returns today's session dashboard.
func (s *DashboardService) Daily(ctx context.Context, sel models.Selection) (dto.DailyView, error) {
	day, students, records, err := s.snapshot(ctx)
	if err != nil {
		return dto.DailyView{}, err
	}
	return s.views.Daily(students, records, sel, day), nil
}

// FullRoster returns today's flat roster table.
func (s *DashboardService) FullRoster(ctx context.Context, sel models.Selection) (dto.RosterView, error) {
	day, students, records, err := s.snapshot(ctx)
	if err != nil {
		return dto.RosterView{}, err
	}
	return s.views.FullRoster(students, records, sel, day), nil
}

// Stats returns today's statistics for one session.
func (s *DashboardService) Stats(ctx context.Context, sel models.Selection, session models.Session) (dto.StatsView, error) {
	day, students, records, err := s.snapshot(ctx)
	if err != nil {
		return dto.StatsView{}, err
	}
	return s.views.Stats(students, records, sel, session, day), nil
}
