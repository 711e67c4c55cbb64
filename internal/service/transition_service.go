package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
	"github.com/cms-preschool/checkin-api/internal/store"
	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

// RosterLookup resolves a student by full name from the current roster
// snapshot.
type RosterLookup interface {
	Student(name string) (models.Student, bool)
}

// AuditRecorder appends a transition to the audit trail. Recording is
// best-effort; implementations must not fail the calling tap.
type AuditRecorder interface {
	Record(ctx context.Context, event models.TransitionEvent)
}

// TransitionService applies the tap cycle: NotArrived -> Here ->
// PickedUp -> record deleted. One tap per student may be in flight at a
// time; concurrent taps from other devices race last-write-wins, which
// is the accepted model for this system.
type TransitionService struct {
	store   store.Store
	roster  RosterLookup
	audit   AuditRecorder
	clock   *Clock
	logger  *zap.Logger
	metrics *Metrics

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewTransitionService(st store.Store, roster RosterLookup, audit AuditRecorder, clock *Clock, metrics *Metrics, logger *zap.Logger) *TransitionService {
	return &TransitionService{
		store:   st,
		roster:  roster,
		audit:   audit,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
		pending: make(map[string]struct{}),
	}
}

// Tap advances the named student to their next status for today.
func (s *TransitionService) Tap(ctx context.Context, studentName string) (dto.TapResponse, error) {
	studentName = strings.TrimSpace(studentName)
	if studentName == "" {
		return dto.TapResponse{}, apperrors.ErrValidation
	}

	student, ok := s.roster.Student(studentName)
	if !ok {
		return dto.TapResponse{}, apperrors.ErrUnknownStudent
	}

	day := s.clock.Day()
	key := day + "/" + studentName
	s.mu.Lock()
	if _, busy := s.pending[key]; busy {
		s.mu.Unlock()
		return dto.TapResponse{}, apperrors.ErrTapInFlight
	}
	s.pending[key] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()
	}()

	snap, err := s.store.Snapshot(ctx, day)
	if err != nil {
		return dto.TapResponse{}, err
	}

	var current *models.AttendanceRecord
	if rec, found := snap[studentName]; found {
		current = &rec
	}
	from := models.ResolveStatus(current)
	action := models.NextAction(from)
	stamp := models.ClockTime(s.clock.Now())

	var next models.AttendanceRecord
	var to models.Status
	switch action {
	case models.ActionCheckIn:
		next = models.AttendanceRecord{
			Status:      models.StatusHere,
			CheckInTime: stamp,
			Campus:      student.Campus,
			Classroom:   student.Classroom,
		}
		to = models.StatusHere
		err = s.store.Write(ctx, day, studentName, next)
	case models.ActionCheckOut:
		next = *current
		next.Status = models.StatusPickedUp
		next.CheckOutTime = stamp
		to = models.StatusPickedUp
		err = s.store.Write(ctx, day, studentName, next)
	case models.ActionReset:
		to = models.StatusNotArrived
		err = s.store.Delete(ctx, day, studentName)
	}
	if err != nil {
		// Visible state is unchanged, the caller may tap again.
		s.logger.Error("tap write failed",
			zap.String("student", studentName),
			zap.String("action", string(action)),
			zap.Error(err))
		return dto.TapResponse{}, err
	}

	if s.metrics != nil {
		s.metrics.TapApplied(action)
	}
	s.logger.Info("attendance transition applied",
		zap.String("day", day),
		zap.String("student", studentName),
		zap.String("action", string(action)),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	if s.audit != nil {
		s.audit.Record(ctx, models.TransitionEvent{
			Day:        day,
			Student:    studentName,
			Action:     action,
			FromStatus: from,
			ToStatus:   to,
			Campus:     student.Campus,
			Classroom:  student.Classroom,
			OccurredAt: s.clock.Now(),
		})
	}

	return dto.TapResponse{
		Student:      studentName,
		Action:       string(action),
		Status:       string(to),
		CheckInTime:  next.CheckInTime,
		CheckOutTime: next.CheckOutTime,
		Day:          day,
	}, nil
}
