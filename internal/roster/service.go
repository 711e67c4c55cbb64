package roster

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// Service holds the latest roster snapshot and refreshes it from the
// configured source. Refreshes carry a monotonically increasing
// sequence number; a fetch whose sequence is no longer the latest
// issued is discarded, so overlapping refreshes can never roll the
// roster backwards.
type Service struct {
	source Source
	logger *zap.Logger
	now    func() time.Time

	issued atomic.Uint64

	mu        sync.RWMutex
	students  []models.Student
	byName    map[string]models.Student
	fetchedAt time.Time

	watchMu  sync.Mutex
	watchers map[uint64]chan struct{}
	watchSeq uint64
}

func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		logger:   logger,
		now:      time.Now,
		byName:   make(map[string]models.Student),
		watchers: make(map[uint64]chan struct{}),
	}
}

// Refresh fetches a fresh snapshot. On fetch failure the previous
// snapshot stays in place and the error is returned for the caller to
// surface; a stale result (an older refresh finishing late) is dropped
// silently.
func (s *Service) Refresh(ctx context.Context) error {
	seq := s.issued.Add(1)

	students, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("roster refresh failed, keeping previous snapshot",
			zap.Uint64("seq", seq), zap.Error(err))
		return err
	}

	s.mu.Lock()
	// Only the latest issued refresh may apply; a newer one already in
	// flight supersedes this result even before it finishes.
	if seq != s.issued.Load() {
		s.mu.Unlock()
		s.logger.Warn("discarding stale roster snapshot",
			zap.Uint64("seq", seq), zap.Uint64("issued_seq", s.issued.Load()))
		return nil
	}
	s.students = students
	s.byName = make(map[string]models.Student, len(students))
	for _, st := range students {
		s.byName[st.Name] = st
	}
	s.fetchedAt = s.now()
	s.mu.Unlock()

	s.logger.Info("roster snapshot applied",
		zap.Uint64("seq", seq), zap.Int("students", len(students)))
	s.notify()
	return nil
}

// Students returns the snapshot in enrollment order.
func (s *Service) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Student looks a child up by full name, the roster's identity key.
func (s *Service) Student(name string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.byName[name]
	return st, ok
}

// FetchedAt reports when the current snapshot was applied; zero before
// the first successful refresh.
func (s *Service) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Campuses returns the sorted unique campus names, for filter dropdowns.
func (s *Service) Campuses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uniqueSorted(s.students, func(st models.Student) string { return st.Campus })
}

// Classrooms returns the sorted unique classrooms, optionally scoped to
// one campus (models.FilterAll or empty means all campuses).
func (s *Service) Classrooms(campus string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uniqueSorted(s.students, func(st models.Student) string {
		if campus != "" && campus != models.FilterAll && st.Campus != campus {
			return ""
		}
		return st.Classroom
	})
}

// Watch registers for change notifications. The channel receives a
// signal after each applied refresh; pending signals are collapsed.
func (s *Service) Watch() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.watchMu.Lock()
	s.watchSeq++
	id := s.watchSeq
	s.watchers[id] = ch
	s.watchMu.Unlock()

	cancel := func() {
		s.watchMu.Lock()
		delete(s.watchers, id)
		s.watchMu.Unlock()
	}
	return ch, cancel
}

func (s *Service) notify() {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func uniqueSorted(students []models.Student, pick func(models.Student) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, st := range students {
		v := pick(st)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
