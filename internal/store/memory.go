package store

import (
	"context"
	"sync"

	"github.com/cms-preschool/checkin-api/internal/models"
)

// MemoryStore keeps attendance records in process memory. It serves
// development and single-node deployments where Redis is not configured,
// and it backs the service-layer tests.
type MemoryStore struct {
	mu   sync.Mutex
	days map[string]map[string]models.AttendanceRecord
	subs map[string][]*memorySub
}

type memorySub struct {
	ch     chan map[string]models.AttendanceRecord
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		days: make(map[string]map[string]models.AttendanceRecord),
		subs: make(map[string][]*memorySub),
	}
}

func (s *MemoryStore) Snapshot(_ context.Context, day string) (map[string]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.days[day]), nil
}

func (s *MemoryStore) Write(_ context.Context, day, student string, rec models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.days[day]
	if recs == nil {
		recs = make(map[string]models.AttendanceRecord)
		s.days[day] = recs
	}
	recs[student] = rec
	s.broadcastLocked(day)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, day, student string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recs := s.days[day]; recs != nil {
		delete(recs, student)
	}
	s.broadcastLocked(day)
	return nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, day string) (<-chan map[string]models.AttendanceRecord, func(), error) {
	sub := &memorySub{ch: make(chan map[string]models.AttendanceRecord, 1)}
	done := make(chan struct{})

	s.mu.Lock()
	s.subs[day] = append(s.subs[day], sub)
	sub.push(cloneRecords(s.days[day]))
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			s.mu.Lock()
			defer s.mu.Unlock()
			list := s.subs[day]
			for i, candidate := range list {
				if candidate == sub {
					s.subs[day] = append(list[:i], list[i+1:]...)
					break
				}
			}
			sub.closed = true
			close(sub.ch)
		})
	}

	if ctx != nil && ctx.Done() != nil {
		// done releases the watcher when the subscriber cancels
		// explicitly under a context that never gets cancelled.
		go func() {
			select {
			case <-ctx.Done():
				cancel()
			case <-done:
			}
		}()
	}
	return sub.ch, cancel, nil
}

// broadcastLocked fans the day's full map out to every subscriber.
// Caller holds s.mu, so pushes never race with each other.
func (s *MemoryStore) broadcastLocked(day string) {
	if len(s.subs[day]) == 0 {
		return
	}
	snap := cloneRecords(s.days[day])
	for _, sub := range s.subs[day] {
		sub.push(snap)
	}
}

// push replaces any pending emission with the latest map, so a slow
// consumer only ever sees the newest snapshot.
func (sub *memorySub) push(m map[string]models.AttendanceRecord) {
	if sub.closed {
		return
	}
	select {
	case sub.ch <- m:
	default:
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- m:
		default:
		}
	}
}
