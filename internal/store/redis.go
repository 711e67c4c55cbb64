package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/models"
	apperrors "github.com/cms-preschool/checkin-api/pkg/errors"
)

// RedisStore keeps each day's records in a Redis hash keyed by student
// name, with a pub/sub channel per day carrying change notifications.
// Notifications are fire-and-forget; subscribers re-read the full hash
// on every notification, so a dropped message is healed by the next one.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func dayKey(day string) string     { return "attendance:" + day }
func dayChannel(day string) string { return "attendance:" + day + ":changed" }

func (s *RedisStore) Snapshot(ctx context.Context, day string) (map[string]models.AttendanceRecord, error) {
	fields, err := s.client.HGetAll(ctx, dayKey(day)).Result()
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	recs := make(map[string]models.AttendanceRecord, len(fields))
	for student, raw := range fields {
		var rec models.AttendanceRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			s.logger.Warn("skipping undecodable attendance record",
				zap.String("day", day),
				zap.String("student", student),
				zap.Error(err))
			continue
		}
		recs[student] = rec
	}
	return recs, nil
}

func (s *RedisStore) Write(ctx context.Context, day, student string, rec models.AttendanceRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal attendance record: %w", err)
	}
	if err := s.client.HSet(ctx, dayKey(day), student, raw).Err(); err != nil {
		return apperrors.ErrStoreUnavailable.WithError(err)
	}
	s.notify(ctx, day)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, day, student string) error {
	if err := s.client.HDel(ctx, dayKey(day), student).Err(); err != nil {
		return apperrors.ErrStoreUnavailable.WithError(err)
	}
	s.notify(ctx, day)
	return nil
}

func (s *RedisStore) notify(ctx context.Context, day string) {
	if err := s.client.Publish(ctx, dayChannel(day), day).Err(); err != nil {
		s.logger.Warn("failed to publish attendance change", zap.String("day", day), zap.Error(err))
	}
}

func (s *RedisStore) Subscribe(ctx context.Context, day string) (<-chan map[string]models.AttendanceRecord, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	subCtx, stop := context.WithCancel(ctx)

	pubsub := s.client.Subscribe(subCtx, dayChannel(day))
	if _, err := pubsub.Receive(subCtx); err != nil {
		stop()
		return nil, nil, apperrors.ErrStoreUnavailable.WithError(err)
	}

	out := make(chan map[string]models.AttendanceRecord, 1)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			stop()
			_ = pubsub.Close()
		})
	}

	go func() {
		defer close(out)
		defer cancel()

		if snap, err := s.Snapshot(subCtx, day); err == nil {
			emit(out, snap)
		} else {
			s.logger.Warn("initial attendance snapshot failed", zap.String("day", day), zap.Error(err))
		}

		msgs := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				snap, err := s.Snapshot(subCtx, day)
				if err != nil {
					// Consumers keep their last known map; the next
					// notification triggers another read.
					s.logger.Warn("attendance re-read failed", zap.String("day", day), zap.Error(err))
					continue
				}
				emit(out, snap)
			}
		}
	}()

	return out, cancel, nil
}

// emit coalesces like the in-memory store: the single-slot buffer always
// holds the newest snapshot.
func emit(ch chan map[string]models.AttendanceRecord, m map[string]models.AttendanceRecord) {
	select {
	case ch <- m:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- m:
		default:
		}
	}
}
