package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/models"
)

type fakeAuditRepo struct {
	inserted  []models.TransitionEvent
	insertErr error
	listed    []models.TransitionEvent
	total     int
}

func (f *fakeAuditRepo) Insert(_ context.Context, event models.TransitionEvent) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, event)
	return nil
}

func (f *fakeAuditRepo) ListByDay(context.Context, string, int, int) ([]models.TransitionEvent, int, error) {
	return f.listed, f.total, nil
}

func TestRecordAssignsIDAndSwallowsFailure(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	svc.Record(context.Background(), models.TransitionEvent{Student: "Ada Mitchell", Action: models.ActionCheckIn})
	require.Len(t, repo.inserted, 1)
	assert.NotEmpty(t, repo.inserted[0].ID)

	// A failing insert must not panic or propagate.
	repo.insertErr = errors.New("db down")
	svc.Record(context.Background(), models.TransitionEvent{Student: "Ada Mitchell"})
	assert.Len(t, repo.inserted, 1)
}

func TestListByDayNormalisesPaging(t *testing.T) {
	repo := &fakeAuditRepo{
		listed: []models.TransitionEvent{{
			ID:         "ev-1",
			Day:        "2026-03-02",
			Student:    "Ada Mitchell",
			Action:     models.ActionCheckIn,
			FromStatus: models.StatusNotArrived,
			ToStatus:   models.StatusHere,
			OccurredAt: time.Date(2026, 3, 2, 8, 5, 0, 0, time.UTC),
		}},
		total: 1,
	}
	svc := NewAuditService(repo, zap.NewNop())

	events, pagination, err := svc.ListByDay(context.Background(), "2026-03-02", 0, -5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "check-in", events[0].Action)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 50, pagination.PageSize)
	assert.Equal(t, 1, pagination.TotalCount)
}
