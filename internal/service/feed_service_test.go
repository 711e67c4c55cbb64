package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cms-preschool/checkin-api/internal/dto"
	"github.com/cms-preschool/checkin-api/internal/models"
	"github.com/cms-preschool/checkin-api/internal/store"
)

type fakeRosterFeed struct {
	students []models.Student
	changed  chan struct{}
}

func (f *fakeRosterFeed) Students() []models.Student { return f.students }

func (f *fakeRosterFeed) Watch() (<-chan struct{}, func()) {
	return f.changed, func() {}
}

func newFeedFixture() (*FeedService, *store.MemoryStore, *fakeRosterFeed) {
	students, _ := viewFixture()
	st := store.NewMemoryStore()
	roster := &fakeRosterFeed{students: students, changed: make(chan struct{}, 1)}
	clock := testClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	feed := NewFeedService(st, roster, NewViewService(), clock, nil, zap.NewNop())
	return feed, st, roster
}

func nextPayload(t *testing.T, ch <-chan StreamPayload) StreamPayload {
	t.Helper()
	select {
	case p, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return p
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stream payload")
		return StreamPayload{}
	}
}

func TestStreamPushesInitialAndUpdatedViews(t *testing.T) {
	feed, st, _ := newFeedFixture()
	ctx := context.Background()

	ch, cancel, err := feed.Stream(ctx, StreamRequest{
		View:      ViewKindKiosk,
		Selection: mondaySelection(),
	})
	require.NoError(t, err)
	defer cancel()

	initial := nextPayload(t, ch)
	kiosk, ok := initial.Data.(dto.KioskView)
	require.True(t, ok)
	assert.Equal(t, 4, kiosk.Counts.NotHere)

	require.NoError(t, st.Write(ctx, "2026-03-02", "Ada Mitchell",
		models.AttendanceRecord{Status: models.StatusHere, CheckInTime: "8:05 AM"}))

	updated := nextPayload(t, ch)
	kiosk = updated.Data.(dto.KioskView)
	assert.Equal(t, 1, kiosk.Counts.Here)
	assert.Equal(t, 3, kiosk.Counts.NotHere)
}

func TestStreamRecomputesOnRosterChange(t *testing.T) {
	feed, _, roster := newFeedFixture()

	ch, cancel, err := feed.Stream(context.Background(), StreamRequest{
		View:      ViewKindRoster,
		Selection: mondaySelection(),
	})
	require.NoError(t, err)
	defer cancel()

	initial := nextPayload(t, ch)
	view := initial.Data.(dto.RosterView)
	assert.Len(t, view.Students, 4)

	roster.students = roster.students[:2]
	roster.changed <- struct{}{}

	updated := nextPayload(t, ch)
	view = updated.Data.(dto.RosterView)
	assert.Len(t, view.Students, 2, "roster refresh triggers a full recompute")
}

func TestStreamRejectsUnknownView(t *testing.T) {
	feed, _, _ := newFeedFixture()

	_, _, err := feed.Stream(context.Background(), StreamRequest{View: ViewKind("pivot")})
	require.Error(t, err)
}

func TestStreamStopsOnContextCancel(t *testing.T) {
	feed, _, _ := newFeedFixture()
	ctx, stop := context.WithCancel(context.Background())

	ch, cancel, err := feed.Stream(ctx, StreamRequest{View: ViewKindDaily, Selection: mondaySelection()})
	require.NoError(t, err)
	defer cancel()

	nextPayload(t, ch)
	stop()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "stream closes when the context ends")
	case <-time.After(time.Second):
		t.Fatal("stream did not close after context cancellation")
	}
}

func TestParseViewKind(t *testing.T) {
	for raw, want := range map[string]ViewKind{
		"daily":  ViewKindDaily,
		"ROSTER": ViewKindRoster,
		" stats": ViewKindStats,
		"kiosk":  ViewKindKiosk,
	} {
		got, ok := ParseViewKind(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got)
	}
	_, ok := ParseViewKind("weekly")
	assert.False(t, ok)
}
