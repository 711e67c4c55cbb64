package store

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cms-preschool/checkin-api/internal/models"
)

func waitForEmission(t *testing.T, ch <-chan map[string]models.AttendanceRecord) map[string]models.AttendanceRecord {
	t.Helper()
	select {
	case m, ok := <-ch:
		require.True(t, ok, "subscription channel closed unexpectedly")
		return m
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for emission")
		return nil
	}
}

func TestMemoryStoreWriteAndSnapshot(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec := models.AttendanceRecord{Status: models.StatusHere, CheckInTime: "8:05 AM", Campus: "Main", Classroom: "Toddler A"}
	require.NoError(t, s.Write(ctx, "2026-03-02", "Ada Mitchell", rec))

	snap, err := s.Snapshot(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, rec, snap["Ada Mitchell"])

	other, err := s.Snapshot(ctx, "2026-03-03")
	require.NoError(t, err)
	assert.Empty(t, other, "days are isolated partitions")
}

func TestMemoryStoreSnapshotIsACopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "2026-03-02", "Ada Mitchell", models.AttendanceRecord{Status: models.StatusHere}))

	snap, err := s.Snapshot(ctx, "2026-03-02")
	require.NoError(t, err)
	snap["Ada Mitchell"] = models.AttendanceRecord{Status: models.StatusPickedUp}

	fresh, err := s.Snapshot(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, models.StatusHere, fresh["Ada Mitchell"].Status)
}

func TestMemoryStoreSubscribeEmitsFullMap(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "2026-03-02", "Ada Mitchell", models.AttendanceRecord{Status: models.StatusHere}))

	ch, cancel, err := s.Subscribe(ctx, "2026-03-02")
	require.NoError(t, err)
	defer cancel()

	initial := waitForEmission(t, ch)
	assert.Len(t, initial, 1)

	require.NoError(t, s.Write(ctx, "2026-03-02", "Ben Okafor", models.AttendanceRecord{Status: models.StatusHere}))
	next := waitForEmission(t, ch)
	assert.Len(t, next, 2, "every emission carries the full day map")

	require.NoError(t, s.Delete(ctx, "2026-03-02", "Ada Mitchell"))
	afterDelete := waitForEmission(t, ch)
	assert.Len(t, afterDelete, 1)
	assert.NotContains(t, afterDelete, "Ada Mitchell")
}

func TestMemoryStoreSlowConsumerGetsLatest(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	ch, cancel, err := s.Subscribe(ctx, "2026-03-02")
	require.NoError(t, err)
	defer cancel()

	// Drain the initial empty snapshot, then let writes pile up while the
	// consumer is away.
	waitForEmission(t, ch)
	require.NoError(t, s.Write(ctx, "2026-03-02", "Ada Mitchell", models.AttendanceRecord{Status: models.StatusHere}))
	require.NoError(t, s.Write(ctx, "2026-03-02", "Ben Okafor", models.AttendanceRecord{Status: models.StatusHere}))
	require.NoError(t, s.Write(ctx, "2026-03-02", "Carmen Diaz", models.AttendanceRecord{Status: models.StatusHere}))

	latest := waitForEmission(t, ch)
	assert.Len(t, latest, 3, "intermediate emissions are coalesced to the newest map")
}

func TestMemoryStoreCancelClosesChannel(t *testing.T) {
	s := NewMemoryStore()
	ch, cancel, err := s.Subscribe(context.Background(), "2026-03-02")
	require.NoError(t, err)

	waitForEmission(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	// A second cancel is a no-op.
	cancel()
	require.NoError(t, s.Write(context.Background(), "2026-03-02", "Ada Mitchell", models.AttendanceRecord{Status: models.StatusHere}))
}

func TestMemoryStoreCancelReleasesWatcher(t *testing.T) {
	s := NewMemoryStore()
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	before := runtime.NumGoroutine()
	ch, cancel, err := s.Subscribe(ctx, "2026-03-02")
	require.NoError(t, err)

	waitForEmission(t, ch)
	cancel()

	// The ctx watcher must exit on cancel alone; the context stays live.
	// Poll on the test goroutine: require.Eventually evaluates its
	// condition on a spawned goroutine, which inflates the very count
	// being measured.
	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before {
		if time.Now().After(deadline) {
			t.Fatal("watcher goroutine still running after cancel")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestMemoryStoreContextCancellation(t *testing.T) {
	s := NewMemoryStore()
	ctx, stop := context.WithCancel(context.Background())

	ch, cancel, err := s.Subscribe(ctx, "2026-03-02")
	require.NoError(t, err)
	defer cancel()

	waitForEmission(t, ch)
	stop()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancellation")
	}
}
