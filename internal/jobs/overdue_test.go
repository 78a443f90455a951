//go:build unit

package jobs_test

import (
	"context"
	"testing"
	"time"

	"elibrary-borrowing/internal/infra"
	"elibrary-borrowing/internal/jobs"
	"elibrary-borrowing/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarker struct {
	marked int64
	err    error
	calls  int
	gotNow time.Time
}

func (m *stubMarker) MarkOverdueBefore(_ context.Context, now time.Time) (int64, error) {
	m.calls++
	m.gotNow = now
	return m.marked, m.err
}

func TestSweep(t *testing.T) {
	now := time.Date(2025, 6, 20, 3, 0, 0, 0, time.UTC)

	t.Run("passes the current time to the marker", func(t *testing.T) {
		marker := &stubMarker{marked: 2}
		s := jobs.NewOverdueSweeper(marker, clock.NewFixedClock(now), "@hourly")

		s.Sweep()

		assert.Equal(t, 1, marker.calls)
		assert.Equal(t, now, marker.gotNow)
	})

	t.Run("a failed sweep does not panic", func(t *testing.T) {
		marker := &stubMarker{err: infra.WrapRepoErr("update failed", nil)}
		s := jobs.NewOverdueSweeper(marker, clock.NewFixedClock(now), "@hourly")

		assert.NotPanics(t, s.Sweep)
	})
}

func TestStartStop(t *testing.T) {
	t.Run("rejects a bad schedule", func(t *testing.T) {
		s := jobs.NewOverdueSweeper(&stubMarker{}, clock.NewRealClock(), "not a schedule")

		assert.Error(t, s.Start())
	})

	t.Run("starts and stops cleanly", func(t *testing.T) {
		s := jobs.NewOverdueSweeper(&stubMarker{}, clock.NewRealClock(), "@hourly")

		require.NoError(t, s.Start())
		s.Stop()
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		s := jobs.NewOverdueSweeper(&stubMarker{}, clock.NewRealClock(), "@hourly")

		assert.NotPanics(t, s.Stop)
	})
}
