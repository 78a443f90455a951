// Package jobs holds background work that runs outside the request path.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"elibrary-borrowing/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// OverdueMarker is the write-side port the sweeper needs: flip every borrowed
// loan past its due date to overdue.
type OverdueMarker interface {
	MarkOverdueBefore(ctx context.Context, now time.Time) (int64, error)
}

// OverdueSweeper periodically marks past-due loans. It is the only writer of
// the OVERDUE status; the borrow/return path never sets it.
type OverdueSweeper struct {
	loans    OverdueMarker
	clock    clock.Clock
	schedule string
	cron     *cron.Cron
}

func NewOverdueSweeper(loans OverdueMarker, clk clock.Clock, schedule string) *OverdueSweeper {
	return &OverdueSweeper{
		loans:    loans,
		clock:    clk,
		schedule: schedule,
	}
}

func (s *OverdueSweeper) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, s.Sweep); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	slog.Info("overdue sweeper started", "schedule", s.schedule)
	return nil
}

func (s *OverdueSweeper) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("overdue sweeper stopped")
}

func (s *OverdueSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	marked, err := s.loans.MarkOverdueBefore(ctx, s.clock.Now())
	if err != nil {
		slog.Error("overdue sweep failed", "error", err)
		return
	}
	if marked > 0 {
		slog.Info("marked overdue loans", "count", marked)
	}
}
