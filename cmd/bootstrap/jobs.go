package bootstrap

import (
	"context"

	"elibrary-borrowing/internal/jobs"
	"elibrary-borrowing/internal/pkg/clock"
	"elibrary-borrowing/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		func(cfg config.Config, loans jobs.OverdueMarker, clk clock.Clock) *jobs.OverdueSweeper {
			return jobs.NewOverdueSweeper(loans, clk, cfg.Jobs.OverdueSchedule)
		},
	),
	fx.Invoke(StartOverdueSweeper),
)

func StartOverdueSweeper(lc fx.Lifecycle, cfg config.Config, sweeper *jobs.OverdueSweeper) {
	if !cfg.Jobs.OverdueEnabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
