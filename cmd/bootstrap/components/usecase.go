package components

import (
	"elibrary-borrowing/internal/pkg/clock"
	"elibrary-borrowing/internal/usecase/commands"
	"elibrary-borrowing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewBorrowQueries,
		commands.NewBorrowCommands,
	),
)
