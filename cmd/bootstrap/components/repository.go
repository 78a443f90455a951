package components

import (
	"elibrary-borrowing/internal/infra/readstore"
	"elibrary-borrowing/internal/infra/repository"
	"elibrary-borrowing/internal/jobs"
	"elibrary-borrowing/internal/usecase/commands"
	"elibrary-borrowing/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewLoanRepository,
			fx.As(new(commands.LoanRepository)),
			fx.As(new(jobs.OverdueMarker)),
		),
		fx.Annotate(
			readstore.NewLoanReadStore,
			fx.As(new(queries.LoanReadStore)),
		),
	),
)
