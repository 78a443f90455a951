package bootstrap

import (
	"elibrary-borrowing/internal/infra/remote"
	"elibrary-borrowing/internal/pkg/config"
	"elibrary-borrowing/internal/usecase/commands"
	"elibrary-borrowing/internal/usecase/queries"

	"go.uber.org/fx"
)

// RemoteModule wires the HTTP clients for the book and auth collaborators.
// The book client serves two ports: the saga's inventory mutations and the
// composer's catalog lookups.
var RemoteModule = fx.Module("remote",
	fx.Provide(
		func(cfg config.Config) *remote.BookServiceClient {
			return remote.NewBookServiceClient(cfg.Remote.BookServiceURL, cfg.Remote.Timeout)
		},
		func(cfg config.Config) *remote.AuthServiceClient {
			return remote.NewAuthServiceClient(cfg.Remote.AuthServiceURL, cfg.Remote.Timeout)
		},
		fx.Annotate(
			func(c *remote.BookServiceClient) *remote.BookServiceClient { return c },
			fx.As(new(commands.InventoryClient)),
			fx.As(new(queries.BookCatalog)),
		),
		fx.Annotate(
			func(c *remote.AuthServiceClient) *remote.AuthServiceClient { return c },
			fx.As(new(queries.UserDirectory)),
		),
	),
)
