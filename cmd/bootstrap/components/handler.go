package components

import (
	"elibrary-borrowing/internal/handler"
	"elibrary-borrowing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBorrowHandler,
	),
	fx.Invoke(handler.NewRouter),
)
