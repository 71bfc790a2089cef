package components

import (
	"facility-booking/internal/infra/sessionstore"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			sessionstore.NewRedisStore,
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
