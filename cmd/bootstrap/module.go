package bootstrap

import (
	"facility-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	SessionModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
