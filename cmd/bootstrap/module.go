package bootstrap

import (
	"chartrettes-rooms/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CalendarModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
