package bootstrap

import (
	"clinic-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	LockModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
