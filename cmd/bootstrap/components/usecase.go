package components

import (
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentUseCase,
		commands.NewRescheduleUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewRescheduleQueries,
	),
)
