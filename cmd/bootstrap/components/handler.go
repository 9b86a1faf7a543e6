package components

import (
	"clinic-booking/internal/handler"
	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewRescheduleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
