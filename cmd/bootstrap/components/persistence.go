package components

import (
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/infra/readstore"
	"clinic-booking/internal/infra/uow"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Schedule: feeds both the availability calculator and the
		// lock manager's capacity recheck
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadRepo)),
			fx.As(new(shared.ScheduleReads)),
		),
		// Appointment
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentViewRepo)),
		),
		// Reschedule
		fx.Annotate(
			readstore.NewRescheduleReadStore,
			fx.As(new(queries.RescheduleViewRepo)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
