package shared

import (
	"context"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// Reads: Direct access to command-side reads outside transactions
	Reads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Reschedules() RescheduleRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type AppointmentRepository interface {
	Create(ctx context.Context, db db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	// UpdateStatus performs a guarded transition (WHERE status = from) and
	// reports whether a row was updated; false means the guard failed.
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from, to appointment.Status, rejectionReason *string) (bool, error)
}

type RescheduleRepository interface {
	Create(ctx context.Context, db db.DBTX, req *appointment.RescheduleRequest) (uuid.UUID, error)
	// Resolve marks a pending request approved/rejected; false means the
	// request was no longer pending.
	Resolve(ctx context.Context, db db.DBTX, id uuid.UUID, decision appointment.RequestStatus) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
