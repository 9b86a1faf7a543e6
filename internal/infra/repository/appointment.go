package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

const insertAppointmentQuery = `
INSERT INTO appointments (id, tenant_id, customer_id, service_id, date, slot_start, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

const updateAppointmentStatusQuery = `
UPDATE appointments
SET status = $3,
    rejection_reason = COALESCE($4, rejection_reason),
    updated_at = now()
WHERE id = $1 AND status = $2`

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertAppointmentQuery,
		appt.ID(),
		appt.TenantID(),
		appt.CustomerID(),
		appt.ServiceID(),
		pgconv.DateToPgtype(appt.Date()),
		pgconv.MinutesToPgTime(appt.SlotStart().Minutes()),
		appt.Status().String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("appointment already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

// UpdateStatus applies a guarded transition. The status predicate makes the
// update a compare-and-set: concurrent staff actions cannot both win.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to appointment.Status, rejectionReason *string) (bool, error) {
	tag, err := dbtx.Exec(ctx, updateAppointmentStatusQuery,
		id, from.String(), to.String(), pgconv.StringPtrToPgtype(rejectionReason))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update appointment status", err)
	}
	return tag.RowsAffected() == 1, nil
}
