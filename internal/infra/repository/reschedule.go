package repository

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertRescheduleQuery = `
INSERT INTO reschedule_requests (id, appointment_id, proposed_date, proposed_slot_start, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id`

const resolveRescheduleQuery = `
UPDATE reschedule_requests
SET status = $2, updated_at = now()
WHERE id = $1 AND status = 'pending'`

type RescheduleRepository struct {
	db db.DBTX
}

func NewRescheduleRepository(dbtx db.DBTX) *RescheduleRepository {
	return &RescheduleRepository{db: dbtx}
}

func (r *RescheduleRepository) Create(ctx context.Context, dbtx db.DBTX, req *appointment.RescheduleRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertRescheduleQuery,
		req.ID(),
		req.AppointmentID(),
		pgconv.DateToPgtype(req.ProposedDate()),
		pgconv.MinutesToPgTime(req.ProposedSlot().Minutes()),
		req.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reschedule request", err)
	}
	return id, nil
}

// Resolve is guarded on the pending status so an already-resolved request
// cannot be flipped twice.
func (r *RescheduleRepository) Resolve(ctx context.Context, dbtx db.DBTX, id uuid.UUID, decision appointment.RequestStatus) (bool, error) {
	tag, err := dbtx.Exec(ctx, resolveRescheduleQuery, id, decision.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to resolve reschedule request", err)
	}
	return tag.RowsAffected() == 1, nil
}
