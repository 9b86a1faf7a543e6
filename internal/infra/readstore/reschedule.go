package readstore

import (
	"context"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const rescheduleByIDQuery = `
SELECT r.id, r.appointment_id, r.proposed_date, r.proposed_slot_start,
       r.status, r.created_at, r.updated_at
FROM reschedule_requests r
WHERE r.id = $1`

const rescheduleListQuery = `
SELECT r.id, r.appointment_id, r.proposed_date, r.proposed_slot_start,
       r.status, r.created_at, r.updated_at
FROM reschedule_requests r
JOIN appointments a ON a.id = r.appointment_id
WHERE a.tenant_id = $1
  AND ($2::text IS NULL OR r.status = $2)
ORDER BY r.created_at DESC`

type RescheduleReadStore struct {
	db db.DBTX
}

func NewRescheduleReadStore(dbtx db.DBTX) *RescheduleReadStore {
	return &RescheduleReadStore{db: dbtx}
}

func (r *RescheduleReadStore) WithDB(dbtx db.DBTX) *RescheduleReadStore {
	return &RescheduleReadStore{db: dbtx}
}

func (r *RescheduleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RescheduleView, error) {
	view, err := scanRescheduleRow(r.db.QueryRow(ctx, rescheduleByIDQuery, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reschedule request not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (r *RescheduleReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.RescheduleSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	date, err := schedule.ParseDate(view.ProposedDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored proposed date is malformed", err)
	}
	slot, err := schedule.ParseTimeOfDay(view.ProposedSlot)
	if err != nil {
		return nil, infra.WrapRepoErr("stored proposed slot is malformed", err)
	}
	return &shared.RescheduleSnapshot{
		ID:            view.ID,
		AppointmentID: view.AppointmentID,
		ProposedDate:  date,
		ProposedSlot:  slot,
		Status:        appointment.RequestStatus(view.Status),
	}, nil
}

func (r *RescheduleReadStore) List(ctx context.Context, tenantID uuid.UUID, status *string) ([]*queries.RescheduleView, error) {
	rows, err := r.db.Query(ctx, rescheduleListQuery, tenantID, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reschedule requests", err)
	}
	defer rows.Close()

	var result []*queries.RescheduleView
	for rows.Next() {
		view, err := scanRescheduleRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reschedule list", err)
	}
	return result, nil
}

func scanRescheduleRow(row rowScanner) (*queries.RescheduleView, error) {
	var view queries.RescheduleView
	var date pgtype.Date
	var slotStart pgtype.Time
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&view.ID, &view.AppointmentID, &date, &slotStart,
		&view.Status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan reschedule row", err)
	}

	view.ProposedDate = schedule.FormatDate(pgconv.DateFromPgtype(date))
	view.ProposedSlot = schedule.TimeOfDay(pgconv.MinutesFromPgTime(slotStart)).String()
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
