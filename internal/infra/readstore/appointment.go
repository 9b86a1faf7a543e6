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

const appointmentByIDQuery = `
SELECT id, tenant_id, customer_id, service_id, date, slot_start, status,
       rejection_reason, created_at, updated_at
FROM appointments
WHERE id = $1`

const appointmentListQuery = `
SELECT id, tenant_id, customer_id, service_id, date, slot_start, status,
       rejection_reason, created_at, updated_at
FROM appointments
WHERE tenant_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::date IS NULL OR date >= $3)
  AND ($4::date IS NULL OR date <= $4)
ORDER BY date DESC, slot_start DESC, created_at DESC
LIMIT $5 OFFSET $6`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) WithDB(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.scanOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// SnapshotByID feeds the write side; same row, command-shaped.
func (r *AppointmentReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	view, err := r.scanOne(ctx, id)
	if err != nil {
		return nil, err
	}
	date, err := schedule.ParseDate(view.Date)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment date is malformed", err)
	}
	slot, err := schedule.ParseTimeOfDay(view.SlotStart)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment slot is malformed", err)
	}
	return &shared.AppointmentSnapshot{
		ID:         view.ID,
		TenantID:   view.TenantID,
		CustomerID: view.CustomerID,
		ServiceID:  view.ServiceID,
		Date:       date,
		SlotStart:  slot,
		Status:     appointment.Status(view.Status),
	}, nil
}

func (r *AppointmentReadStore) List(ctx context.Context, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx, appointmentListQuery,
		filter.TenantID,
		pgconv.StringPtrToPgtype(filter.Status),
		pgconv.DatePtrToPgtype(filter.StartDate),
		pgconv.DatePtrToPgtype(filter.EndDate),
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment list", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *AppointmentReadStore) scanOne(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := scanAppointmentRow(r.db.QueryRow(ctx, appointmentByIDQuery, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return view, nil
}

func scanAppointmentRow(row rowScanner) (*queries.AppointmentView, error) {
	var view queries.AppointmentView
	var date pgtype.Date
	var slotStart pgtype.Time
	var rejectionReason pgtype.Text
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&view.ID, &view.TenantID, &view.CustomerID, &view.ServiceID,
		&date, &slotStart, &view.Status, &rejectionReason, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan appointment row", err)
	}

	view.Date = schedule.FormatDate(pgconv.DateFromPgtype(date))
	view.SlotStart = schedule.TimeOfDay(pgconv.MinutesFromPgTime(slotStart)).String()
	view.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
