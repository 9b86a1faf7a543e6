package readstore

import (
	"context"
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const templateForWeekdayQuery = `
SELECT open_time, close_time, interval_minutes, default_capacity
FROM slot_templates
WHERE tenant_id = $1 AND day_of_week = $2`

const overridesForDateQuery = `
SELECT service_id, date, slot_start, capacity
FROM capacity_overrides
WHERE tenant_id = $1 AND (date IS NULL OR date = $2)`

const occupiedBySlotQuery = `
SELECT slot_start, COUNT(*)
FROM appointments
WHERE tenant_id = $1 AND date = $2 AND status IN ('pending', 'approved')
GROUP BY slot_start`

const occupiedCountQuery = `
SELECT COUNT(*)
FROM appointments
WHERE tenant_id = $1 AND date = $2 AND slot_start = $3
  AND status IN ('pending', 'approved')`

const serviceDurationQuery = `
SELECT duration_minutes
FROM services
WHERE id = $1 AND tenant_id = $2`

// ScheduleReadStore resolves the configuration and occupancy snapshot the
// availability calculator and the lock manager run against. Every call hits
// the database; counts are deliberately never cached in process.
type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

// WithDB rebinds the store to another executor, typically a transaction.
func (r *ScheduleReadStore) WithDB(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

// TemplateForWeekday returns nil when the tenant is closed that weekday.
func (r *ScheduleReadStore) TemplateForWeekday(ctx context.Context, tenantID uuid.UUID, dow time.Weekday) (*schedule.SlotTemplate, error) {
	var open, close pgtype.Time
	var intervalMinutes, defaultCapacity int

	err := r.db.QueryRow(ctx, templateForWeekdayQuery, tenantID, int(dow)).
		Scan(&open, &close, &intervalMinutes, &defaultCapacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load slot template", err)
	}

	return &schedule.SlotTemplate{
		TenantID:        tenantID,
		DayOfWeek:       dow,
		Open:            schedule.TimeOfDay(pgconv.MinutesFromPgTime(open)),
		Close:           schedule.TimeOfDay(pgconv.MinutesFromPgTime(close)),
		IntervalMinutes: intervalMinutes,
		DefaultCapacity: defaultCapacity,
	}, nil
}

func (r *ScheduleReadStore) OverridesForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]schedule.CapacityOverride, error) {
	rows, err := r.db.Query(ctx, overridesForDateQuery, tenantID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load capacity overrides", err)
	}
	defer rows.Close()

	var overrides []schedule.CapacityOverride
	for rows.Next() {
		var serviceID pgtype.UUID
		var ovDate pgtype.Date
		var slotStart pgtype.Time
		var capacity int
		if err := rows.Scan(&serviceID, &ovDate, &slotStart, &capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan capacity override", err)
		}
		overrides = append(overrides, schedule.CapacityOverride{
			TenantID:  tenantID,
			ServiceID: pgconv.UUIDPtrFromPgtype(serviceID),
			Date:      pgconv.DatePtrFromPgtype(ovDate),
			SlotStart: schedule.TimeOfDay(pgconv.MinutesFromPgTime(slotStart)),
			Capacity:  capacity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read capacity overrides", err)
	}
	return overrides, nil
}

func (r *ScheduleReadStore) OccupiedBySlot(ctx context.Context, tenantID uuid.UUID, date time.Time) (map[schedule.TimeOfDay]int, error) {
	rows, err := r.db.Query(ctx, occupiedBySlotQuery, tenantID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count occupied slots", err)
	}
	defer rows.Close()

	occupied := make(map[schedule.TimeOfDay]int)
	for rows.Next() {
		var slotStart pgtype.Time
		var count int
		if err := rows.Scan(&slotStart, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot count", err)
		}
		occupied[schedule.TimeOfDay(pgconv.MinutesFromPgTime(slotStart))] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied slot counts", err)
	}
	return occupied, nil
}

func (r *ScheduleReadStore) OccupiedCount(ctx context.Context, tenantID uuid.UUID, date time.Time, slot schedule.TimeOfDay) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, occupiedCountQuery,
		tenantID, pgconv.DateToPgtype(date), pgconv.MinutesToPgTime(slot.Minutes())).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot occupancy", err)
	}
	return count, nil
}

func (r *ScheduleReadStore) ServiceDuration(ctx context.Context, tenantID, serviceID uuid.UUID) (int, error) {
	var duration int
	err := r.db.QueryRow(ctx, serviceDurationQuery, serviceID, tenantID).Scan(&duration)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to load service duration", err)
	}
	return duration, nil
}
