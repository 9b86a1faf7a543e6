package shared

import (
	"context"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/reservation"
	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type AppointmentSnapshot struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
	SlotStart  schedule.TimeOfDay
	Status     appointment.Status
}

type RescheduleSnapshot struct {
	ID            uuid.UUID
	AppointmentID uuid.UUID
	ProposedDate  time.Time
	ProposedSlot  schedule.TimeOfDay
	Status        appointment.RequestStatus
}

// CommandReads are the fresh, uncached reads the write side depends on.
// Capacity counts must always come from here, never from process memory:
// a cached count would reintroduce the race the reservation lock closes.
type CommandReads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	RescheduleByID(ctx context.Context, id uuid.UUID) (*RescheduleSnapshot, error)
	ScheduleReads
}

// ScheduleReads resolves templates, overrides, durations and occupancy.
// Shared by the availability calculator and the lock manager's
// at-acquisition capacity recheck.
type ScheduleReads interface {
	TemplateForWeekday(ctx context.Context, tenantID uuid.UUID, dow time.Weekday) (*schedule.SlotTemplate, error)
	OverridesForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]schedule.CapacityOverride, error)
	OccupiedBySlot(ctx context.Context, tenantID uuid.UUID, date time.Time) (map[schedule.TimeOfDay]int, error)
	OccupiedCount(ctx context.Context, tenantID uuid.UUID, date time.Time, slot schedule.TimeOfDay) (int, error)
	ServiceDuration(ctx context.Context, tenantID, serviceID uuid.UUID) (int, error)
}

// LockManager converts "slot looks free" into "slot is provisionally mine".
// TryAcquire is a single atomic conditional write plus a capacity recheck
// with fresh counts; it never blocks or queues. Failures surface as
// errs.ErrLockConflict or errs.ErrCapacityExceeded. Expiry is a pure
// timestamp comparison (reservation.Lock.Expired) evaluated inside the
// store's conditional write, so there is no separate expiry query: an
// expired holder simply loses the next acquisition or release race.
type LockManager interface {
	TryAcquire(ctx context.Context, claim reservation.SlotClaim, ttl time.Duration) (uuid.UUID, error)
	Release(ctx context.Context, claim reservation.SlotClaim, holderToken uuid.UUID) error
	PurgeExpired(ctx context.Context) (int64, error)
}
