package lock

import (
	"context"
	"time"

	"clinic-booking/internal/domain/reservation"
	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Acquisition is a single conditional upsert. The unique key on
// (tenant_id, date, slot_start) guarantees at most one row per slot; the
// DO UPDATE ... WHERE clause takes over a row only when its previous lock
// has already expired. RETURNING fires only when we won, so "no rows" is
// exactly "someone else holds an unexpired lock".
const acquireLockQuery = `
INSERT INTO reservation_locks (tenant_id, date, slot_start, holder_token, acquired_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (tenant_id, date, slot_start) DO UPDATE
SET holder_token = EXCLUDED.holder_token,
    acquired_at  = EXCLUDED.acquired_at,
    expires_at   = EXCLUDED.expires_at
WHERE reservation_locks.expires_at <= EXCLUDED.acquired_at
RETURNING holder_token`

const releaseLockQuery = `
DELETE FROM reservation_locks
WHERE tenant_id = $1 AND date = $2 AND slot_start = $3 AND holder_token = $4`

const purgeExpiredLocksQuery = `
DELETE FROM reservation_locks
WHERE expires_at <= $1`

// PostgresLockManager stores reservation locks in the same database as the
// appointments they guard, so lock state and occupancy counts share one
// source of truth.
type PostgresLockManager struct {
	db    db.DBTX
	reads shared.ScheduleReads
	clock clock.Clock
}

func NewPostgresLockManager(dbtx db.DBTX, reads shared.ScheduleReads, clk clock.Clock) *PostgresLockManager {
	return &PostgresLockManager{db: dbtx, reads: reads, clock: clk}
}

func (m *PostgresLockManager) TryAcquire(ctx context.Context, claim reservation.SlotClaim, ttl time.Duration) (uuid.UUID, error) {
	lk, err := reservation.NewLock(claim, m.clock.Now(), ttl)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid lock parameters")
	}

	var token uuid.UUID
	err = m.db.QueryRow(ctx, acquireLockQuery,
		claim.TenantID,
		pgconv.DateToPgtype(claim.Date),
		pgconv.MinutesToPgTime(claim.SlotStart.Minutes()),
		lk.HolderToken(),
		pgconv.TimeToPgtype(lk.AcquiredAt()),
		pgconv.TimeToPgtype(lk.ExpiresAt()),
	).Scan(&token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, errs.Mark(errs.New("slot is locked by another booking attempt"), errs.ErrLockConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to acquire reservation lock", err)
	}

	// Holding the lock serializes this recheck: no other attempt on the
	// same slot can be between its own recheck and commit right now.
	if err := recheckCapacity(ctx, m.reads, claim); err != nil {
		if relErr := m.Release(ctx, claim, token); relErr != nil {
			return uuid.Nil, errs.Wrap(relErr, "failed to release lock after capacity check")
		}
		return uuid.Nil, err
	}
	return token, nil
}

// recheckCapacity runs with the lock held, against fresh counts. Shared by
// both lock backends because the count of record always lives in Postgres.
func recheckCapacity(ctx context.Context, reads shared.ScheduleReads, claim reservation.SlotClaim) error {
	tpl, err := reads.TemplateForWeekday(ctx, claim.TenantID, claim.Date.Weekday())
	if err != nil {
		return errs.Wrap(err, "failed to load slot template")
	}
	if tpl == nil {
		return errs.Mark(errs.New("no slot template for requested day"), errs.ErrSlotUnavailable)
	}
	overrides, err := reads.OverridesForDate(ctx, claim.TenantID, claim.Date)
	if err != nil {
		return errs.Wrap(err, "failed to load capacity overrides")
	}
	occupied, err := reads.OccupiedCount(ctx, claim.TenantID, claim.Date, claim.SlotStart)
	if err != nil {
		return errs.Wrap(err, "failed to count slot occupancy")
	}
	capacity := schedule.EffectiveCapacity(*tpl, overrides, claim.ServiceID, claim.Date, claim.SlotStart)
	if occupied >= capacity {
		return errs.Mark(errs.New("slot is fully booked"), errs.ErrCapacityExceeded)
	}
	return nil
}

func (m *PostgresLockManager) Release(ctx context.Context, claim reservation.SlotClaim, holderToken uuid.UUID) error {
	_, err := m.db.Exec(ctx, releaseLockQuery,
		claim.TenantID,
		pgconv.DateToPgtype(claim.Date),
		pgconv.MinutesToPgTime(claim.SlotStart.Minutes()),
		holderToken,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release reservation lock", err)
	}
	return nil
}

func (m *PostgresLockManager) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := m.db.Exec(ctx, purgeExpiredLocksQuery, pgconv.TimeToPgtype(m.clock.Now()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired locks", err)
	}
	return tag.RowsAffected(), nil
}
