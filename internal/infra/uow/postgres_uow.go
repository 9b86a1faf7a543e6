package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/infra/readstore"
	"clinic-booking/internal/infra/repository"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	appointmentRepo  shared.AppointmentRepository
	rescheduleRepo   shared.RescheduleRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.dbtx)
	}
	return t.appointmentRepo
}

func (t *pgTx) Reschedules() shared.RescheduleRepository {
	if t.rescheduleRepo == nil {
		t.rescheduleRepo = repository.NewRescheduleRepository(t.dbtx)
	}
	return t.rescheduleRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	rescheduleStore  *readstore.RescheduleReadStore
	scheduleStore    *readstore.ScheduleReadStore
}

func (r *commandReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.dbtx)
	}
	return r.appointmentStore
}

func (r *commandReads) reschedules() *readstore.RescheduleReadStore {
	if r.rescheduleStore == nil {
		r.rescheduleStore = readstore.NewRescheduleReadStore(r.dbtx)
	}
	return r.rescheduleStore
}

func (r *commandReads) schedules() *readstore.ScheduleReadStore {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.dbtx)
	}
	return r.scheduleStore
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	return r.appointments().SnapshotByID(ctx, id)
}

func (r *commandReads) RescheduleByID(ctx context.Context, id uuid.UUID) (*shared.RescheduleSnapshot, error) {
	return r.reschedules().SnapshotByID(ctx, id)
}

func (r *commandReads) TemplateForWeekday(ctx context.Context, tenantID uuid.UUID, dow time.Weekday) (*schedule.SlotTemplate, error) {
	return r.schedules().TemplateForWeekday(ctx, tenantID, dow)
}

func (r *commandReads) OverridesForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]schedule.CapacityOverride, error) {
	return r.schedules().OverridesForDate(ctx, tenantID, date)
}

func (r *commandReads) OccupiedBySlot(ctx context.Context, tenantID uuid.UUID, date time.Time) (map[schedule.TimeOfDay]int, error) {
	return r.schedules().OccupiedBySlot(ctx, tenantID, date)
}

func (r *commandReads) OccupiedCount(ctx context.Context, tenantID uuid.UUID, date time.Time, slot schedule.TimeOfDay) (int, error) {
	return r.schedules().OccupiedCount(ctx, tenantID, date, slot)
}

func (r *commandReads) ServiceDuration(ctx context.Context, tenantID, serviceID uuid.UUID) (int, error) {
	return r.schedules().ServiceDuration(ctx, tenantID, serviceID)
}
