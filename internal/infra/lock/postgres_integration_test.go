//go:build integration

package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-booking/internal/domain/reservation"
	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra/lock"
	"clinic-booking/internal/infra/readstore"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// newTenant seeds an isolated tenant with a Monday template and one service.
func newTenant(t *testing.T, capacity int) (uuid.UUID, uuid.UUID) {
	t.Helper()
	pool := dbtest.StartPostgres(t)
	tenantID := uuid.New()
	serviceID := dbtest.CreateTestService(t, pool, tenantID, 30)
	dbtest.CreateTestTemplate(t, pool, tenantID, time.Monday, "09:00", "17:00", 30, capacity)
	return tenantID, serviceID
}

func newManager(t *testing.T, clk clock.Clock) *lock.PostgresLockManager {
	t.Helper()
	pool := dbtest.StartPostgres(t)
	reads := readstore.NewScheduleReadStore(pool)
	return lock.NewPostgresLockManager(pool, reads, clk)
}

func claimFor(tenantID, serviceID uuid.UUID, slot string) reservation.SlotClaim {
	start, err := schedule.ParseTimeOfDay(slot)
	if err != nil {
		panic(err)
	}
	return reservation.SlotClaim{
		TenantID:  tenantID,
		ServiceID: serviceID,
		Date:      monday,
		SlotStart: start,
	}
}

func TestTryAcquireRace(t *testing.T) {
	tenantID, serviceID := newTenant(t, 1)
	mgr := newManager(t, clock.NewRealClock())
	claim := claimFor(tenantID, serviceID, "10:00")

	const attempts = 8
	var wg sync.WaitGroup
	tokens := make(chan uuid.UUID, attempts)
	conflicts := make(chan error, attempts)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := mgr.TryAcquire(context.Background(), claim, 30*time.Second)
			if err != nil {
				conflicts <- err
				return
			}
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)
	close(conflicts)

	require.Len(t, tokens, 1, "exactly one attempt must win the slot lock")
	for err := range conflicts {
		assert.ErrorIs(t, err, errs.ErrLockConflict)
	}

	token := <-tokens
	require.NoError(t, mgr.Release(context.Background(), claim, token))
}

func TestExpiredLockTakeover(t *testing.T) {
	tenantID, serviceID := newTenant(t, 2)
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	mgr := newManager(t, clk)
	claim := claimFor(tenantID, serviceID, "11:00")

	first, err := mgr.TryAcquire(context.Background(), claim, time.Second)
	require.NoError(t, err)

	// Still live: a second attempt must lose.
	_, err = mgr.TryAcquire(context.Background(), claim, time.Second)
	assert.ErrorIs(t, err, errs.ErrLockConflict)

	// Past expiry the row is up for grabs.
	clk.Add(2 * time.Second)
	second, err := mgr.TryAcquire(context.Background(), claim, time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestReleaseReopensSlot(t *testing.T) {
	tenantID, serviceID := newTenant(t, 2)
	mgr := newManager(t, clock.NewRealClock())
	claim := claimFor(tenantID, serviceID, "13:00")

	token, err := mgr.TryAcquire(context.Background(), claim, 30*time.Second)
	require.NoError(t, err)

	// A stranger's token must not free the lock.
	require.NoError(t, mgr.Release(context.Background(), claim, uuid.New()))
	_, err = mgr.TryAcquire(context.Background(), claim, 30*time.Second)
	assert.ErrorIs(t, err, errs.ErrLockConflict)

	require.NoError(t, mgr.Release(context.Background(), claim, token))
	_, err = mgr.TryAcquire(context.Background(), claim, 30*time.Second)
	assert.NoError(t, err)
}

func TestTryAcquireCapacityRecheck(t *testing.T) {
	tenantID, serviceID := newTenant(t, 1)
	pool := dbtest.StartPostgres(t)
	mgr := newManager(t, clock.NewRealClock())

	// One committed appointment fills the capacity-1 slot.
	dbtest.CreateTestAppointment(t, pool, tenantID, serviceID, "2026-03-02", "14:00", "approved")

	claim := claimFor(tenantID, serviceID, "14:00")
	_, err := mgr.TryAcquire(context.Background(), claim, 30*time.Second)
	assert.ErrorIs(t, err, errs.ErrCapacityExceeded)

	// The failed recheck must have released the lock row again.
	var count int
	err = pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reservation_locks WHERE tenant_id = $1", tenantID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPurgeExpired(t *testing.T) {
	tenantID, serviceID := newTenant(t, 2)
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	mgr := newManager(t, clk)

	_, err := mgr.TryAcquire(context.Background(), claimFor(tenantID, serviceID, "15:00"), time.Second)
	require.NoError(t, err)
	_, err = mgr.TryAcquire(context.Background(), claimFor(tenantID, serviceID, "15:30"), time.Hour)
	require.NoError(t, err)

	clk.Add(time.Minute)
	purged, err := mgr.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, purged, int64(1))

	// The long-lived lock survives.
	_, err = mgr.TryAcquire(context.Background(), claimFor(tenantID, serviceID, "15:30"), time.Second)
	assert.ErrorIs(t, err, errs.ErrLockConflict)
}
