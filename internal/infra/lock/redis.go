package lock

import (
	"context"
	"time"

	"clinic-booking/internal/domain/reservation"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Release must only delete a key the caller still owns; a plain DEL would
// let a slow holder remove a successor's lock after its own TTL lapsed.
var redisReleaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLockManager keeps reservation locks in Redis with native TTL expiry,
// for deployments where lock churn should stay off the primary database.
// Capacity rechecks still read fresh counts from Postgres.
type RedisLockManager struct {
	rdb    *redis.Client
	reads  shared.ScheduleReads
	clock  clock.Clock
	prefix string
}

func NewRedisLockManager(rdb *redis.Client, reads shared.ScheduleReads, clk clock.Clock) *RedisLockManager {
	return &RedisLockManager{rdb: rdb, reads: reads, clock: clk, prefix: "resv-lock"}
}

func (m *RedisLockManager) key(claim reservation.SlotClaim) string {
	return m.prefix + ":" + claim.Key()
}

func (m *RedisLockManager) TryAcquire(ctx context.Context, claim reservation.SlotClaim, ttl time.Duration) (uuid.UUID, error) {
	lk, err := reservation.NewLock(claim, m.clock.Now(), ttl)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid lock parameters")
	}

	ok, err := m.rdb.SetNX(ctx, m.key(claim), lk.HolderToken().String(), ttl).Result()
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to acquire reservation lock")
	}
	if !ok {
		return uuid.Nil, errs.Mark(errs.New("slot is locked by another booking attempt"), errs.ErrLockConflict)
	}

	if err := recheckCapacity(ctx, m.reads, claim); err != nil {
		if relErr := m.Release(ctx, claim, lk.HolderToken()); relErr != nil {
			return uuid.Nil, errs.Wrap(relErr, "failed to release lock after capacity check")
		}
		return uuid.Nil, err
	}
	return lk.HolderToken(), nil
}

func (m *RedisLockManager) Release(ctx context.Context, claim reservation.SlotClaim, holderToken uuid.UUID) error {
	if err := redisReleaseScript.Run(ctx, m.rdb, []string{m.key(claim)}, holderToken.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to release reservation lock")
	}
	return nil
}

// PurgeExpired is satisfied by Redis TTL eviction; nothing to sweep.
func (m *RedisLockManager) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
