package bootstrap

import (
	"context"
	"log/slog"

	"clinic-booking/internal/infra/lock"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLockManager,
	),
	fx.Invoke(StartLockPurger),
)

// NewLockManager picks the lock backend from config. Postgres is the
// default; Redis keeps lock churn off the primary database when needed.
func NewLockManager(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, reads shared.ScheduleReads, clk clock.Clock) shared.LockManager {
	if cfg.Sched.LockBackend == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return rdb.Close()
			},
		})
		return lock.NewRedisLockManager(rdb, reads, clk)
	}
	return lock.NewPostgresLockManager(pool, reads, clk)
}

// StartLockPurger sweeps expired reservation locks on a fixed schedule.
// Expired locks are already invisible to acquisition; the sweep only keeps
// the table from growing.
func StartLockPurger(lc fx.Lifecycle, cfg config.Config, locks shared.LockManager) error {
	c := cron.New()
	_, err := c.AddFunc("@every "+cfg.Sched.LockPurgeInterval.String(), func() {
		purged, err := locks.PurgeExpired(context.Background())
		if err != nil {
			slog.Error("lock purge failed", "error", err.Error())
			return
		}
		if purged > 0 {
			slog.Info("purged expired reservation locks", "count", purged)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			<-c.Stop().Done()
			return nil
		},
	})
	return nil
}
