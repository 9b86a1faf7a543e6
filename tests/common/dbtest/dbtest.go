//go:build integration

package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	pool          *pgxpool.Pool

	testUser     = "test"
	testPassword = "testpass"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StartPostgres starts a shared PostgreSQL container, applies the schema
// once, and returns a pool. Tests isolate themselves by tenant ID rather
// than by truncation, so the pool is safe to share.
func StartPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "testdb",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=100",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/testdb?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		}

		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start PostgreSQL container")

		host, err := container.Host(ctx)
		require.NoError(t, err)
		port, err := container.MappedPort(ctx, "5432/tcp")
		require.NoError(t, err)

		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/testdb?sslmode=disable",
			testUser, testPassword, host, port.Port())
		pool, err = pgxpool.New(ctx, dsn)
		require.NoError(t, err, "failed to connect to test database")

		require.NoError(t, applyMigrations(ctx, pool), "failed to apply migrations")
	})

	require.NotNil(t, pool, "test database was not initialized")
	return pool
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	// Resolve the migration path relative to possible working dirs
	// (package dirs during `go test`).
	candidates := []string{
		filepath.Join("migrations", "001_init.sql"),
		filepath.Join("..", "migrations", "001_init.sql"),
		filepath.Join("..", "..", "migrations", "001_init.sql"),
		filepath.Join("..", "..", "..", "migrations", "001_init.sql"),
	}
	var sqlContent []byte
	var readErr error
	for _, cand := range candidates {
		sqlContent, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to locate migration file: %w", readErr)
	}
	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	return nil
}

func CreateTestService(t *testing.T, db DBLike, tenantID uuid.UUID, durationMinutes int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, tenant_id, name, duration_minutes) VALUES ($1, $2, $3, $4)",
		serviceID, tenantID, "Test Service", durationMinutes)
	require.NoError(t, err)
	return serviceID
}

func CreateTestTemplate(t *testing.T, db DBLike, tenantID uuid.UUID, dow time.Weekday, open, close string, intervalMinutes, capacity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO slot_templates (id, tenant_id, day_of_week, open_time, close_time, interval_minutes, default_capacity)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), tenantID, int(dow), open, close, intervalMinutes, capacity)
	require.NoError(t, err)
}

func CreateTestAppointment(t *testing.T, db DBLike, tenantID, serviceID uuid.UUID, date, slotStart, status string) uuid.UUID {
	t.Helper()

	apptID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO appointments (id, tenant_id, customer_id, service_id, date, slot_start, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		apptID, tenantID, uuid.New(), serviceID, date, slotStart, status)
	require.NoError(t, err)
	return apptID
}
