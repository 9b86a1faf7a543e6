package repository

import (
	"context"
	"time"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertNotificationJobQuery = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 'queued', now(), now())`

// NotificationRepository is the fire-and-forget side channel: the engine
// only enqueues jobs, delivery is someone else's problem.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, insertNotificationJobQuery,
		uuid.New(), kind, topic, payload, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
