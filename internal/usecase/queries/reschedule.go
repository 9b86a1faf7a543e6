package queries

import (
	"context"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type RescheduleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RescheduleView, error)
	List(ctx context.Context, tenantID uuid.UUID, status *string) ([]*RescheduleView, error)
}

type RescheduleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RescheduleView, error)
	List(ctx context.Context, tenantID uuid.UUID, status *string) ([]*RescheduleView, error)
}

type rescheduleQueriesImpl struct {
	repo RescheduleViewRepo
}

func NewRescheduleQueries(repo RescheduleViewRepo) RescheduleQueries {
	return &rescheduleQueriesImpl{repo: repo}
}

func (q *rescheduleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RescheduleView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRescheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *rescheduleQueriesImpl) List(ctx context.Context, tenantID uuid.UUID, status *string) ([]*RescheduleView, error) {
	rows, err := q.repo.List(ctx, tenantID, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
