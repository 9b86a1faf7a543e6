package queries

import (
	"context"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
