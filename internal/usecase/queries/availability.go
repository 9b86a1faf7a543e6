package queries

import (
	"context"
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ScheduleReadRepo is the read-side port for templates, overrides,
// durations and occupancy counts.
type ScheduleReadRepo interface {
	TemplateForWeekday(ctx context.Context, tenantID uuid.UUID, dow time.Weekday) (*schedule.SlotTemplate, error)
	OverridesForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]schedule.CapacityOverride, error)
	OccupiedBySlot(ctx context.Context, tenantID uuid.UUID, date time.Time) (map[schedule.TimeOfDay]int, error)
	ServiceDuration(ctx context.Context, tenantID, serviceID uuid.UUID) (int, error)
}

type DayRangeFilter struct {
	RangeStart *schedule.TimeOfDay
	RangeEnd   *schedule.TimeOfDay
}

type AvailabilityQueries interface {
	Day(ctx context.Context, tenantID, serviceID uuid.UUID, date time.Time, filter DayRangeFilter) (*DayAvailabilityView, error)
	Batch(ctx context.Context, tenantID, serviceID uuid.UUID, startDate, endDate time.Time, filter DayRangeFilter) ([]*DayAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	repo ScheduleReadRepo
	cfg  config.SchedConfig
}

func NewAvailabilityQueries(repo ScheduleReadRepo, cfg config.SchedConfig) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, cfg: cfg}
}

// Day computes bookable slots for one date. Days without a template (the
// tenant is closed) come back with an empty slot list, not an error.
func (q *availabilityQueriesImpl) Day(ctx context.Context, tenantID, serviceID uuid.UUID, date time.Time, filter DayRangeFilter) (*DayAvailabilityView, error) {
	duration, err := q.repo.ServiceDuration(ctx, tenantID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.computeDay(ctx, tenantID, serviceID, date, duration, filter)
}

// Batch expands an inclusive date range into per-day availability. The
// range is bounded so one request cannot fan out into unbounded count
// queries.
func (q *availabilityQueriesImpl) Batch(ctx context.Context, tenantID, serviceID uuid.UUID, startDate, endDate time.Time, filter DayRangeFilter) ([]*DayAvailabilityView, error) {
	if endDate.Before(startDate) {
		return nil, errs.Mark(errs.New("end date precedes start date"), errs.ErrInvalidRange)
	}
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days > q.cfg.BatchMaxDays {
		return nil, errs.Mark(
			errs.Newf("range spans %d days, limit is %d", days, q.cfg.BatchMaxDays),
			errs.ErrRangeTooLarge)
	}

	duration, err := q.repo.ServiceDuration(ctx, tenantID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*DayAvailabilityView, 0, days)
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		view, err := q.computeDay(ctx, tenantID, serviceID, d, duration, filter)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *availabilityQueriesImpl) computeDay(ctx context.Context, tenantID, serviceID uuid.UUID, date time.Time, duration int, filter DayRangeFilter) (*DayAvailabilityView, error) {
	view := &DayAvailabilityView{Date: schedule.FormatDate(date), Slots: []SlotView{}}

	tpl, err := q.repo.TemplateForWeekday(ctx, tenantID, date.Weekday())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if tpl == nil {
		return view, nil
	}
	overrides, err := q.repo.OverridesForDate(ctx, tenantID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	occupied, err := q.repo.OccupiedBySlot(ctx, tenantID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots, err := schedule.ComputeSlots(schedule.DaySchedule{
		TenantID:        tenantID,
		ServiceID:       serviceID,
		Date:            date,
		Template:        *tpl,
		Overrides:       overrides,
		DurationMinutes: duration,
		Occupied:        occupied,
	}, filter.RangeStart, filter.RangeEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConfiguration)
	}

	for _, s := range slots {
		view.Slots = append(view.Slots, SlotView{
			Start:     s.Start.String(),
			Capacity:  s.Capacity,
			Remaining: s.Remaining(),
		})
	}
	return view, nil
}
