//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/queries"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustTime(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func newAvailability(t *testing.T) (*queriesmock.MockScheduleReadRepo, queries.AvailabilityQueries) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockScheduleReadRepo(ctrl)
	return repo, queries.NewAvailabilityQueries(repo, config.SchedConfig{BatchMaxDays: 7})
}

func shortDayTemplate(tenantID uuid.UUID) *schedule.SlotTemplate {
	return &schedule.SlotTemplate{
		TenantID:        tenantID,
		DayOfWeek:       time.Monday,
		Open:            schedule.TimeOfDay(9 * 60),
		Close:           schedule.TimeOfDay(11 * 60),
		IntervalMinutes: 30,
		DefaultCapacity: 2,
	}
}

func TestAvailabilityDay(t *testing.T) {
	tenantID := uuid.New()
	serviceID := uuid.New()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("reports remaining capacity per slot", func(t *testing.T) {
		repo, q := newAvailability(t)

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).Return(30, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Monday).Return(shortDayTemplate(tenantID), nil)
		repo.EXPECT().OverridesForDate(gomock.Any(), tenantID, monday).Return(nil, nil)
		repo.EXPECT().OccupiedBySlot(gomock.Any(), tenantID, monday).
			Return(map[schedule.TimeOfDay]int{
				mustTime(t, "09:00"): 1,
				mustTime(t, "09:30"): 2, // full, dropped
			}, nil)

		view, err := q.Day(context.Background(), tenantID, serviceID, monday, queries.DayRangeFilter{})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", view.Date)

		want := []queries.SlotView{
			{Start: "09:00", Capacity: 2, Remaining: 1},
			{Start: "10:00", Capacity: 2, Remaining: 2},
			{Start: "10:30", Capacity: 2, Remaining: 2},
		}
		assert.Empty(t, cmp.Diff(want, view.Slots))
	})

	t.Run("closed day yields an empty slot list", func(t *testing.T) {
		repo, q := newAvailability(t)

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).Return(30, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Monday).Return(nil, nil)

		view, err := q.Day(context.Background(), tenantID, serviceID, monday, queries.DayRangeFilter{})
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
	})

	t.Run("range filter narrows the returned window", func(t *testing.T) {
		repo, q := newAvailability(t)
		from := mustTime(t, "10:00")

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).Return(30, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Monday).Return(shortDayTemplate(tenantID), nil)
		repo.EXPECT().OverridesForDate(gomock.Any(), tenantID, monday).Return(nil, nil)
		repo.EXPECT().OccupiedBySlot(gomock.Any(), tenantID, monday).Return(nil, nil)

		view, err := q.Day(context.Background(), tenantID, serviceID, monday, queries.DayRangeFilter{RangeStart: &from})
		require.NoError(t, err)
		assert.Len(t, view.Slots, 2)
		assert.Equal(t, "10:00", view.Slots[0].Start)
	})

	t.Run("unknown service maps to not found", func(t *testing.T) {
		repo, q := newAvailability(t)

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).
			Return(0, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := q.Day(context.Background(), tenantID, serviceID, monday, queries.DayRangeFilter{})
		assert.ErrorIs(t, err, errs.ErrServiceNotFound)
	})
}

func TestAvailabilityBatch(t *testing.T) {
	tenantID := uuid.New()
	serviceID := uuid.New()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("expands the inclusive range into one view per day", func(t *testing.T) {
		repo, q := newAvailability(t)
		wednesday := monday.AddDate(0, 0, 2)

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).Return(30, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Monday).Return(shortDayTemplate(tenantID), nil)
		repo.EXPECT().OverridesForDate(gomock.Any(), tenantID, monday).Return(nil, nil)
		repo.EXPECT().OccupiedBySlot(gomock.Any(), tenantID, monday).Return(nil, nil)
		// Tuesday and Wednesday are closed
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Tuesday).Return(nil, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Wednesday).Return(nil, nil)

		views, err := q.Batch(context.Background(), tenantID, serviceID, monday, wednesday, queries.DayRangeFilter{})
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "2026-03-02", views[0].Date)
		assert.Len(t, views[0].Slots, 4)
		assert.Empty(t, views[1].Slots)
		assert.Equal(t, "2026-03-04", views[2].Date)
	})

	t.Run("range filter narrows every day in the batch", func(t *testing.T) {
		repo, q := newAvailability(t)
		tuesday := monday.AddDate(0, 0, 1)
		from := mustTime(t, "10:00")

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).Return(30, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Monday).Return(shortDayTemplate(tenantID), nil)
		repo.EXPECT().OverridesForDate(gomock.Any(), tenantID, monday).Return(nil, nil)
		repo.EXPECT().OccupiedBySlot(gomock.Any(), tenantID, monday).Return(nil, nil)
		tueTpl := shortDayTemplate(tenantID)
		tueTpl.DayOfWeek = time.Tuesday
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Tuesday).Return(tueTpl, nil)
		repo.EXPECT().OverridesForDate(gomock.Any(), tenantID, tuesday).Return(nil, nil)
		repo.EXPECT().OccupiedBySlot(gomock.Any(), tenantID, tuesday).Return(nil, nil)

		views, err := q.Batch(context.Background(), tenantID, serviceID, monday, tuesday,
			queries.DayRangeFilter{RangeStart: &from})
		require.NoError(t, err)
		require.Len(t, views, 2)
		for _, v := range views {
			require.Len(t, v.Slots, 2)
			assert.Equal(t, "10:00", v.Slots[0].Start)
		}
	})

	t.Run("end before start is an invalid range", func(t *testing.T) {
		_, q := newAvailability(t)

		_, err := q.Batch(context.Background(), tenantID, serviceID, monday, monday.AddDate(0, 0, -1), queries.DayRangeFilter{})
		assert.ErrorIs(t, err, errs.ErrInvalidRange)
	})

	t.Run("range beyond the configured cap is refused", func(t *testing.T) {
		_, q := newAvailability(t)

		_, err := q.Batch(context.Background(), tenantID, serviceID, monday, monday.AddDate(0, 0, 7), queries.DayRangeFilter{})
		assert.ErrorIs(t, err, errs.ErrRangeTooLarge)
	})

	t.Run("single-day range is allowed", func(t *testing.T) {
		repo, q := newAvailability(t)

		repo.EXPECT().ServiceDuration(gomock.Any(), tenantID, serviceID).Return(30, nil)
		repo.EXPECT().TemplateForWeekday(gomock.Any(), tenantID, time.Monday).Return(nil, nil)

		views, err := q.Batch(context.Background(), tenantID, serviceID, monday, monday, queries.DayRangeFilter{})
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}
