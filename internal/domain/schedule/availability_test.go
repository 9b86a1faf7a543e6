//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daySchedule(t *testing.T, duration int) schedule.DaySchedule {
	t.Helper()
	return schedule.DaySchedule{
		TenantID:        uuid.New(),
		ServiceID:       uuid.New(),
		Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		Template:        validTemplate(t), // 09:00-17:00, 30m interval, capacity 2
		DurationMinutes: duration,
		Occupied:        map[schedule.TimeOfDay]int{},
	}
}

func slotStarts(slots []schedule.Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start.String())
	}
	return starts
}

func TestComputeSlots_WalksTemplateInterval(t *testing.T) {
	day := daySchedule(t, 30)
	day.Template.Open = mustTime(t, "09:00")
	day.Template.Close = mustTime(t, "11:00")

	slots, err := schedule.ComputeSlots(day, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(slots))
}

func TestComputeSlots_DurationMustFitBeforeClose(t *testing.T) {
	// 60-minute service on a 30-minute grid: the last interval start that
	// still fits is 10:00 when closing at 11:00.
	day := daySchedule(t, 60)
	day.Template.Open = mustTime(t, "09:00")
	day.Template.Close = mustTime(t, "11:00")

	slots, err := schedule.ComputeSlots(day, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStarts(slots))
}

func TestComputeSlots_FullSlotsAreDropped(t *testing.T) {
	day := daySchedule(t, 30)
	day.Template.Open = mustTime(t, "09:00")
	day.Template.Close = mustTime(t, "10:30")
	day.Occupied = map[schedule.TimeOfDay]int{
		mustTime(t, "09:00"): 2, // full
		mustTime(t, "09:30"): 1, // one left
	}

	slots, err := schedule.ComputeSlots(day, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"09:30", "10:00"}, slotStarts(slots))
	assert.Equal(t, 1, slots[0].Remaining())
	assert.Equal(t, 2, slots[1].Remaining())
}

func TestComputeSlots_RangeNarrowsWindow(t *testing.T) {
	day := daySchedule(t, 30)

	from := mustTime(t, "10:00")
	to := mustTime(t, "11:30")
	slots, err := schedule.ComputeSlots(day, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, slotStarts(slots))
}

func TestComputeSlots_RangeCannotWidenWindow(t *testing.T) {
	day := daySchedule(t, 30)
	day.Template.Open = mustTime(t, "09:00")
	day.Template.Close = mustTime(t, "10:00")

	from := mustTime(t, "08:00")
	to := mustTime(t, "12:00")
	slots, err := schedule.ComputeSlots(day, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slotStarts(slots))
}

func TestComputeSlots_OverrideClosesSlot(t *testing.T) {
	day := daySchedule(t, 30)
	day.Template.Open = mustTime(t, "09:00")
	day.Template.Close = mustTime(t, "10:30")
	closed := mustTime(t, "09:30")
	day.Overrides = []schedule.CapacityOverride{
		{Date: &day.Date, SlotStart: closed, Capacity: 0},
	}

	slots, err := schedule.ComputeSlots(day, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, slotStarts(slots))
}

func TestComputeSlots_InvalidInput(t *testing.T) {
	day := daySchedule(t, 0)
	_, err := schedule.ComputeSlots(day, nil, nil)
	require.ErrorIs(t, err, schedule.ErrInvalidDuration)

	day = daySchedule(t, 30)
	day.Template.IntervalMinutes = 0
	_, err = schedule.ComputeSlots(day, nil, nil)
	require.ErrorIs(t, err, schedule.ErrInvalidTemplate)
}

func TestContainsSlot(t *testing.T) {
	tpl := validTemplate(t)
	tpl.Open = mustTime(t, "09:00")
	tpl.Close = mustTime(t, "11:00")

	testCases := []struct {
		name     string
		slot     string
		duration int
		expected bool
	}{
		{name: "on-grid slot with fitting duration", slot: "09:30", duration: 30, expected: true},
		{name: "last start that fits a long duration", slot: "10:00", duration: 60, expected: true},
		{name: "on-grid slot whose duration overruns close", slot: "10:30", duration: 60, expected: false},
		{name: "off-grid slot", slot: "09:15", duration: 30, expected: false},
		{name: "slot before opening", slot: "08:30", duration: 30, expected: false},
		{name: "slot at close", slot: "11:00", duration: 30, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := schedule.ContainsSlot(tpl, tc.duration, mustTime(t, tc.slot))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}
