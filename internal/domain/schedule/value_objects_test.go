//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "success: midnight", input: "00:00", expected: "00:00"},
		{name: "success: morning slot", input: "09:30", expected: "09:30"},
		{name: "success: end of day", input: "23:59", expected: "23:59"},
		{name: "error: hour out of range", input: "24:00", wantErr: true},
		{name: "error: minute out of range", input: "12:60", wantErr: true},
		{name: "error: missing colon", input: "0930h", wantErr: true},
		{name: "error: too short", input: "9:30", wantErr: true},
		{name: "error: empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestTimeOfDay_Arithmetic(t *testing.T) {
	nineThirty, err := schedule.NewTimeOfDay(9, 30)
	require.NoError(t, err)

	assert.Equal(t, 9, nineThirty.Hour())
	assert.Equal(t, 30, nineThirty.Minute())
	assert.Equal(t, 570, nineThirty.Minutes())
	assert.Equal(t, "10:15", nineThirty.Add(45).String())

	ten, err := schedule.NewTimeOfDay(10, 0)
	require.NoError(t, err)
	assert.True(t, nineThirty.Before(ten))
	assert.True(t, ten.After(nineThirty))
	assert.False(t, ten.Before(ten))
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", schedule.FormatDate(d))
	assert.Equal(t, time.Saturday, d.Weekday())

	_, err = schedule.ParseDate("2026-13-01")
	require.ErrorIs(t, err, schedule.ErrInvalidDate)

	_, err = schedule.ParseDate("14/03/2026")
	require.ErrorIs(t, err, schedule.ErrInvalidDate)
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, schedule.SameDate(morning, evening))
	assert.False(t, schedule.SameDate(evening, nextDay))
}
