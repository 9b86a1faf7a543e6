//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	slot, err := schedule.ParseTimeOfDay("10:00")
	require.NoError(t, err)
	date, err := schedule.ParseDate("2026-03-16")
	require.NoError(t, err)
	return appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), date, slot)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    appointment.Status
		to      appointment.Status
		allowed bool
	}{
		{appointment.StatusPending, appointment.StatusApproved, true},
		{appointment.StatusPending, appointment.StatusRejected, true},
		{appointment.StatusPending, appointment.StatusCancelled, true},
		{appointment.StatusPending, appointment.StatusCompleted, false},
		{appointment.StatusApproved, appointment.StatusCancelled, true},
		{appointment.StatusApproved, appointment.StatusCompleted, true},
		{appointment.StatusApproved, appointment.StatusRejected, false},
		{appointment.StatusApproved, appointment.StatusPending, false},
		{appointment.StatusRejected, appointment.StatusApproved, false},
		{appointment.StatusCancelled, appointment.StatusPending, false},
		{appointment.StatusCompleted, appointment.StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, appointment.StatusPending.OccupiesSlot())
	assert.True(t, appointment.StatusApproved.OccupiesSlot())
	assert.False(t, appointment.StatusRejected.OccupiesSlot())
	assert.False(t, appointment.StatusCancelled.OccupiesSlot())
	assert.False(t, appointment.StatusCompleted.OccupiesSlot())

	assert.False(t, appointment.StatusPending.IsTerminal())
	assert.False(t, appointment.StatusApproved.IsTerminal())
	assert.True(t, appointment.StatusRejected.IsTerminal())
	assert.True(t, appointment.StatusCancelled.IsTerminal())
	assert.True(t, appointment.StatusCompleted.IsTerminal())

	assert.False(t, appointment.Status("unknown").IsValid())
}

func TestAppointment_Transition(t *testing.T) {
	appt := newPendingAppointment(t)
	require.Equal(t, appointment.StatusPending, appt.Status())

	require.NoError(t, appt.Transition(appointment.StatusApproved))
	require.Equal(t, appointment.StatusApproved, appt.Status())

	require.NoError(t, appt.Transition(appointment.StatusCompleted))
	require.Equal(t, appointment.StatusCompleted, appt.Status())

	err := appt.Transition(appointment.StatusCancelled)
	require.ErrorIs(t, err, appointment.ErrIllegalTransition)

	err = appt.Transition(appointment.Status("bogus"))
	require.ErrorIs(t, err, appointment.ErrInvalidStatus)
}

func TestAppointment_Reject(t *testing.T) {
	appt := newPendingAppointment(t)
	reason := "double booked"

	require.NoError(t, appt.Reject(&reason))
	assert.Equal(t, appointment.StatusRejected, appt.Status())
	require.NotNil(t, appt.RejectionReason())
	assert.Equal(t, reason, *appt.RejectionReason())

	// rejecting twice is illegal
	err := appt.Reject(nil)
	require.ErrorIs(t, err, appointment.ErrIllegalTransition)
}

func TestNewRescheduleRequest(t *testing.T) {
	appt := newPendingAppointment(t)
	proposedDate := appt.Date().AddDate(0, 0, 1)
	proposedSlot := appt.SlotStart().Add(60)

	req, err := appointment.NewRescheduleRequest(appt, proposedDate, proposedSlot)
	require.NoError(t, err)
	assert.Equal(t, appt.ID(), req.AppointmentID())
	assert.True(t, req.IsPending())

	t.Run("error: same slot proposed", func(t *testing.T) {
		_, err := appointment.NewRescheduleRequest(appt, appt.Date(), appt.SlotStart())
		require.ErrorIs(t, err, appointment.ErrRescheduleSameSlot)
	})

	t.Run("error: terminal appointment not eligible", func(t *testing.T) {
		done := newPendingAppointment(t)
		require.NoError(t, done.Transition(appointment.StatusCancelled))
		_, err := appointment.NewRescheduleRequest(done, proposedDate, proposedSlot)
		require.ErrorIs(t, err, appointment.ErrRescheduleNotEligible)
	})

	t.Run("same slot on another date is allowed", func(t *testing.T) {
		req, err := appointment.NewRescheduleRequest(appt, proposedDate, appt.SlotStart())
		require.NoError(t, err)
		assert.Equal(t, appt.SlotStart(), req.ProposedSlot())
	})
}

func TestRescheduleRequest_Resolve(t *testing.T) {
	appt := newPendingAppointment(t)
	req, err := appointment.NewRescheduleRequest(appt, appt.Date().AddDate(0, 0, 1), appt.SlotStart())
	require.NoError(t, err)

	require.NoError(t, req.Resolve(appointment.RequestApproved))
	assert.Equal(t, appointment.RequestApproved, req.Status())
	assert.False(t, req.IsPending())

	err = req.Resolve(appointment.RequestRejected)
	require.ErrorIs(t, err, appointment.ErrRescheduleResolved)

	fresh, err := appointment.NewRescheduleRequest(appt, appt.Date().AddDate(0, 0, 2), appt.SlotStart())
	require.NoError(t, err)
	err = fresh.Resolve(appointment.RequestPending)
	require.ErrorIs(t, err, appointment.ErrInvalidRequestDecision)
}

func TestReconstructAppointment(t *testing.T) {
	id := uuid.New()
	tenantID := uuid.New()
	slot, err := schedule.ParseTimeOfDay("14:30")
	require.NoError(t, err)
	date, err := schedule.ParseDate("2026-04-01")
	require.NoError(t, err)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	appt := appointment.ReconstructAppointment(
		id, tenantID, uuid.New(), uuid.New(), date, slot,
		appointment.StatusApproved, nil, created, created)

	assert.Equal(t, id, appt.ID())
	assert.Equal(t, appointment.StatusApproved, appt.Status())
	assert.True(t, appt.OccupiesSlot())
	assert.Equal(t, created, appt.CreatedAt())
}
