//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/reservation"
	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"
	sharedmock "clinic-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apptFixture struct {
	ctrl  *gomock.Controller
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	reads *sharedmock.MockCommandReads
	appts *sharedmock.MockAppointmentRepository
	resch *sharedmock.MockRescheduleRepository
	jobs  *sharedmock.MockNotificationRepository
	locks *sharedmock.MockLockManager
	uc    commands.AppointmentCommands
}

func newApptFixture(t *testing.T) *apptFixture {
	ctrl := gomock.NewController(t)
	f := &apptFixture{
		ctrl:  ctrl,
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		appts: sharedmock.NewMockAppointmentRepository(ctrl),
		resch: sharedmock.NewMockRescheduleRepository(ctrl),
		jobs:  sharedmock.NewMockNotificationRepository(ctrl),
		locks: sharedmock.NewMockLockManager(ctrl),
	}
	f.uow.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appts).AnyTimes()
	f.tx.EXPECT().Reschedules().Return(f.resch).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.jobs).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	cfg := config.SchedConfig{LockTTL: 30 * time.Second, BatchMaxDays: 31}
	f.uc = commands.NewAppointmentUseCase(f.uow, f.locks, cfg, clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
	return f
}

// expectWithin routes the unit-of-work closure through the mock Tx.
func (f *apptFixture) expectWithin() *gomock.Call {
	return f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func validCreateReq() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		TenantID:   uuid.New(),
		CustomerID: uuid.New(),
		ServiceID:  uuid.New(),
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), // Monday
		SlotStart:  mustTime("10:00"),
	}
}

func mondayTemplate(tenantID uuid.UUID) *schedule.SlotTemplate {
	return &schedule.SlotTemplate{
		TenantID:        tenantID,
		DayOfWeek:       time.Monday,
		Open:            mustTime("09:00"),
		Close:           mustTime("17:00"),
		IntervalMinutes: 30,
		DefaultCapacity: 2,
	}
}

func mustTime(s string) schedule.TimeOfDay {
	t, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (f *apptFixture) expectValidSlot(req commands.CreateAppointmentRequest) {
	f.reads.EXPECT().ServiceDuration(gomock.Any(), req.TenantID, req.ServiceID).Return(30, nil)
	f.reads.EXPECT().TemplateForWeekday(gomock.Any(), req.TenantID, time.Monday).Return(mondayTemplate(req.TenantID), nil)
}

func TestAppointmentCreate(t *testing.T) {
	t.Run("books the slot and releases the lock", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()
		token := uuid.New()

		f.expectValidSlot(req)
		f.locks.EXPECT().
			TryAcquire(gomock.Any(), gomock.Any(), 30*time.Second).
			DoAndReturn(func(_ context.Context, claim reservation.SlotClaim, _ time.Duration) (uuid.UUID, error) {
				assert.Equal(t, req.TenantID, claim.TenantID)
				assert.Equal(t, req.SlotStart, claim.SlotStart)
				return token, nil
			})
		f.expectWithin()
		f.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "appointment.created", "appointments", gomock.Any(), gomock.Any()).Return(nil)
		f.locks.EXPECT().Release(gomock.Any(), gomock.Any(), token).Return(nil)

		result, err := f.uc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.AppointmentID)
	})

	t.Run("lock conflict surfaces without touching the database", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()

		f.expectValidSlot(req)
		f.locks.EXPECT().TryAcquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("already held"), errs.ErrLockConflict))

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrLockConflict)
	})

	t.Run("capacity exceeded surfaces from the acquisition recheck", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()

		f.expectValidSlot(req)
		f.locks.EXPECT().TryAcquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("slot full"), errs.ErrCapacityExceeded))

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
	})

	t.Run("unknown service maps to not found", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()

		f.reads.EXPECT().ServiceDuration(gomock.Any(), req.TenantID, req.ServiceID).Return(0, notFoundErr())

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrServiceNotFound)
	})

	t.Run("day without a template is unavailable", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()

		f.reads.EXPECT().ServiceDuration(gomock.Any(), req.TenantID, req.ServiceID).Return(30, nil)
		f.reads.EXPECT().TemplateForWeekday(gomock.Any(), req.TenantID, time.Monday).Return(nil, nil)

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrSlotUnavailable)
	})

	t.Run("off-grid slot is unavailable", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()
		req.SlotStart = mustTime("10:15")

		f.expectValidSlot(req)

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrSlotUnavailable)
	})

	t.Run("releases the lock when the transaction fails", func(t *testing.T) {
		f := newApptFixture(t)
		req := validCreateReq()
		token := uuid.New()

		f.expectValidSlot(req)
		f.locks.EXPECT().TryAcquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(token, nil)
		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errs.New("tx aborted"))
		f.locks.EXPECT().Release(gomock.Any(), gomock.Any(), token).Return(nil)

		_, err := f.uc.Create(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func pendingSnapshot(id uuid.UUID) *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:         id,
		TenantID:   uuid.New(),
		CustomerID: uuid.New(),
		ServiceID:  uuid.New(),
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		SlotStart:  mustTime("10:00"),
		Status:     appointment.StatusPending,
	}
}

func TestAppointmentTransitions(t *testing.T) {
	t.Run("approve applies the guarded update and enqueues a job", func(t *testing.T) {
		f := newApptFixture(t)
		id := uuid.New()

		f.reads.EXPECT().AppointmentByID(gomock.Any(), id).Return(pendingSnapshot(id), nil)
		f.expectWithin()
		f.appts.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusPending, appointment.StatusApproved, gomock.Nil()).
			Return(true, nil)
		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "appointment.approved", "appointments", gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.uc.Approve(context.Background(), id))
	})

	t.Run("reject carries the reason through", func(t *testing.T) {
		f := newApptFixture(t)
		id := uuid.New()
		reason := "double booked"

		f.reads.EXPECT().AppointmentByID(gomock.Any(), id).Return(pendingSnapshot(id), nil)
		f.expectWithin()
		f.appts.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusPending, appointment.StatusRejected, &reason).
			Return(true, nil)
		f.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "appointment.rejected", "appointments", gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.uc.Reject(context.Background(), id, &reason))
	})

	t.Run("illegal transition is refused before any write", func(t *testing.T) {
		f := newApptFixture(t)
		id := uuid.New()
		snap := pendingSnapshot(id)
		snap.Status = appointment.StatusCompleted

		f.reads.EXPECT().AppointmentByID(gomock.Any(), id).Return(snap, nil)

		err := f.uc.Cancel(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("losing the guarded update reports invalid transition", func(t *testing.T) {
		f := newApptFixture(t)
		id := uuid.New()

		f.reads.EXPECT().AppointmentByID(gomock.Any(), id).Return(pendingSnapshot(id), nil)
		f.expectWithin()
		f.appts.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, appointment.StatusPending, appointment.StatusCancelled, gomock.Nil()).
			Return(false, nil)

		err := f.uc.Cancel(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("missing appointment maps to not found", func(t *testing.T) {
		f := newApptFixture(t)
		id := uuid.New()

		f.reads.EXPECT().AppointmentByID(gomock.Any(), id).Return(nil, notFoundErr())

		err := f.uc.Complete(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
	})
}
