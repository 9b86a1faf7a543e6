package commands

import (
	"context"
	"encoding/json"
	"time"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/reservation"
	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationTopic = "appointments"

type CreateAppointmentRequest struct {
	TenantID   uuid.UUID
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
	SlotStart  schedule.TimeOfDay
}

type CreateAppointmentResult struct {
	AppointmentID uuid.UUID
}

type AppointmentCommands interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reason *string) error
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	uow   shared.UnitOfWork
	locks shared.LockManager
	cfg   config.SchedConfig
	clock clock.Clock
}

func NewAppointmentUseCase(uow shared.UnitOfWork, locks shared.LockManager, cfg config.SchedConfig, clk clock.Clock) AppointmentCommands {
	return &appointmentUseCaseImpl{uow: uow, locks: locks, cfg: cfg, clock: clk}
}

// Create books a slot with the reserve-then-commit protocol: acquire the
// slot lock (which rechecks capacity with fresh counts), persist the
// appointment, then release the lock. Once the row is committed the
// occupancy count itself holds the slot, so the lock is no longer needed.
func (uc *appointmentUseCaseImpl) Create(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error) {
	if err := uc.validateSlot(ctx, req); err != nil {
		return nil, err
	}

	claim := reservation.SlotClaim{
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		SlotStart: req.SlotStart,
	}
	token, err := uc.locks.TryAcquire(ctx, claim, uc.cfg.LockTTL)
	if err != nil {
		return nil, err
	}

	appt := appointment.NewAppointment(req.TenantID, req.CustomerID, req.ServiceID, req.Date, req.SlotStart)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Appointments().Create(ctx, tx.DB(), appt); derr != nil {
			return derr
		}
		return uc.enqueueStatusJob(ctx, tx, appt.ID(), "appointment.created", appointment.StatusPending)
	})

	// Release on both paths: on success the committed row occupies the
	// slot; on failure the slot must reopen for other attempts.
	if relErr := uc.locks.Release(ctx, claim, token); relErr != nil && err == nil {
		err = relErr
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateAppointmentResult{AppointmentID: appt.ID()}, nil
}

// validateSlot rejects slots the template could never produce, before any
// lock traffic happens.
func (uc *appointmentUseCaseImpl) validateSlot(ctx context.Context, req CreateAppointmentRequest) error {
	reads := uc.uow.Reads()

	duration, err := reads.ServiceDuration(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrServiceNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	tpl, err := reads.TemplateForWeekday(ctx, req.TenantID, req.Date.Weekday())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if tpl == nil {
		return errs.Mark(errs.New("no slots offered on requested day"), errs.ErrSlotUnavailable)
	}

	ok, err := schedule.ContainsSlot(*tpl, duration, req.SlotStart)
	if err != nil {
		return errs.Mark(err, errs.ErrConfiguration)
	}
	if !ok {
		return errs.Mark(errs.New("requested slot does not exist on this day"), errs.ErrSlotUnavailable)
	}
	return nil
}

func (uc *appointmentUseCaseImpl) Approve(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, appointment.StatusApproved, nil, "appointment.approved")
}

func (uc *appointmentUseCaseImpl) Reject(ctx context.Context, id uuid.UUID, reason *string) error {
	return uc.transition(ctx, id, appointment.StatusRejected, reason, "appointment.rejected")
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, appointment.StatusCancelled, nil, "appointment.cancelled")
}

func (uc *appointmentUseCaseImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, appointment.StatusCompleted, nil, "appointment.completed")
}

// transition applies the lifecycle state machine with a guarded update.
// The WHERE status = $current predicate means two staff members acting at
// once cannot both win; the loser surfaces an invalid-transition error.
func (uc *appointmentUseCaseImpl) transition(ctx context.Context, id uuid.UUID, to appointment.Status, reason *string, kind string) error {
	snap, err := uc.uow.Reads().AppointmentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.Status.CanTransitionTo(to) {
		return errs.Mark(
			errs.Newf("cannot move %s appointment to %s", snap.Status, to),
			errs.ErrInvalidTransition)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, derr := tx.Appointments().UpdateStatus(ctx, tx.DB(), id, snap.Status, to, reason)
		if derr != nil {
			return derr
		}
		if !updated {
			return errs.Mark(errs.New("appointment changed concurrently"), errs.ErrInvalidTransition)
		}
		return uc.enqueueStatusJob(ctx, tx, id, kind, to)
	})
	if err != nil {
		if errs.Is(err, errs.ErrInvalidTransition) {
			return err
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *appointmentUseCaseImpl) enqueueStatusJob(ctx context.Context, tx shared.Tx, apptID uuid.UUID, kind string, status appointment.Status) error {
	payload, err := json.Marshal(map[string]string{
		"appointment_id": apptID.String(),
		"status":         status.String(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, notificationTopic, payload, uc.clock.Now())
}
