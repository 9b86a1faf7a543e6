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

type RequestRescheduleInput struct {
	AppointmentID uuid.UUID
	ProposedDate  time.Time
	ProposedSlot  schedule.TimeOfDay
}

type RequestRescheduleResult struct {
	RequestID uuid.UUID
}

type RescheduleCommands interface {
	Request(ctx context.Context, in RequestRescheduleInput) (*RequestRescheduleResult, error)
	Approve(ctx context.Context, requestID uuid.UUID) error
	Reject(ctx context.Context, requestID uuid.UUID) error
}

type rescheduleUseCaseImpl struct {
	uow   shared.UnitOfWork
	locks shared.LockManager
	cfg   config.SchedConfig
	clock clock.Clock
}

func NewRescheduleUseCase(uow shared.UnitOfWork, locks shared.LockManager, cfg config.SchedConfig, clk clock.Clock) RescheduleCommands {
	return &rescheduleUseCaseImpl{uow: uow, locks: locks, cfg: cfg, clock: clk}
}

func (uc *rescheduleUseCaseImpl) Request(ctx context.Context, in RequestRescheduleInput) (*RequestRescheduleResult, error) {
	snap, err := uc.loadAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	original := appointment.ReconstructAppointment(
		snap.ID, snap.TenantID, snap.CustomerID, snap.ServiceID,
		snap.Date, snap.SlotStart, snap.Status, nil, time.Time{}, time.Time{})
	req, err := appointment.NewRescheduleRequest(original, in.ProposedDate, in.ProposedSlot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	// The proposed slot must at least exist; capacity is only checked at
	// approval time, when it is actually claimed.
	if verr := uc.validateProposedSlot(ctx, snap, in.ProposedDate, in.ProposedSlot); verr != nil {
		return nil, verr
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reschedules().Create(ctx, tx.DB(), req); derr != nil {
			return derr
		}
		return uc.enqueueJob(ctx, tx, "reschedule.requested", map[string]string{
			"request_id":     req.ID().String(),
			"appointment_id": snap.ID.String(),
		})
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &RequestRescheduleResult{RequestID: req.ID()}, nil
}

// Approve runs the reserve-then-commit swap. The proposed slot is booked
// first as a fresh pending appointment; only when that succeeds does one
// transaction cancel the original and resolve the request. A failed
// reservation leaves the request pending and the original untouched.
func (uc *rescheduleUseCaseImpl) Approve(ctx context.Context, requestID uuid.UUID) error {
	reqSnap, err := uc.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if reqSnap.Status != appointment.RequestPending {
		return errs.Mark(errs.New("request already resolved"), errs.ErrRescheduleNotPending)
	}
	apptSnap, err := uc.loadAppointment(ctx, reqSnap.AppointmentID)
	if err != nil {
		return err
	}
	if !apptSnap.Status.OccupiesSlot() {
		return errs.Mark(errs.New("original appointment no longer active"), errs.ErrInvalidTransition)
	}

	claim := reservation.SlotClaim{
		TenantID:  apptSnap.TenantID,
		ServiceID: apptSnap.ServiceID,
		Date:      reqSnap.ProposedDate,
		SlotStart: reqSnap.ProposedSlot,
	}
	token, err := uc.locks.TryAcquire(ctx, claim, uc.cfg.LockTTL)
	if err != nil {
		return err
	}

	moved := appointment.NewAppointment(
		apptSnap.TenantID, apptSnap.CustomerID, apptSnap.ServiceID,
		reqSnap.ProposedDate, reqSnap.ProposedSlot)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Appointments().Create(ctx, tx.DB(), moved); derr != nil {
			return derr
		}
		cancelled, derr := tx.Appointments().UpdateStatus(ctx, tx.DB(), apptSnap.ID, apptSnap.Status, appointment.StatusCancelled, nil)
		if derr != nil {
			return derr
		}
		if !cancelled {
			return errs.Mark(errs.New("original appointment changed concurrently"), errs.ErrInvalidTransition)
		}
		resolved, derr := tx.Reschedules().Resolve(ctx, tx.DB(), requestID, appointment.RequestApproved)
		if derr != nil {
			return derr
		}
		if !resolved {
			return errs.Mark(errs.New("request resolved concurrently"), errs.ErrRescheduleNotPending)
		}
		return uc.enqueueJob(ctx, tx, "reschedule.approved", map[string]string{
			"request_id":         requestID.String(),
			"old_appointment_id": apptSnap.ID.String(),
			"new_appointment_id": moved.ID().String(),
		})
	})

	if relErr := uc.locks.Release(ctx, claim, token); relErr != nil && err == nil {
		err = relErr
	}
	if err != nil {
		if errs.Is(err, errs.ErrInvalidTransition) || errs.Is(err, errs.ErrRescheduleNotPending) {
			return err
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *rescheduleUseCaseImpl) Reject(ctx context.Context, requestID uuid.UUID) error {
	reqSnap, err := uc.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if reqSnap.Status != appointment.RequestPending {
		return errs.Mark(errs.New("request already resolved"), errs.ErrRescheduleNotPending)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resolved, derr := tx.Reschedules().Resolve(ctx, tx.DB(), requestID, appointment.RequestRejected)
		if derr != nil {
			return derr
		}
		if !resolved {
			return errs.Mark(errs.New("request resolved concurrently"), errs.ErrRescheduleNotPending)
		}
		return uc.enqueueJob(ctx, tx, "reschedule.rejected", map[string]string{
			"request_id": requestID.String(),
		})
	})
	if err != nil {
		if errs.Is(err, errs.ErrRescheduleNotPending) {
			return err
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *rescheduleUseCaseImpl) loadAppointment(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	snap, err := uc.uow.Reads().AppointmentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (uc *rescheduleUseCaseImpl) loadRequest(ctx context.Context, id uuid.UUID) (*shared.RescheduleSnapshot, error) {
	snap, err := uc.uow.Reads().RescheduleByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRescheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (uc *rescheduleUseCaseImpl) validateProposedSlot(ctx context.Context, appt *shared.AppointmentSnapshot, date time.Time, slot schedule.TimeOfDay) error {
	reads := uc.uow.Reads()

	duration, err := reads.ServiceDuration(ctx, appt.TenantID, appt.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrServiceNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	tpl, err := reads.TemplateForWeekday(ctx, appt.TenantID, date.Weekday())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if tpl == nil {
		return errs.Mark(errs.New("no slots offered on proposed day"), errs.ErrSlotUnavailable)
	}
	ok, err := schedule.ContainsSlot(*tpl, duration, slot)
	if err != nil {
		return errs.Mark(err, errs.ErrConfiguration)
	}
	if !ok {
		return errs.Mark(errs.New("proposed slot does not exist on that day"), errs.ErrSlotUnavailable)
	}
	return nil
}

func (uc *rescheduleUseCaseImpl) enqueueJob(ctx context.Context, tx shared.Tx, kind string, fields map[string]string) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, notificationTopic, payload, uc.clock.Now())
}
