package appointment

import (
	"errors"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Appointment is the booked occupancy of one slot. It is never physically
// deleted; cancellation and rejection are statuses so the audit trail
// survives.
type Appointment struct {
	id              uuid.UUID
	tenantID        uuid.UUID
	customerID      uuid.UUID
	serviceID       uuid.UUID
	date            time.Time
	slotStart       schedule.TimeOfDay
	status          Status
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewAppointment creates a fresh booking in the pending state. Callers must
// already hold the slot's reservation lock; the entity itself carries no
// concurrency control.
func NewAppointment(tenantID, customerID, serviceID uuid.UUID, date time.Time, slotStart schedule.TimeOfDay) *Appointment {
	return &Appointment{
		id:         uuid.New(),
		tenantID:   tenantID,
		customerID: customerID,
		serviceID:  serviceID,
		date:       date,
		slotStart:  slotStart,
		status:     StatusPending,
	}
}

func ReconstructAppointment(
	id, tenantID, customerID, serviceID uuid.UUID,
	date time.Time,
	slotStart schedule.TimeOfDay,
	status Status,
	rejectionReason *string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:              id,
		tenantID:        tenantID,
		customerID:      customerID,
		serviceID:       serviceID,
		date:            date,
		slotStart:       slotStart,
		status:          status,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Transition moves the appointment to next, enforcing the state machine.
func (a *Appointment) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	a.status = next
	return nil
}

func (a *Appointment) Reject(reason *string) error {
	if err := a.Transition(StatusRejected); err != nil {
		return err
	}
	a.rejectionReason = reason
	return nil
}

func (a *Appointment) OccupiesSlot() bool {
	return a.status.OccupiesSlot()
}

func (a *Appointment) ID() uuid.UUID                 { return a.id }
func (a *Appointment) TenantID() uuid.UUID           { return a.tenantID }
func (a *Appointment) CustomerID() uuid.UUID         { return a.customerID }
func (a *Appointment) ServiceID() uuid.UUID          { return a.serviceID }
func (a *Appointment) Date() time.Time               { return a.date }
func (a *Appointment) SlotStart() schedule.TimeOfDay { return a.slotStart }
func (a *Appointment) Status() Status                { return a.status }
func (a *Appointment) RejectionReason() *string      { return a.rejectionReason }
func (a *Appointment) CreatedAt() time.Time          { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time          { return a.updatedAt }
