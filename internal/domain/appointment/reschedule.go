package appointment

import (
	"errors"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrRescheduleResolved     = errors.New("reschedule request already resolved")
	ErrRescheduleNotEligible  = errors.New("appointment cannot be rescheduled")
	ErrRescheduleSameSlot     = errors.New("proposed slot equals the current slot")
	ErrInvalidRequestDecision = errors.New("invalid reschedule decision")
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string { return string(s) }

// RescheduleRequest is a customer's proposal to move an existing
// appointment. The original keeps occupying its slot until staff approve,
// and approval reserves the proposed slot before the original is released.
type RescheduleRequest struct {
	id            uuid.UUID
	appointmentID uuid.UUID
	proposedDate  time.Time
	proposedSlot  schedule.TimeOfDay
	status        RequestStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// NewRescheduleRequest validates eligibility against the original
// appointment: only pending or approved bookings can be moved.
func NewRescheduleRequest(original *Appointment, proposedDate time.Time, proposedSlot schedule.TimeOfDay) (*RescheduleRequest, error) {
	if !original.OccupiesSlot() {
		return nil, ErrRescheduleNotEligible
	}
	if schedule.SameDate(original.Date(), proposedDate) && original.SlotStart() == proposedSlot {
		return nil, ErrRescheduleSameSlot
	}
	return &RescheduleRequest{
		id:            uuid.New(),
		appointmentID: original.ID(),
		proposedDate:  proposedDate,
		proposedSlot:  proposedSlot,
		status:        RequestPending,
	}, nil
}

func ReconstructRescheduleRequest(
	id, appointmentID uuid.UUID,
	proposedDate time.Time,
	proposedSlot schedule.TimeOfDay,
	status RequestStatus,
	createdAt, updatedAt time.Time,
) *RescheduleRequest {
	return &RescheduleRequest{
		id:            id,
		appointmentID: appointmentID,
		proposedDate:  proposedDate,
		proposedSlot:  proposedSlot,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *RescheduleRequest) Resolve(decision RequestStatus) error {
	if decision != RequestApproved && decision != RequestRejected {
		return ErrInvalidRequestDecision
	}
	if r.status != RequestPending {
		return ErrRescheduleResolved
	}
	r.status = decision
	return nil
}

func (r *RescheduleRequest) IsPending() bool { return r.status == RequestPending }

func (r *RescheduleRequest) ID() uuid.UUID                    { return r.id }
func (r *RescheduleRequest) AppointmentID() uuid.UUID         { return r.appointmentID }
func (r *RescheduleRequest) ProposedDate() time.Time          { return r.proposedDate }
func (r *RescheduleRequest) ProposedSlot() schedule.TimeOfDay { return r.proposedSlot }
func (r *RescheduleRequest) Status() RequestStatus            { return r.status }
func (r *RescheduleRequest) CreatedAt() time.Time             { return r.createdAt }
func (r *RescheduleRequest) UpdatedAt() time.Time             { return r.updatedAt }
