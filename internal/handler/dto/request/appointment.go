package request

import (
	"strings"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	SlotStart string    `json:"slot_start" binding:"required"`
}

func (r CreateAppointmentRequest) ParsedDate() (time.Time, error) {
	return schedule.ParseDate(r.Date)
}

func (r CreateAppointmentRequest) ParsedSlotStart() (schedule.TimeOfDay, error) {
	return schedule.ParseTimeOfDay(r.SlotStart)
}

type RejectAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r RejectAppointmentRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type RequestRescheduleRequest struct {
	ProposedDate string `json:"proposed_date" binding:"required"`
	ProposedSlot string `json:"proposed_slot" binding:"required"`
}

func (r RequestRescheduleRequest) ParsedDate() (time.Time, error) {
	return schedule.ParseDate(r.ProposedDate)
}

func (r RequestRescheduleRequest) ParsedSlot() (schedule.TimeOfDay, error) {
	return schedule.ParseTimeOfDay(r.ProposedSlot)
}
