package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	Start     string `json:"start"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

type DayAvailabilityView struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

type AppointmentView struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	ServiceID       uuid.UUID `json:"service_id"`
	Date            string    `json:"date"`
	SlotStart       string    `json:"slot_start"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RescheduleView struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	ProposedDate  string    `json:"proposed_date"`
	ProposedSlot  string    `json:"proposed_slot"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AppointmentFilter struct {
	TenantID  uuid.UUID
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int32
	Offset    int32
}
