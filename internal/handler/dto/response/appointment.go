package response

import (
	"time"

	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenantId"`
	CustomerID      uuid.UUID `json:"customerId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	Date            string    `json:"date"`
	SlotStart       string    `json:"slotStart"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              v.ID,
		TenantID:        v.TenantID,
		CustomerID:      v.CustomerID,
		ServiceID:       v.ServiceID,
		Date:            v.Date,
		SlotStart:       v.SlotStart,
		Status:          v.Status,
		RejectionReason: v.RejectionReason,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromAppointmentViews(vs []*queries.AppointmentView) *AppointmentListResponse {
	items := make([]*AppointmentResponse, 0, len(vs))
	for _, v := range vs {
		items = append(items, FromAppointmentView(v))
	}
	return &AppointmentListResponse{Appointments: items}
}

type RescheduleResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	ProposedDate  string    `json:"proposedDate"`
	ProposedSlot  string    `json:"proposedSlot"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RescheduleListResponse struct {
	Requests []*RescheduleResponse `json:"requests"`
}

func FromRescheduleView(v *queries.RescheduleView) *RescheduleResponse {
	return &RescheduleResponse{
		ID:            v.ID,
		AppointmentID: v.AppointmentID,
		ProposedDate:  v.ProposedDate,
		ProposedSlot:  v.ProposedSlot,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromRescheduleViews(vs []*queries.RescheduleView) *RescheduleListResponse {
	items := make([]*RescheduleResponse, 0, len(vs))
	for _, v := range vs {
		items = append(items, FromRescheduleView(v))
	}
	return &RescheduleListResponse{Requests: items}
}
