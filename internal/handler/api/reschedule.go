package api

import (
	"errors"
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RescheduleHandler struct {
	cmds commands.RescheduleCommands
	q    queries.RescheduleQueries
}

func NewRescheduleHandler(cmds commands.RescheduleCommands, q queries.RescheduleQueries) *RescheduleHandler {
	return &RescheduleHandler{cmds: cmds, q: q}
}

// @Summary Request reschedule
// @Description Propose a new slot for an active appointment
// @Tags reschedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RequestRescheduleRequest true "Proposed slot"
// @Success 201 {object} resdto.RescheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/reschedule [post]
func (h *RescheduleHandler) Request(c *gin.Context) {
	apptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RequestRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	date, err := req.ParsedDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid proposed_date", nil)
		return
	}
	slot, err := req.ParsedSlot()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid proposed_slot", nil)
		return
	}

	result, err := h.cmds.Request(c.Request.Context(), commands.RequestRescheduleInput{
		AppointmentID: apptID,
		ProposedDate:  date,
		ProposedSlot:  slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Proposed slot not offered on that day", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Appointment cannot be rescheduled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.RequestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reschedule request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRescheduleView(view))
}

// @Summary List reschedule requests
// @Description List tenant reschedule requests, optionally by status
// @Tags reschedules
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} resdto.RescheduleListResponse
// @Router /reschedules [get]
func (h *RescheduleHandler) List(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}
	views, err := h.q.List(c.Request.Context(), tenantID, status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRescheduleViews(views))
}

// @Summary Approve reschedule
// @Description Reserve the proposed slot, then cancel the original appointment
// @Tags reschedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RescheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reschedules/{id}/approve [post]
func (h *RescheduleHandler) Approve(c *gin.Context) {
	h.resolve(c, func(id uuid.UUID) error {
		return h.cmds.Approve(c.Request.Context(), id)
	})
}

// @Summary Reject reschedule
// @Description Reject a pending reschedule request; the original stays intact
// @Tags reschedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RescheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reschedules/{id}/reject [post]
func (h *RescheduleHandler) Reject(c *gin.Context) {
	h.resolve(c, func(id uuid.UUID) error {
		return h.cmds.Reject(c.Request.Context(), id)
	})
}

func (h *RescheduleHandler) resolve(c *gin.Context, action func(id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := action(id); err != nil {
		switch {
		case errors.Is(err, errs.ErrRescheduleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reschedule request not found", nil)
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, errs.ErrRescheduleNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request already resolved", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Original appointment is no longer active", nil)
		case errors.Is(err, errs.ErrLockConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Proposed slot is being booked by someone else", nil)
		case errors.Is(err, errs.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Proposed slot is fully booked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reschedule request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRescheduleView(view))
}
