package api

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-booking/internal/domain/schedule"
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

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a slot for the authenticated customer
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	date, err := req.ParsedDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	slot, err := req.ParsedSlotStart()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot_start", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), commands.CreateAppointmentRequest{
		TenantID:   tenantID,
		CustomerID: userID,
		ServiceID:  req.ServiceID,
		Date:       date,
		SlotStart:  slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot not offered on that day", nil)
		case errors.Is(err, errs.ErrLockConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is being booked by someone else", nil)
		case errors.Is(err, errs.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is fully booked", nil)
		case errors.Is(err, errs.ErrConfiguration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Schedule configuration error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.AppointmentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Get an appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List tenant appointments with optional status and date filters
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param start_date query string false "Earliest date (YYYY-MM-DD)"
// @Param end_date query string false "Latest date (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	filter := queries.AppointmentFilter{TenantID: tenantID}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if raw := c.Query("start_date"); raw != "" {
		d, err := schedule.ParseDate(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start_date", nil)
			return
		}
		filter.StartDate = &d
	}
	if raw := c.Query("end_date"); raw != "" {
		d, err := schedule.ParseDate(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end_date", nil)
			return
		}
		filter.EndDate = &d
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		filter.Limit = int32(n)
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offset", nil)
			return
		}
		filter.Offset = int32(n)
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Approve appointment
// @Description Move a pending appointment to approved
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/approve [post]
func (h *AppointmentHandler) Approve(c *gin.Context) {
	h.lifecycleAction(c, func(id uuid.UUID) error {
		return h.cmds.Approve(c.Request.Context(), id)
	})
}

// @Summary Reject appointment
// @Description Move a pending appointment to rejected, with an optional reason
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RejectAppointmentRequest false "Rejection details"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/reject [post]
func (h *AppointmentHandler) Reject(c *gin.Context) {
	var req reqdto.RejectAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}
	h.lifecycleAction(c, func(id uuid.UUID) error {
		return h.cmds.Reject(c.Request.Context(), id, req.GetReason())
	})
}

// @Summary Cancel appointment
// @Description Cancel a pending or approved appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.lifecycleAction(c, func(id uuid.UUID) error {
		return h.cmds.Cancel(c.Request.Context(), id)
	})
}

// @Summary Complete appointment
// @Description Move an approved appointment to completed
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.lifecycleAction(c, func(id uuid.UUID) error {
		return h.cmds.Complete(c.Request.Context(), id)
	})
}

func (h *AppointmentHandler) lifecycleAction(c *gin.Context, action func(id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := action(id); err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Transition not allowed from current status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}
