package api

import (
	"errors"
	"net/http"

	"clinic-booking/internal/domain/schedule"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Day availability
// @Description Compute bookable slots for a service on a single date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param from query string false "Window start (HH:MM)"
// @Param to query string false "Window end (HH:MM)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service_id", nil)
		return
	}
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	filter, err := parseRangeFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		return
	}

	view, err := h.q.Day(c.Request.Context(), tenantID, serviceID, date, filter)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, errs.ErrConfiguration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Schedule configuration error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}

// @Summary Batch availability
// @Description Compute bookable slots for each day in an inclusive date range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param service_id query string true "Service ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Param from query string false "Window start (HH:MM)"
// @Param to query string false "Window end (HH:MM)"
// @Success 200 {object} resdto.BatchAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/batch [get]
func (h *AvailabilityHandler) Batch(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service_id", nil)
		return
	}
	startDate, err := schedule.ParseDate(c.Query("start_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start_date", nil)
		return
	}
	endDate, err := schedule.ParseDate(c.Query("end_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end_date", nil)
		return
	}

	filter, err := parseRangeFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		return
	}

	views, err := h.q.Batch(c.Request.Context(), tenantID, serviceID, startDate, endDate, filter)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End date precedes start date", nil)
		case errors.Is(err, errs.ErrRangeTooLarge):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Date range too large", nil)
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, errs.ErrConfiguration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Schedule configuration error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailabilityViews(views))
}

func parseRangeFilter(c *gin.Context) (queries.DayRangeFilter, error) {
	var filter queries.DayRangeFilter
	if from := c.Query("from"); from != "" {
		t, err := schedule.ParseTimeOfDay(from)
		if err != nil {
			return filter, err
		}
		filter.RangeStart = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := schedule.ParseTimeOfDay(to)
		if err != nil {
			return filter, err
		}
		filter.RangeEnd = &t
	}
	return filter, nil
}
