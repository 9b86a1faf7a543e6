//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"clinic-booking/internal/handler/api"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/tests/common/httptest"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
	tenantID    uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)
	s.tenantID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("tenant_id", s.tenantID)
		c.Set("user_role", middleware.RoleCustomer)
		c.Next()
	}

	s.router.GET("/availability", authMiddleware, s.handler.Day)
	s.router.GET("/availability/batch", authMiddleware, s.handler.Batch)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestDay() {
	serviceID := uuid.New()
	url := "/availability?service_id=" + serviceID.String() + "&date=2026-03-02"

	s.Run("success: returns 200 OK with the computed slots", func() {
		view := &queries.DayAvailabilityView{
			Date: "2026-03-02",
			Slots: []queries.SlotView{
				{Start: "09:00", Capacity: 2, Remaining: 1},
				{Start: "09:30", Capacity: 2, Remaining: 2},
			},
		}
		s.mockQueries.EXPECT().
			Day(gomock.Any(), s.tenantID, serviceID, gomock.Any(), queries.DayRangeFilter{}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-03-02", response.Date)
		s.Len(response.Slots, 2)
		s.Equal(1, response.Slots[0].Remaining)
	})

	s.Run("success: forwards the from/to window", func() {
		s.mockQueries.EXPECT().
			Day(gomock.Any(), s.tenantID, serviceID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, _ any, filter queries.DayRangeFilter) (*queries.DayAvailabilityView, error) {
				s.Require().NotNil(filter.RangeStart)
				s.Require().NotNil(filter.RangeEnd)
				s.Equal("10:00", filter.RangeStart.String())
				s.Equal("12:00", filter.RangeEnd.String())
				return &queries.DayAvailabilityView{Date: "2026-03-02", Slots: []queries.SlotView{}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&from=10:00&to=12:00", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed query params", func() {
		for _, q := range []string{
			"/availability?date=2026-03-02",
			"/availability?service_id=" + serviceID.String(),
			"/availability?service_id=" + serviceID.String() + "&date=tomorrow",
			url + "&from=10",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, q, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 404 Not Found for unknown service", func() {
		s.mockQueries.EXPECT().
			Day(gomock.Any(), s.tenantID, serviceID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrServiceNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

func (s *AvailabilityHandlerTestSuite) TestBatch() {
	serviceID := uuid.New()
	url := "/availability/batch?service_id=" + serviceID.String() + "&start_date=2026-03-02&end_date=2026-03-04"

	s.Run("success: returns one entry per day", func() {
		views := []*queries.DayAvailabilityView{
			{Date: "2026-03-02", Slots: []queries.SlotView{{Start: "09:00", Capacity: 2, Remaining: 2}}},
			{Date: "2026-03-03", Slots: []queries.SlotView{}},
			{Date: "2026-03-04", Slots: []queries.SlotView{}},
		}
		s.mockQueries.EXPECT().
			Batch(gomock.Any(), s.tenantID, serviceID, gomock.Any(), gomock.Any(), queries.DayRangeFilter{}).
			Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BatchAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Days, 3)
		s.Equal("2026-03-02", response.Days[0].Date)
	})

	s.Run("success: forwards the from/to window to every day", func() {
		s.mockQueries.EXPECT().
			Batch(gomock.Any(), s.tenantID, serviceID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, _, _ any, filter queries.DayRangeFilter) ([]*queries.DayAvailabilityView, error) {
				s.Require().NotNil(filter.RangeStart)
				s.Require().NotNil(filter.RangeEnd)
				s.Equal("10:00", filter.RangeStart.String())
				s.Equal("12:00", filter.RangeEnd.String())
				return []*queries.DayAvailabilityView{}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&from=10:00&to=12:00", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on a malformed window", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&from=10", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time window")
	})

	s.Run("error: maps range errors to 400", func() {
		testCases := []struct {
			name        string
			queryError  error
			expectedMsg string
		}{
			{"inverted range", errs.ErrInvalidRange, "precedes"},
			{"oversized range", errs.ErrRangeTooLarge, "too large"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					Batch(gomock.Any(), s.tenantID, serviceID, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.queryError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request when a bound is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability/batch?service_id="+serviceID.String()+"&start_date=2026-03-02", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid end_date")
	})
}
