//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/handler/api"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
	"facility-booking/tests/common/builder"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/common/testutil"
	commandsmock "facility-booking/tests/mock/commands"
	queriesmock "facility-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	sessionID    uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.sessionID = uuid.New()

	// Stand-in for the session middleware
	sessionMiddleware := func(c *gin.Context) {
		c.Set("session_id", s.sessionID)
		c.Next()
	}

	s.router.POST("/bookings", sessionMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", sessionMiddleware, s.handler.ListBookings)
	s.router.DELETE("/bookings", sessionMiddleware, s.handler.ClearBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the computed cost", func() {
		result := &commands.CreateBookingResult{Booking: builder.NewBookingBuilder().BuildView()}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.sessionID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusCreated, rec.Code)
		var resp resdto.BookingResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Success)
		s.Equal(resdto.MessageBooked, resp.Message)
		s.Require().NotNil(resp.Cost)
		s.Equal(float64(200), *resp.Cost)
	})

	s.Run("validation: malformed bodies are rejected before the usecase", func() {
		cases := []testCaseBooking{
			{name: "missing field: facility", mutate: testutil.Field("facility", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
			{name: "date not a calendar date", mutate: testutil.Field("date", "10-09-2026"), expectCode: http.StatusBadRequest},
			{name: "start time not HH:MM", mutate: testutil.Field("start_time", "4pm"), expectCode: http.StatusBadRequest},
			{name: "end time not HH:MM", mutate: testutil.Field("end_time", "20:00:00"), expectCode: http.StatusBadRequest},
			{name: "end equals start", mutate: testutil.Field("end_time", "16:00"), expectCode: http.StatusBadRequest},
			{name: "end before start", mutate: testutil.Field("end_time", "15:00"), expectCode: http.StatusBadRequest},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				// No expectation is set on the commands mock, so any call
				// to the usecase fails the test.
				body := testutil.DtoMap(s.T(), reqBody, c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(c.expectCode, rec.Code)
				s.Contains(rec.Body.String(), resdto.MessageInvalidTimeRange)
			})
		}
	})

	s.Run("engine outcomes map to status codes and messages", func() {
		cases := []struct {
			name          string
			err           error
			expectCode    int
			expectMessage string
		}{
			{name: "unknown facility", err: facility.ErrFacilityNotFound, expectCode: http.StatusNotFound, expectMessage: resdto.MessageFacilityNotFound},
			{name: "invalid time range", err: booking.ErrInvalidTimeRange, expectCode: http.StatusBadRequest, expectMessage: resdto.MessageInvalidTimeRange},
			{name: "conflicting booking", err: booking.ErrAlreadyBooked, expectCode: http.StatusConflict, expectMessage: resdto.MessageAlreadyBooked},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.sessionID, gomock.Any()).
					Return(nil, c.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

				s.Equal(c.expectCode, rec.Code)
				var resp resdto.BookingResponse
				httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
				s.False(resp.Success)
				s.Equal(c.expectMessage, resp.Message)
				s.Nil(resp.Cost)
			})
		}
	})

	s.Run("store failure: returns 500, never a booking outcome", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, commands.ErrStoreOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.NotContains(rec.Body.String(), resdto.MessageAlreadyBooked)
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("success: returns all session bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().WithFacility("Clubhouse").WithTimes("10:00", "12:00").WithCost(200).BuildView(),
		}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.sessionID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.BookingListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Success)
		s.Require().Len(resp.Bookings, 2)
		s.Equal("Tennis Court", resp.Bookings[0].Facility)
		s.Equal("Clubhouse", resp.Bookings[1].Facility)
	})

	s.Run("empty session lists empty, not null", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.sessionID).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"bookings":[]`)
	})

	s.Run("store failure: returns 500", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.sessionID).
			Return(nil, commands.ErrStoreOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

// ================================================================================
// TestClearBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestClearBookings() {
	url := "/bookings"

	s.Run("success: returns confirmation message", func() {
		s.mockCommands.EXPECT().ClearBookings(gomock.Any(), s.sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.ClearResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Success)
		s.Equal(resdto.MessageSessionCleared, resp.Message)
	})

	s.Run("store failure: returns 500", func() {
		s.mockCommands.EXPECT().ClearBookings(gomock.Any(), s.sessionID).
			Return(commands.ErrStoreOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
