//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/handler/api"
	"happyhotel/internal/usecase/queries"
	"happyhotel/tests/common/httptest"
	commandsmock "happyhotel/tests/mock/commands"
	queriesmock "happyhotel/tests/mock/queries"

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
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.POST("/bookings/quote", s.handler.QuoteBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", s.handler.CancelBooking)
	s.router.GET("/availability", s.handler.GetAvailability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateBody() map[string]any {
	return map[string]any{
		"checkIn":    "2022-12-20T00:00:00Z",
		"checkOut":   "2022-12-24T00:00:00Z",
		"guestCount": 2,
		"prepay":     true,
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 Created with the booking id", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().MakeBooking(gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"checkIn": "not-a-timestamp",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request on missing guest count", func() {
		body := validCreateBody()
		delete(body, "guestCount")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid request",
				commandsError:  booking.ErrInvalidRequest,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking request",
			},
			{
				name:           "no room available",
				commandsError:  booking.ErrNoRoomAvailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No room available",
			},
			{
				name:           "payment declined",
				commandsError:  booking.ErrPaymentDeclined,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment was declined",
			},
			{
				name:           "confirmation failed",
				commandsError:  booking.ErrConfirmationFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "confirmation could not be sent",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().MakeBooking(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("success: returns 204 No Content", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+bookingID.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found on unknown booking", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(booking.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+bookingID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns 200 with the booking", func() {
		view := &queries.BookingView{
			ID:         uuid.New(),
			RoomID:     uuid.New(),
			CheckIn:    time.Date(2022, 12, 20, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2022, 12, 24, 0, 0, 0, 0, time.UTC),
			GuestCount: 2,
			Prepay:     true,
			Price:      400,
			CreatedAt:  time.Date(2022, 12, 19, 12, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal(view.RoomID.String(), body["roomId"])
		s.InDelta(400, body["price"], 0.0001)
	})

	s.Run("error: 404 Not Found on unknown booking", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(nil, booking.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestQuoteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuoteBooking() {
	url := "/bookings/quote"

	quoteBody := map[string]any{
		"checkIn":    "2022-12-20T00:00:00Z",
		"checkOut":   "2022-12-24T00:00:00Z",
		"guestCount": 2,
	}

	s.Run("success: returns both prices", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any()).
			Return(400.0, nil).Times(1)
		s.mockQueries.EXPECT().CalculatePriceInReferenceCurrency(gomock.Any()).
			Return(320.0, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteBody)

		var body map[string]float64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(400.0, body["price"], 0.0001)
		s.InDelta(320.0, body["referencePrice"], 0.0001)
	})

	s.Run("error: 400 Bad Request on invalid stay", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any()).
			Return(0.0, booking.ErrInvalidRequest).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking request")
	})

	s.Run("error: 503 Service Unavailable when the rate is missing", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any()).
			Return(400.0, nil).Times(1)
		s.mockQueries.EXPECT().CalculatePriceInReferenceCurrency(gomock.Any()).
			Return(0.0, booking.ErrRateUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Exchange rate is unavailable")
	})
}

// ================================================================================
// TestGetAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAvailability() {
	s.Run("success: returns the place count", func() {
		s.mockQueries.EXPECT().AvailablePlaceCount(gomock.Any()).
			Return(7, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil)

		var body map[string]int
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(7, body["placeCount"])
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().AvailablePlaceCount(gomock.Any()).
			Return(0, errors.New("store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
