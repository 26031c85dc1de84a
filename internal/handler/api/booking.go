package api

import (
	"errors"
	"net/http"

	"happyhotel/internal/domain/booking"
	reqdto "happyhotel/internal/handler/dto/request"
	resdto "happyhotel/internal/handler/dto/response"
	"happyhotel/internal/usecase/commands"
	"happyhotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve a room for the given stay, optionally charging up front
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingID, err := h.bookingCommands.MakeBooking(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		case errors.Is(err, booking.ErrNoRoomAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No room available for the requested stay",
			})
		case errors.Is(err, booking.ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment was declined",
			})
		case errors.Is(err, booking.ErrConfirmationFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Booking was saved but the confirmation could not be sent",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{ID: bookingID})
}

// @Summary Cancel booking
// @Description Cancel an existing booking and release its room
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Fetch a single booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Quote booking price
// @Description Calculate the price of a stay in the hotel and reference currencies
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteBookingRequest true "Stay to quote"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) QuoteBooking(c *gin.Context) {
	var req reqdto.QuoteBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	stay := req.ToDomain()
	price, err := h.bookingQueries.CalculatePrice(stay)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	referencePrice, err := h.bookingQueries.CalculatePriceInReferenceCurrency(stay)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrRateUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Exchange rate is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{
		Price:          price,
		ReferencePrice: referencePrice,
	})
}

// @Summary Available place count
// @Description Total number of guests the currently free rooms can host
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Router /availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	count, err := h.bookingQueries.AvailablePlaceCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{PlaceCount: count})
}
