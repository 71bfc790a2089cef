package api

import (
	"errors"
	"net/http"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingSession = errors.New("session id missing from request context")

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

// @Summary Book a facility
// @Description Reserve a time interval on a facility for the current session
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} resdto.BookingResponse
// @Failure 404 {object} resdto.BookingResponse
// @Failure 409 {object} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, resdto.Rejected(resdto.MessageInvalidTimeRange))
		return
	}
	// Time ordering is rejected here, before any facility lookup runs.
	if !req.HasOrderedTimes() {
		c.JSON(http.StatusBadRequest, resdto.Rejected(resdto.MessageInvalidTimeRange))
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, resdto.Rejected(resdto.MessageFacilityNotFound))
		case errors.Is(err, booking.ErrInvalidTimeRange), errors.Is(err, commands.ErrMalformedRequest):
			c.JSON(http.StatusBadRequest, resdto.Rejected(resdto.MessageInvalidTimeRange))
		case errors.Is(err, booking.ErrAlreadyBooked):
			c.JSON(http.StatusConflict, resdto.Rejected(resdto.MessageAlreadyBooked))
		default:
			// Store failures are never reported as booking conflicts.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.Booked(result.Booking.Cost))
}

// @Summary List bookings
// @Description List all bookings recorded for the current session
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingListResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Internal server error", nil)
		return
	}

	views, err := h.bookingQueries.ListBookings(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Clear session bookings
// @Description Discard every booking recorded for the current session
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.ClearResponse
// @Failure 500 {object} httperr.Response
// @Router /bookings [delete]
func (h *BookingHandler) ClearBookings(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Internal server error", nil)
		return
	}

	if err := h.bookingCommands.ClearBookings(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ClearResponse{
		Success: true,
		Message: resdto.MessageSessionCleared,
	})
}
