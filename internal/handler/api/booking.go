package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoUserInContext = errs.New("user id missing in context")

type BookingHandler struct {
	bookingCommands     commands.BookingCommands
	bookingQueries      queries.BookingQueries
	availabilityQueries queries.AvailabilityQueries
	pricingQueries      queries.PricingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	availabilityQueries queries.AvailabilityQueries,
	pricingQueries queries.PricingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:     bookingCommands,
		bookingQueries:      bookingQueries,
		availabilityQueries: availabilityQueries,
		pricingQueries:      pricingQueries,
	}
}

// @Summary Create booking
// @Description Book a room for a stay, optionally applying a discount redemption
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserInContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	cmd := commands.CreateBookingRequest{
		RoomID:       req.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       req.Adults,
		Rooms:        req.Rooms,
		Children:     req.Children,
		RedemptionID: req.RedemptionID,
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), cmd, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrInvalidStay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in must be before check-out", nil)
		case errors.Is(err, commands.ErrInvalidOccupancy):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid occupancy", nil)
		case errors.Is(err, commands.ErrRoomUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available for the requested stay", nil)
		case errors.Is(err, commands.ErrRedemptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount redemption not found", nil)
		case errors.Is(err, commands.ErrRedemptionNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Discount redemption does not belong to you", nil)
		case errors.Is(err, commands.ErrRedemptionExhausted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount redemption has no remaining uses", nil)
		case errors.Is(err, shared.ErrMaxRetriesExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Too many concurrent updates, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	receipt, err := h.bookingQueries.GetByID(c.Request.Context(), userID, result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	response, err := resdto.FromBookingReceiptView(receipt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserInContext, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	// Scoped to the caller: someone else's booking reads as not found.
	receipt, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromBookingReceiptView(receipt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking history
// @Description Get all bookings for the current user, newest stay first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetBookingHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserInContext, "Internal server error", nil)
		return
	}

	receipts, err := h.bookingQueries.History(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromBookingReceiptViews(receipts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Search available rooms
// @Description List a hotel's rooms with no booking overlapping the stay
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string true "Hotel ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param room_type query string false "Room type filter"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/search [get]
func (h *BookingHandler) SearchRooms(c *gin.Context) {
	var req reqdto.SearchRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	rooms, err := h.availabilityQueries.ListAvailableRooms(c.Request.Context(), req.HotelID, checkIn, checkOut, req.RoomType)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in must be before check-out", nil)
		case errors.Is(err, queries.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromRoomViews(rooms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Quote price
// @Description Price a stay without committing anything
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param redemption_id query string false "Discount redemption ID"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/quote [get]
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserInContext, "Internal server error", nil)
		return
	}

	var req reqdto.QuotePriceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	quote, err := h.pricingQueries.Quote(c.Request.Context(), userID, req.RoomID, checkIn, checkOut, req.RedemptionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in must be before check-out", nil)
		case errors.Is(err, queries.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, queries.ErrRedemptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount redemption not found", nil)
		case errors.Is(err, queries.ErrRedemptionNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Discount redemption does not belong to you", nil)
		case errors.Is(err, queries.ErrRedemptionExhausted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount redemption has no remaining uses", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromPriceQuoteView(quote)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}
