//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/common/testutil"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockPricing      *queriesmock.MockPricingQueries
	handler          *api.BookingHandler
	userID           uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvailability, s.mockPricing)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetBookingHistory)
	s.router.GET("/bookings/search", authMiddleware, s.handler.SearchRooms)
	s.router.GET("/bookings/quote", authMiddleware, s.handler.QuotePrice)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnReceipt := b.BuildReceiptView()
	expectedResult := &commands.CreateBookingResult{
		BookingID:    b.BookingID,
		Nights:       2,
		BasePrice:    2_000_000,
		FinalPrice:   2_000_000,
		PointsEarned: 10,
	}

	s.Run("success: returns 201 Created with the booking receipt", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, b.BookingID).
			Return(returnReceipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.BookingID, response.BookingID)
		s.Equal(2, response.Nights)
		s.Equal(int64(2_000_000), response.Price)
		s.Equal("101", response.Room.RoomNumber)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_out", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: adults", mutate: testutil.Field("adults", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rooms", mutate: testutil.Field("rooms", nil), expectCode: http.StatusBadRequest},
			{name: "adults below minimum", mutate: testutil.Field("adults", 0), expectCode: http.StatusBadRequest},
			{name: "negative children", mutate: testutil.Field("children", -1), expectCode: http.StatusBadRequest},
			{name: "malformed check_in date", mutate: testutil.Field("check_in", "2026/10/01"), expectCode: http.StatusBadRequest},
			{name: "malformed check_out date", mutate: testutil.Field("check_out", "not-a-date"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "invalid stay",
				commandsError:  commands.ErrInvalidStay,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-in must be before check-out",
			},
			{
				name:           "invalid occupancy",
				commandsError:  commands.ErrInvalidOccupancy,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid occupancy",
			},
			{
				name:           "room unavailable",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room is not available",
			},
			{
				name:           "redemption not found",
				commandsError:  commands.ErrRedemptionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Discount redemption not found",
			},
			{
				name:           "redemption not owned",
				commandsError:  commands.ErrRedemptionNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "does not belong to you",
			},
			{
				name:           "redemption exhausted",
				commandsError:  commands.ErrRedemptionExhausted,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "no remaining uses",
			},
			{
				name:           "retries exhausted under contention",
				commandsError:  errs.Mark(errors.New("deadlock detected"), shared.ErrMaxRetriesExceeded),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "please retry",
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
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.BookingID.String()
	returnReceipt := b.BuildReceiptView()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, b.BookingID).
			Return(returnReceipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.BookingID, response.BookingID)
		s.Equal("Test Hotel", response.Hotel.Name)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, b.BookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestGetBookingHistory() {
	url := "/bookings"

	receipts := []*queries.BookingReceiptView{
		builder.NewBookingBuilder().WithStay(
			time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
		).BuildReceiptView(),
		builder.NewBookingBuilder().BuildReceiptView(),
	}

	s.Run("success: returns the user's bookings", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID).
			Return(receipts, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty history returns an empty list", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID).
			Return([]*queries.BookingReceiptView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestSearchRooms() {
	b := builder.NewBookingBuilder()
	baseURL := "/bookings/search?hotel_id=" + b.HotelID.String() + "&check_in=2026-10-01&check_out=2026-10-03"

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	rooms := []*queries.RoomView{b.BuildRoomView()}

	s.Run("success: returns available rooms", func() {
		s.mockAvailability.EXPECT().ListAvailableRooms(gomock.Any(), b.HotelID, checkIn, checkOut, (*string)(nil)).
			Return(rooms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(b.RoomID, response[0].ID)
	})

	s.Run("success: room type filter is forwarded", func() {
		roomType := "double"
		s.mockAvailability.EXPECT().ListAvailableRooms(gomock.Any(), b.HotelID, checkIn, checkOut, &roomType).
			Return(rooms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"&room_type=double", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for missing parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/search?hotel_id="+b.HotelID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request for malformed dates", func() {
		url := "/bookings/search?hotel_id=" + b.HotelID.String() + "&check_in=01-10-2026&check_out=03-10-2026"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reversed date range",
				queriesError:   queries.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-in must be before check-out",
			},
			{
				name:           "hotel not found",
				queriesError:   queries.ErrHotelNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Hotel not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().ListAvailableRooms(gomock.Any(), b.HotelID, checkIn, checkOut, (*string)(nil)).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestQuotePrice() {
	b := builder.NewBookingBuilder()
	baseURL := "/bookings/quote?room_id=" + b.RoomID.String() + "&check_in=2026-10-01&check_out=2026-10-03"

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)

	returnQuote := &queries.PriceQuoteView{
		RoomID:      b.RoomID,
		HotelID:     b.HotelID,
		RoomType:    "double",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      2,
		NightlyRate: 1_000_000,
		BasePrice:   2_000_000,
		FinalPrice:  2_000_000,
	}

	s.Run("success: returns 200 OK with PriceQuoteResponse", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), s.userID, b.RoomID, checkIn, checkOut, (*uuid.UUID)(nil)).
			Return(returnQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response resdto.PriceQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Nights)
		s.Equal(int64(2_000_000), response.FinalPrice)
		s.False(response.DiscountApplied)
	})

	s.Run("success: redemption id is forwarded", func() {
		redemptionID := uuid.New()
		discounted := *returnQuote
		discounted.DiscountApplied = true
		discounted.DiscountPercent = 10
		discounted.FinalPrice = 1_800_000

		s.mockPricing.EXPECT().Quote(gomock.Any(), s.userID, b.RoomID, checkIn, checkOut, &redemptionID).
			Return(&discounted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"&redemption_id="+redemptionID.String(), nil, "bearer-token")

		var response resdto.PriceQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.DiscountApplied)
		s.Equal(int64(1_800_000), response.FinalPrice)
	})

	s.Run("error: 400 Bad Request for malformed dates", func() {
		url := "/bookings/quote?room_id=" + b.RoomID.String() + "&check_in=bad&check_out=worse"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				queriesError:   queries.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "redemption not found",
				queriesError:   queries.ErrRedemptionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Discount redemption not found",
			},
			{
				name:           "redemption not owned",
				queriesError:   queries.ErrRedemptionNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "does not belong to you",
			},
			{
				name:           "redemption exhausted",
				queriesError:   queries.ErrRedemptionExhausted,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "no remaining uses",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPricing.EXPECT().Quote(gomock.Any(), s.userID, b.RoomID, checkIn, checkOut, (*uuid.UUID)(nil)).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
