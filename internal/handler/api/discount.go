package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	discountCommands commands.DiscountCommands
	discountQueries  queries.DiscountQueries
}

func NewDiscountHandler(discountCommands commands.DiscountCommands, discountQueries queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{
		discountCommands: discountCommands,
		discountQueries:  discountQueries,
	}
}

// @Summary List discounts
// @Description List the discount catalog
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DiscountResponse
// @Failure 401 {object} map[string]string
// @Router /discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.discountQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromDiscountViews(discounts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List my redemptions
// @Description List the current user's banked discount redemptions
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RedemptionResponse
// @Failure 401 {object} map[string]string
// @Router /discounts/redemptions [get]
func (h *DiscountHandler) ListMyRedemptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserInContext, "Internal server error", nil)
		return
	}

	redemptions, err := h.discountQueries.ListRedemptionsByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromRedemptionViews(redemptions)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Redeem discount
// @Description Spend loyalty points to bank one use of a discount
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemDiscountRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemDiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discounts/redeem [post]
func (h *DiscountHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserInContext, "Internal server error", nil)
		return
	}

	var req reqdto.RedeemDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.discountCommands.Redeem(c.Request.Context(), userID, req.DiscountID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
		case errors.Is(err, commands.ErrInsufficientPoints):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Not enough loyalty points", nil)
		case errors.Is(err, shared.ErrMaxRetriesExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Too many concurrent updates, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromRedeemResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}
