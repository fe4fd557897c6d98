package request

import (
	"github.com/google/uuid"
)

type RedeemDiscountRequest struct {
	DiscountID uuid.UUID `json:"discount_id" binding:"required"`
}
