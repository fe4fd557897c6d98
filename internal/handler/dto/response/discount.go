package response

import (
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DiscountResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PointRequired int       `json:"pointRequired"`
	PercentOff    float64   `json:"percentOff"`
}

type RedemptionResponse struct {
	ID            uuid.UUID `json:"id"`
	DiscountID    uuid.UUID `json:"discountId"`
	DiscountName  string    `json:"discountName"`
	PercentOff    float64   `json:"percentOff"`
	PointRequired int       `json:"pointRequired"`
	Amount        int32     `json:"amount"`
	IsUsed        bool      `json:"isUsed"`
}

type RedeemDiscountResponse struct {
	DiscountID    uuid.UUID `json:"discountId"`
	DiscountName  string    `json:"discountName"`
	PointsSpent   int       `json:"pointsSpent"`
	PointsLeft    int       `json:"pointsLeft"`
	RemainingUses int32     `json:"remainingUses"`
}

func FromDiscountViews(views []*queries.DiscountView) ([]*DiscountResponse, error) {
	result := make([]*DiscountResponse, 0, len(views))
	for _, view := range views {
		var resp DiscountResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		result = append(result, &resp)
	}
	return result, nil
}

func FromRedemptionViews(views []*queries.RedemptionView) ([]*RedemptionResponse, error) {
	result := make([]*RedemptionResponse, 0, len(views))
	for _, view := range views {
		var resp RedemptionResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		result = append(result, &resp)
	}
	return result, nil
}

func FromRedeemResult(result *commands.RedeemDiscountResult) (*RedeemDiscountResponse, error) {
	var resp RedeemDiscountResponse
	if err := copier.Copy(&resp, result); err != nil {
		return nil, err
	}
	return &resp, nil
}
