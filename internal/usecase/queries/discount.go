package queries

import (
	"context"

	"github.com/google/uuid"
)

type DiscountReadStore interface {
	FindAll(ctx context.Context) ([]*DiscountView, error)
}

type DiscountQueries interface {
	ListAll(ctx context.Context) ([]*DiscountView, error)
	ListRedemptionsByUser(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type discountQueriesImpl struct {
	discounts   DiscountReadStore
	redemptions RedemptionReadStore
}

func NewDiscountQueries(discounts DiscountReadStore, redemptions RedemptionReadStore) DiscountQueries {
	return &discountQueriesImpl{
		discounts:   discounts,
		redemptions: redemptions,
	}
}

func (q *discountQueriesImpl) ListAll(ctx context.Context) ([]*DiscountView, error) {
	return q.discounts.FindAll(ctx)
}

func (q *discountQueriesImpl) ListRedemptionsByUser(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error) {
	return q.redemptions.FindByUserID(ctx, userID)
}
