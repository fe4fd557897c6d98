package repository

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// Conditional decrement: touches the row only while amount is positive, so
// the counter can never go below zero even under concurrent consumers.
const consumeRedemptionSQL = `
UPDATE user_discounts
SET amount = amount - 1, is_used = (amount - 1 = 0), updated_at = now()
WHERE id = $1 AND amount > 0
`

const upsertRedemptionSQL = `
INSERT INTO user_discounts (id, user_id, discount_id, amount, is_used)
VALUES ($1, $2, $3, 1, false)
ON CONFLICT (user_id, discount_id)
DO UPDATE SET amount = user_discounts.amount + 1, is_used = false, updated_at = now()
RETURNING amount
`

const creditPointsSQL = `
UPDATE users
SET points = points + $2, updated_at = now()
WHERE id = $1
`

// Conditional debit mirrors consumeRedemptionSQL: zero rows means the
// balance did not cover the cost.
const debitPointsSQL = `
UPDATE users
SET points = points - $2, updated_at = now()
WHERE id = $1 AND points >= $2
`

var ErrRedemptionConsumed = infra.WrapRepoErr("redemption has no remaining uses", nil, infra.KindConflict)

type LoyaltyRepository struct{}

func NewLoyaltyRepository() *LoyaltyRepository {
	return &LoyaltyRepository{}
}

func (r *LoyaltyRepository) ConsumeRedemption(ctx context.Context, tx db.DBTX, redemptionID uuid.UUID) error {
	tag, err := tx.Exec(ctx, consumeRedemptionSQL, redemptionID)
	if err != nil {
		return infra.WrapRepoErr("failed to consume redemption", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRedemptionConsumed
	}
	return nil
}

func (r *LoyaltyRepository) UpsertRedemption(ctx context.Context, tx db.DBTX, userID, discountID uuid.UUID) (int32, error) {
	var amount int32
	err := tx.QueryRow(ctx, upsertRedemptionSQL, uuid.New(), userID, discountID).Scan(&amount)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to upsert redemption", err)
	}
	return amount, nil
}

func (r *LoyaltyRepository) CreditPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int) error {
	tag, err := tx.Exec(ctx, creditPointsSQL, userID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to credit points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LoyaltyRepository) DebitPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int) (bool, error) {
	tag, err := tx.Exec(ctx, debitPointsSQL, userID, points)
	if err != nil {
		return false, infra.WrapRepoErr("failed to debit points", err)
	}
	return tag.RowsAffected() > 0, nil
}
