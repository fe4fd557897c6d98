//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/shared"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(uow *fakeUoW, id uuid.UUID, points int) {
	uow.tx.reads.users[id] = &shared.UserSnapshot{
		ID:       id,
		Email:    "guest@example.com",
		Points:   points,
		IsActive: true,
	}
	uow.tx.loyalty.balances[id] = points
}

func TestRedeemDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("debits points and banks one use", func(t *testing.T) {
		uow := newFakeUoW()
		userID := uuid.New()
		seedUser(uow, userID, 150)
		d := builder.NewDiscountBuilder()
		uow.tx.reads.discounts[d.ID] = d.BuildSnapshot()

		uc := commands.NewDiscountUseCase(uow)
		result, err := uc.Redeem(ctx, userID, d.ID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, d.ID, result.DiscountID)
		assert.Equal(t, "10% off", result.DiscountName)
		assert.Equal(t, 100, result.PointsSpent)
		assert.Equal(t, 50, result.PointsLeft)
		assert.Equal(t, int32(1), result.RemainingUses)

		assert.Equal(t, 50, uow.tx.loyalty.balances[userID])
	})

	t.Run("a second redemption stacks the remaining uses", func(t *testing.T) {
		uow := newFakeUoW()
		userID := uuid.New()
		seedUser(uow, userID, 300)
		d := builder.NewDiscountBuilder()
		uow.tx.reads.discounts[d.ID] = d.BuildSnapshot()

		uc := commands.NewDiscountUseCase(uow)
		_, err := uc.Redeem(ctx, userID, d.ID)
		require.NoError(t, err)

		result, err := uc.Redeem(ctx, userID, d.ID)
		require.NoError(t, err)

		assert.Equal(t, int32(2), result.RemainingUses)
		assert.Equal(t, 100, uow.tx.loyalty.balances[userID])
	})

	t.Run("rejects an unknown discount", func(t *testing.T) {
		uow := newFakeUoW()
		userID := uuid.New()
		seedUser(uow, userID, 150)

		uc := commands.NewDiscountUseCase(uow)
		_, err := uc.Redeem(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrDiscountNotFound)

		assert.Equal(t, 150, uow.tx.loyalty.balances[userID])
	})

	t.Run("rejects an unaffordable discount without debiting", func(t *testing.T) {
		uow := newFakeUoW()
		userID := uuid.New()
		seedUser(uow, userID, 99)
		d := builder.NewDiscountBuilder()
		uow.tx.reads.discounts[d.ID] = d.BuildSnapshot()

		uc := commands.NewDiscountUseCase(uow)
		_, err := uc.Redeem(ctx, userID, d.ID)
		assert.ErrorIs(t, err, commands.ErrInsufficientPoints)

		assert.Equal(t, 99, uow.tx.loyalty.balances[userID])
	})

	t.Run("a free discount costs nothing", func(t *testing.T) {
		uow := newFakeUoW()
		userID := uuid.New()
		seedUser(uow, userID, 0)
		d := builder.NewDiscountBuilder().WithPointRequired(0)
		uow.tx.reads.discounts[d.ID] = d.BuildSnapshot()

		uc := commands.NewDiscountUseCase(uow)
		result, err := uc.Redeem(ctx, userID, d.ID)
		require.NoError(t, err)

		assert.Equal(t, 0, result.PointsSpent)
		assert.Equal(t, int32(1), result.RemainingUses)
	})
}
