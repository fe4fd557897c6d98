//go:build unit

package discount_test

import (
	"testing"

	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscount(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDiscountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "10% off", actual.Name())
		assert.Equal(t, 100, actual.PointRequired().Value())
		assert.Equal(t, float64(10), actual.PercentOff().Value())
	})

	t.Run("percent validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.DiscountBuilder)
			errIs  error
		}{
			{
				name:   "zero percent",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentOff(0) },
			},
			{
				name:   "full percent",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentOff(100) },
			},
			{
				name:   "negative percent",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentOff(-1) },
				errIs:  discount.ErrInvalidPercent,
			},
			{
				name:   "above one hundred",
				mutate: func(b *builder.DiscountBuilder) { b.WithPercentOff(101) },
				errIs:  discount.ErrInvalidPercent,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewDiscountBuilder()
				tc.mutate(b)
				_, err := b.BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("point cost validation", func(t *testing.T) {
		_, err := builder.NewDiscountBuilder().WithPointRequired(-1).BuildDomain()
		assert.ErrorIs(t, err, discount.ErrInvalidPointCost)

		_, err = builder.NewDiscountBuilder().WithPointRequired(0).BuildDomain()
		assert.NoError(t, err)
	})

}

func TestPercentApply(t *testing.T) {
	t.Run("rounds to the nearest minor unit", func(t *testing.T) {
		p, err := discount.NewPercent(15)
		require.NoError(t, err)

		// 333 * 0.85 = 283.05 -> 283
		assert.Equal(t, int64(283), p.Apply(333))
		// 335 * 0.85 = 284.75 -> 285
		assert.Equal(t, int64(285), p.Apply(335))
	})

	t.Run("full percent clamps at zero", func(t *testing.T) {
		p, err := discount.NewPercent(100)
		require.NoError(t, err)

		assert.Equal(t, int64(0), p.Apply(2_000_000))
	})

	t.Run("zero percent keeps the base", func(t *testing.T) {
		p, err := discount.NewPercent(0)
		require.NoError(t, err)

		assert.Equal(t, int64(2_000_000), p.Apply(2_000_000))
	})
}

func TestRedemption(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRedemptionBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.DiscountID, actual.DiscountID())
		assert.Equal(t, 1, actual.Remaining().Value())
		assert.False(t, actual.IsUsed())
	})

	t.Run("negative remaining uses are rejected", func(t *testing.T) {
		b := builder.NewRedemptionBuilder()
		b.Amount = -1
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, discount.ErrNegativeUses)
	})

	t.Run("usage validation", func(t *testing.T) {
		owner := uuid.New()

		cases := []struct {
			name   string
			mutate func(*builder.RedemptionBuilder)
			caller uuid.UUID
			errIs  error
		}{
			{
				name:   "owner with remaining uses",
				mutate: func(b *builder.RedemptionBuilder) { b.WithOwner(owner) },
				caller: owner,
			},
			{
				name:   "foreign redemption",
				mutate: func(b *builder.RedemptionBuilder) { b.WithOwner(uuid.New()) },
				caller: owner,
				errIs:  discount.ErrNotOwned,
			},
			{
				name:   "exhausted redemption",
				mutate: func(b *builder.RedemptionBuilder) { b.WithOwner(owner).Exhausted() },
				caller: owner,
				errIs:  discount.ErrRedemptionExhausted,
			},
			{
				name: "ownership is checked before exhaustion",
				mutate: func(b *builder.RedemptionBuilder) {
					b.WithOwner(uuid.New()).Exhausted()
				},
				caller: owner,
				errIs:  discount.ErrNotOwned,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewRedemptionBuilder()
				tc.mutate(b)
				red, err := b.BuildDomain()
				require.NoError(t, err)

				err = red.ValidateUsage(tc.caller)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestRemainingUses(t *testing.T) {
	t.Run("zero is exhausted", func(t *testing.T) {
		uses, err := discount.NewRemainingUses(0)
		require.NoError(t, err)
		assert.True(t, uses.IsExhausted())

		uses, err = discount.NewRemainingUses(1)
		require.NoError(t, err)
		assert.False(t, uses.IsExhausted())
	})
}
