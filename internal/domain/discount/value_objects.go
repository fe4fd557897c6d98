package discount

import (
	"errors"
	"math"
)

var (
	ErrInvalidPercent      = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidPointCost    = errors.New("point cost cannot be negative")
	ErrNegativeUses        = errors.New("remaining uses cannot be negative")
	ErrRedemptionExhausted = errors.New("redemption has no remaining uses")
)

// Percent is the share taken off the base price, 0-100.
type Percent struct {
	value float64
}

func NewPercent(v float64) (Percent, error) {
	if v < 0 || v > 100 {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{value: v}, nil
}

func (p Percent) Value() float64 {
	return p.value
}

// Apply discounts base by the percentage, rounded to the nearest minor unit
// and clamped at zero. This is the single rounding rule for quote and commit.
func (p Percent) Apply(base int64) int64 {
	result := int64(math.Round(float64(base) * (100.0 - p.value) / 100.0))
	if result < 0 {
		result = 0
	}
	return result
}

// PointCost is what a user pays in loyalty points to bank one use.
type PointCost struct {
	value int
}

func NewPointCost(v int) (PointCost, error) {
	if v < 0 {
		return PointCost{}, ErrInvalidPointCost
	}
	return PointCost{value: v}, nil
}

func (c PointCost) Value() int {
	return c.value
}

// RemainingUses is a redemption's banked use counter. Monotonically
// non-negative: consuming at zero fails, it never goes below zero.
type RemainingUses struct {
	value int
}

func NewRemainingUses(v int) (RemainingUses, error) {
	if v < 0 {
		return RemainingUses{}, ErrNegativeUses
	}
	return RemainingUses{value: v}, nil
}

func (u RemainingUses) Value() int {
	return u.value
}

func (u RemainingUses) IsExhausted() bool {
	return u.value <= 0
}
