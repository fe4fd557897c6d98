package discount

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotOwned = errors.New("redemption does not belong to the user")
)

// Discount is a catalog definition: a percentage off the price, purchasable
// with loyalty points.
type Discount struct {
	id            uuid.UUID
	name          string
	description   string
	pointRequired PointCost
	percentOff    Percent
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDiscount(id uuid.UUID, name, description string, pointRequired int, percentOff float64) (*Discount, error) {
	cost, err := NewPointCost(pointRequired)
	if err != nil {
		return nil, err
	}

	percent, err := NewPercent(percentOff)
	if err != nil {
		return nil, err
	}

	return &Discount{
		id:            id,
		name:          name,
		description:   description,
		pointRequired: cost,
		percentOff:    percent,
	}, nil
}

func (d *Discount) ID() uuid.UUID            { return d.id }
func (d *Discount) Name() string             { return d.name }
func (d *Discount) Description() string      { return d.description }
func (d *Discount) PointRequired() PointCost { return d.pointRequired }
func (d *Discount) PercentOff() Percent      { return d.percentOff }

// Redemption is a user's banked right to apply a discount some number of
// times. Amount is mutated only inside the booking/redeem transactions.
type Redemption struct {
	id         uuid.UUID
	userID     uuid.UUID
	discountID uuid.UUID
	remaining  RemainingUses
	isUsed     bool
	percentOff Percent
}

func NewRedemption(id, userID, discountID uuid.UUID, remaining int, isUsed bool, percentOff float64) (*Redemption, error) {
	uses, err := NewRemainingUses(remaining)
	if err != nil {
		return nil, err
	}

	percent, err := NewPercent(percentOff)
	if err != nil {
		return nil, err
	}

	return &Redemption{
		id:         id,
		userID:     userID,
		discountID: discountID,
		remaining:  uses,
		isUsed:     isUsed,
		percentOff: percent,
	}, nil
}

func (r *Redemption) ID() uuid.UUID            { return r.id }
func (r *Redemption) UserID() uuid.UUID        { return r.userID }
func (r *Redemption) DiscountID() uuid.UUID    { return r.discountID }
func (r *Redemption) Remaining() RemainingUses { return r.remaining }
func (r *Redemption) IsUsed() bool             { return r.isUsed }
func (r *Redemption) PercentOff() Percent      { return r.percentOff }

// ValidateUsage checks ownership and the remaining-uses counter. Both the
// preview and the commit paths reject on failure.
func (r *Redemption) ValidateUsage(userID uuid.UUID) error {
	if r.userID != userID {
		return ErrNotOwned
	}
	if r.remaining.IsExhausted() {
		return ErrRedemptionExhausted
	}
	return nil
}
