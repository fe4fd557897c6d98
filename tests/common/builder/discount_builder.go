//go:build unit || integration

package builder

import (
	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	ID            uuid.UUID
	Name          string
	Description   string
	PointRequired int
	PercentOff    float64
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		ID:            uuid.New(),
		Name:          "10% off",
		Description:   "Ten percent off the stay",
		PointRequired: 100,
		PercentOff:    10,
	}
}

func (d *DiscountBuilder) BuildDomain() (*discount.Discount, error) {
	return discount.NewDiscount(d.ID, d.Name, d.Description, d.PointRequired, d.PercentOff)
}

func (d *DiscountBuilder) BuildView() *queries.DiscountView {
	return &queries.DiscountView{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		PointRequired: d.PointRequired,
		PercentOff:    d.PercentOff,
	}
}

func (d *DiscountBuilder) BuildSnapshot() *shared.DiscountSnapshot {
	return &shared.DiscountSnapshot{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		PointRequired: d.PointRequired,
		PercentOff:    d.PercentOff,
	}
}

func (d *DiscountBuilder) WithPointRequired(points int) *DiscountBuilder {
	d.PointRequired = points
	return d
}

func (d *DiscountBuilder) WithPercentOff(percent float64) *DiscountBuilder {
	d.PercentOff = percent
	return d
}

type RedemptionBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DiscountID uuid.UUID
	Amount     int32
	IsUsed     bool
	Discount   *DiscountBuilder
}

func NewRedemptionBuilder() *RedemptionBuilder {
	d := NewDiscountBuilder()
	return &RedemptionBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		DiscountID: d.ID,
		Amount:     1,
		IsUsed:     false,
		Discount:   d,
	}
}

func (r *RedemptionBuilder) BuildDomain() (*discount.Redemption, error) {
	return discount.NewRedemption(r.ID, r.UserID, r.DiscountID, int(r.Amount), r.IsUsed, r.Discount.PercentOff)
}

func (r *RedemptionBuilder) BuildView() *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:            r.ID,
		DiscountID:    r.DiscountID,
		DiscountName:  r.Discount.Name,
		PercentOff:    r.Discount.PercentOff,
		PointRequired: r.Discount.PointRequired,
		Amount:        r.Amount,
		IsUsed:        r.IsUsed,
	}
}

func (r *RedemptionBuilder) BuildSnapshot() *shared.RedemptionSnapshot {
	return &shared.RedemptionSnapshot{
		ID:            r.ID,
		UserID:        r.UserID,
		DiscountID:    r.DiscountID,
		Amount:        r.Amount,
		IsUsed:        r.IsUsed,
		DiscountName:  r.Discount.Name,
		PercentOff:    r.Discount.PercentOff,
		PointRequired: r.Discount.PointRequired,
	}
}

func (r *RedemptionBuilder) WithOwner(userID uuid.UUID) *RedemptionBuilder {
	r.UserID = userID
	return r
}

func (r *RedemptionBuilder) Exhausted() *RedemptionBuilder {
	r.Amount = 0
	r.IsUsed = true
	return r
}
