package booking

import (
	"hotel-booking-api/internal/domain/discount"
)

// PriceQuote is the pricing breakdown for a stay. Producing one is pure and
// side-effect free, so the same code prices both the preview and the commit.
type PriceQuote struct {
	Nights          int
	NightlyRate     int64
	BasePrice       int64
	DiscountApplied bool
	DiscountPercent float64
	FinalPrice      int64
}

// Quote computes nights * rate, then takes the redemption's percentage off
// via Percent.Apply. The redemption must already have passed ValidateUsage;
// a nil redemption prices at the base rate.
func Quote(nightlyRate int64, stay StayPeriod, red *discount.Redemption) PriceQuote {
	nights := stay.Nights()
	base := int64(nights) * nightlyRate

	q := PriceQuote{
		Nights:      nights,
		NightlyRate: nightlyRate,
		BasePrice:   base,
		FinalPrice:  base,
	}

	if red != nil {
		percent := red.PercentOff()
		q.DiscountApplied = true
		q.DiscountPercent = percent.Value()
		q.FinalPrice = percent.Apply(base)
	}

	return q
}
