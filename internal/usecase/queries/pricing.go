package queries

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRedemptionNotFound  = errs.New("discount redemption not found")
	ErrRedemptionNotOwned  = errs.New("discount redemption not owned by user")
	ErrRedemptionExhausted = errs.New("discount redemption exhausted")
)

type RedemptionReadStore interface {
	// FindByID returns the redemption view plus its owner's user id.
	FindByID(ctx context.Context, id uuid.UUID) (*RedemptionView, uuid.UUID, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type PricingQueries interface {
	// Quote prices a stay without committing anything. Repeated calls
	// produce identical output and never touch ledger or booking state.
	Quote(ctx context.Context, userID, roomID uuid.UUID, checkIn, checkOut time.Time, redemptionID *uuid.UUID) (*PriceQuoteView, error)
}

type pricingQueriesImpl struct {
	rooms       RoomReadStore
	hotels      HotelReadStore
	redemptions RedemptionReadStore
}

func NewPricingQueries(rooms RoomReadStore, hotels HotelReadStore, redemptions RedemptionReadStore) PricingQueries {
	return &pricingQueriesImpl{
		rooms:       rooms,
		hotels:      hotels,
		redemptions: redemptions,
	}
}

func (q *pricingQueriesImpl) Quote(
	ctx context.Context,
	userID, roomID uuid.UUID,
	checkIn, checkOut time.Time,
	redemptionID *uuid.UUID,
) (*PriceQuoteView, error) {
	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	room, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	rate, err := q.hotels.NightlyRate(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}

	red, err := q.validateRedemption(ctx, userID, redemptionID)
	if err != nil {
		return nil, err
	}

	quote := booking.Quote(rate, stay, red)

	return &PriceQuoteView{
		RoomID:          room.ID,
		HotelID:         room.HotelID,
		RoomType:        room.RoomType,
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		Nights:          quote.Nights,
		NightlyRate:     quote.NightlyRate,
		BasePrice:       quote.BasePrice,
		DiscountApplied: quote.DiscountApplied,
		DiscountPercent: quote.DiscountPercent,
		FinalPrice:      quote.FinalPrice,
	}, nil
}

// validateRedemption applies the same hard checks as the commit path:
// missing, foreign, and exhausted redemptions are all rejected.
func (q *pricingQueriesImpl) validateRedemption(ctx context.Context, userID uuid.UUID, redemptionID *uuid.UUID) (*discount.Redemption, error) {
	if redemptionID == nil {
		return nil, nil
	}

	view, ownerID, err := q.redemptions.FindByID(ctx, *redemptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRedemptionNotFound
		}
		return nil, err
	}

	red, err := discount.NewRedemption(view.ID, ownerID, view.DiscountID, int(view.Amount), view.IsUsed, view.PercentOff)
	if err != nil {
		return nil, err
	}

	if err := red.ValidateUsage(userID); err != nil {
		if errors.Is(err, discount.ErrNotOwned) {
			return nil, ErrRedemptionNotOwned
		}
		return nil, ErrRedemptionExhausted
	}

	return red, nil
}
