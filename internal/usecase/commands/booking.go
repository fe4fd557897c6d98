package commands

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound          = errs.New("room not found")
	ErrRoomUnavailable       = errs.New("room unavailable for the requested stay")
	ErrInvalidStay           = errs.New("invalid stay period")
	ErrInvalidOccupancy      = errs.New("invalid occupancy")
	ErrRedemptionNotFound    = errs.New("discount redemption not found")
	ErrRedemptionNotOwned    = errs.New("discount redemption not owned by user")
	ErrRedemptionExhausted   = errs.New("discount redemption exhausted")
	ErrBookingCreationFailed = errs.New("booking creation failed")
)

type CreateBookingRequest struct {
	RoomID       uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Rooms        int
	Children     int
	RedemptionID *uuid.UUID
}

type CreateBookingResult struct {
	BookingID       uuid.UUID
	Nights          int
	BasePrice       int64
	FinalPrice      int64
	DiscountApplied bool
	PointsEarned    int
}

type BookingCommands interface {
	// CreateBooking books a room for the user. Availability re-check,
	// redemption consumption, the booking insert and the point credit all
	// commit or roll back as one transaction.
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow          shared.UnitOfWork
	rewardPoints int
}

func NewBookingUseCase(uow shared.UnitOfWork, rewardPoints int) BookingCommands {
	return &bookingUseCaseImpl{
		uow:          uow,
		rewardPoints: rewardPoints,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	stay, err := booking.NewStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	occupancy, err := booking.NewOccupancy(req.Adults, req.Rooms, req.Children)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOccupancy)
	}

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, derr := tx.Reads().RoomByID(ctx, req.RoomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}

		hotel, derr := tx.Reads().HotelByID(ctx, room.HotelID)
		if derr != nil {
			return derr
		}

		red, derr := uc.loadRedemption(ctx, tx, userID, req.RedemptionID)
		if derr != nil {
			return derr
		}

		// Serialize against concurrent attempts on the same room, then
		// re-check availability under the lock. The exclusion constraint
		// on bookings is the last line of defense.
		if derr = tx.Bookings().LockRoom(ctx, tx.DB(), req.RoomID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}

		conflicts, derr := tx.Bookings().CountConflicts(ctx, tx.DB(), req.RoomID, stay)
		if derr != nil {
			return derr
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		quote := booking.Quote(hotel.NightlyRate, stay, red)

		if red != nil {
			if derr = tx.Loyalty().ConsumeRedemption(ctx, tx.DB(), red.ID()); derr != nil {
				if infra.IsKind(derr, infra.KindConflict) {
					return ErrRedemptionExhausted
				}
				return derr
			}
		}

		price, derr := booking.NewMoney(quote.FinalPrice)
		if derr != nil {
			return derr
		}

		b := booking.NewBooking(req.RoomID, userID, stay, occupancy, price, req.RedemptionID)
		bookingID, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrRoomUnavailable
			}
			return errs.Mark(derr, ErrBookingCreationFailed)
		}

		if derr = tx.Loyalty().CreditPoints(ctx, tx.DB(), userID, uc.rewardPoints); derr != nil {
			return derr
		}

		result = &CreateBookingResult{
			BookingID:       bookingID,
			Nights:          quote.Nights,
			BasePrice:       quote.BasePrice,
			FinalPrice:      quote.FinalPrice,
			DiscountApplied: quote.DiscountApplied,
			PointsEarned:    uc.rewardPoints,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// loadRedemption resolves and validates the user's redemption inside the
// booking transaction. A nil id means no discount was requested.
func (uc *bookingUseCaseImpl) loadRedemption(ctx context.Context, tx shared.Tx, userID uuid.UUID, redemptionID *uuid.UUID) (*discount.Redemption, error) {
	if redemptionID == nil {
		return nil, nil
	}

	snap, err := tx.Reads().RedemptionByID(ctx, *redemptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRedemptionNotFound
		}
		return nil, err
	}

	red, err := discount.NewRedemption(snap.ID, snap.UserID, snap.DiscountID, int(snap.Amount), snap.IsUsed, snap.PercentOff)
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
