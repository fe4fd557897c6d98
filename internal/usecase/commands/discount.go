package commands

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDiscountNotFound   = errs.New("discount not found")
	ErrInsufficientPoints = errs.New("insufficient loyalty points")
)

type RedeemDiscountResult struct {
	DiscountID    uuid.UUID
	DiscountName  string
	PointsSpent   int
	PointsLeft    int
	RemainingUses int32
}

type DiscountCommands interface {
	// Redeem spends loyalty points to bank one use of the discount. The
	// debit and the ledger upsert commit together; the balance never goes
	// negative.
	Redeem(ctx context.Context, userID, discountID uuid.UUID) (*RedeemDiscountResult, error)
}

type discountUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewDiscountUseCase(uow shared.UnitOfWork) DiscountCommands {
	return &discountUseCaseImpl{uow: uow}
}

func (uc *discountUseCaseImpl) Redeem(ctx context.Context, userID, discountID uuid.UUID) (*RedeemDiscountResult, error) {
	var result *RedeemDiscountResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, derr := tx.Reads().DiscountByID(ctx, discountID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrDiscountNotFound
			}
			return derr
		}

		covered, derr := tx.Loyalty().DebitPoints(ctx, tx.DB(), userID, d.PointRequired)
		if derr != nil {
			return derr
		}
		if !covered {
			return ErrInsufficientPoints
		}

		amount, derr := tx.Loyalty().UpsertRedemption(ctx, tx.DB(), userID, discountID)
		if derr != nil {
			return derr
		}

		userSnap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			return derr
		}

		result = &RedeemDiscountResult{
			DiscountID:    d.ID,
			DiscountName:  d.Name,
			PointsSpent:   d.PointRequired,
			PointsLeft:    userSnap.Points,
			RemainingUses: amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
