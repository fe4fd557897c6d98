package queries

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	// FindReceiptByID only returns bookings owned by userID.
	FindReceiptByID(ctx context.Context, id, userID uuid.UUID) (*BookingReceiptView, error)
	// FindReceiptsByUser returns the user's bookings ordered by check-in
	// descending.
	FindReceiptsByUser(ctx context.Context, userID uuid.UUID) ([]*BookingReceiptView, error)
}

type BookingQueries interface {
	// GetByID is scoped to the actor: another user's booking is not found.
	GetByID(ctx context.Context, actor, id uuid.UUID) (*BookingReceiptView, error)
	History(ctx context.Context, userID uuid.UUID) ([]*BookingReceiptView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor, id uuid.UUID) (*BookingReceiptView, error) {
	receipt, err := q.store.FindReceiptByID(ctx, id, actor)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return receipt, nil
}

func (q *bookingQueriesImpl) History(ctx context.Context, userID uuid.UUID) ([]*BookingReceiptView, error) {
	return q.store.FindReceiptsByUser(ctx, userID)
}
