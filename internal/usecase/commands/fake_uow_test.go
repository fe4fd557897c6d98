//go:build unit

package commands_test

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs transaction closures directly against in-memory state so the
// command flows can be exercised without a database.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	loyalty := &fakeLoyaltyRepo{
		balances:    map[uuid.UUID]int{},
		redemptions: map[uuid.UUID]int32{},
	}
	return &fakeUoW{
		tx: &fakeTx{
			bookings: &fakeBookingRepo{},
			loyalty:  loyalty,
			users:    &fakeUserRepo{},
			reads: &fakeReads{
				rooms:       map[uuid.UUID]*shared.RoomSnapshot{},
				hotels:      map[uuid.UUID]*shared.HotelSnapshot{},
				discounts:   map[uuid.UUID]*shared.DiscountSnapshot{},
				redemptions: map[uuid.UUID]*shared.RedemptionSnapshot{},
				users:       map[uuid.UUID]*shared.UserSnapshot{},
				balances:    loyalty.balances,
			},
		},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	bookings *fakeBookingRepo
	loyalty  *fakeLoyaltyRepo
	users    *fakeUserRepo
	reads    *fakeReads
}

func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Loyalty() shared.LoyaltyRepository  { return t.loyalty }
func (t *fakeTx) Users() shared.UserRepository       { return t.users }
func (t *fakeTx) Reads() shared.CommandReads         { return t.reads }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	rooms       map[uuid.UUID]*shared.RoomSnapshot
	hotels      map[uuid.UUID]*shared.HotelSnapshot
	discounts   map[uuid.UUID]*shared.DiscountSnapshot
	redemptions map[uuid.UUID]*shared.RedemptionSnapshot
	users       map[uuid.UUID]*shared.UserSnapshot
	balances    map[uuid.UUID]int // shared with the loyalty fake
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	if room, ok := r.rooms[id]; ok {
		return room, nil
	}
	return nil, notFound("room not found")
}

func (r *fakeReads) HotelByID(_ context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	if hotel, ok := r.hotels[id]; ok {
		return hotel, nil
	}
	return nil, notFound("hotel not found")
}

func (r *fakeReads) DiscountByID(_ context.Context, id uuid.UUID) (*shared.DiscountSnapshot, error) {
	if d, ok := r.discounts[id]; ok {
		return d, nil
	}
	return nil, notFound("discount not found")
}

func (r *fakeReads) RedemptionByID(_ context.Context, id uuid.UUID) (*shared.RedemptionSnapshot, error) {
	if red, ok := r.redemptions[id]; ok {
		return red, nil
	}
	return nil, notFound("redemption not found")
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	snap := *u
	snap.Points = r.balances[id]
	return &snap, nil
}

type fakeBookingRepo struct {
	lockCalls   int
	conflicts   int64
	created     []*booking.Booking
	lockErr     error
	createErr   error
	conflictErr error
}

func (r *fakeBookingRepo) LockRoom(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	r.lockCalls++
	return r.lockErr
}

func (r *fakeBookingRepo) CountConflicts(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.StayPeriod) (int64, error) {
	if r.conflictErr != nil {
		return 0, r.conflictErr
	}
	return r.conflicts, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, b)
	return b.ID(), nil
}

type fakeLoyaltyRepo struct {
	balances    map[uuid.UUID]int   // points per user
	redemptions map[uuid.UUID]int32 // remaining uses per redemption
	credits     []int
}

func (r *fakeLoyaltyRepo) ConsumeRedemption(_ context.Context, _ db.DBTX, redemptionID uuid.UUID) error {
	if r.redemptions[redemptionID] <= 0 {
		return infra.WrapRepoErr("redemption has no remaining uses", nil, infra.KindConflict)
	}
	r.redemptions[redemptionID]--
	return nil
}

func (r *fakeLoyaltyRepo) UpsertRedemption(_ context.Context, _ db.DBTX, userID, discountID uuid.UUID) (int32, error) {
	key := redemptionKey(userID, discountID)
	r.redemptions[key]++
	return r.redemptions[key], nil
}

func (r *fakeLoyaltyRepo) CreditPoints(_ context.Context, _ db.DBTX, userID uuid.UUID, points int) error {
	r.balances[userID] += points
	r.credits = append(r.credits, points)
	return nil
}

func (r *fakeLoyaltyRepo) DebitPoints(_ context.Context, _ db.DBTX, userID uuid.UUID, points int) (bool, error) {
	if r.balances[userID] < points {
		return false, nil
	}
	r.balances[userID] -= points
	return true, nil
}

// redemptionKey derives a stable id for the user/discount ledger row.
func redemptionKey(userID, discountID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(userID, discountID[:])
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}
