package repository

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// lockRoomSQL serializes booking attempts per room. Concurrent transactions
// for the same room queue here, so the overlap re-check below always sees
// the winner's committed row.
const lockRoomSQL = `
SELECT id FROM rooms WHERE id = $1 FOR UPDATE
`

const countConflictsSQL = `
SELECT COUNT(*)
FROM bookings
WHERE room_id = $1
  AND check_out > $2
  AND check_in < $3
`

const insertBookingSQL = `
INSERT INTO bookings (id, room_id, user_id, check_in, check_out, adults, rooms, children, price, user_discount_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) LockRoom(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, lockRoomSQL, roomID).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *BookingRepository) CountConflicts(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayPeriod) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, countConflictsSQL,
		roomID,
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count conflicting bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertBookingSQL,
		b.ID(),
		b.RoomID(),
		b.UserID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Occupancy().Adults(),
		b.Occupancy().Rooms(),
		b.Occupancy().Children(),
		b.Price().Amount(),
		pgconv.UUIDPtrToPgtype(b.RedemptionID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
