package readstore

import (
	"context"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findRoomByIDSQL = `
SELECT id, hotel_id, room_number, room_type
FROM rooms
WHERE id = $1
`

// Half-open interval overlap: an existing booking blocks [check_in, check_out)
// iff booking.check_out > check_in AND booking.check_in < check_out. Touching
// intervals do not conflict.
const findAvailableRoomsSQL = `
SELECT r.id, r.hotel_id, r.room_number, r.room_type
FROM rooms r
WHERE r.hotel_id = $1
  AND ($4::text IS NULL OR r.room_type = $4)
  AND NOT EXISTS (
      SELECT 1
      FROM bookings b
      WHERE b.room_id = r.id
        AND b.check_out > $2
        AND b.check_in < $3
  )
ORDER BY r.room_number
`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var view queries.RoomView
	err := r.db.QueryRow(ctx, findRoomByIDSQL, id).Scan(
		&view.ID,
		&view.HotelID,
		&view.RoomNumber,
		&view.RoomType,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return &view, nil
}

func (r *RoomReadStore) FindAvailable(
	ctx context.Context,
	hotelID uuid.UUID,
	checkIn, checkOut time.Time,
	roomType *string,
) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, findAvailableRoomsSQL,
		hotelID,
		pgconv.DateToPgtype(checkIn),
		pgconv.DateToPgtype(checkOut),
		roomType,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available rooms", err)
	}
	defer rows.Close()

	result := make([]*queries.RoomView, 0)
	for rows.Next() {
		var view queries.RoomView
		if err := rows.Scan(&view.ID, &view.HotelID, &view.RoomNumber, &view.RoomType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available room", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available rooms", err)
	}

	return result, nil
}
