package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingReceiptColumns = `
SELECT b.id, b.check_in, b.check_out, b.adults, b.rooms, b.children,
       b.price, b.user_discount_id, b.created_at,
       r.id, r.room_number, r.room_type,
       h.id, h.name, h.address, h.star, h.description, h.nightly_rate
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = r.hotel_id
`

const findReceiptByIDSQL = bookingReceiptColumns + `
WHERE b.id = $1 AND b.user_id = $2
`

const findReceiptsByUserSQL = bookingReceiptColumns + `
WHERE b.user_id = $1
ORDER BY b.check_in DESC, b.created_at DESC
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindReceiptByID(ctx context.Context, id, userID uuid.UUID) (*queries.BookingReceiptView, error) {
	row := s.db.QueryRow(ctx, findReceiptByIDSQL, id, userID)

	view, err := scanReceipt(row.Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (s *BookingReadStore) FindReceiptsByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingReceiptView, error) {
	rows, err := s.db.Query(ctx, findReceiptsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingReceiptView, 0)
	for rows.Next() {
		view, err := scanReceipt(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return result, nil
}

func scanReceipt(scan func(dest ...any) error) (*queries.BookingReceiptView, error) {
	var (
		view         queries.BookingReceiptView
		checkIn      pgtype.Date
		checkOut     pgtype.Date
		redemptionID pgtype.UUID
		createdAt    pgtype.Timestamptz
	)

	err := scan(
		&view.BookingID,
		&checkIn,
		&checkOut,
		&view.Adults,
		&view.Rooms,
		&view.Children,
		&view.Price,
		&redemptionID,
		&createdAt,
		&view.Room.ID,
		&view.Room.RoomNumber,
		&view.Room.RoomType,
		&view.Hotel.ID,
		&view.Hotel.Name,
		&view.Hotel.Address,
		&view.Hotel.Star,
		&view.Hotel.Description,
		&view.Room.NightlyRate,
	)
	if err != nil {
		return nil, err
	}

	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.Nights = int(view.CheckOut.Sub(view.CheckIn).Hours() / 24)
	view.RedemptionID = pgconv.UUIDPtrFromPgtype(redemptionID)
	view.DiscountApplied = view.RedemptionID != nil
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}
