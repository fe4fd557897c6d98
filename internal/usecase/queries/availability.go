package queries

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound    = errs.New("hotel not found")
	ErrRoomNotFound     = errs.New("room not found")
	ErrInvalidDateRange = errs.New("invalid date range")
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// FindAvailable returns the hotel's rooms with no booking overlapping
	// [checkIn, checkOut), optionally filtered by room type.
	FindAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, roomType *string) ([]*RoomView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelInfoView, error)
	// NightlyRate is the hotel's current per-night price in minor units.
	NightlyRate(ctx context.Context, hotelID uuid.UUID) (int64, error)
}

type AvailabilityQueries interface {
	ListAvailableRooms(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, roomType *string) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms  RoomReadStore
	hotels HotelReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, hotels HotelReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:  rooms,
		hotels: hotels,
	}
}

func (q *availabilityQueriesImpl) ListAvailableRooms(
	ctx context.Context,
	hotelID uuid.UUID,
	checkIn, checkOut time.Time,
	roomType *string,
) ([]*RoomView, error) {
	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	if _, err := q.hotels.FindByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	return q.rooms.FindAvailable(ctx, hotelID, stay.CheckIn(), stay.CheckOut(), roomType)
}
