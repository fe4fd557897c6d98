//go:build unit || integration

package builder

import (
	"time"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BookingID    uuid.UUID
	RoomID       uuid.UUID
	HotelID      uuid.UUID
	UserID       uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Rooms        int
	Children     int
	NightlyRate  int64
	Price        int64
	RedemptionID *uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:   uuid.New(),
		RoomID:      uuid.New(),
		HotelID:     uuid.New(),
		UserID:      uuid.New(),
		CheckIn:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Adults:      2,
		Rooms:       1,
		Children:    0,
		NightlyRate: 1_000_000,
		Price:       2_000_000,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomID:       b.RoomID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Adults:       b.Adults,
		Rooms:        b.Rooms,
		Children:     b.Children,
		RedemptionID: b.RedemptionID,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:       b.RoomID,
		CheckIn:      b.CheckIn.Format("2006-01-02"),
		CheckOut:     b.CheckOut.Format("2006-01-02"),
		Adults:       b.Adults,
		Rooms:        b.Rooms,
		Children:     b.Children,
		RedemptionID: b.RedemptionID,
	}
}

func (b *BookingBuilder) BuildReceiptView() *queries.BookingReceiptView {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.BookingReceiptView{
		BookingID:       b.BookingID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          nights,
		Adults:          b.Adults,
		Rooms:           b.Rooms,
		Children:        b.Children,
		Price:           b.Price,
		DiscountApplied: b.RedemptionID != nil,
		RedemptionID:    b.RedemptionID,
		CreatedAt:       time.Now(),
		Hotel: queries.HotelInfoView{
			ID:          b.HotelID,
			Name:        "Test Hotel",
			Address:     "1-1-1 Test",
			Star:        4.5,
			Description: "A fine test hotel",
		},
		Room: queries.RoomInfoView{
			ID:          b.RoomID,
			RoomNumber:  "101",
			RoomType:    "double",
			NightlyRate: b.NightlyRate,
		},
	}
}

func (b *BookingBuilder) BuildRoomSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:         b.RoomID,
		HotelID:    b.HotelID,
		RoomNumber: "101",
		RoomType:   "double",
	}
}

func (b *BookingBuilder) BuildHotelSnapshot() *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:          b.HotelID,
		Name:        "Test Hotel",
		Address:     "1-1-1 Test",
		Star:        4.5,
		Description: "A fine test hotel",
		NightlyRate: b.NightlyRate,
	}
}

func (b *BookingBuilder) BuildRoomView() *queries.RoomView {
	return &queries.RoomView{
		ID:         b.RoomID,
		HotelID:    b.HotelID,
		RoomNumber: "101",
		RoomType:   "double",
	}
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRedemption(id uuid.UUID) *BookingBuilder {
	b.RedemptionID = &id
	return b
}

func (b *BookingBuilder) WithNightlyRate(rate int64) *BookingBuilder {
	b.NightlyRate = rate
	return b
}
