package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the central record. Created once by the booking transaction,
// never mutated afterwards. For a fixed room no two bookings may have
// overlapping stay periods; the store enforces this with an exclusion
// constraint and the transaction re-checks it before inserting.
type Booking struct {
	id           uuid.UUID
	roomID       uuid.UUID
	userID       uuid.UUID
	stay         StayPeriod
	occupancy    Occupancy
	price        Money
	redemptionID *uuid.UUID
	createdAt    time.Time
}

func NewBooking(
	roomID, userID uuid.UUID,
	stay StayPeriod,
	occupancy Occupancy,
	price Money,
	redemptionID *uuid.UUID,
) *Booking {
	return &Booking{
		id:           uuid.New(),
		roomID:       roomID,
		userID:       userID,
		stay:         stay,
		occupancy:    occupancy,
		price:        price,
		redemptionID: redemptionID,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) RoomID() uuid.UUID        { return b.roomID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) Stay() StayPeriod         { return b.stay }
func (b *Booking) Occupancy() Occupancy     { return b.occupancy }
func (b *Booking) Price() Money             { return b.price }
func (b *Booking) RedemptionID() *uuid.UUID { return b.redemptionID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
