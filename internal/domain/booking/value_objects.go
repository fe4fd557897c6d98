package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-in must be before check-out")
	ErrInvalidOccupancy = errors.New("occupancy needs at least one adult and one room")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// StayPeriod is a half-open calendar date interval [checkIn, checkOut).
// A checkout on the same day as another booking's check-in does not conflict.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidDateRange
	}

	return StayPeriod{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open intervals conflict:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Occupancy carries the guest counts for a booking: at least one adult and
// one room, children non-negative. Occupancy never affects availability or
// price.
type Occupancy struct {
	adults   int
	rooms    int
	children int
}

func NewOccupancy(adults, rooms, children int) (Occupancy, error) {
	if adults < 1 || rooms < 1 || children < 0 {
		return Occupancy{}, ErrInvalidOccupancy
	}
	return Occupancy{
		adults:   adults,
		rooms:    rooms,
		children: children,
	}, nil
}

func (o Occupancy) Adults() int   { return o.adults }
func (o Occupancy) Rooms() int    { return o.rooms }
func (o Occupancy) Children() int { return o.children }

// Money is an amount in the currency's minor unit.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}
