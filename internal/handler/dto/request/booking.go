package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID       uuid.UUID  `json:"room_id" binding:"required"`
	CheckIn      string     `json:"check_in" binding:"required"`
	CheckOut     string     `json:"check_out" binding:"required"`
	Adults       int        `json:"adults" binding:"required,min=1"`
	Rooms        int        `json:"rooms" binding:"required,min=1"`
	Children     int        `json:"children" binding:"min=0"`
	RedemptionID *uuid.UUID `json:"redemption_id,omitempty"`
}

func (r CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type SearchRoomsRequest struct {
	HotelID  uuid.UUID `form:"hotel_id" binding:"required"`
	CheckIn  string    `form:"check_in" binding:"required"`
	CheckOut string    `form:"check_out" binding:"required"`
	RoomType *string   `form:"room_type"`
}

func (r SearchRoomsRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type QuotePriceRequest struct {
	RoomID       uuid.UUID  `form:"room_id" binding:"required"`
	CheckIn      string     `form:"check_in" binding:"required"`
	CheckOut     string     `form:"check_out" binding:"required"`
	RedemptionID *uuid.UUID `form:"redemption_id"`
}

func (r QuotePriceRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
