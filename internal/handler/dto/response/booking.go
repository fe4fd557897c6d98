package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelInfoResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Star        float64   `json:"star"`
	Description string    `json:"description"`
}

type RoomInfoResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomNumber  string    `json:"roomNumber"`
	RoomType    string    `json:"roomType"`
	NightlyRate int64     `json:"nightlyRate"`
}

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotelId"`
	RoomNumber string    `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
}

type BookingResponse struct {
	BookingID       uuid.UUID         `json:"bookingId"`
	CheckIn         time.Time         `json:"checkIn"`
	CheckOut        time.Time         `json:"checkOut"`
	Nights          int               `json:"nights"`
	Adults          int               `json:"adults"`
	Rooms           int               `json:"rooms"`
	Children        int               `json:"children"`
	Price           int64             `json:"price"`
	DiscountApplied bool              `json:"discountApplied"`
	RedemptionID    *uuid.UUID        `json:"redemptionId,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	Hotel           HotelInfoResponse `json:"hotel"`
	Room            RoomInfoResponse  `json:"room"`
}

type PriceQuoteResponse struct {
	RoomID          uuid.UUID `json:"roomId"`
	HotelID         uuid.UUID `json:"hotelId"`
	RoomType        string    `json:"roomType"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Nights          int       `json:"nights"`
	NightlyRate     int64     `json:"nightlyRate"`
	BasePrice       int64     `json:"basePrice"`
	DiscountApplied bool      `json:"discountApplied"`
	DiscountPercent float64   `json:"discountPercent"`
	FinalPrice      int64     `json:"finalPrice"`
}

func FromBookingReceiptView(view *queries.BookingReceiptView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingReceiptViews(views []*queries.BookingReceiptView) ([]*BookingResponse, error) {
	result := make([]*BookingResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromBookingReceiptView(view)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func FromRoomView(view *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	result := make([]*RoomResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromRoomView(view)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func FromPriceQuoteView(view *queries.PriceQuoteView) (*PriceQuoteResponse, error) {
	var resp PriceQuoteResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}
