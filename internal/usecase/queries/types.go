package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomView struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomNumber string    `json:"room_number"`
	RoomType   string    `json:"room_type"`
}

type HotelInfoView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Star        float64   `json:"star"`
	Description string    `json:"description"`
}

type RoomInfoView struct {
	ID          uuid.UUID `json:"id"`
	RoomNumber  string    `json:"room_number"`
	RoomType    string    `json:"room_type"`
	NightlyRate int64     `json:"nightly_rate"`
}

// BookingReceiptView is the denormalized payload returned to callers after a
// booking or from the history listing. Presentation only, not an invariant.
type BookingReceiptView struct {
	BookingID       uuid.UUID     `json:"booking_id"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	Nights          int           `json:"nights"`
	Adults          int           `json:"adults"`
	Rooms           int           `json:"rooms"`
	Children        int           `json:"children"`
	Price           int64         `json:"price"`
	DiscountApplied bool          `json:"discount_applied"`
	RedemptionID    *uuid.UUID    `json:"redemption_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	Hotel           HotelInfoView `json:"hotel"`
	Room            RoomInfoView  `json:"room"`
}

type PriceQuoteView struct {
	RoomID          uuid.UUID `json:"room_id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	RoomType        string    `json:"room_type"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int       `json:"nights"`
	NightlyRate     int64     `json:"nightly_rate"`
	BasePrice       int64     `json:"base_price"`
	DiscountApplied bool      `json:"discount_applied"`
	DiscountPercent float64   `json:"discount_percent"`
	FinalPrice      int64     `json:"final_price"`
}

type DiscountView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PointRequired int       `json:"point_required"`
	PercentOff    float64   `json:"percent_off"`
}

type RedemptionView struct {
	ID            uuid.UUID `json:"id"`
	DiscountID    uuid.UUID `json:"discount_id"`
	DiscountName  string    `json:"discount_name"`
	PercentOff    float64   `json:"percent_off"`
	PointRequired int       `json:"point_required"`
	Amount        int32     `json:"amount"`
	IsUsed        bool      `json:"is_used"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Points   int       `json:"points"`
	IsActive bool      `json:"is_active"`
}
