package shared

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrMaxRetriesExceeded reports that a write transaction kept losing to
// concurrent updates and gave up. The operation is safe to retry.
var ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Loyalty() LoyaltyRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	DiscountByID(ctx context.Context, id uuid.UUID) (*DiscountSnapshot, error)
	RedemptionByID(ctx context.Context, id uuid.UUID) (*RedemptionSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookingRepository interface {
	// LockRoom takes the per-room lock that serializes the availability
	// re-check against concurrent inserts for the same room.
	LockRoom(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error
	CountConflicts(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayPeriod) (int64, error)
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type LoyaltyRepository interface {
	// ConsumeRedemption decrements the remaining-uses counter by exactly 1,
	// failing when it is already 0. Must run inside the booking transaction.
	ConsumeRedemption(ctx context.Context, tx db.DBTX, redemptionID uuid.UUID) error
	// UpsertRedemption banks one more use of the discount for the user,
	// creating the ledger row at 1 when absent. Returns the new amount.
	UpsertRedemption(ctx context.Context, tx db.DBTX, userID, discountID uuid.UUID) (int32, error)
	// CreditPoints adds loyalty points; points only ever increase here.
	CreditPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int) error
	// DebitPoints subtracts points and reports whether the balance covered
	// the cost; the balance never goes negative.
	DebitPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int) (bool, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

// Minimal snapshots for command read operations
type RoomSnapshot struct {
	ID         uuid.UUID
	HotelID    uuid.UUID
	RoomNumber string
	RoomType   string
}

type HotelSnapshot struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Star        float64
	Description string
	NightlyRate int64
}

type DiscountSnapshot struct {
	ID            uuid.UUID
	Name          string
	Description   string
	PointRequired int
	PercentOff    float64
}

type RedemptionSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	DiscountID    uuid.UUID
	Amount        int32
	IsUsed        bool
	DiscountName  string
	PercentOff    float64
	PointRequired int
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Points   int
	IsActive bool
}
