package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/infra/readstore"
	"hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	maxRetries int
}

func NewPostgresUoW(pool *pgxpool.Pool, maxRetries int) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		maxRetries: maxRetries,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !u.shouldRetry(err, attempt) {
			// A still-retryable error here means the budget ran out;
			// everything else fails as-is.
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, shared.ErrMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return shared.ErrMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < u.maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo  shared.BookingRepository
	loyaltyRepo  shared.LoyaltyRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Loyalty() shared.LoyaltyRepository {
	if t.loyaltyRepo == nil {
		t.loyaltyRepo = repository.NewLoyaltyRepository()
	}
	return t.loyaltyRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	roomStore       *readstore.RoomReadStore
	hotelStore      *readstore.HotelReadStore
	discountStore   *readstore.DiscountReadStore
	redemptionStore *readstore.RedemptionReadStore
	userStore       *readstore.UserReadStore
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.dbtx)
	}

	room, err := r.roomStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RoomSnapshot{
		ID:         room.ID,
		HotelID:    room.HotelID,
		RoomNumber: room.RoomNumber,
		RoomType:   room.RoomType,
	}, nil
}

func (r *commandReads) HotelByID(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	if r.hotelStore == nil {
		r.hotelStore = readstore.NewHotelReadStore(r.dbtx)
	}

	hotel, err := r.hotelStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rate, err := r.hotelStore.NightlyRate(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.HotelSnapshot{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Address:     hotel.Address,
		Star:        hotel.Star,
		Description: hotel.Description,
		NightlyRate: rate,
	}, nil
}

func (r *commandReads) DiscountByID(ctx context.Context, id uuid.UUID) (*shared.DiscountSnapshot, error) {
	if r.discountStore == nil {
		r.discountStore = readstore.NewDiscountReadStore(r.dbtx)
	}

	d, err := r.discountStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.DiscountSnapshot{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		PointRequired: d.PointRequired,
		PercentOff:    d.PercentOff,
	}, nil
}

func (r *commandReads) RedemptionByID(ctx context.Context, id uuid.UUID) (*shared.RedemptionSnapshot, error) {
	if r.redemptionStore == nil {
		r.redemptionStore = readstore.NewRedemptionReadStore(r.dbtx)
	}

	view, ownerID, err := r.redemptionStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RedemptionSnapshot{
		ID:            view.ID,
		UserID:        ownerID,
		DiscountID:    view.DiscountID,
		Amount:        view.Amount,
		IsUsed:        view.IsUsed,
		DiscountName:  view.DiscountName,
		PercentOff:    view.PercentOff,
		PointRequired: view.PointRequired,
	}, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}

	view, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.UserSnapshot{
		ID:       view.ID,
		Email:    view.Email,
		Points:   view.Points,
		IsActive: view.IsActive,
	}, nil
}
