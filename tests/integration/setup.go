//go:build integration

package integration

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

// setupTestPool starts the shared Postgres container, creates a database
// unique to this test and applies the schema to it.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	startPostgresContainerOnce(t)

	host, port := containerHostPort(t, postgresTestContainer)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			wait := time.Duration(500+attempt*500) * time.Millisecond
			time.Sleep(min(wait, 3*time.Second))
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying test database creation", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)

	applySchema(t, pool)

	return pool
}

func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Resolve the schema file relative to possible working dirs
	// (package dirs during `go test`).
	candidates := []string{
		filepath.Join("db", "schema.sql"),
		filepath.Join("..", "db", "schema.sql"),
		filepath.Join("..", "..", "db", "schema.sql"),
	}

	var (
		sqlContent []byte
		readErr    error
	)
	for _, cand := range candidates {
		sqlContent, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	require.NoError(t, readErr, "failed to read schema file")

	_, err := pool.Exec(ctx, string(sqlContent))
	require.NoError(t, err, "failed to apply schema")
}

func startPostgresContainerOnce(t *testing.T) {
	t.Helper()

	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "integration-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
		postgresTestContainer = container
	})

	require.NotNil(t, postgresTestContainer, "postgres container is not available")
}

func containerHostPort(t *testing.T, container testcontainers.Container) (string, nat.Port) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to resolve container host")

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "failed to resolve container port")

	return host, port
}

// ------------------------------------------------------------
// Seed helpers
// ------------------------------------------------------------

func seedUser(t *testing.T, pool *pgxpool.Pool, email string, points int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash, role, points)
		 VALUES ($1, 'x', 'guest', $2) RETURNING id`,
		email, points).Scan(&id)
	require.NoError(t, err, "failed to seed user")
	return id
}

func seedHotel(t *testing.T, pool *pgxpool.Pool, name string, nightlyRate int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO hotels (name, address, star, nightly_rate)
		 VALUES ($1, '1-1-1 Test', 4.0, $2) RETURNING id`,
		name, nightlyRate).Scan(&id)
	require.NoError(t, err, "failed to seed hotel")
	return id
}

func seedRoom(t *testing.T, pool *pgxpool.Pool, hotelID uuid.UUID, roomNumber string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO rooms (hotel_id, room_number, room_type)
		 VALUES ($1, $2, 'double') RETURNING id`,
		hotelID, roomNumber).Scan(&id)
	require.NoError(t, err, "failed to seed room")
	return id
}

func seedDiscount(t *testing.T, pool *pgxpool.Pool, name string, pointRequired int, percentOff float64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO discounts (name, description, point_required, percent_off)
		 VALUES ($1, '', $2, $3) RETURNING id`,
		name, pointRequired, percentOff).Scan(&id)
	require.NoError(t, err, "failed to seed discount")
	return id
}

func userPoints(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var points int
	err := pool.QueryRow(context.Background(),
		`SELECT points FROM users WHERE id = $1`, userID).Scan(&points)
	require.NoError(t, err, "failed to read points")
	return points
}

func bookingCount(t *testing.T, pool *pgxpool.Pool, roomID uuid.UUID) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&count)
	require.NoError(t, err, "failed to count bookings")
	return count
}

func redemptionState(t *testing.T, pool *pgxpool.Pool, redemptionID uuid.UUID) (amount int32, isUsed bool) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT amount, is_used FROM user_discounts WHERE id = $1`,
		redemptionID).Scan(&amount, &isUsed)
	require.NoError(t, err, "failed to read redemption")
	return amount, isUsed
}
