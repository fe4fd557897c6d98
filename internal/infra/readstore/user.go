package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, points, is_active
FROM users
WHERE email = $1
`

const findUserByIDSQL = `
SELECT id, email, role, points, is_active
FROM users
WHERE id = $1
`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (u *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := u.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID,
		&view.Email,
		&hash,
		&view.Role,
		&view.Points,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (u *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := u.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.Points,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}
