package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The booking flow only ever touches the point balance;
// profile fields belong to the account surface.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	points       Points
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		points:       Points{},
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Points() Points       { return u.points }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
