//go:build unit

package user_test

import (
	"testing"

	"hotel-booking-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("guest@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed_password", user.RoleGuest)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "guest@example.com", u.Email().Value())
	assert.Equal(t, user.RoleGuest, u.Role())
	assert.Equal(t, 0, u.Points().Value())
	assert.True(t, u.IsActive())
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "guest@example.com", want: "guest@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  guest@example.com  ", want: "guest@example.com"},
		{name: "plus tag", input: "guest+tag@example.com", want: "guest+tag@example.com"},
		{name: "missing at sign", input: "example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "guest@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "guest@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", pw.Value())
}

func TestPoints(t *testing.T) {
	t.Run("negative balance is rejected", func(t *testing.T) {
		_, err := user.NewPoints(-1)
		assert.ErrorIs(t, err, user.ErrNegativePoints)
	})

	t.Run("add and spend", func(t *testing.T) {
		p, err := user.NewPoints(0)
		require.NoError(t, err)

		p = p.Add(100)
		assert.Equal(t, 100, p.Value())
		assert.True(t, p.CanAfford(100))
		assert.False(t, p.CanAfford(101))

		p, err = p.Spend(100)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Value())
	})

	t.Run("overspending fails", func(t *testing.T) {
		p, err := user.NewPoints(50)
		require.NoError(t, err)

		_, err = p.Spend(51)
		assert.ErrorIs(t, err, user.ErrNegativePoints)
	})
}

func TestRole(t *testing.T) {
	role, err := user.NewRole("guest")
	require.NoError(t, err)
	assert.Equal(t, user.RoleGuest, role)

	role, err = user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.NewRole("manager")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
