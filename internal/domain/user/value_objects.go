package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrNegativePoints  = errors.New("point balance cannot be negative")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Points is a user's loyalty point balance. Earned on booking, spent on
// discount redemption. Never negative.
type Points struct {
	value int
}

func NewPoints(v int) (Points, error) {
	if v < 0 {
		return Points{}, ErrNegativePoints
	}
	return Points{value: v}, nil
}

func (p Points) Value() int {
	return p.value
}

func (p Points) CanAfford(cost int) bool {
	return p.value >= cost
}

func (p Points) Add(v int) Points {
	return Points{value: p.value + v}
}

func (p Points) Spend(cost int) (Points, error) {
	if cost > p.value {
		return Points{}, ErrNegativePoints
	}
	return Points{value: p.value - cost}, nil
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
