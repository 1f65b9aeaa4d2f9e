package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"fervo/internal/pkg/errs"
)

const MaxDisplayNameLength = 60

var (
	ErrInvalidEmail       = errs.New("invalid email format")
	ErrInvalidRole        = errs.New("invalid role")
	ErrPasswordTooWeak    = errs.New("password must be at least 8 characters long")
	ErrInvalidDisplayName = errs.New("display name must be between 1 and 60 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address; uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
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

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxDisplayNameLength {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: s}, nil
}

func (d DisplayName) Value() string {
	return d.value
}

// Credentials is a login or registration attempt that passed format checks.
type Credentials struct {
	Email    Email
	Password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Email: e, Password: p}, nil
}

// Role decides which route groups a token may reach.
type Role string

const (
	RoleUser    Role = "user"
	RolePartner Role = "partner"
)

func NewRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r != RoleUser && r != RolePartner {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsPartner() bool {
	return r == RolePartner
}
