package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	displayName  DisplayName
	avatarURL    *string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, displayName DisplayName) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		displayName:  displayName,
	}
}

// Reconstruct rebuilds a persisted user without re-running validation.
func Reconstruct(
	id uuid.UUID,
	email, passwordHash, role, displayName string,
	avatarURL *string,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        Email{value: email},
		passwordHash: passwordHash,
		role:         Role(role),
		displayName:  DisplayName{value: displayName},
		avatarURL:    avatarURL,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) UpdateProfile(displayName DisplayName, avatarURL *string) {
	u.displayName = displayName
	u.avatarURL = avatarURL
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) AvatarURL() *string       { return u.avatarURL }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
