package domain

import (
	"context"
	"time"
)

// User represents a registered account.
type User struct {
	ID int64
	// Email is the login key. Uniqueness and lookups are exact-match
	// (case-sensitive); no normalization is applied.
	Email        string
	Name         string
	PasswordHash string
	// Active gates login. Accounts are created active; deactivation is an
	// administrative operation with no HTTP surface.
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and assigns its ID. Returns ErrDuplicateEmail
	// when the email is already taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SetActive flips the account gate. Returns ErrNotFound for unknown ids.
	SetActive(ctx context.Context, id int64, active bool) error
}
