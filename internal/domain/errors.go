package domain

import "errors"

// Sentinel errors for the expected, user-facing failure conditions.
// Callers branch on these with errors.Is rather than matching messages.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidInput       = errors.New("invalid input")
)
