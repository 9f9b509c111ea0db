// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateAccount is returned by AccountRepository.Create when the
// user id is already taken.
var ErrDuplicateAccount = errors.New("account already exists")

// Account represents a registered user's stored identity and credential.
type Account struct {
	UserID       string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// Session represents a live authenticated context bound to one account.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// AccountRepository defines the port for account persistence operations.
// Lookups return (nil, nil) when no account exists.
type AccountRepository interface {
	Get(ctx context.Context, userID string) (*Account, error)
	Create(ctx context.Context, userID, displayName, passwordHash string) (*Account, error)
}

// SessionRepository defines the port for session persistence operations.
// Sessions are never deleted or expired; they live until the backing
// store is reset. Lookups return (nil, nil) when the token is unknown.
type SessionRepository interface {
	Create(ctx context.Context, token, userID string, createdAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
}
