// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"loginsvc/internal/domain"
)

// DB implements in-memory account and session storage. A single mutex
// guards both maps; it is held only across the map read-modify-write.
type DB struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	sessions map[string]*domain.Session
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		accounts: make(map[string]*domain.Account),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.AccountRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- AccountRepository ---

// Get retrieves an account by user id. Returns (nil, nil) when absent.
func (db *DB) Get(ctx context.Context, userID string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if a, ok := db.accounts[userID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

// Create stores a new account, failing when the user id is taken.
func (db *DB) Create(ctx context.Context, userID, displayName, passwordHash string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.accounts[userID]; ok {
		return nil, domain.ErrDuplicateAccount
	}

	a := &domain.Account{
		UserID:       userID,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.accounts[userID] = a
	cp := *a
	return &cp, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence on the shared DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a session repository sharing this DB's lock.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create records a token -> user id binding.
func (r *SessionRepo) Create(ctx context.Context, token, userID string, createdAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}
	return nil
}

// GetByToken retrieves a session by token. Returns (nil, nil) when unknown.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
