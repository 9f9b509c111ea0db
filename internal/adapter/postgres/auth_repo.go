package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"loginsvc/internal/domain"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

// Get retrieves an account by user id. Returns (nil, nil) when absent.
func (d *DB) Get(ctx context.Context, userID string) (*domain.Account, error) {
	var a domain.Account
	err := d.sql.QueryRowContext(ctx,
		"SELECT user_id, display_name, password_hash, created_at FROM accounts WHERE user_id = $1",
		userID,
	).Scan(&a.UserID, &a.DisplayName, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new account, mapping a unique violation on user_id to
// domain.ErrDuplicateAccount.
func (d *DB) Create(ctx context.Context, userID, displayName, passwordHash string) (*domain.Account, error) {
	var a domain.Account
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO accounts (user_id, display_name, password_hash, created_at) VALUES ($1, $2, $3, $4) RETURNING user_id, display_name, password_hash, created_at",
		userID, displayName, passwordHash, time.Now().UTC(),
	).Scan(&a.UserID, &a.DisplayName, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateAccount
		}
		return nil, err
	}
	return &a, nil
}

// SessionRepo implements session repository operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

var _ domain.AccountRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// Create records a new session.
func (r *SessionRepo) Create(ctx context.Context, token, userID string, createdAt time.Time) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, created_at) VALUES ($1, $2, $3)",
		token, userID, createdAt,
	)
	return err
}

// GetByToken retrieves a session by token. Returns (nil, nil) when unknown.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, user_id, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.UserID, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
