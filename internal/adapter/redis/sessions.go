// Package redis implements session persistence on Redis, for deployments
// where sessions should survive a process restart or be shared between
// replicas.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"loginsvc/internal/domain"
)

// SessionStore is a Redis-backed SessionRepository. Each session is a
// hash under <prefix>:session:<token>, stored without a TTL because
// sessions never expire.
type SessionStore struct {
	rdb    *redis.Client
	prefix string
}

var _ domain.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore backed by the given Redis client.
// prefix namespaces the keys so the store can share a Redis instance.
func NewSessionStore(rdb *redis.Client, prefix string) *SessionStore {
	if prefix == "" {
		prefix = "loginsvc"
	}
	return &SessionStore{rdb: rdb, prefix: prefix}
}

func (s *SessionStore) key(token string) string {
	return s.prefix + ":session:" + token
}

// Create records a token -> user id binding.
func (s *SessionStore) Create(ctx context.Context, token, userID string, createdAt time.Time) error {
	return s.rdb.HSet(ctx, s.key(token),
		"user_id", userID,
		"created_at", createdAt.UTC().Format(time.RFC3339Nano),
	).Err()
}

// GetByToken retrieves a session by token. Returns (nil, nil) when unknown.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key(token)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	sess := &domain.Session{Token: token, UserID: fields["user_id"]}
	if raw, ok := fields["created_at"]; ok {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			sess.CreatedAt = t
		}
	}
	return sess, nil
}
