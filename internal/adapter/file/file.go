// Package file implements an account repository persisted to a JSON file,
// matching the users.json layout of the original service.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"loginsvc/internal/domain"
)

// record is the on-disk shape of one account, keyed by user id.
type record struct {
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// Store is a JSON-file-backed AccountRepository. All accounts are held
// in memory and flushed to disk on every create via an atomic
// write-to-temp-then-rename.
type Store struct {
	mu       sync.Mutex
	path     string
	accounts map[string]record
}

var _ domain.AccountRepository = (*Store)(nil)

// Open loads the account file, treating a missing file as an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, accounts: make(map[string]record)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	if err := json.Unmarshal(data, &s.accounts); err != nil {
		return nil, fmt.Errorf("parse accounts file: %w", err)
	}
	return s, nil
}

// Get retrieves an account by user id. Returns (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, userID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.accounts[userID]
	if !ok {
		return nil, nil
	}
	return &domain.Account{
		UserID:       userID,
		DisplayName:  rec.DisplayName,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}

// Create stores a new account and flushes the file before returning.
func (s *Store) Create(ctx context.Context, userID, displayName, passwordHash string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[userID]; ok {
		return nil, domain.ErrDuplicateAccount
	}

	rec := record{
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.accounts[userID] = rec
	if err := s.save(); err != nil {
		delete(s.accounts, userID)
		return nil, err
	}

	return &domain.Account{
		UserID:       userID,
		DisplayName:  rec.DisplayName,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}

// save writes the whole map atomically: temp file in the same directory,
// then rename over the target.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.accounts, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
