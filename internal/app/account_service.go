// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loginsvc/internal/domain"
)

var (
	// ErrDuplicateUser indicates that the user id is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrAccountNotFound indicates that no account exists for the user id.
	ErrAccountNotFound = errors.New("user not found")
	// ErrInvalidInput indicates that a create-account field failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// PublicProfile is the subset of account fields safe to expose without
// authentication. It never carries the credential.
type PublicProfile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// AccountService owns account records and the stored credentials.
type AccountService struct {
	repo domain.AccountRepository
}

// NewAccountService creates an AccountService backed by the given repository.
func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount validates the request, hashes the password, and stores a
// new account. The raw password is never stored.
func (s *AccountService) CreateAccount(ctx context.Context, userID, password, displayName string) (*PublicProfile, error) {
	userID = strings.TrimSpace(userID)
	displayName = strings.TrimSpace(displayName)

	if userID == "" || len(userID) > 64 {
		return nil, fmt.Errorf("%w: user_id must be 1-64 characters", ErrInvalidInput)
	}
	if len(password) < 4 || len(password) > 128 {
		return nil, fmt.Errorf("%w: password must be 4-128 characters", ErrInvalidInput)
	}
	if displayName == "" || len(displayName) > 64 {
		return nil, fmt.Errorf("%w: display_name must be 1-64 characters", ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	acct, err := s.repo.Create(ctx, userID, displayName, hash)
	if errors.Is(err, domain.ErrDuplicateAccount) {
		return nil, ErrDuplicateUser
	}
	if err != nil {
		return nil, err
	}
	return &PublicProfile{UserID: acct.UserID, DisplayName: acct.DisplayName}, nil
}

// PublicProfile returns the public view of an account.
func (s *AccountService) PublicProfile(ctx context.Context, userID string) (*PublicProfile, error) {
	acct, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrAccountNotFound
	}
	return &PublicProfile{UserID: acct.UserID, DisplayName: acct.DisplayName}, nil
}

// VerifyCredential reports whether the account exists and the password
// matches its stored credential. It deliberately does not tell callers
// which of the two checks failed.
func (s *AccountService) VerifyCredential(ctx context.Context, userID, password string) bool {
	acct, err := s.repo.Get(ctx, userID)
	if err != nil || acct == nil {
		return false
	}
	return VerifyPassword(password, acct.PasswordHash)
}

// EnsureAccount fetches an account by user id, creating it with an
// unusable credential when absent. Used by SSO login, where the identity
// provider has already authenticated the user.
func (s *AccountService) EnsureAccount(ctx context.Context, userID, displayName string) (*domain.Account, error) {
	acct, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if acct != nil {
		return acct, nil
	}

	// Empty hash never verifies, so the account is SSO-only.
	acct, err = s.repo.Create(ctx, userID, displayName, "")
	if errors.Is(err, domain.ErrDuplicateAccount) {
		// Lost a create race; the account exists now.
		return s.repo.Get(ctx, userID)
	}
	return acct, err
}
