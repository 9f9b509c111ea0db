package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"loginsvc/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided user id or password
	// was incorrect. Login never says which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates that the session token is not recognized.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService handles login and session resolution. It depends on the
// AccountService only to validate identity at login time; sessions
// themselves hold a non-owning reference to the account by user id.
type AuthService struct {
	accounts *AccountService
	sessions domain.SessionRepository
}

// NewAuthService creates an AuthService over the given account service
// and session store.
func NewAuthService(accounts *AccountService, sessions domain.SessionRepository) *AuthService {
	return &AuthService{accounts: accounts, sessions: sessions}
}

// Login verifies the credentials and issues a fresh session token. Unknown
// user and wrong password both fail with ErrInvalidCredentials so callers
// cannot probe for account existence.
func (s *AuthService) Login(ctx context.Context, userID, password string) (string, error) {
	if !s.accounts.VerifyCredential(ctx, userID, password) {
		return "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, token, userID, time.Now().UTC()); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveSession returns the user id bound to a token, or ErrInvalidToken.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (string, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", ErrInvalidToken
	}
	return sess.UserID, nil
}

// CurrentUser resolves a token to the public profile of its account.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*PublicProfile, error) {
	userID, err := s.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.accounts.PublicProfile(ctx, userID)
}

// LoginExternal issues a session for a user already authenticated by an
// external identity provider, provisioning the account on first login.
func (s *AuthService) LoginExternal(ctx context.Context, userID, displayName string) (string, error) {
	acct, err := s.accounts.EnsureAccount(ctx, userID, displayName)
	if err != nil {
		return "", err
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, token, acct.UserID, time.Now().UTC()); err != nil {
		return "", err
	}
	return token, nil
}

// generateToken returns 32 bytes from a CSPRNG as unpadded URL-safe
// base64, the same shape the original service issued.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
