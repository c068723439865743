package auth

import (
	"context"
	"sync"
	"time"

	"github.com/labforge-io/gitlab-client/internal/constants"
)

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, refreshing if necessary.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a token refresh.
	RefreshToken(ctx context.Context) error

	// SetToken manually sets the access token.
	SetToken(token string, expiresAt time.Time)
}

// Token represents an OAuth2 token response from /oauth/token.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int       `json:"expires_in,omitempty"`
	CreatedAt    int64     `json:"created_at,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// Valid reports whether the token is present and not about to expire.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpiryMargin).Before(t.ExpiresAt)
}

// tokenStore holds the current token behind a mutex.
type tokenStore struct {
	mu    sync.RWMutex
	token *Token
}

func (s *tokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *tokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// StaticTokenManager provides a fixed token that never refreshes.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

// RefreshToken fails: a static token has nothing to refresh against.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken replaces the static token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}
