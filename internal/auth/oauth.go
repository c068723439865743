package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/labforge-io/gitlab-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrNoGrantAvailable         = errors.New("no credentials available to obtain a token")
)

// OAuth2Config configures the OAuth2 token manager. GitLab supports the
// resource-owner password grant against /oauth/token; a refresh token from a
// previous grant can be used directly.
type OAuth2Config struct {
	// TokenURL is the token endpoint, e.g. "https://gitlab.example.com/oauth/token".
	TokenURL string

	// Username and Password select the password grant.
	Username string
	Password string

	// RefreshToken selects the refresh grant when set.
	RefreshToken string

	// AccessToken seeds the store with an already obtained token.
	AccessToken string

	// HTTPClient overrides the client used for token requests.
	HTTPClient *http.Client
}

// OAuth2TokenManager obtains and refreshes tokens from the OAuth2 token
// endpoint. Safe for concurrent use.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      tokenStore
	httpClient *http.Client
	mu         sync.Mutex
}

// NewOAuth2TokenManager creates an OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
		})
	}

	return manager
}

// GetToken returns a valid access token, obtaining or refreshing one when
// the stored token is missing or expiring.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken obtains a fresh token. A stored refresh token is preferred;
// otherwise the password grant is used.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Another goroutine may have refreshed while we waited on the lock.
	if token := m.store.Get(); token.Valid() {
		return nil
	}

	form := url.Values{}

	refreshToken := m.config.RefreshToken
	if stored := m.store.Get(); stored != nil && stored.RefreshToken != "" {
		refreshToken = stored.RefreshToken
	}

	switch {
	case refreshToken != "":
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", refreshToken)

	case m.config.Username != "" && m.config.Password != "":
		form.Set("grant_type", "password")
		form.Set("username", m.config.Username)
		form.Set("password", m.config.Password)

	default:
		return ErrNoGrantAvailable
	}

	token, err := m.requestToken(ctx, form)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}

		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("token request failed: %s: %s", errResp.Error, errResp.ErrorDescription)
		}

		return nil, fmt.Errorf("token request failed: status %d", resp.StatusCode)
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	lifetime := constants.DefaultTokenLifetime
	if token.ExpiresIn > 0 {
		lifetime = time.Duration(token.ExpiresIn) * time.Second
	}

	token.ExpiresAt = time.Now().Add(lifetime)

	return &token, nil
}
