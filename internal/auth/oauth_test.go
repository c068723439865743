package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuth2TokenManager_GetToken(t *testing.T) {
	t.Run("returns existing valid token", func(t *testing.T) {
		manager := NewOAuth2TokenManager(&OAuth2Config{
			AccessToken: "existing-token",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "existing-token", token)
	})

	t.Run("uses password grant", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/oauth/token", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			err := r.ParseForm()
			require.NoError(t, err)
			assert.Equal(t, "password", r.Form.Get("grant_type"))
			assert.Equal(t, "testuser", r.Form.Get("username"))
			assert.Equal(t, "testpass", r.Form.Get("password"))

			response := Token{
				AccessToken:  "password-token",
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
				TokenType:    "bearer",
			}
			_ = json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL: server.URL + "/oauth/token",
			Username: "testuser",
			Password: "testpass",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "password-token", token)
	})

	t.Run("refreshes expired token using refresh token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/oauth/token", r.URL.Path)

			err := r.ParseForm()
			require.NoError(t, err)
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			assert.Equal(t, "old-refresh-token", r.Form.Get("refresh_token"))

			response := Token{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
				ExpiresIn:    3600,
				TokenType:    "bearer",
			}
			_ = json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL: server.URL + "/oauth/token",
		})

		// Seed an expired token carrying a refresh token.
		manager.store.Set(&Token{
			AccessToken:  "expired-token",
			RefreshToken: "old-refresh-token",
			ExpiresAt:    time.Now().Add(-1 * time.Hour),
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new-access-token", token)
	})

	t.Run("handles token request error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			response := map[string]string{
				"error":             "invalid_grant",
				"error_description": "The provided authorization grant is invalid",
			}
			_ = json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL: server.URL + "/oauth/token",
			Username: "testuser",
			Password: "wrongpass",
		})

		_, err := manager.GetToken(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_grant")
		assert.Contains(t, err.Error(), "authorization grant is invalid")
	})

	t.Run("fails without credentials", func(t *testing.T) {
		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL: "http://localhost/oauth/token",
		})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrNoGrantAvailable)
	})
}

func TestOAuth2TokenManager_SetToken(t *testing.T) {
	manager := NewOAuth2TokenManager(&OAuth2Config{})
	manager.SetToken("manual-token", time.Now().Add(1*time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "manual-token", token)
}

func TestStaticTokenManager(t *testing.T) {
	manager := NewStaticTokenManager("glpat-abc123")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "glpat-abc123", token)

	err = manager.RefreshToken(context.Background())
	require.ErrorIs(t, err, ErrStaticTokenCannotRefresh)

	manager.SetToken("glpat-def456", time.Time{})

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "glpat-def456", token)
}

func TestToken_Valid(t *testing.T) {
	tests := []struct {
		name  string
		token *Token
		want  bool
	}{
		{name: "nil token", token: nil, want: false},
		{name: "empty access token", token: &Token{}, want: false},
		{name: "no expiry", token: &Token{AccessToken: "t"}, want: true},
		{
			name:  "future expiry",
			token: &Token{AccessToken: "t", ExpiresAt: time.Now().Add(1 * time.Hour)},
			want:  true,
		},
		{
			name:  "past expiry",
			token: &Token{AccessToken: "t", ExpiresAt: time.Now().Add(-1 * time.Minute)},
			want:  false,
		},
		{
			name:  "expiring within margin",
			token: &Token{AccessToken: "t", ExpiresAt: time.Now().Add(5 * time.Second)},
			want:  false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.token.Valid())
		})
	}
}
