// Package glclient provides the main entry point for creating GitLab API clients
package glclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/labforge-io/gitlab-client/internal/client"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// New creates a new GitLab API client.
func New(ctx context.Context, config *gitlab.Config) (gitlab.Client, error) {
	if config == nil {
		return nil, gitlab.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, gitlab.ErrBaseURLRequired
	}

	// Normalize the base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// The OAuth token endpoint lives outside the /api/v4 namespace.
	if config.Username != "" && config.Password != "" && config.TokenURL == "" {
		config.TokenURL = baseURL + "/oauth/token"
	}

	// Use the internal client implementation
	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client authenticated with a private or personal
// access token.
func NewWithToken(ctx context.Context, baseURL, token string) (gitlab.Client, error) {
	return New(ctx, &gitlab.Config{
		BaseURL: baseURL,
		Token:   token,
	})
}

// NewWithOAuthToken creates a client authenticated with an OAuth2 access
// token obtained elsewhere.
func NewWithOAuthToken(ctx context.Context, baseURL, accessToken string) (gitlab.Client, error) {
	return New(ctx, &gitlab.Config{
		BaseURL:   baseURL,
		Token:     accessToken,
		TokenType: gitlab.OAuthToken,
	})
}

// NewWithPassword creates a client that logs in through the resource owner
// password credentials flow.
func NewWithPassword(ctx context.Context, baseURL, username, password string) (gitlab.Client, error) {
	return New(ctx, &gitlab.Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	})
}
