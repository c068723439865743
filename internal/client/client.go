// Package client implements the gitlab.Client interface on top of the
// internal HTTP transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/labforge-io/gitlab-client/internal/auth"
	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// Client implements the gitlab.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       gitlab.Logger

	// Resource clients
	users         gitlab.UsersClient
	groups        gitlab.GroupsClient
	projects      gitlab.ProjectsClient
	issues        gitlab.IssuesClient
	mergeRequests gitlab.MergeRequestsClient
	labels        gitlab.LabelsClient
	milestones    gitlab.MilestonesClient
	branches      gitlab.BranchesClient
	repositories  gitlab.RepositoriesClient
	projectHooks  gitlab.ProjectHooksClient
	deployKeys    gitlab.DeployKeysClient
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *gitlab.Config) auth.TokenManager {
	if config.Token != "" {
		return auth.NewStaticTokenManager(config.Token)
	}

	if config.Username != "" && config.Password != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL: getTokenURL(config),
			Username: config.Username,
			Password: config.Password,
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the base URL fallback.
func getTokenURL(config *gitlab.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return config.BaseURL + "/oauth/token"
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gitlab.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithSkipTLSVerify(true))
	}

	if config.ProxyURL != "" {
		parsed, err := url.Parse(config.ProxyURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("%w: %q", gitlab.ErrInvalidProxyURL, config.ProxyURL)
		}

		httpOpts = append(httpOpts, http.WithProxy(config.ProxyURL))
	}

	tokenType := config.TokenType
	if tokenType == "" {
		tokenType = gitlab.PrivateToken
	}

	// A username/password grant always yields an OAuth bearer token.
	if config.Token == "" && config.Username != "" {
		tokenType = gitlab.OAuthToken
	}

	httpOpts = append(httpOpts, http.WithTokenType(tokenType))

	if config.AuthMethod != "" {
		httpOpts = append(httpOpts, http.WithAuthMethod(config.AuthMethod))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts, nil
}

// New creates a new GitLab API client.
func New(ctx context.Context, config *gitlab.Config) (*Client, error) {
	if config == nil {
		return nil, gitlab.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, gitlab.ErrBaseURLRequired
	}

	tokenManager := createTokenManager(config)

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	if config.Cache != nil {
		cache, err := gitlab.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		ttl := gitlab.DefaultCacheOptions().TTL
		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			ttl = config.Cache.Options.TTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTokenManager creates a client with a custom token manager.
func NewWithTokenManager(config *gitlab.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, gitlab.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, gitlab.ErrBaseURLRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Version implements gitlab.Client.Version.
func (c *Client) Version(ctx context.Context) (*gitlab.Version, error) {
	resp, err := c.httpClient.Get(ctx, "/version", nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version gitlab.Version

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return nil, &gitlab.DecodeError{Err: err}
	}

	return &version, nil
}

// Resource client accessors

// Users implements gitlab.Client.Users.
func (c *Client) Users() gitlab.UsersClient {
	return c.users
}

// Groups implements gitlab.Client.Groups.
func (c *Client) Groups() gitlab.GroupsClient {
	return c.groups
}

// Projects implements gitlab.Client.Projects.
func (c *Client) Projects() gitlab.ProjectsClient {
	return c.projects
}

// Issues implements gitlab.Client.Issues.
func (c *Client) Issues() gitlab.IssuesClient {
	return c.issues
}

// MergeRequests implements gitlab.Client.MergeRequests.
func (c *Client) MergeRequests() gitlab.MergeRequestsClient {
	return c.mergeRequests
}

// Labels implements gitlab.Client.Labels.
func (c *Client) Labels() gitlab.LabelsClient {
	return c.labels
}

// Milestones implements gitlab.Client.Milestones.
func (c *Client) Milestones() gitlab.MilestonesClient {
	return c.milestones
}

// Branches implements gitlab.Client.Branches.
func (c *Client) Branches() gitlab.BranchesClient {
	return c.branches
}

// Repositories implements gitlab.Client.Repositories.
func (c *Client) Repositories() gitlab.RepositoriesClient {
	return c.repositories
}

// ProjectHooks implements gitlab.Client.ProjectHooks.
func (c *Client) ProjectHooks() gitlab.ProjectHooksClient {
	return c.projectHooks
}

// DeployKeys implements gitlab.Client.DeployKeys.
func (c *Client) DeployKeys() gitlab.DeployKeysClient {
	return c.deployKeys
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", gitlab.ErrNoCredentials
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.issues = NewIssuesClient(c.httpClient)
	c.mergeRequests = NewMergeRequestsClient(c.httpClient)
	c.labels = NewLabelsClient(c.httpClient)
	c.milestones = NewMilestonesClient(c.httpClient)
	c.branches = NewBranchesClient(c.httpClient)
	c.repositories = NewRepositoriesClient(c.httpClient)
	c.projectHooks = NewProjectHooksClient(c.httpClient)
	c.deployKeys = NewDeployKeysClient(c.httpClient)
}
