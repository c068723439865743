package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// UsersClient implements gitlab.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Current implements gitlab.UsersClient.Current.
func (c *UsersClient) Current(ctx context.Context) (*gitlab.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decodeSingle[gitlab.User](resp)
}

// CurrentViaSudo implements gitlab.UsersClient.CurrentViaSudo. Requires
// administrator credentials.
func (c *UsersClient) CurrentViaSudo(ctx context.Context, username string) (*gitlab.User, error) {
	query := gitlab.NewQuery().Add("sudo", username)

	resp, err := c.httpClient.Get(ctx, "/user", query)
	if err != nil {
		return nil, fmt.Errorf("getting user via sudo: %w", err)
	}

	return decodeSingle[gitlab.User](resp)
}

// Get implements gitlab.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int) (*gitlab.User, error) {
	path := fmt.Sprintf("/users/%d", userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return decodeSingle[gitlab.User](resp)
}

// List implements gitlab.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *gitlab.PageOptions) ([]gitlab.User, error) {
	return fetchAll[gitlab.User](ctx, c.httpClient, "/users", nil, opts)
}

// Search implements gitlab.UsersClient.Search.
func (c *UsersClient) Search(ctx context.Context, emailOrUsername string) ([]gitlab.User, error) {
	if strings.TrimSpace(emailOrUsername) == "" {
		return nil, gitlab.ErrEmptySearchTerm
	}

	query := gitlab.NewQuery().Add("search", emailOrUsername)

	return fetchAll[gitlab.User](ctx, c.httpClient, "/users", query, nil)
}

// Create implements gitlab.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, opts *gitlab.CreateUserOptions) (*gitlab.User, error) {
	resp, err := c.httpClient.Post(ctx, "/users", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return decodeSingle[gitlab.User](resp)
}

// Update implements gitlab.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID int, opts *gitlab.UpdateUserOptions) (*gitlab.User, error) {
	path := fmt.Sprintf("/users/%d", userID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return decodeSingle[gitlab.User](resp)
}

// Delete implements gitlab.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID int) error {
	path := fmt.Sprintf("/users/%d", userID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// Block implements gitlab.UsersClient.Block.
func (c *UsersClient) Block(ctx context.Context, userID int) error {
	path := fmt.Sprintf("/users/%d/block", userID)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("blocking user: %w", err)
	}

	return nil
}

// Unblock implements gitlab.UsersClient.Unblock.
func (c *UsersClient) Unblock(ctx context.Context, userID int) error {
	path := fmt.Sprintf("/users/%d/unblock", userID)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("unblocking user: %w", err)
	}

	return nil
}

// ListSSHKeys implements gitlab.UsersClient.ListSSHKeys.
func (c *UsersClient) ListSSHKeys(ctx context.Context, userID int) ([]gitlab.SSHKey, error) {
	path := fmt.Sprintf("/users/%d/keys", userID)

	return fetchAll[gitlab.SSHKey](ctx, c.httpClient, path, nil, nil)
}

// GetSSHKey implements gitlab.UsersClient.GetSSHKey.
func (c *UsersClient) GetSSHKey(ctx context.Context, keyID int) (*gitlab.SSHKey, error) {
	path := fmt.Sprintf("/user/keys/%d", keyID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SSH key: %w", err)
	}

	return decodeSingle[gitlab.SSHKey](resp)
}

// AddSSHKey implements gitlab.UsersClient.AddSSHKey. Requires administrator
// credentials to add keys for other users.
func (c *UsersClient) AddSSHKey(ctx context.Context, userID int, title, key string) (*gitlab.SSHKey, error) {
	path := fmt.Sprintf("/users/%d/keys", userID)
	query := gitlab.NewQuery().Add("title", title).Add("key", key)

	resp, err := c.httpClient.Post(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("adding SSH key: %w", err)
	}

	return decodeSingle[gitlab.SSHKey](resp)
}

// DeleteSSHKey implements gitlab.UsersClient.DeleteSSHKey.
func (c *UsersClient) DeleteSSHKey(ctx context.Context, userID, keyID int) error {
	path := fmt.Sprintf("/users/%d/keys/%d", userID, keyID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting SSH key: %w", err)
	}

	return nil
}
