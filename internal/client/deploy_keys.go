package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// DeployKeysClient implements gitlab.DeployKeysClient.
type DeployKeysClient struct {
	httpClient *http.Client
}

// NewDeployKeysClient creates a new deploy keys client.
func NewDeployKeysClient(httpClient *http.Client) *DeployKeysClient {
	return &DeployKeysClient{httpClient: httpClient}
}

// List implements gitlab.DeployKeysClient.List.
func (c *DeployKeysClient) List(ctx context.Context, projectID string) ([]gitlab.DeployKey, error) {
	path := fmt.Sprintf("/projects/%s/deploy_keys", projectID)

	return fetchAll[gitlab.DeployKey](ctx, c.httpClient, path, nil, nil)
}

// Get implements gitlab.DeployKeysClient.Get.
func (c *DeployKeysClient) Get(ctx context.Context, projectID string, keyID int) (*gitlab.DeployKey, error) {
	path := fmt.Sprintf("/projects/%s/deploy_keys/%d", projectID, keyID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting deploy key: %w", err)
	}

	return decodeSingle[gitlab.DeployKey](resp)
}

// Add implements gitlab.DeployKeysClient.Add.
func (c *DeployKeysClient) Add(ctx context.Context, projectID string, opts *gitlab.AddDeployKeyOptions) (*gitlab.DeployKey, error) {
	path := fmt.Sprintf("/projects/%s/deploy_keys", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("adding deploy key: %w", err)
	}

	return decodeSingle[gitlab.DeployKey](resp)
}

// Delete implements gitlab.DeployKeysClient.Delete.
func (c *DeployKeysClient) Delete(ctx context.Context, projectID string, keyID int) error {
	path := fmt.Sprintf("/projects/%s/deploy_keys/%d", projectID, keyID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting deploy key: %w", err)
	}

	return nil
}
