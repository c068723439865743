package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// ProjectHooksClient implements gitlab.ProjectHooksClient.
type ProjectHooksClient struct {
	httpClient *http.Client
}

// NewProjectHooksClient creates a new project hooks client.
func NewProjectHooksClient(httpClient *http.Client) *ProjectHooksClient {
	return &ProjectHooksClient{httpClient: httpClient}
}

// List implements gitlab.ProjectHooksClient.List.
func (c *ProjectHooksClient) List(ctx context.Context, projectID string) ([]gitlab.ProjectHook, error) {
	path := fmt.Sprintf("/projects/%s/hooks", projectID)

	return fetchAll[gitlab.ProjectHook](ctx, c.httpClient, path, nil, nil)
}

// Get implements gitlab.ProjectHooksClient.Get.
func (c *ProjectHooksClient) Get(ctx context.Context, projectID string, hookID int) (*gitlab.ProjectHook, error) {
	path := fmt.Sprintf("/projects/%s/hooks/%d", projectID, hookID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project hook: %w", err)
	}

	return decodeSingle[gitlab.ProjectHook](resp)
}

// Add implements gitlab.ProjectHooksClient.Add.
func (c *ProjectHooksClient) Add(ctx context.Context, projectID string, opts *gitlab.AddProjectHookOptions) (*gitlab.ProjectHook, error) {
	path := fmt.Sprintf("/projects/%s/hooks", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("adding project hook: %w", err)
	}

	return decodeSingle[gitlab.ProjectHook](resp)
}

// Edit implements gitlab.ProjectHooksClient.Edit.
func (c *ProjectHooksClient) Edit(ctx context.Context, projectID string, hookID int, opts *gitlab.AddProjectHookOptions) (*gitlab.ProjectHook, error) {
	path := fmt.Sprintf("/projects/%s/hooks/%d", projectID, hookID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("editing project hook: %w", err)
	}

	return decodeSingle[gitlab.ProjectHook](resp)
}

// Delete implements gitlab.ProjectHooksClient.Delete.
func (c *ProjectHooksClient) Delete(ctx context.Context, projectID string, hookID int) error {
	path := fmt.Sprintf("/projects/%s/hooks/%d", projectID, hookID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting project hook: %w", err)
	}

	return nil
}
