package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// BranchesClient implements gitlab.BranchesClient. Branch names may contain
// slashes and are percent-encoded into the path.
type BranchesClient struct {
	httpClient *http.Client
}

// NewBranchesClient creates a new branches client.
func NewBranchesClient(httpClient *http.Client) *BranchesClient {
	return &BranchesClient{httpClient: httpClient}
}

// List implements gitlab.BranchesClient.List.
func (c *BranchesClient) List(ctx context.Context, projectID string, opts *gitlab.PageOptions) ([]gitlab.Branch, error) {
	path := fmt.Sprintf("/projects/%s/repository/branches", projectID)

	return fetchAll[gitlab.Branch](ctx, c.httpClient, path, nil, opts)
}

// Get implements gitlab.BranchesClient.Get.
func (c *BranchesClient) Get(ctx context.Context, projectID, branchName string) (*gitlab.Branch, error) {
	path := fmt.Sprintf("/projects/%s/repository/branches/%s", projectID, url.PathEscape(branchName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting branch: %w", err)
	}

	return decodeSingle[gitlab.Branch](resp)
}

// Create implements gitlab.BranchesClient.Create.
func (c *BranchesClient) Create(ctx context.Context, projectID, branchName, ref string) (*gitlab.Branch, error) {
	path := fmt.Sprintf("/projects/%s/repository/branches", projectID)
	query := gitlab.NewQuery().
		Add("branch", branchName).
		Add("ref", ref)

	resp, err := c.httpClient.Post(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("creating branch: %w", err)
	}

	return decodeSingle[gitlab.Branch](resp)
}

// Delete implements gitlab.BranchesClient.Delete.
func (c *BranchesClient) Delete(ctx context.Context, projectID, branchName string) error {
	path := fmt.Sprintf("/projects/%s/repository/branches/%s", projectID, url.PathEscape(branchName))

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting branch: %w", err)
	}

	return nil
}

// Protect implements gitlab.BranchesClient.Protect. The response body is
// discarded; only the status matters.
func (c *BranchesClient) Protect(ctx context.Context, projectID, branchName string) error {
	path := fmt.Sprintf("/projects/%s/repository/branches/%s/protect", projectID, url.PathEscape(branchName))

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("protecting branch: %w", err)
	}

	return nil
}

// Unprotect implements gitlab.BranchesClient.Unprotect.
func (c *BranchesClient) Unprotect(ctx context.Context, projectID, branchName string) error {
	path := fmt.Sprintf("/projects/%s/repository/branches/%s/unprotect", projectID, url.PathEscape(branchName))

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("unprotecting branch: %w", err)
	}

	return nil
}
