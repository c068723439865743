package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// MergeRequestsClient implements gitlab.MergeRequestsClient. Merge requests
// are addressed by their project-scoped IID.
type MergeRequestsClient struct {
	httpClient *http.Client
}

// NewMergeRequestsClient creates a new merge requests client.
func NewMergeRequestsClient(httpClient *http.Client) *MergeRequestsClient {
	return &MergeRequestsClient{httpClient: httpClient}
}

// List implements gitlab.MergeRequestsClient.List.
func (c *MergeRequestsClient) List(ctx context.Context, projectID string, opts *gitlab.ListMergeRequestsOptions) ([]gitlab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests", projectID)

	query := gitlab.NewQuery()

	var page *gitlab.PageOptions

	if opts != nil {
		query.Merge(opts.ToQuery())

		page = opts.Page
	}

	return fetchAll[gitlab.MergeRequest](ctx, c.httpClient, path, query, page)
}

// Get implements gitlab.MergeRequestsClient.Get.
func (c *MergeRequestsClient) Get(ctx context.Context, projectID string, mergeRequestIID int) (*gitlab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%d", projectID, mergeRequestIID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting merge request: %w", err)
	}

	return decodeSingle[gitlab.MergeRequest](resp)
}

// Create implements gitlab.MergeRequestsClient.Create.
func (c *MergeRequestsClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateMergeRequestOptions) (*gitlab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating merge request: %w", err)
	}

	return decodeSingle[gitlab.MergeRequest](resp)
}

// Update implements gitlab.MergeRequestsClient.Update.
func (c *MergeRequestsClient) Update(ctx context.Context, projectID string, mergeRequestIID int, opts *gitlab.UpdateMergeRequestOptions) (*gitlab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%d", projectID, mergeRequestIID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("updating merge request: %w", err)
	}

	return decodeSingle[gitlab.MergeRequest](resp)
}

// Accept implements gitlab.MergeRequestsClient.Accept.
func (c *MergeRequestsClient) Accept(ctx context.Context, projectID string, mergeRequestIID int, opts *gitlab.AcceptMergeRequestOptions) (*gitlab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%d/merge", projectID, mergeRequestIID)

	query := gitlab.NewQuery()
	if opts != nil {
		query.Merge(opts.ToQuery())
	}

	resp, err := c.httpClient.Put(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("accepting merge request: %w", err)
	}

	return decodeSingle[gitlab.MergeRequest](resp)
}

// Close implements gitlab.MergeRequestsClient.Close.
func (c *MergeRequestsClient) Close(ctx context.Context, projectID string, mergeRequestIID int) (*gitlab.MergeRequest, error) {
	stateEvent := "close"

	return c.Update(ctx, projectID, mergeRequestIID, &gitlab.UpdateMergeRequestOptions{StateEvent: &stateEvent})
}

// Commits implements gitlab.MergeRequestsClient.Commits.
func (c *MergeRequestsClient) Commits(ctx context.Context, projectID string, mergeRequestIID int) ([]gitlab.Commit, error) {
	path := fmt.Sprintf("/projects/%s/merge_requests/%d/commits", projectID, mergeRequestIID)

	return fetchAll[gitlab.Commit](ctx, c.httpClient, path, nil, nil)
}
