package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// IssuesClient implements gitlab.IssuesClient. Issues are addressed by
// their project-scoped IID, not the global ID.
type IssuesClient struct {
	httpClient *http.Client
}

// NewIssuesClient creates a new issues client.
func NewIssuesClient(httpClient *http.Client) *IssuesClient {
	return &IssuesClient{httpClient: httpClient}
}

// List implements gitlab.IssuesClient.List.
func (c *IssuesClient) List(ctx context.Context, projectID string, opts *gitlab.ListIssuesOptions) ([]gitlab.Issue, error) {
	path := fmt.Sprintf("/projects/%s/issues", projectID)

	query := gitlab.NewQuery()

	var page *gitlab.PageOptions

	if opts != nil {
		query.Merge(opts.ToQuery())

		page = opts.Page
	}

	return fetchAll[gitlab.Issue](ctx, c.httpClient, path, query, page)
}

// ListAll implements gitlab.IssuesClient.ListAll: issues visible to the
// authenticated user across all projects.
func (c *IssuesClient) ListAll(ctx context.Context, opts *gitlab.ListIssuesOptions) ([]gitlab.Issue, error) {
	query := gitlab.NewQuery()

	var page *gitlab.PageOptions

	if opts != nil {
		query.Merge(opts.ToQuery())

		page = opts.Page
	}

	return fetchAll[gitlab.Issue](ctx, c.httpClient, "/issues", query, page)
}

// Get implements gitlab.IssuesClient.Get.
func (c *IssuesClient) Get(ctx context.Context, projectID string, issueIID int) (*gitlab.Issue, error) {
	path := fmt.Sprintf("/projects/%s/issues/%d", projectID, issueIID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	return decodeSingle[gitlab.Issue](resp)
}

// Create implements gitlab.IssuesClient.Create.
func (c *IssuesClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateIssueOptions) (*gitlab.Issue, error) {
	path := fmt.Sprintf("/projects/%s/issues", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	return decodeSingle[gitlab.Issue](resp)
}

// Update implements gitlab.IssuesClient.Update.
func (c *IssuesClient) Update(ctx context.Context, projectID string, issueIID int, opts *gitlab.UpdateIssueOptions) (*gitlab.Issue, error) {
	path := fmt.Sprintf("/projects/%s/issues/%d", projectID, issueIID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("updating issue: %w", err)
	}

	return decodeSingle[gitlab.Issue](resp)
}

// Close implements gitlab.IssuesClient.Close.
func (c *IssuesClient) Close(ctx context.Context, projectID string, issueIID int) (*gitlab.Issue, error) {
	stateEvent := "close"

	return c.Update(ctx, projectID, issueIID, &gitlab.UpdateIssueOptions{StateEvent: &stateEvent})
}

// Reopen implements gitlab.IssuesClient.Reopen.
func (c *IssuesClient) Reopen(ctx context.Context, projectID string, issueIID int) (*gitlab.Issue, error) {
	stateEvent := "reopen"

	return c.Update(ctx, projectID, issueIID, &gitlab.UpdateIssueOptions{StateEvent: &stateEvent})
}
