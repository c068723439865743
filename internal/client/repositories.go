package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// RepositoriesClient implements gitlab.RepositoriesClient. Raw content and
// archive responses are returned byte for byte.
type RepositoriesClient struct {
	httpClient *http.Client
}

// NewRepositoriesClient creates a new repositories client.
func NewRepositoriesClient(httpClient *http.Client) *RepositoriesClient {
	return &RepositoriesClient{httpClient: httpClient}
}

// Tags implements gitlab.RepositoriesClient.Tags.
func (c *RepositoriesClient) Tags(ctx context.Context, projectID string) ([]gitlab.Tag, error) {
	path := fmt.Sprintf("/projects/%s/repository/tags", projectID)

	return fetchAll[gitlab.Tag](ctx, c.httpClient, path, nil, nil)
}

// CreateTag implements gitlab.RepositoriesClient.CreateTag.
func (c *RepositoriesClient) CreateTag(ctx context.Context, projectID string, opts *gitlab.CreateTagOptions) (*gitlab.Tag, error) {
	path := fmt.Sprintf("/projects/%s/repository/tags", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	return decodeSingle[gitlab.Tag](resp)
}

// Commits implements gitlab.RepositoriesClient.Commits.
func (c *RepositoriesClient) Commits(ctx context.Context, projectID string, opts *gitlab.ListCommitsOptions) ([]gitlab.Commit, error) {
	path := fmt.Sprintf("/projects/%s/repository/commits", projectID)

	query := gitlab.NewQuery()

	var page *gitlab.PageOptions

	if opts != nil {
		query.Merge(opts.ToQuery())

		page = opts.Page
	}

	return fetchAll[gitlab.Commit](ctx, c.httpClient, path, query, page)
}

// GetCommit implements gitlab.RepositoriesClient.GetCommit.
func (c *RepositoriesClient) GetCommit(ctx context.Context, projectID, sha string) (*gitlab.Commit, error) {
	path := fmt.Sprintf("/projects/%s/repository/commits/%s", projectID, sha)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting commit: %w", err)
	}

	return decodeSingle[gitlab.Commit](resp)
}

// CompareCommits implements gitlab.RepositoriesClient.CompareCommits.
func (c *RepositoriesClient) CompareCommits(ctx context.Context, projectID, from, to string) (*gitlab.Compare, error) {
	path := fmt.Sprintf("/projects/%s/repository/compare", projectID)
	query := gitlab.NewQuery().
		Add("from", from).
		Add("to", to)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("comparing commits: %w", err)
	}

	return decodeSingle[gitlab.Compare](resp)
}

// GetFile implements gitlab.RepositoriesClient.GetFile. The returned
// content is base64-encoded as delivered by the API.
func (c *RepositoriesClient) GetFile(ctx context.Context, projectID, filePath, ref string) (*gitlab.RepositoryFile, error) {
	path := fmt.Sprintf("/projects/%s/repository/files/%s", projectID, url.PathEscape(filePath))
	query := gitlab.NewQuery().Add("ref", ref)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	return decodeSingle[gitlab.RepositoryFile](resp)
}

// RawFileContent implements gitlab.RepositoriesClient.RawFileContent.
func (c *RepositoriesClient) RawFileContent(ctx context.Context, projectID, ref, filePath string) ([]byte, error) {
	path := fmt.Sprintf("/projects/%s/repository/files/%s/raw", projectID, url.PathEscape(filePath))
	query := gitlab.NewQuery().Add("ref", ref)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting raw file content: %w", err)
	}

	return resp.Body, nil
}

// RawBlobContent implements gitlab.RepositoriesClient.RawBlobContent.
func (c *RepositoriesClient) RawBlobContent(ctx context.Context, projectID, sha string) ([]byte, error) {
	path := fmt.Sprintf("/projects/%s/repository/blobs/%s/raw", projectID, sha)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting raw blob content: %w", err)
	}

	return resp.Body, nil
}

// Archive implements gitlab.RepositoriesClient.Archive.
func (c *RepositoriesClient) Archive(ctx context.Context, projectID, sha string) ([]byte, error) {
	path := fmt.Sprintf("/projects/%s/repository/archive", projectID)

	query := gitlab.NewQuery()
	if sha != "" {
		query.Add("sha", sha)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting archive: %w", err)
	}

	return resp.Body, nil
}
