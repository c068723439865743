package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// ProjectsClient implements gitlab.ProjectsClient. Project identifiers may
// be numeric IDs or encoded "namespace/name" paths (see gitlab.EncodeID).
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

// List implements gitlab.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *gitlab.ListProjectsOptions) ([]gitlab.Project, error) {
	query := gitlab.NewQuery()

	var page *gitlab.PageOptions

	if opts != nil {
		query.Merge(opts.ToQuery())

		page = opts.Page
	}

	return fetchAll[gitlab.Project](ctx, c.httpClient, "/projects", query, page)
}

// ListOwned implements gitlab.ProjectsClient.ListOwned.
func (c *ProjectsClient) ListOwned(ctx context.Context) ([]gitlab.Project, error) {
	query := gitlab.NewQuery().AddBool("owned", true)

	return fetchAll[gitlab.Project](ctx, c.httpClient, "/projects", query, nil)
}

// Get implements gitlab.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID string) (*gitlab.Project, error) {
	path := fmt.Sprintf("/projects/%s", projectID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return decodeSingle[gitlab.Project](resp)
}

// Create implements gitlab.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, opts *gitlab.CreateProjectOptions) (*gitlab.Project, error) {
	resp, err := c.httpClient.Post(ctx, "/projects", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return decodeSingle[gitlab.Project](resp)
}

// Update implements gitlab.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID string, opts *gitlab.UpdateProjectOptions) (*gitlab.Project, error) {
	path := fmt.Sprintf("/projects/%s", projectID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return decodeSingle[gitlab.Project](resp)
}

// Delete implements gitlab.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID string) error {
	path := fmt.Sprintf("/projects/%s", projectID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// Members implements gitlab.ProjectsClient.Members.
func (c *ProjectsClient) Members(ctx context.Context, projectID string) ([]gitlab.Member, error) {
	path := fmt.Sprintf("/projects/%s/members", projectID)

	return fetchAll[gitlab.Member](ctx, c.httpClient, path, nil, nil)
}

// Upload implements gitlab.ProjectsClient.Upload. The content is sent as a
// multipart "file" field.
func (c *ProjectsClient) Upload(ctx context.Context, projectID string, filename string, content []byte) (*gitlab.Upload, error) {
	path := fmt.Sprintf("/projects/%s/uploads", projectID)

	req := &http.Request{
		Method: "POST",
		Path:   path,
		File: &http.Attachment{
			FieldName: "file",
			FileName:  filename,
			Content:   content,
		},
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	return decodeSingle[gitlab.Upload](resp)
}
