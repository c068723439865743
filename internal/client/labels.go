package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// LabelsClient implements gitlab.LabelsClient.
type LabelsClient struct {
	httpClient *http.Client
}

// NewLabelsClient creates a new labels client.
func NewLabelsClient(httpClient *http.Client) *LabelsClient {
	return &LabelsClient{httpClient: httpClient}
}

// List implements gitlab.LabelsClient.List.
func (c *LabelsClient) List(ctx context.Context, projectID string) ([]gitlab.Label, error) {
	path := fmt.Sprintf("/projects/%s/labels", projectID)

	return fetchAll[gitlab.Label](ctx, c.httpClient, path, nil, nil)
}

// Create implements gitlab.LabelsClient.Create.
func (c *LabelsClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateLabelOptions) (*gitlab.Label, error) {
	path := fmt.Sprintf("/projects/%s/labels", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	return decodeSingle[gitlab.Label](resp)
}

// Update implements gitlab.LabelsClient.Update. The label to rename is
// identified by opts.Name.
func (c *LabelsClient) Update(ctx context.Context, projectID string, opts *gitlab.UpdateLabelOptions) (*gitlab.Label, error) {
	path := fmt.Sprintf("/projects/%s/labels", projectID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("updating label: %w", err)
	}

	return decodeSingle[gitlab.Label](resp)
}

// Delete implements gitlab.LabelsClient.Delete.
func (c *LabelsClient) Delete(ctx context.Context, projectID string, name string) error {
	path := fmt.Sprintf("/projects/%s/labels", projectID)
	query := gitlab.NewQuery().Add("name", name)

	_, err := c.httpClient.Delete(ctx, path, query)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	return nil
}
