package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// MilestonesClient implements gitlab.MilestonesClient.
type MilestonesClient struct {
	httpClient *http.Client
}

// NewMilestonesClient creates a new milestones client.
func NewMilestonesClient(httpClient *http.Client) *MilestonesClient {
	return &MilestonesClient{httpClient: httpClient}
}

// List implements gitlab.MilestonesClient.List.
func (c *MilestonesClient) List(ctx context.Context, projectID string) ([]gitlab.Milestone, error) {
	path := fmt.Sprintf("/projects/%s/milestones", projectID)

	return fetchAll[gitlab.Milestone](ctx, c.httpClient, path, nil, nil)
}

// Get implements gitlab.MilestonesClient.Get.
func (c *MilestonesClient) Get(ctx context.Context, projectID string, milestoneID int) (*gitlab.Milestone, error) {
	path := fmt.Sprintf("/projects/%s/milestones/%d", projectID, milestoneID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting milestone: %w", err)
	}

	return decodeSingle[gitlab.Milestone](resp)
}

// Create implements gitlab.MilestonesClient.Create.
func (c *MilestonesClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateMilestoneOptions) (*gitlab.Milestone, error) {
	path := fmt.Sprintf("/projects/%s/milestones", projectID)

	resp, err := c.httpClient.Post(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating milestone: %w", err)
	}

	return decodeSingle[gitlab.Milestone](resp)
}

// Update implements gitlab.MilestonesClient.Update.
func (c *MilestonesClient) Update(ctx context.Context, projectID string, milestoneID int, opts *gitlab.UpdateMilestoneOptions) (*gitlab.Milestone, error) {
	path := fmt.Sprintf("/projects/%s/milestones/%d", projectID, milestoneID)

	resp, err := c.httpClient.Put(ctx, path, opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("updating milestone: %w", err)
	}

	return decodeSingle[gitlab.Milestone](resp)
}
