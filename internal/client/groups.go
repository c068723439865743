package client

import (
	"context"
	"fmt"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// GroupsClient implements gitlab.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{httpClient: httpClient}
}

// Get implements gitlab.GroupsClient.Get. The identifier may be a numeric
// ID or an encoded path.
func (c *GroupsClient) Get(ctx context.Context, groupID string) (*gitlab.Group, error) {
	path := fmt.Sprintf("/groups/%s", groupID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	return decodeSingle[gitlab.Group](resp)
}

// List implements gitlab.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts *gitlab.ListGroupsOptions) ([]gitlab.Group, error) {
	query := gitlab.NewQuery()

	var page *gitlab.PageOptions

	if opts != nil {
		query.AddOptional("sudo", opts.Sudo)

		page = opts.Page
	}

	return fetchAll[gitlab.Group](ctx, c.httpClient, "/groups", query, page)
}

// Projects implements gitlab.GroupsClient.Projects.
func (c *GroupsClient) Projects(ctx context.Context, groupID int) ([]gitlab.Project, error) {
	path := fmt.Sprintf("/groups/%d/projects", groupID)

	return fetchAll[gitlab.Project](ctx, c.httpClient, path, nil, nil)
}

// Members implements gitlab.GroupsClient.Members.
func (c *GroupsClient) Members(ctx context.Context, groupID int) ([]gitlab.Member, error) {
	path := fmt.Sprintf("/groups/%d/members", groupID)

	return fetchAll[gitlab.Member](ctx, c.httpClient, path, nil, nil)
}

// Create implements gitlab.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, opts *gitlab.CreateGroupOptions) (*gitlab.Group, error) {
	resp, err := c.httpClient.Post(ctx, "/groups", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	return decodeSingle[gitlab.Group](resp)
}

// AddMember implements gitlab.GroupsClient.AddMember.
func (c *GroupsClient) AddMember(ctx context.Context, groupID, userID int, accessLevel gitlab.AccessLevel) (*gitlab.Member, error) {
	path := fmt.Sprintf("/groups/%d/members", groupID)
	query := gitlab.NewQuery().
		AddInt("user_id", userID).
		AddInt("access_level", int(accessLevel))

	resp, err := c.httpClient.Post(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("adding group member: %w", err)
	}

	return decodeSingle[gitlab.Member](resp)
}

// RemoveMember implements gitlab.GroupsClient.RemoveMember.
func (c *GroupsClient) RemoveMember(ctx context.Context, groupID, userID int) error {
	path := fmt.Sprintf("/groups/%d/members/%d", groupID, userID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("removing group member: %w", err)
	}

	return nil
}

// Delete implements gitlab.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID int) error {
	path := fmt.Sprintf("/groups/%d", groupID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}
