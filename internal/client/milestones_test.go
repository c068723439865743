package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

func TestMilestonesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/milestones")
		writeJSON(t, writer, http.StatusOK, []gitlab.Milestone{
			{ID: 1, IID: 1, Title: "v1.0"},
			{ID: 2, IID: 2, Title: "v1.1"},
		})
	}))
	defer server.Close()

	milestones, err := NewTestClient(server.URL).Milestones().List(context.Background(), "17")
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	assert.Equal(t, "v1.0", milestones[0].Title)
}

func TestMilestonesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/milestones/2")
		writeJSON(t, writer, http.StatusOK, gitlab.Milestone{ID: 2, IID: 2, Title: "v1.1", State: "active"})
	}))
	defer server.Close()

	milestone, err := NewTestClient(server.URL).Milestones().Get(context.Background(), "17", 2)
	require.NoError(t, err)
	assert.Equal(t, "v1.1", milestone.Title)
	assert.Equal(t, "active", milestone.State)
}

func TestMilestonesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "POST", "/api/v4/projects/17/milestones")

		query := request.URL.Query()
		assert.Equal(t, "v2.0", query.Get("title"))
		assert.Equal(t, "2026-12-31", query.Get("due_date"))

		writeJSON(t, writer, http.StatusCreated, gitlab.Milestone{ID: 3, IID: 3, Title: "v2.0", DueDate: "2026-12-31"})
	}))
	defer server.Close()

	dueDate := "2026-12-31"

	milestone, err := NewTestClient(server.URL).Milestones().Create(context.Background(), "17", &gitlab.CreateMilestoneOptions{
		Title:   "v2.0",
		DueDate: &dueDate,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, milestone.IID)
}

func TestMilestonesClient_Update_Close(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "PUT", "/api/v4/projects/17/milestones/3")
		assert.Equal(t, "close", request.URL.Query().Get("state_event"))

		writeJSON(t, writer, http.StatusOK, gitlab.Milestone{ID: 3, IID: 3, Title: "v2.0", State: "closed"})
	}))
	defer server.Close()

	stateEvent := "close"

	milestone, err := NewTestClient(server.URL).Milestones().Update(context.Background(), "17", 3, &gitlab.UpdateMilestoneOptions{
		StateEvent: &stateEvent,
	})
	require.NoError(t, err)
	assert.Equal(t, "closed", milestone.State)
}
