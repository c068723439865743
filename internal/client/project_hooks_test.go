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

func TestProjectHooksClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/hooks")
		writeJSON(t, writer, http.StatusOK, []gitlab.ProjectHook{
			{ID: 1, URL: "https://ci.example.com/hook", PushEvents: true},
		})
	}))
	defer server.Close()

	hooks, err := NewTestClient(server.URL).ProjectHooks().List(context.Background(), "17")
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	assert.True(t, hooks[0].PushEvents)
}

func TestProjectHooksClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/hooks/1")
		writeJSON(t, writer, http.StatusOK, gitlab.ProjectHook{ID: 1, URL: "https://ci.example.com/hook"})
	}))
	defer server.Close()

	hook, err := NewTestClient(server.URL).ProjectHooks().Get(context.Background(), "17", 1)
	require.NoError(t, err)
	assert.Equal(t, "https://ci.example.com/hook", hook.URL)
}

func TestProjectHooksClient_Add(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "POST", "/api/v4/projects/17/hooks")

		query := request.URL.Query()
		assert.Equal(t, "https://ci.example.com/hook", query.Get("url"))
		assert.Equal(t, "true", query.Get("push_events"))
		assert.Equal(t, "false", query.Get("merge_requests_events"))

		writeJSON(t, writer, http.StatusCreated, gitlab.ProjectHook{
			ID:         2,
			URL:        "https://ci.example.com/hook",
			PushEvents: true,
		})
	}))
	defer server.Close()

	pushEvents := true
	mergeRequestsEvents := false

	hook, err := NewTestClient(server.URL).ProjectHooks().Add(context.Background(), "17", &gitlab.AddProjectHookOptions{
		URL:                 "https://ci.example.com/hook",
		PushEvents:          &pushEvents,
		MergeRequestsEvents: &mergeRequestsEvents,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, hook.ID)
}

func TestProjectHooksClient_Edit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "PUT", "/api/v4/projects/17/hooks/2")
		assert.Equal(t, "https://ci.example.com/v2/hook", request.URL.Query().Get("url"))

		writeJSON(t, writer, http.StatusOK, gitlab.ProjectHook{ID: 2, URL: "https://ci.example.com/v2/hook"})
	}))
	defer server.Close()

	hook, err := NewTestClient(server.URL).ProjectHooks().Edit(context.Background(), "17", 2, &gitlab.AddProjectHookOptions{
		URL: "https://ci.example.com/v2/hook",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://ci.example.com/v2/hook", hook.URL)
}

func TestProjectHooksClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "DELETE", "/api/v4/projects/17/hooks/2")
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, NewTestClient(server.URL).ProjectHooks().Delete(context.Background(), "17", 2))
}
