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

func TestGroupsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/groups/12")
		writeJSON(t, writer, http.StatusOK, gitlab.Group{ID: 12, Name: "platform", Path: "platform"})
	}))
	defer server.Close()

	group, err := NewTestClient(server.URL).Groups().Get(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, "platform", group.Name)
}

func TestGroupsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/groups")
		writeJSON(t, writer, http.StatusOK, []gitlab.Group{
			{ID: 12, Name: "platform"},
			{ID: 13, Name: "infra"},
		})
	}))
	defer server.Close()

	groups, err := NewTestClient(server.URL).Groups().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "infra", groups[1].Name)
}

func TestGroupsClient_List_Sudo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "jsmith", request.URL.Query().Get("sudo"))
		writeJSON(t, writer, http.StatusOK, []gitlab.Group{{ID: 20, Name: "theirs"}})
	}))
	defer server.Close()

	sudo := "jsmith"

	groups, err := NewTestClient(server.URL).Groups().List(context.Background(), &gitlab.ListGroupsOptions{Sudo: &sudo})
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestGroupsClient_Projects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/groups/12/projects")
		writeJSON(t, writer, http.StatusOK, []gitlab.Project{
			{ID: 101, Name: "api"},
			{ID: 102, Name: "worker"},
		})
	}))
	defer server.Close()

	projects, err := NewTestClient(server.URL).Groups().Projects(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "api", projects[0].Name)
}

func TestGroupsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "POST", "/api/v4/groups")

		query := request.URL.Query()
		assert.Equal(t, "new-team", query.Get("name"))
		assert.Equal(t, "new-team", query.Get("path"))

		writeJSON(t, writer, http.StatusCreated, gitlab.Group{ID: 30, Name: "new-team", Path: "new-team"})
	}))
	defer server.Close()

	group, err := NewTestClient(server.URL).Groups().Create(context.Background(), &gitlab.CreateGroupOptions{
		Name: "new-team",
		Path: "new-team",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, group.ID)
}

func TestGroupsClient_Members(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/groups/12/members")
		writeJSON(t, writer, http.StatusOK, []gitlab.Member{
			{ID: 5, Username: "alice", AccessLevel: gitlab.OwnerLevel},
		})
	}))
	defer server.Close()

	members, err := NewTestClient(server.URL).Groups().Members(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, gitlab.OwnerLevel, members[0].AccessLevel)
}

func TestGroupsClient_AddRemoveMember(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case "POST":
			assertRequest(t, request, "POST", "/api/v4/groups/12/members")

			query := request.URL.Query()
			assert.Equal(t, "7", query.Get("user_id"))
			assert.Equal(t, "30", query.Get("access_level"))

			writeJSON(t, writer, http.StatusCreated, gitlab.Member{ID: 7, AccessLevel: gitlab.DeveloperLevel})
		case "DELETE":
			assertRequest(t, request, "DELETE", "/api/v4/groups/12/members/7")
			writer.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	groups := NewTestClient(server.URL).Groups()

	member, err := groups.AddMember(context.Background(), 12, 7, gitlab.DeveloperLevel)
	require.NoError(t, err)
	assert.Equal(t, gitlab.DeveloperLevel, member.AccessLevel)

	require.NoError(t, groups.RemoveMember(context.Background(), 12, 7))
}

func TestGroupsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "DELETE", "/api/v4/groups/12")
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, NewTestClient(server.URL).Groups().Delete(context.Background(), 12))
}
