package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

func TestUsersClient_Current(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/user")
		writeJSON(t, writer, http.StatusOK, gitlab.User{ID: 1, Username: "jsmith", Name: "John Smith"})
	}))
	defer server.Close()

	user, err := NewTestClient(server.URL).Users().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "jsmith", user.Username)
}

func TestUsersClient_CurrentViaSudo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/user")
		assert.Equal(t, "jdoe", request.URL.Query().Get("sudo"))
		writeJSON(t, writer, http.StatusOK, gitlab.User{ID: 7, Username: "jdoe"})
	}))
	defer server.Close()

	user, err := NewTestClient(server.URL).Users().CurrentViaSudo(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/users/42")
		writeJSON(t, writer, http.StatusOK, gitlab.User{ID: 42, Username: "alice"})
	}))
	defer server.Close()

	user, err := NewTestClient(server.URL).Users().Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, user.ID)
}

func TestUsersClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusNotFound, map[string]string{"message": "404 User Not Found"})
	}))
	defer server.Close()

	user, err := NewTestClient(server.URL).Users().Get(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, gitlab.IsNotFound(err))
	assert.Contains(t, err.Error(), "404 User Not Found")
}

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/users")
		assert.Equal(t, "100", request.URL.Query().Get("per_page"))

		writeJSON(t, writer, http.StatusOK, []gitlab.User{
			{ID: 1, Username: "alice"},
			{ID: 2, Username: "bob"},
		})
	}))
	defer server.Close()

	users, err := NewTestClient(server.URL).Users().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUsersClient_List_MultiplePages(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/users")

		page, err := strconv.Atoi(request.URL.Query().Get("page"))
		require.NoError(t, err)

		count := 100
		if page == 2 {
			count = 37
		}

		users := make([]gitlab.User, count)
		for i := range users {
			users[i] = gitlab.User{ID: (page-1)*100 + i + 1}
		}

		writeJSON(t, writer, http.StatusOK, users)
	}))
	defer server.Close()

	users, err := NewTestClient(server.URL).Users().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, users, 137)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, 137, users[136].ID)
}

func TestUsersClient_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/users")
		assert.Equal(t, "alice@example.com", request.URL.Query().Get("search"))
		writeJSON(t, writer, http.StatusOK, []gitlab.User{{ID: 1, Username: "alice"}})
	}))
	defer server.Close()

	users, err := NewTestClient(server.URL).Users().Search(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestUsersClient_Search_EmptyTerm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request expected for an empty search term")
	}))
	defer server.Close()

	users, err := NewTestClient(server.URL).Users().Search(context.Background(), "   ")
	require.ErrorIs(t, err, gitlab.ErrEmptySearchTerm)
	assert.Nil(t, users)
}

func TestUsersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "POST", "/api/v4/users")

		query := request.URL.Query()
		assert.Equal(t, "alice@example.com", query.Get("email"))
		assert.Equal(t, "alice", query.Get("username"))
		assert.Equal(t, "Alice", query.Get("name"))

		writeJSON(t, writer, http.StatusCreated, gitlab.User{ID: 10, Username: "alice", Email: "alice@example.com"})
	}))
	defer server.Close()

	username := "alice"
	name := "Alice"

	user, err := NewTestClient(server.URL).Users().Create(context.Background(), &gitlab.CreateUserOptions{
		Email:    "alice@example.com",
		Username: &username,
		Name:     &name,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, user.ID)
}

func TestUsersClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "DELETE", "/api/v4/users/42")
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := NewTestClient(server.URL).Users().Delete(context.Background(), 42)
	require.NoError(t, err)
}

func TestUsersClient_BlockUnblock(t *testing.T) {
	t.Parallel()

	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		paths = append(paths, request.URL.Path)
		writer.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	require.NoError(t, client.Users().Block(context.Background(), 7))
	require.NoError(t, client.Users().Unblock(context.Background(), 7))
	assert.Equal(t, []string{"/api/v4/users/7/block", "/api/v4/users/7/unblock"}, paths)
}

func TestUsersClient_SSHKeys(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assertRequest(t, request, "GET", "/api/v4/users/5/keys")
			writeJSON(t, writer, http.StatusOK, []gitlab.SSHKey{{ID: 1, Title: "work"}})
		}))
		defer server.Close()

		keys, err := NewTestClient(server.URL).Users().ListSSHKeys(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, "work", keys[0].Title)
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assertRequest(t, request, "POST", "/api/v4/users/5/keys")

			query := request.URL.Query()
			assert.Equal(t, "laptop", query.Get("title"))
			assert.Equal(t, "ssh-ed25519 AAAA", query.Get("key"))

			writeJSON(t, writer, http.StatusCreated, gitlab.SSHKey{ID: 2, Title: "laptop"})
		}))
		defer server.Close()

		key, err := NewTestClient(server.URL).Users().AddSSHKey(context.Background(), 5, "laptop", "ssh-ed25519 AAAA")
		require.NoError(t, err)
		assert.Equal(t, 2, key.ID)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assertRequest(t, request, "DELETE", "/api/v4/users/5/keys/2")
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := NewTestClient(server.URL).Users().DeleteSSHKey(context.Background(), 5, 2)
		require.NoError(t, err)
	})
}
