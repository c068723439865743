package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

func TestRepositoriesClient_Tags(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/repository/tags")
		writeJSON(t, writer, http.StatusOK, []gitlab.Tag{
			{Name: "v1.1.0"},
			{Name: "v1.0.0"},
		})
	}))
	defer server.Close()

	tags, err := NewTestClient(server.URL).Repositories().Tags(context.Background(), "17")
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "v1.1.0", tags[0].Name)
}

func TestRepositoriesClient_CreateTag(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "POST", "/api/v4/projects/17/repository/tags")

		query := request.URL.Query()
		assert.Equal(t, "v2.0.0", query.Get("tag_name"))
		assert.Equal(t, "main", query.Get("ref"))

		writeJSON(t, writer, http.StatusCreated, gitlab.Tag{Name: "v2.0.0"})
	}))
	defer server.Close()

	tag, err := NewTestClient(server.URL).Repositories().CreateTag(context.Background(), "17", &gitlab.CreateTagOptions{
		TagName: "v2.0.0",
		Ref:     "main",
	})
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", tag.Name)
}

func TestRepositoriesClient_Commits(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/repository/commits")
		assert.Equal(t, "main", request.URL.Query().Get("ref_name"))

		writeJSON(t, writer, http.StatusOK, []gitlab.Commit{{ID: "abc123"}})
	}))
	defer server.Close()

	refName := "main"

	commits, err := NewTestClient(server.URL).Repositories().Commits(context.Background(), "17", &gitlab.ListCommitsOptions{
		RefName: &refName,
	})
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc123", commits[0].ID)
}

func TestRepositoriesClient_CompareCommits(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/repository/compare")

		query := request.URL.Query()
		assert.Equal(t, "v1.0.0", query.Get("from"))
		assert.Equal(t, "main", query.Get("to"))

		writeJSON(t, writer, http.StatusOK, gitlab.Compare{
			Commit: &gitlab.Commit{ID: "abc123"},
			Diffs:  []gitlab.CommitDiff{{OldPath: "main.go", NewPath: "main.go"}},
		})
	}))
	defer server.Close()

	compare, err := NewTestClient(server.URL).Repositories().CompareCommits(context.Background(), "17", "v1.0.0", "main")
	require.NoError(t, err)
	require.Len(t, compare.Diffs, 1)
	assert.Equal(t, "main.go", compare.Diffs[0].NewPath)
}

func TestRepositoriesClient_GetFile(t *testing.T) {
	t.Parallel()

	content := base64.StdEncoding.EncodeToString([]byte("package main\n"))

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v4/projects/17/repository/files/cmd%2Fmain.go", request.URL.EscapedPath())
		assert.Equal(t, "main", request.URL.Query().Get("ref"))

		writeJSON(t, writer, http.StatusOK, gitlab.RepositoryFile{
			FileName: "main.go",
			FilePath: "cmd/main.go",
			Encoding: "base64",
			Content:  content,
			Ref:      "main",
		})
	}))
	defer server.Close()

	file, err := NewTestClient(server.URL).Repositories().GetFile(context.Background(), "17", "cmd/main.go", "main")
	require.NoError(t, err)
	assert.Equal(t, "base64", file.Encoding)

	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(decoded))
}

func TestRepositoriesClient_RawFileContent(t *testing.T) {
	t.Parallel()

	raw := []byte("#!/bin/sh\nexit 0\n")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v4/projects/17/repository/files/scripts%2Fbuild.sh/raw", request.URL.EscapedPath())
		assert.Equal(t, "main", request.URL.Query().Get("ref"))

		writer.Header().Set("Content-Type", "text/plain")
		_, _ = writer.Write(raw)
	}))
	defer server.Close()

	content, err := NewTestClient(server.URL).Repositories().RawFileContent(context.Background(), "17", "main", "scripts/build.sh")
	require.NoError(t, err)
	assert.Equal(t, raw, content)
}

func TestRepositoriesClient_RawBlobContent(t *testing.T) {
	t.Parallel()

	// Bytes that are not valid UTF-8 must come back untouched.
	raw := []byte{0x1f, 0x8b, 0x08, 0x00, 0xff, 0xfe}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assertRequest(t, request, "GET", "/api/v4/projects/17/repository/blobs/abc123/raw")

		writer.Header().Set("Content-Type", "application/octet-stream")
		_, _ = writer.Write(raw)
	}))
	defer server.Close()

	content, err := NewTestClient(server.URL).Repositories().RawBlobContent(context.Background(), "17", "abc123")
	require.NoError(t, err)
	assert.Equal(t, raw, content)
}

func TestRepositoriesClient_Archive(t *testing.T) {
	t.Parallel()

	archive := []byte{0x1f, 0x8b, 0x08, 0x00}

	t.Run("default ref", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assertRequest(t, request, "GET", "/api/v4/projects/17/repository/archive")
			assert.Empty(t, request.URL.Query().Get("sha"))
			_, _ = writer.Write(archive)
		}))
		defer server.Close()

		content, err := NewTestClient(server.URL).Repositories().Archive(context.Background(), "17", "")
		require.NoError(t, err)
		assert.Equal(t, archive, content)
	})

	t.Run("specific sha", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "abc123", request.URL.Query().Get("sha"))
			_, _ = writer.Write(archive)
		}))
		defer server.Close()

		content, err := NewTestClient(server.URL).Repositories().Archive(context.Background(), "17", "abc123")
		require.NoError(t, err)
		assert.Equal(t, archive, content)
	})
}
