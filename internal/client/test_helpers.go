package client

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	internalhttp "github.com/labforge-io/gitlab-client/internal/http"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// writeJSON encodes a JSON response body with the given status.
func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		err := json.NewEncoder(writer).Encode(body)
		assert.NoError(t, err)
	}
}

// assertRequest checks the method and full API path of an incoming request.
func assertRequest(t *testing.T, request *http.Request, method, path string) {
	t.Helper()

	assert.Equal(t, method, request.Method)
	assert.Equal(t, path, request.URL.Path)
}
