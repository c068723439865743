//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
	"github.com/labforge-io/gitlab-client/pkg/glclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL   string
	Token     string
	ProjectID string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:   os.Getenv("GITLAB_TEST_URL"),
		Token:     os.Getenv("GITLAB_TEST_TOKEN"),
		ProjectID: os.Getenv("GITLAB_TEST_PROJECT"),
		Verbose:   os.Getenv("GITLAB_TEST_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.BaseURL == "" {
		t.Skip("GITLAB_TEST_URL not set, skipping integration test")
	}

	if config.Token == "" {
		t.Skip("GITLAB_TEST_TOKEN not set, skipping integration test")
	}
}

// NewClient creates an authenticated client from the test configuration.
func (config *TestConfig) NewClient(t *testing.T) gitlab.Client {
	t.Helper()

	client, err := glclient.NewWithToken(context.Background(), config.BaseURL, config.Token)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

// GenerateTestName produces a unique resource name for a test run.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
