package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/labforge-io/gitlab-client/internal/constants"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
	"github.com/labforge-io/gitlab-client/pkg/glclient"
	"github.com/labforge-io/gitlab-client/pkg/logging"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("GitLab base URL is required (use --api or run 'glab login')")
	ErrNotAuthenticated    = errors.New("not authenticated (run 'glab login' or pass --token)")
	ErrProjectArgRequired  = errors.New("project ID or path is required")
)

// CreateClient builds a gitlab.Client from the effective CLI configuration.
func CreateClient(ctx context.Context) (gitlab.Client, error) {
	baseURL := viper.GetString("api")
	if baseURL == "" {
		return nil, ErrAPIEndpointRequired
	}

	config := &gitlab.Config{
		BaseURL:       baseURL,
		Token:         viper.GetString("token"),
		SkipTLSVerify: viper.GetBool("skip_ssl_validation"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = logging.NewDefaultLogger("glab")
	}

	client, err := glclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderOutput emits v as JSON or YAML per the --output flag, or falls back
// to the table renderer.
func renderOutput(v interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(v)
	case OutputFormatYAML:
		return yaml.NewEncoder(os.Stdout).Encode(v)
	default:
		return renderTable()
	}
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

// truncate shortens long cell values so tables stay readable.
func truncate(s string) string {
	if len(s) <= constants.TableMaxColumnWidth {
		return s
	}

	return s[:constants.TableMaxColumnWidth-3] + "..."
}
