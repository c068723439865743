package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/labforge-io/gitlab-client/internal/constants"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
	"github.com/labforge-io/gitlab-client/pkg/glclient"
)

// cliConfig is the on-disk shape of ~/.glab/config.yml.
type cliConfig struct {
	API   string `yaml:"api"`
	Token string `yaml:"token,omitempty"`
}

// tokenProvider is implemented by clients that can hand out their current
// access token.
type tokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		username    string
		password    string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to GitLab",
		Long:  "Authenticate with a GitLab API endpoint and store the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("GitLab URL: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			config := &gitlab.Config{
				BaseURL:       apiEndpoint,
				SkipTLSVerify: viper.GetBool("skip_ssl_validation"),
			}

			if token != "" {
				config.Token = token
			} else {
				// Username/password flow
				if username == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Username: ")
					username, _ = reader.ReadString('\n')
					username = strings.TrimSpace(username)
				}

				if password == "" {
					fmt.Print("Password: ")

					bytePassword, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read password: %w", err)
					}

					password = string(bytePassword)

					fmt.Println()
				}

				config.Username = username
				config.Password = password
			}

			client, err := glclient.New(ctx, config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before storing anything.
			user, err := client.Users().Current(ctx)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			storedToken := config.Token
			if storedToken == "" {
				provider, ok := client.(tokenProvider)
				if ok {
					storedToken, err = provider.GetToken(ctx)
					if err != nil {
						return fmt.Errorf("failed to obtain token: %w", err)
					}
				}
			}

			err = saveConfig(&cliConfig{API: config.BaseURL, Token: storedToken})
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("Logged in to %s as %s\n", config.BaseURL, user.Username)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "GitLab base URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if not given)")
	cmd.Flags().StringVar(&token, "token", "", "private or personal access token")

	return cmd
}

// saveConfig writes the CLI configuration to ~/.glab/config.yml.
func saveConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".glab")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(filepath.Join(configDir, "config.yml"), data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
