package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the glab CLI and, when connected, the GitLab server",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version       string `json:"version"                  yaml:"version"`
				Commit        string `json:"commit"                   yaml:"commit"`
				Built         string `json:"built"                    yaml:"built"`
				ServerVersion string `json:"server_version,omitempty" yaml:"server_version,omitempty"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			// Server version is best effort; the CLI may not be logged in.
			if client, err := CreateClient(cmd.Context()); err == nil {
				if server, err := client.Version(cmd.Context()); err == nil {
					versionInfo.ServerVersion = server.Version
				}
			}

			return renderOutput(versionInfo, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)

				if versionInfo.ServerVersion != "" {
					_ = table.Append("Server", versionInfo.ServerVersion)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
