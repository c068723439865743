package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// NewProjectsCommand creates the projects command group
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
		Long:  "List and inspect GitLab projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		search string
		owned  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var projects []gitlab.Project

			if owned {
				projects, err = client.Projects().ListOwned(cmd.Context())
			} else {
				var opts *gitlab.ListProjectsOptions
				if search != "" {
					opts = &gitlab.ListProjectsOptions{Search: &search}
				}

				projects, err = client.Projects().List(cmd.Context(), opts)
			}

			if err != nil {
				return fmt.Errorf("listing projects: %w", err)
			}

			return renderOutput(projects, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Path", "Visibility", "Default Branch")

				for _, project := range projects {
					_ = table.Append(
						strconv.Itoa(project.ID),
						truncate(project.PathWithNamespace),
						project.Visibility,
						project.DefaultBranch,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter projects by name")
	cmd.Flags().BoolVar(&owned, "owned", false, "only projects owned by the authenticated user")

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT",
		Short: "Show a project by ID or namespace/name path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(cmd.Context(), gitlab.EncodeID(args[0]))
			if err != nil {
				return fmt.Errorf("getting project: %w", err)
			}

			return renderOutput(project, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(project.ID))
				_ = table.Append("Path", project.PathWithNamespace)
				_ = table.Append("Description", truncate(project.Description))
				_ = table.Append("Visibility", project.Visibility)
				_ = table.Append("Default Branch", project.DefaultBranch)
				_ = table.Append("Web URL", project.WebURL)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
