package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// NewIssuesCommand creates the issues command group
func NewIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Manage issues",
		Long:  "List, create, and update project issues",
	}

	cmd.AddCommand(newIssuesListCommand())
	cmd.AddCommand(newIssuesCreateCommand())
	cmd.AddCommand(newIssuesCloseCommand())

	return cmd
}

func newIssuesListCommand() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List issues of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var opts *gitlab.ListIssuesOptions
			if state != "" {
				opts = &gitlab.ListIssuesOptions{State: &state}
			}

			issues, err := client.Issues().List(cmd.Context(), gitlab.EncodeID(args[0]), opts)
			if err != nil {
				return fmt.Errorf("listing issues: %w", err)
			}

			return renderOutput(issues, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("IID", "Title", "State", "Labels")

				for _, issue := range issues {
					_ = table.Append(
						strconv.Itoa(issue.IID),
						truncate(issue.Title),
						issue.State,
						strings.Join(issue.Labels, ","),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (opened, closed)")

	return cmd
}

func newIssuesCreateCommand() *cobra.Command {
	var (
		title       string
		description string
		labels      string
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT",
		Short: "Create an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			opts := &gitlab.CreateIssueOptions{Title: title}
			if description != "" {
				opts.Description = &description
			}

			if labels != "" {
				opts.Labels = &labels
			}

			issue, err := client.Issues().Create(cmd.Context(), gitlab.EncodeID(args[0]), opts)
			if err != nil {
				return fmt.Errorf("creating issue: %w", err)
			}

			fmt.Printf("Created issue #%d: %s\n", issue.IID, issue.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "issue title")
	cmd.Flags().StringVar(&description, "description", "", "issue description")
	cmd.Flags().StringVar(&labels, "labels", "", "comma-separated labels")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssuesCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close PROJECT IID",
		Short: "Close an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueIID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid issue IID %q: %w", args[1], err)
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			issue, err := client.Issues().Close(cmd.Context(), gitlab.EncodeID(args[0]), issueIID)
			if err != nil {
				return fmt.Errorf("closing issue: %w", err)
			}

			fmt.Printf("Closed issue #%d: %s\n", issue.IID, issue.Title)

			return nil
		},
	}
}
