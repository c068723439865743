package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// NewMergeRequestsCommand creates the merge requests command group
func NewMergeRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge-requests",
		Aliases: []string{"mr"},
		Short:   "Manage merge requests",
		Long:    "List, create, and accept project merge requests",
	}

	cmd.AddCommand(newMergeRequestsListCommand())
	cmd.AddCommand(newMergeRequestsCreateCommand())
	cmd.AddCommand(newMergeRequestsAcceptCommand())

	return cmd
}

func newMergeRequestsListCommand() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List merge requests of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var opts *gitlab.ListMergeRequestsOptions
			if state != "" {
				opts = &gitlab.ListMergeRequestsOptions{State: &state}
			}

			mergeRequests, err := client.MergeRequests().List(cmd.Context(), gitlab.EncodeID(args[0]), opts)
			if err != nil {
				return fmt.Errorf("listing merge requests: %w", err)
			}

			return renderOutput(mergeRequests, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("IID", "Title", "Source", "Target", "State")

				for _, mergeRequest := range mergeRequests {
					_ = table.Append(
						strconv.Itoa(mergeRequest.IID),
						truncate(mergeRequest.Title),
						mergeRequest.SourceBranch,
						mergeRequest.TargetBranch,
						mergeRequest.State,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (opened, closed, merged, all)")

	return cmd
}

func newMergeRequestsCreateCommand() *cobra.Command {
	var (
		sourceBranch string
		targetBranch string
		title        string
		description  string
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT",
		Short: "Create a merge request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			opts := &gitlab.CreateMergeRequestOptions{
				SourceBranch: sourceBranch,
				TargetBranch: targetBranch,
				Title:        title,
			}
			if description != "" {
				opts.Description = &description
			}

			mergeRequest, err := client.MergeRequests().Create(cmd.Context(), gitlab.EncodeID(args[0]), opts)
			if err != nil {
				return fmt.Errorf("creating merge request: %w", err)
			}

			fmt.Printf("Created merge request !%d: %s\n", mergeRequest.IID, mergeRequest.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&sourceBranch, "source", "", "source branch")
	cmd.Flags().StringVar(&targetBranch, "target", "", "target branch")
	cmd.Flags().StringVar(&title, "title", "", "merge request title")
	cmd.Flags().StringVar(&description, "description", "", "merge request description")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newMergeRequestsAcceptCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "accept PROJECT IID",
		Short: "Accept and merge a merge request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mergeRequestIID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid merge request IID %q: %w", args[1], err)
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var opts *gitlab.AcceptMergeRequestOptions
			if message != "" {
				opts = &gitlab.AcceptMergeRequestOptions{MergeCommitMessage: &message}
			}

			mergeRequest, err := client.MergeRequests().Accept(cmd.Context(), gitlab.EncodeID(args[0]), mergeRequestIID, opts)
			if err != nil {
				return fmt.Errorf("accepting merge request: %w", err)
			}

			fmt.Printf("Merged !%d (%s)\n", mergeRequest.IID, mergeRequest.State)

			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "merge commit message")

	return cmd
}
