package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
		Long:  "List, search, and inspect GitLab users",
	}

	cmd.AddCommand(newUsersCurrentCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersListCommand())

	return cmd
}

func newUsersCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.Users().Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting current user: %w", err)
			}

			return renderUser(user)
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", args[0], err)
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.Users().Get(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			return renderUser(user)
		},
	}
}

func newUsersListCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var users []gitlab.User

			if search != "" {
				users, err = client.Users().Search(cmd.Context(), search)
			} else {
				users, err = client.Users().List(cmd.Context(), nil)
			}

			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			return renderOutput(users, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Username", "Name", "State")

				for _, user := range users {
					_ = table.Append(strconv.Itoa(user.ID), user.Username, truncate(user.Name), user.State)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search by email or username")

	return cmd
}

func renderUser(user *gitlab.User) error {
	return renderOutput(user, func() error {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.Itoa(user.ID))
		_ = table.Append("Username", user.Username)
		_ = table.Append("Name", user.Name)
		_ = table.Append("Email", user.Email)
		_ = table.Append("State", user.State)
		_ = table.Append("Created", formatTime(user.CreatedAt))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	})
}
