package cli

import (
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Work with users",
}

var userName string

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		query := map[string]any{}
		if userName != "" {
			query["name"] = userName
		}
		coll, err := c.Users().Filter(query)
		if err != nil {
			return formatAPIError(err)
		}
		return printCollection(coll, []string{"id", "login", "firstname", "lastname"})
	},
}

var usersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		user, err := c.Users().Get(args[0], map[string]any{"include": "memberships,groups"})
		if err != nil {
			return formatAPIError(err)
		}
		return printResource(user)
	},
}

func init() {
	usersListCmd.Flags().StringVar(&userName, "name", "", "Filter by login, name or email")
	usersCmd.AddCommand(usersListCmd, usersShowCmd)
	rootCmd.AddCommand(usersCmd)
}
