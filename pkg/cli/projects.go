package cli

import (
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Work with projects",
}

var projectWhere string

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		coll, err := c.Projects().Filter(nil)
		if err != nil {
			return formatAPIError(err)
		}
		if projectWhere != "" {
			if coll, err = coll.Where(projectWhere); err != nil {
				return err
			}
		}
		return printCollection(coll, []string{"id", "identifier", "name"})
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id-or-identifier>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		project, err := c.Projects().Get(args[0], map[string]any{"include": "trackers,issue_categories"})
		if err != nil {
			return formatAPIError(err)
		}
		return printResource(project)
	},
}

func init() {
	projectsListCmd.Flags().StringVar(&projectWhere, "where", "", "Client-side filter expression, e.g. 'status == 1'")
	projectsCmd.AddCommand(projectsListCmd, projectsShowCmd)
	rootCmd.AddCommand(projectsCmd)
}
