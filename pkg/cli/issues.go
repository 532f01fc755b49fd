package cli

import (
	"fmt"
	"strconv"

	"github.com/issuekit/issuekit/pkg/resource"
	"github.com/spf13/cobra"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Work with issues",
}

var (
	issueProject  string
	issueStatus   string
	issueAssignee string
	issueLimit    int
	issueWhere    string
)

var issuesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		query := map[string]any{}
		if issueProject != "" {
			query["project_id"] = issueProject
		}
		if issueStatus != "" {
			query["status_id"] = issueStatus
		}
		if issueAssignee != "" {
			query["assigned_to_id"] = issueAssignee
		}
		if issueLimit > 0 {
			query["limit"] = issueLimit
		}

		coll, err := c.Issues().Filter(query)
		if err != nil {
			return formatAPIError(err)
		}
		if issueWhere != "" {
			if coll, err = coll.Where(issueWhere); err != nil {
				return err
			}
		}
		return printCollection(coll, []string{"id", "status", "subject"})
	},
}

var issuesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		issue, err := c.Issues().Get(args[0], map[string]any{"include": "journals,attachments"})
		if err != nil {
			return formatAPIError(err)
		}
		return printResource(issue)
	},
}

var (
	issueSubject     string
	issueDescription string
	issueTracker     string
	issuePriority    string
)

var issuesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an issue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if issueProject == "" || issueSubject == "" {
			return fmt.Errorf("both --project and --subject are required")
		}
		c := newClient()

		attrs := map[string]any{
			"project_id": issueProject,
			"subject":    issueSubject,
		}
		if issueDescription != "" {
			attrs["description"] = issueDescription
		}
		if issueTracker != "" {
			attrs["tracker_id"] = issueTracker
		}
		if issuePriority != "" {
			attrs["priority_id"] = issuePriority
		}
		if issueAssignee != "" {
			attrs["assigned_to_id"] = issueAssignee
		}

		issue, err := c.Issues().Create(attrs)
		if err != nil {
			return formatAPIError(err)
		}
		if jsonOutput {
			return printJSON(issue.Raw())
		}
		fmt.Printf("Created issue #%v: %s\n", issue.InternalID(), safeString(issue, "subject"))
		return nil
	},
}

var issueUpdates map[string]string

var issuesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update issue attributes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(issueUpdates) == 0 {
			return fmt.Errorf("nothing to update: pass --set attr=value")
		}
		c := newClient()
		issue, err := c.Issues().Get(args[0], nil)
		if err != nil {
			return formatAPIError(err)
		}
		for attr, value := range issueUpdates {
			if err := issue.Set(attr, coerce(value)); err != nil {
				return err
			}
		}
		if err := issue.Save(); err != nil {
			return formatAPIError(err)
		}
		fmt.Printf("Updated issue #%v\n", issue.InternalID())
		return nil
	},
}

var issuesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if err := c.Issues().Delete(args[0], nil); err != nil {
			return formatAPIError(err)
		}
		fmt.Printf("Deleted issue #%s\n", args[0])
		return nil
	},
}

// coerce turns numeric-looking flag values into ints so that id attributes
// encode the way the server expects.
func coerce(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

func safeString(r *resource.Resource, attr string) string {
	v, err := r.Get(attr)
	if err != nil || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	issuesListCmd.Flags().StringVar(&issueProject, "project", "", "Filter by project id or identifier")
	issuesListCmd.Flags().StringVar(&issueStatus, "status", "", "Filter by status id (or open/closed/*)")
	issuesListCmd.Flags().StringVar(&issueAssignee, "assignee", "", "Filter by assignee id (or me)")
	issuesListCmd.Flags().IntVar(&issueLimit, "limit", 0, "Maximum number of issues to fetch")
	issuesListCmd.Flags().StringVar(&issueWhere, "where", "", "Client-side filter expression, e.g. 'done_ratio > 50'")

	issuesCreateCmd.Flags().StringVar(&issueProject, "project", "", "Project id or identifier (required)")
	issuesCreateCmd.Flags().StringVar(&issueSubject, "subject", "", "Issue subject (required)")
	issuesCreateCmd.Flags().StringVar(&issueDescription, "description", "", "Issue description")
	issuesCreateCmd.Flags().StringVar(&issueTracker, "tracker", "", "Tracker id")
	issuesCreateCmd.Flags().StringVar(&issuePriority, "priority", "", "Priority id")
	issuesCreateCmd.Flags().StringVar(&issueAssignee, "assignee", "", "Assignee id")

	issuesUpdateCmd.Flags().StringToStringVar(&issueUpdates, "set", nil, "Attribute to set, e.g. --set status_id=3")

	issuesCmd.AddCommand(issuesListCmd, issuesShowCmd, issuesCreateCmd, issuesUpdateCmd, issuesDeleteCmd)
	rootCmd.AddCommand(issuesCmd)
}
