package tracker

import (
	"fmt"

	"github.com/issuekit/issuekit/pkg/resource"
)

// The remaining resource types carry no or little behavior of their own;
// they are grouped here.

// EnumerationType covers the enumeration collections (issue_priorities,
// time_entry_activities, document_categories). The collection name arrives
// through manager scope and fills both the endpoint and the container key.
var EnumerationType = &resource.Type{
	Name:             "Enumeration",
	MinServerVersion: "2.2",
	ContainerMany:    "{resource}",
	QueryFilter:      "/enumerations/{resource}.json",
	Behavior:         editURLBehavior{prefix: "/enumerations"},
}

// AttachmentType is read-only on the wire; content is fetched through
// Client.DownloadAttachment.
var AttachmentType = &resource.Type{
	Name:             "Attachment",
	MinServerVersion: "1.3",
	ContainerOne:     "attachment",
	QueryOne:         "/attachments/{0}.json",
	Repr:             [][]string{{"id", "filename"}, {"id"}},
}

// IssueJournalType only ever appears embedded in an issue payload.
var IssueJournalType = &resource.Type{
	Name:             "IssueJournal",
	MinServerVersion: "1.0",
	Repr:             [][]string{{"id"}},
	Unconvertible:    []string{"notes"},
}

// ProjectMembershipType is the configuration of project memberships.
var ProjectMembershipType = &resource.Type{
	Name:             "ProjectMembership",
	MinServerVersion: "1.4",
	ContainerMany:    "memberships",
	ContainerOne:     "membership",
	QueryFilter:      "/projects/{project_id}/memberships.json",
	QueryOne:         "/memberships/{0}.json",
	QueryCreate:      "/projects/{project_id}/memberships.json",
	QueryUpdate:      "/memberships/{0}.json",
	QueryDelete:      "/memberships/{0}.json",
	Repr:             [][]string{{"id"}},
	CreateReadonly:   append(resource.BaseCreateReadonly(), "user", "roles"),
}

// IssueCategoryType is the configuration of issue categories.
var IssueCategoryType = &resource.Type{
	Name:             "IssueCategory",
	MinServerVersion: "1.3",
	ContainerMany:    "issue_categories",
	ContainerOne:     "issue_category",
	QueryFilter:      "/projects/{project_id}/issue_categories.json",
	QueryOne:         "/issue_categories/{0}.json",
	QueryCreate:      "/projects/{project_id}/issue_categories.json",
	QueryUpdate:      "/issue_categories/{0}.json",
	QueryDelete:      "/issue_categories/{0}.json",
}

// IssueRelationType is the configuration of issue-to-issue relations.
// Relations are immutable: there is no update endpoint.
var IssueRelationType = &resource.Type{
	Name:             "IssueRelation",
	MinServerVersion: "1.3",
	ContainerMany:    "relations",
	ContainerOne:     "relation",
	QueryFilter:      "/issues/{issue_id}/relations.json",
	QueryOne:         "/relations/{0}.json",
	QueryCreate:      "/issues/{issue_id}/relations.json",
	QueryDelete:      "/relations/{0}.json",
	Repr:             [][]string{{"id"}},
}

// VersionType is the configuration of project versions (milestones).
var VersionType = &resource.Type{
	Name:             "Version",
	MinServerVersion: "1.3",
	ContainerMany:    "versions",
	ContainerOne:     "version",
	QueryFilter:      "/projects/{project_id}/versions.json",
	QueryOne:         "/versions/{0}.json",
	QueryCreate:      "/projects/{project_id}/versions.json",
	QueryUpdate:      "/versions/{0}.json",
	QueryDelete:      "/versions/{0}.json",
	Unconvertible:    []string{"status"},
}

// RoleType is the configuration of roles.
var RoleType = &resource.Type{
	Name:             "Role",
	MinServerVersion: "1.4",
	ContainerMany:    "roles",
	ContainerOne:     "role",
	QueryAll:         "/roles.json",
	QueryOne:         "/roles/{0}.json",
}

// NewsType is the configuration of news entries.
var NewsType = &resource.Type{
	Name:             "News",
	MinServerVersion: "1.1",
	ContainerMany:    "news",
	QueryAll:         "/news.json",
	QueryFilter:      "/news.json",
	Repr:             [][]string{{"id", "title"}},
	Behavior:         newsBehavior{},
}

// IssueStatusType is the configuration of issue statuses.
var IssueStatusType = &resource.Type{
	Name:             "IssueStatus",
	MinServerVersion: "1.3",
	ContainerMany:    "issue_statuses",
	QueryAll:         "/issue_statuses.json",
	Relations:        []string{"issues"},
	RelationKey:      "status",
	Behavior:         editURLBehavior{prefix: "/issue_statuses"},
}

// TrackerType is the configuration of issue trackers.
var TrackerType = &resource.Type{
	Name:             "Tracker",
	MinServerVersion: "1.3",
	ContainerMany:    "trackers",
	QueryAll:         "/trackers.json",
	Relations:        []string{"issues"},
	Behavior:         editURLBehavior{prefix: "/trackers"},
}

// QueryType is the configuration of saved queries.
var QueryType = &resource.Type{
	Name:             "Query",
	MinServerVersion: "1.3",
	ContainerMany:    "queries",
	QueryAll:         "/queries.json",
	Behavior:         queryBehavior{},
}

// CustomFieldType is the configuration of custom field definitions.
var CustomFieldType = &resource.Type{
	Name:             "CustomField",
	MinServerVersion: "2.4",
	ContainerMany:    "custom_fields",
	QueryAll:         "/custom_fields.json",
	Behavior:         customFieldBehavior{},
}

func init() {
	resource.Register(EnumerationType)
	resource.Register(AttachmentType)
	resource.Register(IssueJournalType)
	resource.Register(ProjectMembershipType)
	resource.Register(IssueCategoryType)
	resource.Register(IssueRelationType)
	resource.Register(VersionType)
	resource.Register(RoleType)
	resource.Register(NewsType)
	resource.Register(IssueStatusType)
	resource.Register(TrackerType)
	resource.Register(QueryType)
	resource.Register(CustomFieldType)
}

// editURLBehavior links to the admin edit page, the only human-facing view
// these types have.
type editURLBehavior struct {
	resource.BaseBehavior
	prefix string
}

func (b editURLBehavior) URL(r *resource.Resource) (string, bool) {
	base := r.Manager().Settings().BaseURL
	return fmt.Sprintf("%s%s/%v/edit", base, b.prefix, r.InternalID()), true
}

type newsBehavior struct {
	resource.BaseBehavior
}

func (newsBehavior) URL(r *resource.Resource) (string, bool) {
	return fmt.Sprintf("%s/news/%v", r.Manager().Settings().BaseURL, r.InternalID()), true
}

type queryBehavior struct {
	resource.BaseBehavior
}

// URL targets the issue list the query filters, scoped to the query's
// project when it has one.
func (queryBehavior) URL(r *resource.Resource) (string, bool) {
	projectID := r.Raw()["project_id"]
	if projectID == nil {
		projectID = 0
	}
	return fmt.Sprintf("%s/projects/%v/issues?query_id=%v",
		r.Manager().Settings().BaseURL, projectID, r.InternalID()), true
}

type customFieldBehavior struct {
	resource.BaseBehavior
}

// GetAttr defaults value to an empty string: fields created after a resource
// never appear in that resource's payload.
func (customFieldBehavior) GetAttr(r *resource.Resource, attr string) (any, bool, error) {
	if attr == "value" {
		if _, ok := r.Raw()["value"]; !ok {
			return "", true, nil
		}
	}
	return nil, false, nil
}

// EncodeAttr normalizes the legacy single-tracker shape older servers return
// to the list shape before the default wrap runs.
func (customFieldBehavior) EncodeAttr(attr string, value any, m resource.Manager) (any, bool) {
	if attr == "trackers" {
		if obj, ok := value.(map[string]any); ok {
			if tracker, ok := obj["tracker"]; ok {
				return []any{tracker}, false
			}
		}
	}
	return value, false
}

func (customFieldBehavior) URL(r *resource.Resource) (string, bool) {
	return fmt.Sprintf("%s/custom_fields/%v/edit", r.Manager().Settings().BaseURL, r.InternalID()), true
}
