package tracker

import "github.com/issuekit/issuekit/pkg/resource"

// IssueType is the configuration of the issue resource.
var IssueType = &resource.Type{
	Name:             "Issue",
	MinServerVersion: "1.0",
	ContainerMany:    "issues",
	ContainerOne:     "issue",
	QueryAll:         "/issues.json",
	QueryOne:         "/issues/{0}.json",
	QueryFilter:      "/issues.json",
	QueryCreate:      "/projects/{project_id}/issues.json",
	QueryUpdate:      "/issues/{0}.json",
	QueryDelete:      "/issues/{0}.json",
	Repr:             [][]string{{"id", "subject"}, {"id"}},
	Includes:         []string{"children", "attachments", "relations", "changesets", "journals", "watchers"},
	Relations:        []string{"relations", "time_entries"},
	Unconvertible:    append(resource.BaseUnconvertible(), "subject", "notes"),
	CreateReadonly:   append(resource.BaseCreateReadonly(), "spent_hours"),
	Behavior:         issueBehavior{},
}

func init() { resource.Register(IssueType) }

type issueBehavior struct {
	resource.BaseBehavior
}

// GetAttr serves the version alias: issues call their milestone "version"
// while the wire calls it "fixed_version".
func (issueBehavior) GetAttr(r *resource.Resource, attr string) (any, bool, error) {
	if attr == "version" {
		v, err := r.Get("fixed_version")
		return v, true, err
	}
	return nil, false, nil
}

// RenameSet mirrors the alias on writes.
func (issueBehavior) RenameSet(attr string) (string, bool) {
	if attr == "version_id" {
		return "fixed_version_id", true
	}
	return attr, false
}

func (issueBehavior) DecodeAttr(attr string, value any, m resource.Manager) (string, any, bool) {
	if attr == "version_id" {
		return "fixed_version_id", value, false
	}
	return attr, value, false
}
