package tracker

import (
	"strings"

	"github.com/issuekit/issuekit/pkg/resource"
)

// ProjectType is the configuration of the project resource.
var ProjectType = &resource.Type{
	Name:             "Project",
	MinServerVersion: "1.0",
	ContainerMany:    "projects",
	ContainerOne:     "project",
	QueryAll:         "/projects.json",
	QueryOne:         "/projects/{0}.json",
	QueryCreate:      "/projects.json",
	QueryUpdate:      "/projects/{0}.json",
	QueryDelete:      "/projects/{0}.json",
	Includes:         []string{"trackers", "issue_categories", "enabled_modules"},
	Relations: []string{
		"wiki_pages",
		"memberships",
		"issue_categories",
		"time_entries",
		"versions",
		"news",
		"issues",
	},
	Unconvertible:  append(resource.BaseUnconvertible(), "identifier", "status"),
	UpdateReadonly: append(resource.BaseCreateReadonly(), "identifier"),
	Behavior:       projectBehavior{},
}

func init() { resource.Register(ProjectType) }

type projectBehavior struct {
	resource.BaseBehavior
}

// EncodeAttr flattens enabled_modules from the wire's [{"name": x}] shape to
// a plain list of module names.
func (projectBehavior) EncodeAttr(attr string, value any, m resource.Manager) (any, bool) {
	if attr == "enabled_modules" {
		if modules, ok := value.([]any); ok {
			names := make([]any, 0, len(modules))
			for _, module := range modules {
				if obj, ok := module.(map[string]any); ok {
					names = append(names, obj["name"])
				}
			}
			return names, true
		}
	}
	return value, false
}

// URL keys the human-facing link by the project identifier rather than the
// numeric id.
func (projectBehavior) URL(r *resource.Resource) (string, bool) {
	identifier, err := r.Get("identifier")
	if err != nil || identifier == nil {
		return "", false
	}
	path := resource.FormatPath(ProjectType.QueryOne, identifier, nil)
	return r.Manager().Settings().BaseURL + strings.ReplaceAll(path, ".json", ""), true
}
