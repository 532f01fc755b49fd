package tracker

import (
	"strings"

	"github.com/issuekit/issuekit/pkg/resource"
)

// WikiPageType is the configuration of the wiki page resource. Wiki pages
// are project-scoped and keyed by title instead of a numeric id.
var WikiPageType = &resource.Type{
	Name:             "WikiPage",
	MinServerVersion: "2.2",
	ContainerMany:    "wiki_pages",
	ContainerOne:     "wiki_page",
	QueryFilter:      "/projects/{project_id}/wiki/index.json",
	QueryOne:         "/projects/{project_id}/wiki/{0}.json",
	QueryCreate:      "/projects/{project_id}/wiki/{title}.json",
	QueryUpdate:      "/projects/{project_id}/wiki/{0}.json",
	QueryDelete:      "/projects/{project_id}/wiki/{0}.json",
	Repr:             [][]string{{"title"}},
	Includes:         []string{"attachments"},
	Unconvertible:    append(resource.BaseUnconvertible(), "title", "text"),
	CreateReadonly:   append(resource.BaseCreateReadonly(), "version"),
	Behavior:         wikiPageBehavior{},
}

func init() { resource.Register(WikiPageType) }

type wikiPageBehavior struct {
	resource.BaseBehavior
}

func (wikiPageBehavior) InternalID(r *resource.Resource) (any, bool) {
	title, _ := r.Get("title")
	return title, true
}

// GetAttr refreshes the page transparently when the text attribute is
// missing: index fetches return pages without their body.
func (wikiPageBehavior) GetAttr(r *resource.Resource, attr string) (any, bool, error) {
	if attr == "text" {
		if _, ok := r.Raw()["text"]; !ok {
			fresh, err := r.Refresh(false, nil)
			if err != nil {
				return nil, true, err
			}
			r.Raw()["text"] = fresh.Raw()["text"]
		}
	}
	return nil, false, nil
}

// EncodeAttr wraps a parent page with a manager carrying the same project
// scope, so the parent resolves against the right wiki.
func (wikiPageBehavior) EncodeAttr(attr string, value any, m resource.Manager) (any, bool) {
	if attr == "parent" {
		if fragment, ok := value.(map[string]any); ok {
			sub, err := m.SubManager("WikiPage", map[string]any{"project_id": scopeProjectID(m)})
			if err == nil {
				return sub.ToResource(fragment), true
			}
		}
	}
	return value, false
}

func (wikiPageBehavior) RefreshParams(r *resource.Resource) map[string]any {
	return map[string]any{"project_id": scopeProjectID(r.Manager())}
}

func (wikiPageBehavior) DeleteParams(r *resource.Resource) map[string]any {
	return map[string]any{"project_id": scopeProjectID(r.Manager())}
}

// PostUpdate bumps the page version client-side: wiki updates return an
// empty acknowledgment but always advance the version by one.
func (wikiPageBehavior) PostUpdate(r *resource.Resource) {
	version := intFrom(r.Raw()["version"])
	r.Raw()["version"] = version + 1
	r.Invalidate("version")
}

func (wikiPageBehavior) URL(r *resource.Resource) (string, bool) {
	path := resource.FormatPath(WikiPageType.QueryOne, r.InternalID(), map[string]any{
		"project_id": scopeProjectID(r.Manager()),
	})
	return r.Manager().Settings().BaseURL + strings.ReplaceAll(path, ".json", ""), true
}

// scopeProjectID reads the project id out of a manager's scope, defaulting
// to 0 when the manager was created unscoped.
func scopeProjectID(m resource.Manager) any {
	if id, ok := m.Scope()["project_id"]; ok {
		return id
	}
	return 0
}
