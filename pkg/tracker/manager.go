package tracker

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/issuekit/issuekit/pkg/resource"
)

// pageSize is the number of items requested per page when materializing a
// collection.
const pageSize = 100

// manager implements resource.Manager for one resource type on one
// connection.
type manager struct {
	c     *Client
	typ   *resource.Type
	scope map[string]any
}

func (m *manager) Settings() *resource.Settings { return &m.c.settings }

func (m *manager) Scope() map[string]any { return m.scope }

func (m *manager) SubManager(typeName string, scope map[string]any) (resource.Manager, error) {
	return m.c.Manager(typeName, scope)
}

func (m *manager) ToResource(raw map[string]any) *resource.Resource {
	return resource.New(m.typ, m, raw)
}

func (m *manager) ToCollection(raw []any) *resource.Collection {
	items := make([]*resource.Resource, 0, len(raw))
	for _, fragment := range raw {
		if obj, ok := fragment.(map[string]any); ok {
			items = append(items, resource.New(m.typ, m, obj))
		}
	}
	return resource.EagerCollection(m.typ, m, items)
}

func (m *manager) Get(id any, params map[string]any) (*resource.Resource, error) {
	if m.typ.QueryOne == "" {
		return nil, &resource.UnsupportedOperationError{Type: m.typ.Name, Op: "get"}
	}
	merged := mergeScope(m.scope, params)
	path := resource.FormatPath(m.typ.QueryOne, id, merged)

	resp, err := m.c.transport.Get(path, queryValues(merged))
	if err != nil {
		return nil, err
	}
	return m.ToResource(unwrapOne(resp, m.typ.ContainerOne)), nil
}

func (m *manager) Filter(query map[string]any) (*resource.Collection, error) {
	template := m.typ.QueryFilter
	if template == "" {
		template = m.typ.QueryAll
	}
	if template == "" {
		return nil, &resource.UnsupportedOperationError{Type: m.typ.Name, Op: "filter"}
	}

	merged := mergeScope(m.scope, query)
	path := resource.FormatPath(template, nil, merged)
	container := resource.FormatPath(m.typ.ContainerMany, nil, merged)

	fetch := func() ([]*resource.Resource, error) {
		return m.fetchAll(path, container, merged)
	}
	return resource.NewCollection(m.typ, m, fetch), nil
}

// fetchAll walks the paginated endpoint until the requested window (or the
// whole collection) has been read.
func (m *manager) fetchAll(path, container string, params map[string]any) ([]*resource.Resource, error) {
	offset := intFrom(params["offset"])
	limit := intFrom(params["limit"])

	var out []*resource.Resource
	for {
		size := pageSize
		if limit > 0 && limit-len(out) < size {
			size = limit - len(out)
		}

		q := queryValues(params)
		if q == nil {
			q = url.Values{}
		}
		q.Set("limit", strconv.Itoa(size))
		q.Set("offset", strconv.Itoa(offset))

		resp, err := m.c.transport.Get(path, q)
		if err != nil {
			return nil, err
		}

		items, _ := resp[container].([]any)
		for _, raw := range items {
			if obj, ok := raw.(map[string]any); ok {
				out = append(out, resource.New(m.typ, m, obj))
			}
		}
		offset += len(items)

		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
		total := intFrom(resp["total_count"])
		if len(items) == 0 || len(items) < size || (total > 0 && offset >= total) {
			return out, nil
		}
	}
}

func (m *manager) Create(attrs map[string]any) (*resource.Resource, error) {
	if m.typ.QueryCreate == "" {
		return nil, &resource.UnsupportedOperationError{Type: m.typ.Name, Op: "create"}
	}
	wire := m.typ.BulkDecode(attrs, m)
	// Placeholders like a parent project id are filled from the payload
	// itself when the manager scope does not carry them.
	path := resource.FormatPath(m.typ.QueryCreate, nil, mergeScope(wire, m.scope))

	body := map[string]any{m.typ.ContainerOne: wire}
	resp, err := m.c.transport.Post(path, body)
	if err != nil {
		return nil, err
	}
	return m.ToResource(unwrapOne(resp, m.typ.ContainerOne)), nil
}

func (m *manager) Update(id any, attrs map[string]any) error {
	if m.typ.QueryUpdate == "" {
		return &resource.UnsupportedOperationError{Type: m.typ.Name, Op: "update"}
	}
	wire := m.typ.BulkDecode(attrs, m)
	path := resource.FormatPath(m.typ.QueryUpdate, id, mergeScope(wire, m.scope))

	_, err := m.c.transport.Put(path, map[string]any{m.typ.ContainerOne: wire})
	return err
}

func (m *manager) Delete(id any, params map[string]any) error {
	if m.typ.QueryDelete == "" {
		return &resource.UnsupportedOperationError{Type: m.typ.Name, Op: "delete"}
	}
	merged := mergeScope(m.scope, params)
	path := resource.FormatPath(m.typ.QueryDelete, id, merged)

	_, err := m.c.transport.Delete(path, queryValues(merged))
	return err
}

func (m *manager) Request(method, path string, body map[string]any) (map[string]any, error) {
	switch method {
	case http.MethodGet:
		return m.c.transport.Get(path, nil)
	case http.MethodPost:
		return m.c.transport.Post(path, body)
	case http.MethodPut:
		return m.c.transport.Put(path, body)
	case http.MethodDelete:
		return m.c.transport.Delete(path, nil)
	}
	return nil, fmt.Errorf("unsupported method %q", method)
}

// unwrapOne extracts the payload from its container key, tolerating
// responses that arrive unwrapped.
func unwrapOne(resp map[string]any, container string) map[string]any {
	if container != "" {
		if obj, ok := resp[container].(map[string]any); ok {
			return obj
		}
	}
	return resp
}

// mergeScope overlays extra on top of base without mutating either.
func mergeScope(base, extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return base
	}
	if len(base) == 0 {
		return extra
	}
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// queryValues renders request parameters as URL query values. Slices join
// into comma-separated lists, the form the tracker expects for multi-value
// filters.
func queryValues(params map[string]any) url.Values {
	if len(params) == 0 {
		return nil
	}
	q := url.Values{}
	for name, value := range params {
		switch v := value.(type) {
		case []any:
			list := ""
			for i, item := range v {
				if i > 0 {
					list += ","
				}
				list += fmt.Sprintf("%v", item)
			}
			q.Set(name, list)
		default:
			q.Set(name, fmt.Sprintf("%v", v))
		}
	}
	return q
}

// intFrom normalizes the numeric types JSON values arrive as.
func intFrom(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return 0
}
