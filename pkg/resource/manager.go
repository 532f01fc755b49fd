package resource

// Manager is the collaborator through which a Resource reaches the network.
// The concrete implementation lives outside this package; the engine only
// depends on this boundary.
//
// Operations are blocking and synchronous. Cancellation and timeouts belong
// to the transport behind the manager, not to this layer.
type Manager interface {
	// Get fetches a single resource by identity. params become query
	// parameters of the request (for example {"include": "watchers"}).
	Get(id any, params map[string]any) (*Resource, error)

	// Filter returns a lazy collection matching the query. No request is
	// issued until the collection is first accessed.
	Filter(query map[string]any) (*Collection, error)

	// Create submits attrs as a new resource and returns the canonical
	// server-side representation.
	Create(attrs map[string]any) (*Resource, error)

	// Update submits attrs against an existing resource identity.
	Update(id any, attrs map[string]any) error

	// Delete removes the resource identified by id. params become query
	// parameters of the request.
	Delete(id any, params map[string]any) error

	// SubManager returns a manager for another registered type, carrying
	// scope as its manager-level parameters (for example a project_id for
	// project-scoped endpoints).
	SubManager(typeName string, scope map[string]any) (Manager, error)

	// ToResource wraps an embedded wire fragment into a resource instance
	// without any network traffic.
	ToResource(raw map[string]any) *Resource

	// ToCollection wraps a slice of embedded wire fragments into an
	// already-materialized collection.
	ToCollection(raw []any) *Collection

	// Settings exposes connection-level configuration.
	Settings() *Settings

	// Scope returns the manager-level parameters this manager was created
	// with. The returned map must not be mutated.
	Scope() map[string]any

	// Request performs a raw call through the underlying transport. It is
	// the escape hatch used by bound helper objects whose side effects are
	// not attribute writes and must bypass the change set.
	Request(method, path string, body map[string]any) (map[string]any, error)
}

// AttrErrorMode selects how unresolvable attribute reads are reported.
type AttrErrorMode int

const (
	// AttrErrorsOn raises MissingAttributeError for every type. This is
	// the default.
	AttrErrorsOn AttrErrorMode = iota
	// AttrErrorsOff suppresses MissingAttributeError; reads of absent
	// attributes return nil.
	AttrErrorsOff
	// AttrErrorsTypes raises only for the type names listed in the policy.
	AttrErrorsTypes
)

// AttrErrorPolicy controls whether reads of unresolvable attributes fail or
// return a nil sentinel.
type AttrErrorPolicy struct {
	Mode  AttrErrorMode
	Types []string
}

// Raises reports whether the policy demands an error for the named type.
func (p AttrErrorPolicy) Raises(typeName string) bool {
	switch p.Mode {
	case AttrErrorsOff:
		return false
	case AttrErrorsTypes:
		for _, t := range p.Types {
			if t == typeName {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Default wire formats, as Go time layouts.
const (
	DefaultDateFormat     = "2006-01-02"
	DefaultDateTimeFormat = "2006-01-02T15:04:05Z"
)

// Settings carries connection-level configuration the engine consults:
// the base URL for human-facing links, the wire date formats, the server
// version for version-gated helpers, and the attribute-error policy.
type Settings struct {
	BaseURL        string
	DateFormat     string
	DateTimeFormat string
	ServerVersion  string
	AttrErrors     AttrErrorPolicy
}

// dateFormat returns the configured date layout or the default.
func (s *Settings) dateFormat() string {
	if s != nil && s.DateFormat != "" {
		return s.DateFormat
	}
	return DefaultDateFormat
}

// dateTimeFormat returns the configured date-time layout or the default.
func (s *Settings) dateTimeFormat() string {
	if s != nil && s.DateTimeFormat != "" {
		return s.DateTimeFormat
	}
	return DefaultDateTimeFormat
}
