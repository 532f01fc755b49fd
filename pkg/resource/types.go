package resource

import (
	"fmt"
	"strings"
	"sync"
)

// BaseUnconvertible returns the attribute names no type ever converts.
// Type definitions append their own names to a fresh copy.
func BaseUnconvertible() []string {
	return []string{"name", "description"}
}

// BaseCreateReadonly returns the attribute names that are readonly on
// creation for every type unless a definition replaces the set outright.
func BaseCreateReadonly() []string {
	return []string{"id", "created_on", "updated_on", "author", "user", "project", "issue"}
}

// Type is the static configuration of a concrete resource type: endpoint
// templates, container keys, attribute classification sets and the optional
// per-type behavior object. A Type is immutable once it has been used.
type Type struct {
	// Name is the registry key, e.g. "Issue".
	Name string

	// MinServerVersion is the first server release carrying this type.
	MinServerVersion string

	// ContainerMany and ContainerOne are the JSON keys wrapping list and
	// single payloads. ContainerMany may carry placeholders filled from
	// manager scope (the enumerations endpoint does this).
	ContainerMany string
	ContainerOne  string

	// Endpoint path templates with {0} for the identity and {name} for
	// scope parameters. An empty template means the operation is not
	// supported by the server for this type.
	QueryAll    string
	QueryOne    string
	QueryFilter string
	QueryCreate string
	QueryUpdate string
	QueryDelete string

	// Repr is the ordered preference list of representation tuples.
	// Defaults to [["id","name"]].
	Repr [][]string

	// Includes are attributes obtainable only through a full refresh with
	// extra scope; Relations are attributes fetched with a filtered query
	// on a related collection.
	Includes  []string
	Relations []string

	// RelationKey is the foreign-key prefix used when fetching relations
	// ("{RelationKey}_id = identity"). Defaults to the lowercased name.
	RelationKey string

	// Unconvertible attributes bypass the codec entirely.
	Unconvertible []string

	// CreateReadonly and UpdateReadonly are the full readonly name sets for
	// the respective lifecycle states. A nil UpdateReadonly inherits the
	// resolved create set. Relations and includes are always added.
	CreateReadonly []string
	UpdateReadonly []string

	// Behavior holds the per-type overrides; nil means defaults everywhere.
	Behavior Behavior

	once           sync.Once
	unconvertible  map[string]bool
	createReadonly map[string]bool
	updateReadonly map[string]bool
	includeSet     map[string]bool
	relationSet    map[string]bool
}

// finalize computes the derived lookup sets. It runs once, on first use.
func (t *Type) finalize() {
	t.once.Do(func() {
		if t.RelationKey == "" {
			t.RelationKey = strings.ToLower(t.Name)
		}
		if t.Repr == nil {
			t.Repr = [][]string{{"id", "name"}}
		}

		unconv := t.Unconvertible
		if unconv == nil {
			unconv = BaseUnconvertible()
		}
		t.unconvertible = toSet(unconv)

		create := t.CreateReadonly
		if create == nil {
			create = BaseCreateReadonly()
		}
		update := t.UpdateReadonly
		if update == nil {
			update = create
		}

		// Relation and include attributes can never be part of a create or
		// update payload.
		t.createReadonly = toSet(create, t.Relations, t.Includes)
		t.updateReadonly = toSet(update, t.Relations, t.Includes)
		t.includeSet = toSet(t.Includes)
		t.relationSet = toSet(t.Relations)
	})
}

func toSet(names []string, more ...[]string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, extra := range more {
		for _, n := range extra {
			set[n] = true
		}
	}
	return set
}

// IsRelation reports whether attr resolves through a filtered fetch.
func (t *Type) IsRelation(attr string) bool {
	t.finalize()
	return t.relationSet[attr]
}

// IsInclude reports whether attr resolves through a full refresh.
func (t *Type) IsInclude(attr string) bool {
	t.finalize()
	return t.includeSet[attr]
}

// readonly reports whether attr may not be written in the given state.
func (t *Type) readonly(attr string, isNew bool) bool {
	t.finalize()
	if isNew {
		return t.createReadonly[attr]
	}
	return t.updateReadonly[attr]
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Type{}
)

// Register adds a type to the process-wide registry. Type definitions call
// it from init; registering the same name twice is a programming error.
func Register(t *Type) *Type {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[t.Name]; dup {
		panic(fmt.Sprintf("resource: type %q registered twice", t.Name))
	}
	t.finalize()
	registry[t.Name] = t
	return t
}

// Lookup resolves a registered type by name.
func Lookup(name string) (*Type, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return t, nil
}

// TypeNames returns the names of all registered types.
func TypeNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
