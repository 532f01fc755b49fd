package resource

import (
	"fmt"
	"sort"
)

// Resource is a single typed instance of a tracker resource. It owns its
// three attribute maps exclusively; the manager reference is shared.
type Resource struct {
	typ     *Type
	mgr     Manager
	decoded map[string]any
	encoded map[string]any
	changes map[string]any
}

// New wraps a wire payload into a resource instance. Pass nil or an empty
// payload for a to-be-created resource.
func New(t *Type, m Manager, attrs map[string]any) *Resource {
	t.finalize()

	// Relation and include attributes are pre-seeded as absent so that a
	// read falls through to the resolver instead of failing.
	decoded := make(map[string]any, len(attrs)+len(t.Relations)+len(t.Includes))
	for _, attr := range t.Relations {
		decoded[attr] = nil
	}
	for _, attr := range t.Includes {
		decoded[attr] = nil
	}
	for attr, value := range attrs {
		decoded[attr] = value
	}

	return &Resource{
		typ:     t,
		mgr:     m,
		decoded: decoded,
		encoded: map[string]any{},
		changes: map[string]any{},
	}
}

// Type returns the static configuration of this resource's type.
func (r *Resource) Type() *Type { return r.typ }

// Manager returns the manager collaborator this resource was created with.
func (r *Resource) Manager() Manager { return r.mgr }

// Raw returns the live decoded payload, exactly as known from the server
// plus any local writes. Mutating it bypasses change tracking.
func (r *Resource) Raw() map[string]any { return r.decoded }

// Changes returns the pending attribute writes accumulated since the last
// successful save.
func (r *Resource) Changes() map[string]any { return r.changes }

// Names returns the known attribute names in sorted order.
func (r *Resource) Names() []string {
	names := make([]string, 0, len(r.decoded))
	for name := range r.decoded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsNew reports whether the resource has not been persisted yet: neither an
// identity nor a creation timestamp is present in the decoded payload.
func (r *Resource) IsNew() bool {
	if _, ok := r.decoded["id"]; ok {
		return false
	}
	if _, ok := r.decoded["created_on"]; ok {
		return false
	}
	return true
}

// InternalID returns the identity used in endpoint paths. The default is the
// id attribute; type behaviors may key identity differently.
func (r *Resource) InternalID() any {
	if r.typ.Behavior != nil {
		if id, ok := r.typ.Behavior.InternalID(r); ok {
			return id
		}
	}
	id, _ := r.Get("id")
	return id
}

// Get resolves an attribute. Resolution order: encoded cache, decoded value
// through the codec, filtered relation fetch, include refresh, new-instance
// default, and finally the attribute-error policy.
func (r *Resource) Get(attr string) (any, error) {
	if r.typ.Behavior != nil {
		if v, ok, err := r.typ.Behavior.GetAttr(r, attr); ok || err != nil {
			return v, err
		}
	}
	return r.resolve(attr)
}

func (r *Resource) resolve(attr string) (any, error) {
	if v, ok := r.encoded[attr]; ok && v != nil {
		return v, nil
	}

	if d, ok := r.decoded[attr]; ok && d != nil {
		_, v := r.typ.Encode(attr, d, r.mgr)
		if v != nil {
			r.encoded[attr] = v
			return v, nil
		}
	} else if r.typ.IsRelation(attr) {
		return r.FetchRelation(attr, r.typ.RelationKey)
	} else if r.typ.IsInclude(attr) {
		fresh, err := r.Refresh(false, map[string]any{"include": attr})
		if err != nil {
			return nil, err
		}
		v, err := fresh.Get(attr)
		if err != nil {
			return nil, err
		}
		if v != nil {
			r.encoded[attr] = v
			return v, nil
		}
	}

	if r.IsNew() {
		// Zero-value defaults keep unsaved resources usable without a
		// round trip.
		if attr == "id" || attr == "version" {
			return 0, nil
		}
		return "", nil
	}

	if settingsOf(r.mgr).attrErrors().Raises(r.typ.Name) {
		return nil, &MissingAttributeError{Type: r.typ.Name, Attr: attr}
	}
	return nil, nil
}

// FetchRelation resolves a relation attribute with an explicit foreign-key
// name, caching the resulting collection. Type behaviors use it when the
// relation key differs per attribute.
func (r *Resource) FetchRelation(attr, relationKey string) (any, error) {
	if v, ok := r.encoded[attr]; ok && v != nil {
		return v, nil
	}

	typeName, ok := relationFetchTypes[attr]
	if !ok {
		return nil, &MissingAttributeError{Type: r.typ.Name, Attr: attr}
	}
	sub, err := r.mgr.SubManager(typeName, nil)
	if err != nil {
		return nil, err
	}
	col, err := sub.Filter(map[string]any{relationKey + "_id": r.InternalID()})
	if err != nil {
		return nil, err
	}
	r.encoded[attr] = col
	return col, nil
}

// Set writes an attribute: the readonly guard validates it, the codec
// decodes it, and the result is recorded in both the decoded payload and the
// change set. The cache entry for the attribute is always invalidated.
func (r *Resource) Set(attr string, value any) error {
	if r.typ.Behavior != nil {
		if name, ok := r.typ.Behavior.RenameSet(attr); ok {
			attr = name
		}
	}

	if r.typ.readonly(attr, r.IsNew()) {
		return &ReadonlyAttributeError{Type: r.typ.Name, Attr: attr}
	}

	if attr == "custom_fields" {
		if err := r.mergeCustomFields(value); err != nil {
			return err
		}
	} else {
		name, decoded := r.typ.Decode(attr, value, r.mgr)
		r.changes[name] = decoded
		r.decoded[attr] = decoded

		if composite, ok := singleIDMirrors[attr]; ok {
			r.decoded[composite] = map[string]any{"id": decoded}
		} else if composite, ok := multiIDMirrors[attr]; ok {
			if ids, ok := idSlice(decoded); ok {
				stubs := make([]any, len(ids))
				for i, id := range ids {
					stubs[i] = map[string]any{"id": id}
				}
				r.decoded[composite] = stubs
			}
		}
	}

	delete(r.encoded, attr)
	return nil
}

// Invalidate drops the cached resolved value for an attribute, forcing the
// next read to resolve it again.
func (r *Resource) Invalidate(attr string) {
	delete(r.encoded, attr)
}

// mergeCustomFields implements the custom-field merge: incoming fields whose
// id matches a stored field replace it in place, the rest are appended in
// incoming order.
func (r *Resource) mergeCustomFields(value any) error {
	fields, ok := asSlice(value)
	if !ok {
		return &CustomFieldValueError{Detail: fmt.Sprintf("got %T", value)}
	}

	// Field values are decoded individually; the wrapper objects are not.
	incoming := make([]map[string]any, 0, len(fields))
	byID := make(map[string]int, len(fields))
	for _, f := range fields {
		fm, ok := f.(map[string]any)
		if !ok {
			return &CustomFieldValueError{Detail: fmt.Sprintf("field is %T", f)}
		}
		id, ok := fm["id"]
		if !ok {
			return &CustomFieldValueError{Detail: "field has no id"}
		}
		byID[idKey(id)] = len(incoming)
		incoming = append(incoming, r.typ.BulkDecode(fm, r.mgr))
	}

	existing, _ := asSlice(r.decoded["custom_fields"])
	consumed := make(map[int]bool, len(incoming))
	for i, f := range existing {
		fm, ok := f.(map[string]any)
		if !ok {
			continue
		}
		key := idKey(fm["id"])
		if idx, ok := byID[key]; ok {
			existing[i] = incoming[idx]
			consumed[idx] = true
			// An incoming value lands on the first stored field with that
			// id; later duplicates keep their stored value.
			delete(byID, key)
		}
	}
	for i, f := range incoming {
		if !consumed[i] {
			existing = append(existing, f)
		}
	}

	r.decoded["custom_fields"] = existing
	r.changes["custom_fields"] = existing
	return nil
}

// idKey normalizes custom-field ids for matching: the wire may carry them as
// any numeric type.
func idKey(id any) string {
	return fmt.Sprintf("%v", id)
}

// idSlice normalizes the shapes an id-list write may arrive in.
func idSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []int:
		ids := make([]any, len(v))
		for i, id := range v {
			ids[i] = id
		}
		return ids, true
	case []int64:
		ids := make([]any, len(v))
		for i, id := range v {
			ids[i] = id
		}
		return ids, true
	}
	return nil, false
}

func (s *Settings) attrErrors() AttrErrorPolicy {
	if s == nil {
		return AttrErrorPolicy{Mode: AttrErrorsOn}
	}
	return s.AttrErrors
}
