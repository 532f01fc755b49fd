package resource

import (
	"strings"
	"time"
)

// Save creates the resource if it is new, otherwise submits the pending
// change set as an update. On success the change set is cleared; on failure
// it is left intact so the caller can retry.
func (r *Resource) Save() error {
	b := r.typ.Behavior

	if !r.IsNew() {
		if b != nil {
			b.PreUpdate(r)
		}
		if err := r.mgr.Update(r.InternalID(), r.changes); err != nil {
			return err
		}
		// Update acknowledgments carry no body; stamp the timestamp
		// client-side instead of re-fetching.
		r.decoded["updated_on"] = time.Now().UTC().Format(settingsOf(r.mgr).dateTimeFormat())
		if b != nil {
			b.PostUpdate(r)
		}
	} else {
		if b != nil {
			b.PreCreate(r)
		}
		created, err := r.mgr.Create(r.changes)
		if err != nil {
			return err
		}
		// A create returns the full canonical object, including
		// server-computed fields.
		r.decoded = created.Raw()
		if b != nil {
			b.PostCreate(r)
		}
	}

	r.changes = map[string]any{}
	return nil
}

// Delete removes the resource server-side. The in-memory instance is not
// invalidated; reusing it afterwards is the caller's mistake.
func (r *Resource) Delete(params map[string]any) error {
	b := r.typ.Behavior
	if b != nil {
		b.PreDelete(r)
		params = mergeParams(params, b.DeleteParams(r))
	}
	if err := r.mgr.Delete(r.InternalID(), params); err != nil {
		return err
	}
	if b != nil {
		b.PostDelete(r)
	}
	return nil
}

// Refresh re-fetches the resource by identity. With itself true the receiver
// is updated in place (cache dropped, decoded payload replaced) and returned;
// otherwise a new independent instance is returned and the receiver is left
// untouched.
func (r *Resource) Refresh(itself bool, params map[string]any) (*Resource, error) {
	if r.typ.Behavior != nil {
		params = mergeParams(params, r.typ.Behavior.RefreshParams(r))
	}

	fresh, err := r.mgr.Get(r.InternalID(), params)
	if err != nil {
		return nil, err
	}
	if itself {
		r.encoded = map[string]any{}
		r.decoded = fresh.Raw()
		return r, nil
	}
	return fresh, nil
}

// URL returns the human-facing URL of the resource, or "" when the type has
// no single-resource endpoint.
func (r *Resource) URL() string {
	if r.typ.Behavior != nil {
		if u, ok := r.typ.Behavior.URL(r); ok {
			return u
		}
	}
	if r.typ.QueryOne == "" {
		return ""
	}
	path := FormatPath(r.typ.QueryOne, r.InternalID(), r.mgr.Scope())
	return settingsOf(r.mgr).BaseURL + strings.ReplaceAll(path, ".json", "")
}

// mergeParams overlays extra on top of base without mutating either.
func mergeParams(base, extra map[string]any) map[string]any {
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
