package resource

// Behavior is the override contract a concrete type may implement to
// specialise the engine. All methods have working defaults in BaseBehavior;
// type definitions embed it and override only what they need.
type Behavior interface {
	// DecodeAttr may rename the attribute or transform the value before the
	// default decode conversion runs. Returning done=true skips the default
	// conversion and uses the returned pair as-is.
	DecodeAttr(attr string, value any, m Manager) (name string, converted any, done bool)

	// EncodeAttr may transform the wire value before the default encode
	// conversion runs. Returning done=true skips the default conversion.
	EncodeAttr(attr string, value any, m Manager) (converted any, done bool)

	// GetAttr intercepts attribute reads, serving aliases and convenience
	// attributes. Returning ok=false falls through to the engine.
	GetAttr(r *Resource, attr string) (value any, ok bool, err error)

	// RenameSet maps an incoming write name to the attribute actually
	// stored, before any readonly check runs.
	RenameSet(attr string) (string, bool)

	// InternalID overrides the identity accessor. Returning ok=false uses
	// the default id attribute.
	InternalID(r *Resource) (any, bool)

	// URL overrides the human-facing URL. Returning ok=false uses the
	// QueryOne-derived default.
	URL(r *Resource) (string, bool)

	// RefreshParams and DeleteParams supply extra request parameters for
	// the respective operations (project-scoped types need this).
	RefreshParams(r *Resource) map[string]any
	DeleteParams(r *Resource) map[string]any

	// Lifecycle hooks, run around save and delete.
	PreCreate(r *Resource)
	PostCreate(r *Resource)
	PreUpdate(r *Resource)
	PostUpdate(r *Resource)
	PreDelete(r *Resource)
	PostDelete(r *Resource)
}

// BaseBehavior is the no-op Behavior every concrete behavior embeds.
type BaseBehavior struct{}

func (BaseBehavior) DecodeAttr(attr string, value any, m Manager) (string, any, bool) {
	return attr, value, false
}

func (BaseBehavior) EncodeAttr(attr string, value any, m Manager) (any, bool) {
	return value, false
}

func (BaseBehavior) GetAttr(r *Resource, attr string) (any, bool, error) {
	return nil, false, nil
}

func (BaseBehavior) RenameSet(attr string) (string, bool) { return attr, false }

func (BaseBehavior) InternalID(r *Resource) (any, bool) { return nil, false }

func (BaseBehavior) URL(r *Resource) (string, bool) { return "", false }

func (BaseBehavior) RefreshParams(r *Resource) map[string]any { return nil }

func (BaseBehavior) DeleteParams(r *Resource) map[string]any { return nil }

func (BaseBehavior) PreCreate(r *Resource)  {}
func (BaseBehavior) PostCreate(r *Resource) {}
func (BaseBehavior) PreUpdate(r *Resource)  {}
func (BaseBehavior) PostUpdate(r *Resource) {}
func (BaseBehavior) PreDelete(r *Resource)  {}
func (BaseBehavior) PostDelete(r *Resource) {}
