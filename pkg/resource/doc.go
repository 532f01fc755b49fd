// Package resource implements the generic resource-mapping engine shared by
// every tracker resource type.
//
// A Resource wraps a wire-format JSON payload (a map of attribute names to
// values) and exposes typed, lazily resolved attribute access on top of it.
// Three maps back every instance:
//
//   - decoded: the wire-format payload, the authoritative snapshot of
//     server-known state
//   - encoded: resolved domain values, a per-instance cache that can be
//     dropped at any time without semantic loss
//   - changes: wire-format values accumulated since the last save, sent as
//     the body of create and update requests
//
// Attribute reads resolve in a fixed order: cache, local decode, filtered
// relation fetch, full-refresh include, new-instance default, and finally a
// missing-attribute error subject to the connection's error policy.
// Attribute writes are validated against per-type readonly sets keyed by
// lifecycle state (new vs. persisted), converted by the codec, and recorded
// in the change set.
//
// Concrete types customise the engine through a Behavior object: codec
// specialisations, identity, human URL, lifecycle hooks, and attribute
// aliases. Network operations go through the Manager collaborator; the
// engine itself never touches the transport.
//
// The engine is synchronous and not goroutine-safe: at most one goroutine
// may mutate a given Resource at a time.
package resource
