package resource

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Collection is a lazy set of resources of one type. The fetch function is
// supplied by the manager and runs at most once, on first access; two
// consecutive reads of a relation therefore trigger exactly one request.
type Collection struct {
	typ    *Type
	mgr    Manager
	fetch  func() ([]*Resource, error)
	items  []*Resource
	loaded bool
}

// NewCollection builds a lazy collection backed by a fetch function.
func NewCollection(t *Type, m Manager, fetch func() ([]*Resource, error)) *Collection {
	return &Collection{typ: t, mgr: m, fetch: fetch}
}

// EagerCollection builds an already-materialized collection, used for
// embedded fragment arrays that need no network traffic.
func EagerCollection(t *Type, m Manager, items []*Resource) *Collection {
	return &Collection{typ: t, mgr: m, items: items, loaded: true}
}

// Type returns the element type of the collection.
func (c *Collection) Type() *Type { return c.typ }

func (c *Collection) load() error {
	if c.loaded {
		return nil
	}
	items, err := c.fetch()
	if err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// All materializes the collection and returns every resource in it.
func (c *Collection) All() ([]*Resource, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.items, nil
}

// First returns the first resource of the collection, or nil when it is
// empty.
func (c *Collection) First() (*Resource, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	if len(c.items) == 0 {
		return nil, nil
	}
	return c.items[0], nil
}

// Len materializes the collection and returns its size.
func (c *Collection) Len() (int, error) {
	if err := c.load(); err != nil {
		return 0, err
	}
	return len(c.items), nil
}

// Each materializes the collection and calls fn for every resource, stopping
// at the first error.
func (c *Collection) Each(fn func(*Resource) error) error {
	if err := c.load(); err != nil {
		return err
	}
	for _, r := range c.items {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// Where filters the collection client-side with a boolean expression
// evaluated against each resource's decoded payload, e.g.
// "done_ratio > 50" or `status.name == "Closed"`. The result is an
// independent eager collection.
func (c *Collection) Where(expression string) (*Collection, error) {
	prog, err := compileFilter(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	if err := c.load(); err != nil {
		return nil, err
	}

	var kept []*Resource
	for _, r := range c.items {
		out, err := expr.Run(prog, map[string]any(r.Raw()))
		if err != nil {
			return nil, fmt.Errorf("filter expression failed: %w", err)
		}
		if keep, ok := out.(bool); ok && keep {
			kept = append(kept, r)
		}
	}
	return EagerCollection(c.typ, c.mgr, kept), nil
}

// Compiled filter programs are cached per expression string; collections of
// the same resource type tend to reuse identical filters.
var (
	filterMu    sync.RWMutex
	filterCache = map[string]*vm.Program{}
)

func compileFilter(expression string) (*vm.Program, error) {
	filterMu.RLock()
	prog, ok := filterCache[expression]
	filterMu.RUnlock()
	if ok {
		return prog, nil
	}

	prog, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	filterMu.Lock()
	filterCache[expression] = prog
	filterMu.Unlock()
	return prog, nil
}
