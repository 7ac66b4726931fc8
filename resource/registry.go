package resource

import (
	"sync"

	"github.com/meridianbio/labdoc/errors"
)

// Registry holds the parent -> children edges of the resource type forest.
//
// Child ordering is registration order. Built-in types register from init
// functions, and Go initializes a package's files in lexical filename order,
// so the order is fixed for a given build and generation output is
// reproducible. Manifest types append after all built-ins.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
	children    map[string][]string // parent name -> child names, registration order
}

// NewRegistry returns a registry pre-seeded with the two root types.
func NewRegistry() *Registry {
	r := &Registry{
		descriptors: make(map[string]Descriptor),
		children:    make(map[string][]string),
	}
	r.descriptors[RootService] = Descriptor{
		Name:    RootService,
		Kind:    KindService,
		Summary: "Base type for instrument drivers and long-lived services.",
	}
	r.descriptors[RootLabware] = Descriptor{
		Name:    RootLabware,
		Kind:    KindLabware,
		Summary: "Base type for physical labware placed on a deck.",
	}
	return r
}

// defaultRegistry is the process-wide registry the catalog registers into.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register records a resource type under its parent.
//
// The parent does not have to be registered yet; forests link up as types
// arrive and Validate reports edges that never resolved. Duplicate names,
// self-parenting, empty names, and unknown kinds are rejected.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return errors.New("resource type name must not be empty")
	}
	if d.Parent == "" {
		return errors.Newf("resource type %q must name a parent", d.Name)
	}
	if d.Parent == d.Name {
		return errors.Newf("resource type %q cannot be its own parent", d.Name)
	}
	if !d.Kind.Valid() {
		return errors.Newf("resource type %q has unknown kind %q", d.Name, d.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[d.Name]; exists {
		return errors.Wrapf(errors.ErrDuplicateResource, "%q", d.Name)
	}
	if p, ok := r.descriptors[d.Parent]; ok && p.Kind != d.Kind {
		return errors.Newf("resource type %q is %s but parent %q is %s", d.Name, d.Kind, p.Name, p.Kind)
	}

	r.descriptors[d.Name] = d
	r.children[d.Parent] = append(r.children[d.Parent], d.Name)
	return nil
}

// MustRegister is Register for init-time use. Registration failures there
// are programming errors, not runtime conditions.
func MustRegister(d Descriptor) {
	if err := defaultRegistry.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[name]
	return d, ok
}

// DirectChildren returns the descriptors registered directly under name,
// in registration order.
func (r *Registry) DirectChildren(name string) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.childrenLocked(name)
}

func (r *Registry) childrenLocked(name string) []Descriptor {
	names := r.children[name]
	if len(names) == 0 {
		return nil
	}
	out := make([]Descriptor, 0, len(names))
	for _, n := range names {
		out = append(out, r.descriptors[n])
	}
	return out
}

// Collect returns every type reachable from root, pre-order depth-first:
// each child is appended, then its own descendants, before the next sibling.
// Each type appears exactly once even if a manifest wires it under two
// parents. A root with no descendants yields an empty slice.
func (r *Registry) Collect(root string) ([]Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.descriptors[root]; !ok {
		return nil, errors.Wrapf(errors.ErrUnknownResource, "%q", root)
	}

	visited := map[string]bool{root: true}
	result := []Descriptor{}
	r.collectLocked(root, visited, &result)
	return result, nil
}

func (r *Registry) collectLocked(name string, visited map[string]bool, result *[]Descriptor) {
	for _, child := range r.children[name] {
		if visited[child] {
			continue
		}
		visited[child] = true
		*result = append(*result, r.descriptors[child])
		r.collectLocked(child, visited, result)
	}
}

// Size returns the number of registered types, roots included.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}

// Validate reports types whose parent was never registered and types whose
// kind disagrees with their parent's. Dangling types are unreachable from
// any root and would silently vanish from the generated reference; a kind
// mismatch would place a type in the wrong hierarchy's table.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for parent, names := range r.children {
		p, ok := r.descriptors[parent]
		if !ok {
			return errors.Newf("resource types %v registered under unknown parent %q", names, parent)
		}
		for _, name := range names {
			if d := r.descriptors[name]; d.Kind != p.Kind {
				return errors.Newf("resource type %q is %s but parent %q is %s", name, d.Kind, p.Name, p.Kind)
			}
		}
	}
	return nil
}

// Clone returns an independent copy of the registry. Used to layer manifest
// types over the built-in catalog without mutating the shared registry, so
// watch mode can rebuild from a clean base on every manifest change.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{
		descriptors: make(map[string]Descriptor, len(r.descriptors)),
		children:    make(map[string][]string, len(r.children)),
	}
	for name, d := range r.descriptors {
		c.descriptors[name] = d
	}
	for parent, names := range r.children {
		c.children[parent] = append([]string(nil), names...)
	}
	return c
}
