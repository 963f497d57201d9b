package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// TransformFunc derives a value from the resolved input of a ValueDef. It
// must return nil when it has nothing to report.
type TransformFunc func(ctx FieldMappingContext, in any) any

// Registry holds the named transforms a mapping file may reference.
type Registry struct {
	transforms map[string]TransformFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[string]TransformFunc)}
}

// DefaultRegistry returns a registry preloaded with the built-in transforms.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, fn := range builtinTransforms {
		r.transforms[name] = fn
	}

	return r
}

// Register adds a transform. Names must be unique.
func (r *Registry) Register(name string, fn TransformFunc) error {
	if name == "" {
		return errors.New("transform name is empty")
	}

	if fn == nil {
		return fmt.Errorf("transform %q: nil function", name)
	}

	if _, exists := r.transforms[name]; exists {
		return fmt.Errorf("duplicate transform %q", name)
	}

	r.transforms[name] = fn

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn TransformFunc) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}

	return r
}

// Get returns a transform by name, or nil if not found.
func (r *Registry) Get(name string) TransformFunc {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.transforms))
}
