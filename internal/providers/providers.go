// Package providers holds the built-in mapping trees for known resource
// providers.
package providers

import (
	"maps"
	"slices"

	"resource-mapper/internal/mapping"
)

var builtin = map[string]func() mapping.Tree{
	"agency":    Agency,
	"directory": Directory,
}

// Lookup returns the mapping tree of a built-in provider.
func Lookup(name string) (mapping.Tree, bool) {
	build, ok := builtin[name]
	if !ok {
		return nil, false
	}

	return build(), true
}

// Names lists the built-in providers in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Registry returns the default transform registry extended with the
// provider-specific transforms, so mapping files can use them too.
func Registry() *mapping.Registry {
	return mapping.DefaultRegistry().
		MustRegister("regionCode", regionCode).
		MustRegister("languageCode", languageCode)
}
