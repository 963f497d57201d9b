package mapping

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// DataPath is a parsed dotted path into a JSON-like value, e.g.
// "address.city" or "sites.0.name". Numeric segments index arrays.
type DataPath struct {
	Segments []string
}

// ParseDataPath parses a dotted path. The empty path refers to the base value
// itself.
func ParseDataPath(path string) (DataPath, error) {
	if path == "" {
		return DataPath{}, nil
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return DataPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	return DataPath{Segments: segments}, nil
}

// MustParseDataPath is like ParseDataPath but panics on error.
func MustParseDataPath(path string) DataPath {
	p, err := ParseDataPath(path)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the dotted form of the path.
func (p DataPath) String() string {
	return strings.Join(p.Segments, ".")
}

// IsEmpty returns true if the path has no segments.
func (p DataPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Lookup walks the path from base. It returns nil as soon as a segment is
// missing or the value at that point cannot be indexed.
func (p DataPath) Lookup(base any) any {
	current := base

	for _, seg := range p.Segments {
		next, ok := Property(current, seg)
		if !ok {
			return nil
		}

		current = next
	}

	return current
}

var errNotIndexable = errors.New("value is neither an object nor an array")

// Property reads one own property of an object (map) or array. Array
// properties are decimal indexes.
func Property(node any, name string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[name]
		return v, ok
	case map[string]string:
		v, ok := n[name]
		return v, ok
	case []any:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}

		return n[i], true
	default:
		return nil, false
	}
}

// PropertyNames lists the own properties of an object or array: object keys in
// sorted order, array indexes in ascending order.
func PropertyNames(node any) ([]string, error) {
	switch n := node.(type) {
	case map[string]any:
		return sortedKeys(n), nil
	case map[string]string:
		return sortedKeys(n), nil
	case []any:
		names := make([]string, len(n))
		for i := range n {
			names[i] = strconv.Itoa(i)
		}

		return names, nil
	default:
		return nil, errNotIndexable
	}
}

// IsContainer reports whether node has properties the walker can descend into.
func IsContainer(node any) bool {
	switch node.(type) {
	case map[string]any, map[string]string, []any:
		return true
	default:
		return false
	}
}

func sortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}
