package transform

import "resource-mapper/internal/mapping"

// walker walks a mapping tree in lock-step with a data tree and hands every
// matched data node to the assembler.
type walker struct {
	reservedKeys map[string]struct{}
	maxDepth     int
	assembler    *assembler
}

// mapNode applies tree to data. parent is the context of data itself.
func (w *walker) mapNode(tree mapping.Tree, data any, parent mapping.FieldMappingContext, depth int) {
	if depth >= w.maxDepth {
		w.assembler.depthExceeded(parent, w.maxDepth)
		return
	}

	literals := tree.Literals()

	for _, entry := range tree {
		capture, isCapture := entry.Capture()

		for _, property := range w.candidates(entry, isCapture, data, literals) {
			value, ok := mapping.Property(data, property)
			if !ok || value == nil {
				continue
			}

			bind := ""
			if isCapture {
				bind = capture
			}

			ctx := parent.Child(property, value, bind)

			for _, m := range entry.Mappings {
				w.assembler.apply(m, ctx)
			}

			if len(entry.Children) > 0 && mapping.IsContainer(value) {
				w.mapNode(entry.Children, w.stripReserved(value), ctx, depth+1)
			}
		}
	}
}

// candidates returns the data properties an entry applies to. A literal entry
// matches only its own name; a capture entry matches every property not
// claimed by a literal sibling.
func (w *walker) candidates(entry mapping.Entry, isCapture bool, data any, literals map[string]struct{}) []string {
	if !isCapture {
		return []string{entry.Property}
	}

	names, err := mapping.PropertyNames(data)
	if err != nil {
		return nil
	}

	out := names[:0]

	for _, name := range names {
		if _, claimed := literals[name]; !claimed {
			out = append(out, name)
		}
	}

	return out
}

// stripReserved hides reserved keys from an object before its children are
// walked. The original value is never modified.
func (w *walker) stripReserved(value any) any {
	if len(w.reservedKeys) == 0 {
		return value
	}

	switch obj := value.(type) {
	case map[string]any:
		return without(obj, w.reservedKeys)
	case map[string]string:
		return without(obj, w.reservedKeys)
	default:
		return value
	}
}

func without[V any](obj map[string]V, reserved map[string]struct{}) map[string]V {
	found := false

	for k := range reserved {
		if _, ok := obj[k]; ok {
			found = true
			break
		}
	}

	if !found {
		return obj
	}

	out := make(map[string]V, len(obj))

	for k, v := range obj {
		if _, skip := reserved[k]; !skip {
			out[k] = v
		}
	}

	return out
}
