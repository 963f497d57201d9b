package transform

import (
	"fmt"

	"go.uber.org/zap"

	"resource-mapper/internal/diagnostic"
	"resource-mapper/internal/mapping"
	"resource-mapper/internal/resource"
)

// DefaultMaxDepth bounds recursion into the data tree.
const DefaultMaxDepth = 32

// DefaultReservedKeys are storage bookkeeping properties that are stripped
// from data objects before their children are walked.
var DefaultReservedKeys = []string{"_id", "objectId"}

// Transformer flattens provider resources according to one mapping tree. It
// is immutable after New and safe for concurrent use.
type Transformer struct {
	tree         mapping.Tree
	reservedKeys map[string]struct{}
	maxDepth     int
	logger       *zap.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets the logger used for per-attribute diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Transformer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithReservedKeys replaces the default reserved keys. An empty list disables
// stripping.
func WithReservedKeys(keys ...string) Option {
	return func(t *Transformer) {
		t.reservedKeys = toSet(keys)
	}
}

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(t *Transformer) {
		if depth > 0 {
			t.maxDepth = depth
		}
	}
}

// FromMappingFile translates the engine settings of a mapping file into
// options.
func FromMappingFile(mf *mapping.MappingFile) []Option {
	if mf == nil {
		return nil
	}

	opts := []Option{WithMaxDepth(mf.MaxDepth)}
	if mf.ReservedKeys != nil {
		opts = append(opts, WithReservedKeys(mf.ReservedKeys...))
	}

	return opts
}

// New validates tree and returns a Transformer for it.
func New(tree mapping.Tree, opts ...Option) (*Transformer, error) {
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping tree: %w", err)
	}

	t := &Transformer{
		tree:         tree,
		reservedKeys: toSet(DefaultReservedKeys),
		maxDepth:     DefaultMaxDepth,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Transform flattens one external resource. It never fails: data that does
// not fit the mapping is dropped and logged, so the result may be sparse.
func (t *Transformer) Transform(accountSid string, external any) *resource.FlatResource {
	out, _ := t.TransformWithDiagnostics(accountSid, external)
	return out
}

// TransformWithDiagnostics is Transform that also returns every non-fatal
// problem found while flattening.
func (t *Transformer) TransformWithDiagnostics(accountSid string, external any) (*resource.FlatResource, *diagnostic.Diagnostics) {
	out := resource.New(accountSid)
	diags := &diagnostic.Diagnostics{}

	w := &walker{
		reservedKeys: t.reservedKeys,
		maxDepth:     t.maxDepth,
		assembler: &assembler{
			out:    out,
			diags:  diags,
			logger: t.logger.With(zap.String("accountSid", accountSid)),
		},
	}

	w.mapNode(t.tree, external, mapping.NewRootContext(external), 0)

	if out.ID != "" {
		stampScope(diags, out.ID)
	}

	return out, diags
}

func stampScope(diags *diagnostic.Diagnostics, id string) {
	for _, group := range []*[]diagnostic.Diagnostic{&diags.Errors, &diags.Warnings, &diags.Infos} {
		for i := range *group {
			(*group)[i].Scope = id
		}
	}
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}

	return set
}
