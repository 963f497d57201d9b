package mapping

import (
	"fmt"
	"strings"

	"resource-mapper/internal/diagnostic"
	"resource-mapper/internal/match"
)

// SupportedVersion is the only mapping file version understood by Compile.
const SupportedVersion = "1"

// Compile turns a parsed mapping file into an executable Tree. Every problem
// is reported in the returned diagnostics; the tree must not be used when the
// diagnostics contain errors.
func Compile(mf *MappingFile, registry *Registry) (Tree, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return nil, res
	}

	if registry == nil {
		registry = DefaultRegistry()
	}

	c := &compiler{scope: mf.Provider, registry: registry, diags: res}

	if mf.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping version %q (expected %q)", mf.Version, SupportedVersion), c.scope, "")
	}

	if mf.MaxDepth < 0 {
		res.AddError("invalid_max_depth", fmt.Sprintf("maxDepth must not be negative, got %d", mf.MaxDepth), c.scope, "")
	}

	if len(mf.Mapping) == 0 {
		res.AddError("empty_mapping", "mapping declares no properties", c.scope, "")
	}

	tree := c.nodes(mf.Mapping, nil)

	// Structural checks share the diagnostics so all problems surface at once.
	tree.validate(res, nil)

	return tree, res
}

type compiler struct {
	scope    string
	registry *Registry
	diags    *diagnostic.Diagnostics
}

func (c *compiler) nodes(defs NodeDefs, path []string) Tree {
	if len(defs) == 0 {
		return nil
	}

	tree := make(Tree, 0, len(defs))

	for _, def := range defs {
		entryPath := append(append([]string{}, path...), def.Property)
		where := strings.Join(entryPath, "/")

		entry := Entry{Property: def.Property}

		for _, md := range def.Mappings {
			if m, ok := c.mapping(md, where); ok {
				entry.Mappings = append(entry.Mappings, m)
			}
		}

		entry.Children = c.nodes(def.Children, entryPath)

		if len(entry.Mappings) == 0 && len(entry.Children) == 0 && len(def.Mappings) > 0 {
			// Every mapping failed to compile and was already reported.
			continue
		}

		tree = append(tree, entry)
	}

	return tree
}

func (c *compiler) mapping(md MappingDef, where string) (ResourceMapping, bool) {
	kind, ok := c.kind(md, where)
	if !ok {
		return ResourceMapping{}, false
	}

	m := ResourceMapping{Kind: kind, Value: CurrentValue, List: md.List}
	valid := true

	if kind == KindField {
		field := ResourceField(md.Field)
		if !field.IsValid() {
			c.diags.AddError("unknown_field", fmt.Sprintf("unknown resource field %q", md.Field), c.scope, where,
				match.Suggest(md.Field, resourceFieldNames())...)

			valid = false
		}

		m.Field = field
	} else if md.Field != "" {
		c.diags.AddError("unexpected_field", fmt.Sprintf("%s mapping must not set field", kind), c.scope, where)

		valid = false
	}

	if md.Key != "" {
		m.Key = Template(md.Key)
	}

	if md.Value != nil {
		gen, ok := c.value(*md.Value, where, "value")
		valid = valid && ok
		m.Value = gen
	}

	if md.Info != nil {
		gen, ok := c.value(*md.Info, where, "info")
		valid = valid && ok
		m.Info = gen
	}

	if md.Language != nil {
		gen, ok := c.value(*md.Language, where, "language")
		valid = valid && ok
		m.Language = stringOf(gen)
	}

	if !valid {
		return ResourceMapping{}, false
	}

	if err := m.Validate(); err != nil {
		c.diags.AddError("invalid_mapping", err.Error(), c.scope, where)
		return ResourceMapping{}, false
	}

	return m, true
}

func (c *compiler) kind(md MappingDef, where string) (Kind, bool) {
	if md.Kind == "" {
		if md.Field != "" {
			return KindField, true
		}

		c.diags.AddError("missing_kind", "mapping must set kind (or field)", c.scope, where)

		return 0, false
	}

	kind, ok := ParseKind(md.Kind)
	if !ok {
		c.diags.AddError("unknown_kind", fmt.Sprintf("unknown mapping kind %q", md.Kind), c.scope, where,
			match.Suggest(md.Kind, kindNames())...)

		return 0, false
	}

	return kind, true
}

// value compiles a ValueDef into a generator.
func (c *compiler) value(vd ValueDef, where, attr string) (ValueGenerator, bool) {
	var gen ValueGenerator

	ok := true

	switch {
	case vd.hasConst || vd.Const != nil:
		gen = Const(vd.Const)
	case vd.Template != "":
		tmpl := Template(vd.Template)
		gen = func(ctx FieldMappingContext) any { return tmpl(ctx) }
	default:
		base, baseOK := c.base(vd.From, where, attr)
		ok = baseOK

		path, err := ParseDataPath(vd.Path)
		if err != nil {
			c.diags.AddError("invalid_path", fmt.Sprintf("%s: %v", attr, err), c.scope, where)

			ok = false
		}

		gen = func(ctx FieldMappingContext) any { return path.Lookup(base(ctx)) }
	}

	chain := make([]TransformFunc, 0, len(vd.Transform))

	for _, name := range vd.Transform {
		fn := c.registry.Get(name)
		if fn == nil {
			c.diags.AddError("unknown_transform", fmt.Sprintf("%s: unknown transform %q", attr, name), c.scope, where,
				match.Suggest(name, c.registry.Names())...)

			ok = false

			continue
		}

		chain = append(chain, fn)
	}

	return Pipe(gen, chain...), ok
}

func (c *compiler) base(from, where, attr string) (ValueGenerator, bool) {
	switch from {
	case "", FromCurrent:
		return CurrentValue, true
	case FromParent:
		return ParentValue, true
	case FromRoot:
		return func(ctx FieldMappingContext) any { return ctx.RootResource }, true
	default:
		c.diags.AddError("unknown_from", fmt.Sprintf("%s: unknown value base %q", attr, from), c.scope, where,
			match.Suggest(from, []string{FromCurrent, FromParent, FromRoot})...)

		return CurrentValue, false
	}
}

// stringOf adapts a value generator to a string generator. Nil becomes "".
func stringOf(gen ValueGenerator) StringGenerator {
	return func(ctx FieldMappingContext) string {
		switch v := gen(ctx).(type) {
		case nil:
			return ""
		case string:
			return v
		default:
			return fmt.Sprint(v)
		}
	}
}

func kindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))

	for i, k := range kinds {
		names[i] = k.String()
	}

	return names
}

func resourceFieldNames() []string {
	fields := ResourceFields()
	names := make([]string, len(fields))

	for i, f := range fields {
		names[i] = string(f)
	}

	return names
}
