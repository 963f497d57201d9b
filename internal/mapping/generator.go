package mapping

// StringGenerator produces a key or language for a node.
type StringGenerator func(ctx FieldMappingContext) string

// ValueGenerator produces a value or info payload for a node. Returning nil
// means there is nothing to report for this node.
type ValueGenerator func(ctx FieldMappingContext) any

// CurrentValue is the default value generator: the data node itself.
func CurrentValue(ctx FieldMappingContext) any {
	return ctx.CurrentValue
}

// ParentValue returns the node's parent object.
func ParentValue(ctx FieldMappingContext) any {
	return ctx.ParentValue
}

// Const returns a generator that always yields v.
func Const(v any) ValueGenerator {
	return func(FieldMappingContext) any { return v }
}

// Template returns a generator for a literal string that may contain capture
// tokens. Strings without tokens are returned as-is without a lookup.
func Template(template string) StringGenerator {
	if !HasCaptureTokens(template) {
		return func(FieldMappingContext) string { return template }
	}

	return func(ctx FieldMappingContext) string {
		return SubstituteCaptureTokens(template, ctx)
	}
}

// Capture returns a generator yielding the property name bound to token, or
// the empty string when it is unbound.
func Capture(token string) StringGenerator {
	return func(ctx FieldMappingContext) string {
		v, _ := ctx.Captures.Lookup(token)
		return v
	}
}

// ValueAt returns a generator reading path relative to the current node.
func ValueAt(path DataPath) ValueGenerator {
	return func(ctx FieldMappingContext) any {
		return path.Lookup(ctx.CurrentValue)
	}
}

// ValueAtRoot returns a generator reading path from the root resource.
func ValueAtRoot(path DataPath) ValueGenerator {
	return func(ctx FieldMappingContext) any {
		return path.Lookup(ctx.RootResource)
	}
}

// Pipe feeds the output of gen through fns in order.
func Pipe(gen ValueGenerator, fns ...TransformFunc) ValueGenerator {
	if len(fns) == 0 {
		return gen
	}

	return func(ctx FieldMappingContext) any {
		v := gen(ctx)
		for _, fn := range fns {
			v = fn(ctx, v)
		}

		return v
	}
}

// Builtin returns the named built-in transform. It panics for unknown names.
func Builtin(name string) TransformFunc {
	fn, ok := builtinTransforms[name]
	if !ok {
		panic("mapping: unknown built-in transform " + name)
	}

	return fn
}
