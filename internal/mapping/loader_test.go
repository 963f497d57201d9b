package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
provider: directory
reservedKeys: [_id]
maxDepth: 8
mapping:
  id: {field: id}
  name:
    - {field: name}
    - {kind: string, key: name}
  description:
    children:
      "{language}":
        kind: translatable
        key: "description/{language}"
        language: "{language}"
  coverage:
    mappings:
      kind: reference
      key: coverage/region
      list: country/region
      value: {path: region, transform: [trim, upper]}
  count: {kind: number, key: count, value: 3}
  flag: {kind: boolean, key: flag, info: {const: {source: test}}}
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "directory", mf.Provider)
	assert.Equal(t, []string{"_id"}, mf.ReservedKeys)
	assert.Equal(t, 8, mf.MaxDepth)

	// Key order is preserved
	properties := make([]string, 0, len(mf.Mapping))
	for _, def := range mf.Mapping {
		properties = append(properties, def.Property)
	}

	assert.Equal(t, []string{"id", "name", "description", "coverage", "count", "flag"}, properties)

	// Field shorthand
	require.Len(t, mf.Mapping[0].Mappings, 1)
	assert.Equal(t, "id", mf.Mapping[0].Mappings[0].Field)

	// Fan-out list
	require.Len(t, mf.Mapping[1].Mappings, 2)
	assert.Equal(t, "string", mf.Mapping[1].Mappings[1].Kind)

	// Children with capture
	desc := mf.Mapping[2]
	assert.Empty(t, desc.Mappings)
	require.Len(t, desc.Children, 1)
	assert.Equal(t, "{language}", desc.Children[0].Property)
	require.NotNil(t, desc.Children[0].Mappings[0].Language)
	assert.Equal(t, "{language}", desc.Children[0].Mappings[0].Language.Template)

	// Explicit mappings key with value object
	cov := mf.Mapping[3].Mappings[0]
	assert.Equal(t, "country/region", cov.List)
	require.NotNil(t, cov.Value)
	assert.Equal(t, "region", cov.Value.Path)
	assert.Equal(t, StringArray{"trim", "upper"}, cov.Value.Transform)

	// Scalar constant and const info
	assert.Equal(t, 3, mf.Mapping[4].Mappings[0].Value.Const)
	assert.Equal(t, map[string]any{"source": "test"}, mf.Mapping[5].Mappings[0].Info.Const)
}

func TestParseMinimal(t *testing.T) {
	mf, err := Parse([]byte("mapping:\n  id: {field: id}\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version) // Default version
	assert.Nil(t, mf.ReservedKeys)
	require.Len(t, mf.Mapping, 1)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown mapping key with suggestion",
			yaml: "mapping:\n  id: {feild: id}\n",
			want: `unknown key "feild" (did you mean "field"?)`,
		},
		{
			name: "unknown node key",
			yaml: "mapping:\n  a:\n    children: {b: {field: id}}\n    extra: 1\n",
			want: `unknown key "extra"`,
		},
		{
			name: "unknown value key",
			yaml: "mapping:\n  a: {kind: string, key: a, value: {transfrom: trim}}\n",
			want: `did you mean "transform"?`,
		},
		{
			name: "scalar node",
			yaml: "mapping:\n  a: id\n",
			want: `property "a": expected a mapping`,
		},
		{
			name: "mapping is a list",
			yaml: "mapping:\n  - a\n",
			want: "expected a mapping of properties",
		},
		{
			name: "list of scalars",
			yaml: "mapping:\n  a: [x]\n",
			want: "expected mapping object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadTree(t *testing.T) {
	mf, tree, err := LoadTree("testdata/directory.yaml", DefaultRegistry())
	require.NoError(t, err)

	assert.Equal(t, "directory", mf.Provider)
	assert.Equal(t, []string{"_id", "objectId"}, mf.ReservedKeys)
	assert.Equal(t, 16, mf.MaxDepth)

	require.Len(t, tree, 8)
	assert.Equal(t, "id", tree[0].Property)
	assert.Equal(t, KindField, tree[0].Mappings[0].Kind)
	assert.Equal(t, FieldID, tree[0].Mappings[0].Field)

	require.Len(t, tree[1].Mappings, 2)
	assert.Equal(t, KindString, tree[1].Mappings[1].Kind)

	coverage := tree[6]
	require.Len(t, coverage.Mappings, 2)
	assert.Equal(t, KindReference, coverage.Mappings[1].Kind)

	ctx := NewRootContext(nil).Child("coverage", " CA-ON;CA-QC ", "")
	assert.Equal(t, "CA-ON", coverage.Mappings[1].Value(ctx))
	assert.Equal(t, map[string]any{"source": "directory"}, coverage.Mappings[0].Info(ctx))

	sites := tree[7]
	require.Len(t, sites.Children, 1)
	site := sites.Children[0]
	assert.Equal(t, "{site}", site.Property)
	require.Len(t, site.Mappings, 1)
	require.Len(t, site.Children, 2)

	siteCtx := NewRootContext(nil).Child("sites", nil, "").Child("0", map[string]any{"siteId": "S1"}, "site")
	assert.Equal(t, "sites/0/id", site.Mappings[0].Key(siteCtx))
	assert.Equal(t, "S1", site.Mappings[0].Value(siteCtx))
}

func TestLoadTree_MissingFile(t *testing.T) {
	_, _, err := LoadTree("testdata/does-not-exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}

func TestCompile_Diagnostics(t *testing.T) {
	yaml := `
version: "2"
provider: broken
mapping:
  a: {kind: strng, key: a}
  b: {field: nmae}
  c: {kind: reference, key: c}
  d: {kind: string, key: d, value: {transform: trm}}
  e: {kind: string, key: e, value: {from: grandparent}}
  f: {kind: string}
  g: {kind: number, key: g, field: id}
  h: {key: h}
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	_, diags := Compile(mf, DefaultRegistry())
	require.True(t, diags.HasErrors())

	codes := diags.Codes()
	for _, code := range []string{
		"unsupported_version",
		"unknown_kind",
		"unknown_field",
		"invalid_mapping",
		"unknown_transform",
		"unknown_from",
		"unexpected_field",
		"missing_kind",
	} {
		assert.Contains(t, codes, code)
	}

	msg := diags.Error().Error()
	assert.Contains(t, msg, `did you mean "string"?`)
	assert.Contains(t, msg, `did you mean "name"?`)
	assert.Contains(t, msg, `did you mean "trim"?`)
	assert.Contains(t, msg, "[broken] c:")
}

func TestCompile_NilInputs(t *testing.T) {
	_, diags := Compile(nil, nil)
	assert.Equal(t, []string{"mapping_is_nil"}, diags.Codes())

	_, diags = Compile(&MappingFile{Version: "1"}, nil)
	assert.Contains(t, diags.Codes(), "empty_mapping")
}

func TestCompile_ValueSources(t *testing.T) {
	yaml := `
mapping:
  item:
    - {kind: string, key: parent, value: {from: parent, path: label}}
    - {kind: string, key: root, value: {from: root, path: meta.source}}
    - {kind: string, key: tpl, value: {template: "x-{k}"}}
    - {kind: translatable, key: t, language: {const: en}}
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	tree, diags := Compile(mf, nil)
	require.NoError(t, diags.Error())

	root := map[string]any{"label": "L", "meta": map[string]any{"source": "S"}, "item": "v"}
	ctx := NewRootContext(root).Child("item", "v", "")
	ctx.Captures = ctx.Captures.With("k", "K")

	ms := tree[0].Mappings
	assert.Equal(t, "L", ms[0].Value(ctx))
	assert.Equal(t, "S", ms[1].Value(ctx))
	assert.Equal(t, "x-K", ms[2].Value(ctx))
	assert.Equal(t, "en", ms[3].Language(ctx))
	assert.Equal(t, "v", ms[3].Value(ctx))
}

func TestCompile_NullConstants(t *testing.T) {
	yaml := `
mapping:
  item:
    - {kind: string, key: explicit, value: {const: null}}
    - {kind: string, key: tilde, value: ~}
    - {kind: string, key: transformed, value: {const: null, transform: trim}}
    - {kind: string, key: noInfo, info: null}
    - {kind: string, key: current}
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	ms := mf.Mapping[0].Mappings
	require.Len(t, ms, 5)
	require.NotNil(t, ms[1].Value)
	assert.True(t, ms[1].Value.hasConst)
	assert.True(t, ms[0].Value.hasConst)
	assert.Nil(t, ms[4].Value)

	tree, diags := Compile(mf, nil)
	require.NoError(t, diags.Error())

	ctx := NewRootContext(map[string]any{"item": "v"}).Child("item", "v", "")

	compiled := tree[0].Mappings
	assert.Nil(t, compiled[0].Value(ctx))
	assert.Nil(t, compiled[1].Value(ctx))
	assert.Nil(t, compiled[2].Value(ctx))
	assert.Nil(t, compiled[3].Info(ctx))
	assert.Equal(t, "v", compiled[3].Value(ctx))
	assert.Equal(t, "v", compiled[4].Value(ctx))
}
