// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/opsets/onnx"
	"github.com/spoxml/spox/pkg/opsets/onnxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemas = `
domain: test.domain
latest_version: 5
type_groups:
  float: [Float32, Float64]
  index: [Int32, Int64]
operators:
  - name: Scale
    doc: Scale multiplies the input by a factor.
    rule: Unary
    inputs: [{name: X, type: T}, {name: factor_0, type: T, option: optional}]
    outputs: [{name: Y, type: T}]
    constraints: {T: [float]}
    attributes:
      - {name: mode, kind: string, default: linear}
      - {name: axes, kind: ints, required: true}
    versions:
      - {since: 1, stable_through: 5, constraints: {T: [Float32]}, attributes: []}
      - {since: 3}
  - name: Pieces
    doc: Pieces splits its inputs.
    rule: Split
    impure: true
    inputs: [{name: first, type: T}, {name: rest, type: I, option: variadic}]
    outputs: [{name: parts, type: T, option: variadic, min_arity: 1}]
    constraints: {T: [float, Int8], I: [index]}
    versions:
      - {since: 2}
`

func TestPrepare(t *testing.T) {
	s := must.M1(ParseSchemas([]byte(testSchemas)))
	data := must.M1(Prepare(s, "test.yaml", "testops"))
	assert.Equal(t, "test.domain", data.Domain)
	assert.Equal(t, 5, data.LatestVersion)
	assert.Equal(t, []GroupData{
		{"typesFloat", "[]dtypes.DType{dtypes.Float32, dtypes.Float64}"},
		{"typesIndex", "[]dtypes.DType{dtypes.Int32, dtypes.Int64}"},
	}, data.Groups)

	// Sorted by operator and version.
	require.Len(t, data.Bindings, 3)
	pieces, scale1, scale3 := data.Bindings[0], data.Bindings[1], data.Bindings[2]
	assert.Equal(t, "Pieces", pieces.OpType)
	assert.False(t, pieces.Pure)
	assert.Equal(t, `map[string][]dtypes.DType{"I": typesIndex, "T": []dtypes.DType{dtypes.Float32, dtypes.Float64, dtypes.Int8}}`,
		pieces.Constraints)
	assert.Equal(t, `[]opset.Param{{Name: "parts", TypeVar: "T", Option: opset.Variadic, MinArity: 1}}`, pieces.Outputs)

	assert.Equal(t, 1, scale1.Since)
	assert.Equal(t, 5, scale1.StableThrough)
	assert.Empty(t, scale1.Attributes)
	assert.Equal(t, `map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Float32}}`, scale1.Constraints)
	assert.Equal(t, "inference.Unary", scale1.Rule)
	assert.True(t, scale1.Pure)
	assert.Equal(t, `"Scale multiplies the input by a factor."`, scale1.Doc)

	assert.Equal(t, 3, scale3.Since)
	assert.Equal(t, 0, scale3.StableThrough)
	assert.Equal(t, []string{
		`{Name: "mode", Kind: attributes.String, Default: attributes.StringValue("linear")},`,
		`{Name: "axes", Kind: attributes.Ints, Required: true},`,
	}, scale3.Attributes)

	require.Len(t, data.Ops, 2)
	assert.Equal(t, "x *graph.Var, factor0 *graph.Var, axes []int64, attrs ...Attribute", data.Ops[1].Params)
	assert.Equal(t, "*graph.Var", data.Ops[1].Result)
	assert.Equal(t,
		`return o.Call1("Scale", []*graph.Var{x, factor0}, attributes.Map{"axes": attributes.IntsValue(axes...)}, attrs)`,
		data.Ops[1].Body)
	assert.Equal(t, "1, 3", data.Ops[1].Versions)
	assert.Equal(t, []string{"Scale multiplies the input by a factor.", "",
		`Optional attributes: mode (string, default "linear").`}, data.Ops[1].Comment)

	assert.Equal(t, "first *graph.Var, rest []*graph.Var, numOutputs int, attrs ...Attribute", data.Ops[0].Params)
	assert.Equal(t, "[]*graph.Var", data.Ops[0].Result)
	assert.Equal(t, `return o.Call("Pieces", append([]*graph.Var{first}, rest...), nil, attrs, numOutputs)`,
		data.Ops[0].Body)
	assert.True(t, data.OpsUseAttributes)
	assert.False(t, data.OpsUseTensors)

	var buf bytes.Buffer
	require.NoError(t, bindingsTemplate.Execute(&buf, data))
	generated := buf.String()
	assert.Contains(t, generated, "package testops")
	assert.Contains(t, generated, `Domain = "test.domain"`)
	assert.Contains(t, generated, "StableThrough: 5,")
	assert.NotContains(t, generated, "ValueRule")
	assert.Contains(t, generated, "Pure: true,")
	buf.Reset()
	require.NoError(t, opsTemplate.Execute(&buf, data))
	generated = buf.String()
	assert.Contains(t, generated, "// Versions: 1, 3.\nfunc (o *Ops) Scale(")
	assert.Contains(t, generated, `"github.com/spoxml/spox/pkg/core/attributes"`)
}

func TestPrepareErrors(t *testing.T) {
	base := `
latest_version: 5
type_groups:
  float: [Float32]
operators:
`
	for _, tc := range []struct {
		name, operators, want string
	}{
		{"no versions", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]}}`,
			"has no versions"},
		{"unconstrained", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: U}], constraints: {T: [float]},
     versions: [{since: 1}]}`,
			`unconstrained type "U"`},
		{"unknown dtype", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [Float128]},
     versions: [{since: 1}]}`,
			"Float128"},
		{"repeated version", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]},
     versions: [{since: 1}, {since: 1}]}`,
			"version 1 twice"},
		{"future version", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]},
     versions: [{since: 6}]}`,
			"newer than the latest version"},
		{"required with default", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]},
     attributes: [{name: k, kind: int, required: true, default: 1}], versions: [{since: 1}]}`,
			"has a default"},
		{"bad default", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]},
     attributes: [{name: k, kind: int, default: abc}], versions: [{since: 1}]}`,
			"invalid default"},
		{"unknown kind", `
  - {name: A, rule: Unary, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]},
     attributes: [{name: k, kind: complex}], versions: [{since: 1}]}`,
			"unknown attribute kind"},
		{"no rule", `
  - {name: A, inputs: [{name: X, type: T}], outputs: [{name: Y, type: T}], constraints: {T: [float]},
     versions: [{since: 1}]}`,
			"no inference rule"},
		{"duplicate operator", `
  - {name: A, rule: Unary, outputs: [{name: Y, type: T}], constraints: {T: [float]}, versions: [{since: 1}]}
  - {name: A, rule: Unary, outputs: [{name: Y, type: T}], constraints: {T: [float]}, versions: [{since: 2}]}`,
			"defined twice"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := must.M1(ParseSchemas([]byte(base + tc.operators)))
			_, err := Prepare(s, "test.yaml", "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, err := ParseSchemas([]byte("domain: x\n"))
	require.Error(t, err)
}

func TestGraphAttributes(t *testing.T) {
	s := must.M1(ParseSchemas([]byte(`
latest_version: 3
type_groups:
  float: [Float32]
operators:
  - name: Choose
    doc: Choose runs one of the branches.
    rule: If
    inputs: [{name: cond, type: B}]
    outputs: [{name: outputs, type: V, option: variadic}]
    constraints: {B: [Bool], V: [float]}
    attributes:
      - {name: then_branch, kind: graph, required: true}
    versions:
      - {since: 1}
`)))
	data := must.M1(Prepare(s, "test.yaml", "test"))
	require.Len(t, data.Bindings, 1)
	assert.Equal(t, []string{`{Name: "then_branch", Kind: attributes.Graph, Required: true},`},
		data.Bindings[0].Attributes)
	require.Len(t, data.Ops, 1)
	assert.Equal(t, "cond *graph.Var, thenBranch *graph.Graph, numOutputs int, attrs ...Attribute", data.Ops[0].Params)
	assert.Equal(t,
		`return o.Call("Choose", []*graph.Var{cond}, attributes.Map{"then_branch": attributes.GraphValue(thenBranch)}, attrs, numOutputs)`,
		data.Ops[0].Body)
}

func TestGroupCycle(t *testing.T) {
	_, err := resolveGroups(map[string][]string{"a": {"b"}, "b": {"a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in terms of itself")
}

func TestGoName(t *testing.T) {
	for input, want := range map[string]string{
		"X":                    "x",
		"data_0":               "data0",
		"transA":               "transA",
		"noop_with_empty_axes": "noopWithEmptyAxes",
		"type":                 "typeValue",
		"num_outputs":          "numOutputsValue",
		"B":                    "b",
		"Tind":                 "tind",
	} {
		assert.Equal(t, want, goName(input), "goName(%q)", input)
	}
}

// TestCheckedInSchemas verifies that the generated bindings are up-to-date with the schemas files.
func TestCheckedInSchemas(t *testing.T) {
	for _, domain := range []struct {
		path     string
		bindings []*opset.Binding
		latest   int
	}{
		{"../../../pkg/opsets/onnx/schemas.yaml", onnx.Bindings, onnx.LatestVersion},
		{"../../../pkg/opsets/onnxml/schemas.yaml", onnxml.Bindings, onnxml.LatestVersion},
	} {
		t.Run(domain.path, func(t *testing.T) {
			s := must.M1(LoadSchemas(domain.path))
			data := must.M1(Prepare(s, "schemas.yaml", "generated"))
			assert.Equal(t, domain.latest, data.LatestVersion)
			require.Len(t, data.Bindings, len(domain.bindings), "gen_bindings.go is outdated, run go generate")
			for ii, b := range data.Bindings {
				generated := domain.bindings[ii]
				assert.Equal(t, fmt.Sprintf("%s-%d", b.OpType, b.Since),
					fmt.Sprintf("%s-%d", generated.OpType, generated.SinceVersion))
				assert.Equal(t, b.StableThrough, generated.StableThrough, "%s", generated)
				assert.Equal(t, b.Pure, generated.Pure, "%s", generated)
				assert.Len(t, b.Attributes, len(generated.Signature.Attributes), "%s", generated)
			}
		})
	}
}
