// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/stretchr/testify/require"
)

var (
	F32 = dtypes.Float32
	I64 = dtypes.Int64
	S   = shapes.Make
	SS  = shapes.MakeSymbolic
)

// testTable holds the operators used by the tests, up to version 15.
var testTable = func() *opset.Table {
	all := []dtypes.DType{F32, dtypes.Float64, dtypes.Int32, I64, dtypes.Bool, dtypes.String}
	unary := &opset.Signature{
		Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
		Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
		TypeConstraints: map[string][]dtypes.DType{"T": all},
	}
	table := opset.NewTable("onnx_test")
	must.M(table.SupportDomain(opset.DefaultDomain, 15))
	table.MustRegister(
		&opset.Binding{OpType: "Add", SinceVersion: 14, Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": all},
		}, Rule: inference.Broadcasting, Pure: true},
		&opset.Binding{OpType: "Identity", SinceVersion: 1, StableThrough: 15, Signature: unary,
			Rule: inference.Unary, ValueRule: inference.IdentityValues, Pure: true},
		&opset.Binding{OpType: "Softmax", SinceVersion: 13, Signature: &opset.Signature{
			Inputs:          unary.Inputs,
			Outputs:         unary.Outputs,
			TypeConstraints: map[string][]dtypes.DType{"T": {F32}},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(-1)}},
		}, Rule: inference.Softmax, Pure: true},
		&opset.Binding{OpType: "Constant", SinceVersion: 13, Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": all},
			Attributes:      []opset.AttrSpec{{Name: "value", Kind: attributes.Tensor}},
		}, Rule: inference.Constant, ValueRule: inference.ConstantValues, Pure: true},
		&opset.Binding{OpType: "Reshape", SinceVersion: 14, Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "shape", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "reshaped", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": all, "I": {I64}},
			Attributes:      []opset.AttrSpec{{Name: "allowzero", Kind: attributes.Int}},
		}, Rule: inference.Reshape, ValueRule: inference.ReshapeValues, Pure: true},
		&opset.Binding{OpType: "Split", SinceVersion: 13, Signature: &opset.Signature{
			Inputs: []opset.Param{
				{Name: "input", TypeVar: "T"}, {Name: "split", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "T", Option: opset.Variadic}},
			TypeConstraints: map[string][]dtypes.DType{"T": all, "I": {I64}},
			Attributes:      []opset.AttrSpec{{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)}},
		}, Rule: inference.Split, Pure: true},
	)
	return table.Freeze()
}()

func addNodeOutputs(t *testing.T, b *graph.Builder, op string, version int, inputs []*graph.Var, attrs attributes.Map,
	numOutputs int) []*graph.Var {
	outputs, err := b.AddNode(op, "", version, inputs, attrs, numOutputs)
	require.NoError(t, err)
	return outputs
}

// buildTestGraph builds a graph that exercises inputs with symbolic dimensions, initializers, inputs with defaults,
// constants, attributes, multiple outputs and an inserted Identity.
func buildTestGraph(t *testing.T) *graph.Graph {
	b := graph.NewBuilder(testTable, graph.WithName("test_graph"), graph.WithDocString("A graph for tests."))
	x, err := b.DeclareInput("x", SS(F32, "N", 3))
	require.NoError(t, err)
	w, err := b.Initializer("w", tensors.FromFlatDataAndDimensions([]float32{1, 2, 3}, 3))
	require.NoError(t, err)
	bias, err := b.InputWithDefault("bias", tensors.FromFlatDataAndDimensions([]float32{0.5, 0.5, 0.5}, 3))
	require.NoError(t, err)
	labels, err := b.Initializer("labels", tensors.FromFlatDataAndDimensions([]string{"a", "b"}, 2))
	require.NoError(t, err)

	y := addNodeOutputs(t, b, "Add", 14, []*graph.Var{x, w}, nil, 1)[0]
	y = addNodeOutputs(t, b, "Add", 14, []*graph.Var{y, bias}, nil, 1)[0]
	probs := addNodeOutputs(t, b, "Softmax", 13, []*graph.Var{y}, attributes.Map{"axis": attributes.IntValue(1)}, 1)[0]
	target := addNodeOutputs(t, b, "Constant", 13, nil,
		attributes.Map{"value": attributes.TensorValue(tensors.FromFlatDataAndDimensions([]int64{3, -1}, 2))}, 1)[0]
	reshaped := addNodeOutputs(t, b, "Reshape", 14, []*graph.Var{probs, target}, nil, 1)[0]
	parts := addNodeOutputs(t, b, "Split", 13, []*graph.Var{w}, nil, 3)

	g, err := b.BuildOutputs(
		graph.Output{Name: "probs", Var: probs},
		graph.Output{Name: "reshaped", Var: reshaped},
		graph.Output{Name: "first", Var: parts[0]},
		graph.Output{Name: "labels_out", Var: labels},
	)
	require.NoError(t, err)
	return g
}
