// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/stretchr/testify/require"
)

var (
	F32 = dtypes.Float32
	F64 = dtypes.Float64
	I64 = dtypes.Int64
	S   = shapes.Make
	SS  = shapes.MakeSymbolic
)

func unarySignature(types []dtypes.DType) *opset.Signature {
	return &opset.Signature{
		Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
		Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
		TypeConstraints: map[string][]dtypes.DType{"T": types},
	}
}

func binarySignature(types []dtypes.DType) *opset.Signature {
	return &opset.Signature{
		Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
		Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
		TypeConstraints: map[string][]dtypes.DType{"T": types},
	}
}

// testTable is a small table with a few operators of the default domain, up to version 15.
var testTable = func() *opset.Table {
	floats := []dtypes.DType{F32, F64}
	all := []dtypes.DType{F32, F64, dtypes.Int32, I64, dtypes.Bool}
	softmax := func(defaultAxis int64) *opset.Signature {
		sig := unarySignature(floats)
		sig.Attributes = []opset.AttrSpec{
			{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(defaultAxis)}}
		return sig
	}
	table := opset.NewTable("graph_test")
	must.M(table.SupportDomain(opset.DefaultDomain, 15))
	table.MustRegister(
		&opset.Binding{OpType: "Add", SinceVersion: 7, StableThrough: 13, Signature: binarySignature(floats),
			Rule: inference.Broadcasting, Pure: true},
		&opset.Binding{OpType: "Add", SinceVersion: 13, StableThrough: 15, Signature: binarySignature(floats),
			Rule: inference.Broadcasting, Pure: true},
		&opset.Binding{OpType: "Add", SinceVersion: 14, Signature: binarySignature(all),
			Rule: inference.Broadcasting, Pure: true},
		&opset.Binding{OpType: "Softmax", SinceVersion: 11, Signature: softmax(1), Rule: inference.Softmax,
			Pure: true},
		&opset.Binding{OpType: "Softmax", SinceVersion: 13, Signature: softmax(-1), Rule: inference.Softmax,
			Pure: true},
		&opset.Binding{OpType: "Identity", SinceVersion: 1, StableThrough: 15, Signature: unarySignature(all),
			Rule: inference.Unary, ValueRule: inference.IdentityValues, Pure: true},
		&opset.Binding{OpType: "Constant", SinceVersion: 13, Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": all},
			Attributes:      []opset.AttrSpec{{Name: "value", Kind: attributes.Tensor}},
		}, Rule: inference.Constant, ValueRule: inference.ConstantValues, Pure: true},
		&opset.Binding{OpType: "Shape", SinceVersion: 1, StableThrough: 15, Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "shape", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": all, "T1": {I64}},
		}, Rule: inference.Shape, ValueRule: inference.ShapeValues, Pure: true},
		&opset.Binding{OpType: "Reshape", SinceVersion: 5, StableThrough: 15, Signature: &opset.Signature{
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
		&opset.Binding{OpType: "RandomNormal", SinceVersion: 1, StableThrough: 15, Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": floats},
			Attributes: []opset.AttrSpec{
				{Name: "shape", Kind: attributes.Ints, Required: true},
				{Name: "dtype", Kind: attributes.Int},
			},
		}, Rule: inference.RandomFromShape},
	)
	return table.Freeze()
}()

// add adds an Add node at the given version and returns its output.
func add(t *testing.T, b *Builder, version int, x, y *Var) *Var {
	outputs, err := b.AddNode("Add", "", version, []*Var{x, y}, nil, 1)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	return outputs[0]
}

func input(t *testing.T, b *Builder, name string, shape shapes.Shape) *Var {
	v, err := b.DeclareInput(name, shape)
	require.NoError(t, err)
	return v
}

func constant(t *testing.T, b *Builder, value *tensors.Tensor) *Var {
	outputs, err := b.AddNode("Constant", "", 13, nil, attributes.Map{"value": attributes.TensorValue(value)}, 1)
	require.NoError(t, err)
	return outputs[0]
}
