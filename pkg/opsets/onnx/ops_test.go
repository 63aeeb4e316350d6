// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package onnx_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/opsets"
	"github.com/spoxml/spox/pkg/opsets/onnx"
	"github.com/spoxml/spox/pkg/opsets/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	F32 = dtypes.Float32
	I64 = dtypes.Int64
	S   = shapes.Make
	SS  = shapes.MakeSymbolic
)

func opTypes(g *graph.Graph) []string {
	var types []string
	for _, node := range g.Nodes() {
		types = append(types, node.OpType())
	}
	return types
}

func TestMLP(t *testing.T) {
	b := graph.NewBuilder(opsets.Stable, graph.WithName("mlp"))
	op := onnx.New(b, opsets.StableVersion)
	assert.Equal(t, opsets.StableVersion, op.Version())
	assert.Same(t, b, op.Builder())

	x := must.M1(b.DeclareInput("x", SS(F32, "N", 4)))
	var y *graph.Var
	require.NoError(t, graph.Try(func() {
		w := op.Const([][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}})
		bias := op.Const([]float32{0.1, 0.2, 0.3})
		y = op.Softmax(op.Relu(op.Add(op.MatMul(x, w), bias)), onnx.Attr("axis", 1))
	}))
	assert.True(t, y.Shape().Equal(SS(F32, "N", 3)), "got %s", y.Shape())

	g := must.M1(b.Build(y))
	assert.Equal(t, []string{"Constant", "Constant", "MatMul", "Add", "Relu", "Softmax"}, opTypes(g))
	assert.Equal(t, opsets.StableVersion, g.OpsetVersion(""))
	softmax := g.Nodes()[5]
	assert.Equal(t, int64(1), softmax.Attributes()["axis"].Int())
}

func TestValuePropagation(t *testing.T) {
	b := graph.NewBuilder(opsets.Stable)
	op := onnx.New(b, 13)
	x := must.M1(b.DeclareInput("x", S(F32, 2, 3, 4)))
	var shape, reshaped *graph.Var
	require.NoError(t, graph.Try(func() {
		batch := op.Gather(op.Shape(x), op.ConstInt64s(0))
		shape = op.Concat([]*graph.Var{batch, op.ConstInt64s(-1)}, 0)
		reshaped = op.Reshape(x, shape)
	}))
	require.NotNil(t, shape.Value())
	assert.Equal(t, []int64{2, -1}, must.M1(shape.Value().ToInt64s()))
	assert.True(t, reshaped.Shape().Equal(S(F32, 2, 12)), "got %s", reshaped.Shape())

	var squeezed *graph.Var
	require.NoError(t, graph.Try(func() {
		squeezed = op.Squeeze(op.Unsqueeze(x, op.ConstInt64s(0)), op.ConstInt64s(0))
	}))
	assert.True(t, squeezed.Shape().Equal(S(F32, 2, 3, 4)), "got %s", squeezed.Shape())
}

func TestOptionalAndVariadic(t *testing.T) {
	b := graph.NewBuilder(opsets.Stable)
	op := onnx.New(b, opsets.StableVersion)
	x := must.M1(b.DeclareInput("x", S(F32, 2, 3)))
	y := must.M1(b.DeclareInput("y", S(F32, 3)))

	var clipped, clippedMax, biggest *graph.Var
	var parts []*graph.Var
	require.NoError(t, graph.Try(func() {
		clipped = op.Clip(x, nil, nil)
		clippedMax = op.Clip(x, nil, op.Const(float32(1)))
		biggest = op.Max([]*graph.Var{x, y, op.Const(float32(0))})
		parts = op.Split(op.Const([]float32{1, 2, 3, 4, 5, 6}), nil, 3)
	}))
	assert.True(t, biggest.Shape().Equal(S(F32, 2, 3)), "got %s", biggest.Shape())
	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.True(t, part.Shape().Equal(S(F32, 2)), "got %s", part.Shape())
	}

	g := must.M1(b.Build(clipped, clippedMax, biggest))
	var clips []*graph.Node
	for _, node := range g.Nodes() {
		if node.OpType() == "Clip" {
			clips = append(clips, node)
		}
	}
	require.Len(t, clips, 2)
	assert.Equal(t, 1, clips[0].NumInputs())
	require.Equal(t, 3, clips[1].NumInputs())
	assert.Nil(t, clips[1].Input(1))
	assert.NotNil(t, clips[1].Input(2))
}

func TestCastAndRandom(t *testing.T) {
	b := graph.NewBuilder(opsets.Stable)
	op := onnx.New(b, opsets.StableVersion)
	x := must.M1(b.DeclareInput("x", SS(F32, "batch", 3)))
	var cast, normal1, normal2, like, relu1, relu2 *graph.Var
	require.NoError(t, graph.Try(func() {
		cast = op.CastTo(x, I64)
		normal1 = op.RandomNormal([]int64{2, 3})
		normal2 = op.RandomNormal([]int64{2, 3})
		like = op.RandomUniformLike(x, onnx.Attr("dtype", dtypes.Float64))
		relu1 = op.Relu(x)
		relu2 = op.Relu(x)
	}))
	assert.True(t, cast.Shape().Equal(SS(I64, "batch", 3)), "got %s", cast.Shape())
	assert.True(t, normal1.Shape().Equal(S(F32, 2, 3)), "got %s", normal1.Shape())
	assert.NotSame(t, normal1, normal2, "random operators must not be deduplicated")
	assert.Same(t, relu1, relu2, "pure operators are deduplicated")
	assert.Equal(t, dtypes.Float64, like.DType())
}

func TestErrors(t *testing.T) {
	b := graph.NewBuilder(opsets.Stable)
	op := onnx.New(b, opsets.StableVersion)
	x := must.M1(b.DeclareInput("x", S(F32, 2, 3)))
	i := must.M1(b.DeclareInput("i", S(I64, 2, 3)))

	err := graph.Try(func() { op.Add(x, i) })
	require.ErrorIs(t, err, errs.ErrType)

	err = graph.Try(func() { op.Relu(x, onnx.Attr("alpha", 0.1)) })
	require.ErrorIs(t, err, errs.ErrInference)

	err = graph.Try(func() { op.Max(nil) })
	require.ErrorIs(t, err, errs.ErrInference)

	err = graph.Try(func() { op.MatMul(x, x) })
	require.ErrorIs(t, err, errs.ErrInference)

	err = graph.Try(func() { op.Relu(x, onnx.Attr("alpha", struct{}{})) })
	require.Error(t, err)

	// Version 18 is not in the stable table.
	err = graph.Try(func() { onnx.New(b, 18).Relu(x) })
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
}

func TestIfElse(t *testing.T) {
	b := graph.NewBuilder(opsets.Stable, graph.WithName("branching"))
	op := onnx.New(b, opsets.StableVersion)
	x := must.M1(b.DeclareInput("x", SS(F32, "N", 3)))
	cond := must.M1(b.DeclareInput("cond", S(dtypes.Bool)))
	var outputs []*graph.Var
	require.NoError(t, graph.Try(func() {
		outputs = op.IfElse(cond,
			func(sub *onnx.Ops) []*graph.Var { return []*graph.Var{sub.Relu(x), sub.Const(float32(1))} },
			func(sub *onnx.Ops) []*graph.Var { return []*graph.Var{x, sub.Const(float32(0))} })
	}))
	require.Len(t, outputs, 2)
	assert.True(t, outputs[0].Shape().Equal(SS(F32, "N", 3)), "got %s", outputs[0].Shape())
	assert.True(t, outputs[1].Shape().Equal(S(F32)), "got %s", outputs[1].Shape())

	g := must.M1(b.Build(outputs...))
	assert.Equal(t, []string{"If"}, opTypes(g))
	branches := g.Nodes()[0].Subgraphs()
	require.Len(t, branches, 2)
	for _, branch := range branches {
		assert.Equal(t, []*graph.Var{x}, branch.Captures())
	}
	assert.Equal(t, []string{"Constant", "Identity"}, opTypes(branches[0]))
	assert.Equal(t, []string{"Relu", "Constant"}, opTypes(branches[1]))

	// Branches with different numbers of outputs.
	b = graph.NewBuilder(opsets.Stable)
	op = onnx.New(b, opsets.StableVersion)
	cond = must.M1(b.DeclareInput("cond", S(dtypes.Bool)))
	err := graph.Try(func() {
		op.IfElse(cond,
			func(sub *onnx.Ops) []*graph.Var { return []*graph.Var{sub.Const(float32(1))} },
			func(sub *onnx.Ops) []*graph.Var { return []*graph.Var{sub.Const(float32(0)), sub.Const(float32(2))} })
	})
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestCallFunction(t *testing.T) {
	bodyBuilder := graph.NewBuilder(opsets.Stable, graph.WithName("swish"))
	x := must.M1(bodyBuilder.DeclareInput("x", SS(F32, "N")))
	var y *graph.Var
	require.NoError(t, graph.Try(func() {
		op := onnx.New(bodyBuilder, opsets.StableVersion)
		y = op.Mul(x, op.Sigmoid(x))
	}))
	swish := must.M1(graph.NewFunction(graph.FunctionsDomain, "Swish", must.M1(bodyBuilder.Build(y))))
	table := opsets.Stable.Clone("with_swish")
	require.NoError(t, swish.Register(table))
	table.Freeze()

	b := graph.NewBuilder(table)
	v := must.M1(b.DeclareInput("v", S(F32, 5)))
	var outputs []*graph.Var
	require.NoError(t, graph.Try(func() { outputs = typed.CallFunction(b, swish, v) }))
	require.Len(t, outputs, 1)
	assert.True(t, outputs[0].Shape().Equal(S(F32, 5)), "got %s", outputs[0].Shape())

	g := must.M1(b.Build(outputs...))
	assert.Equal(t, []string{"Swish"}, opTypes(g))
	assert.Equal(t, 1, g.OpsetVersion(graph.FunctionsDomain))
	assert.Equal(t, opsets.StableVersion, g.OpsetVersion(""))

	// The table of b doesn't know the function.
	other := graph.NewBuilder(opsets.Stable)
	w := must.M1(other.DeclareInput("w", S(F32, 5)))
	err := graph.Try(func() { typed.CallFunction(other, swish, w) })
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
}
