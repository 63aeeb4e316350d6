// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBuildAdd(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, 2, "N"))
	w, err := b.Initializer("w", tensors.FromFlatDataAndDimensions([]float32{1, 2, 3, 4, 5, 6}, 2, 3))
	require.NoError(t, err)
	y := add(t, b, 13, x, w)
	assert.True(t, y.Shape().Equal(S(F32, 2, 3)), "got %s", y.Shape())
	assert.Equal(t, 2, y.Rank())
	assert.Equal(t, NodeOutput, y.Kind())
	node := b.Producer(y)
	require.NotNil(t, node)
	assert.Equal(t, 13, node.Binding().SinceVersion)
	assert.Equal(t, "Add", node.OpType())
	assert.Nil(t, y.Value())

	g, err := b.Build(y)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, DefaultName, g.Name())
	assert.Equal(t, []opset.Version{{Domain: "", Version: 13}}, g.Opsets())
	assert.Equal(t, []*Var{x}, g.Inputs())
	assert.Equal(t, []*Var{w}, g.Initializers())
	require.Equal(t, 1, g.NumNodes())
	assert.Equal(t, "Add_0", g.NodeName(node))
	assert.Equal(t, []Output{{Name: "Add_0_0", Var: y}}, g.Outputs())
	assert.Equal(t, "x", g.VarName(x))
	assert.Contains(t, g.Summary(), "Add_0_0")
	assert.True(t, b.IsFrozen())
}

func TestAddNodeErrors(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 2))
	x64 := input(t, b, "x64", S(F64, 2))
	x3 := input(t, b, "x3", S(F32, 3))

	// float32 + float64.
	_, err := b.AddNode("Add", "", 13, []*Var{x, x64}, nil, 1)
	require.ErrorIs(t, err, errs.ErrType)
	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, x64.String(), e.Subject)
	assert.Equal(t, "Add", e.Op)

	// Not broadcastable.
	_, err = b.AddNode("Add", "", 13, []*Var{x, x3}, nil, 1)
	require.ErrorIs(t, err, errs.ErrInference)

	// Arity, attributes.
	_, err = b.AddNode("Add", "", 13, []*Var{x}, nil, 1)
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = b.AddNode("Add", "", 13, []*Var{x, x}, attributes.Map{"axis": attributes.IntValue(0)}, 1)
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = b.AddNode("RandomNormal", "", 1, nil, nil, 1)
	require.ErrorIs(t, err, errs.ErrInference)

	// Unsupported operator and versions.
	_, err = b.AddNode("Conv", "", 13, []*Var{x}, nil, 1)
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
	_, err = b.AddNode("Add", "", 6, []*Var{x, x}, nil, 1)
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
	_, err = b.AddNode("Add", "com.example", 1, []*Var{x, x}, nil, 1)
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)

	// Failed calls don't create nodes.
	assert.Equal(t, 0, b.NumNodes())
}

func TestScope(t *testing.T) {
	b1, b2 := NewBuilder(testTable), NewBuilder(testTable)
	assert.NotEqual(t, b1.Id(), b2.Id())
	x1 := input(t, b1, "x", S(F32, 2))
	x2 := input(t, b2, "x", S(F32, 2))
	_, err := b1.AddNode("Add", "", 13, []*Var{x1, x2}, nil, 1)
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = b2.Build(x1)
	require.ErrorIs(t, err, errs.ErrScope)

	// Names.
	_, err = b1.DeclareInput("x", S(F32, 3))
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = b1.Initializer("x", tensors.FromScalar(float32(1)))
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = b1.DeclareInput("", S(F32, 3))
	require.ErrorIs(t, err, errs.ErrScope)

	// Frozen after build.
	y := add(t, b1, 13, x1, x1)
	_, err = b1.Build(y)
	require.NoError(t, err)
	_, err = b1.AddNode("Add", "", 13, []*Var{x1, x1}, nil, 1)
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = b1.DeclareInput("z", S(F32, 3))
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = b1.Initializer("w", tensors.FromScalar(float32(1)))
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = b1.Build(y)
	require.ErrorIs(t, err, errs.ErrScope)
}

func TestDeduplication(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 2))
	y0 := add(t, b, 13, x, x)
	y1 := add(t, b, 13, x, x)
	require.Same(t, y0, y1)
	assert.Equal(t, 1, b.NumNodes())

	// Different version: different node.
	y2 := add(t, b, 14, x, x)
	assert.NotSame(t, y0, y2)

	// Random ops are never merged.
	shape := attributes.Map{"shape": attributes.IntsValue(2)}
	r0, err := b.AddNode("RandomNormal", "", 1, nil, shape, 1)
	require.NoError(t, err)
	r1, err := b.AddNode("RandomNormal", "", 1, nil, shape, 1)
	require.NoError(t, err)
	assert.NotSame(t, r0[0], r1[0])

	// Disabled.
	b = NewBuilder(testTable, WithDeduplication(false))
	x = input(t, b, "x", S(F32, 2))
	assert.NotSame(t, add(t, b, 13, x, x), add(t, b, 13, x, x))
	assert.Equal(t, 2, b.NumNodes())
}

func TestDeadNodeElimination(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 2))
	unused := input(t, b, "unused", S(F32, 2))
	a := add(t, b, 13, x, x)
	dead := add(t, b, 13, a, unused)
	c := add(t, b, 13, a, a)
	require.NotNil(t, dead)
	g, err := b.Build(c)
	require.NoError(t, err)
	require.Equal(t, 2, g.NumNodes())
	assert.Equal(t, []*Node{b.Producer(a), b.Producer(c)}, g.Nodes())
	assert.Equal(t, []*Var{x}, g.Inputs())
	assert.Equal(t, "Add_1_0", g.VarName(c))
	assert.Empty(t, g.VarName(dead))
}

func TestIdentityInsertion(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 2))
	y := add(t, b, 13, x, x)
	g, err := b.BuildOutputs(
		Output{Var: x},
		Output{Name: "x_copy", Var: x},
		Output{Name: "y", Var: y},
		Output{Var: y},
	)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "Add", nodes[0].OpType())
	for _, node := range nodes[1:] {
		assert.Equal(t, "Identity", node.OpType())
		assert.True(t, node.IsInserted())
	}
	outputs := g.Outputs()
	assert.Same(t, x, outputs[0].Var)
	assert.Equal(t, "x", outputs[0].Name)
	assert.Equal(t, "x_copy", outputs[1].Name)
	assert.Same(t, nodes[1].Output(0), outputs[1].Var)
	assert.Equal(t, "y", outputs[2].Name)
	assert.Same(t, y, outputs[2].Var)
	assert.Equal(t, "Identity_1_0", outputs[3].Name)
	assert.True(t, outputs[3].Var.Shape().Equal(y.Shape()))
}

func TestNaming(t *testing.T) {
	b := NewBuilder(testTable, WithName("naming"), WithDocString("doc"))
	x := input(t, b, "Add_0_0", S(F32, 2))
	y := add(t, b, 13, x, x)
	z := add(t, b, 13, y, y)
	g, err := b.BuildOutputs(Output{Var: y}, Output{Name: "z", Var: z})
	require.NoError(t, err)
	assert.Equal(t, "naming", g.Name())
	assert.Equal(t, "doc", g.DocString())
	assert.Equal(t, "Add_0_0_1", g.VarName(y))
	assert.Equal(t, "z", g.VarName(z))
	assert.Equal(t, "Add_1", g.NodeName(b.Producer(z)))

	// Requested name collides with an input.
	b = NewBuilder(testTable)
	x = input(t, b, "x", S(F32, 2))
	_, err = b.BuildOutputs(Output{Name: "x", Var: add(t, b, 13, x, x)})
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)
}

func TestBuildWithArguments(t *testing.T) {
	newBuilder := func() (*Builder, *Var, *Var, *Var) {
		b := NewBuilder(testTable)
		x := input(t, b, "x", S(F32, 2))
		y := input(t, b, "y", S(F32, 2))
		return b, x, y, add(t, b, 13, x, x)
	}

	b, x, y, sum := newBuilder()
	g, err := b.BuildWithArguments([]*Var{y, x}, Output{Name: "sum", Var: sum})
	require.NoError(t, err)
	assert.Equal(t, []*Var{y, x}, g.Inputs())

	b, _, y, sum = newBuilder()
	_, err = b.BuildWithArguments([]*Var{y}, Output{Var: sum})
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)
	require.Contains(t, err.Error(), `"x"`)

	b, x, _, sum = newBuilder()
	_, err = b.BuildWithArguments([]*Var{x, sum}, Output{Var: sum})
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)

	b, x, _, sum = newBuilder()
	_, err = b.BuildWithArguments([]*Var{x, x}, Output{Var: sum})
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)
}

func TestOpsetVersions(t *testing.T) {
	// Softmax-11 changed semantics in version 13.
	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 2, 3))
	_, err := b.AddNode("Softmax", "", 11, []*Var{x}, nil, 1)
	require.NoError(t, err)
	_, err = b.AddNode("Add", "", 13, []*Var{x, x}, nil, 1)
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
	require.Contains(t, err.Error(), "Softmax-11")
	y := add(t, b, 7, x, x)
	g, err := b.Build(y)
	require.NoError(t, err)
	assert.Equal(t, 7, g.OpsetVersion("ai.onnx"))

	// Fixed version.
	b = NewBuilder(testTable, WithOpset("ai.onnx", 13))
	x = input(t, b, "x", S(F32, 2, 3))
	_, err = b.AddNode("Softmax", "", 11, []*Var{x}, nil, 1)
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
	y = add(t, b, 7, x, x)
	g, err = b.Build(y)
	require.NoError(t, err)
	assert.Equal(t, 13, g.OpsetVersion(""))

	// Required versions.
	b = NewBuilder(testTable)
	x = input(t, b, "x", S(F32, 2, 3))
	require.NoError(t, b.RequireOpset("", 12))
	require.ErrorIs(t, b.RequireOpset("", 16), errs.ErrUnsupportedOpset)
	require.ErrorIs(t, b.RequireOpset("com.example", 1), errs.ErrUnsupportedOpset)
	g, err = b.Build(add(t, b, 7, x, x))
	require.NoError(t, err)
	assert.Equal(t, 12, g.OpsetVersion(""))

	// Without nodes of the default domain, the latest version is used.
	b = NewBuilder(testTable)
	x = input(t, b, "x", S(F32, 2, 3))
	g, err = b.Build(x)
	require.NoError(t, err)
	assert.Equal(t, 15, g.OpsetVersion(""))
	assert.Equal(t, 0, g.NumNodes())
}

func TestValuePropagation(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 6))
	target := constant(t, b, tensors.FromFlatDataAndDimensions([]int64{2, -1}, 2))
	require.NotNil(t, target.Value())
	outputs, err := b.AddNode("Reshape", "", 13, []*Var{x, target}, nil, 1)
	require.NoError(t, err)
	assert.True(t, outputs[0].Shape().Equal(S(F32, 2, 3)), "got %s", outputs[0].Shape())

	// Shape of a known input is a known value.
	y := input(t, b, "y", S(F32, 3, 2))
	shape, err := b.AddNode("Shape", "", 13, []*Var{y}, nil, 1)
	require.NoError(t, err)
	require.NotNil(t, shape[0].Value())
	assert.Equal(t, []int64{3, 2}, shape[0].Value().Value())
	outputs, err = b.AddNode("Reshape", "", 13, []*Var{x, shape[0]}, nil, 1)
	require.NoError(t, err)
	assert.True(t, outputs[0].Shape().Equal(S(F32, 3, 2)))

	// Unknown target.
	target = input(t, b, "target", S(I64, 3))
	outputs, err = b.AddNode("Reshape", "", 13, []*Var{x, target}, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, outputs[0].Rank())
	assert.False(t, outputs[0].Shape().IsFullyKnown())
}

func TestSplit(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, 3, "N"))
	parts, err := b.AddNode("Split", "", 13, []*Var{x}, nil, 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for ii, part := range parts {
		assert.True(t, part.Shape().Equal(SS(F32, 1, "N")), "got %s", part.Shape())
		assert.Equal(t, ii, part.OutputIndex())
	}
	g, err := b.Build(parts[2])
	require.NoError(t, err)
	node := g.Nodes()[0]
	assert.Equal(t, "Split_0_2", g.VarName(parts[2]))
	assert.Equal(t, "Split_0_0", g.VarName(node.Output(0)))
}

func TestUnsafeCastAndReshape(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, 2, "N"))
	y, err := UnsafeReshape(x, S(F32, 2, 3))
	require.NoError(t, err)
	assert.True(t, y.IsAlias())
	assert.Equal(t, "x", y.Name())
	assert.Equal(t, GraphInput, y.Kind())
	_, err = UnsafeReshape(x, S(F64, 2, 3))
	require.ErrorIs(t, err, errs.ErrType)
	_, err = UnsafeReshape(y, S(F32, 5))
	require.ErrorIs(t, err, errs.ErrType)

	z, err := UnsafeCast(x, SS(dtypes.Int32, 2, "N"))
	require.NoError(t, err)
	assert.Equal(t, "Int32", z.DType().String())
	_, err = UnsafeCast(x, S(F64, 2, 3))
	require.ErrorIs(t, err, errs.ErrType)
	_, err = UnsafeCast(x, S(F32, 3, 3))
	require.ErrorIs(t, err, errs.ErrType)

	// Aliases are routed through Identity, and named after the value they alias.
	sum := add(t, b, 13, y, y)
	g, err := b.BuildOutputs(Output{Name: "sum", Var: sum}, Output{Name: "reshaped", Var: y})
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, "x", g.VarName(y))
	assert.Equal(t, []string{"Add", "Identity"}, opTypes(g))
	assert.True(t, g.Outputs()[1].Var.Shape().Equal(S(F32, 2, 3)))
}

func opTypes(g *Graph) []string {
	ops := make([]string, g.NumNodes())
	for ii, node := range g.Nodes() {
		ops[ii] = node.OpType()
	}
	return ops
}

func TestSpecialize(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, 2, "N"))
	w, err := b.Initializer("w", tensors.FromFlatDataAndDimensions([]float32{1, 2}, 2, 1))
	require.NoError(t, err)
	y := add(t, b, 13, x, w)
	softmax, err := b.AddNode("Softmax", "", 13, []*Var{y}, nil, 1)
	require.NoError(t, err)
	g, err := b.BuildOutputs(Output{Name: "y", Var: softmax[0]})
	require.NoError(t, err)

	specialized, err := g.Specialize(shapes.AxisBindings{"N": 5})
	require.NoError(t, err)
	assert.True(t, specialized.Inputs()[0].Shape().Equal(S(F32, 2, 5)))
	assert.True(t, specialized.Outputs()[0].Var.Shape().Equal(S(F32, 2, 5)))
	assert.Equal(t, "y", specialized.Outputs()[0].Name)
	assert.Equal(t, g.NumNodes(), specialized.NumNodes())
	assert.Len(t, specialized.Initializers(), 1)

	_, err = g.Refine(map[string]shapes.Shape{"x": S(F32, 3, 5)})
	require.ErrorIs(t, err, errs.ErrType)
	_, err = g.Refine(map[string]shapes.Shape{"nope": S(F32, 2, 5)})
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)
}

func TestSpecializeAliases(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, "N", 6))
	reshaped, err := UnsafeReshape(x, SS(F32, "N", 2, 3))
	require.NoError(t, err)
	cast, err := UnsafeCast(x, SS(dtypes.Int32, "N", 6))
	require.NoError(t, err)
	g, err := b.BuildOutputs(Output{Name: "sum", Var: add(t, b, 13, reshaped, reshaped)},
		Output{Name: "bits", Var: cast})
	require.NoError(t, err)

	specialized, err := g.Specialize(shapes.AxisBindings{"N": 4})
	require.NoError(t, err)
	outputs := specialized.Outputs()
	assert.True(t, outputs[0].Var.Shape().Equal(S(F32, 4, 2, 3)), "got %s", outputs[0].Var.Shape())
	assert.True(t, outputs[1].Var.Shape().Equal(S(dtypes.Int32, 4, 6)), "got %s", outputs[1].Var.Shape())

	refined, err := g.Refine(map[string]shapes.Shape{"x": S(F32, 5, 6)})
	require.NoError(t, err)
	assert.True(t, refined.Outputs()[0].Var.Shape().Equal(S(F32, 5, 2, 3)))
}

func TestRefineSharedAxes(t *testing.T) {
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, "N", 3))
	z := input(t, b, "z", SS(F32, "N", 3))
	g, err := b.BuildOutputs(Output{Name: "y", Var: add(t, b, 13, x, z)})
	require.NoError(t, err)

	// Binding N through x also fixes z.
	refined, err := g.Refine(map[string]shapes.Shape{"x": S(F32, 4, 3)})
	require.NoError(t, err)
	assert.True(t, refined.Inputs()[1].Shape().Equal(S(F32, 4, 3)), "got %s", refined.Inputs()[1].Shape())
	assert.True(t, refined.Outputs()[0].Var.Shape().Equal(S(F32, 4, 3)))

	_, err = g.Refine(map[string]shapes.Shape{"x": S(F32, 4, 3), "z": S(F32, 5, 3)})
	require.ErrorIs(t, err, errs.ErrType)
	require.Contains(t, err.Error(), `"N"`)
}

func TestDeferredAxisCheck(t *testing.T) {
	b := NewBuilder(testTable, WithTraces(true))
	x := input(t, b, "x", shapes.MakeUnknownRank(F32))
	outputs, err := b.AddNode("Softmax", "", 13, []*Var{x}, attributes.Map{"axis": attributes.IntValue(3)}, 1)
	require.NoError(t, err)
	require.NotNil(t, b.Producer(outputs[0]).Trace())
	g, err := b.Build(outputs[0])
	require.NoError(t, err)

	refined, err := g.Refine(map[string]shapes.Shape{"x": S(F32, 2, 2, 2, 2)})
	require.NoError(t, err)
	assert.Equal(t, 4, refined.Outputs()[0].Var.Rank())

	_, err = g.Refine(map[string]shapes.Shape{"x": S(F32, 2, 2)})
	require.ErrorIs(t, err, errs.ErrInference)
	require.Contains(t, fmt.Sprintf("%+v", err), "Softmax_0")
}

func TestEquivalent(t *testing.T) {
	build := func(version int, secondOutput bool) *Graph {
		b := NewBuilder(testTable)
		x := input(t, b, "x", SS(F32, 2, "N"))
		y := add(t, b, version, x, x)
		outputs := []Output{{Name: "y", Var: add(t, b, version, y, x)}}
		if secondOutput {
			outputs = append(outputs, Output{Name: "y2", Var: y})
		}
		g, err := b.BuildOutputs(outputs...)
		require.NoError(t, err)
		return g
	}
	require.NoError(t, Equivalent(build(13, false), build(13, false)))
	err := Equivalent(build(13, false), build(14, false))
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)
	err = Equivalent(build(13, false), build(13, true))
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)

	// Different dependency structure.
	b := NewBuilder(testTable)
	x := input(t, b, "x", SS(F32, 2, "N"))
	y := add(t, b, 13, x, x)
	g, err := b.BuildOutputs(Output{Name: "y", Var: add(t, b, 13, y, y)})
	require.NoError(t, err)
	err = Equivalent(build(13, false), g)
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)
	require.Contains(t, err.Error(), "input #1")
}

func TestTry(t *testing.T) {
	require.NoError(t, Try(func() {}))
	err := Try(func() { panic(errs.Newf(errs.TypeError, "bad type")) })
	require.ErrorIs(t, err, errs.ErrType)
	require.Panics(t, func() { _ = Try(func() { panic("not an error") }) })
	require.Panics(t, func() { NewBuilder(nil) })
}

func TestConcurrentBuilders(t *testing.T) {
	var group errgroup.Group
	graphs := make([]*Graph, 8)
	for ii := range graphs {
		group.Go(func() error {
			b := NewBuilder(testTable, WithName(fmt.Sprintf("g%d", ii)))
			x, err := b.DeclareInput("x", S(F32, ii+1))
			if err != nil {
				return err
			}
			y, err := b.AddNode("Add", "", 13, []*Var{x, x}, nil, 1)
			if err != nil {
				return err
			}
			graphs[ii], err = b.Build(y...)
			return err
		})
	}
	require.NoError(t, group.Wait())
	for ii, g := range graphs {
		assert.Equal(t, fmt.Sprintf("g%d", ii), g.Name())
		assert.True(t, g.Outputs()[0].Var.Shape().Equal(S(F32, ii+1)))
	}
}
