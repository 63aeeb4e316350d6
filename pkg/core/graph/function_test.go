// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"testing"

	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doubleFunction defines Double(x) = x + x, for vectors of any length.
func doubleFunction(t *testing.T) *Function {
	b := NewBuilder(testTable, WithName("double"), WithDocString("Doubles x."))
	x := input(t, b, "x", SS(F32, "N"))
	body, err := b.BuildOutputs(Output{Name: "y", Var: add(t, b, 13, x, x)})
	require.NoError(t, err)
	f, err := NewFunction(FunctionsDomain, "Double", body)
	require.NoError(t, err)
	return f
}

func TestFunction(t *testing.T) {
	f := doubleFunction(t)
	assert.Equal(t, "Function(spox.functions.Double)", f.String())
	assert.Equal(t, "Doubles x.", f.Binding().Doc)
	assert.True(t, f.Binding().Pure)
	table := testTable.Clone("graph_function_test")
	require.NoError(t, f.Register(table))
	table.Freeze()
	assert.Equal(t, 1, table.LatestVersion(FunctionsDomain))

	b := NewBuilder(table)
	v := input(t, b, "v", S(F32, 3))
	outputs, err := b.AddNode("Double", FunctionsDomain, 1, []*Var{v}, nil, 1)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.True(t, outputs[0].Shape().Equal(S(F32, 3)), "got %s", outputs[0].Shape())
	assert.Equal(t, f.Body(), b.Producer(outputs[0]).FunctionBody())

	// Arguments must match the declared inputs of the body.
	v64 := input(t, b, "v64", S(F64, 3))
	_, err = b.AddNode("Double", FunctionsDomain, 1, []*Var{v64}, nil, 1)
	require.ErrorIs(t, err, errs.ErrType)
	matrix := input(t, b, "matrix", S(F32, 2, 3))
	_, err = b.AddNode("Double", FunctionsDomain, 1, []*Var{matrix}, nil, 1)
	require.ErrorIs(t, err, errs.ErrType)

	g, err := b.Build(outputs[0])
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, []opset.Version{{Domain: "", Version: 13}, {Domain: FunctionsDomain, Version: 1}}, g.Opsets())
	assert.Equal(t, "Double_0", g.NodeName(g.Nodes()[0]))
}

func TestNewFunctionErrors(t *testing.T) {
	_, err := NewFunction(FunctionsDomain, "Nothing", nil)
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)

	b := NewBuilder(testTable)
	x := input(t, b, "x", S(F32, 2))
	body, err := b.Build(add(t, b, 13, x, x))
	require.NoError(t, err)
	_, err = NewFunction("", "Double", body)
	require.ErrorIs(t, err, errs.ErrScope)
	_, err = NewFunction(FunctionsDomain, "", body)
	require.ErrorIs(t, err, errs.ErrGraphIntegrity)

	outer := NewBuilder(testTable)
	sub := outer.Subgraph()
	subBody, err := sub.Build(add(t, sub, 13, input(t, outer, "y", S(F32, 2)), input(t, outer, "z", S(F32, 2))))
	require.NoError(t, err)
	_, err = NewFunction(FunctionsDomain, "Sum", subBody)
	require.ErrorIs(t, err, errs.ErrScope)
}
