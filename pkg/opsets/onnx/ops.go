// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package onnx holds the bindings of the operators of the default ONNX domain ("ai.onnx") and Ops, their typed
// wrappers.
//
// Most of the package is generated from schemas.yaml: edit the schemas and run go generate.
//
// The wrappers panic on errors, use graph.Try to recover them:
//
//	b := graph.NewBuilder(opsets.Stable)
//	op := onnx.New(b, 17)
//	err := graph.Try(func() {
//		x := must.M1(b.DeclareInput("x", shapes.Make(dtypes.Float32, 2, 3)))
//		y := op.Relu(op.Add(x, op.Const([]float32{1, 2, 3})))
//		...
//	})
package onnx

//go:generate go run ../../../internal/cmd/opset_generator -schemas=schemas.yaml -package=onnx

import (
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/spoxml/spox/pkg/opsets/typed"
)

// Attribute is an optional attribute of an operator, see Attr.
type Attribute = typed.Attribute

// Attr creates an optional attribute from a Go value, see typed.Attr for the accepted values.
func Attr(name string, value any) Attribute {
	return typed.Attr(name, value)
}

// Ops adds the operators of the default domain to a builder, at a fixed opset version.
type Ops struct {
	typed.Caller
}

// New returns the operators of the default domain at the given version.
// The version is checked when the operators are used.
func New(b *graph.Builder, version int) *Ops {
	return &Ops{Caller: typed.NewCaller(b, Domain, version)}
}

// Const adds a Constant holding the value, which can be a *tensors.Tensor, a Go scalar or a (multi-dimensional)
// slice of a supported type.
func (o *Ops) Const(value any) *graph.Var {
	t, err := tensors.FromAnyValue(value)
	if err != nil {
		panic(err)
	}
	return o.Constant(Attr("value", t))
}

// ConstInt64s adds a 1D Int64 Constant, the common type of shapes and axes.
func (o *Ops) ConstInt64s(values ...int64) *graph.Var {
	return o.Const(tensors.FromFlatDataAndDimensions(values, len(values)))
}

// CastTo is Cast with a dtypes.DType.
func (o *Ops) CastTo(input *graph.Var, dtype dtypes.DType) *graph.Var {
	return o.Cast(input, int64(dtype))
}

// Subgraph builds, with fn, a subgraph of the builder of o to be used as a graph attribute, like the branches of
// If. The operators of the subgraph are added at the version of o, and the values of the enclosing graphs can be
// used directly.
func (o *Ops) Subgraph(fn func(sub *Ops) []*graph.Var) *graph.Graph {
	sub := New(o.Builder().Subgraph(), o.Version())
	g, err := sub.Builder().Build(fn(sub)...)
	if err != nil {
		panic(err)
	}
	return g
}

// IfElse is If with the branches built by thenFn and elseFn, see Subgraph.
func (o *Ops) IfElse(cond *graph.Var, thenFn, elseFn func(sub *Ops) []*graph.Var) []*graph.Var {
	thenBranch, elseBranch := o.Subgraph(thenFn), o.Subgraph(elseFn)
	return o.If(cond, thenBranch, elseBranch, len(thenBranch.Outputs()))
}
