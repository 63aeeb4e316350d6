// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"

	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
)

// VarId is the index of a Var in its Builder.
type VarId int

// InvalidVarId is used to indicate an invalid Var.
const InvalidVarId = VarId(-1)

// VarKind defines where the value of a Var comes from.
type VarKind int

const (
	// NodeOutput is the value of one of the outputs of a Node.
	NodeOutput VarKind = iota

	// GraphInput is a declared input of the graph, possibly with a default value.
	GraphInput

	// InitializerVar is a named constant of the graph.
	InitializerVar
)

// String implements fmt.Stringer.
func (k VarKind) String() string {
	switch k {
	case NodeOutput:
		return "NodeOutput"
	case GraphInput:
		return "GraphInput"
	case InitializerVar:
		return "Initializer"
	}
	return fmt.Sprintf("VarKind(%d)", int(k))
}

// Var is an immutable handle to a value in a graph: a declared input, an initializer or an output of a Node.
//
// Vars are compared by identity. They are created by a Builder, and they can only be used with the Builder that
// created them.
type Var struct {
	builder *Builder
	id      VarId
	kind    VarKind
	shape   shapes.Shape

	// producer and outputIndex are set for NodeOutput vars.
	producer    NodeId
	outputIndex int

	// name is set for declared inputs and initializers.
	name string

	// value is the constant value of the Var, if known at build time.
	value *tensors.Tensor

	// defaultValue of an input declared with InputWithDefault.
	defaultValue *tensors.Tensor

	// origin is set for vars created by UnsafeCast and UnsafeReshape: it is the var whose value it aliases.
	// reshaped tells which of the two created it.
	origin   *Var
	reshaped bool
}

// Builder that created the Var.
func (v *Var) Builder() *Builder { return v.builder }

// Id of the Var, unique within its Builder.
func (v *Var) Id() VarId { return v.id }

// Kind of the Var.
func (v *Var) Kind() VarKind { return v.kind }

// Shape returns the symbolic type of the Var: its dtype and (possibly partially known) dimensions.
func (v *Var) Shape() shapes.Shape { return v.shape }

// DType returns the element type of the Var.
func (v *Var) DType() dtypes.DType { return v.shape.DType }

// Rank of the Var, or -1 if it is not known.
func (v *Var) Rank() int {
	if !v.shape.HasRank() {
		return -1
	}
	return v.shape.Rank()
}

// Producer returns the id of the Node that produces the Var, or InvalidNodeId for declared inputs and
// initializers.
func (v *Var) Producer() NodeId { return v.producer }

// OutputIndex returns which output of its producer the Var is.
func (v *Var) OutputIndex() int { return v.outputIndex }

// Name returns the declared name of graph inputs and initializers, and "" for other Vars.
// The names of node outputs are only assigned by Builder.Build, see Graph.VarName.
func (v *Var) Name() string { return v.root().name }

// Value returns the constant value of the Var, if it is known at build time, or nil otherwise.
// Known values come from initializers, from Constant nodes, and are propagated through some operators.
//
// The returned tensor must not be modified.
func (v *Var) Value() *tensors.Tensor { return v.value }

// DefaultValue returns the default value of an input declared with Builder.InputWithDefault, or nil.
func (v *Var) DefaultValue() *tensors.Tensor { return v.defaultValue }

// IsAlias returns whether the Var was created by UnsafeCast or UnsafeReshape.
func (v *Var) IsAlias() bool { return v.origin != nil }

// root returns the Var that actually holds the value.
func (v *Var) root() *Var {
	for v.origin != nil {
		v = v.origin
	}
	return v
}

// String implements fmt.Stringer.
func (v *Var) String() string {
	if v == nil {
		return "Var(nil)"
	}
	root := v.root()
	switch root.kind {
	case GraphInput, InitializerVar:
		return fmt.Sprintf("Var#%d(%s %q: %s)", v.id, root.kind, root.name, v.shape)
	}
	if v.builder != nil && int(root.producer) < len(v.builder.nodes) && root.producer >= 0 {
		node := v.builder.nodes[root.producer]
		return fmt.Sprintf("Var#%d(%s#%d[%d]: %s)", v.id, node.op, node.id, root.outputIndex, v.shape)
	}
	return fmt.Sprintf("Var#%d(%s)", v.id, v.shape)
}

// UnsafeCast returns a new Var that aliases the value of v with an overridden type. No node is emitted, the type
// is simply asserted.
//
// The dtype may change, but not the size in bytes of the elements, and the rank and known dimensions must
// remain compatible.
func UnsafeCast(v *Var, shape shapes.Shape) (*Var, error) {
	if err := checkOverride(v, shape, "UnsafeCast"); err != nil {
		return nil, err
	}
	if v.DType() != shape.DType && v.DType().Size() != shape.DType.Size() {
		return nil, errs.At(errs.Newf(errs.TypeError,
			"can't cast %s elements (%d bytes) to %s (%d bytes)", v.DType(), v.DType().Size(),
			shape.DType, shape.DType.Size()), "UnsafeCast", v.String())
	}
	if !v.shape.WithDType(shape.DType).Compatible(shape) {
		return nil, errs.At(errs.Newf(errs.TypeError, "can't override type %s with %s", v.shape, shape),
			"UnsafeCast", v.String())
	}
	return v.builder.newAlias(v, shape), nil
}

// UnsafeReshape returns a new Var that aliases the value of v with overridden dimensions. No node is emitted.
// The dtype must be kept, and when both shapes are fully known, their sizes must match.
func UnsafeReshape(v *Var, shape shapes.Shape) (*Var, error) {
	if err := checkOverride(v, shape, "UnsafeReshape"); err != nil {
		return nil, err
	}
	if v.DType() != shape.DType {
		return nil, errs.At(errs.Newf(errs.TypeError, "can't change dtype from %s to %s", v.DType(), shape.DType),
			"UnsafeReshape", v.String())
	}
	if v.shape.IsFullyKnown() && shape.IsFullyKnown() && v.shape.Size() != shape.Size() {
		return nil, errs.At(errs.Newf(errs.TypeError, "can't reshape %s (%d elements) to %s (%d elements)",
			v.shape, v.shape.Size(), shape, shape.Size()), "UnsafeReshape", v.String())
	}
	alias := v.builder.newAlias(v, shape)
	alias.reshaped = true
	return alias, nil
}

func checkOverride(v *Var, shape shapes.Shape, op string) error {
	if v == nil || v.builder == nil {
		return errs.At(errs.Newf(errs.ScopeError, "nil or invalid Var"), op, "")
	}
	if err := v.builder.checkNotFrozen(op); err != nil {
		return err
	}
	if !shape.Ok() {
		return errs.At(errs.Newf(errs.TypeError, "invalid type override %s", shape), op, v.String())
	}
	return nil
}
