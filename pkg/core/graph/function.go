// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"

	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/support/xslices"
)

// FunctionsDomain is the usual domain of the operators defined with NewFunction.
const FunctionsDomain = "spox.functions"

// Function is an operator defined by a graph of other operators: a local function. Models using it carry its
// definition, so it needs no support from the runtime beyond the operators of its body.
//
// Calls to the function take the inputs of the body, in order, and return its outputs. The input types declared
// by the body are checked against the arguments, and the symbolic axes they name are bound to the dimensions of
// the arguments, to resolve the types of the outputs.
type Function struct {
	body    *Graph
	binding *opset.Binding
}

// NewFunction defines the operator domain.name with the given body.
//
// The body must be a top-level graph, and its inputs can't have default values. Its initializers become constants
// of the function.
func NewFunction(domain, name string, body *Graph) (*Function, error) {
	const op = "NewFunction"
	switch {
	case body == nil:
		return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "nil body"), op, name)
	case name == "":
		return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "function name can't be empty"), op, "")
	case opset.NormalizeDomain(domain) == opset.DefaultDomain:
		return nil, errs.At(errs.Newf(errs.ScopeError, "functions can't be defined in the default domain"),
			op, name)
	case body.IsSubgraph():
		return nil, errs.At(errs.Newf(errs.ScopeError, "body %q is a subgraph", body.name), op, name)
	}
	f := &Function{body: body}
	signature := &opset.Signature{TypeConstraints: make(map[string][]dtypes.DType)}
	for ii, v := range body.inputs {
		if v.defaultValue != nil {
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "input %q has a default value", v.name),
				op, name)
		}
		typeVar := fmt.Sprintf("I%d", ii)
		signature.Inputs = append(signature.Inputs, opset.Param{Name: v.name, TypeVar: typeVar})
		signature.TypeConstraints[typeVar] = []dtypes.DType{v.shape.DType}
	}
	for ii, output := range body.outputs {
		typeVar := fmt.Sprintf("O%d", ii)
		signature.Outputs = append(signature.Outputs, opset.Param{Name: output.Name, TypeVar: typeVar})
		signature.TypeConstraints[typeVar] = []dtypes.DType{output.Var.shape.DType}
	}
	pure := true
	for _, node := range body.nodes {
		pure = pure && node.binding.Pure
	}
	f.binding = &opset.Binding{
		Domain:       opset.NormalizeDomain(domain),
		OpType:       name,
		SinceVersion: 1,
		Signature:    signature,
		Rule:         f.infer,
		Pure:         pure,
		Doc:          body.docString,
		Body:         body,
	}
	return f, nil
}

// Domain of the function.
func (f *Function) Domain() string { return f.binding.Domain }

// Name of the function, its operator type.
func (f *Function) Name() string { return f.binding.OpType }

// Body returns the graph defining the function.
func (f *Function) Body() *Graph { return f.body }

// Binding returns the binding of the function, as registered by Register.
func (f *Function) Binding() *opset.Binding { return f.binding }

// String implements fmt.Stringer.
func (f *Function) String() string {
	return fmt.Sprintf("Function(%s.%s)", opset.DomainName(f.binding.Domain), f.binding.OpType)
}

// Register adds the function to an unfrozen table, declaring its domain if needed. Calls use version 1 of the
// domain.
//
// Usually the table is a clone of the table that built the body, see opset.Table.Clone.
func (f *Function) Register(table *opset.Table) error {
	if err := table.SupportDomain(f.binding.Domain, max(table.LatestVersion(f.binding.Domain), 1)); err != nil {
		return err
	}
	return table.Register(f.binding)
}

// infer checks the arguments against the declared inputs of the body and resolves the types of its outputs.
func (f *Function) infer(req *inference.Request) ([]shapes.Shape, error) {
	bindings := make(shapes.AxisBindings)
	for ii, v := range f.body.inputs {
		declared, actual := v.shape, req.Inputs[ii]
		if declared.UnknownRank || actual.UnknownRank {
			continue
		}
		if declared.Rank() != actual.Rank() {
			return nil, errs.Newf(errs.TypeError, "input %q of %s must have rank %d, got %s",
				v.name, f, declared.Rank(), actual)
		}
		for axis, dim := range actual.Dimensions {
			if dim == shapes.DimUnknown {
				continue
			}
			if name := declared.AxisName(axis); name != "" {
				if err := bindings.Merge(shapes.AxisBindings{name: dim}); err != nil {
					return nil, errs.Wrapf(errs.TypeError, err, "input %q of %s", v.name, f)
				}
			} else if declared.Dimensions[axis] != shapes.DimUnknown && declared.Dimensions[axis] != dim {
				return nil, errs.Newf(errs.TypeError, "input %q of %s must be %s, got %s", v.name, f, declared,
					actual)
			}
		}
	}
	return xslices.Map(f.body.outputs, func(output Output) shapes.Shape {
		return output.Var.shape.Resolve(bindings)
	}), nil
}

// FunctionBody returns the body of the operator of the node if it is a local function (see Function), or nil.
func (n *Node) FunctionBody() *Graph {
	body, _ := n.binding.Body.(*Graph)
	return body
}

// nested returns the graphs a node depends on: its subgraphs and the body of its local function.
func (n *Node) nested() []*Graph {
	nested := n.Subgraphs()
	if body := n.FunctionBody(); body != nil {
		nested = append(nested, body)
	}
	return nested
}
