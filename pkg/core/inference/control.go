// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// AttrGraph returns the named graph attribute, or nil if it is not set.
func (r *Request) AttrGraph(name string) (attributes.Subgraph, error) {
	g, err := r.Attrs.GetGraph(name)
	if err != nil {
		return nil, errs.At(errs.Wrap(errs.InferenceError, err), r.Op, "")
	}
	return g, nil
}

// If infers the outputs of If from its branches, the "then_branch" and "else_branch" graph attributes.
//
// The condition must hold a single element, and the branches take no inputs. Both branches must have NumOutputs
// outputs with the same dtypes: where their types differ, the output type is the most specific one both branches
// refine.
func If(req *Request) ([]shapes.Shape, error) {
	cond, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	if size := cond.Size(); size >= 0 && size != 1 {
		return nil, req.Errorf("condition must have a single element, got %s", cond)
	}
	var branches [2][]shapes.Shape
	for ii, name := range []string{"then_branch", "else_branch"} {
		branch, err := req.AttrGraph(name)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, req.Errorf("missing %s", name)
		}
		if inputs := branch.InputShapes(); len(inputs) > 0 {
			return nil, req.Errorf("%s %q takes %d inputs, If branches take none", name, branch.Name(), len(inputs))
		}
		branches[ii] = branch.OutputShapes()
		if len(branches[ii]) != req.NumOutputs {
			return nil, req.Errorf("%s %q has %d outputs, %d requested", name, branch.Name(), len(branches[ii]),
				req.NumOutputs)
		}
	}
	outputs := make([]shapes.Shape, req.NumOutputs)
	for ii := range outputs {
		thenShape, elseShape := branches[0][ii], branches[1][ii]
		if thenShape.DType != elseShape.DType {
			return nil, req.Errorf("output #%d is %s in then_branch and %s in else_branch", ii, thenShape, elseShape)
		}
		outputs[ii] = commonShape(thenShape, elseShape)
	}
	return outputs, nil
}

// commonShape returns the most specific shape refined by both a and b, which must have the same dtype.
func commonShape(a, b shapes.Shape) shapes.Shape {
	if a.UnknownRank || b.UnknownRank || a.Rank() != b.Rank() {
		return shapes.MakeUnknownRank(a.DType)
	}
	dimsA, dimsB := dimsOf(a), dimsOf(b)
	dims := make([]dim, len(dimsA))
	for axis := range dims {
		if dimsA[axis] == dimsB[axis] {
			dims[axis] = dimsA[axis]
		} else {
			dims[axis] = unknownDim
		}
	}
	return makeShape(a.DType, dims)
}
