// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// Unary is the rule of operators whose single output has the type of the first input: Abs, Neg, Relu, Identity,
// Clip, etc.
func Unary(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	return repeat(input, req.NumOutputs), nil
}

// Broadcasting is the rule of elementwise operators over any number of inputs (Add, Mul, And, Max, Sum, ...): the
// output has the dtype of the first input and the multidirectional broadcast of the input dimensions.
//
// It also serves Pow, whose exponent can have a different dtype.
func Broadcasting(req *Request) ([]shapes.Shape, error) {
	output, err := req.broadcastInputs(dtypes.InvalidDType)
	if err != nil {
		return nil, err
	}
	return []shapes.Shape{output}, nil
}

// Comparison is the rule of Equal, Greater, Less, GreaterOrEqual and LessOrEqual: a broadcasting operator
// whose output is Bool.
func Comparison(req *Request) ([]shapes.Shape, error) {
	output, err := req.broadcastInputs(dtypes.Bool)
	if err != nil {
		return nil, err
	}
	return []shapes.Shape{output}, nil
}

// Where broadcasts its condition and both branches; the output has the dtype of the branches.
func Where(req *Request) ([]shapes.Shape, error) {
	onTrue, err := req.Input(1)
	if err != nil {
		return nil, err
	}
	output, err := req.broadcastInputs(onTrue.DType)
	if err != nil {
		return nil, err
	}
	return []shapes.Shape{output}, nil
}

// Cast keeps the dimensions of the input and converts to the dtype given by the "to" attribute.
func Cast(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	to, err := req.AttrInt("to", 0)
	if err != nil {
		return nil, err
	}
	dtype := dtypes.DType(to)
	if !dtype.IsValid() {
		return nil, req.Errorf("invalid target dtype %d", to)
	}
	return []shapes.Shape{input.WithDType(dtype)}, nil
}

// Clip keeps the type of its input. The optional min and max inputs must be scalars.
func Clip(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	for ii := 1; ii < len(req.Inputs); ii++ {
		if req.Has(ii) && req.Inputs[ii].HasRank() && req.Inputs[ii].Rank() != 0 {
			return nil, req.Errorf("bounds must be scalars, got %s for input #%d", req.Inputs[ii], ii)
		}
	}
	return []shapes.Shape{input}, nil
}
