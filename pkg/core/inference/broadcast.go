// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"strconv"

	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// dim is one axis of a shape: a concrete size, or shapes.DimUnknown with an optional symbolic name.
type dim struct {
	size int
	name string
}

var unknownDim = dim{size: shapes.DimUnknown}

func (d dim) known() bool { return d.size != shapes.DimUnknown }

func (d dim) String() string {
	if d.known() {
		return strconv.Itoa(d.size)
	}
	if d.name != "" {
		return d.name
	}
	return "?"
}

func dimsOf(s shapes.Shape) []dim {
	dims := make([]dim, s.Rank())
	for axis, size := range s.Dimensions {
		dims[axis] = dim{size: size}
		if size == shapes.DimUnknown {
			dims[axis].name = s.AxisName(axis)
		}
	}
	return dims
}

func makeShape(dtype dtypes.DType, dims []dim) shapes.Shape {
	s := shapes.Shape{DType: dtype, Dimensions: make([]int, len(dims))}
	for axis, d := range dims {
		s.Dimensions[axis] = d.size
		if !d.known() && d.name != "" {
			if s.AxisNames == nil {
				s.AxisNames = make([]string, len(dims))
			}
			s.AxisNames[axis] = d.name
		}
	}
	return s
}

// unknownDims returns a shape of the given rank with all dimensions unknown.
func unknownDims(dtype dtypes.DType, rank int) shapes.Shape {
	dims := make([]int, rank)
	for ii := range dims {
		dims[ii] = shapes.DimUnknown
	}
	return shapes.Make(dtype, dims...)
}

// broadcastDim combines two dimensions following ONNX multidirectional broadcasting.
//
// A dimension of 1 takes the other one. Two distinct symbols broadcast to an unknown dimension, a symbol
// against a concrete dimension > 1 gives the concrete dimension.
func broadcastDim(a, b dim) (dim, bool) {
	switch {
	case a.size == 1:
		return b, true
	case b.size == 1:
		return a, true
	case a.known() && b.known():
		return a, a.size == b.size
	case a.known():
		return a, true
	case b.known():
		return b, true
	case a.name != "" && a.name == b.name:
		return a, true
	}
	return unknownDim, true
}

// BroadcastShapes returns the multidirectional broadcast of the dimensions of the given shapes, with the given dtype.
// If any of the shapes has an unknown rank, the result has an unknown rank.
func BroadcastShapes(dtype dtypes.DType, inputs ...shapes.Shape) (shapes.Shape, error) {
	rank := 0
	for _, input := range inputs {
		if !input.HasRank() {
			return shapes.MakeUnknownRank(dtype), nil
		}
		rank = max(rank, input.Rank())
	}
	result := make([]dim, rank)
	for ii := range result {
		result[ii] = dim{size: 1}
	}
	for _, input := range inputs {
		dims := dimsOf(input)
		offset := rank - len(dims)
		for axis, d := range dims {
			combined, ok := broadcastDim(result[offset+axis], d)
			if !ok {
				return shapes.Invalid(), errs.Newf(errs.InferenceError,
					"shapes %v cannot be broadcast: dimensions %s and %s of axis %d (from the right) differ",
					inputs, result[offset+axis], d, len(dims)-axis)
			}
			result[offset+axis] = combined
		}
	}
	return makeShape(dtype, result), nil
}

// broadcastInputs broadcasts all the given inputs of the request, skipping omitted optional ones.
func (r *Request) broadcastInputs(dtype dtypes.DType) (shapes.Shape, error) {
	present := make([]shapes.Shape, 0, len(r.Inputs))
	for ii := range r.Inputs {
		if r.Has(ii) {
			present = append(present, r.Inputs[ii])
		}
	}
	if len(present) == 0 {
		return shapes.Invalid(), r.Errorf("no inputs to broadcast")
	}
	if dtype == dtypes.InvalidDType {
		dtype = present[0].DType
	}
	return BroadcastShapes(dtype, present...)
}
