// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"slices"

	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/support/xslices"
)

// Softmax is the rule of Softmax and LogSoftmax: the output has the type of the input, and the "axis"
// attribute must be valid for the input rank.
func Softmax(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	axis, err := req.AttrInt("axis", -1)
	if err != nil {
		return nil, err
	}
	if _, _, err := NormalizeAxis(axis, input); err != nil {
		return nil, req.Errorf("invalid axis for input %s: %v", input, err)
	}
	return []shapes.Shape{input}, nil
}

// Concat concatenates its inputs along "axis". All other axes must match.
func Concat(req *Request) ([]shapes.Shape, error) {
	if len(req.Inputs) == 0 {
		return nil, req.Errorf("requires at least one input")
	}
	axisAttr, err := req.AttrInt("axis", 0)
	if err != nil {
		return nil, err
	}
	dtype := req.Inputs[0].DType
	var (
		result     []dim
		axis       int
		sum        = 0
		sumUnknown = false
	)
	for ii, input := range req.Inputs {
		if !input.HasRank() {
			sumUnknown = true
			continue
		}
		if result == nil {
			if input.Rank() == 0 {
				return nil, req.Errorf("can't concatenate scalars")
			}
			axis, err = normalizeAxisForRank(axisAttr, input.Rank())
			if err != nil {
				return nil, req.Errorf("invalid axis for input %s: %v", input, err)
			}
			result = dimsOf(input)
		} else if input.Rank() != len(result) {
			return nil, req.Errorf("all inputs must have the same rank, input #%d is %s, expected rank %d",
				ii, input, len(result))
		}
		dims := dimsOf(input)
		for a, d := range dims {
			if a == axis {
				if d.known() {
					sum += d.size
				} else {
					sumUnknown = true
				}
				continue
			}
			matched, ok := matchDims(result[a], d)
			if !ok {
				return nil, req.Errorf("dimensions of axis %d don't match for inputs %v", a, req.Inputs)
			}
			result[a] = matched
		}
	}
	if result == nil {
		return []shapes.Shape{shapes.MakeUnknownRank(dtype)}, nil
	}
	result[axis] = unknownDim
	if !sumUnknown {
		result[axis] = dim{size: sum}
	}
	return []shapes.Shape{makeShape(dtype, result)}, nil
}

// Reshape takes the target shape from the value of its second input. A 0 copies the corresponding input dimension
// (unless "allowzero" is set) and one -1 is inferred from the remaining size.
func Reshape(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	target, err := req.Input(1)
	if err != nil {
		return nil, err
	}
	if target.HasRank() && target.Rank() != 1 {
		return nil, req.Errorf("target shape must be a 1D tensor, got %s", target)
	}
	allowZero, err := req.AttrInt("allowzero", 0)
	if err != nil {
		return nil, err
	}
	values, known, err := req.InputInts(1)
	if err != nil {
		return nil, err
	}
	if !known {
		if target.HasRank() && target.Dimensions[0] != shapes.DimUnknown {
			return []shapes.Shape{unknownDims(input.DType, target.Dimensions[0])}, nil
		}
		return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
	}

	output := make([]dim, len(values))
	inferred := -1
	knownSize := 1
	for ii, v := range values {
		switch {
		case v == -1:
			if inferred >= 0 {
				return nil, req.Errorf("at most one dimension can be -1, got %v", values)
			}
			inferred = ii
			continue
		case v == 0 && allowZero == 0:
			if !input.HasRank() {
				output[ii] = unknownDim
			} else if ii >= input.Rank() {
				return nil, req.Errorf("target shape %v copies dimension %d of input %s, which doesn't exist",
					values, ii, input)
			} else {
				output[ii] = dimsOf(input)[ii]
			}
		case v < 0:
			return nil, req.Errorf("invalid target shape %v", values)
		default:
			output[ii] = dim{size: int(v)}
		}
		if output[ii].known() && knownSize >= 0 {
			knownSize *= output[ii].size
		} else {
			knownSize = -1
		}
	}
	if inferred >= 0 {
		output[inferred] = unknownDim
		inputSize := input.Size()
		if knownSize > 0 && inputSize >= 0 {
			if inputSize%knownSize != 0 {
				return nil, req.Errorf("input %s can't be reshaped to %v", input, values)
			}
			output[inferred] = dim{size: inputSize / knownSize}
		}
	} else if inputSize := input.Size(); knownSize >= 0 && inputSize >= 0 && knownSize != inputSize {
		return nil, req.Errorf("input %s has %d elements, target shape %v has %d", input, inputSize, values, knownSize)
	}
	return []shapes.Shape{makeShape(input.DType, output)}, nil
}

// Transpose permutes the axes with the "perm" attribute, by default reversing them.
func Transpose(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	perm, found, err := req.AttrInts("perm")
	if err != nil {
		return nil, err
	}
	if !input.HasRank() {
		if found {
			return []shapes.Shape{unknownDims(input.DType, len(perm))}, nil
		}
		return []shapes.Shape{input}, nil
	}
	dims := dimsOf(input)
	if !found {
		output := slices.Clone(dims)
		slices.Reverse(output)
		return []shapes.Shape{makeShape(input.DType, output)}, nil
	}
	if len(perm) != len(dims) {
		return nil, req.Errorf("perm %v doesn't match the rank of the input %s", perm, input)
	}
	axes, err := normalizeAxes(perm, len(dims))
	if err != nil {
		return nil, req.Errorf("invalid perm %v for input %s: %v", perm, input, err)
	}
	output := make([]dim, len(dims))
	for ii, axis := range axes {
		output[ii] = dims[axis]
	}
	return []shapes.Shape{makeShape(input.DType, output)}, nil
}

// Squeeze removes the axes listed by the "axes" attribute (or second input), which must have dimension 1.
// Without axes, every axis of dimension 1 is removed.
func Squeeze(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	axes, known, given, err := req.IntsFromAttrOrInput("axes", 1)
	if err != nil {
		return nil, err
	}
	if !input.HasRank() || (given && !known) {
		return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
	}
	dims := dimsOf(input)
	remove := make([]bool, len(dims))
	if !given {
		for axis, d := range dims {
			if !d.known() {
				// Whether it is squeezed depends on its value.
				return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
			}
			remove[axis] = d.size == 1
		}
	} else {
		normalized, err := normalizeAxes(axes, len(dims))
		if err != nil {
			return nil, req.Errorf("invalid axes %v for input %s: %v", axes, input, err)
		}
		for _, axis := range normalized {
			if dims[axis].known() && dims[axis].size != 1 {
				return nil, req.Errorf("can't squeeze axis %d of input %s", axis, input)
			}
			remove[axis] = true
		}
	}
	output := make([]dim, 0, len(dims))
	for axis, d := range dims {
		if !remove[axis] {
			output = append(output, d)
		}
	}
	return []shapes.Shape{makeShape(input.DType, output)}, nil
}

// Unsqueeze inserts axes of dimension 1 at the positions (of the output) listed in the "axes" attribute, or second
// input.
func Unsqueeze(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	axes, known, given, err := req.IntsFromAttrOrInput("axes", 1)
	if err != nil {
		return nil, err
	}
	if !given {
		return nil, req.Errorf("axes must be given")
	}
	if !input.HasRank() || !known {
		return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
	}
	outputRank := input.Rank() + len(axes)
	normalized, err := normalizeAxes(axes, outputRank)
	if err != nil {
		return nil, req.Errorf("invalid axes %v for input %s: %v", axes, input, err)
	}
	inserted := make([]bool, outputRank)
	for _, axis := range normalized {
		inserted[axis] = true
	}
	dims := dimsOf(input)
	output := make([]dim, 0, outputRank)
	for axis := range outputRank {
		if inserted[axis] {
			output = append(output, dim{size: 1})
			continue
		}
		output = append(output, dims[0])
		dims = dims[1:]
	}
	return []shapes.Shape{makeShape(input.DType, output)}, nil
}

// Reduce is the rule of ReduceSum, ReduceMean, ReduceMax, etc.: it reduces the axes given by the "axes" attribute
// (or second input), by default all of them, keeping them with dimension 1 if "keepdims" is set.
func Reduce(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	keepDims, err := req.AttrInt("keepdims", 1)
	if err != nil {
		return nil, err
	}
	noopWithEmptyAxes, err := req.AttrInt("noop_with_empty_axes", 0)
	if err != nil {
		return nil, err
	}
	axes, known, given, err := req.IntsFromAttrOrInput("axes", 1)
	if err != nil {
		return nil, err
	}
	if given && !known {
		if keepDims != 0 && input.HasRank() {
			return []shapes.Shape{unknownDims(input.DType, input.Rank())}, nil
		}
		return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
	}
	if len(axes) == 0 && noopWithEmptyAxes != 0 {
		return []shapes.Shape{input}, nil
	}
	if !input.HasRank() {
		return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
	}
	dims := dimsOf(input)
	if len(axes) == 0 {
		axes = xslices.Iota(int64(0), len(dims))
	}
	normalized, err := normalizeAxes(axes, len(dims))
	if err != nil {
		return nil, req.Errorf("invalid axes %v for input %s: %v", axes, input, err)
	}
	reduced := make([]bool, len(dims))
	for _, axis := range normalized {
		reduced[axis] = true
	}
	output := make([]dim, 0, len(dims))
	for axis, d := range dims {
		switch {
		case !reduced[axis]:
			output = append(output, d)
		case keepDims != 0:
			output = append(output, dim{size: 1})
		}
	}
	return []shapes.Shape{makeShape(input.DType, output)}, nil
}

// Flatten reshapes the input to a matrix: the axes before "axis" are collapsed into the first dimension and the
// remaining ones into the second.
func Flatten(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	axis, err := req.AttrInt("axis", 1)
	if err != nil {
		return nil, err
	}
	if !input.HasRank() {
		return []shapes.Shape{unknownDims(input.DType, 2)}, nil
	}
	rank := input.Rank()
	if axis < -int64(rank) || axis > int64(rank) {
		return nil, req.Errorf("axis %d out of range for input %s", axis, input)
	}
	if axis < 0 {
		axis += int64(rank)
	}
	dims := dimsOf(input)
	return []shapes.Shape{makeShape(input.DType, []dim{product(dims[:axis]), product(dims[axis:])})}, nil
}

func product(dims []dim) dim {
	size := 1
	for _, d := range dims {
		if !d.known() {
			return unknownDim
		}
		size *= d.size
	}
	return dim{size: size}
}

// Gather selects slices of the data along "axis": the output dimensions are those of the data, with the
// gathered axis replaced by the dimensions of the indices.
func Gather(req *Request) ([]shapes.Shape, error) {
	data, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	indices, err := req.Input(1)
	if err != nil {
		return nil, err
	}
	axisAttr, err := req.AttrInt("axis", 0)
	if err != nil {
		return nil, err
	}
	axis, known, err := NormalizeAxis(axisAttr, data)
	if err != nil {
		return nil, req.Errorf("invalid axis for data %s: %v", data, err)
	}
	if !known || !indices.HasRank() {
		return []shapes.Shape{shapes.MakeUnknownRank(data.DType)}, nil
	}
	dims := dimsOf(data)
	output := slices.Concat(dims[:axis], dimsOf(indices), dims[axis+1:])
	return []shapes.Shape{makeShape(data.DType, output)}, nil
}

// Split divides the input along "axis" into NumOutputs parts, with sizes given by the "split" attribute (or second
// input), or equal parts otherwise. With "num_outputs", the last part may be smaller.
func Split(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	axisAttr, err := req.AttrInt("axis", 0)
	if err != nil {
		return nil, err
	}
	numOutputs, err := req.AttrInt("num_outputs", 0)
	if err != nil {
		return nil, err
	}
	if numOutputs != 0 && int(numOutputs) != req.NumOutputs {
		return nil, req.Errorf("num_outputs=%d doesn't match the %d requested outputs", numOutputs, req.NumOutputs)
	}
	sizes, known, given, err := req.IntsFromAttrOrInput("split", 1)
	if err != nil {
		return nil, err
	}
	if given && known && len(sizes) != req.NumOutputs {
		return nil, req.Errorf("split %v doesn't match the %d requested outputs", sizes, req.NumOutputs)
	}
	axis, rankKnown, err := NormalizeAxis(axisAttr, input)
	if err != nil {
		return nil, req.Errorf("invalid axis for input %s: %v", input, err)
	}
	if !rankKnown {
		return repeat(shapes.MakeUnknownRank(input.DType), req.NumOutputs), nil
	}
	dims := dimsOf(input)
	total := dims[axis]
	parts := make([]dim, req.NumOutputs)
	switch {
	case given && !known:
		for ii := range parts {
			parts[ii] = unknownDim
		}
	case given:
		sum := 0
		for ii, size := range sizes {
			if size < 0 {
				return nil, req.Errorf("invalid split sizes %v", sizes)
			}
			parts[ii] = dim{size: int(size)}
			sum += int(size)
		}
		if total.known() && total.size != sum {
			return nil, req.Errorf("split sizes %v don't add up to dimension %d of axis %d", sizes, total.size, axis)
		}
	case !total.known():
		for ii := range parts {
			parts[ii] = unknownDim
		}
	default:
		n := req.NumOutputs
		size := total.size / n
		if total.size%n != 0 {
			if numOutputs == 0 {
				return nil, req.Errorf("dimension %d of axis %d can't be split in %d equal parts", total.size, axis, n)
			}
			size = (total.size + n - 1) / n
		}
		remaining := total.size
		for ii := range parts {
			parts[ii] = dim{size: min(size, remaining)}
			remaining -= parts[ii].size
		}
	}
	outputs := make([]shapes.Shape, req.NumOutputs)
	for ii, part := range parts {
		output := slices.Clone(dims)
		output[axis] = part
		outputs[ii] = makeShape(input.DType, output)
	}
	return outputs, nil
}

// Expand broadcasts the input to the shape given by the value of the second input.
func Expand(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	target, err := req.Input(1)
	if err != nil {
		return nil, err
	}
	if target.HasRank() && target.Rank() != 1 {
		return nil, req.Errorf("target shape must be a 1D tensor, got %s", target)
	}
	values, known, err := req.InputInts(1)
	if err != nil {
		return nil, err
	}
	if !known {
		if input.HasRank() && target.HasRank() && target.Dimensions[0] != shapes.DimUnknown {
			return []shapes.Shape{unknownDims(input.DType, max(input.Rank(), target.Dimensions[0]))}, nil
		}
		return []shapes.Shape{shapes.MakeUnknownRank(input.DType)}, nil
	}
	dims, err := dimsFromValues(values)
	if err != nil {
		return nil, req.Errorf("invalid target shape: %v", err)
	}
	output, err := BroadcastShapes(input.DType, input, shapes.Make(input.DType, dims...))
	if err != nil {
		return nil, req.Errorf("input %s can't be expanded to %v: %v", input, values, err)
	}
	return []shapes.Shape{output}, nil
}

// dimsFromValues converts the value of a shape-like tensor to dimensions.
func dimsFromValues(values []int64) ([]int, error) {
	dims := make([]int, len(values))
	for ii, v := range values {
		if v < 0 {
			return nil, errs.Newf(errs.InferenceError, "negative dimension in %v", values)
		}
		dims[ii] = int(v)
	}
	return dims, nil
}
