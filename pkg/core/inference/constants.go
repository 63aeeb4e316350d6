// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"math"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
)

// constantAttrs are the attributes of Constant that can hold its value. Exactly one must be set.
var constantAttrs = []string{
	"value", "value_float", "value_floats", "value_int", "value_ints", "value_string", "value_strings",
}

// ConstantValue returns the value of a Constant operator given its attributes.
func ConstantValue(attrs attributes.Map) (*tensors.Tensor, error) {
	var (
		name  string
		value attributes.Value
	)
	for _, candidate := range constantAttrs {
		if v, found := attrs[candidate]; found {
			if name != "" {
				return nil, errorf("only one of the attributes %q and %q can be set", name, candidate)
			}
			name, value = candidate, v
		}
	}
	if name == "" {
		return nil, errorf("one of the attributes %v must be set", constantAttrs)
	}
	switch value.Kind() {
	case attributes.Tensor:
		return value.Tensor(), nil
	case attributes.Float:
		return tensors.FromScalar(value.Float()), nil
	case attributes.Floats:
		return tensors.FromFlatDataAndDimensions(value.Floats(), len(value.Floats())), nil
	case attributes.Int:
		return tensors.FromScalar(value.Int()), nil
	case attributes.Ints:
		return tensors.FromFlatDataAndDimensions(value.Ints(), len(value.Ints())), nil
	case attributes.String:
		return tensors.FromScalar(value.Str()), nil
	case attributes.Strings:
		return tensors.FromFlatDataAndDimensions(value.Strings(), len(value.Strings())), nil
	}
	return nil, errorf("attribute %q has unsupported kind %s", name, value.Kind())
}

// Constant's output has the type of the value given in one of its attributes.
func Constant(req *Request) ([]shapes.Shape, error) {
	value, err := ConstantValue(req.Attrs)
	if err != nil {
		return nil, errs.At(err, req.Op, "")
	}
	if value == nil {
		return nil, req.Errorf("missing value")
	}
	return []shapes.Shape{value.Shape()}, nil
}

// ConstantOfShape creates a tensor with the dimensions given by the value of its input, filled with the
// single-element tensor given by the "value" attribute (by default a Float32 zero).
func ConstantOfShape(req *Request) ([]shapes.Shape, error) {
	target, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	if target.HasRank() && target.Rank() != 1 {
		return nil, req.Errorf("target shape must be a 1D tensor, got %s", target)
	}
	fill, err := req.Attrs.GetTensor("value")
	if err != nil {
		return nil, req.Errorf("%v", err)
	}
	dtype := dtypes.Float32
	if fill != nil {
		if fill.Size() != 1 {
			return nil, req.Errorf("value must have exactly one element, got %s", fill.Shape())
		}
		dtype = fill.DType()
	}
	values, known, err := req.InputInts(0)
	if err != nil {
		return nil, err
	}
	if !known {
		if target.HasRank() && target.Dimensions[0] != shapes.DimUnknown {
			return []shapes.Shape{unknownDims(dtype, target.Dimensions[0])}, nil
		}
		return []shapes.Shape{shapes.MakeUnknownRank(dtype)}, nil
	}
	dims, err := dimsFromValues(values)
	if err != nil {
		return nil, req.Errorf("%v", err)
	}
	return []shapes.Shape{shapes.Make(dtype, dims...)}, nil
}

// shapeRange returns the [start, end) range of axes selected by the Shape operator, for the given rank.
func shapeRange(req *Request, rank int) (start, end int, err error) {
	startAttr, err := req.AttrInt("start", 0)
	if err != nil {
		return 0, 0, err
	}
	endAttr, err := req.AttrInt("end", int64(rank))
	if err != nil {
		return 0, 0, err
	}
	clamp := func(v int64) int {
		if v < 0 {
			v += int64(rank)
		}
		return int(min(max(v, 0), int64(rank)))
	}
	start, end = clamp(startAttr), clamp(endAttr)
	return start, max(start, end), nil
}

// Shape returns a 1D Int64 tensor with the dimensions of its input, optionally sliced by "start" and "end".
func Shape(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	if !input.HasRank() {
		return []shapes.Shape{shapes.Make(dtypes.Int64, shapes.DimUnknown)}, nil
	}
	start, end, err := shapeRange(req, input.Rank())
	if err != nil {
		return nil, err
	}
	return []shapes.Shape{shapes.Make(dtypes.Int64, end-start)}, nil
}

// Size returns an Int64 scalar.
func Size(req *Request) ([]shapes.Shape, error) {
	if _, err := req.Input(0); err != nil {
		return nil, err
	}
	return []shapes.Shape{shapes.Scalar(dtypes.Int64)}, nil
}

// Range returns a 1D tensor with the dtype of "start". Its dimension is known when start, limit and delta are
// known constants.
func Range(req *Request) ([]shapes.Shape, error) {
	for ii := range 3 {
		input, err := req.Input(ii)
		if err != nil {
			return nil, err
		}
		if input.HasRank() && input.Rank() != 0 {
			return nil, req.Errorf("start, limit and delta must be scalars, got %s for input #%d", input, ii)
		}
	}
	dtype := req.Inputs[0].DType
	var bounds [3]float64
	for ii := range 3 {
		value := req.Value(ii)
		if value == nil {
			return []shapes.Shape{shapes.Make(dtype, shapes.DimUnknown)}, nil
		}
		v, err := tensors.ToScalar[float64](value)
		if err != nil {
			return nil, req.Errorf("input #%d: %v", ii, err)
		}
		bounds[ii] = v
	}
	start, limit, delta := bounds[0], bounds[1], bounds[2]
	if delta == 0 {
		return nil, req.Errorf("delta can't be 0")
	}
	n := int(math.Ceil((limit - start) / delta))
	return []shapes.Shape{shapes.Make(dtype, max(n, 0))}, nil
}

// RandomFromShape is the rule of RandomNormal and RandomUniform: the output has the dimensions given by the
// "shape" attribute and the dtype given by the "dtype" attribute (by default Float32).
func RandomFromShape(req *Request) ([]shapes.Shape, error) {
	dims, found, err := req.AttrInts("shape")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, req.Errorf("missing attribute \"shape\"")
	}
	dtype, err := randomDType(req, dtypes.Float32)
	if err != nil {
		return nil, err
	}
	intDims, err := dimsFromValues(dims)
	if err != nil {
		return nil, req.Errorf("%v", err)
	}
	return []shapes.Shape{shapes.Make(dtype, intDims...)}, nil
}

// RandomLike is the rule of RandomNormalLike and RandomUniformLike: the output has the dimensions of the input and
// the dtype given by the "dtype" attribute, by default the dtype of the input.
func RandomLike(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	dtype, err := randomDType(req, input.DType)
	if err != nil {
		return nil, err
	}
	return []shapes.Shape{input.WithDType(dtype)}, nil
}

func randomDType(req *Request, defaultDType dtypes.DType) (dtypes.DType, error) {
	code, err := req.AttrInt("dtype", int64(defaultDType))
	if err != nil {
		return dtypes.InvalidDType, err
	}
	dtype := dtypes.DType(code)
	if !dtype.IsFloat() {
		return dtypes.InvalidDType, req.Errorf("dtype must be a float type, got %s", dtype)
	}
	return dtype, nil
}

// Normalizer (ai.onnx.ml) normalizes each row of a matrix (or a vector) with the "norm" given: "MAX", "L1" or "L2".
// The output is always Float32.
func Normalizer(req *Request) ([]shapes.Shape, error) {
	input, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	norm, err := req.AttrString("norm", "MAX")
	if err != nil {
		return nil, err
	}
	switch norm {
	case "MAX", "L1", "L2":
	default:
		return nil, req.Errorf("unknown norm %q, it must be one of MAX, L1 or L2", norm)
	}
	if input.HasRank() && input.Rank() != 1 && input.Rank() != 2 {
		return nil, req.Errorf("input must be a vector or a matrix, got %s", input)
	}
	return []shapes.Shape{input.WithDType(dtypes.Float32)}, nil
}
