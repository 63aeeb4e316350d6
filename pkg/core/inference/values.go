// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"reflect"

	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
)

// ConstantValues propagates the value of a Constant operator.
func ConstantValues(req *Request, _ []shapes.Shape) ([]*tensors.Tensor, error) {
	value, err := ConstantValue(req.Attrs)
	if err != nil {
		return nil, errs.At(err, req.Op, "")
	}
	return []*tensors.Tensor{value}, nil
}

// IdentityValues propagates the value of the input unchanged.
func IdentityValues(req *Request, _ []shapes.Shape) ([]*tensors.Tensor, error) {
	return []*tensors.Tensor{req.Value(0)}, nil
}

// ReshapeValues propagates the value of the input with the (fully known) dimensions of the output. It serves
// Reshape, Squeeze, Unsqueeze and Flatten.
func ReshapeValues(req *Request, outputs []shapes.Shape) ([]*tensors.Tensor, error) {
	value := req.Value(0)
	if value == nil || !outputs[0].IsFullyKnown() {
		return nil, nil
	}
	reshaped, err := tensors.FromFlat(value.DType(), outputs[0].Dimensions, value.Flat())
	if err != nil {
		return nil, errs.At(errs.Wrap(errs.InternalInferenceError, err), req.Op, "")
	}
	return []*tensors.Tensor{reshaped}, nil
}

// ShapeValues computes the value of Shape when the selected dimensions of the input are known.
func ShapeValues(req *Request, _ []shapes.Shape) ([]*tensors.Tensor, error) {
	input := req.Inputs[0]
	if !input.HasRank() {
		return nil, nil
	}
	start, end, err := shapeRange(req, input.Rank())
	if err != nil {
		return nil, err
	}
	dims := make([]int64, 0, end-start)
	for _, d := range input.Dimensions[start:end] {
		if d == shapes.DimUnknown {
			return nil, nil
		}
		dims = append(dims, int64(d))
	}
	return []*tensors.Tensor{tensors.FromFlatDataAndDimensions(dims, len(dims))}, nil
}

// SizeValues computes the value of Size when the input is fully known.
func SizeValues(req *Request, _ []shapes.Shape) ([]*tensors.Tensor, error) {
	size := req.Inputs[0].Size()
	if size < 0 {
		return nil, nil
	}
	return []*tensors.Tensor{tensors.FromScalar(int64(size))}, nil
}

// isConvertible returns whether values of the dtype can be converted with reflect.Value.Convert.
func isConvertible(dtype dtypes.DType) bool {
	switch dtype.GoType().Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// Float16 and BFloat16 are stored as uint16 bits, and can't be converted numerically.
		return !dtype.IsFloat16()
	}
	return false
}

// CastValues converts the value of the input, for the numeric dtypes whose Go types convert directly.
func CastValues(req *Request, outputs []shapes.Shape) ([]*tensors.Tensor, error) {
	value := req.Value(0)
	to := outputs[0].DType
	if value == nil || !isConvertible(value.DType()) || !isConvertible(to) {
		return nil, nil
	}
	from := reflect.ValueOf(value.Flat())
	converted := reflect.MakeSlice(reflect.SliceOf(to.GoType()), from.Len(), from.Len())
	for ii := range from.Len() {
		converted.Index(ii).Set(from.Index(ii).Convert(to.GoType()))
	}
	result, err := tensors.FromFlat(to, value.Shape().Dimensions, converted.Interface())
	if err != nil {
		return nil, errs.At(errs.Wrap(errs.InternalInferenceError, err), req.Op, "")
	}
	return []*tensors.Tensor{result}, nil
}

// ConcatValues concatenates known 1D inputs, the usual case of shapes being assembled in the graph.
func ConcatValues(req *Request, outputs []shapes.Shape) ([]*tensors.Tensor, error) {
	if outputs[0].Rank() != 1 {
		return nil, nil
	}
	output := outputs[0]
	flat := reflect.MakeSlice(reflect.SliceOf(output.DType.GoType()), 0, max(output.Size(), 0))
	for ii := range req.Inputs {
		value := req.Value(ii)
		if value == nil {
			return nil, nil
		}
		flat = reflect.AppendSlice(flat, reflect.ValueOf(value.Flat()))
	}
	result, err := tensors.FromFlat(output.DType, []int{flat.Len()}, flat.Interface())
	if err != nil {
		return nil, errs.At(errs.Wrap(errs.InternalInferenceError, err), req.Op, "")
	}
	return []*tensors.Tensor{result}, nil
}

// GatherValues gathers from known 1D data with known indices, the usual case of selecting dimensions of a shape.
func GatherValues(req *Request, outputs []shapes.Shape) ([]*tensors.Tensor, error) {
	data, indicesValue := req.Value(0), req.Value(1)
	if data == nil || indicesValue == nil || data.Rank() != 1 || !outputs[0].IsFullyKnown() {
		return nil, nil
	}
	indices, err := indicesValue.ToInt64s()
	if err != nil {
		return nil, errs.At(errs.Wrap(errs.InferenceError, err), req.Op, "")
	}
	dataV := reflect.ValueOf(data.Flat())
	n := int64(dataV.Len())
	flat := reflect.MakeSlice(dataV.Type(), len(indices), len(indices))
	for ii, index := range indices {
		if index < -n || index >= n {
			return nil, req.Errorf("index %d out of range for data %s", index, data.Shape())
		}
		if index < 0 {
			index += n
		}
		flat.Index(ii).Set(dataV.Index(int(index)))
	}
	result, err := tensors.FromFlat(data.DType(), outputs[0].Dimensions, flat.Interface())
	if err != nil {
		return nil, errs.At(errs.Wrap(errs.InternalInferenceError, err), req.Op, "")
	}
	return []*tensors.Tensor{result}, nil
}
