// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package tensors implements `Tensor`, the literal multidimensional values embedded in a graph:
// initializers, `Constant` values and tensor-valued attributes.
//
// Tensors here never leave the host: they hold a flat Go slice of the element type (row-major) and a
// fully known shape. There are various ways to construct a Tensor:
//
//   - FromScalar[T](value T): a scalar.
//
//   - FromFlatDataAndDimensions[T](data []T, dimensions ...int): the given flattened values.
//     Example:
//
//     t := FromFlatDataAndDimensions([]int8{1, 2, 3, 4}, 2, 2) // Tensor with [[1,2], [3,4]]
//
//   - FromAnyValue(value any): a scalar or a regular multidimensional slice. Example:
//
//     t, err := FromAnyValue([][]float32{{1,2}, {3, 5}, {7, 11}})
//
//   - FromRaw(dtype, dimensions, raw): the little-endian raw data of an ONNX TensorProto.
//
// Tensors are immutable after construction.
package tensors

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// Tensor is an immutable literal value with a fully known shape.
type Tensor struct {
	shape shapes.Shape

	// flat holds a slice of the Go type of the dtype (see DType.GoType), in row-major order.
	flat any
}

// FromShape returns a tensor with the given shape filled with zero values.
// It panics if the shape is not fully known.
func FromShape(shape shapes.Shape) *Tensor {
	if !shape.Ok() || !shape.IsFullyKnown() {
		exceptions.Panicf("tensors.FromShape(%s): shape must be valid and fully known", shape)
	}
	flatV := reflect.MakeSlice(reflect.SliceOf(shape.DType.GoType()), shape.Size(), shape.Size())
	return &Tensor{shape: shape.Clone(), flat: flatV.Interface()}
}

// FromScalar creates a scalar tensor with the given value.
// The `DType` is inferred from the value.
func FromScalar[T dtypes.Supported](value T) *Tensor {
	return FromFlatDataAndDimensions([]T{value})
}

// FromFlatDataAndDimensions creates a tensor with the given dimensions, filled with the flattened values given in `data`.
// The data is copied to the Tensor.
// The `DType` is inferred from the `data` type.
//
// It panics if the size of data is wrong for the shape.
func FromFlatDataAndDimensions[T dtypes.Supported](data []T, dimensions ...int) *Tensor {
	dtype := dtypes.FromGenericsType[T]()
	shape := shapes.Make(dtype, dimensions...)
	if !shape.IsFullyKnown() || len(data) != shape.Size() {
		exceptions.Panicf(
			"FromFlatDataAndDimensions(%s): data size is %d, but dimensions size is %d",
			shape, len(data), shape.Size())
	}
	t := &Tensor{shape: shape}
	if ints, ok := any(data).([]int); ok {
		// Go `int` is stored with the platform's fixed-size dtype.
		flatV := reflect.MakeSlice(reflect.SliceOf(dtype.GoType()), len(ints), len(ints))
		for ii, v := range ints {
			flatV.Index(ii).SetInt(int64(v))
		}
		t.flat = flatV.Interface()
		return t
	}
	t.flat = slices.Clone(data)
	return t
}

// FromAnyValue creates a tensor from a scalar or a slice of slices with homogeneous dimensions.
// If the input is a *Tensor already, it is simply returned.
func FromAnyValue(value any) (*Tensor, error) {
	if valueT, ok := value.(*Tensor); ok {
		return valueT, nil
	}
	shape, err := shapes.FromAnyValue(value)
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot create tensor from %T", value)
	}
	t := FromShape(shape)
	flatV := reflect.ValueOf(t.flat)
	if shape.IsScalar() {
		setConverted(flatV.Index(0), reflect.ValueOf(value))
		return t, nil
	}
	if shape.Size() > 0 {
		copySlicesRecursively(flatV, reflect.ValueOf(value), shape.Strides())
	}
	return t, nil
}

// setConverted sets to with from, converting Go `int` values to the fixed-size storage type.
func setConverted(to, from reflect.Value) {
	if from.Type() == to.Type() {
		to.Set(from)
		return
	}
	to.Set(from.Convert(to.Type()))
}

// copySlicesRecursively copy values on a multi-dimension slice to a flat data slice
// assuming the strides for each dimension.
func copySlicesRecursively(data reflect.Value, mdSlice reflect.Value, strides []int) {
	if len(strides) == 1 {
		for ii := range mdSlice.Len() {
			setConverted(data.Index(ii), mdSlice.Index(ii))
		}
		return
	}
	subStrides := strides[1:]
	for ii := range mdSlice.Len() {
		start := ii * strides[0]
		end := (ii + 1) * strides[0]
		copySlicesRecursively(data.Slice(start, end), mdSlice.Index(ii), subStrides)
	}
}

// Shape of the tensor. It is always fully known.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType of the tensor elements.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Rank of the tensor.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// Size returns the number of elements.
func (t *Tensor) Size() int { return t.shape.Size() }

// IsScalar returns whether the tensor is a scalar.
func (t *Tensor) IsScalar() bool { return t.shape.IsScalar() }

// Memory returns the number of bytes used by the values. String tensors count the length of their strings.
func (t *Tensor) Memory() uintptr {
	if strs, ok := t.flat.([]string); ok {
		var total uintptr
		for _, s := range strs {
			total += uintptr(len(s))
		}
		return total
	}
	return t.shape.Memory()
}

// Flat returns the flat slice with the values, a slice of the dtype's Go type.
// The returned slice is shared with the tensor and must not be modified.
func (t *Tensor) Flat() any { return t.flat }

// CopyFlatData returns a copy of the flat values, if T matches the tensor's Go type.
func CopyFlatData[T dtypes.Supported](t *Tensor) ([]T, error) {
	flat, ok := t.flat.([]T)
	if !ok {
		var zero T
		return nil, errors.Errorf("tensor of dtype %s cannot be accessed as %T", t.DType(), zero)
	}
	return slices.Clone(flat), nil
}

// ToScalar returns the scalar value of the tensor, converted to T.
func ToScalar[T dtypes.Supported](t *Tensor) (T, error) {
	var zero T
	if t.Size() != 1 {
		return zero, errors.Errorf("tensor %s is not a scalar", t.shape)
	}
	v := reflect.ValueOf(t.flat).Index(0)
	target := reflect.TypeOf(zero)
	if !v.CanConvert(target) {
		return zero, errors.Errorf("tensor of dtype %s cannot be converted to %T", t.DType(), zero)
	}
	return v.Convert(target).Interface().(T), nil
}

// ToInt64s returns the values of an integer tensor converted to int64.
// This is how shape-like inputs (axes, target shapes, split sizes) are read.
func (t *Tensor) ToInt64s() ([]int64, error) {
	if !t.DType().IsInt() {
		return nil, errors.Errorf("tensor of dtype %s doesn't hold integers", t.DType())
	}
	flatV := reflect.ValueOf(t.flat)
	values := make([]int64, flatV.Len())
	for ii := range values {
		if t.DType().IsUnsigned() {
			values[ii] = int64(flatV.Index(ii).Uint())
		} else {
			values[ii] = flatV.Index(ii).Int()
		}
	}
	return values, nil
}

// Value returns a multidimensional slice (or a scalar) with a copy of the values.
func (t *Tensor) Value() any {
	flatV := reflect.ValueOf(t.flat)
	if t.IsScalar() {
		return flatV.Index(0).Interface()
	}
	return convertDataToSlices(flatV, t.shape.Dimensions...).Interface()
}

// convertDataToSlices creates a multidimensional slice with the given dimensions, with a copy of the flat data.
func convertDataToSlices(dataV reflect.Value, dimensions ...int) reflect.Value {
	if len(dimensions) == 1 {
		sliceV := reflect.MakeSlice(dataV.Type(), dataV.Len(), dataV.Len())
		reflect.Copy(sliceV, dataV)
		return sliceV
	}
	resultT := dataV.Type()
	for range dimensions[1:] {
		resultT = reflect.SliceOf(resultT)
	}
	slice := reflect.MakeSlice(resultT, dimensions[0], dimensions[0])
	stride := 1
	for _, dim := range dimensions[1:] {
		stride *= dim
	}
	for ii := range dimensions[0] {
		subData := dataV.Slice(ii*stride, (ii+1)*stride)
		slice.Index(ii).Set(convertDataToSlices(subData, dimensions[1:]...))
	}
	return slice
}

// Equal checks whether t and other have the same shape and values.
// NaN values are never equal.
func (t *Tensor) Equal(other *Tensor) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	v0, v1 := reflect.ValueOf(t.flat), reflect.ValueOf(other.flat)
	if v0.Len() != v1.Len() {
		return false
	}
	for ii := range v0.Len() {
		if !v0.Index(ii).Equal(v1.Index(ii)) {
			return false
		}
	}
	return true
}

// Key returns a canonical string that identifies the tensor's dtype, dimensions and values.
// Two tensors have the same key if and only if they have the same shape and bitwise-equal values.
func (t *Tensor) Key() string {
	var sb strings.Builder
	sb.WriteString(t.shape.String())
	if strs, ok := t.flat.([]string); ok {
		for _, s := range strs {
			_, _ = fmt.Fprintf(&sb, ":%q", s)
		}
		return sb.String()
	}
	raw, err := t.Bytes()
	if err != nil {
		exceptions.Panicf("Tensor.Key(): %+v", err)
	}
	_, _ = fmt.Fprintf(&sb, ":%x", raw)
	return sb.String()
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return t.Summary(DefaultMaxElements)
}
