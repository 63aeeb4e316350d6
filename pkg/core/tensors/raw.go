// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"bytes"
	"encoding/binary"
	"reflect"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// FromFlat creates a tensor from a flat slice whose element type must be the Go type of dtype.
// The slice is copied.
func FromFlat(dtype dtypes.DType, dimensions []int, flat any) (*Tensor, error) {
	if !dtype.IsValid() {
		return nil, errors.Errorf("FromFlat: invalid dtype %s", dtype)
	}
	shape := shapes.Make(dtype, dimensions...)
	if !shape.IsFullyKnown() {
		return nil, errors.Errorf("FromFlat: dimensions %v must be known", dimensions)
	}
	flatV := reflect.ValueOf(flat)
	wantT := reflect.SliceOf(dtype.GoType())
	if !flatV.IsValid() || flatV.Type() != wantT {
		return nil, errors.Errorf("FromFlat: dtype %s requires a %s, got %T", dtype, wantT, flat)
	}
	if flatV.Len() != shape.Size() {
		return nil, errors.Errorf("FromFlat(%s): got %d values, wanted %d", shape, flatV.Len(), shape.Size())
	}
	copyV := reflect.MakeSlice(wantT, flatV.Len(), flatV.Len())
	reflect.Copy(copyV, flatV)
	return &Tensor{shape: shape, flat: copyV.Interface()}, nil
}

// FromRaw creates a tensor from the little-endian raw encoding used by ONNX's TensorProto.raw_data.
// String tensors have no raw encoding.
func FromRaw(dtype dtypes.DType, dimensions []int, raw []byte) (*Tensor, error) {
	if dtype == dtypes.String || !dtype.IsValid() {
		return nil, errors.Errorf("FromRaw: dtype %s has no raw encoding", dtype)
	}
	shape := shapes.Make(dtype, dimensions...)
	if !shape.IsFullyKnown() {
		return nil, errors.Errorf("FromRaw: dimensions %v must be known", dimensions)
	}
	if want := shape.Size() * dtype.Size(); len(raw) != want {
		return nil, errors.Errorf("FromRaw(%s): raw data has %d bytes, wanted %d", shape, len(raw), want)
	}
	t := FromShape(shape)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, t.flat); err != nil {
		return nil, errors.Wrapf(err, "FromRaw(%s): failed to decode raw data", shape)
	}
	return t, nil
}

// Bytes returns the little-endian raw encoding of the values, as used by ONNX's TensorProto.raw_data.
// It returns an error for String tensors.
func (t *Tensor) Bytes() ([]byte, error) {
	if t.DType() == dtypes.String {
		return nil, errors.New("string tensors have no raw encoding")
	}
	buf := make([]byte, 0, t.Size()*t.DType().Size())
	buf, err := binary.Append(buf, binary.LittleEndian, t.flat)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode tensor %s", t.shape)
	}
	return buf, nil
}

// Strings returns the values of a String tensor. The returned slice must not be modified.
func (t *Tensor) Strings() ([]string, error) {
	strs, ok := t.flat.([]string)
	if !ok {
		return nil, errors.Errorf("tensor of dtype %s is not a string tensor", t.DType())
	}
	return strs, nil
}
