// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the element kinds of ONNX tensors.
//
// It includes converters to/from Go native types (and reflect.Type), the grouping predicates used by
// operator type constraints (IsFloat, IsInt, ...) and the Supported constraint to be used with generics.
package dtypes

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Supported lists the Go types that can be used as tensor element values.
//
// Go's int maps to Int32 or Int64 depending on the platform.
type Supported interface {
	bool | float16.Float16 | bfloat16.BFloat16 |
		float32 | float64 | int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		complex64 | complex128 | string
}

// All lists every valid DType, in enum order.
var All = []DType{
	Float32, Uint8, Int8, Uint16, Int16, Int32, Int64, String, Bool,
	Float16, Float64, Uint32, Uint64, Complex64, Complex128, BFloat16,
}

// goTypes holds the Go type of the elements of each DType.
var goTypes = [...]reflect.Type{
	Float32:    reflect.TypeFor[float32](),
	Uint8:      reflect.TypeFor[uint8](),
	Int8:       reflect.TypeFor[int8](),
	Uint16:     reflect.TypeFor[uint16](),
	Int16:      reflect.TypeFor[int16](),
	Int32:      reflect.TypeFor[int32](),
	Int64:      reflect.TypeFor[int64](),
	String:     reflect.TypeFor[string](),
	Bool:       reflect.TypeFor[bool](),
	Float16:    reflect.TypeFor[float16.Float16](),
	Float64:    reflect.TypeFor[float64](),
	Uint32:     reflect.TypeFor[uint32](),
	Uint64:     reflect.TypeFor[uint64](),
	Complex64:  reflect.TypeFor[complex64](),
	Complex128: reflect.TypeFor[complex128](),
	BFloat16:   reflect.TypeFor[bfloat16.BFloat16](),
}

// kinds maps the reflect.Kind of the basic Go types to their DType. Named types (type Celsius float64) map
// through their kind.
var kinds = map[reflect.Kind]DType{}

func init() {
	for _, dtype := range All {
		if t := goTypes[dtype]; t.PkgPath() == "" {
			kinds[t.Kind()] = dtype
		}
	}
	if strconv.IntSize == 32 {
		kinds[reflect.Int] = Int32
	} else {
		kinds[reflect.Int] = Int64
	}

	for name, dtype := range MapOfNames {
		if lower := strings.ToLower(name); lower != name {
			if _, found := MapOfNames[lower]; !found {
				MapOfNames[lower] = dtype
			}
		}
	}
}

// FromName returns the DType for the given name, accepting the Go names ("Float32"), the short
// names ("F32"), the ONNX schema names ("float") and their lower-case versions.
func FromName(name string) (DType, error) {
	dtype, found := MapOfNames[name]
	if !found {
		dtype, found = MapOfNames[strings.ToLower(name)]
	}
	if !found {
		return InvalidDType, errors.Errorf("unknown dtype name %q", name)
	}
	return dtype, nil
}

// FromGenericsType returns the DType of T.
func FromGenericsType[T Supported]() DType {
	return FromGoType(reflect.TypeFor[T]())
}

// FromGoType returns the DType for the given reflect.Type, or InvalidDType if it is not a scalar
// type this package knows about.
func FromGoType(t reflect.Type) DType {
	if t == nil {
		return InvalidDType
	}
	switch t {
	case goTypes[Float16]:
		return Float16
	case goTypes[BFloat16]:
		return BFloat16
	}
	if dtype, found := kinds[t.Kind()]; found {
		return dtype
	}
	return InvalidDType
}

// FromAny returns the DType of the underlying type of value, or InvalidDType for non-scalar or
// unsupported values.
func FromAny(value any) DType {
	return FromGoType(reflect.TypeOf(value))
}

// GoType returns the Go type of the elements of dtype. It panics for invalid dtypes.
func (dtype DType) GoType() reflect.Type {
	if !dtype.IsValid() {
		panic(errors.Errorf("DType.GoType(): invalid dtype %s", dtype))
	}
	return goTypes[dtype]
}

// Size returns the number of bytes of one element in the ONNX raw data encoding.
// It is 0 for String, which has no fixed size, and for InvalidDType.
func (dtype DType) Size() int {
	if !dtype.IsValid() || dtype == String {
		return 0
	}
	return int(goTypes[dtype].Size())
}

// Bits returns the number of bits of one element, see Size.
func (dtype DType) Bits() int {
	return dtype.Size() * 8
}

// IsValid returns whether dtype is one of the enumerated element kinds.
func (dtype DType) IsValid() bool {
	return dtype > InvalidDType && dtype <= BFloat16
}

// IsFloat returns whether dtype is a real floating point type.
func (dtype DType) IsFloat() bool {
	switch dtype {
	case Float16, BFloat16, Float32, Float64:
		return true
	}
	return false
}

// IsFloat16 returns whether dtype is one of the 16 bits floats, [Float16] or [BFloat16].
func (dtype DType) IsFloat16() bool {
	return dtype == Float16 || dtype == BFloat16
}

// IsComplex returns whether dtype is Complex64 or Complex128.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// IsInt returns whether dtype is an integer type, signed or unsigned.
func (dtype DType) IsInt() bool {
	switch dtype {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return dtype.IsUnsigned()
}

// IsUnsigned returns whether dtype is one of the unsigned integer types.
func (dtype DType) IsUnsigned() bool {
	switch dtype {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsNumber returns whether dtype is an integer, float or complex number.
func (dtype DType) IsNumber() bool {
	return dtype.IsInt() || dtype.IsFloat() || dtype.IsComplex()
}

// RealDType returns the dtype of the components of a complex dtype, and dtype itself for floats.
// Other dtypes return InvalidDType.
func (dtype DType) RealDType() DType {
	switch {
	case dtype.IsFloat():
		return dtype
	case dtype == Complex64:
		return Float32
	case dtype == Complex128:
		return Float64
	}
	return InvalidDType
}
