// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import "strconv"

// DType enumerates the element kinds of a tensor.
//
// The values are the ONNX TensorProto.DataType codes, so they can be written to and read from
// the wire format without translation.
type DType int32

const (
	// InvalidDType is the zero value, ONNX's TensorProto.UNDEFINED.
	InvalidDType DType = 0

	// Float32 is ONNX's FLOAT.
	Float32 DType = 1

	// Uint8 is ONNX's UINT8.
	Uint8 DType = 2

	// Int8 is ONNX's INT8.
	Int8 DType = 3

	// Uint16 is ONNX's UINT16.
	Uint16 DType = 4

	// Int16 is ONNX's INT16.
	Int16 DType = 5

	// Int32 is ONNX's INT32.
	Int32 DType = 6

	// Int64 is ONNX's INT64.
	Int64 DType = 7

	// String is ONNX's STRING. Values are stored as Go strings, and have no fixed size.
	String DType = 8

	// Bool is ONNX's BOOL.
	Bool DType = 9

	// Float16 is ONNX's FLOAT16, the IEEE 754 half precision float.
	Float16 DType = 10

	// Float64 is ONNX's DOUBLE.
	Float64 DType = 11

	// Uint32 is ONNX's UINT32.
	Uint32 DType = 12

	// Uint64 is ONNX's UINT64.
	Uint64 DType = 13

	// Complex64 is ONNX's COMPLEX64: paired float32 (real, imag).
	Complex64 DType = 14

	// Complex128 is ONNX's COMPLEX128: paired float64 (real, imag).
	Complex128 DType = 15

	// BFloat16 is ONNX's BFLOAT16.
	BFloat16 DType = 16
)

// Aliases using the ONNX names.
const (
	UNDEFINED = InvalidDType
	FLOAT     = Float32
	DOUBLE    = Float64
	FLOAT16   = Float16
	BFLOAT16  = BFloat16
	INT64     = Int64
	INT32     = Int32
	BOOL      = Bool
	STRING    = String
)

var dtypeNames = [...]string{
	InvalidDType: "InvalidDType",
	Float32:      "Float32",
	Uint8:        "Uint8",
	Int8:         "Int8",
	Uint16:       "Uint16",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	String:       "String",
	Bool:         "Bool",
	Float16:      "Float16",
	Float64:      "Float64",
	Uint32:       "Uint32",
	Uint64:       "Uint64",
	Complex64:    "Complex64",
	Complex128:   "Complex128",
	BFloat16:     "BFloat16",
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if dtype < 0 || int(dtype) >= len(dtypeNames) {
		return "DType(" + strconv.Itoa(int(dtype)) + ")"
	}
	return dtypeNames[dtype]
}

// onnxNames are the names used by the ONNX schemas in type constraints, e.g. "tensor(float)".
var onnxNames = [...]string{
	InvalidDType: "undefined",
	Float32:      "float",
	Uint8:        "uint8",
	Int8:         "int8",
	Uint16:       "uint16",
	Int16:        "int16",
	Int32:        "int32",
	Int64:        "int64",
	String:       "string",
	Bool:         "bool",
	Float16:      "float16",
	Float64:      "double",
	Uint32:       "uint32",
	Uint64:       "uint64",
	Complex64:    "complex64",
	Complex128:   "complex128",
	BFloat16:     "bfloat16",
}

// ONNXName returns the name ONNX schemas use for the dtype, e.g. "float" for Float32.
func (dtype DType) ONNXName() string {
	if dtype < 0 || int(dtype) >= len(onnxNames) {
		return dtype.String()
	}
	return onnxNames[dtype]
}

// MapOfNames to their dtypes. It includes the ONNX schema names ("float", "double", ...)
// and, after package initialization, the lower-case version of every name.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"Float32":      Float32,
	"F32":          Float32,
	"Uint8":        Uint8,
	"U8":           Uint8,
	"Int8":         Int8,
	"S8":           Int8,
	"Uint16":       Uint16,
	"U16":          Uint16,
	"Int16":        Int16,
	"S16":          Int16,
	"Int32":        Int32,
	"S32":          Int32,
	"Int64":        Int64,
	"S64":          Int64,
	"String":       String,
	"Bool":         Bool,
	"Float16":      Float16,
	"F16":          Float16,
	"Float64":      Float64,
	"F64":          Float64,
	"Uint32":       Uint32,
	"U32":          Uint32,
	"Uint64":       Uint64,
	"U64":          Uint64,
	"Complex64":    Complex64,
	"C64":          Complex64,
	"Complex128":   Complex128,
	"C128":         Complex128,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
	"float":        Float32,
	"double":       Float64,
	"undefined":    InvalidDType,
}
