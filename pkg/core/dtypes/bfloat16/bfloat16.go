// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package bfloat16 implements the bfloat16 element type used by ONNX tensors (TensorProto.BFLOAT16).
//
// Values are stored as the upper 16 bits of an IEEE 754 float32.
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 (brain floating point) is a 16 bits floating point format: 1 sign bit, 8 exponent bits and
// 7 mantissa bits. It keeps the dynamic range of a float32 with reduced precision.
type BFloat16 uint16

// Float32 converts the value to a float32. The conversion is exact.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// FromFloat32 converts a float32 to a BFloat16, rounding to the nearest even value.
// NaN values are preserved as a quiet NaN.
func FromFloat32(x float32) BFloat16 {
	bits := math.Float32bits(x)
	if math.IsNaN(float64(x)) {
		return BFloat16((bits >> 16) | 0x0040)
	}
	rounding := uint32(0x7FFF) + ((bits >> 16) & 1)
	return BFloat16((bits + rounding) >> 16)
}

// FromFloat64 converts a float64 to a BFloat16.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits converts the raw 16 bits representation to a BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the raw 16 bits representation.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// String implements fmt.Stringer.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}

// Inf returns positive infinity if sign >= 0, and negative infinity otherwise.
func Inf(sign int) BFloat16 {
	if sign >= 0 {
		return BFloat16(0x7F80)
	}
	return BFloat16(0xFF80)
}
