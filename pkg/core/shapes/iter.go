// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"iter"

	"github.com/pkg/errors"
)

// Strides returns, for each axis of a fully known shape, how many flat positions apart two consecutive
// indices of the axis are. It assumes the row-major layout of ONNX raw data.
//
// Scalars have no strides.
func (s Shape) Strides() []int {
	if !s.IsFullyKnown() {
		panic(errors.Errorf("Shape.Strides(): shape %s is not fully known", s))
	}
	if s.Rank() == 0 {
		return nil
	}
	strides := make([]int, s.Rank())
	stride := 1
	for axis := len(strides) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= s.Dimensions[axis]
	}
	return strides
}

// Iter yields the flat position and the per-axis indices of every element of a fully known shape,
// in row-major order.
//
// The indices slice is reused between iterations: copy it to keep it.
func (s Shape) Iter() iter.Seq2[int, []int] {
	size := s.Size()
	if size < 0 {
		panic(errors.Errorf("Shape.Iter(): shape %s is not fully known", s))
	}
	return func(yield func(int, []int) bool) {
		indices := make([]int, s.Rank())
		for flat := range size {
			if !yield(flat, indices) {
				return
			}
			// Odometer increment, the last axis moving fastest.
			for axis := len(indices) - 1; axis >= 0; axis-- {
				if indices[axis]++; indices[axis] < s.Dimensions[axis] {
					break
				}
				indices[axis] = 0
			}
		}
	}
}
