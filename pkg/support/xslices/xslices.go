// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices has generic helpers for slices and maps missing from the standard slices and maps packages.
package xslices

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Map returns a new slice with fn applied to each element of in.
func Map[In, Out any](in []In, fn func(e In) Out) []Out {
	out := make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return out
}

// Pop removes the last element of the slice and returns it along with the shortened slice.
// It panics if the slice is empty.
func Pop[T any](slice []T) (T, []T) {
	last := len(slice) - 1
	return slice[last], slice[:last]
}

// Keys returns the keys of the map, in no particular order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of the map, sorted.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Iota returns a slice with count consecutive values starting at start.
func Iota[T constraints.Integer](start T, count int) []T {
	values := make([]T, count)
	for ii := range values {
		values[ii] = start + T(ii)
	}
	return values
}
