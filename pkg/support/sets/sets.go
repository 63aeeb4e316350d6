// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package sets has a generic Set, a map[T]struct{} with methods.
package sets

// Set of values of type T. The zero value is a nil map: it can be read but not inserted into.
type Set[T comparable] map[T]struct{}

// Make returns an empty Set, with room for capacity elements if given.
func Make[T comparable](capacity ...int) Set[T] {
	if len(capacity) == 0 {
		return make(Set[T])
	}
	return make(Set[T], capacity[0])
}

// MakeWith returns a Set with the given elements.
func MakeWith[T comparable](elements ...T) Set[T] {
	s := Make[T](len(elements))
	s.Insert(elements...)
	return s
}

// Has returns whether key is in the set.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert the keys in the set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// Sub returns a new set with the elements of s that are not in s2.
func (s Set[T]) Sub(s2 Set[T]) Set[T] {
	result := Make[T]()
	for key := range s {
		if !s2.Has(key) {
			result.Insert(key)
		}
	}
	return result
}

// Equal returns whether both sets have the same elements.
func (s Set[T]) Equal(s2 Set[T]) bool {
	if len(s) != len(s2) {
		return false
	}
	for key := range s {
		if !s2.Has(key) {
			return false
		}
	}
	return true
}
