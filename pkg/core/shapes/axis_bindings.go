// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// AxisBindings maps the names of symbolic axes to their dimensions.
type AxisBindings map[string]int

// String lists the bindings sorted by name, e.g. "batch=32, seq=128".
func (ab AxisBindings) String() string {
	names := make([]string, 0, len(ab))
	for name := range ab {
		names = append(names, name)
	}
	slices.Sort(names)
	parts := make([]string, len(names))
	for ii, name := range names {
		parts[ii] = fmt.Sprintf("%s=%d", name, ab[name])
	}
	return strings.Join(parts, ", ")
}

// Merge adds the bindings of other. It fails if an axis is bound to different dimensions, in which case ab
// is left partially updated.
func (ab AxisBindings) Merge(other AxisBindings) error {
	for name, dim := range other {
		if current, found := ab[name]; found && current != dim {
			return errors.Errorf("axis %q bound to both %d and %d", name, current, dim)
		}
		ab[name] = dim
	}
	return nil
}

// Resolve returns a copy of the shape with the named axes found in bindings replaced by their dimensions.
// Resolved axes lose their names, the others stay symbolic.
func (s Shape) Resolve(bindings AxisBindings) Shape {
	result := s.Clone()
	if !s.HasNamedAxes() || len(bindings) == 0 {
		return result
	}
	for axis, name := range s.AxisNames {
		if dim, found := bindings[name]; name != "" && found {
			result.Dimensions[axis] = dim
			result.AxisNames[axis] = ""
		}
	}
	if !result.HasNamedAxes() {
		result.AxisNames = nil
	}
	return result
}

// ExtractBindings returns the dimensions that the named axes of pattern take in concrete.
//
// Both shapes must have a known rank and the same dtype and rank. The concrete dimensions of pattern must match,
// and the axes sharing a name must have the same dimension. Unknown dimensions in concrete bind nothing.
func ExtractBindings(pattern, concrete Shape) (AxisBindings, error) {
	if pattern.UnknownRank || concrete.UnknownRank {
		return nil, errors.Errorf("can't extract axis bindings from shapes of unknown rank (%s and %s)",
			pattern, concrete)
	}
	if pattern.DType != concrete.DType || pattern.Rank() != concrete.Rank() {
		return nil, errors.Errorf("%s doesn't match %s", concrete, pattern)
	}
	bindings := make(AxisBindings)
	for axis, dim := range concrete.Dimensions {
		name := pattern.AxisName(axis)
		switch {
		case name != "" && dim != DimUnknown:
			if err := bindings.Merge(AxisBindings{name: dim}); err != nil {
				return nil, errors.WithMessagef(err, "%s doesn't match %s", concrete, pattern)
			}
		case name == "" && pattern.Dimensions[axis] != DimUnknown && pattern.Dimensions[axis] != dim:
			return nil, errors.Errorf("%s doesn't match %s: axis %d has dimension %d", concrete, pattern, axis,
				pattern.Dimensions[axis])
		}
	}
	return bindings, nil
}
