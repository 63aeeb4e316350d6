// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the symbolic tensor type carried by every value of a spox graph.
//
// A Shape is an element kind (DType) plus an optional rank and, per axis, a dimension that is
// either concrete, symbolic (named, like "batch") or unknown:
//
//	shapes.Make(dtypes.Float32, 2, 3)                // (Float32)[2 3]
//	shapes.MakeSymbolic(dtypes.Float32, "N", 3)      // (Float32)[N 3]
//	shapes.Make(dtypes.Int64, shapes.DimUnknown)     // (Int64)[?]
//	shapes.MakeUnknownRank(dtypes.Bool)              // (Bool)[...]
//
// ## Glossary
//
//   - Rank: number of axes of a tensor. It may be unknown.
//   - Axis: the index of a dimension.
//   - Dimension: the size of an axis. Concrete dimensions are >= 0 (ONNX allows zero-sized axes).
//   - Symbolic dimension: an axis whose size is not known, but is named. Two axes with the same
//     name are known to have the same size.
//   - Scalar: a shape with known rank 0.
//
// Shapes are compared structurally, see Shape.Equal, Shape.Compatible and Shape.Refines.
package shapes

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/dtypes"
)

// DimUnknown marks an axis whose dimension is not known.
// If the axis has a name (see Shape.AxisNames), it is a symbolic dimension.
const DimUnknown = -1

// Shape represents the symbolic type of a value in a graph: element kind, rank and dimensions.
//
// Use Make, MakeSymbolic or MakeUnknownRank to create new shapes.
type Shape struct {
	DType dtypes.DType

	// Dimensions per axis. DimUnknown for unknown or symbolic dimensions.
	// It is empty for scalars and for shapes with unknown rank.
	Dimensions []int

	// AxisNames holds the symbolic name of each axis, or "" for unnamed axes.
	// It is either nil or has the same length as Dimensions.
	AxisNames []string

	// UnknownRank is set if not even the rank is known.
	UnknownRank bool
}

// Make returns a Shape with the given dtype and dimensions.
// Dimensions must be >= 0 or DimUnknown.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 && dim != DimUnknown {
			exceptions.Panicf("shapes.Make(%s): invalid dimension %d", s, dim)
		}
	}
	return s
}

// MakeSymbolic returns a Shape where each dimension is given either as an int (concrete dimension,
// or DimUnknown) or as a string (symbolic axis name).
func MakeSymbolic(dtype dtypes.DType, dimensions ...any) Shape {
	s := Shape{DType: dtype, Dimensions: make([]int, len(dimensions))}
	for axis, dim := range dimensions {
		switch d := dim.(type) {
		case int:
			if d < 0 && d != DimUnknown {
				exceptions.Panicf("shapes.MakeSymbolic(%v): invalid dimension %d", dimensions, d)
			}
			s.Dimensions[axis] = d
		case string:
			s.Dimensions[axis] = DimUnknown
			if d == "" {
				continue
			}
			if s.AxisNames == nil {
				s.AxisNames = make([]string, len(dimensions))
			}
			s.AxisNames[axis] = d
		default:
			exceptions.Panicf("shapes.MakeSymbolic(%v): dimension #%d has invalid type %T", dimensions, axis, dim)
		}
	}
	return s
}

// MakeUnknownRank returns a Shape with the given dtype and unknown rank.
func MakeUnknownRank(dtype dtypes.DType) Shape {
	return Shape{DType: dtype, UnknownRank: true}
}

// Scalar returns the shape of a scalar of the given dtype.
func Scalar(dtype dtypes.DType) Shape {
	return Shape{DType: dtype}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// HasRank returns whether the rank is known.
func (s Shape) HasRank() bool { return !s.UnknownRank }

// Rank of the shape, that is, the number of axes. It returns -1 if the rank is unknown.
func (s Shape) Rank() int {
	if s.UnknownRank {
		return -1
	}
	return len(s.Dimensions)
}

// IsScalar returns whether the shape is known to be a scalar.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis or if the rank is unknown.
func (s Shape) Dim(axis int) int {
	if s.UnknownRank {
		exceptions.Panicf("Shape.Dim(%d) on a shape with unknown rank (shape=%s)", axis, s)
	}
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// AxisName returns the symbolic name of the axis, or "" if it is unnamed.
func (s Shape) AxisName(axis int) string {
	if axis < 0 || axis >= len(s.AxisNames) {
		return ""
	}
	return s.AxisNames[axis]
}

// HasNamedAxes returns whether any of the axes is symbolic.
func (s Shape) HasNamedAxes() bool {
	for _, name := range s.AxisNames {
		if name != "" {
			return true
		}
	}
	return false
}

// IsFullyKnown returns whether the rank and every dimension is concrete.
func (s Shape) IsFullyKnown() bool {
	if s.UnknownRank {
		return false
	}
	for _, dim := range s.Dimensions {
		if dim == DimUnknown {
			return false
		}
	}
	return true
}

// Size returns the number of elements, the product of all dimensions.
// It returns -1 if the shape is not fully known.
func (s Shape) Size() int {
	if !s.IsFullyKnown() {
		return -1
	}
	size := 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return size
}

// Memory returns the number of bytes used by a tensor with this shape, or 0 if not known.
func (s Shape) Memory() uintptr {
	size := s.Size()
	if size < 0 {
		return 0
	}
	return uintptr(size) * uintptr(s.DType.Size())
}

// String implements stringer, pretty-prints the shape.
func (s Shape) String() string {
	if s.UnknownRank {
		return fmt.Sprintf("(%s)[...]", s.DType)
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	parts := make([]string, len(s.Dimensions))
	for axis, dim := range s.Dimensions {
		switch {
		case s.AxisName(axis) != "":
			parts[axis] = s.AxisName(axis)
		case dim == DimUnknown:
			parts[axis] = "?"
		default:
			parts[axis] = fmt.Sprintf("%d", dim)
		}
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(parts, " "))
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.UnknownRank = s.UnknownRank
	s2.Dimensions = slices.Clone(s.Dimensions)
	if s.HasNamedAxes() {
		s2.AxisNames = slices.Clone(s.AxisNames)
	}
	return
}

// WithDType returns a copy of the shape with the dtype replaced.
func (s Shape) WithDType(dtype dtypes.DType) Shape {
	s2 := s.Clone()
	s2.DType = dtype
	return s2
}

// Equal compares two shapes for exact structural equality: dtype, rank, dimensions and axis names.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType || s.UnknownRank != s2.UnknownRank {
		return false
	}
	return s.EqualDimensions(s2)
}

// EqualDimensions compares two shapes for equality of rank, dimensions and axis names. Dtypes can be different.
func (s Shape) EqualDimensions(s2 Shape) bool {
	if s.UnknownRank || s2.UnknownRank {
		return s.UnknownRank == s2.UnknownRank
	}
	if !slices.Equal(s.Dimensions, s2.Dimensions) {
		return false
	}
	for axis := range s.Dimensions {
		if s.AxisName(axis) != s2.AxisName(axis) {
			return false
		}
	}
	return true
}

// Compatible returns whether the two shapes can describe the same value: the element kinds match,
// the ranks match if both are known, and each pair of axes matches if both are concrete or both are named.
// Unknown axes (and a symbolic axis against a concrete one) are compatible with anything.
func (s Shape) Compatible(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	if s.UnknownRank || s2.UnknownRank {
		return true
	}
	if s.Rank() != s2.Rank() {
		return false
	}
	for axis, dim := range s.Dimensions {
		dim2 := s2.Dimensions[axis]
		if dim != DimUnknown && dim2 != DimUnknown && dim != dim2 {
			return false
		}
		name, name2 := s.AxisName(axis), s2.AxisName(axis)
		if name != "" && name2 != "" && name != name2 {
			return false
		}
	}
	return true
}

// Refines returns whether s carries at least as much information as general, without contradicting it.
//
// A concrete dimension refines an unknown or symbolic one; a symbolic dimension refines only an unknown
// one or the same name; a known rank refines an unknown rank.
func (s Shape) Refines(general Shape) bool {
	if s.DType != general.DType {
		return false
	}
	if general.UnknownRank {
		return true
	}
	if s.UnknownRank || s.Rank() != general.Rank() {
		return false
	}
	for axis, gDim := range general.Dimensions {
		dim := s.Dimensions[axis]
		if gDim != DimUnknown {
			if dim != gDim {
				return false
			}
			continue
		}
		if gName := general.AxisName(axis); gName != "" && dim == DimUnknown && s.AxisName(axis) != gName {
			return false
		}
	}
	return true
}

// FromAnyValue attempts to convert a Go value (scalar or multidimensional slice) to its shape.
// All sub-slices of the same level must have the same length.
func FromAnyValue(value any) (shape Shape, err error) {
	if value == nil {
		return Invalid(), errors.New("cannot take the shape of a nil value")
	}
	err = shapeForValueRecursive(&shape, reflect.ValueOf(value), reflect.TypeOf(value))
	return
}

func shapeForValueRecursive(shape *Shape, v reflect.Value, t reflect.Type) error {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		t = t.Elem()
		shape.Dimensions = append(shape.Dimensions, v.Len())
		shapePrefix := shape.Clone()
		if v.Len() == 0 {
			// Element type can still be determined from the slice type.
			for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
				shape.Dimensions = append(shape.Dimensions, 0)
				t = t.Elem()
			}
			shape.DType = dtypes.FromGoType(t)
			if shape.DType == dtypes.InvalidDType {
				return errors.Errorf("cannot convert type %s to a tensor type", t)
			}
			return nil
		}
		if err := shapeForValueRecursive(shape, v.Index(0), t); err != nil {
			return err
		}
		for ii := 1; ii < v.Len(); ii++ {
			shapeTest := shapePrefix.Clone()
			if err := shapeForValueRecursive(&shapeTest, v.Index(ii), t); err != nil {
				return err
			}
			if !shape.Equal(shapeTest) {
				return errors.Errorf("sub-slices have irregular shapes, found shapes %q, and %q", shape, shapeTest)
			}
		}
	case reflect.Pointer:
		return errors.Errorf("cannot convert Pointer (%s) to a concrete value for tensors", t)
	default:
		shape.DType = dtypes.FromGoType(t)
		if shape.DType == dtypes.InvalidDType {
			return errors.Errorf("cannot convert type %s to a tensor type (maybe type not supported yet?)", t)
		}
	}
	return nil
}
