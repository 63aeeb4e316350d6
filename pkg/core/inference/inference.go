// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package inference calculates the types (shapes.Shape) resulting from operators and validates their inputs
// and attributes.
//
// Each operator has a Rule, a pure function from a Request (input types, known constant input values and
// attributes) to the output types. Rules accept partial information: unknown ranks and unknown or symbolic
// dimensions propagate as such, and checks that need a known rank (e.g. the range of an axis) are deferred
// until the rank is known.
//
// Optionally an operator has a ValueRule, that computes the constant value of its outputs when its inputs
// are known constants. This is how shape-like inputs (target shapes, axes, split sizes) computed in the graph
// become available to the rules of the operators that consume them.
package inference

import (
	"slices"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
)

// Request holds everything a Rule can use to infer the output types of one operator invocation.
type Request struct {
	// Op is the operator name, used in error messages.
	Op string

	// Inputs holds the types of the inputs. Omitted optional inputs have an invalid shape (shapes.Invalid).
	Inputs []shapes.Shape

	// Values holds the known constant value of each input, or nil. It is either empty or has the same length as Inputs.
	Values []*tensors.Tensor

	// Attrs holds the attributes, with the defaults of the operator's signature filled in.
	Attrs attributes.Map

	// NumOutputs requested.
	NumOutputs int
}

// Rule infers the output types of an operator. It returns exactly NumOutputs shapes.
//
// Structural invalidity is reported with an errs.InferenceError.
type Rule func(req *Request) ([]shapes.Shape, error)

// ValueRule computes the constant values of the outputs of an operator, given its output types (as returned by the
// Rule) and the known values of its inputs.
//
// It returns nil, or a slice with one entry per output where nil means "not known".
type ValueRule func(req *Request, outputs []shapes.Shape) ([]*tensors.Tensor, error)

// Clone returns a copy of the request whose slices can be modified independently.
func (r *Request) Clone() *Request {
	clone := *r
	clone.Inputs = make([]shapes.Shape, len(r.Inputs))
	for ii, s := range r.Inputs {
		clone.Inputs[ii] = s.Clone()
	}
	clone.Values = slices.Clone(r.Values)
	return &clone
}

// Has returns whether input i was given.
func (r *Request) Has(i int) bool {
	return i >= 0 && i < len(r.Inputs) && r.Inputs[i].Ok()
}

// Value returns the known constant value of input i, or nil.
func (r *Request) Value(i int) *tensors.Tensor {
	if i < 0 || i >= len(r.Values) {
		return nil
	}
	return r.Values[i]
}

// Errorf returns an errs.InferenceError about the requested operator.
func (r *Request) Errorf(format string, args ...any) error {
	return errs.At(errs.Newf(errs.InferenceError, format, args...), r.Op, "")
}

func errorf(format string, args ...any) error {
	return errs.Newf(errs.InferenceError, format, args...)
}

// AttrInt returns the named int attribute, or defaultValue.
func (r *Request) AttrInt(name string, defaultValue int64) (int64, error) {
	v, err := r.Attrs.GetInt(name, defaultValue)
	if err != nil {
		return 0, errs.At(errs.Wrap(errs.InferenceError, err), r.Op, "")
	}
	return v, nil
}

// AttrFloat returns the named float attribute, or defaultValue.
func (r *Request) AttrFloat(name string, defaultValue float32) (float32, error) {
	v, err := r.Attrs.GetFloat(name, defaultValue)
	if err != nil {
		return 0, errs.At(errs.Wrap(errs.InferenceError, err), r.Op, "")
	}
	return v, nil
}

// AttrString returns the named string attribute, or defaultValue.
func (r *Request) AttrString(name string, defaultValue string) (string, error) {
	v, err := r.Attrs.GetString(name, defaultValue)
	if err != nil {
		return "", errs.At(errs.Wrap(errs.InferenceError, err), r.Op, "")
	}
	return v, nil
}

// AttrInts returns the named ints attribute, and whether it is set.
func (r *Request) AttrInts(name string) ([]int64, bool, error) {
	v, found, err := r.Attrs.GetInts(name)
	if err != nil {
		return nil, found, errs.At(errs.Wrap(errs.InferenceError, err), r.Op, "")
	}
	return v, found, nil
}

// InputInts returns the values of the integer input i, if they are known.
func (r *Request) InputInts(i int) ([]int64, bool, error) {
	value := r.Value(i)
	if value == nil {
		return nil, false, nil
	}
	ints, err := value.ToInt64s()
	if err != nil {
		return nil, false, errs.At(errs.Wrapf(errs.InferenceError, err, "input #%d", i), r.Op, "")
	}
	return ints, true, nil
}

// IntsFromAttrOrInput returns a list of ints that, depending on the version of the operator, is either given as
// the attribute attrName or as the input #input. The last return value reports whether the list was given at all:
// it can be given but not known (a non-constant input), in which case it returns (nil, false, true, nil).
func (r *Request) IntsFromAttrOrInput(attrName string, input int) (values []int64, known, given bool, err error) {
	values, found, err := r.AttrInts(attrName)
	if err != nil || found {
		return values, found, found, err
	}
	if !r.Has(input) {
		return nil, false, false, nil
	}
	values, known, err = r.InputInts(input)
	return values, known, true, err
}

// Input returns the type of input i, failing if it is missing.
func (r *Request) Input(i int) (shapes.Shape, error) {
	if !r.Has(i) {
		return shapes.Invalid(), r.Errorf("missing input #%d", i)
	}
	return r.Inputs[i], nil
}

// NormalizeAxis validates the axis against the rank of shape and converts negative values to the
// corresponding positive axis.
//
// If the rank of shape is unknown the check is deferred: it returns known=false and no error, and the rule
// should return a less specific type.
func NormalizeAxis(axis int64, shape shapes.Shape) (normalized int, known bool, err error) {
	if !shape.HasRank() {
		return 0, false, nil
	}
	normalized, err = normalizeAxisForRank(axis, shape.Rank())
	return normalized, err == nil, err
}

func normalizeAxisForRank(axis int64, rank int) (int, error) {
	if axis < -int64(rank) || axis >= int64(rank) {
		return 0, errs.Newf(errs.InferenceError, "axis %d out of range for rank %d", axis, rank)
	}
	if axis < 0 {
		axis += int64(rank)
	}
	return int(axis), nil
}

// normalizeAxes normalizes a list of axes against the given rank, rejecting repeated axes.
func normalizeAxes(axes []int64, rank int) ([]int, error) {
	normalized := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))
	for ii, axis := range axes {
		a, err := normalizeAxisForRank(axis, rank)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, errs.Newf(errs.InferenceError, "axis %d repeated in %v", axis, axes)
		}
		seen[a] = true
		normalized[ii] = a
	}
	return normalized, nil
}

// Run calls the rule and checks that it returned the requested number of outputs.
func Run(rule Rule, req *Request) ([]shapes.Shape, error) {
	outputs, err := rule(req)
	if err != nil {
		return nil, errs.At(err, req.Op, "")
	}
	if len(outputs) != req.NumOutputs {
		return nil, errs.At(errs.Newf(errs.InternalInferenceError,
			"rule returned %d outputs, %d were requested", len(outputs), req.NumOutputs), req.Op, "")
	}
	for ii, output := range outputs {
		if !output.Ok() {
			return nil, errs.At(errs.Newf(errs.InternalInferenceError,
				"rule returned an invalid type for output #%d", ii), req.Op, "")
		}
	}
	return outputs, nil
}

// CheckMonotone runs the rule on a general request and on a refined one (whose input types refine the general
// ones) and verifies that the refined outputs refine the general outputs.
//
// A refined request may fail with an errs.InferenceError where the general one succeeded: that is a check that
// was deferred for lack of information, and the error is returned as is. Any other failure of the refined
// request, or a refined output that contradicts the general one, is reported as an errs.InternalInferenceError.
func CheckMonotone(rule Rule, general, refined *Request) error {
	generalOutputs, err := Run(rule, general)
	if err != nil {
		return err
	}
	refinedOutputs, err := Run(rule, refined)
	if err != nil {
		if errs.KindOf(err) == errs.InferenceError {
			return err
		}
		return errs.At(errs.Wrapf(errs.InternalInferenceError, err, "refined inputs failed"), refined.Op, "")
	}
	for ii, refinedOutput := range refinedOutputs {
		if !refinedOutput.Refines(generalOutputs[ii]) {
			return errs.At(errs.Newf(errs.InternalInferenceError,
				"output #%d for refined inputs %v is %s, which doesn't refine %s inferred for inputs %v",
				ii, refined.Inputs, refinedOutput, generalOutputs[ii], general.Inputs), refined.Op, "")
		}
	}
	return nil
}

// repeat returns n copies of shape.
func repeat(shape shapes.Shape, n int) []shapes.Shape {
	outputs := make([]shapes.Shape, n)
	for ii := range outputs {
		outputs[ii] = shape.Clone()
	}
	return outputs
}
