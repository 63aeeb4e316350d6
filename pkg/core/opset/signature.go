// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package opset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// ParamOption defines whether a parameter (input or output) is required, optional or variadic.
type ParamOption int

const (
	// Single parameters must be given exactly once.
	Single ParamOption = iota

	// Optional parameters can be omitted.
	Optional

	// Variadic parameters can be given any number of times (at least MinArity), and must be the last parameter.
	Variadic
)

// String implements fmt.Stringer.
func (o ParamOption) String() string {
	switch o {
	case Single:
		return "single"
	case Optional:
		return "optional"
	case Variadic:
		return "variadic"
	}
	return "invalid"
}

// Param describes an input or output of an operator.
type Param struct {
	Name string

	// TypeVar is the name of the type constraint of the parameter. All parameters with the same TypeVar must
	// have the same dtype.
	TypeVar string

	Option ParamOption

	// MinArity is the minimum number of values of a Variadic parameter. Zero is taken as 1.
	MinArity int
}

// AttrSpec describes an attribute of an operator.
type AttrSpec struct {
	Name     string
	Kind     attributes.Kind
	Required bool

	// Default value, used by the inference rules when the attribute is not given. May be invalid (not set).
	Default attributes.Value
}

// Signature of an operator: its inputs, outputs, type constraints and attributes.
type Signature struct {
	Inputs  []Param
	Outputs []Param

	// TypeConstraints maps each TypeVar to the dtypes it accepts.
	TypeConstraints map[string][]dtypes.DType

	Attributes []AttrSpec
}

// Validate checks the signature itself: variadic parameters must be last, and every TypeVar must be constrained.
func (s *Signature) Validate() error {
	for _, params := range [][]Param{s.Inputs, s.Outputs} {
		for ii, p := range params {
			if p.Option == Variadic && ii != len(params)-1 {
				return errs.Newf(errs.GraphIntegrityError, "variadic parameter %q must be the last one", p.Name)
			}
			if _, found := s.TypeConstraints[p.TypeVar]; !found {
				return errs.Newf(errs.GraphIntegrityError, "parameter %q has unconstrained type variable %q",
					p.Name, p.TypeVar)
			}
		}
	}
	return nil
}

// Attribute returns the spec of the named attribute, or nil.
func (s *Signature) Attribute(name string) *AttrSpec {
	for ii := range s.Attributes {
		if s.Attributes[ii].Name == name {
			return &s.Attributes[ii]
		}
	}
	return nil
}

// paramFor returns the parameter that describes the i-th value, or nil if there is none.
func paramFor(params []Param, i int) *Param {
	if i < len(params) {
		return &params[i]
	}
	if n := len(params); n > 0 && params[n-1].Option == Variadic {
		return &params[n-1]
	}
	return nil
}

// arity returns the minimum and maximum number of values the parameters accept. A maximum of -1 means unbounded.
func arity(params []Param) (minCount, maxCount int) {
	for ii, p := range params {
		switch p.Option {
		case Single:
			minCount = ii + 1
		case Variadic:
			minCount = ii + max(p.MinArity, 1)
			return minCount, -1
		}
	}
	return minCount, len(params)
}

func describeArity(minCount, maxCount int) string {
	switch {
	case maxCount < 0:
		return "at least " + strconv.Itoa(minCount)
	case minCount == maxCount:
		return "exactly " + strconv.Itoa(minCount)
	}
	return "between " + strconv.Itoa(minCount) + " and " + strconv.Itoa(maxCount)
}

// CheckError is returned by Signature.Check. Input is the index of the offending input, or -1.
type CheckError struct {
	Input int
	Err   error
}

func (e *CheckError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *CheckError) Unwrap() error { return e.Err }

// Check validates the types of the inputs (an invalid shape marks an omitted optional input), the attributes and
// the number of requested outputs. It returns the attributes with the defaults of the signature filled in.
//
// Arity and attribute violations are errs.InferenceError, dtypes outside the type constraints are errs.TypeError.
func (s *Signature) Check(inputs []shapes.Shape, attrs attributes.Map, numOutputs int) (attributes.Map, error) {
	// Inputs arity.
	minIn, maxIn := arity(s.Inputs)
	if len(inputs) < minIn || (maxIn >= 0 && len(inputs) > maxIn) {
		return nil, &CheckError{Input: -1, Err: errs.Newf(errs.InferenceError,
			"got %d inputs, expected %s", len(inputs), describeArity(minIn, maxIn))}
	}
	typeVars := make(map[string]dtypes.DType)
	typeVarSource := make(map[string]int)
	for ii, input := range inputs {
		p := paramFor(s.Inputs, ii)
		if !input.Ok() {
			if p.Option != Optional {
				return nil, &CheckError{Input: ii, Err: errs.Newf(errs.InferenceError,
					"input #%d (%s) is required", ii, p.Name)}
			}
			continue
		}
		allowed := s.TypeConstraints[p.TypeVar]
		if !slices.Contains(allowed, input.DType) {
			return nil, &CheckError{Input: ii, Err: errs.Newf(errs.TypeError,
				"input #%d (%s) has dtype %s, but %s must be one of %s",
				ii, p.Name, input.DType, p.TypeVar, describeDTypes(allowed))}
		}
		if prev, found := typeVars[p.TypeVar]; found && prev != input.DType {
			return nil, &CheckError{Input: ii, Err: errs.Newf(errs.TypeError,
				"input #%d (%s) has dtype %s, but input #%d bound %s to %s",
				ii, p.Name, input.DType, typeVarSource[p.TypeVar], p.TypeVar, prev)}
		}
		typeVars[p.TypeVar] = input.DType
		typeVarSource[p.TypeVar] = ii
	}

	// Outputs arity.
	minOut, maxOut := arity(s.Outputs)
	minOut = max(minOut, 1)
	if numOutputs < minOut || (maxOut >= 0 && numOutputs > maxOut) {
		return nil, &CheckError{Input: -1, Err: errs.Newf(errs.InferenceError,
			"%d outputs requested, expected %s", numOutputs, describeArity(minOut, maxOut))}
	}

	// Attributes.
	filled := make(attributes.Map, len(s.Attributes))
	for _, name := range attrs.Names() {
		value := attrs[name]
		spec := s.Attribute(name)
		if spec == nil {
			return nil, &CheckError{Input: -1, Err: errs.Newf(errs.InferenceError, "unknown attribute %q", name)}
		}
		if value.Kind() != spec.Kind {
			return nil, &CheckError{Input: -1, Err: errs.Newf(errs.InferenceError,
				"attribute %q must be of kind %s, got %s", name, spec.Kind, value.Kind())}
		}
		filled[name] = value
	}
	for _, spec := range s.Attributes {
		if _, found := filled[spec.Name]; found {
			continue
		}
		if spec.Required {
			return nil, &CheckError{Input: -1, Err: errs.Newf(errs.InferenceError,
				"missing required attribute %q", spec.Name)}
		}
		if spec.Default.IsValid() {
			filled[spec.Name] = spec.Default
		}
	}
	return filled, nil
}

func describeDTypes(list []dtypes.DType) string {
	names := make([]string, len(list))
	for ii, dtype := range list {
		names[ii] = dtype.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
