/***** File generated by ./internal/cmd/opset_generator, based on schemas.yaml. Don't edit it directly. *****/

package onnx

import (
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
)

const (
	// Domain of the operators.
	Domain = ""

	// LatestVersion of the domain covered by the bindings.
	LatestVersion = 18
)

// Type constraint groups.
var (
	typesAll       = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.BFloat16, dtypes.Bool, dtypes.String, dtypes.Complex64, dtypes.Complex128}
	typesAllNoBf   = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool, dtypes.String, dtypes.Complex64, dtypes.Complex128}
	typesArith13   = []dtypes.DType{dtypes.Uint32, dtypes.Uint64, dtypes.Int32, dtypes.Int64, dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.BFloat16}
	typesArith7    = []dtypes.DType{dtypes.Uint32, dtypes.Uint64, dtypes.Int32, dtypes.Int64, dtypes.Float16, dtypes.Float32, dtypes.Float64}
	typesBfloat    = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.BFloat16}
	typesBool      = []dtypes.DType{dtypes.Bool}
	typesFloat     = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64}
	typesIndex     = []dtypes.DType{dtypes.Int32, dtypes.Int64}
	typesInt       = []dtypes.DType{dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64}
	typesInt64     = []dtypes.DType{dtypes.Int64}
	typesNumeric   = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64}
	typesNumericBf = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.BFloat16}
	typesSigned    = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64}
	typesSignedBf  = []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.BFloat16}
	typesUint      = []dtypes.DType{dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64}
)

// Bindings of every version of the operators of the domain, sorted by operator and version.
var Bindings = []*opset.Binding{
	{
		Domain:        Domain,
		OpType:        "Abs",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Abs computes the absolute value of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Abs",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Abs computes the absolute value of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Add",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Add computes the sum of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Add",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Add computes the sum of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Add",
		SinceVersion: 14,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Add computes the sum of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "And",
		SinceVersion: 7,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBool, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "And computes the logical and of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Cast",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T2"}},
			TypeConstraints: map[string][]dtypes.DType{"T1": []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool}, "T2": []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool}},
			Attributes: []opset.AttrSpec{
				{Name: "to", Kind: attributes.Int, Required: true},
			},
		},
		Rule:      inference.Cast,
		ValueRule: inference.CastValues,
		Pure:      true,
		Doc:       "Cast converts the input to the dtype given by the \"to\" attribute.",
	},
	{
		Domain:        Domain,
		OpType:        "Cast",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T2"}},
			TypeConstraints: map[string][]dtypes.DType{"T1": []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool, dtypes.String}, "T2": []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool, dtypes.String}},
			Attributes: []opset.AttrSpec{
				{Name: "to", Kind: attributes.Int, Required: true},
			},
		},
		Rule:      inference.Cast,
		ValueRule: inference.CastValues,
		Pure:      true,
		Doc:       "Cast converts the input to the dtype given by the \"to\" attribute.",
	},
	{
		Domain:       Domain,
		OpType:       "Cast",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T2"}},
			TypeConstraints: map[string][]dtypes.DType{"T1": typesAll, "T2": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "to", Kind: attributes.Int, Required: true},
			},
		},
		Rule:      inference.Cast,
		ValueRule: inference.CastValues,
		Pure:      true,
		Doc:       "Cast converts the input to the dtype given by the \"to\" attribute.",
	},
	{
		Domain:        Domain,
		OpType:        "Ceil",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Ceil rounds the input up to the nearest integer, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Ceil",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Ceil rounds the input up to the nearest integer, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Clip",
		SinceVersion:  6,
		StableThrough: 10,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "min", Kind: attributes.Float, Default: attributes.FloatValue(-3.4028235e+38)},
				{Name: "max", Kind: attributes.Float, Default: attributes.FloatValue(3.4028235e+38)},
			},
		},
		Rule: inference.Clip,
		Pure: true,
		Doc:  "Clip limits the input to the range [min, max]. Omitted bounds don't limit the input.",
	},
	{
		Domain:        Domain,
		OpType:        "Clip",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "min", TypeVar: "T", Option: opset.Optional}, {Name: "max", TypeVar: "T", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Clip,
		Pure: true,
		Doc:  "Clip limits the input to the range [min, max]. Omitted bounds don't limit the input.",
	},
	{
		Domain:        Domain,
		OpType:        "Clip",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "min", TypeVar: "T", Option: opset.Optional}, {Name: "max", TypeVar: "T", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric},
		},
		Rule: inference.Clip,
		Pure: true,
		Doc:  "Clip limits the input to the range [min, max]. Omitted bounds don't limit the input.",
	},
	{
		Domain:       Domain,
		OpType:       "Clip",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "min", TypeVar: "T", Option: opset.Optional}, {Name: "max", TypeVar: "T", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Clip,
		Pure: true,
		Doc:  "Clip limits the input to the range [min, max]. Omitted bounds don't limit the input.",
	},
	{
		Domain:        Domain,
		OpType:        "Concat",
		SinceVersion:  4,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "inputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "concat_result", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Required: true},
			},
		},
		Rule:      inference.Concat,
		ValueRule: inference.ConcatValues,
		Pure:      true,
		Doc:       "Concat concatenates the inputs along the given axis. All other dimensions must match.",
	},
	{
		Domain:        Domain,
		OpType:        "Concat",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "inputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "concat_result", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Required: true},
			},
		},
		Rule:      inference.Concat,
		ValueRule: inference.ConcatValues,
		Pure:      true,
		Doc:       "Concat concatenates the inputs along the given axis. All other dimensions must match.",
	},
	{
		Domain:       Domain,
		OpType:       "Concat",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "inputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "concat_result", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Required: true},
			},
		},
		Rule:      inference.Concat,
		ValueRule: inference.ConcatValues,
		Pure:      true,
		Doc:       "Concat concatenates the inputs along the given axis. All other dimensions must match.",
	},
	{
		Domain:        Domain,
		OpType:        "Constant",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "value", Kind: attributes.Tensor, Required: true},
			},
		},
		Rule:      inference.Constant,
		ValueRule: inference.ConstantValues,
		Pure:      true,
		Doc:       "Constant produces the tensor given by one of its attributes.",
	},
	{
		Domain:        Domain,
		OpType:        "Constant",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "value", Kind: attributes.Tensor},
				{Name: "value_float", Kind: attributes.Float},
				{Name: "value_floats", Kind: attributes.Floats},
				{Name: "value_int", Kind: attributes.Int},
				{Name: "value_ints", Kind: attributes.Ints},
				{Name: "value_string", Kind: attributes.String},
				{Name: "value_strings", Kind: attributes.Strings},
			},
		},
		Rule:      inference.Constant,
		ValueRule: inference.ConstantValues,
		Pure:      true,
		Doc:       "Constant produces the tensor given by one of its attributes.",
	},
	{
		Domain:       Domain,
		OpType:       "Constant",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "value", Kind: attributes.Tensor},
				{Name: "value_float", Kind: attributes.Float},
				{Name: "value_floats", Kind: attributes.Floats},
				{Name: "value_int", Kind: attributes.Int},
				{Name: "value_ints", Kind: attributes.Ints},
				{Name: "value_string", Kind: attributes.String},
				{Name: "value_strings", Kind: attributes.Strings},
			},
		},
		Rule:      inference.Constant,
		ValueRule: inference.ConstantValues,
		Pure:      true,
		Doc:       "Constant produces the tensor given by one of its attributes.",
	},
	{
		Domain:       Domain,
		OpType:       "ConstantOfShape",
		SinceVersion: 9,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T2"}},
			TypeConstraints: map[string][]dtypes.DType{"T1": typesInt64, "T2": []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.Bool}},
			Attributes: []opset.AttrSpec{
				{Name: "value", Kind: attributes.Tensor},
			},
		},
		Rule: inference.ConstantOfShape,
		Pure: true,
		Doc:  "ConstantOfShape produces a tensor of the given shape filled with the value attribute, by default a float 0.",
	},
	{
		Domain:       Domain,
		OpType:       "Cos",
		SinceVersion: 7,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Cos computes the cosine of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Div",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Div computes the quotient of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Div",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Div computes the quotient of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Div",
		SinceVersion: 14,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Div computes the quotient of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Equal",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Bool, dtypes.Int32, dtypes.Int64}, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Equal returns whether the inputs are equal, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Equal",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Bool, dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64}, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Equal returns whether the inputs are equal, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Equal",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Bool, dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64, dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64, dtypes.BFloat16}, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Equal returns whether the inputs are equal, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Erf",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Erf computes the error function of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Erf",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Erf computes the error function of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Exp",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Exp computes the exponential of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Exp",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Exp computes the exponential of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Expand",
		SinceVersion:  8,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "shape", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAllNoBf},
		},
		Rule: inference.Expand,
		Pure: true,
		Doc:  "Expand broadcasts the input to the given shape.",
	},
	{
		Domain:       Domain,
		OpType:       "Expand",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "shape", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
		},
		Rule: inference.Expand,
		Pure: true,
		Doc:  "Expand broadcasts the input to the given shape.",
	},
	{
		Domain:        Domain,
		OpType:        "Flatten",
		SinceVersion:  1,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule:      inference.Flatten,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Flatten reshapes the input to a matrix, joining the axes before the given one into the first dimension and the remaining axes into the second.",
	},
	{
		Domain:        Domain,
		OpType:        "Flatten",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule:      inference.Flatten,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Flatten reshapes the input to a matrix, joining the axes before the given one into the first dimension and the remaining axes into the second.",
	},
	{
		Domain:        Domain,
		OpType:        "Flatten",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule:      inference.Flatten,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Flatten reshapes the input to a matrix, joining the axes before the given one into the first dimension and the remaining axes into the second.",
	},
	{
		Domain:       Domain,
		OpType:       "Flatten",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule:      inference.Flatten,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Flatten reshapes the input to a matrix, joining the axes before the given one into the first dimension and the remaining axes into the second.",
	},
	{
		Domain:        Domain,
		OpType:        "Floor",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Floor rounds the input down to the nearest integer, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Floor",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Floor rounds the input down to the nearest integer, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Gather",
		SinceVersion:  1,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "indices", TypeVar: "Tind"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf, "Tind": typesIndex},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule:      inference.Gather,
		ValueRule: inference.GatherValues,
		Pure:      true,
		Doc:       "Gather takes the entries of the data along the given axis at the given indices.",
	},
	{
		Domain:        Domain,
		OpType:        "Gather",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "indices", TypeVar: "Tind"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf, "Tind": typesIndex},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule:      inference.Gather,
		ValueRule: inference.GatherValues,
		Pure:      true,
		Doc:       "Gather takes the entries of the data along the given axis at the given indices.",
	},
	{
		Domain:       Domain,
		OpType:       "Gather",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "indices", TypeVar: "Tind"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll, "Tind": typesIndex},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule:      inference.Gather,
		ValueRule: inference.GatherValues,
		Pure:      true,
		Doc:       "Gather takes the entries of the data along the given axis at the given indices.",
	},
	{
		Domain:        Domain,
		OpType:        "Gemm",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}, {Name: "C", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "alpha", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "beta", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "transA", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "transB", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Gemm,
		Pure: true,
		Doc:  "Gemm computes alpha*A'*B' + beta*C, where A' and B' are A and B optionally transposed, and C is broadcast to the result.",
	},
	{
		Domain:        Domain,
		OpType:        "Gemm",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}, {Name: "C", TypeVar: "T", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "alpha", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "beta", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "transA", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "transB", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Gemm,
		Pure: true,
		Doc:  "Gemm computes alpha*A'*B' + beta*C, where A' and B' are A and B optionally transposed, and C is broadcast to the result.",
	},
	{
		Domain:       Domain,
		OpType:       "Gemm",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}, {Name: "C", TypeVar: "T", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
			Attributes: []opset.AttrSpec{
				{Name: "alpha", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "beta", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "transA", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "transB", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Gemm,
		Pure: true,
		Doc:  "Gemm computes alpha*A'*B' + beta*C, where A' and B' are A and B optionally transposed, and C is broadcast to the result.",
	},
	{
		Domain:        Domain,
		OpType:        "Greater",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Greater returns whether A > B, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Greater",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Greater returns whether A > B, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Greater",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Greater returns whether A > B, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "GreaterOrEqual",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "GreaterOrEqual returns whether A >= B, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "GreaterOrEqual",
		SinceVersion: 16,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "GreaterOrEqual returns whether A >= B, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Identity",
		SinceVersion:  1,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
		},
		Rule:      inference.Unary,
		ValueRule: inference.IdentityValues,
		Pure:      true,
		Doc:       "Identity returns its input unchanged.",
	},
	{
		Domain:        Domain,
		OpType:        "Identity",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
		},
		Rule:      inference.Unary,
		ValueRule: inference.IdentityValues,
		Pure:      true,
		Doc:       "Identity returns its input unchanged.",
	},
	{
		Domain:        Domain,
		OpType:        "Identity",
		SinceVersion:  14,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
		},
		Rule:      inference.Unary,
		ValueRule: inference.IdentityValues,
		Pure:      true,
		Doc:       "Identity returns its input unchanged.",
	},
	{
		Domain:       Domain,
		OpType:       "Identity",
		SinceVersion: 16,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
		},
		Rule:      inference.Unary,
		ValueRule: inference.IdentityValues,
		Pure:      true,
		Doc:       "Identity returns its input unchanged.",
	},
	{
		Domain:        Domain,
		OpType:        "If",
		SinceVersion:  11,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "cond", TypeVar: "B"}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "V", Option: opset.Variadic}},
			TypeConstraints: map[string][]dtypes.DType{"B": typesBool, "V": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "then_branch", Kind: attributes.Graph, Required: true},
				{Name: "else_branch", Kind: attributes.Graph, Required: true},
			},
		},
		Rule: inference.If,
		Pure: true,
		Doc:  "If returns the outputs of then_branch if the condition is true, and the outputs of else_branch otherwise. The branches are subgraphs that take no inputs, see graph.Builder.Subgraph.",
	},
	{
		Domain:       Domain,
		OpType:       "If",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "cond", TypeVar: "B"}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "V", Option: opset.Variadic}},
			TypeConstraints: map[string][]dtypes.DType{"B": typesBool, "V": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "then_branch", Kind: attributes.Graph, Required: true},
				{Name: "else_branch", Kind: attributes.Graph, Required: true},
			},
		},
		Rule: inference.If,
		Pure: true,
		Doc:  "If returns the outputs of then_branch if the condition is true, and the outputs of else_branch otherwise. The branches are subgraphs that take no inputs, see graph.Builder.Subgraph.",
	},
	{
		Domain:        Domain,
		OpType:        "Less",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Less returns whether A < B, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Less",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Less returns whether A < B, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Less",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Less returns whether A < B, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "LessOrEqual",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "LessOrEqual returns whether A <= B, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "LessOrEqual",
		SinceVersion: 16,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "LessOrEqual returns whether A <= B, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Log",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Log computes the natural logarithm of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Log",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Log computes the natural logarithm of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "LogSoftmax",
		SinceVersion:  1,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Softmax,
		Pure: true,
		Doc:  "LogSoftmax computes the log of the normalized exponential of the input along the given axis.",
	},
	{
		Domain:        Domain,
		OpType:        "LogSoftmax",
		SinceVersion:  11,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Softmax,
		Pure: true,
		Doc:  "LogSoftmax computes the log of the normalized exponential of the input along the given axis.",
	},
	{
		Domain:       Domain,
		OpType:       "LogSoftmax",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(-1)},
			},
		},
		Rule: inference.Softmax,
		Pure: true,
		Doc:  "LogSoftmax computes the log of the normalized exponential of the input along the given axis.",
	},
	{
		Domain:        Domain,
		OpType:        "MatMul",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
		},
		Rule: inference.MatMul,
		Pure: true,
		Doc:  "MatMul computes the matrix product of the inputs, with the semantics of numpy.matmul.",
	},
	{
		Domain:       Domain,
		OpType:       "MatMul",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
		},
		Rule: inference.MatMul,
		Pure: true,
		Doc:  "MatMul computes the matrix product of the inputs, with the semantics of numpy.matmul.",
	},
	{
		Domain:        Domain,
		OpType:        "Max",
		SinceVersion:  8,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "max", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Max computes the maximum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Max",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "max", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Max computes the maximum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Max",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "max", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Max computes the maximum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Mean",
		SinceVersion:  8,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "mean", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Mean computes the mean of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Mean",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "mean", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Mean computes the mean of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Min",
		SinceVersion:  8,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "min", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Min computes the minimum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Min",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "min", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Min computes the minimum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Min",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "min", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Min computes the minimum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Mul",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Mul computes the product of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Mul",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Mul computes the product of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Mul",
		SinceVersion: 14,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Mul computes the product of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Neg",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesSigned},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Neg computes the negation of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Neg",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesSignedBf},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Neg computes the negation of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Not",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBool},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Not computes the logical negation of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Or",
		SinceVersion: 7,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBool, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Or computes the logical or of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Pow",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}, {Name: "Y", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Z", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Pow raises the base X to the exponent Y, element-wise, with broadcasting. The exponent may have a different type since version 12.",
	},
	{
		Domain:        Domain,
		OpType:        "Pow",
		SinceVersion:  12,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}, {Name: "Y", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "Z", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Int32, dtypes.Int64, dtypes.Float16, dtypes.Float32, dtypes.Float64}, "T1": typesNumeric},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Pow raises the base X to the exponent Y, element-wise, with broadcasting. The exponent may have a different type since version 12.",
	},
	{
		Domain:        Domain,
		OpType:        "Pow",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}, {Name: "Y", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "Z", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Int32, dtypes.Int64, dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.BFloat16}, "T1": typesNumeric},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Pow raises the base X to the exponent Y, element-wise, with broadcasting. The exponent may have a different type since version 12.",
	},
	{
		Domain:       Domain,
		OpType:       "Pow",
		SinceVersion: 15,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}, {Name: "Y", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "Z", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Int32, dtypes.Int64, dtypes.Float16, dtypes.Float32, dtypes.Float64, dtypes.BFloat16}, "T1": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Pow raises the base X to the exponent Y, element-wise, with broadcasting. The exponent may have a different type since version 12.",
	},
	{
		Domain:       Domain,
		OpType:       "RandomNormal",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "dtype", Kind: attributes.Int, Default: attributes.IntValue(1)},
				{Name: "mean", Kind: attributes.Float, Default: attributes.FloatValue(0)},
				{Name: "scale", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "seed", Kind: attributes.Float},
				{Name: "shape", Kind: attributes.Ints, Required: true},
			},
		},
		Rule: inference.RandomFromShape,
		Doc:  "RandomNormal produces a tensor of the given shape with values drawn from a normal distribution.",
	},
	{
		Domain:       Domain,
		OpType:       "RandomNormalLike",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T2"}},
			TypeConstraints: map[string][]dtypes.DType{"T1": typesAllNoBf, "T2": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "dtype", Kind: attributes.Int},
				{Name: "mean", Kind: attributes.Float, Default: attributes.FloatValue(0)},
				{Name: "scale", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "seed", Kind: attributes.Float},
			},
		},
		Rule: inference.RandomLike,
		Doc:  "RandomNormalLike produces a tensor with the shape of the input and values drawn from a normal distribution.",
	},
	{
		Domain:       Domain,
		OpType:       "RandomUniform",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "dtype", Kind: attributes.Int, Default: attributes.IntValue(1)},
				{Name: "high", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "low", Kind: attributes.Float, Default: attributes.FloatValue(0)},
				{Name: "seed", Kind: attributes.Float},
				{Name: "shape", Kind: attributes.Ints, Required: true},
			},
		},
		Rule: inference.RandomFromShape,
		Doc:  "RandomUniform produces a tensor of the given shape with values drawn from a uniform distribution.",
	},
	{
		Domain:       Domain,
		OpType:       "RandomUniformLike",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T1"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T2"}},
			TypeConstraints: map[string][]dtypes.DType{"T1": typesAllNoBf, "T2": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "dtype", Kind: attributes.Int},
				{Name: "high", Kind: attributes.Float, Default: attributes.FloatValue(1)},
				{Name: "low", Kind: attributes.Float, Default: attributes.FloatValue(0)},
				{Name: "seed", Kind: attributes.Float},
			},
		},
		Rule: inference.RandomLike,
		Doc:  "RandomUniformLike produces a tensor with the shape of the input and values drawn from a uniform distribution.",
	},
	{
		Domain:       Domain,
		OpType:       "Range",
		SinceVersion: 11,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "start", TypeVar: "T"}, {Name: "limit", TypeVar: "T"}, {Name: "delta", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": []dtypes.DType{dtypes.Float32, dtypes.Float64, dtypes.Int16, dtypes.Int32, dtypes.Int64}},
		},
		Rule: inference.Range,
		Pure: true,
		Doc:  "Range produces the 1D sequence from start up to limit (exclusive) in steps of delta.",
	},
	{
		Domain:        Domain,
		OpType:        "Reciprocal",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Reciprocal computes 1/x of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Reciprocal",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Reciprocal computes 1/x of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMax",
		SinceVersion:  1,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMax computes the maximum of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMax",
		SinceVersion:  11,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMax computes the maximum of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMax",
		SinceVersion:  12,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumeric},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMax computes the maximum of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMax",
		SinceVersion:  13,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMax computes the maximum of the input along the given axes, by default all of them.",
	},
	{
		Domain:       Domain,
		OpType:       "ReduceMax",
		SinceVersion: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "axes", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesNumericBf},
			Attributes: []opset.AttrSpec{
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
				{Name: "noop_with_empty_axes", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMax computes the maximum of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMean",
		SinceVersion:  1,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMean computes the mean of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMean",
		SinceVersion:  11,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMean computes the mean of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceMean",
		SinceVersion:  13,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMean computes the mean of the input along the given axes, by default all of them.",
	},
	{
		Domain:       Domain,
		OpType:       "ReduceMean",
		SinceVersion: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "axes", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesArith13},
			Attributes: []opset.AttrSpec{
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
				{Name: "noop_with_empty_axes", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceMean computes the mean of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceSum",
		SinceVersion:  1,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceSum computes the sum of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "ReduceSum",
		SinceVersion:  11,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceSum computes the sum of the input along the given axes, by default all of them.",
	},
	{
		Domain:       Domain,
		OpType:       "ReduceSum",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "axes", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "reduced", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesArith13},
			Attributes: []opset.AttrSpec{
				{Name: "keepdims", Kind: attributes.Int, Default: attributes.IntValue(1)},
				{Name: "noop_with_empty_axes", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Reduce,
		Pure: true,
		Doc:  "ReduceSum computes the sum of the input along the given axes, by default all of them.",
	},
	{
		Domain:        Domain,
		OpType:        "Relu",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Relu computes max(0, x) of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Relu",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Relu computes max(0, x) of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Relu",
		SinceVersion: 14,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesSignedBf},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Relu computes max(0, x) of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Reshape",
		SinceVersion:  5,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "shape", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "reshaped", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAllNoBf},
		},
		Rule:      inference.Reshape,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Reshape changes the dimensions of the data to the given shape. A dimension of -1 is inferred from the others, and 0 copies the input dimension unless allowzero is set.",
	},
	{
		Domain:        Domain,
		OpType:        "Reshape",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "shape", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "reshaped", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
		},
		Rule:      inference.Reshape,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Reshape changes the dimensions of the data to the given shape. A dimension of -1 is inferred from the others, and 0 copies the input dimension unless allowzero is set.",
	},
	{
		Domain:       Domain,
		OpType:       "Reshape",
		SinceVersion: 14,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "shape", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "reshaped", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "allowzero", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule:      inference.Reshape,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Reshape changes the dimensions of the data to the given shape. A dimension of -1 is inferred from the others, and 0 copies the input dimension unless allowzero is set.",
	},
	{
		Domain:        Domain,
		OpType:        "Shape",
		SinceVersion:  1,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "shape", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf, "T1": typesInt64},
		},
		Rule:      inference.Shape,
		ValueRule: inference.ShapeValues,
		Pure:      true,
		Doc:       "Shape returns the dimensions of the input as a 1D Int64 tensor, optionally sliced by start and end.",
	},
	{
		Domain:        Domain,
		OpType:        "Shape",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "shape", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll, "T1": typesInt64},
		},
		Rule:      inference.Shape,
		ValueRule: inference.ShapeValues,
		Pure:      true,
		Doc:       "Shape returns the dimensions of the input as a 1D Int64 tensor, optionally sliced by start and end.",
	},
	{
		Domain:       Domain,
		OpType:       "Shape",
		SinceVersion: 15,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "shape", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll, "T1": typesInt64},
			Attributes: []opset.AttrSpec{
				{Name: "start", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "end", Kind: attributes.Int},
			},
		},
		Rule:      inference.Shape,
		ValueRule: inference.ShapeValues,
		Pure:      true,
		Doc:       "Shape returns the dimensions of the input as a 1D Int64 tensor, optionally sliced by start and end.",
	},
	{
		Domain:        Domain,
		OpType:        "Sigmoid",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Sigmoid computes 1/(1+exp(-x)) of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Sigmoid",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Sigmoid computes 1/(1+exp(-x)) of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Sin",
		SinceVersion: 7,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Sin computes the sine of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Size",
		SinceVersion:  1,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "size", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf, "T1": typesInt64},
		},
		Rule:      inference.Size,
		ValueRule: inference.SizeValues,
		Pure:      true,
		Doc:       "Size returns the number of elements of the input as an Int64 scalar.",
	},
	{
		Domain:       Domain,
		OpType:       "Size",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "size", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll, "T1": typesInt64},
		},
		Rule:      inference.Size,
		ValueRule: inference.SizeValues,
		Pure:      true,
		Doc:       "Size returns the number of elements of the input as an Int64 scalar.",
	},
	{
		Domain:        Domain,
		OpType:        "Softmax",
		SinceVersion:  1,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Softmax,
		Pure: true,
		Doc:  "Softmax computes the normalized exponential of the input along the given axis.",
	},
	{
		Domain:        Domain,
		OpType:        "Softmax",
		SinceVersion:  11,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(1)},
			},
		},
		Rule: inference.Softmax,
		Pure: true,
		Doc:  "Softmax computes the normalized exponential of the input along the given axis.",
	},
	{
		Domain:       Domain,
		OpType:       "Softmax",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(-1)},
			},
		},
		Rule: inference.Softmax,
		Pure: true,
		Doc:  "Softmax computes the normalized exponential of the input along the given axis.",
	},
	{
		Domain:        Domain,
		OpType:        "Split",
		SinceVersion:  2,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "split", Kind: attributes.Ints},
			},
		},
		Rule: inference.Split,
		Pure: true,
		Doc:  "Split splits the input along the given axis into the given number of outputs. The sizes of the parts are given by the split input or are equal (the last one may be smaller since version 18).",
	},
	{
		Domain:        Domain,
		OpType:        "Split",
		SinceVersion:  11,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "split", Kind: attributes.Ints},
			},
		},
		Rule: inference.Split,
		Pure: true,
		Doc:  "Split splits the input along the given axis into the given number of outputs. The sizes of the parts are given by the split input or are equal (the last one may be smaller since version 18).",
	},
	{
		Domain:        Domain,
		OpType:        "Split",
		SinceVersion:  13,
		StableThrough: 17,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "split", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
			},
		},
		Rule: inference.Split,
		Pure: true,
		Doc:  "Split splits the input along the given axis into the given number of outputs. The sizes of the parts are given by the split input or are equal (the last one may be smaller since version 18).",
	},
	{
		Domain:       Domain,
		OpType:       "Split",
		SinceVersion: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}, {Name: "split", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "outputs", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(0)},
				{Name: "num_outputs", Kind: attributes.Int},
			},
		},
		Rule: inference.Split,
		Pure: true,
		Doc:  "Split splits the input along the given axis into the given number of outputs. The sizes of the parts are given by the split input or are equal (the last one may be smaller since version 18).",
	},
	{
		Domain:        Domain,
		OpType:        "Sqrt",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Sqrt computes the square root of the input, element-wise. Negative values yield NaN.",
	},
	{
		Domain:       Domain,
		OpType:       "Sqrt",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Sqrt computes the square root of the input, element-wise. Negative values yield NaN.",
	},
	{
		Domain:        Domain,
		OpType:        "Squeeze",
		SinceVersion:  1,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "squeezed", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
			},
		},
		Rule:      inference.Squeeze,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Squeeze removes the given axes, which must have dimension 1, or all the axes of dimension 1.",
	},
	{
		Domain:        Domain,
		OpType:        "Squeeze",
		SinceVersion:  11,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "squeezed", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints},
			},
		},
		Rule:      inference.Squeeze,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Squeeze removes the given axes, which must have dimension 1, or all the axes of dimension 1.",
	},
	{
		Domain:       Domain,
		OpType:       "Squeeze",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "axes", TypeVar: "I", Option: opset.Optional}},
			Outputs:         []opset.Param{{Name: "squeezed", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
		},
		Rule:      inference.Squeeze,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Squeeze removes the given axes, which must have dimension 1, or all the axes of dimension 1.",
	},
	{
		Domain:        Domain,
		OpType:        "Sub",
		SinceVersion:  7,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith7},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Sub computes the difference of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Sub",
		SinceVersion:  13,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesArith13},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Sub computes the difference of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Sub",
		SinceVersion: 14,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesNumericBf},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Sub computes the difference of the inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Sum",
		SinceVersion:  8,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "sum", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Sum computes the sum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Sum",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data_0", TypeVar: "T", Option: opset.Variadic, MinArity: 1}},
			Outputs:         []opset.Param{{Name: "sum", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Broadcasting,
		Pure: true,
		Doc:  "Sum computes the sum of any number of inputs, element-wise, with broadcasting.",
	},
	{
		Domain:        Domain,
		OpType:        "Tanh",
		SinceVersion:  6,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesFloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Tanh computes the hyperbolic tangent of the input, element-wise.",
	},
	{
		Domain:       Domain,
		OpType:       "Tanh",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "input", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBfloat},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Tanh computes the hyperbolic tangent of the input, element-wise.",
	},
	{
		Domain:        Domain,
		OpType:        "Transpose",
		SinceVersion:  1,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "transposed", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "perm", Kind: attributes.Ints},
			},
		},
		Rule: inference.Transpose,
		Pure: true,
		Doc:  "Transpose permutes the axes of the input. By default it reverses them.",
	},
	{
		Domain:       Domain,
		OpType:       "Transpose",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "transposed", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAll},
			Attributes: []opset.AttrSpec{
				{Name: "perm", Kind: attributes.Ints},
			},
		},
		Rule: inference.Transpose,
		Pure: true,
		Doc:  "Transpose permutes the axes of the input. By default it reverses them.",
	},
	{
		Domain:        Domain,
		OpType:        "Unsqueeze",
		SinceVersion:  1,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "expanded", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints, Required: true},
			},
		},
		Rule:      inference.Unsqueeze,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Unsqueeze inserts axes of dimension 1 at the given positions of the output.",
	},
	{
		Domain:        Domain,
		OpType:        "Unsqueeze",
		SinceVersion:  11,
		StableThrough: 12,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "expanded", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesAllNoBf},
			Attributes: []opset.AttrSpec{
				{Name: "axes", Kind: attributes.Ints, Required: true},
			},
		},
		Rule:      inference.Unsqueeze,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Unsqueeze inserts axes of dimension 1 at the given positions of the output.",
	},
	{
		Domain:       Domain,
		OpType:       "Unsqueeze",
		SinceVersion: 13,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "data", TypeVar: "T"}, {Name: "axes", TypeVar: "I"}},
			Outputs:         []opset.Param{{Name: "expanded", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"I": typesInt64, "T": typesAll},
		},
		Rule:      inference.Unsqueeze,
		ValueRule: inference.ReshapeValues,
		Pure:      true,
		Doc:       "Unsqueeze inserts axes of dimension 1 at the given positions of the output.",
	},
	{
		Domain:        Domain,
		OpType:        "Where",
		SinceVersion:  9,
		StableThrough: 18,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "condition", TypeVar: "B"}, {Name: "X", TypeVar: "T"}, {Name: "Y", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"B": typesBool, "T": typesAllNoBf},
		},
		Rule: inference.Where,
		Pure: true,
		Doc:  "Where selects elements of X where the condition is true and of Y elsewhere, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Where",
		SinceVersion: 16,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "condition", TypeVar: "B"}, {Name: "X", TypeVar: "T"}, {Name: "Y", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "output", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"B": typesBool, "T": typesAll},
		},
		Rule: inference.Where,
		Pure: true,
		Doc:  "Where selects elements of X where the condition is true and of Y elsewhere, with broadcasting.",
	},
	{
		Domain:       Domain,
		OpType:       "Xor",
		SinceVersion: 7,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "C", TypeVar: "T1"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesBool, "T1": typesBool},
		},
		Rule: inference.Comparison,
		Pure: true,
		Doc:  "Xor computes the logical exclusive or of the inputs, element-wise, with broadcasting.",
	},
}
