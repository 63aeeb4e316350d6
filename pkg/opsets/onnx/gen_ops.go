/***** File generated by ./internal/cmd/opset_generator, based on schemas.yaml. Don't edit it directly. *****/

package onnx

import (
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/graph"
)

// Abs computes the absolute value of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Abs(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Abs", []*graph.Var{x}, nil, attrs)
}

// Add computes the sum of the inputs, element-wise, with broadcasting.
//
// Versions: 7, 13, 14.
func (o *Ops) Add(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Add", []*graph.Var{a, b}, nil, attrs)
}

// And computes the logical and of the inputs, element-wise, with broadcasting.
//
// Versions: 7.
func (o *Ops) And(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("And", []*graph.Var{a, b}, nil, attrs)
}

// Cast converts the input to the dtype given by the "to" attribute.
//
// Versions: 6, 9, 13.
func (o *Ops) Cast(input *graph.Var, to int64, attrs ...Attribute) *graph.Var {
	return o.Call1("Cast", []*graph.Var{input}, attributes.Map{"to": attributes.IntValue(to)}, attrs)
}

// Ceil rounds the input up to the nearest integer, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Ceil(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Ceil", []*graph.Var{x}, nil, attrs)
}

// Clip limits the input to the range [min, max]. Omitted bounds don't limit the input.
//
// Versions: 6, 11, 12, 13.
func (o *Ops) Clip(input *graph.Var, min *graph.Var, max *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Clip", []*graph.Var{input, min, max}, nil, attrs)
}

// Concat concatenates the inputs along the given axis. All other dimensions must match.
//
// Versions: 4, 11, 13.
func (o *Ops) Concat(inputs []*graph.Var, axis int64, attrs ...Attribute) *graph.Var {
	return o.Call1("Concat", inputs, attributes.Map{"axis": attributes.IntValue(axis)}, attrs)
}

// Constant produces the tensor given by one of its attributes.
//
// Optional attributes: value (tensor), value_float (float), value_floats (floats), value_int (int), value_ints
// (ints), value_string (string), value_strings (strings).
//
// Versions: 9, 12, 13.
func (o *Ops) Constant(attrs ...Attribute) *graph.Var {
	return o.Call1("Constant", nil, nil, attrs)
}

// ConstantOfShape produces a tensor of the given shape filled with the value attribute, by default a float 0.
//
// Optional attributes: value (tensor).
//
// Versions: 9.
func (o *Ops) ConstantOfShape(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("ConstantOfShape", []*graph.Var{input}, nil, attrs)
}

// Cos computes the cosine of the input, element-wise.
//
// Versions: 7.
func (o *Ops) Cos(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Cos", []*graph.Var{input}, nil, attrs)
}

// Div computes the quotient of the inputs, element-wise, with broadcasting.
//
// Versions: 7, 13, 14.
func (o *Ops) Div(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Div", []*graph.Var{a, b}, nil, attrs)
}

// Equal returns whether the inputs are equal, element-wise, with broadcasting.
//
// Versions: 7, 11, 13.
func (o *Ops) Equal(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Equal", []*graph.Var{a, b}, nil, attrs)
}

// Erf computes the error function of the input, element-wise.
//
// Versions: 9, 13.
func (o *Ops) Erf(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Erf", []*graph.Var{input}, nil, attrs)
}

// Exp computes the exponential of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Exp(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Exp", []*graph.Var{input}, nil, attrs)
}

// Expand broadcasts the input to the given shape.
//
// Versions: 8, 13.
func (o *Ops) Expand(input *graph.Var, shape *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Expand", []*graph.Var{input, shape}, nil, attrs)
}

// Flatten reshapes the input to a matrix, joining the axes before the given one into the first dimension and the
// remaining axes into the second.
//
// Optional attributes: axis (int, default 1).
//
// Versions: 1, 9, 11, 13.
func (o *Ops) Flatten(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Flatten", []*graph.Var{input}, nil, attrs)
}

// Floor rounds the input down to the nearest integer, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Floor(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Floor", []*graph.Var{x}, nil, attrs)
}

// Gather takes the entries of the data along the given axis at the given indices.
//
// Optional attributes: axis (int, default 0).
//
// Versions: 1, 11, 13.
func (o *Ops) Gather(data *graph.Var, indices *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Gather", []*graph.Var{data, indices}, nil, attrs)
}

// Gemm computes alpha*A'*B' + beta*C, where A' and B' are A and B optionally transposed, and C is broadcast to
// the result.
//
// Optional attributes: alpha (float, default 1), beta (float, default 1), transA (int, default 0), transB (int,
// default 0).
//
// Versions: 9, 11, 13.
func (o *Ops) Gemm(a *graph.Var, b *graph.Var, c *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Gemm", []*graph.Var{a, b, c}, nil, attrs)
}

// Greater returns whether A > B, element-wise, with broadcasting.
//
// Versions: 7, 9, 13.
func (o *Ops) Greater(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Greater", []*graph.Var{a, b}, nil, attrs)
}

// GreaterOrEqual returns whether A >= B, element-wise, with broadcasting.
//
// Versions: 12, 16.
func (o *Ops) GreaterOrEqual(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("GreaterOrEqual", []*graph.Var{a, b}, nil, attrs)
}

// Identity returns its input unchanged.
//
// Versions: 1, 13, 14, 16.
func (o *Ops) Identity(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Identity", []*graph.Var{input}, nil, attrs)
}

// If returns the outputs of then_branch if the condition is true, and the outputs of else_branch otherwise. The
// branches are subgraphs that take no inputs, see graph.Builder.Subgraph.
//
// Versions: 11, 13.
func (o *Ops) If(cond *graph.Var, thenBranch *graph.Graph, elseBranch *graph.Graph, numOutputs int, attrs ...Attribute) []*graph.Var {
	return o.Call("If", []*graph.Var{cond}, attributes.Map{"then_branch": attributes.GraphValue(thenBranch), "else_branch": attributes.GraphValue(elseBranch)}, attrs, numOutputs)
}

// Less returns whether A < B, element-wise, with broadcasting.
//
// Versions: 7, 9, 13.
func (o *Ops) Less(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Less", []*graph.Var{a, b}, nil, attrs)
}

// LessOrEqual returns whether A <= B, element-wise, with broadcasting.
//
// Versions: 12, 16.
func (o *Ops) LessOrEqual(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("LessOrEqual", []*graph.Var{a, b}, nil, attrs)
}

// Log computes the natural logarithm of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Log(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Log", []*graph.Var{input}, nil, attrs)
}

// LogSoftmax computes the log of the normalized exponential of the input along the given axis.
//
// Optional attributes: axis (int, default -1).
//
// Versions: 1, 11, 13.
func (o *Ops) LogSoftmax(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("LogSoftmax", []*graph.Var{input}, nil, attrs)
}

// MatMul computes the matrix product of the inputs, with the semantics of numpy.matmul.
//
// Versions: 9, 13.
func (o *Ops) MatMul(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("MatMul", []*graph.Var{a, b}, nil, attrs)
}

// Max computes the maximum of any number of inputs, element-wise, with broadcasting.
//
// Versions: 8, 12, 13.
func (o *Ops) Max(data0 []*graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Max", data0, nil, attrs)
}

// Mean computes the mean of any number of inputs, element-wise, with broadcasting.
//
// Versions: 8, 13.
func (o *Ops) Mean(data0 []*graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Mean", data0, nil, attrs)
}

// Min computes the minimum of any number of inputs, element-wise, with broadcasting.
//
// Versions: 8, 12, 13.
func (o *Ops) Min(data0 []*graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Min", data0, nil, attrs)
}

// Mul computes the product of the inputs, element-wise, with broadcasting.
//
// Versions: 7, 13, 14.
func (o *Ops) Mul(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Mul", []*graph.Var{a, b}, nil, attrs)
}

// Neg computes the negation of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Neg(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Neg", []*graph.Var{x}, nil, attrs)
}

// Not computes the logical negation of the input, element-wise.
//
// Versions: 1.
func (o *Ops) Not(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Not", []*graph.Var{x}, nil, attrs)
}

// Or computes the logical or of the inputs, element-wise, with broadcasting.
//
// Versions: 7.
func (o *Ops) Or(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Or", []*graph.Var{a, b}, nil, attrs)
}

// Pow raises the base X to the exponent Y, element-wise, with broadcasting. The exponent may have a different
// type since version 12.
//
// Versions: 7, 12, 13, 15.
func (o *Ops) Pow(x *graph.Var, y *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Pow", []*graph.Var{x, y}, nil, attrs)
}

// RandomNormal produces a tensor of the given shape with values drawn from a normal distribution.
//
// Optional attributes: dtype (int, default 1), mean (float, default 0), scale (float, default 1), seed (float).
//
// Versions: 1.
func (o *Ops) RandomNormal(shape []int64, attrs ...Attribute) *graph.Var {
	return o.Call1("RandomNormal", nil, attributes.Map{"shape": attributes.IntsValue(shape...)}, attrs)
}

// RandomNormalLike produces a tensor with the shape of the input and values drawn from a normal distribution.
//
// Optional attributes: dtype (int), mean (float, default 0), scale (float, default 1), seed (float).
//
// Versions: 1.
func (o *Ops) RandomNormalLike(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("RandomNormalLike", []*graph.Var{input}, nil, attrs)
}

// RandomUniform produces a tensor of the given shape with values drawn from a uniform distribution.
//
// Optional attributes: dtype (int, default 1), high (float, default 1), low (float, default 0), seed (float).
//
// Versions: 1.
func (o *Ops) RandomUniform(shape []int64, attrs ...Attribute) *graph.Var {
	return o.Call1("RandomUniform", nil, attributes.Map{"shape": attributes.IntsValue(shape...)}, attrs)
}

// RandomUniformLike produces a tensor with the shape of the input and values drawn from a uniform distribution.
//
// Optional attributes: dtype (int), high (float, default 1), low (float, default 0), seed (float).
//
// Versions: 1.
func (o *Ops) RandomUniformLike(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("RandomUniformLike", []*graph.Var{input}, nil, attrs)
}

// Range produces the 1D sequence from start up to limit (exclusive) in steps of delta.
//
// Versions: 11.
func (o *Ops) Range(start *graph.Var, limit *graph.Var, delta *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Range", []*graph.Var{start, limit, delta}, nil, attrs)
}

// Reciprocal computes 1/x of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Reciprocal(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Reciprocal", []*graph.Var{x}, nil, attrs)
}

// ReduceMax computes the maximum of the input along the given axes, by default all of them.
//
// Optional attributes: keepdims (int, default 1), noop_with_empty_axes (int, default 0).
//
// Versions: 1, 11, 12, 13, 18.
func (o *Ops) ReduceMax(data *graph.Var, axes *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("ReduceMax", []*graph.Var{data, axes}, nil, attrs)
}

// ReduceMean computes the mean of the input along the given axes, by default all of them.
//
// Optional attributes: keepdims (int, default 1), noop_with_empty_axes (int, default 0).
//
// Versions: 1, 11, 13, 18.
func (o *Ops) ReduceMean(data *graph.Var, axes *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("ReduceMean", []*graph.Var{data, axes}, nil, attrs)
}

// ReduceSum computes the sum of the input along the given axes, by default all of them.
//
// Optional attributes: keepdims (int, default 1), noop_with_empty_axes (int, default 0).
//
// Versions: 1, 11, 13.
func (o *Ops) ReduceSum(data *graph.Var, axes *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("ReduceSum", []*graph.Var{data, axes}, nil, attrs)
}

// Relu computes max(0, x) of the input, element-wise.
//
// Versions: 6, 13, 14.
func (o *Ops) Relu(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Relu", []*graph.Var{x}, nil, attrs)
}

// Reshape changes the dimensions of the data to the given shape. A dimension of -1 is inferred from the others,
// and 0 copies the input dimension unless allowzero is set.
//
// Optional attributes: allowzero (int, default 0).
//
// Versions: 5, 13, 14.
func (o *Ops) Reshape(data *graph.Var, shape *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Reshape", []*graph.Var{data, shape}, nil, attrs)
}

// Shape returns the dimensions of the input as a 1D Int64 tensor, optionally sliced by start and end.
//
// Optional attributes: start (int, default 0), end (int).
//
// Versions: 1, 13, 15.
func (o *Ops) Shape(data *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Shape", []*graph.Var{data}, nil, attrs)
}

// Sigmoid computes 1/(1+exp(-x)) of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Sigmoid(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Sigmoid", []*graph.Var{x}, nil, attrs)
}

// Sin computes the sine of the input, element-wise.
//
// Versions: 7.
func (o *Ops) Sin(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Sin", []*graph.Var{input}, nil, attrs)
}

// Size returns the number of elements of the input as an Int64 scalar.
//
// Versions: 1, 13.
func (o *Ops) Size(data *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Size", []*graph.Var{data}, nil, attrs)
}

// Softmax computes the normalized exponential of the input along the given axis.
//
// Optional attributes: axis (int, default -1).
//
// Versions: 1, 11, 13.
func (o *Ops) Softmax(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Softmax", []*graph.Var{input}, nil, attrs)
}

// Split splits the input along the given axis into the given number of outputs. The sizes of the parts are given
// by the split input or are equal (the last one may be smaller since version 18).
//
// Optional attributes: axis (int, default 0), num_outputs (int).
//
// Versions: 2, 11, 13, 18.
func (o *Ops) Split(input *graph.Var, split *graph.Var, numOutputs int, attrs ...Attribute) []*graph.Var {
	return o.Call("Split", []*graph.Var{input, split}, nil, attrs, numOutputs)
}

// Sqrt computes the square root of the input, element-wise. Negative values yield NaN.
//
// Versions: 6, 13.
func (o *Ops) Sqrt(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Sqrt", []*graph.Var{x}, nil, attrs)
}

// Squeeze removes the given axes, which must have dimension 1, or all the axes of dimension 1.
//
// Versions: 1, 11, 13.
func (o *Ops) Squeeze(data *graph.Var, axes *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Squeeze", []*graph.Var{data, axes}, nil, attrs)
}

// Sub computes the difference of the inputs, element-wise, with broadcasting.
//
// Versions: 7, 13, 14.
func (o *Ops) Sub(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Sub", []*graph.Var{a, b}, nil, attrs)
}

// Sum computes the sum of any number of inputs, element-wise, with broadcasting.
//
// Versions: 8, 13.
func (o *Ops) Sum(data0 []*graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Sum", data0, nil, attrs)
}

// Tanh computes the hyperbolic tangent of the input, element-wise.
//
// Versions: 6, 13.
func (o *Ops) Tanh(input *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Tanh", []*graph.Var{input}, nil, attrs)
}

// Transpose permutes the axes of the input. By default it reverses them.
//
// Optional attributes: perm (ints).
//
// Versions: 1, 13.
func (o *Ops) Transpose(data *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Transpose", []*graph.Var{data}, nil, attrs)
}

// Unsqueeze inserts axes of dimension 1 at the given positions of the output.
//
// Versions: 1, 11, 13.
func (o *Ops) Unsqueeze(data *graph.Var, axes *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Unsqueeze", []*graph.Var{data, axes}, nil, attrs)
}

// Where selects elements of X where the condition is true and of Y elsewhere, with broadcasting.
//
// Versions: 9, 16.
func (o *Ops) Where(condition *graph.Var, x *graph.Var, y *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Where", []*graph.Var{condition, x, y}, nil, attrs)
}

// Xor computes the logical exclusive or of the inputs, element-wise, with broadcasting.
//
// Versions: 7.
func (o *Ops) Xor(a *graph.Var, b *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Xor", []*graph.Var{a, b}, nil, attrs)
}
