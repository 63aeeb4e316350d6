// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"fmt"
	"testing"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Aliases
const (
	F32 = dtypes.Float32
	I64 = dtypes.Int64
)

var (
	S  = shapes.Make
	SS = shapes.MakeSymbolic
)

func request(op string, inputs ...shapes.Shape) *Request {
	return &Request{Op: op, Inputs: inputs, NumOutputs: 1}
}

func (r *Request) with(name string, value attributes.Value) *Request {
	if r.Attrs == nil {
		r.Attrs = attributes.Map{}
	}
	r.Attrs[name] = value
	return r
}

func (r *Request) withValues(values ...*tensors.Tensor) *Request {
	r.Values = values
	return r
}

func (r *Request) outputs(n int) *Request {
	r.NumOutputs = n
	return r
}

func mustInfer(t *testing.T, rule Rule, req *Request) []shapes.Shape {
	outputs, err := Run(rule, req)
	require.NoError(t, err)
	return outputs
}

func requireShape(t *testing.T, want, got shapes.Shape) {
	require.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

func ints(values ...int64) *tensors.Tensor {
	return tensors.FromFlatDataAndDimensions(values, len(values))
}

func TestBroadcastShapes(t *testing.T) {
	testCases := []struct {
		a, b, want shapes.Shape
	}{
		{S(F32, 2, 3), S(F32, 2, 3), S(F32, 2, 3)},
		{S(F32), S(F32, 2, 3), S(F32, 2, 3)},
		{S(F32, 3), S(F32, 2, 1), S(F32, 2, 3)},
		{SS(F32, "N"), SS(F32, 2, "N"), SS(F32, 2, "N")},
		{SS(F32, "N"), S(F32, 1), SS(F32, "N")},
		{SS(F32, "N"), S(F32, 5), S(F32, 5)},
		{SS(F32, "N"), SS(F32, "M"), S(F32, shapes.DimUnknown)},
		{SS(F32, "N"), SS(F32, "N"), SS(F32, "N")},
		{S(F32, shapes.DimUnknown), S(F32, 4), S(F32, 4)},
		{shapes.MakeUnknownRank(F32), S(F32, 4), shapes.MakeUnknownRank(F32)},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s+%s", tc.a, tc.b), func(t *testing.T) {
			got, err := BroadcastShapes(F32, tc.a, tc.b)
			require.NoError(t, err)
			requireShape(t, tc.want, got)
			got, err = BroadcastShapes(F32, tc.b, tc.a)
			require.NoError(t, err)
			requireShape(t, tc.want, got)
		})
	}

	_, err := BroadcastShapes(F32, S(F32, 2), S(F32, 3))
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestElementwise(t *testing.T) {
	out := mustInfer(t, Broadcasting, request("Add", SS(F32, "N"), SS(F32, 2, "N")))
	requireShape(t, SS(F32, 2, "N"), out[0])

	out = mustInfer(t, Broadcasting, request("Max", S(F32, 3), S(F32, 2, 1), S(F32, 1, 1)))
	requireShape(t, S(F32, 2, 3), out[0])

	out = mustInfer(t, Comparison, request("GreaterOrEqual", S(F32, 2), S(F32)))
	requireShape(t, S(dtypes.Bool, 2), out[0])

	out = mustInfer(t, Where, request("Where", S(dtypes.Bool, 2, 1), S(I64, 3), S(I64)))
	requireShape(t, S(I64, 2, 3), out[0])

	_, err := Run(Broadcasting, request("Add", S(F32, 2), S(F32, 3)))
	require.ErrorIs(t, err, errs.ErrInference)
	require.Contains(t, err.Error(), "in Add")

	out = mustInfer(t, Cast, request("Cast", SS(F32, "N", 2)).with("to", attributes.IntValue(int64(dtypes.Float16))))
	requireShape(t, SS(dtypes.Float16, "N", 2), out[0])
	_, err = Run(Cast, request("Cast", S(F32, 2)).with("to", attributes.IntValue(99)))
	require.ErrorIs(t, err, errs.ErrInference)

	// Clip with omitted min.
	out = mustInfer(t, Clip, request("Clip", S(F32, 2, 2), shapes.Invalid(), S(F32)))
	requireShape(t, S(F32, 2, 2), out[0])
	_, err = Run(Clip, request("Clip", S(F32, 2, 2), S(F32, 2)))
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestMatMulAndGemm(t *testing.T) {
	out := mustInfer(t, MatMul, request("MatMul", SS(F32, "B", 2, 3), S(F32, 3, 4)))
	requireShape(t, SS(F32, "B", 2, 4), out[0])
	out = mustInfer(t, MatMul, request("MatMul", S(F32, 3), S(F32, 3, 4)))
	requireShape(t, S(F32, 4), out[0])
	out = mustInfer(t, MatMul, request("MatMul", S(F32, 2, 3), S(F32, 3)))
	requireShape(t, S(F32, 2), out[0])
	out = mustInfer(t, MatMul, request("MatMul", shapes.MakeUnknownRank(F32), S(F32, 3, 4)))
	requireShape(t, shapes.MakeUnknownRank(F32), out[0])
	_, err := Run(MatMul, request("MatMul", S(F32, 2, 3), S(F32, 4, 5)))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Gemm, request("Gemm", S(F32, 3, 2), S(F32, 3, 4), S(F32, 4)).
		with("transA", attributes.IntValue(1)))
	requireShape(t, S(F32, 2, 4), out[0])
	_, err = Run(Gemm, request("Gemm", S(F32, 2, 3), S(F32, 3, 4), S(F32, 3)))
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestAxes(t *testing.T) {
	// Deferred axis check: unknown rank doesn't fail.
	unknown := shapes.MakeUnknownRank(F32)
	out := mustInfer(t, Softmax, request("Softmax", unknown).with("axis", attributes.IntValue(5)))
	requireShape(t, unknown, out[0])
	_, err := Run(Softmax, request("Softmax", S(F32, 2, 3)).with("axis", attributes.IntValue(5)))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Flatten, request("Flatten", unknown).with("axis", attributes.IntValue(7)))
	requireShape(t, S(F32, shapes.DimUnknown, shapes.DimUnknown), out[0])
	out = mustInfer(t, Flatten, request("Flatten", S(F32, 2, 3, 4)).with("axis", attributes.IntValue(-1)))
	requireShape(t, S(F32, 6, 4), out[0])
	_, err = Run(Flatten, request("Flatten", S(F32, 2, 3)).with("axis", attributes.IntValue(3)))
	require.ErrorIs(t, err, errs.ErrInference)

	normalized, known, err := NormalizeAxis(-1, S(F32, 2, 3))
	require.NoError(t, err)
	require.True(t, known)
	require.Equal(t, 1, normalized)
	_, known, err = NormalizeAxis(9, unknown)
	require.NoError(t, err)
	require.False(t, known)
}

func TestConcatAndGather(t *testing.T) {
	out := mustInfer(t, Concat, request("Concat", SS(F32, 2, "N"), SS(F32, 3, "N")).
		with("axis", attributes.IntValue(0)))
	requireShape(t, SS(F32, 5, "N"), out[0])
	out = mustInfer(t, Concat, request("Concat", SS(F32, "M", 2), S(F32, 3, 2)).
		with("axis", attributes.IntValue(0)))
	requireShape(t, S(F32, shapes.DimUnknown, 2), out[0])
	_, err := Run(Concat, request("Concat", S(F32, 2, 2), S(F32, 2, 3)).with("axis", attributes.IntValue(0)))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Gather, request("Gather", S(F32, 5, 4, 3), S(I64, 2, 2)).
		with("axis", attributes.IntValue(1)))
	requireShape(t, S(F32, 5, 2, 2, 3), out[0])
}

func TestReshapeFamily(t *testing.T) {
	out := mustInfer(t, Reshape, request("Reshape", S(F32, 2, 3, 4), S(I64, 3)).withValues(nil, ints(0, -1, 2)))
	requireShape(t, S(F32, 2, 6, 2), out[0])
	out = mustInfer(t, Reshape, request("Reshape", S(F32, 2, 3, 4), S(I64, 2)))
	requireShape(t, S(F32, shapes.DimUnknown, shapes.DimUnknown), out[0])
	_, err := Run(Reshape, request("Reshape", S(F32, 2, 3), S(I64, 2)).withValues(nil, ints(-1, -1)))
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = Run(Reshape, request("Reshape", S(F32, 2, 3), S(I64, 1)).withValues(nil, ints(5)))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Transpose, request("Transpose", SS(F32, "N", 2, 3)))
	requireShape(t, SS(F32, 3, 2, "N"), out[0])
	out = mustInfer(t, Transpose, request("Transpose", SS(F32, "N", 2, 3)).with("perm", attributes.IntsValue(1, 0, 2)))
	requireShape(t, SS(F32, 2, "N", 3), out[0])

	// Squeeze/Unsqueeze with attribute axes (opset 11) and input axes (opset 13).
	out = mustInfer(t, Squeeze, request("Squeeze", S(F32, 1, 3, 1)).with("axes", attributes.IntsValue(0)))
	requireShape(t, S(F32, 3, 1), out[0])
	out = mustInfer(t, Squeeze, request("Squeeze", S(F32, 1, 3, 1), S(I64, 1)).withValues(nil, ints(-1)))
	requireShape(t, S(F32, 1, 3), out[0])
	out = mustInfer(t, Squeeze, request("Squeeze", S(F32, 1, 3, 1)))
	requireShape(t, S(F32, 3), out[0])
	out = mustInfer(t, Squeeze, request("Squeeze", S(F32, 1, 3), S(I64, 1)))
	requireShape(t, shapes.MakeUnknownRank(F32), out[0])
	_, err = Run(Squeeze, request("Squeeze", S(F32, 2, 3)).with("axes", attributes.IntsValue(0)))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Unsqueeze, request("Unsqueeze", S(F32, 3, 4), S(I64, 2)).withValues(nil, ints(0, -1)))
	requireShape(t, S(F32, 1, 3, 4, 1), out[0])
	_, err = Run(Unsqueeze, request("Unsqueeze", S(F32, 3)))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Expand, request("Expand", S(F32, 3, 1), S(I64, 3)).withValues(nil, ints(2, 1, 4)))
	requireShape(t, S(F32, 2, 3, 4), out[0])
}

func TestReduce(t *testing.T) {
	out := mustInfer(t, Reduce, request("ReduceSum", S(F32, 2, 3, 4)).with("axes", attributes.IntsValue(1)))
	requireShape(t, S(F32, 2, 1, 4), out[0])
	out = mustInfer(t, Reduce, request("ReduceSum", S(F32, 2, 3, 4), S(I64, 2)).
		withValues(nil, ints(0, 2)).with("keepdims", attributes.IntValue(0)))
	requireShape(t, S(F32, 3), out[0])
	out = mustInfer(t, Reduce, request("ReduceMean", S(F32, 2, 3)).with("keepdims", attributes.IntValue(0)))
	requireShape(t, S(F32), out[0])
	out = mustInfer(t, Reduce, request("ReduceSum", S(F32, 2, 3)).with("noop_with_empty_axes", attributes.IntValue(1)))
	requireShape(t, S(F32, 2, 3), out[0])
	out = mustInfer(t, Reduce, request("ReduceSum", S(F32, 2, 3), S(I64, 1)))
	requireShape(t, S(F32, shapes.DimUnknown, shapes.DimUnknown), out[0])
}

func TestSplit(t *testing.T) {
	outs := mustInfer(t, Split, request("Split", SS(F32, 3, "N")).outputs(3))
	require.Len(t, outs, 3)
	for _, out := range outs {
		requireShape(t, SS(F32, 1, "N"), out)
	}
	outs = mustInfer(t, Split, request("Split", S(F32, 2, 5)).outputs(2).
		with("axis", attributes.IntValue(1)).with("split", attributes.IntsValue(2, 3)))
	requireShape(t, S(F32, 2, 2), outs[0])
	requireShape(t, S(F32, 2, 3), outs[1])
	outs = mustInfer(t, Split, request("Split", S(F32, 5)).outputs(2).with("num_outputs", attributes.IntValue(2)))
	requireShape(t, S(F32, 3), outs[0])
	requireShape(t, S(F32, 2), outs[1])

	_, err := Run(Split, request("Split", S(F32, 5)).outputs(2))
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = Run(Split, request("Split", S(F32, 5)).outputs(2).with("split", attributes.IntsValue(1, 1)))
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestConstantsAndValues(t *testing.T) {
	req := request("Constant").with("value_ints", attributes.IntsValue(2, 3))
	out := mustInfer(t, Constant, req)
	requireShape(t, S(I64, 2), out[0])
	values, err := ConstantValues(req, out)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3}, values[0].Flat())
	_, err = Run(Constant, request("Constant"))
	require.ErrorIs(t, err, errs.ErrInference)

	req = request("Shape", SS(F32, 2, "N", 4)).with("start", attributes.IntValue(-1))
	out = mustInfer(t, Shape, req)
	requireShape(t, S(I64, 1), out[0])
	values, err = ShapeValues(req, out)
	require.NoError(t, err)
	require.Equal(t, []int64{4}, values[0].Flat())
	values, err = ShapeValues(request("Shape", SS(F32, 2, "N")), nil)
	require.NoError(t, err)
	require.Nil(t, values)

	out = mustInfer(t, ConstantOfShape, request("ConstantOfShape", S(I64, 2)).withValues(ints(2, 3)).
		with("value", attributes.TensorValue(tensors.FromFlatDataAndDimensions([]int32{7}, 1))))
	requireShape(t, S(dtypes.Int32, 2, 3), out[0])

	start, limit, delta := tensors.FromScalar(int64(0)), tensors.FromScalar(int64(10)), tensors.FromScalar(int64(3))
	out = mustInfer(t, Range, request("Range", S(I64), S(I64), S(I64)).withValues(start, limit, delta))
	requireShape(t, S(I64, 4), out[0])
	out = mustInfer(t, Range, request("Range", S(I64), S(I64), S(I64)))
	requireShape(t, S(I64, shapes.DimUnknown), out[0])

	req = request("Cast", S(I64, 2)).with("to", attributes.IntValue(int64(dtypes.Float32))).withValues(ints(1, 2))
	out = mustInfer(t, Cast, req)
	values, err = CastValues(req, out)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2}, values[0].Flat())

	req = request("Concat", S(I64, 2), S(I64, 1)).with("axis", attributes.IntValue(0)).withValues(ints(1, 2), ints(3))
	out = mustInfer(t, Concat, req)
	values, err = ConcatValues(req, out)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, values[0].Flat())

	req = request("Gather", S(I64, 3), S(I64)).withValues(ints(5, 6, 7), tensors.FromScalar(int64(-1)))
	out = mustInfer(t, Gather, req)
	requireShape(t, S(I64), out[0])
	values, err = GatherValues(req, out)
	require.NoError(t, err)
	require.Equal(t, []int64{7}, values[0].Flat())
}

func TestRandomAndNormalizer(t *testing.T) {
	out := mustInfer(t, RandomFromShape, request("RandomNormal").with("shape", attributes.IntsValue(2, 3)))
	requireShape(t, S(F32, 2, 3), out[0])
	out = mustInfer(t, RandomLike, request("RandomUniformLike", S(dtypes.Float64, 4)))
	requireShape(t, S(dtypes.Float64, 4), out[0])
	_, err := Run(RandomFromShape, request("RandomNormal"))
	require.ErrorIs(t, err, errs.ErrInference)

	out = mustInfer(t, Normalizer, request("Normalizer", SS(I64, "N", 3)).with("norm", attributes.StringValue("L2")))
	requireShape(t, SS(F32, "N", 3), out[0])
	_, err = Run(Normalizer, request("Normalizer", S(F32, 3)).with("norm", attributes.StringValue("L3")))
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestCheckMonotone(t *testing.T) {
	unknown := shapes.MakeUnknownRank(F32)
	testCases := []struct {
		op               string
		rule             Rule
		general, refined []shapes.Shape
	}{
		{"Add", Broadcasting, []shapes.Shape{SS(F32, "N", 3), S(F32, 1, 3)}, []shapes.Shape{S(F32, 2, 3), S(F32, 1, 3)}},
		{"Add", Broadcasting, []shapes.Shape{unknown, S(F32, 3, 3)}, []shapes.Shape{S(F32, 3, 3), S(F32, 3, 3)}},
		{"MatMul", MatMul, []shapes.Shape{SS(F32, "N", 3), S(F32, 3, 4)}, []shapes.Shape{S(F32, 2, 3), S(F32, 3, 4)}},
		{"MatMul", MatMul, []shapes.Shape{unknown, S(F32, 3, 4)}, []shapes.Shape{S(F32, 2, 3), S(F32, 3, 4)}},
		{"Concat", Concat, []shapes.Shape{S(F32, shapes.DimUnknown, 3), S(F32, 1, 3)}, []shapes.Shape{S(F32, 1, 3), S(F32, 1, 3)}},
		{"Concat", Concat, []shapes.Shape{unknown, S(F32, 1, 3)}, []shapes.Shape{S(F32, 2, 3), S(F32, 1, 3)}},
		{"Transpose", Transpose, []shapes.Shape{SS(F32, "N", 2)}, []shapes.Shape{S(F32, 4, 2)}},
		{"Transpose", Transpose, []shapes.Shape{unknown}, []shapes.Shape{S(F32, 4, 2)}},
		{"Squeeze", Squeeze, []shapes.Shape{S(F32, shapes.DimUnknown, 3)}, []shapes.Shape{S(F32, 1, 3)}},
		{"Flatten", Flatten, []shapes.Shape{unknown}, []shapes.Shape{S(F32, 2, 3)}},
		{"ReduceSum", Reduce, []shapes.Shape{unknown}, []shapes.Shape{S(F32, 2, 3)}},
	}
	for _, tc := range testCases {
		general := request(tc.op, tc.general...).with("axis", attributes.IntValue(0))
		refined := request(tc.op, tc.refined...).with("axis", attributes.IntValue(0))
		assert.NoError(t, CheckMonotone(tc.rule, general, refined), "%s: %v -> %v", tc.op, tc.general, tc.refined)
	}

	// A rule that "forgets" information with refined inputs is caught.
	faulty := func(req *Request) ([]shapes.Shape, error) {
		if req.Inputs[0].IsFullyKnown() {
			return []shapes.Shape{S(F32, 7)}, nil
		}
		return []shapes.Shape{S(F32, 3)}, nil
	}
	err := CheckMonotone(faulty, request("Faulty", SS(F32, "N")), request("Faulty", S(F32, 3)))
	require.ErrorIs(t, err, errs.ErrInternalInference)

	// A deferred check surfacing is an ordinary inference error.
	err = CheckMonotone(Softmax,
		request("Softmax", shapes.MakeUnknownRank(F32)).with("axis", attributes.IntValue(3)),
		request("Softmax", S(F32, 2)).with("axis", attributes.IntValue(3)))
	require.ErrorIs(t, err, errs.ErrInference)
}

func TestRunChecksOutputCount(t *testing.T) {
	_, err := Run(Unary, request("Relu", S(F32, 2)).outputs(0))
	require.NoError(t, err)
	_, err = Run(Broadcasting, request("Add", S(F32, 2), S(F32, 2)).outputs(2))
	require.ErrorIs(t, err, errs.ErrInternalInference)
}
