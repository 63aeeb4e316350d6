// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package opset

import (
	"testing"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/stretchr/testify/require"
)

var floats = []dtypes.DType{dtypes.Float32, dtypes.Float64}

func binarySignature(types []dtypes.DType) *Signature {
	return &Signature{
		Inputs:          []Param{{Name: "A", TypeVar: "T"}, {Name: "B", TypeVar: "T"}},
		Outputs:         []Param{{Name: "C", TypeVar: "T"}},
		TypeConstraints: map[string][]dtypes.DType{"T": types},
	}
}

func softmaxSignature(defaultAxis int64) *Signature {
	return &Signature{
		Inputs:          []Param{{Name: "input", TypeVar: "T"}},
		Outputs:         []Param{{Name: "output", TypeVar: "T"}},
		TypeConstraints: map[string][]dtypes.DType{"T": floats},
		Attributes:      []AttrSpec{{Name: "axis", Kind: attributes.Int, Default: attributes.IntValue(defaultAxis)}},
	}
}

func newTestTable(t *testing.T) *Table {
	table := NewTable("test")
	require.NoError(t, table.SupportDomain("", 15))
	table.MustRegister(
		&Binding{OpType: "Add", SinceVersion: 7, StableThrough: 15, Signature: binarySignature(floats),
			Rule: inference.Broadcasting, Pure: true},
		&Binding{OpType: "Add", SinceVersion: 13, StableThrough: 15, Signature: binarySignature(floats),
			Rule: inference.Broadcasting, Pure: true},
		&Binding{OpType: "Add", SinceVersion: 14, Signature: binarySignature(append(floats, dtypes.Int8)),
			Rule: inference.Broadcasting, Pure: true},
		&Binding{OpType: "Softmax", SinceVersion: 11, Signature: softmaxSignature(1), Rule: inference.Softmax, Pure: true},
		&Binding{Domain: "ai.onnx", OpType: "Softmax", SinceVersion: 13, Signature: softmaxSignature(-1),
			Rule: inference.Softmax, Pure: true},
	)
	return table.Freeze()
}

func TestResolve(t *testing.T) {
	table := newTestTable(t)
	b, err := table.Resolve("", 13, "Add")
	require.NoError(t, err)
	require.Equal(t, 13, b.SinceVersion)
	again, err := table.Resolve("ai.onnx", 13, "Add")
	require.NoError(t, err)
	require.Same(t, b, again)

	b, err = table.Resolve("", 12, "Add")
	require.NoError(t, err)
	require.Equal(t, 7, b.SinceVersion)

	for _, tc := range []struct {
		domain  string
		version int
		op      string
	}{
		{"", 6, "Add"},
		{"", 16, "Add"},
		{"", 13, "Conv"},
		{"com.example", 1, "Add"},
	} {
		_, err = table.Resolve(tc.domain, tc.version, tc.op)
		require.ErrorIs(t, err, errs.ErrUnsupportedOpset, "%+v", tc)
	}

	require.Equal(t, []string{""}, table.Domains())
	require.Equal(t, 15, table.LatestVersion("ai.onnx"))
	require.Equal(t, []string{"Add", "Softmax"}, table.Ops(""))
	require.Len(t, table.Bindings("", "Add"), 3)
}

func TestRegister(t *testing.T) {
	table := NewTable("register")
	require.NoError(t, table.SupportDomain("", 13))
	add := &Binding{OpType: "Add", SinceVersion: 7, Signature: binarySignature(floats), Rule: inference.Broadcasting}
	require.NoError(t, table.Register(add))
	require.Error(t, table.Register(add))
	require.Error(t, table.Register(&Binding{OpType: "Add", SinceVersion: 14,
		Signature: binarySignature(floats), Rule: inference.Broadcasting}))
	require.Error(t, table.Register(&Binding{Domain: "ai.onnx.ml", OpType: "Normalizer", SinceVersion: 1,
		Signature: binarySignature(floats), Rule: inference.Normalizer}))
	require.Error(t, table.Register(&Binding{OpType: "Sub", SinceVersion: 7,
		Signature: &Signature{Inputs: []Param{{Name: "A", TypeVar: "X"}}}, Rule: inference.Broadcasting}))

	clone := table.Clone("extended")
	require.NoError(t, clone.SupportDomain("", 14))
	require.NoError(t, clone.Register(&Binding{OpType: "Add", SinceVersion: 14,
		Signature: binarySignature(floats), Rule: inference.Broadcasting}))
	require.Len(t, clone.Bindings("", "Add"), 2)
	require.Len(t, table.Bindings("", "Add"), 1)

	table.Freeze()
	require.True(t, table.IsFrozen())
	require.Error(t, table.Register(&Binding{OpType: "Sub", SinceVersion: 7,
		Signature: binarySignature(floats), Rule: inference.Broadcasting}))
	require.Error(t, table.SupportDomain("", 15))
}

func TestCheckEpoch(t *testing.T) {
	table := newTestTable(t)
	add7, err := table.Resolve("", 7, "Add")
	require.NoError(t, err)
	// Add-7 extended only types up to 14.
	require.NoError(t, table.CheckEpoch(add7, 7, 14))
	require.NoError(t, table.CheckEpoch(add7, 7, 7))

	softmax11, err := table.Resolve("", 11, "Softmax")
	require.NoError(t, err)
	require.NoError(t, table.CheckEpoch(softmax11, 11, 12))
	err = table.CheckEpoch(softmax11, 11, 13)
	require.ErrorIs(t, err, errs.ErrUnsupportedOpset)
	require.Contains(t, err.Error(), "Softmax-11")

	// Graph versions beyond the table or below the node's are rejected.
	require.ErrorIs(t, table.CheckEpoch(add7, 7, 16), errs.ErrUnsupportedOpset)
	require.ErrorIs(t, table.CheckEpoch(add7, 13, 12), errs.ErrUnsupportedOpset)
}

func TestSignatureCheck(t *testing.T) {
	f32 := shapes.Make(dtypes.Float32, 2)
	sig := binarySignature(floats)
	_, err := sig.Check([]shapes.Shape{f32, shapes.Make(dtypes.Float64, 2)}, nil, 1)
	require.ErrorIs(t, err, errs.ErrType)
	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	require.Equal(t, 1, checkErr.Input)

	_, err = sig.Check([]shapes.Shape{shapes.Make(dtypes.Int64, 2), f32}, nil, 1)
	require.ErrorIs(t, err, errs.ErrType)
	_, err = sig.Check([]shapes.Shape{f32}, nil, 1)
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = sig.Check([]shapes.Shape{f32, f32}, nil, 2)
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = sig.Check([]shapes.Shape{f32, f32}, attributes.Map{"axis": attributes.IntValue(0)}, 1)
	require.ErrorIs(t, err, errs.ErrInference)

	softmax := softmaxSignature(-1)
	filled, err := softmax.Check([]shapes.Shape{f32}, nil, 1)
	require.NoError(t, err)
	require.Equal(t, int64(-1), filled["axis"].Int())
	_, err = softmax.Check([]shapes.Shape{f32}, attributes.Map{"axis": attributes.FloatValue(1)}, 1)
	require.ErrorIs(t, err, errs.ErrInference)

	// Optional and variadic parameters.
	clip := &Signature{
		Inputs: []Param{
			{Name: "input", TypeVar: "T"}, {Name: "min", TypeVar: "T", Option: Optional},
			{Name: "max", TypeVar: "T", Option: Optional},
		},
		Outputs:         []Param{{Name: "output", TypeVar: "T"}},
		TypeConstraints: map[string][]dtypes.DType{"T": floats},
	}
	_, err = clip.Check([]shapes.Shape{f32, shapes.Invalid(), shapes.Scalar(dtypes.Float32)}, nil, 1)
	require.NoError(t, err)
	_, err = clip.Check([]shapes.Shape{shapes.Invalid()}, nil, 1)
	require.ErrorIs(t, err, errs.ErrInference)

	variadic := &Signature{
		Inputs:          []Param{{Name: "data", TypeVar: "T", Option: Variadic}},
		Outputs:         []Param{{Name: "out", TypeVar: "T", Option: Variadic}},
		TypeConstraints: map[string][]dtypes.DType{"T": floats},
	}
	_, err = variadic.Check([]shapes.Shape{f32, f32, f32}, nil, 3)
	require.NoError(t, err)
	_, err = variadic.Check(nil, nil, 1)
	require.ErrorIs(t, err, errs.ErrInference)
	_, err = variadic.Check([]shapes.Shape{f32}, nil, 0)
	require.ErrorIs(t, err, errs.ErrInference)
}
