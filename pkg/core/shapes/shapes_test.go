// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	require.False(t, invalidShape.Ok())

	shape0 := Make(dtypes.Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Equal(t, 1, shape0.Size())
	require.Equal(t, 8, int(shape0.Memory()))
	require.Equal(t, "(Float64)", shape0.String())

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, 4*4*3*2, int(shape1.Memory()))

	unknown := MakeUnknownRank(dtypes.Bool)
	require.False(t, unknown.HasRank())
	require.Equal(t, -1, unknown.Rank())
	require.False(t, unknown.IsScalar())
	require.Equal(t, -1, unknown.Size())
	require.Equal(t, "(Bool)[...]", unknown.String())

	symbolic := MakeSymbolic(dtypes.Int64, "N", DimUnknown, 3)
	require.Equal(t, "(Int64)[N ? 3]", symbolic.String())
	require.False(t, symbolic.IsFullyKnown())
	require.True(t, symbolic.HasNamedAxes())
	require.Equal(t, "N", symbolic.AxisName(0))
	require.Equal(t, "", symbolic.AxisName(2))

	require.Panics(t, func() { _ = Make(dtypes.Float32, -3) })
	require.Panics(t, func() { _ = MakeSymbolic(dtypes.Float32, 1.5) })
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
	require.Panics(t, func() { _ = MakeUnknownRank(dtypes.Float32).Dim(0) })
}

func TestEqualAndCompatible(t *testing.T) {
	a := MakeSymbolic(dtypes.Float32, "N", 3)
	require.True(t, a.Equal(MakeSymbolic(dtypes.Float32, "N", 3)))
	require.False(t, a.Equal(MakeSymbolic(dtypes.Float32, "M", 3)))
	require.False(t, a.Equal(Make(dtypes.Float32, DimUnknown, 3)))
	require.False(t, a.Equal(a.WithDType(dtypes.Float64)))

	require.True(t, a.Compatible(Make(dtypes.Float32, 7, 3)))
	require.True(t, a.Compatible(Make(dtypes.Float32, DimUnknown, DimUnknown)))
	require.True(t, a.Compatible(MakeUnknownRank(dtypes.Float32)))
	require.False(t, a.Compatible(MakeSymbolic(dtypes.Float32, "M", 3)))
	require.False(t, a.Compatible(Make(dtypes.Float32, 7, 4)))
	require.False(t, a.Compatible(Make(dtypes.Float32, 7)))
	require.False(t, a.Compatible(Make(dtypes.Int32, 7, 3)))
}

func TestRefines(t *testing.T) {
	general := MakeSymbolic(dtypes.Float32, "N", DimUnknown, 3)
	require.True(t, general.Refines(general))
	require.True(t, Make(dtypes.Float32, 2, 5, 3).Refines(general))
	require.True(t, MakeSymbolic(dtypes.Float32, "N", "K", 3).Refines(general))
	require.False(t, MakeSymbolic(dtypes.Float32, "M", 5, 3).Refines(general))
	require.False(t, Make(dtypes.Float32, 2, 5, 4).Refines(general))
	require.False(t, Make(dtypes.Float32, 2, 5).Refines(general))
	require.False(t, MakeUnknownRank(dtypes.Float32).Refines(general))
	require.True(t, general.Refines(MakeUnknownRank(dtypes.Float32)))
	require.False(t, Make(dtypes.Float64, 2, 5, 3).Refines(general))
}

func TestFromAnyValue(t *testing.T) {
	shape, err := FromAnyValue([]int32{1, 2, 3})
	require.NoError(t, err)
	require.True(t, shape.Equal(Make(dtypes.Int32, 3)))

	shape, err = FromAnyValue([][][]complex64{{{1, 2, -3}, {3, 4 + 2i, -7 - 1i}}})
	require.NoError(t, err)
	require.True(t, shape.Equal(Make(dtypes.Complex64, 1, 2, 3)))

	shape, err = FromAnyValue([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, shape.Equal(Make(dtypes.String, 2)))

	shape, err = FromAnyValue([][]float32{})
	require.NoError(t, err)
	require.True(t, shape.Equal(Make(dtypes.Float32, 0, 0)))

	shape, err = FromAnyValue([][]float32{{1, 2, 3}, {4, 5}})
	require.Errorf(t, err, "irregular shape should have returned an error, instead got shape %s", shape)

	_, err = FromAnyValue(nil)
	require.Error(t, err)
	_, err = FromAnyValue(struct{}{})
	require.Error(t, err)
}
