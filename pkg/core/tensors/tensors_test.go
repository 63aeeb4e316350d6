// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"testing"

	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/dtypes/bfloat16"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromAnyValue(t *testing.T) {
	tensor, err := FromAnyValue([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.True(t, tensor.Shape().Equal(shapes.Make(dtypes.Int64, 2, 3)))
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6}, tensor.Flat())
	require.Equal(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, tensor.Value())

	scalar, err := FromAnyValue(float32(7))
	require.NoError(t, err)
	require.True(t, scalar.IsScalar())
	require.Equal(t, float32(7), scalar.Value())

	same, err := FromAnyValue(tensor)
	require.NoError(t, err)
	require.Same(t, tensor, same)

	_, err = FromAnyValue([][]float32{{1}, {2, 3}})
	require.Error(t, err)
}

func TestFromFlatDataAndDimensions(t *testing.T) {
	tensor := FromFlatDataAndDimensions([]int{1, 2, 3, 4}, 2, 2)
	require.Equal(t, dtypes.Int64, tensor.DType())
	values, err := CopyFlatData[int64](tensor)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4}, values)
	_, err = CopyFlatData[float32](tensor)
	require.Error(t, err)

	require.Panics(t, func() { FromFlatDataAndDimensions([]float32{1, 2, 3}, 2, 2) })

	s := FromScalar("hello")
	require.Equal(t, dtypes.String, s.DType())
	strs, err := s.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, strs)
	require.Equal(t, uintptr(5), s.Memory())
}

func TestRaw(t *testing.T) {
	for _, tensor := range []*Tensor{
		FromFlatDataAndDimensions([]float32{1.5, -2, 0}, 3),
		FromFlatDataAndDimensions([]bool{true, false}, 1, 2),
		FromFlatDataAndDimensions([]float16.Float16{float16.Fromfloat32(0.5)}, 1),
		FromFlatDataAndDimensions([]bfloat16.BFloat16{bfloat16.FromFloat32(3)}),
		FromFlatDataAndDimensions([]complex128{1 + 2i}, 1),
		FromFlatDataAndDimensions([]uint16{}, 0, 3),
	} {
		raw, err := tensor.Bytes()
		require.NoError(t, err)
		require.Len(t, raw, tensor.Size()*tensor.DType().Size())
		got, err := FromRaw(tensor.DType(), tensor.Shape().Dimensions, raw)
		require.NoError(t, err)
		require.True(t, tensor.Equal(got), "want %s, got %s", tensor, got)
	}

	raw, err := FromScalar(int32(1)).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 0, 0}, raw)

	_, err = FromRaw(dtypes.Float32, []int{2}, []byte{1, 2, 3})
	require.Error(t, err)
	_, err = FromRaw(dtypes.String, []int{1}, nil)
	require.Error(t, err)
	_, err = FromScalar("x").Bytes()
	require.Error(t, err)
}

func TestFromFlat(t *testing.T) {
	tensor, err := FromFlat(dtypes.Int32, []int{2}, []int32{3, 4})
	require.NoError(t, err)
	ints, err := tensor.ToInt64s()
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, ints)

	_, err = FromFlat(dtypes.Int32, []int{2}, []int64{3, 4})
	require.Error(t, err)
	_, err = FromFlat(dtypes.Int32, []int{3}, []int32{3, 4})
	require.Error(t, err)
	_, err = FromScalar(float32(1)).ToInt64s()
	require.Error(t, err)
}

func TestScalarsKeysAndPrinting(t *testing.T) {
	v, err := ToScalar[float64](FromScalar(float32(2.5)))
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	_, err = ToScalar[float64](FromFlatDataAndDimensions([]float32{1, 2}, 2))
	require.Error(t, err)

	a := FromFlatDataAndDimensions([]float32{1, 2}, 2)
	b := FromFlatDataAndDimensions([]float32{1, 2}, 2)
	c := FromFlatDataAndDimensions([]float32{1, 2}, 1, 2)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())
	require.NotEqual(t, FromScalar("a").Key(), FromScalar("b").Key())

	require.Equal(t, "(Float32)[2]{1, 2}", a.String())
	require.Equal(t, "(Int64)[10]{0, 1, ...}", FromFlatDataAndDimensions([]int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10).Summary(2))
	require.Equal(t, `(String){"x"}`, FromScalar("x").String())
}
