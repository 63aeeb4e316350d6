// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package errs

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	err := Newf(InferenceError, "axis %d out of range", 3)
	require.ErrorIs(t, err, ErrInference)
	require.NotErrorIs(t, err, ErrType)
	require.Equal(t, InferenceError, KindOf(err))
	require.Equal(t, "InferenceError: axis 3 out of range", err.Error())

	wrapped := errors.WithMessage(err, "building graph")
	require.ErrorIs(t, wrapped, ErrInference)
	require.Equal(t, InferenceError, KindOf(wrapped))

	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, "Kind(42)", Kind(42).String())
}

func TestAt(t *testing.T) {
	err := At(Newf(TypeError, "want float, got int64"), "Add", "Var#3")
	var spoxErr *Error
	require.True(t, errors.As(err, &spoxErr))
	require.Equal(t, "Add", spoxErr.Op)
	require.Equal(t, "Var#3", spoxErr.Subject)
	require.Equal(t, "TypeError in Add at Var#3: want float, got int64", err.Error())

	// Existing annotations are kept.
	err = At(err, "Sub", "")
	require.Contains(t, err.Error(), "in Add at Var#3")

	err = At(errors.New("raw"), "Relu", "")
	require.Equal(t, KindUnknown, KindOf(err))
	require.Nil(t, At(nil, "Relu", "x"))
}

func TestWrap(t *testing.T) {
	cause := errors.New("bad dims")
	err := Wrapf(GraphIntegrityError, cause, "node %q", "Add_0")
	require.ErrorIs(t, err, ErrGraphIntegrity)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), `node "Add_0": bad dims`)
	require.Nil(t, Wrapf(TypeError, nil, "ignored"))
	require.Nil(t, Wrap(TypeError, nil))
	require.ErrorIs(t, Wrap(ScopeError, cause), ErrScope)

	// %+v includes the stack trace.
	require.Contains(t, fmt.Sprintf("%+v", err), "errs_test.go")
}
