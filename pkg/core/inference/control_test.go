// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"testing"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/stretchr/testify/require"
)

// branch is a stand-in for the graphs used as If branches.
type branch struct {
	name            string
	inputs, outputs []shapes.Shape
}

func (b branch) Name() string                 { return b.name }
func (b branch) InputShapes() []shapes.Shape  { return b.inputs }
func (b branch) OutputShapes() []shapes.Shape { return b.outputs }
func (b branch) Key() string                  { return b.name }

func ifRequest(thenOutputs, elseOutputs []shapes.Shape) *Request {
	return request("If", shapes.Scalar(dtypes.Bool)).outputs(len(thenOutputs)).
		with("then_branch", attributes.GraphValue(branch{name: "then", outputs: thenOutputs})).
		with("else_branch", attributes.GraphValue(branch{name: "else", outputs: elseOutputs}))
}

func TestIf(t *testing.T) {
	outs := mustInfer(t, If, ifRequest(
		[]shapes.Shape{S(F32, 2, 3), SS(I64, "N"), S(F32, 1)},
		[]shapes.Shape{S(F32, 2, 4), SS(I64, "N"), S(F32, 1, 1)}))
	require.Len(t, outs, 3)
	requireShape(t, S(F32, 2, shapes.DimUnknown), outs[0])
	requireShape(t, SS(I64, "N"), outs[1])
	requireShape(t, shapes.MakeUnknownRank(F32), outs[2])

	// The condition can have any rank, as long as it has a single element.
	req := ifRequest([]shapes.Shape{S(F32, 2)}, []shapes.Shape{S(F32, 2)})
	req.Inputs[0] = S(dtypes.Bool, 1, 1)
	requireShape(t, S(F32, 2), mustInfer(t, If, req)[0])
	req.Inputs[0] = S(dtypes.Bool, 2)
	_, err := Run(If, req)
	require.ErrorIs(t, err, errs.ErrInference)

	// Mismatched branches.
	_, err = Run(If, ifRequest([]shapes.Shape{S(F32, 2)}, []shapes.Shape{S(I64, 2)}))
	require.ErrorIs(t, err, errs.ErrInference)
	req = ifRequest([]shapes.Shape{S(F32, 2)}, []shapes.Shape{S(F32, 2), S(F32, 2)})
	_, err = Run(If, req)
	require.ErrorIs(t, err, errs.ErrInference)

	// Branches take no inputs.
	req = ifRequest([]shapes.Shape{S(F32, 2)}, []shapes.Shape{S(F32, 2)})
	req.Attrs["else_branch"] = attributes.GraphValue(branch{
		name: "else", inputs: []shapes.Shape{S(F32, 2)}, outputs: []shapes.Shape{S(F32, 2)}})
	_, err = Run(If, req)
	require.ErrorIs(t, err, errs.ErrInference)

	_, err = Run(If, request("If", shapes.Scalar(dtypes.Bool)))
	require.ErrorIs(t, err, errs.ErrInference)
}
