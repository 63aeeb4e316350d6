// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package inference

import (
	"github.com/spoxml/spox/pkg/core/shapes"
)

// matchDims unifies two dimensions that must be equal (e.g. the contracting dimensions of a MatMul).
func matchDims(a, b dim) (dim, bool) {
	switch {
	case a.known() && b.known():
		return a, a.size == b.size
	case a.known():
		return a, true
	case b.known():
		return b, true
	case a.name != "" && a.name == b.name:
		return a, true
	case a.name == "":
		return b, true
	}
	return a, true
}

// MatMul follows numpy's matmul: inputs of rank 1 are promoted to matrices, and the batch dimensions broadcast.
func MatMul(req *Request) ([]shapes.Shape, error) {
	lhs, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	rhs, err := req.Input(1)
	if err != nil {
		return nil, err
	}
	for _, operand := range []shapes.Shape{lhs, rhs} {
		if operand.HasRank() && operand.Rank() == 0 {
			return nil, req.Errorf("operands can't be scalars, got %s and %s", lhs, rhs)
		}
	}
	if !lhs.HasRank() || !rhs.HasRank() {
		return []shapes.Shape{shapes.MakeUnknownRank(lhs.DType)}, nil
	}

	lhsDims, rhsDims := dimsOf(lhs), dimsOf(rhs)
	lhsVector, rhsVector := len(lhsDims) == 1, len(rhsDims) == 1
	if lhsVector {
		lhsDims = append([]dim{{size: 1}}, lhsDims...)
	}
	if rhsVector {
		rhsDims = append(rhsDims, dim{size: 1})
	}
	lhsRank, rhsRank := len(lhsDims), len(rhsDims)
	if _, ok := matchDims(lhsDims[lhsRank-1], rhsDims[rhsRank-2]); !ok {
		return nil, req.Errorf("contracting dimensions don't match for %s x %s", lhs, rhs)
	}

	batch, err := BroadcastShapes(lhs.DType,
		makeShape(lhs.DType, lhsDims[:lhsRank-2]), makeShape(lhs.DType, rhsDims[:rhsRank-2]))
	if err != nil {
		return nil, req.Errorf("batch dimensions of %s and %s can't be broadcast", lhs, rhs)
	}
	output := dimsOf(batch)
	if !lhsVector {
		output = append(output, lhsDims[lhsRank-2])
	}
	if !rhsVector {
		output = append(output, rhsDims[rhsRank-1])
	}
	return []shapes.Shape{makeShape(lhs.DType, output)}, nil
}

// Gemm computes the type of alpha*A'*B' + beta*C, where A and B are matrices, optionally transposed by the
// transA and transB attributes, and C is broadcast to the result.
func Gemm(req *Request) ([]shapes.Shape, error) {
	a, err := req.Input(0)
	if err != nil {
		return nil, err
	}
	b, err := req.Input(1)
	if err != nil {
		return nil, err
	}
	transA, err := req.AttrInt("transA", 0)
	if err != nil {
		return nil, err
	}
	transB, err := req.AttrInt("transB", 0)
	if err != nil {
		return nil, err
	}
	m, k1, k2, n := unknownDim, unknownDim, unknownDim, unknownDim
	if a.HasRank() {
		if a.Rank() != 2 {
			return nil, req.Errorf("A must be a matrix, got %s", a)
		}
		dims := dimsOf(a)
		m, k1 = dims[0], dims[1]
		if transA != 0 {
			m, k1 = k1, m
		}
	}
	if b.HasRank() {
		if b.Rank() != 2 {
			return nil, req.Errorf("B must be a matrix, got %s", b)
		}
		dims := dimsOf(b)
		k2, n = dims[0], dims[1]
		if transB != 0 {
			k2, n = n, k2
		}
	}
	if _, ok := matchDims(k1, k2); !ok {
		return nil, req.Errorf("contracting dimensions don't match for A=%s (transA=%d) and B=%s (transB=%d)",
			a, transA, b, transB)
	}
	output := makeShape(a.DType, []dim{m, n})
	if req.Has(2) {
		c := req.Inputs[2]
		if c.HasRank() && c.Rank() > 2 {
			return nil, req.Errorf("C must have rank <= 2, got %s", c)
		}
		if _, err := BroadcastShapes(a.DType, output, c); err != nil {
			return nil, req.Errorf("C=%s can't be broadcast to the result %s", c, output)
		}
	}
	return []shapes.Shape{output}, nil
}
