/***** File generated by ./internal/cmd/opset_generator, based on schemas.yaml. Don't edit it directly. *****/

package onnxml

import (
	"github.com/spoxml/spox/pkg/core/graph"
)

// Binarizer maps the values of the input greater than the threshold to 1, and the others to 0.
//
// Optional attributes: threshold (float, default 0).
//
// Versions: 1.
func (o *Ops) Binarizer(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Binarizer", []*graph.Var{x}, nil, attrs)
}

// Normalizer normalizes each row of a matrix, or a vector, by its max ("MAX"), its sum of absolute values ("L1")
// or its Euclidean norm ("L2"). The output is Float32.
//
// Optional attributes: norm (string, default "MAX").
//
// Versions: 1.
func (o *Ops) Normalizer(x *graph.Var, attrs ...Attribute) *graph.Var {
	return o.Call1("Normalizer", []*graph.Var{x}, nil, attrs)
}
