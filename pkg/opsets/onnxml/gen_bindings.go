/***** File generated by ./internal/cmd/opset_generator, based on schemas.yaml. Don't edit it directly. *****/

package onnxml

import (
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
)

const (
	// Domain of the operators.
	Domain = "ai.onnx.ml"

	// LatestVersion of the domain covered by the bindings.
	LatestVersion = 3
)

// Type constraint groups.
var (
	typesFloat32 = []dtypes.DType{dtypes.Float32}
	typesInputs  = []dtypes.DType{dtypes.Float32, dtypes.Float64, dtypes.Int64, dtypes.Int32}
)

// Bindings of every version of the operators of the domain, sorted by operator and version.
var Bindings = []*opset.Binding{
	{
		Domain:       Domain,
		OpType:       "Binarizer",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "T"}},
			TypeConstraints: map[string][]dtypes.DType{"T": typesInputs},
			Attributes: []opset.AttrSpec{
				{Name: "threshold", Kind: attributes.Float, Default: attributes.FloatValue(0)},
			},
		},
		Rule: inference.Unary,
		Pure: true,
		Doc:  "Binarizer maps the values of the input greater than the threshold to 1, and the others to 0.",
	},
	{
		Domain:       Domain,
		OpType:       "Normalizer",
		SinceVersion: 1,
		Signature: &opset.Signature{
			Inputs:          []opset.Param{{Name: "X", TypeVar: "T"}},
			Outputs:         []opset.Param{{Name: "Y", TypeVar: "F"}},
			TypeConstraints: map[string][]dtypes.DType{"F": typesFloat32, "T": typesInputs},
			Attributes: []opset.AttrSpec{
				{Name: "norm", Kind: attributes.String, Default: attributes.StringValue("MAX")},
			},
		},
		Rule: inference.Normalizer,
		Pure: true,
		Doc:  "Normalizer normalizes each row of a matrix, or a vector, by its max (\"MAX\"), its sum of absolute values (\"L1\") or its Euclidean norm (\"L2\"). The output is Float32.",
	},
}
