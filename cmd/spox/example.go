// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/onnx"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/spoxml/spox/pkg/opsets"
	onnxops "github.com/spoxml/spox/pkg/opsets/onnx"
	"github.com/spoxml/spox/pkg/support/fsutil"
	"k8s.io/klog/v2"
)

var (
	exampleFlags      = flag.NewFlagSet("example", flag.ExitOnError)
	flagExampleOpset  = exampleFlags.Int("opset", opsets.StableVersion, "Version of the default domain used by the model.")
	flagExampleOutput = exampleFlags.String("o", "mlp.onnx", "File where to write the model.")

	exampleCommand = &command{
		name:        "example",
		description: "Builds a small multi-layer perceptron and saves it as an ONNX model.",
		flags:       exampleFlags,
		run:         runExample,
	}
)

const (
	exampleFeatures = 4
	exampleHidden   = 8
	exampleClasses  = 3
)

func runExample(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments %q", args)
	}
	g, err := buildExample(*flagExampleOpset)
	if err != nil {
		return err
	}
	output, err := fsutil.ExpandHome(*flagExampleOutput)
	if err != nil {
		return err
	}
	if err := onnx.WriteFile(g, output); err != nil {
		return err
	}
	stat, err := os.Stat(output)
	if err != nil {
		return errors.Wrapf(err, "failed to stat saved model")
	}
	klog.Infof("Saved %s to %q (%s)", g, output, humanize.Bytes(uint64(stat.Size())))
	return nil
}

// exampleWeights returns deterministic weights for a dense layer.
func exampleWeights(inputs, outputs int) [][]float32 {
	w := make([][]float32, inputs)
	for ii := range w {
		w[ii] = make([]float32, outputs)
		for jj := range w[ii] {
			w[ii][jj] = float32((ii*7+jj*3)%11-5) / 10
		}
	}
	return w
}

// buildExample builds a 2 layers MLP classifier with a symbolic batch axis:
//
//	probabilities = Softmax(Relu(x @ w1 + b1) @ w2 + b2)
func buildExample(version int) (*graph.Graph, error) {
	table := opsets.Stable
	if version > opsets.StableVersion {
		table = opsets.Weekly
	}
	b := graph.NewBuilder(table, graph.WithName("mlp"),
		graph.WithDocString("Multi-layer perceptron generated by spox example."))
	x, err := b.DeclareInput("x", shapes.MakeSymbolic(dtypes.Float32, "batch", exampleFeatures))
	if err != nil {
		return nil, err
	}
	var probabilities *graph.Var
	err = graph.Try(func() {
		initializer := func(name string, value any) *graph.Var {
			return must.M1(b.Initializer(name, must.M1(tensors.FromAnyValue(value))))
		}
		w1 := initializer("w1", exampleWeights(exampleFeatures, exampleHidden))
		b1 := initializer("b1", make([]float32, exampleHidden))
		w2 := initializer("w2", exampleWeights(exampleHidden, exampleClasses))
		b2 := initializer("b2", []float32{0.1, 0, -0.1})

		op := onnxops.New(b, version)
		hidden := op.Relu(op.Add(op.MatMul(x, w1), b1))
		logits := op.Add(op.MatMul(hidden, w2), b2)
		probabilities = op.Softmax(logits, onnxops.Attr("axis", -1))
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to build example with opset version %d", version)
	}
	return b.BuildOutputs(graph.Output{Name: "probabilities", Var: probabilities})
}
