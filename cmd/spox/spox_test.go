// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/onnx"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors/numpy"
	"github.com/spoxml/spox/pkg/opsets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	disableColors()
}

func TestBuildExample(t *testing.T) {
	for _, version := range []int{11, 13, opsets.StableVersion, opsets.WeeklyVersion} {
		g, err := buildExample(version)
		require.NoError(t, err, "opset version %d", version)
		assert.Equal(t, version, g.OpsetVersion(""))
		assert.Equal(t, "mlp", g.Name())
		require.Len(t, g.Outputs(), 1)
		output := g.Outputs()[0]
		assert.Equal(t, "probabilities", output.Name)
		assert.True(t, output.Var.Shape().Equal(shapes.MakeSymbolic(dtypes.Float32, "batch", exampleClasses)),
			"got %s", output.Var.Shape())
		assert.Len(t, g.Initializers(), 4)
		assert.Equal(t, 6, g.NumNodes())
	}

	// MatMul requires opset 9 or later.
	_, err := buildExample(7)
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mlp.onnx")
	require.NoError(t, onnx.WriteFile(must.M1(buildExample(opsets.StableVersion)), path))

	var loaded atomic.Int32
	infos := must.M1(loadModels([]string{path, path}, opsets.Weekly, func() { loaded.Add(1) }))
	assert.Equal(t, int32(2), loaded.Load())
	require.Len(t, infos, 2)
	info := infos[0]
	require.NoError(t, info.ImportErr)
	assert.Equal(t, 6, info.Graph.NumNodes())
	assert.Equal(t, int(must.M1(os.Stat(path)).Size()), info.Size)
	assert.Equal(t, []opCount{{"Add", 2}, {"MatMul", 2}, {"Relu", 1}, {"Softmax", 1}}, info.Histogram())
	// w1 (4x8), b1 (8), w2 (8x3) and b2 (3) in float32.
	assert.Equal(t, uint64((32+8+24+3)*4), info.InitializersBytes())

	var buf bytes.Buffer
	info.Report(&buf, true)
	report := buf.String()
	for _, want := range []string{path, "mlp", "probabilities", "Softmax", "ai.onnx", "w1", "import"} {
		assert.Contains(t, report, want)
	}

	exportDir := t.TempDir()
	npzPath := must.M1(info.ExportInitializers(exportDir, false))
	_, err := info.ExportInitializers(exportDir, false)
	require.ErrorContains(t, err, "already exists")
	require.Equal(t, npzPath, must.M1(info.ExportInitializers(exportDir, true)))
	assert.Equal(t, filepath.Join(exportDir, "mlp.npz"), npzPath)
	exported := must.M1(numpy.FromNpzFile(npzPath))
	assert.Len(t, exported, 4)
	require.Contains(t, exported, "w1")
	assert.True(t, exported["w1"].Shape().Equal(shapes.Make(dtypes.Float32, exampleFeatures, exampleHidden)))
	assert.Equal(t, exampleWeights(exampleFeatures, exampleHidden), exported["w1"].Value())

	_, err = loadModels([]string{path, filepath.Join(dir, "missing.onnx")}, opsets.Weekly, nil)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.onnx"), []byte{0xff, 0xff, 0xff}, 0o644))
	_, err = loadModels([]string{filepath.Join(dir, "garbage.onnx")}, opsets.Weekly, nil)
	require.Error(t, err)
}

func TestOpsetsListing(t *testing.T) {
	assert.Equal(t, "7*, 13*, 14", describeVersions(opsets.Stable.Bindings("", "Add")))
	assert.Equal(t, "1*, 11*, 13", describeVersions(opsets.Stable.Bindings("", "Softmax")))

	var buf bytes.Buffer
	listOpsets(&buf, opsets.Weekly, opsets.Weekly.Domains())
	listing := buf.String()
	for _, want := range []string{"ai.onnx, version 18", "ai.onnx.ml, version 3", "Normalizer", "RandomNormal",
		"Softmax"} {
		assert.Contains(t, listing, want)
	}

	assert.Equal(t, "short", shortDoc("  short\nsecond line"))
	assert.Len(t, shortDoc(string(bytes.Repeat([]byte("x"), 200))), maxDocLength)
}
