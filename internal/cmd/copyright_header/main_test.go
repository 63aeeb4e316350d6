// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddHeader(t *testing.T) {
	header := Header("Spox")
	assert.Equal(t, "// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0", header)

	got, changed := AddHeader([]byte("package foo\n"), header)
	assert.True(t, changed)
	assert.Equal(t, header+"\n\npackage foo\n", string(got))

	// Already present.
	_, changed = AddHeader(got, header)
	assert.False(t, changed)

	got, changed = AddHeader([]byte("//go:build linux\n\npackage foo\n"), header)
	assert.True(t, changed)
	assert.Equal(t, "//go:build linux\n\n"+header+"\n\npackage foo\n", string(got))
}

func TestGoFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.go", "gen_ops.go", "README.md", "sub/b.go", "_examples/c.go", ".git/d.go",
		"testdata/e.go"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))
	}
	files := must.M1(goFiles(root))
	assert.Equal(t, []string{filepath.Join(root, "a.go"), filepath.Join(root, "sub", "b.go")}, files)

	header := Header("Spox")
	changed := must.M1(processFile(files[0], header, false))
	assert.True(t, changed)
	assert.Equal(t, "package x\n", string(must.M1(os.ReadFile(files[0]))))

	changed = must.M1(processFile(files[0], header, true))
	assert.True(t, changed)
	changed = must.M1(processFile(files[0], header, true))
	assert.False(t, changed)
}
