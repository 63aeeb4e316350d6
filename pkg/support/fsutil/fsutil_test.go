// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os/user"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "models/mlp.onnx", must.M1(ExpandHome("models/mlp.onnx")))
	assert.Equal(t, "/tmp/x~", must.M1(ExpandHome("/tmp/x~")))

	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	assert.Equal(t, filepath.Clean(usr.HomeDir), must.M1(ExpandHome("~")))
	assert.Equal(t, filepath.Join(usr.HomeDir, "models", "mlp.onnx"), must.M1(ExpandHome("~/models/mlp.onnx")))

	_, err = ExpandHome("~no_such_user_for_spox_tests/models")
	require.Error(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	exists := must.M1(FileExists(dir))
	assert.False(t, exists)
	assert.Equal(t, dir, must.M1(EnsureDir(dir)))
	exists = must.M1(FileExists(dir))
	assert.True(t, exists)

	// Creating it again is fine.
	assert.Equal(t, dir, must.M1(EnsureDir(dir)))
}
