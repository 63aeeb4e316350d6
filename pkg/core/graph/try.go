// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"github.com/gomlx/exceptions"
)

// Try calls fn and returns the error it panicked with, or nil if it didn't panic.
// It is used with the typed operator wrappers, that panic on construction errors:
//
//	err := graph.Try(func() {
//		y = op.Add(x, op.Constant(...))
//	})
//
// Panics with values other than errors are re-thrown.
func Try(fn func()) error {
	return exceptions.TryCatch[error](fn)
}
