// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package graph builds typed ONNX computation graphs.
//
// The main elements in the package are:
//
//   - Builder is a construction session. It owns every Var and Node created through it, resolves each operator
//     against an opset.Table, checks its signature and infers the types of its outputs as soon as it is added.
//
//   - Var is an immutable handle to a value: a declared input, an initializer or one output of a Node. It carries
//     the symbolic type of the value (shapes.Shape), and its constant value when it is known at build time.
//
//   - Node is one operator invocation, with its resolved binding, its inputs, attributes and outputs.
//
//   - Graph is the frozen result of Builder.Build: only the nodes reachable from the requested outputs, in
//     topological order, with deterministic names for every value and node, and the opset versions per domain.
//
// # Deferred construction
//
// Types may be only partially known while building: the rank of a value may be unknown, and dimensions may be
// unknown or symbolic (named axes). Checks that need more information are deferred, and they surface when the
// graph is specialized with more concrete input types (see Graph.Specialize and Graph.Refine).
//
// # Error Handling
//
// Builder methods return errors created by package errs, that can be tested with errors.Is against the kind
// sentinels (errs.ErrType, errs.ErrScope, etc.). The typed operator wrappers (see package opsets) instead panic
// with the same errors, and Try converts such panics back to an error.
//
// # Concurrency
//
// A Builder must be used by one goroutine at a time. Independent builders can be used concurrently, sharing the
// same frozen opset tables, and a built Graph is immutable and safe for concurrent use.
package graph
