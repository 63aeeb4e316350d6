// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package onnxml holds the bindings and the typed wrappers of the operators of the "ai.onnx.ml" domain.
package onnxml

//go:generate go run ../../../internal/cmd/opset_generator -schemas=schemas.yaml -package=onnxml

import (
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/opsets/typed"
)

// Attribute is an optional attribute of an operator, see Attr.
type Attribute = typed.Attribute

// Attr creates an optional attribute from a Go value.
func Attr(name string, value any) Attribute {
	return typed.Attr(name, value)
}

// Ops adds the operators of the "ai.onnx.ml" domain to a builder, at a fixed version of the domain.
type Ops struct {
	typed.Caller
}

// New returns the operators of the domain at the given version.
func New(b *graph.Builder, version int) *Ops {
	return &Ops{Caller: typed.NewCaller(b, Domain, version)}
}
