// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package typed holds the plumbing shared by the generated operator wrappers of each domain
// (see packages onnx and onnxml): the conversion of Go values to attributes and the Caller that
// adds the nodes to a graph.Builder.
//
// Wrappers panic on errors, to allow the natural composition of operators. Use graph.Try to
// recover the error.
package typed

import (
	"github.com/gomlx/exceptions"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/tensors"
)

// Attribute is an optional attribute passed to an operator wrapper.
type Attribute struct {
	Name  string
	Value attributes.Value
}

// Attr creates an Attribute from a Go value. Accepted values are the integer and float scalars (converted
// to int64 and float32), strings, dtypes.DType (stored as an int, as in Cast's "to"), *tensors.Tensor, and
// slices of those, or an attributes.Value.
//
// It panics for other types.
func Attr(name string, value any) Attribute {
	return Attribute{Name: name, Value: ValueOf(value)}
}

// ValueOf converts a Go value to an attribute value, see Attr. It panics for unsupported types.
func ValueOf(value any) attributes.Value {
	switch v := value.(type) {
	case attributes.Value:
		return v
	case dtypes.DType:
		return attributes.IntValue(int64(v))
	case int:
		return attributes.IntValue(int64(v))
	case int32:
		return attributes.IntValue(int64(v))
	case int64:
		return attributes.IntValue(v)
	case bool:
		if v {
			return attributes.IntValue(1)
		}
		return attributes.IntValue(0)
	case float32:
		return attributes.FloatValue(v)
	case float64:
		return attributes.FloatValue(float32(v))
	case string:
		return attributes.StringValue(v)
	case *tensors.Tensor:
		return attributes.TensorValue(v)
	case []int:
		ints := make([]int64, len(v))
		for ii, x := range v {
			ints[ii] = int64(x)
		}
		return attributes.IntsValue(ints...)
	case []int64:
		return attributes.IntsValue(v...)
	case []float32:
		return attributes.FloatsValue(v...)
	case []float64:
		floats := make([]float32, len(v))
		for ii, x := range v {
			floats[ii] = float32(x)
		}
		return attributes.FloatsValue(floats...)
	case []string:
		return attributes.StringsValue(v...)
	case []*tensors.Tensor:
		return attributes.TensorsValue(v...)
	case *graph.Graph:
		return attributes.GraphValue(v)
	}
	exceptions.Panicf("attribute value of type %T is not supported", value)
	return attributes.Value{}
}

// Caller adds operator nodes of one domain, at a fixed version, to a graph.Builder.
type Caller struct {
	builder *graph.Builder
	domain  string
	version int
}

// NewCaller returns a Caller for the given domain and version.
func NewCaller(b *graph.Builder, domain string, version int) Caller {
	return Caller{builder: b, domain: domain, version: version}
}

// Builder returns the builder the nodes are added to.
func (c Caller) Builder() *graph.Builder { return c.builder }

// Domain of the operators.
func (c Caller) Domain() string { return c.domain }

// Version of the domain used to resolve the operators.
func (c Caller) Version() int { return c.version }

// Call adds a node with the given inputs and attributes and returns its numOutputs outputs.
//
// Trailing nil inputs (omitted optional inputs) are dropped. The required attributes come first, the optional
// ones override them. It panics with the error returned by graph.Builder.AddNode.
func (c Caller) Call(op string, inputs []*graph.Var, required attributes.Map, optional []Attribute,
	numOutputs int) []*graph.Var {
	for len(inputs) > 0 && inputs[len(inputs)-1] == nil {
		inputs = inputs[:len(inputs)-1]
	}
	var attrs attributes.Map
	if len(required) > 0 || len(optional) > 0 {
		attrs = make(attributes.Map, len(required)+len(optional))
		for name, value := range required {
			attrs[name] = value
		}
		for _, attr := range optional {
			attrs[attr.Name] = attr.Value
		}
	}
	outputs, err := c.builder.AddNode(op, c.domain, c.version, inputs, attrs, numOutputs)
	if err != nil {
		panic(err)
	}
	return outputs
}

// Call1 is like Call, for operators with one output.
func (c Caller) Call1(op string, inputs []*graph.Var, required attributes.Map, optional []Attribute) *graph.Var {
	return c.Call(op, inputs, required, optional, 1)[0]
}

// CallFunction adds a call to the local function, which must be registered in the table of b (see
// graph.Function.Register), and returns its outputs. It panics with the error returned by graph.Builder.AddNode.
func CallFunction(b *graph.Builder, f *graph.Function, inputs ...*graph.Var) []*graph.Var {
	outputs, err := b.AddNode(f.Name(), f.Domain(), 1, inputs, nil, len(f.Body().Outputs()))
	if err != nil {
		panic(err)
	}
	return outputs
}
