// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package attributes defines the literal attribute values of a graph node: int, float, string,
// tensor, the lists of those, and subgraphs.
//
// The Kind values are the ONNX AttributeProto.AttributeType codes.
package attributes

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
)

// Kind of attribute value.
type Kind int32

const (
	Undefined Kind = 0
	Float     Kind = 1
	Int       Kind = 2
	String    Kind = 3
	Tensor    Kind = 4
	Graph     Kind = 5
	Floats    Kind = 6
	Ints      Kind = 7
	Strings   Kind = 8
	Tensors   Kind = 9
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	case Tensor:
		return "tensor"
	case Graph:
		return "graph"
	case Floats:
		return "floats"
	case Ints:
		return "ints"
	case Strings:
		return "strings"
	case Tensors:
		return "tensors"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// KindFromName parses the names returned by Kind.String.
func KindFromName(name string) (Kind, error) {
	for _, k := range []Kind{Float, Int, String, Tensor, Graph, Floats, Ints, Strings, Tensors} {
		if k.String() == name {
			return k, nil
		}
	}
	return Undefined, errors.Errorf("unknown attribute kind %q", name)
}

// Subgraph is the value of a graph attribute, like the branches of If. It is implemented by *graph.Graph.
type Subgraph interface {
	Name() string

	// InputShapes returns the types of the inputs of the subgraph, and OutputShapes the types of its outputs.
	InputShapes() []shapes.Shape
	OutputShapes() []shapes.Shape

	// Key identifies the subgraph: two subgraphs with the same key are the same graph.
	Key() string
}

// Value is an immutable attribute literal.
type Value struct {
	kind    Kind
	i       int64
	f       float32
	s       string
	t       *tensors.Tensor
	g       Subgraph
	ints    []int64
	floats  []float32
	strs    []string
	tensors []*tensors.Tensor
}

// IntValue creates an int attribute.
func IntValue(v int64) Value { return Value{kind: Int, i: v} }

// FloatValue creates a float attribute.
func FloatValue(v float32) Value { return Value{kind: Float, f: v} }

// StringValue creates a string attribute.
func StringValue(v string) Value { return Value{kind: String, s: v} }

// TensorValue creates a tensor attribute.
func TensorValue(v *tensors.Tensor) Value { return Value{kind: Tensor, t: v} }

// GraphValue creates a graph attribute.
func GraphValue(v Subgraph) Value { return Value{kind: Graph, g: v} }

// IntsValue creates a list-of-ints attribute. The slice is copied.
func IntsValue(v ...int64) Value { return Value{kind: Ints, ints: slices.Clone(v)} }

// FloatsValue creates a list-of-floats attribute. The slice is copied.
func FloatsValue(v ...float32) Value { return Value{kind: Floats, floats: slices.Clone(v)} }

// StringsValue creates a list-of-strings attribute. The slice is copied.
func StringsValue(v ...string) Value { return Value{kind: Strings, strs: slices.Clone(v)} }

// TensorsValue creates a list-of-tensors attribute. The slice is copied.
func TensorsValue(v ...*tensors.Tensor) Value {
	return Value{kind: Tensors, tensors: slices.Clone(v)}
}

// Kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsValid returns whether the value was created by one of the constructors.
func (v Value) IsValid() bool { return v.kind != Undefined }

// Int returns the value of an int attribute.
func (v Value) Int() int64 { return v.i }

// Float returns the value of a float attribute.
func (v Value) Float() float32 { return v.f }

// Str returns the value of a string attribute.
func (v Value) Str() string { return v.s }

// Tensor returns the value of a tensor attribute.
func (v Value) Tensor() *tensors.Tensor { return v.t }

// Graph returns the value of a graph attribute.
func (v Value) Graph() Subgraph { return v.g }

// Ints returns the value of an ints attribute. It must not be modified.
func (v Value) Ints() []int64 { return v.ints }

// Floats returns the value of a floats attribute. It must not be modified.
func (v Value) Floats() []float32 { return v.floats }

// Strings returns the value of a strings attribute. It must not be modified.
func (v Value) Strings() []string { return v.strs }

// Tensors returns the value of a tensors attribute. It must not be modified.
func (v Value) Tensors() []*tensors.Tensor { return v.tensors }

// Equal compares kind and contents. Tensors are compared by value.
func (v Value) Equal(other Value) bool {
	return v.Key() == other.Key()
}

// Key returns a canonical representation of the value, used for deduplication.
func (v Value) Key() string {
	switch v.kind {
	case Int:
		return "i:" + strconv.FormatInt(v.i, 10)
	case Float:
		return "f:" + strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case String:
		return "s:" + strconv.Quote(v.s)
	case Tensor:
		return "t:" + v.t.Key()
	case Graph:
		return "g:" + v.g.Key()
	case Ints:
		parts := make([]string, len(v.ints))
		for ii, x := range v.ints {
			parts[ii] = strconv.FormatInt(x, 10)
		}
		return "ints:[" + strings.Join(parts, ",") + "]"
	case Floats:
		parts := make([]string, len(v.floats))
		for ii, x := range v.floats {
			parts[ii] = strconv.FormatFloat(float64(x), 'g', -1, 32)
		}
		return "floats:[" + strings.Join(parts, ",") + "]"
	case Strings:
		parts := make([]string, len(v.strs))
		for ii, x := range v.strs {
			parts[ii] = strconv.Quote(x)
		}
		return "strings:[" + strings.Join(parts, ",") + "]"
	case Tensors:
		parts := make([]string, len(v.tensors))
		for ii, x := range v.tensors {
			parts[ii] = x.Key()
		}
		return "tensors:[" + strings.Join(parts, ",") + "]"
	}
	return "undefined"
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case String:
		return strconv.Quote(v.s)
	case Tensor:
		return v.t.String()
	case Graph:
		return "graph(" + strconv.Quote(v.g.Name()) + ")"
	case Ints:
		return fmt.Sprintf("%v", v.ints)
	case Floats:
		return fmt.Sprintf("%v", v.floats)
	case Strings:
		return fmt.Sprintf("%q", v.strs)
	case Tensors:
		return fmt.Sprintf("%v", v.tensors)
	}
	return "<undefined>"
}

// Map of attribute names to values.
type Map map[string]Value

// Names returns the attribute names, sorted.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of the map. Values are immutable.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	clone := make(Map, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Key returns a canonical representation of the whole map, with names sorted.
func (m Map) Key() string {
	names := m.Names()
	parts := make([]string, len(names))
	for ii, name := range names {
		parts[ii] = name + "=" + m[name].Key()
	}
	return "{" + strings.Join(parts, ";") + "}"
}

// Equal returns whether both maps have the same names and values.
func (m Map) Equal(other Map) bool {
	return len(m) == len(other) && m.Key() == other.Key()
}

// String implements fmt.Stringer.
func (m Map) String() string {
	names := m.Names()
	parts := make([]string, len(names))
	for ii, name := range names {
		parts[ii] = name + "=" + m[name].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// GetInt returns the named int attribute, or defaultValue if it is not set.
// It returns an error if the attribute is set with another kind.
func (m Map) GetInt(name string, defaultValue int64) (int64, error) {
	v, found := m[name]
	if !found {
		return defaultValue, nil
	}
	if v.kind != Int {
		return 0, errors.Errorf("attribute %q must be an int, got %s", name, v.kind)
	}
	return v.i, nil
}

// GetFloat returns the named float attribute, or defaultValue if it is not set.
func (m Map) GetFloat(name string, defaultValue float32) (float32, error) {
	v, found := m[name]
	if !found {
		return defaultValue, nil
	}
	if v.kind != Float {
		return 0, errors.Errorf("attribute %q must be a float, got %s", name, v.kind)
	}
	return v.f, nil
}

// GetString returns the named string attribute, or defaultValue if it is not set.
func (m Map) GetString(name string, defaultValue string) (string, error) {
	v, found := m[name]
	if !found {
		return defaultValue, nil
	}
	if v.kind != String {
		return "", errors.Errorf("attribute %q must be a string, got %s", name, v.kind)
	}
	return v.s, nil
}

// GetInts returns the named ints attribute and whether it was set.
func (m Map) GetInts(name string) ([]int64, bool, error) {
	v, found := m[name]
	if !found {
		return nil, false, nil
	}
	if v.kind != Ints {
		return nil, true, errors.Errorf("attribute %q must be a list of ints, got %s", name, v.kind)
	}
	return v.ints, true, nil
}

// GetFloats returns the named floats attribute and whether it was set.
func (m Map) GetFloats(name string) ([]float32, bool, error) {
	v, found := m[name]
	if !found {
		return nil, false, nil
	}
	if v.kind != Floats {
		return nil, true, errors.Errorf("attribute %q must be a list of floats, got %s", name, v.kind)
	}
	return v.floats, true, nil
}

// GetTensor returns the named tensor attribute, or nil if it is not set.
func (m Map) GetTensor(name string) (*tensors.Tensor, error) {
	v, found := m[name]
	if !found {
		return nil, nil
	}
	if v.kind != Tensor {
		return nil, errors.Errorf("attribute %q must be a tensor, got %s", name, v.kind)
	}
	return v.t, nil
}

// GetGraph returns the named graph attribute, or nil if it is not set.
func (m Map) GetGraph(name string) (Subgraph, error) {
	v, found := m[name]
	if !found {
		return nil, nil
	}
	if v.kind != Graph {
		return nil, errors.Errorf("attribute %q must be a graph, got %s", name, v.kind)
	}
	return v.g, nil
}

// Subgraphs returns the values of the graph attributes, sorted by attribute name.
func (m Map) Subgraphs() []Subgraph {
	var list []Subgraph
	for _, name := range m.Names() {
		if v := m[name]; v.kind == Graph && v.g != nil {
			list = append(list, v.g)
		}
	}
	return list
}
