// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/errs"
	"go.uber.org/multierr"
)

// Equivalent returns nil if both graphs compute the same thing in the same way: same inputs and outputs (names and
// types), same opset versions, and the same sequence of nodes, with the same operators, attributes, output types
// and dependency structure. Subgraphs given as graph attributes are compared the same way, and the values they
// capture by their position in the enclosing graphs. Names of intermediate values, of nodes and of subgraphs are
// ignored.
//
// Otherwise, it returns an errs.GraphIntegrityError for each difference found, combined with multierr.
func Equivalent(a, b *Graph) error {
	return equivalent(a, b, nil, nil)
}

func equivalent(a, b *Graph, outerA, outerB *varSources) error {
	var err error
	differ := func(subject, format string, args ...any) {
		err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError, format, args...), "", subject))
	}

	// Subgraphs use the opsets of the model.
	if outerA == nil && fmt.Sprint(a.opsets) != fmt.Sprint(b.opsets) {
		differ("opsets", "opsets %v != %v", a.opsets, b.opsets)
	}
	if len(a.inputs) != len(b.inputs) {
		differ("inputs", "%d inputs != %d inputs", len(a.inputs), len(b.inputs))
	} else {
		for ii, input := range a.inputs {
			other := b.inputs[ii]
			if input.name != other.name || !input.shape.Equal(other.shape) {
				differ(fmt.Sprintf("input #%d", ii), "input %q: %s != input %q: %s",
					input.name, input.shape, other.name, other.shape)
			}
		}
	}
	if len(a.outputs) != len(b.outputs) {
		differ("outputs", "%d outputs != %d outputs", len(a.outputs), len(b.outputs))
	} else {
		for ii, output := range a.outputs {
			other := b.outputs[ii]
			if output.Name != other.Name || !output.Var.shape.Equal(other.Var.shape) {
				differ(fmt.Sprintf("output #%d", ii), "output %q: %s != output %q: %s",
					output.Name, output.Var.shape, other.Name, other.Var.shape)
			}
		}
	}
	if len(a.nodes) != len(b.nodes) {
		differ("nodes", "%d nodes != %d nodes", len(a.nodes), len(b.nodes))
		return err
	}

	sourcesA, sourcesB := a.sources(outerA), b.sources(outerB)
	for ii, nodeA := range a.nodes {
		nodeB := b.nodes[ii]
		subject := fmt.Sprintf("node #%d (%s)", ii, a.nodeNames[nodeA])
		if nodeA.op != nodeB.op || nodeA.domain != nodeB.domain {
			differ(subject, "operator %s != %s", nodeA, nodeB)
			continue
		}
		if !withoutGraphs(nodeA.attrs).Equal(withoutGraphs(nodeB.attrs)) {
			differ(subject, "attributes %s != %s", nodeA.attrs, nodeB.attrs)
		}
		for _, name := range nodeA.attrs.Names() {
			sgA, okA := nodeA.attrs[name].Graph().(*Graph)
			sgB, okB := nodeB.attrs[name].Graph().(*Graph)
			if nodeA.attrs[name].Kind() != attributes.Graph || !okA {
				continue
			}
			if !okB {
				differ(subject, "graph attribute %q is missing", name)
				continue
			}
			if sgErr := equivalent(sgA, sgB, sourcesA, sourcesB); sgErr != nil {
				err = multierr.Append(err, errs.At(sgErr, "", fmt.Sprintf("%s attribute %q", subject, name)))
			}
		}
		if len(nodeA.inputs) != len(nodeB.inputs) {
			differ(subject, "%d inputs != %d inputs", len(nodeA.inputs), len(nodeB.inputs))
		} else {
			for jj, input := range nodeA.inputs {
				if sourceA, sourceB := sourcesA.of(input), sourcesB.of(nodeB.inputs[jj]); sourceA != sourceB {
					differ(subject, "input #%d is %s != %s", jj, sourceA, sourceB)
				}
			}
		}
		if len(nodeA.outputs) != len(nodeB.outputs) {
			differ(subject, "%d outputs != %d outputs", len(nodeA.outputs), len(nodeB.outputs))
			continue
		}
		for jj, output := range nodeA.outputs {
			if other := nodeB.outputs[jj]; !output.shape.Equal(other.shape) {
				differ(subject, "output #%d type %s != %s", jj, output.shape, other.shape)
			}
		}
	}
	return err
}

// withoutGraphs returns the attributes that are not graphs.
func withoutGraphs(attrs attributes.Map) attributes.Map {
	filtered := make(attributes.Map, len(attrs))
	for name, value := range attrs {
		if value.Kind() != attributes.Graph {
			filtered[name] = value
		}
	}
	return filtered
}

// varSources locates values by position in a graph, independent of names. The values captured by subgraphs are
// located in the enclosing graphs.
type varSources struct {
	nodes        map[*Node]int
	inputs       map[*Var]int
	initializers map[*Var]int
	outer        *varSources
}

func (g *Graph) sources(outer *varSources) *varSources {
	s := &varSources{
		outer:        outer,
		nodes:        make(map[*Node]int, len(g.nodes)),
		inputs:       make(map[*Var]int, len(g.inputs)),
		initializers: make(map[*Var]int, len(g.initializers)),
	}
	for ii, node := range g.nodes {
		s.nodes[node] = ii
	}
	for ii, v := range g.inputs {
		s.inputs[v] = ii
	}
	for ii, v := range g.initializers {
		s.initializers[v] = ii
	}
	return s
}

func (s *varSources) of(v *Var) string {
	if v == nil {
		return "omitted"
	}
	root := v.root()
	if pos, found := s.inputs[root]; found {
		return fmt.Sprintf("input #%d", pos)
	}
	if pos, found := s.initializers[root]; found {
		return fmt.Sprintf("initializer #%d", pos)
	}
	if root.kind == NodeOutput {
		if pos, found := s.nodes[root.builder.nodes[root.producer]]; found {
			return fmt.Sprintf("node #%d output #%d", pos, root.outputIndex)
		}
	}
	if s.outer != nil {
		return "outer " + s.outer.of(v)
	}
	return "unknown " + v.String()
}
