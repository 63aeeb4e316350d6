// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/support/sets"
	"github.com/spoxml/spox/pkg/support/xslices"
	"go.uber.org/multierr"
)

// Graph is a built, immutable, computation graph. It is created by Builder.Build and its variations.
type Graph struct {
	builder         *Builder
	name, docString string

	// nodes in topological order.
	nodes        []*Node
	inputs       []*Var
	initializers []*Var
	outputs      []Output
	opsets       []opset.Version

	// captures are the values of enclosing builders used by a subgraph, sorted by creation.
	captures []*Var

	varNames  map[*Var]string
	nodeNames map[*Node]string
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// DocString of the graph.
func (g *Graph) DocString() string { return g.docString }

// Builder that built the graph.
func (g *Graph) Builder() *Builder { return g.builder }

// Table used to resolve the operators of the graph.
func (g *Graph) Table() *opset.Table { return g.builder.table }

// Nodes of the graph in topological order.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Inputs of the graph, in order.
func (g *Graph) Inputs() []*Var { return slices.Clone(g.inputs) }

// Initializers of the graph, including the inputs with default values.
func (g *Graph) Initializers() []*Var { return slices.Clone(g.initializers) }

// Outputs of the graph, with their final names.
func (g *Graph) Outputs() []Output { return slices.Clone(g.outputs) }

// OutputVars returns the Vars of the outputs of the graph.
func (g *Graph) OutputVars() []*Var {
	vars := make([]*Var, len(g.outputs))
	for ii, output := range g.outputs {
		vars[ii] = output.Var
	}
	return vars
}

// Captures returns the values of the enclosing graphs used by a subgraph (see Builder.Subgraph). They are empty for
// top-level graphs.
func (g *Graph) Captures() []*Var { return slices.Clone(g.captures) }

// IsSubgraph returns whether the graph was built by a subgraph builder, see Builder.Subgraph.
func (g *Graph) IsSubgraph() bool { return g.builder.parent != nil }

// InputShapes returns the types of the inputs of the graph.
func (g *Graph) InputShapes() []shapes.Shape {
	return xslices.Map(g.inputs, func(v *Var) shapes.Shape { return v.shape })
}

// OutputShapes returns the types of the outputs of the graph.
func (g *Graph) OutputShapes() []shapes.Shape {
	return xslices.Map(g.outputs, func(output Output) shapes.Shape { return output.Var.shape })
}

// Key identifies the graph, when used as a graph attribute.
func (g *Graph) Key() string { return g.builder.id.String() }

// Opsets returns the version of each domain used by the graph, sorted by domain.
func (g *Graph) Opsets() []opset.Version { return slices.Clone(g.opsets) }

// OpsetVersion returns the version of the domain used by the graph, or 0 if the graph doesn't import it.
func (g *Graph) OpsetVersion(domain string) int {
	domain = opset.NormalizeDomain(domain)
	for _, v := range g.opsets {
		if v.Domain == domain {
			return v.Version
		}
	}
	return 0
}

// VarName returns the name of the value in the graph, or "" if it is not part of the graph.
// Aliases created by UnsafeCast and UnsafeReshape have the name of the value they alias.
func (g *Graph) VarName(v *Var) string {
	if v == nil {
		return ""
	}
	return g.varNames[v.root()]
}

// NodeName returns the name of the node in the graph, or "" if it is not part of the graph.
func (g *Graph) NodeName(n *Node) string { return g.nodeNames[n] }

// String implements fmt.Stringer.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(%q: %d inputs, %d initializers, %d nodes, %d outputs)",
		g.name, len(g.inputs), len(g.initializers), len(g.nodes), len(g.outputs))
}

// Summary returns a multi-line listing of the graph, one line per node.
func (g *Graph) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, opsets %v\n", g, g.opsets)
	for _, v := range g.inputs {
		fmt.Fprintf(&sb, "\tinput %q: %s\n", g.VarName(v), v.shape)
	}
	for _, v := range g.captures {
		fmt.Fprintf(&sb, "\tcaptured %s\n", v)
	}
	for _, node := range g.nodes {
		inputs := make([]string, len(node.inputs))
		for ii, input := range node.inputs {
			inputs[ii] = g.VarName(input)
			if inputs[ii] == "" && input != nil {
				inputs[ii] = input.String()
			}
		}
		outputs := make([]string, len(node.outputs))
		for ii, output := range node.outputs {
			outputs[ii] = fmt.Sprintf("%s: %s", g.VarName(output), output.shape)
		}
		fmt.Fprintf(&sb, "\t%s = %s(%s)", strings.Join(outputs, ", "), g.nodeNames[node],
			strings.Join(inputs, ", "))
		if len(node.attrs) > 0 {
			fmt.Fprintf(&sb, " %s", node.attrs)
		}
		sb.WriteString("\n")
	}
	for _, output := range g.outputs {
		fmt.Fprintf(&sb, "\toutput %q: %s\n", output.Name, output.Var.shape)
	}
	return sb.String()
}

// Validate checks the integrity of the graph: every value used is produced by a previous node or is an input or
// initializer of the graph (or, in subgraphs, captured from the enclosing graphs), every value and node has a
// unique name, and initializers have values. Subgraphs are validated too.
// All violations are reported, combined with multierr.
func (g *Graph) Validate() error {
	var err error
	available := sets.MakeWith(g.captures...)
	valueNames := make(map[string]*Var)
	addValue := func(v *Var, what string) {
		name := g.varNames[v]
		if name == "" {
			err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError, "%s has no name", what),
				"", v.String()))
		} else if previous, found := valueNames[name]; found && previous != v {
			err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError,
				"%s name %q is also used by %s", what, name, previous), "", v.String()))
		}
		valueNames[name] = v
		available.Insert(v)
	}
	for _, v := range g.inputs {
		addValue(v, "input")
	}
	for _, v := range g.initializers {
		if v.value == nil && v.defaultValue == nil {
			err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError, "initializer has no value"),
				"", v.String()))
		}
		if !available.Has(v) {
			addValue(v, "initializer")
		}
	}
	nodeNames := sets.Make[string]()
	for _, node := range g.nodes {
		name := g.nodeNames[node]
		if name == "" || nodeNames.Has(name) {
			err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError,
				"node has an empty or duplicate name %q", name), node.op, node.String()))
		}
		nodeNames.Insert(name)
		for ii, input := range node.inputs {
			if input != nil && !available.Has(input.root()) {
				err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError,
					"input #%d %s is neither produced by a previous node nor declared", ii, input),
					node.op, node.String()))
			}
		}
		for _, sg := range node.Subgraphs() {
			for _, v := range sg.captures {
				if !available.Has(v) {
					err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError,
						"subgraph %q captures %s, which is not available", sg.name, v), node.op, node.String()))
				}
			}
			if sgErr := sg.Validate(); sgErr != nil {
				err = multierr.Append(err, errs.At(errs.Wrapf(errs.GraphIntegrityError, sgErr,
					"subgraph %q", sg.name), node.op, node.String()))
			}
		}
		for _, output := range node.outputs {
			addValue(output, "output of "+node.op)
		}
	}
	for ii, output := range g.outputs {
		if !available.Has(output.Var) {
			err = multierr.Append(err, errs.At(errs.Newf(errs.GraphIntegrityError,
				"graph output #%d %q is not computed by the graph", ii, output.Name), "", output.Var.String()))
		}
	}
	return err
}
