// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/opset"
)

// NodeId is the index of a Node in its Builder. Nodes are created in topological order, so a Node's inputs are
// always produced by nodes with lower ids.
type NodeId int

// InvalidNodeId is used to indicate an invalid node, or the absence of a producer.
const InvalidNodeId = NodeId(-1)

// Node is one operator invocation. Nodes are immutable once created.
type Node struct {
	builder *Builder
	id      NodeId
	op      string
	domain  string
	version int
	binding *opset.Binding

	// inputs may contain nil entries, for omitted optional inputs.
	inputs  []*Var
	attrs   attributes.Map
	outputs []*Var

	// inserted marks Identity nodes emitted by Build to name outputs.
	inserted bool

	trace error
}

// Id of the Node, its position in creation order.
func (n *Node) Id() NodeId { return n.id }

// Builder that created the Node.
func (n *Node) Builder() *Builder { return n.builder }

// OpType returns the operator name, e.g. "Add".
func (n *Node) OpType() string { return n.op }

// Domain of the operator, "" for the default ONNX domain.
func (n *Node) Domain() string { return n.domain }

// Version of the domain requested when the node was added.
func (n *Node) Version() int { return n.version }

// Binding the operator was resolved to.
func (n *Node) Binding() *opset.Binding { return n.binding }

// Inputs of the node. Omitted optional inputs are nil.
func (n *Node) Inputs() []*Var { return slices.Clone(n.inputs) }

// NumInputs returns the number of inputs, including omitted ones.
func (n *Node) NumInputs() int { return len(n.inputs) }

// Input returns the i-th input, nil if it was omitted.
func (n *Node) Input(i int) *Var { return n.inputs[i] }

// Attributes passed when the node was added. Defaults are not included.
func (n *Node) Attributes() attributes.Map { return n.attrs.Clone() }

// Subgraphs returns the subgraphs given as graph attributes of the node, sorted by attribute name.
func (n *Node) Subgraphs() []*Graph {
	var list []*Graph
	for _, sg := range n.attrs.Subgraphs() {
		if g, ok := sg.(*Graph); ok {
			list = append(list, g)
		}
	}
	return list
}

// Outputs of the node.
func (n *Node) Outputs() []*Var { return slices.Clone(n.outputs) }

// NumOutputs returns the number of outputs of the node.
func (n *Node) NumOutputs() int { return len(n.outputs) }

// Output returns the i-th output.
func (n *Node) Output(i int) *Var { return n.outputs[i] }

// IsInserted returns whether the node is an Identity emitted by Build to name a graph output.
func (n *Node) IsInserted() bool { return n.inserted }

// Trace returns the stack trace of where the node was created, if the Builder was created WithTraces(true).
// It can be printed with "%+v".
func (n *Node) Trace() error { return n.trace }

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	parts := make([]string, len(n.inputs))
	for ii, input := range n.inputs {
		if input == nil {
			parts[ii] = "_"
		} else {
			parts[ii] = fmt.Sprintf("#%d", input.id)
		}
	}
	var domain string
	if n.domain != opset.DefaultDomain {
		domain = n.domain + "."
	}
	s := fmt.Sprintf("Node#%d(%s%s-%d(%s)", n.id, domain, n.op, n.version, strings.Join(parts, ", "))
	if len(n.attrs) > 0 {
		s += " " + n.attrs.String()
	}
	return s + ")"
}
