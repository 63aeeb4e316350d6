// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/support/sets"
	"github.com/spoxml/spox/pkg/support/xslices"
	"k8s.io/klog/v2"
)

// Output is a requested output of the graph. An empty Name means the name is chosen automatically.
type Output struct {
	Name string
	Var  *Var
}

// Build freezes the Builder and returns the graph computing the given outputs, with automatically chosen output
// names. See BuildOutputs.
func (b *Builder) Build(outputs ...*Var) (*Graph, error) {
	return b.BuildOutputs(xslices.Map(outputs, func(v *Var) Output { return Output{Var: v} })...)
}

// BuildOutputs freezes the Builder and returns the graph computing the given outputs.
//
// Only nodes the outputs depend on are included, in creation order. The graph inputs are the declared inputs
// used by these nodes, in order of declaration. An output that is a declared input or initializer requested
// under a different name, an alias created by UnsafeCast or UnsafeReshape, or a Var requested more than once, is
// routed through an inserted Identity node.
func (b *Builder) BuildOutputs(outputs ...Output) (*Graph, error) {
	return b.build("Build", nil, false, outputs)
}

// BuildWithArguments is like BuildOutputs, but the graph inputs are exactly the given arguments, in the given
// order. Each argument must be a declared input of the Builder, and every declared input the outputs depend on
// must be listed.
//
// For subgraph builders (see Builder.Subgraph), values of the enclosing builders the outputs depend on are not
// inputs: they are captured, see Graph.Captures.
func (b *Builder) BuildWithArguments(arguments []*Var, outputs ...Output) (*Graph, error) {
	return b.build("BuildWithArguments", arguments, true, outputs)
}

func (b *Builder) build(op string, arguments []*Var, restrict bool, outputs []Output) (*Graph, error) {
	start := time.Now()
	if err := b.checkNotFrozen(op); err != nil {
		return nil, err
	}
	if len(outputs) == 0 {
		return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "no outputs requested"), op, "")
	}
	for ii, output := range outputs {
		if output.Var == nil {
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "output #%d is nil", ii), op, output.Name)
		}
		if !b.inScope(output.Var.builder) {
			return nil, errs.At(errs.Newf(errs.ScopeError, "output #%d belongs to another builder session", ii),
				op, output.Var.String())
		}
	}
	argumentSet := sets.Make[*Var]()
	for ii, argument := range arguments {
		switch {
		case argument == nil:
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "argument #%d is nil", ii), op, "")
		case argument.builder != b:
			return nil, errs.At(errs.Newf(errs.ScopeError, "argument #%d belongs to another builder session", ii),
				op, argument.String())
		case argument.IsAlias() || argument.kind != GraphInput:
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "argument #%d is not a declared input", ii),
				op, argument.String())
		case argumentSet.Has(argument):
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "argument #%d listed twice", ii),
				op, argument.String())
		}
		argumentSet.Insert(argument)
	}
	defer func() { b.frozen = true }()

	// Walk back from the outputs.
	reachable := make([]bool, len(b.nodes))
	used := sets.Make[*Var]()
	captured := sets.Make[*Var]()
	stack := make([]*Var, 0, len(outputs))
	for _, output := range outputs {
		stack = append(stack, output.Var)
	}
	for len(stack) > 0 {
		var v *Var
		v, stack = xslices.Pop(stack)
		root := v.root()
		if root.builder != b {
			captured.Insert(root)
			continue
		}
		if root.kind != NodeOutput {
			used.Insert(root)
			continue
		}
		if reachable[root.producer] {
			continue
		}
		reachable[root.producer] = true
		node := b.nodes[root.producer]
		for _, input := range node.inputs {
			if input != nil {
				stack = append(stack, input)
			}
		}
		for _, sg := range node.Subgraphs() {
			stack = append(stack, sg.captures...)
		}
	}
	nodes := make([]*Node, 0, len(b.nodes))
	for id, node := range b.nodes {
		if reachable[id] {
			nodes = append(nodes, node)
		}
	}
	numUnreachable := len(b.nodes) - len(nodes)

	// Opset versions of the graph.
	versions := make(map[string]int, len(b.required)+1)
	for domain, version := range b.required {
		versions[domain] = version
	}
	for _, node := range nodes {
		versions[node.domain] = max(versions[node.domain], node.version)
		for _, sg := range node.nested() {
			for _, v := range sg.opsets {
				versions[v.Domain] = max(versions[v.Domain], v.Version)
			}
		}
	}
	for domain, version := range b.config.fixedOpsets {
		versions[domain] = version
	}
	if _, found := versions[opset.DefaultDomain]; !found {
		fallback := b.table.LatestVersion(opset.DefaultDomain)
		if b.parent != nil && b.parent.domainVersion(opset.DefaultDomain) > 0 {
			fallback = b.parent.domainVersion(opset.DefaultDomain)
		}
		if fallback > 0 {
			versions[opset.DefaultDomain] = fallback
		}
	}
	if err := checkEpochs(b.table, nodes, versions); err != nil {
		return nil, err
	}

	// Route outputs that can't be named directly through an Identity.
	graphOutputs := make([]Output, len(outputs))
	seen := sets.Make[*Var]()
	numInserted := 0
	for ii, output := range outputs {
		v := output.Var
		needsIdentity := v.IsAlias() || seen.Has(v) || v.builder != b ||
			(v.kind != NodeOutput && output.Name != "" && output.Name != v.name)
		if needsIdentity {
			node, err := b.addIdentity(v, versions[opset.DefaultDomain])
			if err != nil {
				return nil, errs.At(err, op, v.String())
			}
			nodes = append(nodes, node)
			numInserted++
			v = node.outputs[0]
		}
		seen.Insert(v)
		graphOutputs[ii] = Output{Name: output.Name, Var: v}
	}

	// Inputs and initializers.
	var inputs []*Var
	if restrict {
		inputs = arguments
		for _, v := range b.inputs {
			if used.Has(v) && !argumentSet.Has(v) {
				return nil, errs.At(errs.Newf(errs.GraphIntegrityError,
					"input %q is needed by the outputs but is not listed in the arguments", v.name), op, v.String())
			}
		}
	} else {
		for _, v := range b.inputs {
			if used.Has(v) {
				inputs = append(inputs, v)
			}
		}
	}
	var initializers []*Var
	for _, v := range b.initializers {
		if used.Has(v) || argumentSet.Has(v) {
			initializers = append(initializers, v)
		}
	}

	g := &Graph{
		builder:      b,
		name:         b.config.name,
		docString:    b.config.docString,
		nodes:        nodes,
		inputs:       inputs,
		initializers: initializers,
		captures:     xslices.Keys(captured),
		varNames:     make(map[*Var]string),
		nodeNames:    make(map[*Node]string, len(nodes)),
	}
	slices.SortFunc(g.captures, func(v1, v2 *Var) int {
		return cmp.Or(cmp.Compare(v1.builder.seq, v2.builder.seq), cmp.Compare(v1.id, v2.id))
	})
	for _, domain := range xslices.SortedKeys(versions) {
		g.opsets = append(g.opsets, opset.Version{Domain: domain, Version: versions[domain]})
	}
	if err := g.assignNames(graphOutputs); err != nil {
		return nil, errs.At(err, op, "")
	}
	if klog.V(1).Enabled() {
		klog.Infof("%s: built graph %q with %d nodes (%d unreachable dropped, %d identities inserted), "+
			"opsets %v, in %s", b, g.name, len(g.nodes), numUnreachable, numInserted, g.opsets, time.Since(start))
	}
	return g, nil
}

// checkEpochs checks that every node, including the nodes of the subgraphs and of the bodies of local functions,
// is compatible with the versions of the domains used by the graph.
func checkEpochs(table *opset.Table, nodes []*Node, versions map[string]int) error {
	for _, node := range nodes {
		if err := table.CheckEpoch(node.binding, node.version, versions[node.domain]); err != nil {
			return errs.At(err, node.op, node.String())
		}
		for _, sg := range node.nested() {
			if err := checkEpochs(sg.builder.table, sg.nodes, versions); err != nil {
				return errs.At(err, "", "subgraph "+sg.name)
			}
		}
	}
	return nil
}

// addIdentity emits an Identity node to give v a new name as a graph output.
func (b *Builder) addIdentity(v *Var, version int) (*Node, error) {
	binding, err := b.table.Resolve(opset.DefaultDomain, version, "Identity")
	if err != nil {
		return nil, err
	}
	node := &Node{
		builder:  b,
		id:       NodeId(len(b.nodes)),
		op:       "Identity",
		domain:   opset.DefaultDomain,
		version:  version,
		binding:  binding,
		inputs:   []*Var{v},
		inserted: true,
	}
	output := b.newVar(NodeOutput, v.shape)
	output.producer = node.id
	output.value = v.value
	node.outputs = []*Var{output}
	b.nodes = append(b.nodes, node)
	return node, nil
}

// assignNames names every node and value of the graph. Declared inputs and initializers keep their names and
// requested output names are honored. Nodes are named "<OpType>_<k>" and their outputs "<node name>_<index>",
// with a "_<n>" suffix on collisions. In subgraphs the node names are prefixed by the name of the subgraph, so
// they don't collide with the names of the enclosing graphs.
func (g *Graph) assignNames(outputs []Output) error {
	var prefix string
	if g.builder.parent != nil {
		prefix = g.name + "_"
	}
	valueNames := sets.Make[string]()
	for _, list := range [][]*Var{g.inputs, g.initializers} {
		for _, v := range list {
			g.varNames[v] = v.name
			valueNames.Insert(v.name)
		}
	}
	for ii, output := range outputs {
		if output.Name == "" || g.varNames[output.Var] == output.Name {
			continue
		}
		if valueNames.Has(output.Name) {
			return errs.Newf(errs.GraphIntegrityError, "output #%d name %q is already used", ii, output.Name)
		}
		g.varNames[output.Var] = output.Name
		valueNames.Insert(output.Name)
	}

	nodeNames := sets.Make[string]()
	opCounts := make(map[string]int)
	for _, node := range g.nodes {
		name := uniqueName(fmt.Sprintf("%s%s_%d", prefix, node.op, opCounts[node.op]), nodeNames)
		opCounts[node.op]++
		g.nodeNames[node] = name
		for idx, output := range node.outputs {
			if _, found := g.varNames[output]; !found {
				g.varNames[output] = uniqueName(fmt.Sprintf("%s_%d", name, idx), valueNames)
			}
		}
	}

	g.outputs = make([]Output, len(outputs))
	for ii, output := range outputs {
		g.outputs[ii] = Output{Name: g.varNames[output.Var], Var: output.Var}
	}
	return nil
}

// uniqueName returns base, or base with a "_<n>" suffix if it is already used, and marks it as used.
func uniqueName(base string, used sets.Set[string]) string {
	name := base
	for n := 1; used.Has(name); n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	used.Insert(name)
	return name
}
