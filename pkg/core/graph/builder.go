// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/inference"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"k8s.io/klog/v2"
)

// DefaultName is the name of graphs built without WithName.
const DefaultName = "spox_graph"

type config struct {
	name, docString string
	deduplicate     bool
	fixedOpsets     map[string]int
	traces          bool
}

// Option configures a Builder.
type Option func(cfg *config)

// WithName sets the name of the graph. The default is DefaultName.
func WithName(name string) Option {
	return func(cfg *config) { cfg.name = name }
}

// WithDocString sets the documentation string of the graph.
func WithDocString(doc string) Option {
	return func(cfg *config) { cfg.docString = doc }
}

// WithDeduplication enables or disables merging of identical pure nodes. It is enabled by default.
func WithDeduplication(enabled bool) Option {
	return func(cfg *config) { cfg.deduplicate = enabled }
}

// WithOpset fixes the version of the domain used by the graph. Nodes requested at a different version of the
// domain must be compatible with it.
//
// Without it, the graph uses the maximum version requested by its nodes (or by Builder.RequireOpset).
func WithOpset(domain string, version int) Option {
	return func(cfg *config) {
		if cfg.fixedOpsets == nil {
			cfg.fixedOpsets = make(map[string]int)
		}
		cfg.fixedOpsets[opset.NormalizeDomain(domain)] = version
	}
}

// WithTraces enables capturing the stack trace of where each node is created. See Node.Trace.
func WithTraces(enabled bool) Option {
	return func(cfg *config) { cfg.traces = enabled }
}

var (
	muSessionCount sync.Mutex
	sessionCount   int
)

// Builder is a graph construction session. It owns all Vars and Nodes created through it.
//
// Vars can only be used with the Builder that created them, and once the Builder is built (see Build) it is frozen
// and can't be changed anymore.
type Builder struct {
	id     uuid.UUID
	seq    int
	table  *opset.Table
	config config

	vars  []*Var
	nodes []*Node

	// declared inputs and initializers, by name.
	declared     map[string]*Var
	inputs       []*Var
	initializers []*Var

	// versions is the maximum version requested by nodes, per domain, and required the minimum versions set
	// with RequireOpset.
	versions map[string]int
	required map[string]int

	dedup  map[string]*Node
	frozen bool

	// parent is set for the builders of subgraphs, see Subgraph.
	parent       *Builder
	numSubgraphs int
}

// NewBuilder starts a graph construction session, with operators resolved by the given table.
func NewBuilder(table *opset.Table, options ...Option) *Builder {
	if table == nil {
		exceptions.Panicf("graph.NewBuilder: nil opset table")
	}
	muSessionCount.Lock()
	defer muSessionCount.Unlock()
	b := &Builder{
		id:    uuid.New(),
		seq:   sessionCount,
		table: table,
		config: config{
			name:        DefaultName,
			deduplicate: true,
		},
		declared: make(map[string]*Var),
		versions: make(map[string]int),
		required: make(map[string]int),
		dedup:    make(map[string]*Node),
	}
	sessionCount++
	for _, option := range options {
		option(&b.config)
	}
	return b
}

// Subgraph starts the construction session of a subgraph of b, to be used as a graph attribute of a node of b,
// like the branches of If.
//
// The nodes of the subgraph can use the Vars of b and of the builders enclosing it: these are captured from the
// outer scope, see Graph.Captures. The subgraph uses the same table and fixed opsets as b, and it is named after b
// unless WithName is given.
func (b *Builder) Subgraph(options ...Option) *Builder {
	name := fmt.Sprintf("%s_sub%d", b.config.name, b.numSubgraphs)
	b.numSubgraphs++
	inherited := []Option{WithName(name), WithDeduplication(b.config.deduplicate), WithTraces(b.config.traces)}
	for domain, version := range b.config.fixedOpsets {
		inherited = append(inherited, WithOpset(domain, version))
	}
	sub := NewBuilder(b.table, append(inherited, options...)...)
	sub.parent = b
	return sub
}

// Parent returns the builder enclosing a subgraph builder, or nil. See Subgraph.
func (b *Builder) Parent() *Builder { return b.parent }

// inScope returns whether the Vars of other can be used by the nodes of b: other is b or encloses it.
func (b *Builder) inScope(other *Builder) bool {
	for ; b != nil; b = b.parent {
		if b == other {
			return true
		}
	}
	return false
}

// Id returns the unique id of the session.
func (b *Builder) Id() uuid.UUID { return b.id }

// Name of the graph being built.
func (b *Builder) Name() string { return b.config.name }

// Table used to resolve operators.
func (b *Builder) Table() *opset.Table { return b.table }

// IsFrozen returns whether the Builder was already built.
func (b *Builder) IsFrozen() bool { return b.frozen }

// NumNodes returns the number of nodes created so far, including unreachable ones.
func (b *Builder) NumNodes() int { return len(b.nodes) }

// NumVars returns the number of Vars created so far.
func (b *Builder) NumVars() int { return len(b.vars) }

// Node returns the node with the given id.
func (b *Builder) Node(id NodeId) *Node { return b.nodes[id] }

// Producer returns the node that produces v, or nil for declared inputs and initializers.
func (b *Builder) Producer(v *Var) *Node {
	root := v.root()
	if root.kind != NodeOutput {
		return nil
	}
	return b.nodes[root.producer]
}

// Inputs returns the declared inputs, in order of declaration.
func (b *Builder) Inputs() []*Var { return slices.Clone(b.inputs) }

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return fmt.Sprintf("Builder#%d(%q)", b.seq, b.config.name)
}

func (b *Builder) checkNotFrozen(op string) error {
	if b.frozen {
		return errs.At(errs.Newf(errs.ScopeError, "%s is frozen, it was already built", b), op, "")
	}
	return nil
}

func (b *Builder) newVar(kind VarKind, shape shapes.Shape) *Var {
	v := &Var{
		builder:  b,
		id:       VarId(len(b.vars)),
		kind:     kind,
		shape:    shape,
		producer: InvalidNodeId,
	}
	b.vars = append(b.vars, v)
	return v
}

func (b *Builder) newAlias(v *Var, shape shapes.Shape) *Var {
	root := v.root()
	alias := b.newVar(root.kind, shape)
	alias.producer = root.producer
	alias.outputIndex = root.outputIndex
	alias.origin = v
	return alias
}

func (b *Builder) declare(op, name string, kind VarKind, shape shapes.Shape) (*Var, error) {
	if err := b.checkNotFrozen(op); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.At(errs.Newf(errs.ScopeError, "name can't be empty"), op, "")
	}
	if previous, found := b.declared[name]; found {
		return nil, errs.At(errs.Newf(errs.ScopeError, "name %q already declared as %s", name, previous),
			op, name)
	}
	if !shape.Ok() {
		return nil, errs.At(errs.Newf(errs.TypeError, "invalid type %s", shape), op, name)
	}
	v := b.newVar(kind, shape)
	v.name = name
	b.declared[name] = v
	return v, nil
}

// DeclareInput declares an input of the graph. The name must be unique and non-empty.
func (b *Builder) DeclareInput(name string, shape shapes.Shape) (*Var, error) {
	v, err := b.declare("DeclareInput", name, GraphInput, shape)
	if err != nil {
		return nil, err
	}
	b.inputs = append(b.inputs, v)
	return v, nil
}

// Initializer declares a named constant of the graph. Its type is the concrete shape of the value.
func (b *Builder) Initializer(name string, value *tensors.Tensor) (*Var, error) {
	if value == nil {
		return nil, errs.At(errs.Newf(errs.TypeError, "nil value"), "Initializer", name)
	}
	v, err := b.declare("Initializer", name, InitializerVar, value.Shape())
	if err != nil {
		return nil, err
	}
	v.value = value
	b.initializers = append(b.initializers, v)
	return v, nil
}

// InputWithDefault declares an input of the graph with a default value. It is emitted both as a graph input and
// as an initializer, and its value is not considered constant at build time.
func (b *Builder) InputWithDefault(name string, value *tensors.Tensor) (*Var, error) {
	if value == nil {
		return nil, errs.At(errs.Newf(errs.TypeError, "nil default value"), "InputWithDefault", name)
	}
	v, err := b.declare("InputWithDefault", name, GraphInput, value.Shape())
	if err != nil {
		return nil, err
	}
	v.defaultValue = value
	b.inputs = append(b.inputs, v)
	b.initializers = append(b.initializers, v)
	return v, nil
}

// RequireOpset requires the graph to import at least the given version of the domain, even if no node uses it.
func (b *Builder) RequireOpset(domain string, version int) error {
	const op = "RequireOpset"
	if err := b.checkNotFrozen(op); err != nil {
		return err
	}
	domain = opset.NormalizeDomain(domain)
	latest := b.table.LatestVersion(domain)
	if version < 1 || version > latest {
		return errs.At(errs.Newf(errs.UnsupportedOpsetError,
			"version %d of domain %q is not supported by %s (latest is %d)",
			version, opset.DomainName(domain), b.table, latest), op, "")
	}
	if fixed, found := b.config.fixedOpsets[domain]; found {
		if version > fixed {
			return errs.At(errs.Newf(errs.UnsupportedOpsetError,
				"version %d of domain %q required, but the graph is fixed to version %d",
				version, opset.DomainName(domain), fixed), op, "")
		}
		return nil
	}
	if err := b.checkRaise(domain, version); err != nil {
		return errs.At(err, op, "")
	}
	b.required[domain] = max(b.required[domain], version)
	return nil
}

// domainVersion returns the version of the domain the graph uses so far, or 0 if it is not yet used.
func (b *Builder) domainVersion(domain string) int {
	if fixed, found := b.config.fixedOpsets[domain]; found {
		return fixed
	}
	return max(b.versions[domain], b.required[domain])
}

// checkRaise checks that raising the version of the domain to target keeps every node already added valid.
func (b *Builder) checkRaise(domain string, target int) error {
	if target <= b.domainVersion(domain) {
		return nil
	}
	for _, node := range b.nodes {
		if node.domain != domain || node.inserted {
			continue
		}
		if err := b.table.CheckEpoch(node.binding, node.version, target); err != nil {
			return errs.Wrapf(errs.UnsupportedOpsetError, err,
				"raising domain %q to version %d invalidates %s", opset.DomainName(domain), target, node)
		}
	}
	return nil
}

// checkEpoch checks that the binding requested at version is compatible with the version the graph will use for
// the domain.
func (b *Builder) checkEpoch(binding *opset.Binding, version int) error {
	domain := binding.Domain
	if fixed, found := b.config.fixedOpsets[domain]; found {
		return b.table.CheckEpoch(binding, version, fixed)
	}
	target := max(b.domainVersion(domain), version)
	if err := b.checkRaise(domain, target); err != nil {
		return err
	}
	return b.table.CheckEpoch(binding, version, target)
}

// AddNode adds an operator invocation and returns its outputs.
//
// The operator is resolved in the Builder's table for the domain and version, the inputs and attributes are
// checked against its signature, and the types of the outputs are inferred. Nil inputs mark omitted optional
// inputs. The attributes are kept as given: defaults are only used for inference.
//
// If deduplication is enabled and the operator is pure, adding a node identical to a previous one (same operator,
// version, inputs, attributes and number of outputs) returns the outputs of the previous node.
func (b *Builder) AddNode(op, domain string, version int, inputs []*Var, attrs attributes.Map,
	numOutputs int) ([]*Var, error) {
	node, err := b.addNode(op, domain, version, inputs, attrs, numOutputs, b.config.deduplicate)
	if err != nil {
		return nil, err
	}
	return slices.Clone(node.outputs), nil
}

func (b *Builder) addNode(op, domain string, version int, inputs []*Var, attrs attributes.Map,
	numOutputs int, deduplicate bool) (*Node, error) {
	if err := b.checkNotFrozen(op); err != nil {
		return nil, err
	}
	domain = opset.NormalizeDomain(domain)
	for ii, input := range inputs {
		if input != nil && !b.inScope(input.builder) {
			return nil, errs.At(errs.Newf(errs.ScopeError, "input #%d belongs to another builder session", ii),
				op, input.String())
		}
	}
	subgraphs, err := b.checkSubgraphs(attrs)
	if err != nil {
		return nil, errs.At(err, op, "")
	}

	binding, err := b.table.Resolve(domain, version, op)
	if err != nil {
		return nil, err
	}
	inputShapes := make([]shapes.Shape, len(inputs))
	values := make([]*tensors.Tensor, len(inputs))
	for ii, input := range inputs {
		if input == nil {
			inputShapes[ii] = shapes.Invalid()
			continue
		}
		inputShapes[ii] = input.shape
		values[ii] = input.value
	}
	filled, err := binding.Signature.Check(inputShapes, attrs, numOutputs)
	if err != nil {
		var subject string
		var checkErr *opset.CheckError
		if errors.As(err, &checkErr) && checkErr.Input >= 0 {
			if input := inputs[checkErr.Input]; input != nil {
				subject = input.String()
			} else {
				subject = fmt.Sprintf("input #%d", checkErr.Input)
			}
		}
		return nil, errs.At(err, op, subject)
	}
	if err := b.checkEpoch(binding, version); err != nil {
		return nil, errs.At(err, op, "")
	}

	req := &inference.Request{Op: op, Inputs: inputShapes, Values: values, Attrs: filled, NumOutputs: numOutputs}
	outputShapes, err := inference.Run(binding.Rule, req)
	if err != nil {
		return nil, err
	}
	var outputValues []*tensors.Tensor
	if binding.ValueRule != nil {
		outputValues, err = binding.ValueRule(req, outputShapes)
		if err != nil {
			return nil, errs.At(err, op, "")
		}
		if len(outputValues) > numOutputs {
			return nil, errs.At(errs.Newf(errs.InternalInferenceError,
				"value rule propagated %d values for %d outputs", len(outputValues), numOutputs), op, "")
		}
		for ii, value := range outputValues {
			if value == nil {
				continue
			}
			if !value.Shape().Refines(outputShapes[ii]) {
				return nil, errs.At(errs.Newf(errs.InternalInferenceError,
					"propagated value for output #%d has shape %s, inferred type is %s",
					ii, value.Shape(), outputShapes[ii]), op, "")
			}
			outputShapes[ii] = value.Shape()
		}
	}

	var key string
	if deduplicate && binding.Pure {
		key = dedupKey(op, domain, version, inputs, filled, numOutputs)
		if previous, found := b.dedup[key]; found {
			for ii, output := range previous.outputs {
				if !output.shape.Equal(outputShapes[ii]) {
					return nil, errs.At(errs.Newf(errs.InternalInferenceError,
						"output #%d inferred as %s, but the identical %s has it as %s",
						ii, outputShapes[ii], previous, output.shape), op, "")
				}
			}
			klog.V(2).Infof("%s: %s reused for %s", b, previous, op)
			return previous, nil
		}
	}

	if _, fixed := b.config.fixedOpsets[domain]; !fixed {
		b.versions[domain] = max(b.versions[domain], version)
	}
	if body, ok := binding.Body.(*Graph); ok {
		subgraphs = append(subgraphs, body)
	}
	for _, sg := range subgraphs {
		for _, v := range sg.opsets {
			if _, fixed := b.config.fixedOpsets[v.Domain]; !fixed {
				b.versions[v.Domain] = max(b.versions[v.Domain], v.Version)
			}
		}
	}
	node := &Node{
		builder: b,
		id:      NodeId(len(b.nodes)),
		op:      op,
		domain:  domain,
		version: version,
		binding: binding,
		inputs:  slices.Clone(inputs),
		attrs:   attrs.Clone(),
	}
	if b.config.traces {
		node.trace = errors.New("Stack-trace")
	}
	node.outputs = make([]*Var, numOutputs)
	for ii, shape := range outputShapes {
		output := b.newVar(NodeOutput, shape)
		output.producer = node.id
		output.outputIndex = ii
		if ii < len(outputValues) {
			output.value = outputValues[ii]
		}
		node.outputs[ii] = output
	}
	b.nodes = append(b.nodes, node)
	if key != "" {
		b.dedup[key] = node
	}
	if klog.V(2).Enabled() {
		klog.Infof("%s: added %s -> %v", b, node, outputShapes)
	}
	return node, nil
}

// checkSubgraphs returns the subgraphs given as graph attributes. They must be built by Subgraph builders of b
// (or of a builder enclosing b), and the values they capture must be in the scope of b.
func (b *Builder) checkSubgraphs(attrs attributes.Map) ([]*Graph, error) {
	var subgraphs []*Graph
	for _, name := range attrs.Names() {
		value := attrs[name]
		if value.Kind() != attributes.Graph {
			continue
		}
		sg, ok := value.Graph().(*Graph)
		if !ok || sg == nil {
			return nil, errs.Newf(errs.GraphIntegrityError, "graph attribute %q is not a *graph.Graph", name)
		}
		if sg.builder.parent == nil || !b.inScope(sg.builder.parent) {
			return nil, errs.Newf(errs.ScopeError, "graph attribute %q was not built as a subgraph of %s", name, b)
		}
		for _, v := range sg.captures {
			if !b.inScope(v.builder) {
				return nil, errs.Newf(errs.ScopeError, "graph attribute %q captures %s, out of the scope of %s",
					name, v, b)
			}
		}
		subgraphs = append(subgraphs, sg)
	}
	return subgraphs, nil
}

// dedupKey identifies structurally identical invocations.
func dedupKey(op, domain string, version int, inputs []*Var, attrs attributes.Map, numOutputs int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s|%d|%d|", domain, op, version, numOutputs)
	for _, input := range inputs {
		if input == nil {
			sb.WriteString("_,")
		} else {
			fmt.Fprintf(&sb, "%d.%d,", input.builder.seq, input.id)
		}
	}
	sb.WriteString(attrs.Key())
	return sb.String()
}
