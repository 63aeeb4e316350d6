// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package graph

import (
	"slices"

	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/shapes"
)

// Specialize returns a new graph with the named axes of the inputs resolved by the given bindings, and every
// node's types inferred again.
//
// Checks deferred for lack of information (e.g. an axis attribute against an input of unknown rank) are done
// now, and fail with an errs.InferenceError. The new inferred types must refine the ones of the original graph,
// otherwise the inference rule is faulty and an errs.InternalInferenceError is returned.
func (g *Graph) Specialize(bindings shapes.AxisBindings) (*Graph, error) {
	inputShapes := make([]shapes.Shape, len(g.inputs))
	for ii, input := range g.inputs {
		inputShapes[ii] = input.shape.Resolve(bindings)
	}
	return g.replay("Specialize", inputShapes, bindings)
}

// Refine is like Specialize, but the types of the inputs are given by name. Each given type must refine the
// declared type of the input.
//
// The dimensions the given types assign to named axes are applied to the other inputs sharing those names, so
// refining one input may refine others. Inputs binding the same axis name to different dimensions fail with an
// errs.TypeError.
func (g *Graph) Refine(inputShapes map[string]shapes.Shape) (*Graph, error) {
	const op = "Refine"
	for name := range inputShapes {
		if !slices.ContainsFunc(g.inputs, func(input *Var) bool { return input.name == name }) {
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "graph has no input named %q", name), op, "")
		}
	}
	refined := make([]shapes.Shape, len(g.inputs))
	bindings := make(shapes.AxisBindings)
	for ii, input := range g.inputs {
		shape, found := inputShapes[input.name]
		if !found {
			refined[ii] = input.shape
			continue
		}
		if !shape.Refines(input.shape) {
			return nil, errs.At(errs.Newf(errs.TypeError, "%s doesn't refine the declared type %s",
				shape, input.shape), op, input.String())
		}
		refined[ii] = shape
		if input.shape.UnknownRank {
			continue
		}
		extracted, err := shapes.ExtractBindings(input.shape, shape)
		if err == nil {
			err = bindings.Merge(extracted)
		}
		if err != nil {
			return nil, errs.At(errs.Wrapf(errs.TypeError, err, "conflicting axis dimensions"), op, input.String())
		}
	}
	for ii := range refined {
		refined[ii] = refined[ii].Resolve(bindings)
	}
	return g.replay(op, refined, bindings)
}

// replay rebuilds the graph in a new Builder, with the given input types. The bindings are applied to the
// types of the aliases created by UnsafeCast and UnsafeReshape.
func (g *Graph) replay(op string, inputShapes []shapes.Shape, bindings shapes.AxisBindings) (*Graph, error) {
	options := []Option{WithName(g.name), WithDocString(g.docString), WithDeduplication(false),
		WithTraces(g.builder.config.traces)}
	for _, v := range g.opsets {
		options = append(options, WithOpset(v.Domain, v.Version))
	}
	b := NewBuilder(g.builder.table, options...)
	return g.replayInto(op, b, inputShapes, bindings, make(map[*Var]*Var, len(g.varNames)))
}

// replayInto rebuilds the graph in b. The mapping from the original Vars to the new ones is shared with the
// replays of the enclosing graphs, so that the values captured by subgraphs are mapped too.
func (g *Graph) replayInto(op string, b *Builder, inputShapes []shapes.Shape, bindings shapes.AxisBindings,
	mapping map[*Var]*Var) (*Graph, error) {
	src := g.builder
	arguments := make([]*Var, len(g.inputs))
	for ii, input := range g.inputs {
		var v *Var
		var err error
		if input.defaultValue != nil {
			v, err = b.InputWithDefault(input.name, input.defaultValue)
		} else {
			v, err = b.DeclareInput(input.name, inputShapes[ii])
		}
		if err != nil {
			return nil, errs.At(err, op, input.String())
		}
		mapping[input] = v
		arguments[ii] = v
	}
	for _, initializer := range g.initializers {
		if _, found := mapping[initializer]; found {
			continue
		}
		v, err := b.Initializer(initializer.name, initializer.value)
		if err != nil {
			return nil, errs.At(err, op, initializer.String())
		}
		mapping[initializer] = v
	}

	var mapVar func(v *Var) (*Var, error)
	mapVar = func(v *Var) (*Var, error) {
		if v == nil {
			return nil, nil
		}
		if mapped, found := mapping[v]; found {
			return mapped, nil
		}
		if v.origin == nil {
			return nil, errs.Newf(errs.GraphIntegrityError, "%s is not part of the graph", v)
		}
		origin, err := mapVar(v.origin)
		if err != nil {
			return nil, err
		}
		override := UnsafeCast
		if v.reshaped {
			override = UnsafeReshape
		}
		alias, err := override(origin, v.shape.Resolve(bindings))
		if err != nil {
			return nil, err
		}
		mapping[v] = alias
		return alias, nil
	}

	for _, node := range g.nodes {
		if node.inserted {
			continue
		}
		inputs := make([]*Var, len(node.inputs))
		for ii, input := range node.inputs {
			mapped, err := mapVar(input)
			if err != nil {
				return nil, errs.At(err, op, node.String())
			}
			inputs[ii] = mapped
		}
		attrs, err := replaySubgraphs(op, b, node, bindings, mapping)
		if err != nil {
			return nil, g.nodeError(node, err)
		}
		outputs, err := b.AddNode(node.op, node.domain, node.version, inputs, attrs, len(node.outputs))
		if err != nil {
			return nil, g.nodeError(node, err)
		}
		for ii, output := range outputs {
			previous := node.outputs[ii]
			if !output.shape.Refines(previous.shape) {
				return nil, g.nodeError(node, errs.Newf(errs.InternalInferenceError,
					"output #%d inferred as %s, which doesn't refine %s inferred before", ii, output.shape,
					previous.shape))
			}
			mapping[previous] = output
		}
	}

	outputs := make([]Output, len(g.outputs))
	for ii, output := range g.outputs {
		v := output.Var
		if producer := src.Producer(v); producer != nil && producer.inserted {
			v = producer.inputs[0]
		}
		mapped, err := mapVar(v)
		if err != nil {
			return nil, errs.At(err, op, v.String())
		}
		outputs[ii] = Output{Name: output.Name, Var: mapped}
	}
	return b.BuildWithArguments(arguments, outputs...)
}

// replaySubgraphs returns the attributes of the node with its subgraphs rebuilt as subgraphs of b, so that their
// captured values are the replayed ones.
func replaySubgraphs(op string, b *Builder, node *Node, bindings shapes.AxisBindings,
	mapping map[*Var]*Var) (attributes.Map, error) {
	if len(node.Subgraphs()) == 0 {
		return node.attrs, nil
	}
	attrs := node.attrs.Clone()
	for _, name := range attrs.Names() {
		sg, ok := attrs[name].Graph().(*Graph)
		if attrs[name].Kind() != attributes.Graph || !ok {
			continue
		}
		inputShapes := make([]shapes.Shape, len(sg.inputs))
		for ii, input := range sg.inputs {
			inputShapes[ii] = input.shape.Resolve(bindings)
		}
		sub := b.Subgraph(WithName(sg.name), WithDocString(sg.docString), WithDeduplication(false))
		replayed, err := sg.replayInto(op, sub, inputShapes, bindings, mapping)
		if err != nil {
			return nil, errs.At(err, "", "subgraph "+sg.name)
		}
		attrs[name] = attributes.GraphValue(replayed)
	}
	return attrs, nil
}

// nodeError annotates an error with the node it refers to, including where it was created, if traced.
func (g *Graph) nodeError(node *Node, err error) error {
	subject := g.nodeNames[node]
	if node.trace != nil {
		err = errs.Wrapf(errs.KindOf(err), err, "node %s created at: %+v", subject, node.trace)
	}
	return errs.At(err, node.op, subject)
}
