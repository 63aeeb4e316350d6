// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"k8s.io/klog/v2"
)

const (
	// ProducerName is the default producer written to the models.
	ProducerName = "spox"

	// ProducerVersion is the default producer version written to the models.
	ProducerVersion = "0.4.0"
)

// irVersions maps the first default-domain opset of each IR version.
var irVersions = []struct {
	opset, ir int
}{
	{21, 10},
	{19, 9},
	{15, 8},
	{12, 7},
	{11, 6},
	{10, 5},
	{9, 4},
}

// IRVersion returns the minimum IR version that supports the given version of the default domain.
func IRVersion(opsetVersion int) int64 {
	for _, entry := range irVersions {
		if opsetVersion >= entry.opset {
			return int64(entry.ir)
		}
	}
	return 3
}

type lowerConfig struct {
	producerName, producerVersion string
	intermediateValueInfo         bool
	irVersion                     int64
}

// LowerOption configures Lower.
type LowerOption func(*lowerConfig)

// WithProducer sets the producer name and version of the model.
func WithProducer(name, version string) LowerOption {
	return func(c *lowerConfig) { c.producerName, c.producerVersion = name, version }
}

// WithIntermediateValueInfo includes the types of all intermediate values in the model.
// By default only the inputs and outputs are typed.
func WithIntermediateValueInfo(enabled bool) LowerOption {
	return func(c *lowerConfig) { c.intermediateValueInfo = enabled }
}

// WithIRVersion forces the IR version of the model, instead of the minimum one for the opset used.
func WithIRVersion(version int64) LowerOption {
	return func(c *lowerConfig) { c.irVersion = version }
}

// Lower converts the graph to an ONNX model.
//
// The graph is validated first: all integrity violations are returned as one error. The subgraphs given as graph
// attributes are lowered in place, and the local functions called by any node (see graph.Function) are included
// in the model, sorted so that a function comes after the functions it calls.
func Lower(g *graph.Graph, options ...LowerOption) (*ModelProto, error) {
	cfg := lowerConfig{producerName: ProducerName, producerVersion: ProducerVersion}
	for _, option := range options {
		option(&cfg)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if cfg.irVersion == 0 {
		cfg.irVersion = IRVersion(g.OpsetVersion(""))
	}

	m := &ModelProto{
		IRVersion:       cfg.irVersion,
		ProducerName:    cfg.producerName,
		ProducerVersion: cfg.producerVersion,
	}
	for _, v := range g.Opsets() {
		m.OpsetImport = append(m.OpsetImport, &OperatorSetIdProto{Domain: v.Domain, Version: int64(v.Version)})
	}
	l := &lowering{cfg: cfg, root: g, functions: make(map[*graph.Graph]bool)}
	var err error
	m.Graph, err = l.graph(g, nil)
	if err != nil {
		return nil, err
	}
	m.Functions = l.functionProtos
	return m, nil
}

// lowering holds the state of one call to Lower.
type lowering struct {
	cfg            lowerConfig
	root           *graph.Graph
	functions      map[*graph.Graph]bool
	functionProtos []*FunctionProto
}

// graph lowers g, whose nodes may refer to the values of the enclosing graphs (for subgraphs).
func (l *lowering) graph(g *graph.Graph, enclosing []*graph.Graph) (*GraphProto, error) {
	gp := &GraphProto{Name: g.Name(), DocString: g.DocString()}
	scope := append([]*graph.Graph{g}, enclosing...)
	nodes, valueInfos, err := l.nodes(g, scope)
	if err != nil {
		return nil, err
	}
	gp.Node, gp.ValueInfo = nodes, valueInfos
	for _, v := range g.Inputs() {
		gp.Input = append(gp.Input, valueInfo(g.VarName(v), v.Shape()))
	}
	for _, v := range g.Initializers() {
		tp, err := lowerInitializer(g, v)
		if err != nil {
			return nil, err
		}
		gp.Initializer = append(gp.Initializer, tp)
	}
	for _, output := range g.Outputs() {
		gp.Output = append(gp.Output, valueInfo(output.Name, output.Var.Shape()))
	}
	return gp, nil
}

// nodes lowers the nodes of g. Their inputs are named by the innermost graph of the scope that knows them.
func (l *lowering) nodes(g *graph.Graph, scope []*graph.Graph) (nodes []*NodeProto, valueInfos []*ValueInfoProto,
	err error) {
	varName := func(v *graph.Var) string {
		for _, sg := range scope {
			if name := sg.VarName(v); name != "" {
				return name
			}
		}
		return ""
	}
	outputs := make(map[*graph.Var]bool)
	for _, output := range g.Outputs() {
		outputs[output.Var] = true
	}
	for _, node := range g.Nodes() {
		np := &NodeProto{OpType: node.OpType(), Domain: node.Domain(), Name: g.NodeName(node)}
		for _, input := range node.Inputs() {
			np.Input = append(np.Input, varName(input))
		}
		for _, output := range node.Outputs() {
			name := g.VarName(output)
			np.Output = append(np.Output, name)
			if l.cfg.intermediateValueInfo && !outputs[output] {
				valueInfos = append(valueInfos, valueInfo(name, output.Shape()))
			}
		}
		attrs := node.Attributes()
		for _, name := range attrs.Names() {
			var ap *AttributeProto
			if attrs[name].Kind() == attributes.Graph {
				ap, err = l.graphAttribute(name, attrs[name], scope)
			} else {
				ap, err = lowerAttribute(name, attrs[name])
			}
			if err != nil {
				return nil, nil, errs.At(err, node.OpType(), g.NodeName(node))
			}
			np.Attribute = append(np.Attribute, ap)
		}
		if body := node.FunctionBody(); body != nil {
			if err = l.function(node, body); err != nil {
				return nil, nil, errs.At(err, node.OpType(), g.NodeName(node))
			}
		}
		nodes = append(nodes, np)
	}
	return nodes, valueInfos, nil
}

func (l *lowering) graphAttribute(name string, value attributes.Value, scope []*graph.Graph) (*AttributeProto,
	error) {
	sg, ok := value.Graph().(*graph.Graph)
	if !ok {
		return nil, errs.Newf(errs.GraphIntegrityError, "graph attribute %q is not a *graph.Graph", name)
	}
	gp, err := l.graph(sg, scope)
	if err != nil {
		return nil, errs.At(err, "", "subgraph "+sg.Name())
	}
	return &AttributeProto{Name: name, Type: AttributeGraph, G: gp}, nil
}

// function includes the definition of the local function called by node, once per model. Its initializers
// become Constant nodes, and it imports the versions of the domains used by the model.
func (l *lowering) function(node *graph.Node, body *graph.Graph) error {
	if l.functions[body] {
		return nil
	}
	l.functions[body] = true
	if err := body.Validate(); err != nil {
		return err
	}
	fp := &FunctionProto{Name: node.OpType(), Domain: node.Domain(), DocString: body.DocString()}
	for _, v := range body.Inputs() {
		fp.Input = append(fp.Input, body.VarName(v))
	}
	for _, output := range body.Outputs() {
		fp.Output = append(fp.Output, output.Name)
	}
	for _, v := range body.Initializers() {
		tp, err := lowerInitializer(body, v)
		if err != nil {
			return err
		}
		tp.Name = ""
		fp.Node = append(fp.Node, &NodeProto{
			OpType:    "Constant",
			Name:      body.VarName(v) + "_Constant",
			Output:    []string{body.VarName(v)},
			Attribute: []*AttributeProto{{Name: "value", Type: AttributeTensor, T: tp}},
		})
	}
	nodes, _, err := l.nodes(body, []*graph.Graph{body})
	if err != nil {
		return errs.At(err, "", "function "+node.OpType())
	}
	fp.Node = append(fp.Node, nodes...)
	for _, v := range body.Opsets() {
		version := max(v.Version, l.root.OpsetVersion(v.Domain))
		fp.OpsetImport = append(fp.OpsetImport, &OperatorSetIdProto{Domain: v.Domain, Version: int64(version)})
	}
	l.functionProtos = append(l.functionProtos, fp)
	return nil
}

func lowerInitializer(g *graph.Graph, v *graph.Var) (*TensorProto, error) {
	value := v.Value()
	if value == nil {
		value = v.DefaultValue()
	}
	tp, err := lowerTensor(value)
	if err != nil {
		return nil, errs.At(err, "", v.String())
	}
	tp.Name = g.VarName(v)
	return tp, nil
}

// Serialize lowers the graph and encodes it in the ONNX protobuf format.
func Serialize(g *graph.Graph, options ...LowerOption) ([]byte, error) {
	m, err := Lower(g, options...)
	if err != nil {
		return nil, err
	}
	return Marshal(m)
}

// WriteFile serializes the graph to the given file path.
func WriteFile(g *graph.Graph, path string, options ...LowerOption) error {
	data, err := Serialize(g, options...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write model to %q", path)
	}
	klog.V(1).Infof("Wrote %s to %q (%s)", g, path, humanize.Bytes(uint64(len(data))))
	return nil
}

func valueInfo(name string, shape shapes.Shape) *ValueInfoProto {
	tt := &TypeProtoTensor{ElemType: int32(shape.DType)}
	if shape.HasRank() {
		tt.Shape = &TensorShapeProto{}
		for axis, dim := range shape.Dimensions {
			d := &TensorShapeProtoDimension{}
			if dim != shapes.DimUnknown {
				d.DimValue, d.HasValue = int64(dim), true
			} else {
				d.DimParam = shape.AxisName(axis)
			}
			tt.Shape.Dim = append(tt.Shape.Dim, d)
		}
	}
	return &ValueInfoProto{Name: name, Type: &TypeProto{TensorType: tt}}
}

func lowerTensor(t *tensors.Tensor) (*TensorProto, error) {
	if t == nil {
		return nil, errs.Newf(errs.GraphIntegrityError, "missing tensor value")
	}
	tp := &TensorProto{DataType: int32(t.DType())}
	for _, dim := range t.Shape().Dimensions {
		tp.Dims = append(tp.Dims, int64(dim))
	}
	if t.DType() == dtypes.String {
		strs, err := t.Strings()
		if err != nil {
			return nil, errs.Wrap(errs.GraphIntegrityError, err)
		}
		for _, s := range strs {
			tp.StringData = append(tp.StringData, []byte(s))
		}
		return tp, nil
	}
	raw, err := t.Bytes()
	if err != nil {
		return nil, errs.Wrap(errs.GraphIntegrityError, err)
	}
	tp.RawData = raw
	return tp, nil
}

func lowerAttribute(name string, value attributes.Value) (*AttributeProto, error) {
	ap := &AttributeProto{Name: name, Type: AttributeType(value.Kind())}
	var err error
	switch value.Kind() {
	case attributes.Float:
		ap.F = value.Float()
	case attributes.Int:
		ap.I = value.Int()
	case attributes.String:
		ap.S = []byte(value.Str())
	case attributes.Tensor:
		ap.T, err = lowerTensor(value.Tensor())
	case attributes.Floats:
		ap.Floats = value.Floats()
	case attributes.Ints:
		ap.Ints = value.Ints()
	case attributes.Strings:
		for _, s := range value.Strings() {
			ap.Strings = append(ap.Strings, []byte(s))
		}
	case attributes.Tensors:
		for _, t := range value.Tensors() {
			var tp *TensorProto
			tp, err = lowerTensor(t)
			if err != nil {
				break
			}
			ap.Tensors = append(ap.Tensors, tp)
		}
	default:
		err = errs.Newf(errs.GraphIntegrityError, "attribute %q has invalid kind %s", name, value.Kind())
	}
	if err != nil {
		return nil, err
	}
	return ap, nil
}
