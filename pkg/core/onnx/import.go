// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/attributes"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/errs"
	"github.com/spoxml/spox/pkg/core/graph"
	"github.com/spoxml/spox/pkg/core/opset"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"k8s.io/klog/v2"
)

// Import rebuilds a graph from an ONNX model, resolving its operators against the table.
//
// Every node goes through graph.Builder.AddNode, at the version the model imports for its domain, so types are
// re-inferred and checked. Inputs with an initializer of the same name become inputs with default values. Graph
// attributes are imported as subgraphs (see graph.Builder.Subgraph), and calls to the local functions of the model
// are inlined: their nodes are added in place of the call.
func Import(m *ModelProto, table *opset.Table) (*graph.Graph, error) {
	const op = "Import"
	if m == nil || m.Graph == nil {
		return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "model has no graph"), op, "")
	}
	gp := m.Graph
	options := []graph.Option{graph.WithDocString(gp.DocString), graph.WithDeduplication(false)}
	if gp.Name != "" {
		options = append(options, graph.WithName(gp.Name))
	}
	imp := &importer{
		versions:  make(map[string]int, len(m.OpsetImport)),
		functions: make(map[string]*FunctionProto, len(m.Functions)),
		inlining:  make(map[*FunctionProto]bool),
	}
	for _, imported := range m.OpsetImport {
		domain := opset.NormalizeDomain(imported.Domain)
		imp.versions[domain] = int(imported.Version)
		options = append(options, graph.WithOpset(domain, int(imported.Version)))
	}
	for _, fp := range m.Functions {
		if len(fp.Attribute) > 0 {
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError,
				"attributes of local functions are not supported"), op, fp.Name)
		}
		imp.functions[functionKey(fp.Domain, fp.Name)] = fp
	}
	b := graph.NewBuilder(table, options...)
	g, err := imp.graph(b, gp, nil)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("Imported %s (IR version %d, producer %q, %d functions inlined)", g, m.IRVersion,
		m.ProducerName, imp.numInlined)
	return g, nil
}

// importer holds the state of one call to Import.
type importer struct {
	versions   map[string]int
	functions  map[string]*FunctionProto
	inlining   map[*FunctionProto]bool
	numInlined int
}

func functionKey(domain, name string) string {
	return opset.NormalizeDomain(domain) + "\x00" + name
}

// scope maps names to values. Subgraphs see the values of their enclosing graphs.
type scope struct {
	vars   map[string]*graph.Var
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]*graph.Var), parent: parent}
}

func (s *scope) lookup(name string) (*graph.Var, bool) {
	for ; s != nil; s = s.parent {
		if v, found := s.vars[name]; found {
			return v, true
		}
	}
	return nil, false
}

// graph imports gp into b. For subgraphs, outer is the scope of the enclosing graph.
func (imp *importer) graph(b *graph.Builder, gp *GraphProto, outer *scope) (*graph.Graph, error) {
	const op = "Import"
	sc := newScope(outer)
	initializers := make(map[string]*TensorProto, len(gp.Initializer))
	for _, tp := range gp.Initializer {
		initializers[tp.Name] = tp
	}
	isInput := make(map[string]bool, len(gp.Input))
	for _, vi := range gp.Input {
		isInput[vi.Name] = true
	}

	// Declarations are interleaved so that both the inputs and the initializers keep their order.
	next := 0
	declareInitializers := func(until string) error {
		for ; next < len(gp.Initializer); next++ {
			tp := gp.Initializer[next]
			if tp.Name == until {
				next++
				return nil
			}
			if isInput[tp.Name] {
				continue
			}
			value, err := importTensor(tp)
			if err != nil {
				return errs.At(err, op, tp.Name)
			}
			v, err := b.Initializer(tp.Name, value)
			if err != nil {
				return err
			}
			sc.vars[tp.Name] = v
		}
		return nil
	}
	var arguments []*graph.Var
	for _, vi := range gp.Input {
		var v *graph.Var
		var err error
		if tp, found := initializers[vi.Name]; found {
			if err = declareInitializers(vi.Name); err != nil {
				return nil, err
			}
			var value *tensors.Tensor
			value, err = importTensor(tp)
			if err != nil {
				return nil, errs.At(err, op, vi.Name)
			}
			v, err = b.InputWithDefault(vi.Name, value)
		} else {
			var shape shapes.Shape
			shape, err = importType(vi)
			if err != nil {
				return nil, errs.At(err, op, vi.Name)
			}
			v, err = b.DeclareInput(vi.Name, shape)
		}
		if err != nil {
			return nil, err
		}
		sc.vars[vi.Name] = v
		arguments = append(arguments, v)
	}
	if err := declareInitializers(""); err != nil {
		return nil, err
	}

	for ii, np := range gp.Node {
		if err := imp.node(b, np, ii, sc, imp.versions); err != nil {
			return nil, err
		}
	}

	outputs := make([]graph.Output, len(gp.Output))
	for ii, vi := range gp.Output {
		v, found := sc.lookup(vi.Name)
		if !found {
			return nil, errs.At(errs.Newf(errs.GraphIntegrityError, "graph output %q is not computed", vi.Name),
				op, vi.Name)
		}
		outputs[ii] = graph.Output{Name: vi.Name, Var: v}
	}
	return b.BuildWithArguments(arguments, outputs...)
}

// node adds the node to b, at the versions of the domains given, and defines its outputs in sc.
func (imp *importer) node(b *graph.Builder, np *NodeProto, ii int, sc *scope, versions map[string]int) error {
	subject := np.Name
	if subject == "" {
		subject = fmt.Sprintf("node #%d", ii)
	}
	inputs := make([]*graph.Var, len(np.Input))
	for jj, name := range np.Input {
		if name == "" {
			continue
		}
		v, found := sc.lookup(name)
		if !found {
			return errs.At(errs.Newf(errs.GraphIntegrityError,
				"input #%d %q is not available", jj, name), np.OpType, subject)
		}
		inputs[jj] = v
	}

	var outputs []*graph.Var
	var err error
	if fp, found := imp.functions[functionKey(np.Domain, np.OpType)]; found {
		outputs, err = imp.inline(b, fp, inputs, len(np.Output))
		if err != nil {
			return errs.At(err, np.OpType, subject)
		}
	} else {
		domain := opset.NormalizeDomain(np.Domain)
		version, found := versions[domain]
		if !found {
			return errs.At(errs.Newf(errs.GraphIntegrityError, "domain %q is not imported",
				opset.DomainName(domain)), np.OpType, subject)
		}
		attrs := make(attributes.Map, len(np.Attribute))
		for _, ap := range np.Attribute {
			var value attributes.Value
			if ap.Type == AttributeGraph && ap.G != nil {
				value, err = imp.subgraph(b, ap.G, sc)
			} else {
				value, err = importAttribute(ap)
			}
			if err != nil {
				return errs.At(err, np.OpType, subject)
			}
			attrs[ap.Name] = value
		}
		outputs, err = b.AddNode(np.OpType, domain, version, inputs, attrs, len(np.Output))
		if err != nil {
			return errs.At(err, "", subject)
		}
	}

	for jj, name := range np.Output {
		if name == "" {
			continue
		}
		if _, found := sc.vars[name]; found {
			return errs.At(errs.Newf(errs.GraphIntegrityError, "output %q is already defined", name),
				np.OpType, subject)
		}
		sc.vars[name] = outputs[jj]
	}
	return nil
}

// subgraph imports a graph attribute as a subgraph of b, with access to the values of sc.
func (imp *importer) subgraph(b *graph.Builder, gp *GraphProto, sc *scope) (attributes.Value, error) {
	var options []graph.Option
	if gp.Name != "" {
		options = append(options, graph.WithName(gp.Name))
	}
	options = append(options, graph.WithDocString(gp.DocString), graph.WithDeduplication(false))
	g, err := imp.graph(b.Subgraph(options...), gp, sc)
	if err != nil {
		return attributes.Value{}, errs.At(err, "", "subgraph "+gp.Name)
	}
	return attributes.GraphValue(g), nil
}

// inline adds the nodes of the local function to b, with the inputs bound to the given values, and returns its
// first numOutputs outputs. The nodes of the function only see its inputs, and use the versions of the domains
// it imports.
func (imp *importer) inline(b *graph.Builder, fp *FunctionProto, inputs []*graph.Var, numOutputs int) (
	[]*graph.Var, error) {
	if imp.inlining[fp] {
		return nil, errs.Newf(errs.GraphIntegrityError, "function %q is recursive", fp.Name)
	}
	imp.inlining[fp] = true
	defer delete(imp.inlining, fp)
	if len(inputs) > len(fp.Input) || numOutputs > len(fp.Output) {
		return nil, errs.Newf(errs.GraphIntegrityError,
			"function %q called with %d inputs and %d outputs, it has %d inputs and %d outputs",
			fp.Name, len(inputs), numOutputs, len(fp.Input), len(fp.Output))
	}
	versions := make(map[string]int, len(fp.OpsetImport))
	for _, imported := range fp.OpsetImport {
		versions[opset.NormalizeDomain(imported.Domain)] = int(imported.Version)
	}
	local := newScope(nil)
	for ii, input := range inputs {
		if input != nil {
			local.vars[fp.Input[ii]] = input
		}
	}
	for ii, np := range fp.Node {
		if err := imp.node(b, np, ii, local, versions); err != nil {
			return nil, errs.At(err, "", "function "+fp.Name)
		}
	}
	outputs := make([]*graph.Var, numOutputs)
	for ii := range outputs {
		v, found := local.lookup(fp.Output[ii])
		if !found {
			return nil, errs.Newf(errs.GraphIntegrityError, "output %q of function %q is not computed",
				fp.Output[ii], fp.Name)
		}
		outputs[ii] = v
	}
	imp.numInlined++
	return outputs, nil
}

// ReadFile reads and imports the model in the given file path.
func ReadFile(path string, table *opset.Table) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model from %q", path)
	}
	m, err := Unmarshal(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse model in %q", path)
	}
	return Import(m, table)
}

// Shape converts the type of the value to a Shape. Only tensor types are supported.
func (vi *ValueInfoProto) Shape() (shapes.Shape, error) { return importType(vi) }

// Tensor decodes the values of the TensorProto.
func (tp *TensorProto) Tensor() (*tensors.Tensor, error) { return importTensor(tp) }

func importType(vi *ValueInfoProto) (shapes.Shape, error) {
	if vi.Type == nil || vi.Type.TensorType == nil {
		return shapes.Invalid(), errs.Newf(errs.GraphIntegrityError, "value %q is not a tensor", vi.Name)
	}
	tt := vi.Type.TensorType
	dtype := dtypes.DType(tt.ElemType)
	if !dtype.IsValid() {
		return shapes.Invalid(), errs.Newf(errs.GraphIntegrityError, "value %q has invalid element type %d",
			vi.Name, tt.ElemType)
	}
	if tt.Shape == nil {
		return shapes.MakeUnknownRank(dtype), nil
	}
	dims := make([]any, len(tt.Shape.Dim))
	for ii, dim := range tt.Shape.Dim {
		switch {
		case dim.HasValue && dim.DimValue >= 0:
			dims[ii] = int(dim.DimValue)
		case dim.DimParam != "":
			dims[ii] = dim.DimParam
		default:
			dims[ii] = shapes.DimUnknown
		}
	}
	return shapes.MakeSymbolic(dtype, dims...), nil
}

// importTensor converts a TensorProto, with its values in any of the data fields, to a Tensor.
func importTensor(tp *TensorProto) (*tensors.Tensor, error) {
	dtype := dtypes.DType(tp.DataType)
	if !dtype.IsValid() {
		return nil, errs.Newf(errs.GraphIntegrityError, "tensor %q has invalid data type %d", tp.Name, tp.DataType)
	}
	dims := make([]int, len(tp.Dims))
	size := 1
	for ii, dim := range tp.Dims {
		if dim < 0 {
			return nil, errs.Newf(errs.GraphIntegrityError, "tensor %q has invalid dimensions %v", tp.Name, tp.Dims)
		}
		// The size in bytes must fit in an int.
		if dim > 0 && int64(size) > math.MaxInt/int64(max(dtype.Size(), 1))/dim {
			return nil, errs.Newf(errs.GraphIntegrityError, "tensor %q dimensions %v are too large", tp.Name, tp.Dims)
		}
		dims[ii] = int(dim)
		size *= int(dim)
	}

	var t *tensors.Tensor
	var err error
	if dtype == dtypes.String {
		strs := make([]string, len(tp.StringData))
		for ii, s := range tp.StringData {
			strs[ii] = string(s)
		}
		t, err = tensors.FromFlat(dtype, dims, strs)
	} else {
		raw := tp.RawData
		if raw == nil {
			raw = typedData(tp, dtype, size)
		}
		t, err = tensors.FromRaw(dtype, dims, raw)
	}
	if err != nil {
		return nil, errs.Wrapf(errs.GraphIntegrityError, err, "tensor %q", tp.Name)
	}
	return t, nil
}

// typedData re-encodes the values of the typed data fields as raw little-endian data.
//
// Types narrower than 32 bits are stored in Int32Data, 16-bit floats as their bits. Unsigned 32 and 64 bits types
// are stored in Uint64Data and complex numbers as pairs of floats.
func typedData(tp *TensorProto, dtype dtypes.DType, size int) []byte {
	elemSize := dtype.Size()
	raw := make([]byte, 0, size*elemSize)
	appendInt := func(v uint64) {
		switch elemSize {
		case 1:
			raw = append(raw, byte(v))
		case 2:
			raw = binary.LittleEndian.AppendUint16(raw, uint16(v))
		case 4:
			raw = binary.LittleEndian.AppendUint32(raw, uint32(v))
		default:
			raw = binary.LittleEndian.AppendUint64(raw, v)
		}
	}
	switch dtype {
	case dtypes.Float32, dtypes.Complex64:
		for _, f := range tp.FloatData {
			raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(f))
		}
	case dtypes.Float64, dtypes.Complex128:
		for _, f := range tp.DoubleData {
			raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(f))
		}
	case dtypes.Int64:
		for _, v := range tp.Int64Data {
			appendInt(uint64(v))
		}
	case dtypes.Uint32, dtypes.Uint64:
		for _, v := range tp.Uint64Data {
			appendInt(v)
		}
	default:
		for _, v := range tp.Int32Data {
			appendInt(uint64(v))
		}
	}
	return raw
}

func importAttribute(ap *AttributeProto) (attributes.Value, error) {
	switch ap.Type {
	case AttributeFloat:
		return attributes.FloatValue(ap.F), nil
	case AttributeInt:
		return attributes.IntValue(ap.I), nil
	case AttributeString:
		return attributes.StringValue(string(ap.S)), nil
	case AttributeTensor:
		if ap.T == nil {
			break
		}
		t, err := importTensor(ap.T)
		if err != nil {
			return attributes.Value{}, err
		}
		return attributes.TensorValue(t), nil
	case AttributeFloats:
		return attributes.FloatsValue(ap.Floats...), nil
	case AttributeInts:
		return attributes.IntsValue(ap.Ints...), nil
	case AttributeStrings:
		strs := make([]string, len(ap.Strings))
		for ii, s := range ap.Strings {
			strs[ii] = string(s)
		}
		return attributes.StringsValue(strs...), nil
	case AttributeTensors:
		list := make([]*tensors.Tensor, len(ap.Tensors))
		for ii, tp := range ap.Tensors {
			t, err := importTensor(tp)
			if err != nil {
				return attributes.Value{}, err
			}
			list[ii] = t
		}
		return attributes.TensorsValue(list...), nil
	}
	return attributes.Value{}, errs.Newf(errs.GraphIntegrityError, "attribute %q has unsupported type %d",
		ap.Name, ap.Type)
}
