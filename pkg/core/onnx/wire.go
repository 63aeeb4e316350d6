// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"math"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"k8s.io/klog/v2"
)

// Marshal encodes the model in the protobuf wire format.
func Marshal(m *ModelProto) ([]byte, error) {
	if m == nil {
		return nil, errors.New("onnx.Marshal: nil model")
	}
	var e encoder
	e.int64(modelIRVersion, m.IRVersion)
	e.str(modelProducerName, m.ProducerName)
	e.str(modelProducerVersion, m.ProducerVersion)
	e.str(modelDomain, m.Domain)
	e.int64(modelModelVersion, m.ModelVersion)
	e.str(modelDocString, m.DocString)
	if m.Graph != nil {
		e.message(modelGraph, func(e *encoder) { e.graph(m.Graph) })
	}
	for _, opset := range m.OpsetImport {
		e.message(modelOpsetImport, func(e *encoder) { e.opset(opset) })
	}
	for _, entry := range m.MetadataProps {
		e.message(modelMetadataProps, func(e *encoder) {
			e.str(entryKey, entry.Key)
			e.str(entryValue, entry.Value)
		})
	}
	for _, fn := range m.Functions {
		e.message(modelFunctions, func(e *encoder) { e.function(fn) })
	}
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) int64(num protowire.Number, v int64) {
	if v == 0 {
		return
	}
	e.forceInt64(num, v)
}

func (e *encoder) forceInt64(num protowire.Number, v int64) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(v))
}

func (e *encoder) float32(num protowire.Number, v float32) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.Fixed32Type)
	e.buf = protowire.AppendFixed32(e.buf, math.Float32bits(v))
}

func (e *encoder) str(num protowire.Number, s string) {
	if s == "" {
		return
	}
	e.bytes(num, []byte(s))
}

func (e *encoder) bytes(num protowire.Number, b []byte) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, b)
}

// message encodes a nested message, written by fn.
func (e *encoder) message(num protowire.Number, fn func(e *encoder)) {
	var sub encoder
	fn(&sub)
	e.bytes(num, sub.buf)
}

// packed encodes a packed repeated scalar field, written by fn.
func (e *encoder) packed(num protowire.Number, n int, fn func(buf []byte) []byte) {
	if n == 0 {
		return
	}
	e.bytes(num, fn(nil))
}

func (e *encoder) opset(opset *OperatorSetIdProto) {
	e.str(opsetDomain, opset.Domain)
	e.int64(opsetVersion, opset.Version)
}

func (e *encoder) function(fn *FunctionProto) {
	e.str(functionName, fn.Name)
	for _, input := range fn.Input {
		e.bytes(functionInput, []byte(input))
	}
	for _, output := range fn.Output {
		e.bytes(functionOutput, []byte(output))
	}
	for _, attr := range fn.Attribute {
		e.bytes(functionAttribute, []byte(attr))
	}
	for _, node := range fn.Node {
		e.message(functionNode, func(e *encoder) { e.node(node) })
	}
	e.str(functionDocString, fn.DocString)
	for _, opset := range fn.OpsetImport {
		e.message(functionOpsetImport, func(e *encoder) { e.opset(opset) })
	}
	e.str(functionDomain, fn.Domain)
}

func (e *encoder) graph(g *GraphProto) {
	for _, node := range g.Node {
		e.message(graphNode, func(e *encoder) { e.node(node) })
	}
	e.str(graphName, g.Name)
	for _, t := range g.Initializer {
		e.message(graphInitializer, func(e *encoder) { e.tensor(t) })
	}
	e.str(graphDocString, g.DocString)
	for _, list := range []struct {
		num    protowire.Number
		values []*ValueInfoProto
	}{{graphInput, g.Input}, {graphOutput, g.Output}, {graphValueInfo, g.ValueInfo}} {
		for _, vi := range list.values {
			e.message(list.num, func(e *encoder) { e.valueInfo(vi) })
		}
	}
}

func (e *encoder) node(n *NodeProto) {
	for _, input := range n.Input {
		e.bytes(nodeInput, []byte(input))
	}
	for _, output := range n.Output {
		e.bytes(nodeOutput, []byte(output))
	}
	e.str(nodeName, n.Name)
	e.str(nodeOpType, n.OpType)
	for _, attr := range n.Attribute {
		e.message(nodeAttribute, func(e *encoder) { e.attribute(attr) })
	}
	e.str(nodeDocString, n.DocString)
	e.str(nodeDomain, n.Domain)
}

func (e *encoder) attribute(a *AttributeProto) {
	e.str(attrName, a.Name)
	switch a.Type {
	case AttributeFloat:
		e.float32(attrF, a.F)
	case AttributeInt:
		e.forceInt64(attrI, a.I)
	case AttributeString:
		e.bytes(attrS, a.S)
	case AttributeTensor:
		if a.T != nil {
			e.message(attrT, func(e *encoder) { e.tensor(a.T) })
		}
	case AttributeGraph:
		if a.G != nil {
			e.message(attrG, func(e *encoder) { e.graph(a.G) })
		}
	case AttributeFloats:
		for _, f := range a.Floats {
			e.float32(attrFloats, f)
		}
	case AttributeInts:
		for _, i := range a.Ints {
			e.forceInt64(attrInts, i)
		}
	case AttributeStrings:
		for _, s := range a.Strings {
			e.bytes(attrStrings, s)
		}
	case AttributeTensors:
		for _, t := range a.Tensors {
			e.message(attrTensors, func(e *encoder) { e.tensor(t) })
		}
	}
	e.str(attrDocString, a.DocString)
	e.int64(attrType, int64(a.Type))
}

func (e *encoder) tensor(t *TensorProto) {
	for _, dim := range t.Dims {
		e.forceInt64(tensorDims, dim)
	}
	e.int64(tensorDataType, int64(t.DataType))
	e.packed(tensorFloatData, len(t.FloatData), func(buf []byte) []byte {
		for _, f := range t.FloatData {
			buf = protowire.AppendFixed32(buf, math.Float32bits(f))
		}
		return buf
	})
	e.packed(tensorInt32Data, len(t.Int32Data), func(buf []byte) []byte {
		for _, v := range t.Int32Data {
			buf = protowire.AppendVarint(buf, uint64(int64(v)))
		}
		return buf
	})
	for _, s := range t.StringData {
		e.bytes(tensorStringData, s)
	}
	e.packed(tensorInt64Data, len(t.Int64Data), func(buf []byte) []byte {
		for _, v := range t.Int64Data {
			buf = protowire.AppendVarint(buf, uint64(v))
		}
		return buf
	})
	e.str(tensorName, t.Name)
	if t.RawData != nil {
		e.bytes(tensorRawData, t.RawData)
	}
	e.packed(tensorDoubleData, len(t.DoubleData), func(buf []byte) []byte {
		for _, f := range t.DoubleData {
			buf = protowire.AppendFixed64(buf, math.Float64bits(f))
		}
		return buf
	})
	e.packed(tensorUint64Data, len(t.Uint64Data), func(buf []byte) []byte {
		for _, v := range t.Uint64Data {
			buf = protowire.AppendVarint(buf, v)
		}
		return buf
	})
	e.str(tensorDocString, t.DocString)
}

func (e *encoder) valueInfo(vi *ValueInfoProto) {
	e.str(valueInfoName, vi.Name)
	if vi.Type != nil {
		e.message(valueInfoType, func(e *encoder) {
			if tt := vi.Type.TensorType; tt != nil {
				e.message(typeTensorType, func(e *encoder) {
					e.int64(tensorTypeElemType, int64(tt.ElemType))
					if tt.Shape != nil {
						e.message(tensorTypeShape, func(e *encoder) {
							for _, dim := range tt.Shape.Dim {
								e.message(shapeDim, func(e *encoder) {
									if dim.HasValue {
										e.forceInt64(dimValue, dim.DimValue)
									}
									e.str(dimParam, dim.DimParam)
									e.str(dimDenotation, dim.Denotation)
								})
							}
						})
					}
				})
			}
			e.str(typeDenotation, vi.Type.Denotation)
		})
	}
	e.str(valueInfoDocString, vi.DocString)
}

// Unmarshal parses a model in the protobuf wire format. Unknown fields are skipped.
func Unmarshal(data []byte) (*ModelProto, error) {
	d := &decoder{}
	m := &ModelProto{}
	err := d.fields(data, func(f field) error {
		var err error
		switch f.num {
		case modelIRVersion:
			m.IRVersion, err = f.int64()
		case modelProducerName:
			m.ProducerName, err = f.str()
		case modelProducerVersion:
			m.ProducerVersion, err = f.str()
		case modelDomain:
			m.Domain, err = f.str()
		case modelModelVersion:
			m.ModelVersion, err = f.int64()
		case modelDocString:
			m.DocString, err = f.str()
		case modelGraph:
			m.Graph = &GraphProto{}
			err = d.message(f, func(f field) error { return d.graph(m.Graph, f) })
		case modelOpsetImport:
			opset := &OperatorSetIdProto{}
			m.OpsetImport = append(m.OpsetImport, opset)
			err = d.message(f, func(f field) error { return d.opset(opset, f) })
		case modelMetadataProps:
			entry := &StringStringEntryProto{}
			m.MetadataProps = append(m.MetadataProps, entry)
			err = d.message(f, func(f field) error {
				switch f.num {
				case entryKey:
					entry.Key, err = f.str()
				case entryValue:
					entry.Value, err = f.str()
				default:
					d.skip(f)
				}
				return err
			})
		case modelFunctions:
			fn := &FunctionProto{}
			m.Functions = append(m.Functions, fn)
			err = d.message(f, func(f field) error { return d.function(fn, f) })
		default:
			d.skip(f)
		}
		return err
	})
	if err != nil {
		return nil, errors.WithMessage(err, "onnx.Unmarshal")
	}
	if d.skipped > 0 {
		klog.Warningf("onnx.Unmarshal: skipped %d unknown fields", d.skipped)
	}
	return m, nil
}

// field is one decoded field of a message. Scalars are in value, length-delimited values in data.
type field struct {
	num   protowire.Number
	typ   protowire.Type
	value uint64
	data  []byte
}

func (f field) wrongType() error {
	return errors.Errorf("field %d has unexpected wire type %d", f.num, f.typ)
}

func (f field) int64() (int64, error) {
	if f.typ != protowire.VarintType {
		return 0, f.wrongType()
	}
	return int64(f.value), nil
}

func (f field) str() (string, error) {
	if f.typ != protowire.BytesType {
		return "", f.wrongType()
	}
	return string(f.data), nil
}

func (f field) bytes() ([]byte, error) {
	if f.typ != protowire.BytesType {
		return nil, f.wrongType()
	}
	return append([]byte{}, f.data...), nil
}

func (f field) float32() (float32, error) {
	if f.typ != protowire.Fixed32Type {
		return 0, f.wrongType()
	}
	return math.Float32frombits(uint32(f.value)), nil
}

// varints returns the values of a repeated varint field, packed or not.
func (f field) varints() ([]uint64, error) {
	switch f.typ {
	case protowire.VarintType:
		return []uint64{f.value}, nil
	case protowire.BytesType:
		var values []uint64
		for data := f.data; len(data) > 0; {
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			values = append(values, v)
			data = data[n:]
		}
		return values, nil
	}
	return nil, f.wrongType()
}

// fixed returns the values of a repeated fixed32 or fixed64 field, packed or not.
func (f field) fixed(typ protowire.Type) ([]uint64, error) {
	if f.typ == typ {
		return []uint64{f.value}, nil
	}
	if f.typ != protowire.BytesType {
		return nil, f.wrongType()
	}
	var values []uint64
	for data := f.data; len(data) > 0; {
		var v uint64
		var n int
		if typ == protowire.Fixed32Type {
			var v32 uint32
			v32, n = protowire.ConsumeFixed32(data)
			v = uint64(v32)
		} else {
			v, n = protowire.ConsumeFixed64(data)
		}
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		values = append(values, v)
		data = data[n:]
	}
	return values, nil
}

type decoder struct {
	skipped int
}

func (d *decoder) skip(field) { d.skipped++ }

// fields calls fn for each field of the encoded message.
func (d *decoder) fields(data []byte, fn func(f field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.value, n = protowire.ConsumeVarint(data)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(data)
			f.value = uint64(v)
		case protowire.Fixed64Type:
			f.value, n = protowire.ConsumeFixed64(data)
		case protowire.BytesType:
			f.data, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return errors.Wrapf(protowire.ParseError(n), "field %d", num)
		}
		data = data[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// message decodes the nested message in f.
func (d *decoder) message(f field, fn func(f field) error) error {
	if f.typ != protowire.BytesType {
		return f.wrongType()
	}
	return d.fields(f.data, fn)
}

func (d *decoder) opset(opset *OperatorSetIdProto, f field) error {
	var err error
	switch f.num {
	case opsetDomain:
		opset.Domain, err = f.str()
	case opsetVersion:
		opset.Version, err = f.int64()
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) function(fn *FunctionProto, f field) error {
	var err error
	var s string
	switch f.num {
	case functionName:
		fn.Name, err = f.str()
	case functionInput:
		s, err = f.str()
		fn.Input = append(fn.Input, s)
	case functionOutput:
		s, err = f.str()
		fn.Output = append(fn.Output, s)
	case functionAttribute:
		s, err = f.str()
		fn.Attribute = append(fn.Attribute, s)
	case functionNode:
		node := &NodeProto{}
		fn.Node = append(fn.Node, node)
		err = d.message(f, func(f field) error { return d.node(node, f) })
	case functionDocString:
		fn.DocString, err = f.str()
	case functionOpsetImport:
		opset := &OperatorSetIdProto{}
		fn.OpsetImport = append(fn.OpsetImport, opset)
		err = d.message(f, func(f field) error { return d.opset(opset, f) })
	case functionDomain:
		fn.Domain, err = f.str()
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) graph(g *GraphProto, f field) error {
	var err error
	switch f.num {
	case graphNode:
		node := &NodeProto{}
		g.Node = append(g.Node, node)
		err = d.message(f, func(f field) error { return d.node(node, f) })
	case graphName:
		g.Name, err = f.str()
	case graphInitializer:
		t := &TensorProto{}
		g.Initializer = append(g.Initializer, t)
		err = d.message(f, func(f field) error { return d.tensor(t, f) })
	case graphDocString:
		g.DocString, err = f.str()
	case graphInput, graphOutput, graphValueInfo:
		vi := &ValueInfoProto{}
		switch f.num {
		case graphInput:
			g.Input = append(g.Input, vi)
		case graphOutput:
			g.Output = append(g.Output, vi)
		default:
			g.ValueInfo = append(g.ValueInfo, vi)
		}
		err = d.message(f, func(f field) error { return d.valueInfo(vi, f) })
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) node(n *NodeProto, f field) error {
	var err error
	var s string
	switch f.num {
	case nodeInput:
		s, err = f.str()
		n.Input = append(n.Input, s)
	case nodeOutput:
		s, err = f.str()
		n.Output = append(n.Output, s)
	case nodeName:
		n.Name, err = f.str()
	case nodeOpType:
		n.OpType, err = f.str()
	case nodeDomain:
		n.Domain, err = f.str()
	case nodeDocString:
		n.DocString, err = f.str()
	case nodeAttribute:
		attr := &AttributeProto{}
		n.Attribute = append(n.Attribute, attr)
		err = d.message(f, func(f field) error { return d.attribute(attr, f) })
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) attribute(a *AttributeProto, f field) error {
	var err error
	switch f.num {
	case attrName:
		a.Name, err = f.str()
	case attrDocString:
		a.DocString, err = f.str()
	case attrType:
		var v int64
		v, err = f.int64()
		a.Type = AttributeType(v)
	case attrF:
		a.F, err = f.float32()
	case attrI:
		a.I, err = f.int64()
	case attrS:
		a.S, err = f.bytes()
	case attrT:
		a.T = &TensorProto{}
		err = d.message(f, func(f field) error { return d.tensor(a.T, f) })
	case attrG:
		a.G = &GraphProto{}
		err = d.message(f, func(f field) error { return d.graph(a.G, f) })
	case attrFloats:
		var values []uint64
		values, err = f.fixed(protowire.Fixed32Type)
		for _, v := range values {
			a.Floats = append(a.Floats, math.Float32frombits(uint32(v)))
		}
	case attrInts:
		var values []uint64
		values, err = f.varints()
		for _, v := range values {
			a.Ints = append(a.Ints, int64(v))
		}
	case attrStrings:
		var s []byte
		s, err = f.bytes()
		a.Strings = append(a.Strings, s)
	case attrTensors:
		t := &TensorProto{}
		a.Tensors = append(a.Tensors, t)
		err = d.message(f, func(f field) error { return d.tensor(t, f) })
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) tensor(t *TensorProto, f field) error {
	var err error
	var values []uint64
	switch f.num {
	case tensorDims:
		values, err = f.varints()
		for _, v := range values {
			t.Dims = append(t.Dims, int64(v))
		}
	case tensorDataType:
		var v int64
		v, err = f.int64()
		t.DataType = int32(v)
	case tensorName:
		t.Name, err = f.str()
	case tensorDocString:
		t.DocString, err = f.str()
	case tensorRawData:
		t.RawData, err = f.bytes()
	case tensorStringData:
		var s []byte
		s, err = f.bytes()
		t.StringData = append(t.StringData, s)
	case tensorFloatData:
		values, err = f.fixed(protowire.Fixed32Type)
		for _, v := range values {
			t.FloatData = append(t.FloatData, math.Float32frombits(uint32(v)))
		}
	case tensorDoubleData:
		values, err = f.fixed(protowire.Fixed64Type)
		for _, v := range values {
			t.DoubleData = append(t.DoubleData, math.Float64frombits(v))
		}
	case tensorInt32Data:
		values, err = f.varints()
		for _, v := range values {
			t.Int32Data = append(t.Int32Data, int32(v))
		}
	case tensorInt64Data:
		values, err = f.varints()
		for _, v := range values {
			t.Int64Data = append(t.Int64Data, int64(v))
		}
	case tensorUint64Data:
		values, err = f.varints()
		t.Uint64Data = append(t.Uint64Data, values...)
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) valueInfo(vi *ValueInfoProto, f field) error {
	var err error
	switch f.num {
	case valueInfoName:
		vi.Name, err = f.str()
	case valueInfoDocString:
		vi.DocString, err = f.str()
	case valueInfoType:
		vi.Type = &TypeProto{}
		err = d.message(f, func(f field) error {
			var err error
			switch f.num {
			case typeTensorType:
				tt := &TypeProtoTensor{}
				vi.Type.TensorType = tt
				err = d.message(f, func(f field) error { return d.tensorType(tt, f) })
			case typeDenotation:
				vi.Type.Denotation, err = f.str()
			default:
				d.skip(f)
			}
			return err
		})
	default:
		d.skip(f)
	}
	return err
}

func (d *decoder) tensorType(tt *TypeProtoTensor, f field) error {
	var err error
	switch f.num {
	case tensorTypeElemType:
		var v int64
		v, err = f.int64()
		tt.ElemType = int32(v)
	case tensorTypeShape:
		tt.Shape = &TensorShapeProto{}
		err = d.message(f, func(f field) error {
			if f.num != shapeDim {
				d.skip(f)
				return nil
			}
			dim := &TensorShapeProtoDimension{}
			tt.Shape.Dim = append(tt.Shape.Dim, dim)
			return d.message(f, func(f field) error {
				var err error
				switch f.num {
				case dimValue:
					dim.DimValue, err = f.int64()
					dim.HasValue = true
				case dimParam:
					dim.DimParam, err = f.str()
				case dimDenotation:
					dim.Denotation, err = f.str()
				default:
					d.skip(f)
				}
				return err
			})
		})
	default:
		d.skip(f)
	}
	return err
}
