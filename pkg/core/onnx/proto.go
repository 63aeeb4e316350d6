// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package onnx

// The structs below mirror the messages of the ONNX protobuf schema (onnx.proto) used to describe models. Only
// the fields needed to describe models made of plain tensors, their subgraphs and local functions are kept: unknown
// fields are skipped when parsing.

// ModelProto is the top-level ONNX message.
type ModelProto struct {
	IRVersion       int64
	OpsetImport     []*OperatorSetIdProto
	ProducerName    string
	ProducerVersion string
	Domain          string
	ModelVersion    int64
	DocString       string
	Graph           *GraphProto
	MetadataProps   []*StringStringEntryProto
	Functions       []*FunctionProto
}

// FunctionProto is a local function: the definition of an operator as a graph of other operators.
// Its nodes refer to the inputs and outputs by name, like the nodes of a graph.
type FunctionProto struct {
	Name        string
	Input       []string
	Output      []string
	Attribute   []string
	Node        []*NodeProto
	DocString   string
	OpsetImport []*OperatorSetIdProto
	Domain      string
}

// OperatorSetIdProto is an entry of ModelProto.OpsetImport.
type OperatorSetIdProto struct {
	Domain  string
	Version int64
}

// StringStringEntryProto is a key/value metadata entry.
type StringStringEntryProto struct {
	Key, Value string
}

// GraphProto is the computation graph of a model.
type GraphProto struct {
	Node        []*NodeProto
	Name        string
	Initializer []*TensorProto
	DocString   string
	Input       []*ValueInfoProto
	Output      []*ValueInfoProto
	ValueInfo   []*ValueInfoProto
}

// NodeProto is one operator invocation. Empty strings in Input mark omitted optional inputs.
type NodeProto struct {
	Input     []string
	Output    []string
	Name      string
	OpType    string
	Domain    string
	Attribute []*AttributeProto
	DocString string
}

// AttributeType enumerates the kinds of attribute values. The values match attributes.Kind.
type AttributeType int32

const (
	AttributeUndefined AttributeType = 0
	AttributeFloat     AttributeType = 1
	AttributeInt       AttributeType = 2
	AttributeString    AttributeType = 3
	AttributeTensor    AttributeType = 4
	AttributeGraph     AttributeType = 5
	AttributeFloats    AttributeType = 6
	AttributeInts      AttributeType = 7
	AttributeStrings   AttributeType = 8
	AttributeTensors   AttributeType = 9
)

// AttributeProto is a named attribute of a node. Only the field selected by Type is meaningful.
type AttributeProto struct {
	Name      string
	DocString string
	Type      AttributeType
	F         float32
	I         int64
	S         []byte
	T         *TensorProto
	G         *GraphProto
	Floats    []float32
	Ints      []int64
	Strings   [][]byte
	Tensors   []*TensorProto
}

// TensorProto is a literal tensor. Values are either in RawData (little-endian), in StringData for string
// tensors, or in one of the typed data fields.
type TensorProto struct {
	Dims       []int64
	DataType   int32
	Name       string
	DocString  string
	RawData    []byte
	FloatData  []float32
	Int32Data  []int32
	StringData [][]byte
	Int64Data  []int64
	DoubleData []float64
	Uint64Data []uint64
}

// ValueInfoProto describes the type of named value.
type ValueInfoProto struct {
	Name      string
	Type      *TypeProto
	DocString string
}

// TypeProto is the type of a value. Only tensor types are supported.
type TypeProto struct {
	TensorType *TypeProtoTensor
	Denotation string
}

// TypeProtoTensor is a tensor type: element type and an optional shape. A nil Shape means unknown rank.
type TypeProtoTensor struct {
	ElemType int32
	Shape    *TensorShapeProto
}

// TensorShapeProto is the shape of a tensor type.
type TensorShapeProto struct {
	Dim []*TensorShapeProtoDimension
}

// TensorShapeProtoDimension is one dimension of a tensor shape: either a value, a symbolic parameter, or
// neither (unknown).
type TensorShapeProtoDimension struct {
	// DimValue is valid if HasValue is set.
	DimValue   int64
	HasValue   bool
	DimParam   string
	Denotation string
}

// Field numbers of the ONNX schema.
const (
	modelIRVersion       = 1
	modelProducerName    = 2
	modelProducerVersion = 3
	modelDomain          = 4
	modelModelVersion    = 5
	modelDocString       = 6
	modelGraph           = 7
	modelOpsetImport     = 8
	modelMetadataProps   = 14
	modelFunctions       = 25

	functionName        = 1
	functionInput       = 4
	functionOutput      = 5
	functionAttribute   = 6
	functionNode        = 7
	functionDocString   = 8
	functionOpsetImport = 9
	functionDomain      = 10

	opsetDomain  = 1
	opsetVersion = 2

	entryKey   = 1
	entryValue = 2

	graphNode        = 1
	graphName        = 2
	graphInitializer = 5
	graphDocString   = 10
	graphInput       = 11
	graphOutput      = 12
	graphValueInfo   = 13

	nodeInput     = 1
	nodeOutput    = 2
	nodeName      = 3
	nodeOpType    = 4
	nodeAttribute = 5
	nodeDocString = 6
	nodeDomain    = 7

	attrName      = 1
	attrF         = 2
	attrI         = 3
	attrS         = 4
	attrT         = 5
	attrG         = 6
	attrFloats    = 7
	attrInts      = 8
	attrStrings   = 9
	attrTensors   = 10
	attrDocString = 13
	attrType      = 20

	tensorDims       = 1
	tensorDataType   = 2
	tensorFloatData  = 4
	tensorInt32Data  = 5
	tensorStringData = 6
	tensorInt64Data  = 7
	tensorName       = 8
	tensorRawData    = 9
	tensorDoubleData = 10
	tensorUint64Data = 11
	tensorDocString  = 12

	valueInfoName      = 1
	valueInfoType      = 2
	valueInfoDocString = 3

	typeTensorType = 1
	typeDenotation = 6

	tensorTypeElemType = 1
	tensorTypeShape    = 2

	shapeDim = 1

	dimValue      = 1
	dimParam      = 2
	dimDenotation = 3
)
