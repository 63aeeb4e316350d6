// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package numpy reads and writes tensors in NumPy's .npy and .npz file formats, so that
// initializer values can be exchanged with NumPy-based tooling.
//
// Only little-endian data is supported. Fortran-ordered arrays are converted to row-major when read.
package numpy

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spoxml/spox/pkg/core/dtypes"
	"github.com/spoxml/spox/pkg/core/shapes"
	"github.com/spoxml/spox/pkg/core/tensors"
	"github.com/spoxml/spox/pkg/support/xslices"
)

const npyMagic = "\x93NUMPY"

// npyDescrs maps the NumPy type descriptors, without the byte order, to dtypes.
var npyDescrs = map[string]dtypes.DType{
	"b1": dtypes.Bool, "?": dtypes.Bool,
	"i1": dtypes.Int8, "u1": dtypes.Uint8,
	"i2": dtypes.Int16, "u2": dtypes.Uint16,
	"i4": dtypes.Int32, "u4": dtypes.Uint32,
	"i8": dtypes.Int64, "u8": dtypes.Uint64,
	"f2": dtypes.Float16, "f4": dtypes.Float32, "f8": dtypes.Float64,
	"c8": dtypes.Complex64, "c16": dtypes.Complex128,
}

// npyHeader is the dictionary stored in the header of a .npy file, e.g.
// "{'descr': '<f4', 'fortran_order': False, 'shape': (2, 3), }".
type npyHeader struct {
	dtype        dtypes.DType
	dims         []int
	fortranOrder bool
}

var reHeaderEntry = regexp.MustCompile(`'(descr|fortran_order|shape)'\s*:\s*('[^']*'|True|False|\([^)]*\))`)

func parseHeader(text string) (h npyHeader, err error) {
	found := make(map[string]string)
	for _, match := range reHeaderEntry.FindAllStringSubmatch(text, -1) {
		found[match[1]] = match[2]
	}
	for _, key := range []string{"descr", "fortran_order", "shape"} {
		if _, ok := found[key]; !ok {
			return h, errors.Errorf("no %q in .npy header %q", key, text)
		}
	}

	descr := strings.Trim(found["descr"], "'")
	if strings.HasPrefix(descr, ">") {
		return h, errors.Errorf("big-endian .npy data (%q) is not supported", descr)
	}
	var ok bool
	if h.dtype, ok = npyDescrs[strings.TrimLeft(descr, "<=|")]; !ok {
		return h, errors.Errorf("unsupported NumPy dtype %q", descr)
	}
	h.fortranOrder = found["fortran_order"] == "True"

	// Scalars are "()", and 1D shapes have a trailing comma, "(10,)".
	h.dims = []int{}
	for _, field := range strings.Split(strings.Trim(found["shape"], "()"), ",") {
		if field = strings.TrimSpace(field); field == "" {
			continue
		}
		dim, err := strconv.Atoi(field)
		if err != nil || dim < 0 {
			return h, errors.Errorf("invalid dimension %q in .npy header %q", field, text)
		}
		h.dims = append(h.dims, dim)
	}
	return h, nil
}

// descrOf returns the NumPy type descriptor of dtype, without the byte order.
func descrOf(dtype dtypes.DType) (string, bool) {
	for key, candidate := range npyDescrs {
		if candidate == dtype && key != "?" {
			return key, true
		}
	}
	return "", false
}

func (h npyHeader) String() string {
	descr, _ := descrOf(h.dtype)
	order := "<"
	if h.dtype.Size() == 1 {
		order = "|"
	}
	dims := xslices.Map(h.dims, strconv.Itoa)
	if len(dims) == 1 {
		dims = append(dims, "")
	}
	return fmt.Sprintf("{'descr': '%s%s', 'fortran_order': False, 'shape': (%s), }",
		order, descr, strings.Join(dims, ", "))
}

// FromNpyFile reads the tensor stored in a .npy file.
func FromNpyFile(filePath string) (*tensors.Tensor, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", filePath)
	}
	defer func() { _ = f.Close() }()
	return FromNpyReader(f)
}

// FromNpyReader reads a tensor in .npy format.
func FromNpyReader(r io.Reader) (*tensors.Tensor, error) {
	// Magic, then the major and minor version.
	preamble := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, preamble); err != nil {
		return nil, errors.Wrap(err, "failed to read .npy preamble")
	}
	if !bytes.HasPrefix(preamble, []byte(npyMagic)) {
		return nil, errors.New("not a .npy file")
	}
	lenSize := 2
	if major := preamble[len(npyMagic)]; major >= 2 {
		lenSize = 4
	} else if major != 1 {
		return nil, errors.Errorf("unsupported .npy version %d", major)
	}
	lenBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, lenBytes[:lenSize]); err != nil {
		return nil, errors.Wrap(err, "failed to read .npy header length")
	}
	headerText := make([]byte, binary.LittleEndian.Uint32(lenBytes))
	if _, err := io.ReadFull(r, headerText); err != nil {
		return nil, errors.Wrap(err, "failed to read .npy header")
	}
	h, err := parseHeader(string(headerText))
	if err != nil {
		return nil, err
	}

	shape := shapes.Make(h.dtype, h.dims...)
	data := make([]byte, shape.Size()*h.dtype.Size())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrapf(err, "failed to read %d bytes of %s data", len(data), shape)
	}
	if h.fortranOrder && shape.Rank() > 1 {
		data = fromColumnMajor(shape, data)
	}
	return tensors.FromRaw(h.dtype, h.dims, data)
}

// fromColumnMajor returns the column-major data reordered to row-major.
func fromColumnMajor(shape shapes.Shape, data []byte) []byte {
	// Column-major strides are the row-major ones of the reversed shape, reversed.
	reversed := shape.Clone()
	for ii, jj := 0, len(reversed.Dimensions)-1; ii < jj; ii, jj = ii+1, jj-1 {
		reversed.Dimensions[ii], reversed.Dimensions[jj] = reversed.Dimensions[jj], reversed.Dimensions[ii]
	}
	strides := reversed.Strides()
	size := shape.DType.Size()
	result := make([]byte, len(data))
	for flat, indices := range shape.Iter() {
		src := 0
		for axis, idx := range indices {
			src += idx * strides[len(strides)-1-axis]
		}
		copy(result[flat*size:], data[src*size:(src+1)*size])
	}
	return result
}

// ToNpyWriter writes the tensor in .npy format, version 1.0.
func ToNpyWriter(tensor *tensors.Tensor, w io.Writer) error {
	h := npyHeader{dtype: tensor.DType(), dims: tensor.Shape().Dimensions}
	if _, ok := descrOf(h.dtype); !ok {
		return errors.Errorf("dtype %s has no .npy representation", h.dtype)
	}
	data, err := tensor.Bytes()
	if err != nil {
		return err
	}

	// The data starts 16-bytes aligned: the header is padded with spaces and ends with a newline.
	header := h.String()
	prefixLen := len(npyMagic) + 4
	header += strings.Repeat(" ", 15-(prefixLen+len(header))%16) + "\n"

	var buf bytes.Buffer
	buf.Grow(prefixLen + len(header) + len(data))
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(len(header))))
	buf.WriteString(header)
	buf.Write(data)
	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "failed to write .npy data")
}

// FromNpzFile reads all the tensors of a .npz file, by name.
func FromNpzFile(filePath string) (map[string]*tensors.Tensor, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", filePath)
	}
	defer func() { _ = r.Close() }()
	return fromZip(&r.Reader)
}

// FromNpzReader reads all the tensors of a .npz archive, by name.
// Entries that are not .npy files are ignored.
func FromNpzReader(r io.ReaderAt, size int64) (map[string]*tensors.Tensor, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read .npz archive")
	}
	return fromZip(zr)
}

func fromZip(zr *zip.Reader) (map[string]*tensors.Tensor, error) {
	results := make(map[string]*tensors.Tensor)
	for _, entry := range zr.File {
		name := path.Clean(entry.Name)
		if path.IsAbs(name) || strings.HasPrefix(name, "..") {
			return nil, errors.Errorf("invalid entry %q in .npz archive", entry.Name)
		}
		name, isNpy := strings.CutSuffix(name, ".npy")
		if !isNpy {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open entry %q of .npz archive", entry.Name)
		}
		t, err := FromNpyReader(rc)
		_ = rc.Close()
		if err != nil {
			return nil, errors.WithMessagef(err, "tensor %q of .npz archive", name)
		}
		results[name] = t
	}
	return results, nil
}

// ToNpzWriter writes the tensors as a .npz archive, one entry per tensor sorted by name.
func ToNpzWriter(tensorsMap map[string]*tensors.Tensor, w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range xslices.SortedKeys(tensorsMap) {
		entry, err := zw.Create(name + ".npy")
		if err != nil {
			return errors.Wrapf(err, "failed to add %q to .npz archive", name)
		}
		if err := ToNpyWriter(tensorsMap[name], entry); err != nil {
			return errors.WithMessagef(err, "tensor %q", name)
		}
	}
	return errors.Wrap(zw.Close(), "failed to finish .npz archive")
}
