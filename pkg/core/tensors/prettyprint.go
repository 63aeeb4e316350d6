// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spoxml/spox/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// DefaultMaxElements is the number of elements printed by Tensor.String before eliding the rest.
var DefaultMaxElements = 8

// Summary returns the shape of the tensor followed by its first maxElements values, in row-major
// order, e.g. "(Float32)[2 3]{1, 2, 3, ...}".
func (t *Tensor) Summary(maxElements int) string {
	var sb strings.Builder
	sb.WriteString(t.shape.String())
	values := reflect.ValueOf(t.flat)
	n := values.Len()
	if n == 0 {
		return sb.String()
	}
	sb.WriteByte('{')
	for ii := range min(n, maxElements) {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatElement(values.Index(ii).Interface()))
	}
	if n > maxElements {
		sb.WriteString(", ...")
	}
	sb.WriteByte('}')
	return sb.String()
}

// formatElement formats one tensor element.
func formatElement(e any) string {
	switch v := e.(type) {
	case float16.Float16:
		return fmt.Sprintf("%g", v.Float32())
	case bfloat16.BFloat16:
		return fmt.Sprintf("%g", v.Float32())
	case float32, float64:
		return fmt.Sprintf("%g", v)
	case complex64, complex128:
		return fmt.Sprintf("%g", v)
	case string:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(e)
}
