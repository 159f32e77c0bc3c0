// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Normalize converts decoder output into the tree value model: mappings
// become map[string]any (non-string keys are formatted with fmt). A
// json.Number written with a fraction or an exponent becomes float64, any
// other number becomes int when it fits.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = Normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = Normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = Normalize(child)
		}
		return out
	case json.Number:
		if !strings.ContainsAny(val.String(), ".eE") {
			if n, err := val.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
				return int(n)
			}
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

// PreserveFloats returns a copy of v in which every finite float is a
// json.Number that always carries a fraction or an exponent, so that
// float64(2) is encoded as 2.0 and decodes back as a float through
// [Normalize]. Encode values with it before writing them as JSON.
func PreserveFloats(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = PreserveFloats(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = PreserveFloats(child)
		}
		return out
	case float32:
		return floatNumber(float64(val), 32)
	case float64:
		return floatNumber(val, 64)
	default:
		return v
	}
}

func floatNumber(f float64, bitSize int) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	text := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return json.Number(text)
}

// DecodeJSON decodes a single JSON value from r and normalises it.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return Normalize(v), nil
}

// DecodeJSONBytes is [DecodeJSON] over a byte slice.
func DecodeJSONBytes(data []byte) (any, error) {
	return DecodeJSON(bytes.NewReader(data))
}
