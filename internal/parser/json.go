// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSON parses and dumps JSON documents.
type JSON struct{}

// NewJSON constructs a [JSON] parser.
func NewJSON() *JSON {
	return &JSON{}
}

// Load reads the JSON document at path.
func (j *JSON) Load(path string) (any, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}

	v, err := DecodeJSONBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	return v, nil
}

// Dump writes v to path as indented JSON.
func (j *JSON) Dump(path string, v any) error {
	data, err := json.MarshalIndent(PreserveFloats(v), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDump, path, err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDump, path, err)
	}

	return nil
}
