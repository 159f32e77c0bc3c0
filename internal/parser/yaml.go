// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML parses and dumps YAML documents.
type YAML struct{}

// NewYAML constructs a [YAML] parser.
func NewYAML() *YAML {
	return &YAML{}
}

// Load reads the YAML document at path. An empty document yields nil.
func (y *YAML) Load(path string) (any, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}

	var v any
	if err = yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	return Normalize(v), nil
}

// Dump writes v to path as a YAML document.
func (y *YAML) Dump(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDump, path, err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDump, path, err)
	}

	return nil
}

func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
