// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"os"
	"strings"
)

// DefaultConstantPrefix is the prefix of constant names recognised in
// string values when no other prefix is configured.
const DefaultConstantPrefix = "CONF_"

// Option configures a [Tree] at construction time.
type Option func(*Tree)

// WithConstants registers named constants available to value substitution.
// Later calls add to (and override) earlier registrations.
func WithConstants(constants map[string]string) Option {
	return func(t *Tree) {
		for name, value := range constants {
			t.substituter.constants[name] = value
		}
	}
}

// WithConstantPrefix changes the prefix that identifies constant names
// inside string values (default [DefaultConstantPrefix]).
func WithConstantPrefix(prefix string) Option {
	return func(t *Tree) {
		t.substituter.setPrefix(prefix)
	}
}

// WithNumericCoercion enables the compatibility shim that converts a string
// to an integer when it becomes numeric after constant substitution.
func WithNumericCoercion() Option {
	return func(t *Tree) {
		t.substituter.coerceNumbers = true
	}
}

// WithPathCanonicalization enables the compatibility shim that replaces any
// string containing ".." with its canonical absolute path. Paths that do not
// exist become nil.
func WithPathCanonicalization() Option {
	return func(t *Tree) {
		t.substituter.canonicalizePaths = true
	}
}

// AddOption configures a single [Tree.Add] call.
type AddOption func(*addOptions)

type addOptions struct {
	overwrite bool
	file      string
}

// Overwrite discards the node currently stored at the target path instead of
// merging the new mapping into it.
func Overwrite() AddOption {
	return func(o *addOptions) {
		o.overwrite = true
	}
}

// FromFile sets the source file the data was read from. Its directory
// replaces the __DIR__ token.
func FromFile(path string) AddOption {
	return func(o *addOptions) {
		o.file = path
	}
}

// ConstantsFromEnviron collects every environment variable whose name starts
// with prefix into a constant table suitable for [WithConstants].
func ConstantsFromEnviron(prefix string) map[string]string {
	constants := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		constants[name] = value
	}

	return constants
}
