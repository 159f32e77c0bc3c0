// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import "errors"

var (
	// ErrEmptyNamespace is returned by [Tree.Add] when the namespace path
	// contains no segments.
	ErrEmptyNamespace = errors.New("empty namespace")

	// ErrUndefinedConstant is returned when a string matches the constant
	// name pattern but no constant with that name is registered.
	ErrUndefinedConstant = errors.New("undefined constant")

	// ErrInvalidReferenceComposition is returned when a string embeds one or
	// more placeholders in literal text and at least one of them resolves to
	// a mapping or a sequence.
	ErrInvalidReferenceComposition = errors.New("invalid reference composition")
)
