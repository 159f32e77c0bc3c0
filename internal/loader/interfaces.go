// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

//go:generate mockgen -source=interfaces.go -destination=../mock/loader_mock.go -package=mock -exclude_interfaces=Tree

import (
	"context"

	"github.com/MKhiriev/go-conf-keeper/internal/tree"
)

// Parser turns a source file into a structured value.
type Parser interface {
	Load(path string) (any, error)
}

// Cache stores post-merge source values between process runs.
//
// Get reports false on a miss. Implementations may be backed by memory, a
// database or a remote service; errors are treated by the loader as a miss
// (Get) or ignored (Set).
type Cache interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Tree is the destination of loaded data.
type Tree interface {
	Add(namespace string, data any, opts ...tree.AddOption) error
}
