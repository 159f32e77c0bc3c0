// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the cache handlers. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyKey is returned when the {key} path segment is blank.
	ErrEmptyKey = errors.New("empty cache key")

	// ErrInvalidBody is returned when a PUT body is not a JSON object with a
	// "value" member.
	ErrInvalidBody = errors.New("invalid cache entry body")

	// ErrEntryNotFound is reported for a GET on a key the cache does not hold.
	ErrEntryNotFound = errors.New("cache entry not found")
)
