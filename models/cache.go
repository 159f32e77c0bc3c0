// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CacheEntry is one record of a parsed-source cache backend.
type CacheEntry struct {
	Key       string
	Payload   []byte // JSON encoding of the cached value
	UpdatedAt time.Time
}

// CacheEntryRequest is the body of PUT /api/cache/{key}.
type CacheEntryRequest struct {
	Value any `json:"value"`
}

// CacheEntryResponse is the body returned by GET /api/cache/{key}.
type CacheEntryResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// VersionResponse is the body returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
