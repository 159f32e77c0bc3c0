// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the loader's cache capability on top of the
// remote cache service exposed by cmd/cacheserver.
//
// [HTTPCache] talks REST through the resty based utils.HTTPClient. HTTP
// status codes are mapped to the sentinel errors of errors.go by
// mapHTTPError, so callers can use [errors.Is] regardless of the transport
// (e.g. [ErrBadRequest] for 400, [ErrServiceUnavailable] for 503). A 404 on
// lookup is a cache miss, not an error.
package adapter
