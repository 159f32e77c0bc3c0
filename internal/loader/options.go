// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"strings"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// DefaultCacheScope is the first component of every cache key.
const DefaultCacheScope = "confkeeper.loader"

// Option configures a [Loader].
type Option func(*Loader)

// WithCache sets the cache capability consulted before parsing.
func WithCache(c Cache) Option {
	return func(l *Loader) {
		l.cache = c
	}
}

// WithParser registers p for files with the extension ext (for example
// ".json"). Registered parsers are used by [Loader.LoadFromDirectory] and by
// [Loader.Load] when it is called with a nil parser.
func WithParser(ext string, p Parser) Option {
	return func(l *Loader) {
		l.parsers[normalizeExt(ext)] = p
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.logger = log
	}
}

// WithCacheScope changes the scope component of cache keys.
func WithCacheScope(scope string) Option {
	return func(l *Loader) {
		l.cacheScope = scope
	}
}

// LoadOption configures a single load call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	environment    string
	hasEnvironment bool
	noEnvironment  bool
}

// WithEnvironment requests the environment merge for env.
func WithEnvironment(env string) LoadOption {
	return func(o *loadOptions) {
		o.environment = env
		o.hasEnvironment = true
		o.noEnvironment = false
	}
}

// WithoutEnvironment stores the parsed value as-is. It only matters for
// [Loader.LoadFromDirectory], which otherwise falls back to the loader's
// environment.
func WithoutEnvironment() LoadOption {
	return func(o *loadOptions) {
		o.environment = ""
		o.hasEnvironment = false
		o.noEnvironment = true
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
