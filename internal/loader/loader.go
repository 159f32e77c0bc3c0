// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/parser"
	"github.com/MKhiriev/go-conf-keeper/internal/tree"
)

// Loader feeds configuration sources into a [Tree].
type Loader struct {
	tree        Tree
	environment string
	cache       Cache
	cacheScope  string
	parsers     map[string]Parser
	logger      *logger.Logger
}

// New constructs a [Loader] writing into t. environment is the default
// environment of [Loader.LoadFromDirectory]. YAML parsers are registered for
// ".yml" and ".yaml"; opts may add or replace parsers.
func New(t Tree, environment string, opts ...Option) *Loader {
	yaml := parser.NewYAML()
	l := &Loader{
		tree:        t,
		environment: environment,
		cacheScope:  DefaultCacheScope,
		parsers: map[string]Parser{
			".yml":  yaml,
			".yaml": yaml,
		},
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Environment returns the default environment of the loader.
func (l *Loader) Environment() string {
	return l.environment
}

// SetCache replaces the cache capability. A nil cache disables caching.
func (l *Loader) SetCache(c Cache) {
	l.cache = c
}

// Load reads file and adds its content to the tree under namespace.
//
// With [WithEnvironment] the environment merge is applied to the parsed
// value. When a cache is configured, the post-merge value is looked up
// before parsing and stored after parsing. p may be nil, in which case the
// parser registered for the file extension is used.
//
// Load returns [ErrSourceNotFound] when the file does not exist and
// propagates parser and tree errors unchanged.
func (l *Loader) Load(ctx context.Context, file, namespace string, p Parser, opts ...LoadOption) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := l.logger.With().
		Str("file", file).
		Str("namespace", namespace).
		Str("environment", o.environment).
		Logger()

	key := CacheKey(l.cacheScope, o.environment, file)

	config, hit := l.fromCache(ctx, key)
	if !hit {
		var err error
		config, err = l.parse(file, p, o)
		if err != nil {
			log.Err(err).Str("func", "*Loader.Load").Msg("error reading configuration source")
			return err
		}

		l.toCache(ctx, key, config)
	}

	if err := l.tree.Add(namespace, config, tree.FromFile(file)); err != nil {
		log.Err(err).Str("func", "*Loader.Load").Msg("error adding configuration to tree")
		return fmt.Errorf("add %s to %q: %w", file, namespace, err)
	}

	log.Debug().Bool("cache_hit", hit).Msg("configuration loaded")

	return nil
}

func (l *Loader) parse(file string, p Parser, o loadOptions) (any, error) {
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, file)
		}
		return nil, fmt.Errorf("stat %s: %w", file, err)
	}

	if p == nil {
		var ok bool
		if p, ok = l.parsers[normalizeExt(filepath.Ext(file))]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoParser, file)
		}
	}

	raw, err := p.Load(file)
	if err != nil {
		return nil, err
	}

	if !o.hasEnvironment {
		return raw, nil
	}

	return MergeEnvironment(raw, o.environment)
}

// fromCache reports a hit only for a non-empty cached value.
func (l *Loader) fromCache(ctx context.Context, key string) (any, bool) {
	if l.cache == nil {
		return nil, false
	}

	v, ok, err := l.cache.Get(ctx, key)
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "*Loader.fromCache").Str("key", key).Msg("cache lookup failed, parsing source")
		return nil, false
	}
	if !ok || isEmpty(v) {
		return nil, false
	}

	return v, true
}

func (l *Loader) toCache(ctx context.Context, key string, v any) {
	if l.cache == nil {
		return
	}

	if err := l.cache.Set(ctx, key, v); err != nil {
		l.logger.Warn().Err(err).Str("func", "*Loader.toCache").Str("key", key).Msg("cache store failed")
	}
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case string:
		return val == ""
	default:
		return false
	}
}
