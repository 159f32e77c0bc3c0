// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultNamespacePrefix is the namespace prefix conventionally used for
// directory loads.
const DefaultNamespacePrefix = "app."

// LoadFromDirectory loads every file of dir (non-recursive) that has a
// registered parser. Each file goes to namespace prefix+stem, so with the
// prefix "app." the file "db.yml" lands in "app.db".
//
// The loader's environment is applied unless opts contain
// [WithEnvironment] (another environment) or [WithoutEnvironment]. Files are
// loaded in lexical order; when two files write overlapping paths the later
// one wins through the tree merge.
func (l *Loader) LoadFromDirectory(ctx context.Context, dir, prefix string, opts ...LoadOption) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []LoadOption{WithEnvironment(l.environment)}
	switch {
	case o.noEnvironment:
		loadOpts = nil
	case o.hasEnvironment:
		loadOpts = []LoadOption{WithEnvironment(o.environment)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Err(err).Str("func", "*Loader.LoadFromDirectory").Str("dir", dir).Msg("error reading configuration directory")
		return fmt.Errorf("read configuration directory %s: %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		p, ok := l.parsers[normalizeExt(ext)]
		if !ok {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), ext)
		if err = l.Load(ctx, filepath.Join(dir, entry.Name()), prefix+stem, p, loadOpts...); err != nil {
			return err
		}
		loaded++
	}

	l.logger.Debug().Str("dir", dir).Int("files", loaded).Msg("configuration directory loaded")

	return nil
}
