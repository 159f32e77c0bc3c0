// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Environment == "" || cfg.App.ConstantPrefix == "" {
		return ErrInvalidAppConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Snapshot.Enabled && (cfg.Snapshot.Dir == "" || cfg.Snapshot.File == "") {
		return ErrInvalidSnapshotConfigs
	}

	switch cfg.Cache.Driver {
	case "", CacheDriverNone, CacheDriverMemory:
	case CacheDriverSQLite, CacheDriverPostgres:
		if cfg.Cache.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidCacheConfigs, cfg.Cache.Driver)
		}
	case CacheDriverHTTP:
		if cfg.Cache.HTTPAddress == "" {
			return fmt.Errorf("%w: http driver requires an address", ErrInvalidCacheConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidCacheConfigs, cfg.Cache.Driver)
	}

	return nil
}
