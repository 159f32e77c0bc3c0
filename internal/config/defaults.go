package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultEnvironment     = "dev"
	DefaultConstantPrefix  = "CONF_"
	DefaultSourceDir       = "config"
	DefaultNamespacePrefix = "app."
	DefaultSnapshotFile    = "config.snapshot.json"
	DefaultServerAddress   = "localhost:8081"
	DefaultRequestTimeout  = 5 * time.Second
	DefaultLogLevel        = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:    DefaultEnvironment,
			ConstantPrefix: DefaultConstantPrefix,
			LogLevel:       DefaultLogLevel,
		},
		Source: Source{
			Dir:             DefaultSourceDir,
			NamespacePrefix: DefaultNamespacePrefix,
		},
		Snapshot: Snapshot{
			Dir:  filepath.Join(os.TempDir(), "confkeeper"),
			File: DefaultSnapshotFile,
		},
		Cache: Cache{
			Driver:         CacheDriverNone,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
