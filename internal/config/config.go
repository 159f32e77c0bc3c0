// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Cache backend drivers accepted by [Cache.Driver].
const (
	CacheDriverNone     = "none"
	CacheDriverMemory   = "memory"
	CacheDriverSQLite   = "sqlite"
	CacheDriverPostgres = "postgres"
	CacheDriverHTTP     = "http"
)

// StructuredConfig is the top-level configuration of the confkeeper binaries.
// It is populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the configuration tree itself.
	App App `envPrefix:"APP_"`

	// Source locates the configuration directory that is loaded at startup.
	Source Source `envPrefix:"SOURCE_"`

	// Snapshot controls dumping and restoring the assembled tree.
	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`

	// Cache selects the parsed-source cache used by the loader.
	Cache Cache `envPrefix:"CACHE_"`

	// Server holds the listener settings of the cache service.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Paths are the positional command-line arguments: tree paths to print.
	Paths []string
}

// App holds settings of the configuration tree.
type App struct {
	// Environment selects the section merged over "all" in sectioned sources
	// (e.g. "dev", "prod").
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// ConstantPrefix identifies constant names in string values. Constants
	// are read from environment variables carrying this prefix.
	// Env: APP_CONSTANT_PREFIX
	ConstantPrefix string `env:"CONSTANT_PREFIX"`

	// NumericCoercion turns strings that become numeric after constant
	// substitution into integers.
	// Env: APP_NUMERIC_COERCION
	NumericCoercion bool `env:"NUMERIC_COERCION"`

	// PathCanonicalization replaces strings containing ".." by their
	// canonical absolute path.
	// Env: APP_PATH_CANONICALIZATION
	PathCanonicalization bool `env:"PATH_CANONICALIZATION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the cache service on /api/version when no
	// build version was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Source locates configuration sources.
type Source struct {
	// Dir is the directory whose .yml/.yaml files are loaded.
	// Env: SOURCE_DIR
	Dir string `env:"DIR"`

	// NamespacePrefix is prepended to every file stem ("app." puts db.yml
	// under app.db).
	// Env: SOURCE_NAMESPACE_PREFIX
	NamespacePrefix string `env:"NAMESPACE_PREFIX"`
}

// Snapshot controls the whole-tree snapshot.
type Snapshot struct {
	// Enabled turns on restore-at-startup and dump-after-load.
	// Env: SNAPSHOT_ENABLED
	Enabled bool `env:"ENABLED"`

	// Dir is the directory holding snapshot files.
	// Env: SNAPSHOT_DIR
	Dir string `env:"DIR"`

	// File is the snapshot base filename; the environment is prepended.
	// Env: SNAPSHOT_FILE
	File string `env:"FILE"`
}

// Cache configures the parsed-source cache.
type Cache struct {
	// Driver is one of none, memory, sqlite, postgres or http.
	// Env: CACHE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite file or PostgreSQL connection string.
	// Env: CACHE_DSN
	DSN string `env:"DSN"`

	// HTTPAddress is the base URL of the remote cache service.
	// Env: CACHE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request to the remote cache service.
	// Env: CACHE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings of the cache service.
type Server struct {
	// HTTPAddress is the TCP address the cache service listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration. args
// are the command-line arguments without the program name. Sources are
// applied in the following order (later sources override non-zero fields):
//  1. Defaults
//  2. JSON file (path resolved from environment and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
