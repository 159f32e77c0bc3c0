package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when a configuration
// group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty environment or an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSnapshotConfigs indicates an enabled snapshot without a
	// directory or filename.
	ErrInvalidSnapshotConfigs = errors.New("invalid snapshot configuration")
	// ErrInvalidCacheConfigs indicates an unknown cache driver or a driver
	// missing its DSN or address.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidFlags indicates command-line arguments that could not be
	// parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
