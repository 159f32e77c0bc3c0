package server

import "context"

// Server defines the lifecycle of the cache service transport.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns nil after a clean shutdown.
	Run(ctx context.Context) error

	// RunServer calls Run with a context cancelled by SIGINT, SIGTERM or
	// SIGQUIT.
	RunServer() error
}
