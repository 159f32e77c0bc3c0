package app

import "errors"

var (
	// ErrBuildTree wraps any failure of the directory load.
	ErrBuildTree = errors.New("cannot build configuration tree")

	// ErrNilConfig is returned by [New] without settings.
	ErrNilConfig = errors.New("nil configuration")
)
