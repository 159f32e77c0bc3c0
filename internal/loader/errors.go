// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "errors"

var (
	// ErrSourceNotFound is returned when the configuration file to load does
	// not exist.
	ErrSourceNotFound = errors.New("configuration file does not exist")

	// ErrNoParser is returned by Load when no parser is given and none is
	// registered for the file extension.
	ErrNoParser = errors.New("no parser for configuration file")
)
