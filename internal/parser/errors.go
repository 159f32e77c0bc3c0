// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import "errors"

var (
	// ErrSourceNotFound is returned when the file to parse does not exist.
	ErrSourceNotFound = errors.New("file to parse does not exist")

	// ErrParse is returned when the file content cannot be decoded.
	ErrParse = errors.New("parse error")

	// ErrDump is returned when a value cannot be encoded or written.
	ErrDump = errors.New("unable to dump data into file")
)
