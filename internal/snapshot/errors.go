package snapshot

import "errors"

var (
	// ErrSnapshotNotFound is returned by Load when the snapshot file is
	// missing or cannot be opened.
	ErrSnapshotNotFound = errors.New("cache file not found")

	// ErrSnapshotCorrupt is returned by Load when the file cannot be decoded,
	// carries an unknown format or was dumped for another environment.
	ErrSnapshotCorrupt = errors.New("snapshot is corrupt")

	// ErrSnapshotWrite is returned by Dump when the snapshot cannot be
	// written.
	ErrSnapshotWrite = errors.New("cannot write cache")
)
