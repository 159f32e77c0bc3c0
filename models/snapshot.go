// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SnapshotFormat identifies the layout of a snapshot file. It is bumped
// whenever the envelope changes incompatibly.
const SnapshotFormat = "confkeeper/v1"

// Snapshot is the on-disk envelope of a dumped configuration tree.
type Snapshot struct {
	// ID is a UUIDv7 assigned at dump time.
	ID string `json:"id"`

	// Format must equal SnapshotFormat for the snapshot to be loadable.
	Format string `json:"format"`

	// Environment the tree was built for. A snapshot is only restored for the
	// same environment.
	Environment string `json:"environment"`

	CreatedAt time.Time `json:"created_at"`

	// Data is the whole tree: top-level namespaces mapped to their subtrees.
	Data map[string]any `json:"data"`
}
