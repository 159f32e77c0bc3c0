// Package snapshot persists a fully resolved configuration tree to a single
// JSON file per environment and reads it back, so later runs can skip
// parsing, environment merging and reference resolution.
//
// The file lives at <dir>/<environment>_<filename> and holds a
// [models.Snapshot] envelope. Dumps replace the file atomically: a reader
// never observes a partially written snapshot.
//
//	c := snapshot.New(log)
//	if err := c.Dump(ctx, t, "config.json", "/var/cache/app", "prod"); err != nil {
//		return err
//	}
//	...
//	if err := c.Restore(ctx, fresh, "config.json", "/var/cache/app", "prod"); err != nil {
//		// fall back to a normal load
//	}
package snapshot
