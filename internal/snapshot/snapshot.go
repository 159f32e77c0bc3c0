// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/parser"
	"github.com/MKhiriev/go-conf-keeper/internal/utils"
	"github.com/MKhiriev/go-conf-keeper/models"
)

// Cache dumps and restores tree snapshots.
type Cache struct {
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// New returns a snapshot cache logging through log.
func New(log *logger.Logger) *Cache {
	return &Cache{
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}
}

// FilePath composes the snapshot location <dir>/<environment>_<filename>.
func FilePath(filename, dir, environment string) string {
	return filepath.Join(dir, environment+"_"+filename)
}

// Exists reports whether a snapshot file is present for environment.
func Exists(filename, dir, environment string) bool {
	info, err := os.Stat(FilePath(filename, dir, environment))
	return err == nil && info.Mode().IsRegular()
}

// Dump writes the content of src as the snapshot of environment. The
// directory is created when missing and the file is replaced atomically.
// Failures are reported as [ErrSnapshotWrite].
func (c *Cache) Dump(ctx context.Context, src Source, filename, dir, environment string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	target := FilePath(filename, dir, environment)
	log := c.logger.With().Str("file", target).Logger()

	body, err := json.MarshalIndent(models.Snapshot{
		ID:          c.ids.Generate(),
		Format:      models.SnapshotFormat,
		Environment: environment,
		CreatedAt:   c.now().UTC(),
		Data:        parser.PreserveFloats(src.All()).(map[string]any),
	}, "", "    ")
	if err != nil {
		log.Err(err).Str("func", "*Cache.Dump").Msg("error encoding snapshot")
		return fmt.Errorf("%w: encode: %w", ErrSnapshotWrite, err)
	}

	if err = writeAtomic(target, body); err != nil {
		log.Err(err).Str("func", "*Cache.Dump").Msg("error writing snapshot")
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	log.Debug().Int("bytes", len(body)).Msg("snapshot written")

	return nil
}

// Load reads the snapshot of environment and returns the tree contents.
func (c *Cache) Load(ctx context.Context, filename, dir, environment string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := FilePath(filename, dir, environment)

	body, err := os.ReadFile(target)
	if err != nil {
		c.logger.Debug().Err(err).Str("file", target).Msg("snapshot unavailable")
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotNotFound, target, err)
	}

	var envelope struct {
		models.Snapshot
		Data json.RawMessage `json:"data"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		c.logger.Err(err).Str("func", "*Cache.Load").Str("file", target).Msg("error decoding snapshot")
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotCorrupt, target, err)
	}

	switch {
	case envelope.Format != models.SnapshotFormat:
		return nil, fmt.Errorf("%w: %s: unknown format %q", ErrSnapshotCorrupt, target, envelope.Format)
	case envelope.Environment != environment:
		return nil, fmt.Errorf("%w: %s: dumped for environment %q", ErrSnapshotCorrupt, target, envelope.Environment)
	}

	data, err := decodeData(envelope.Data)
	if err != nil {
		c.logger.Err(err).Str("func", "*Cache.Load").Str("file", target).Msg("error decoding snapshot data")
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotCorrupt, target, err)
	}

	c.logger.Debug().
		Str("file", target).
		Str("snapshot_id", envelope.ID).
		Time("created_at", envelope.CreatedAt).
		Msg("snapshot loaded")

	return data, nil
}

// Restore loads the snapshot of environment into t, replacing its content.
// On error t is left untouched.
func (c *Cache) Restore(ctx context.Context, t Restorer, filename, dir, environment string) error {
	data, err := c.Load(ctx, filename, dir, environment)
	if err != nil {
		return err
	}

	t.Restore(data)

	return nil
}

func decodeData(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	v, err := parser.DecodeJSONBytes(raw)
	if err != nil {
		return nil, err
	}

	switch data := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return data, nil
	default:
		return nil, errors.New("data is not a mapping")
	}
}
