package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/tree"
	"github.com/MKhiriev/go-conf-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func resolvedTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()
	require.NoError(t, tr.Add("app.db", map[string]any{
		"host":  "localhost",
		"port":  5432,
		"ratio": 0.75,
		"scale": 2.0,
		"rates": []any{1.0, 0.5},
		"debug": true,
		"hosts": []any{"a", "b"},
	}))
	require.NoError(t, tr.Add("app.cache", map[string]any{"dsn": "%app.db.host%:11211"}))
	require.NoError(t, tr.Add("other", "scalar"))
	return tr
}

func writeSnapshot(t *testing.T, dir, env string, v any) {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(FilePath("f", dir, env), body, 0o644))
}

// ── paths ─────────────────────────────────────────────────────────────────────

func TestFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/p", "prod_f"), FilePath("f", "/p", "prod"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists("f", dir, "prod"))

	require.NoError(t, os.WriteFile(FilePath("f", dir, "prod"), []byte("{}"), 0o644))
	assert.True(t, Exists("f", dir, "prod"))
	assert.False(t, Exists("f", dir, "dev"))

	require.NoError(t, os.Mkdir(FilePath("g", dir, "prod"), 0o755))
	assert.False(t, Exists("g", dir, "prod"), "directories are not snapshots")
}

// ── Dump / Load ───────────────────────────────────────────────────────────────

func TestDumpLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := resolvedTree(t)
	c := New(logger.Nop())

	require.NoError(t, c.Dump(ctx, src, "f", dir, "prod"))

	fresh := tree.New()
	require.NoError(t, c.Restore(ctx, fresh, "f", dir, "prod"))

	assert.Equal(t, src.All(), fresh.All())
	for _, path := range []string{"app.db.host", "app.db.port", "app.db.ratio", "app.db.scale", "app.db.rates.0", "app.db.debug", "app.db.hosts.1", "app.cache.dsn", "other"} {
		want, _ := src.Get(path)
		got, ok := fresh.Get(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
	assert.Equal(t, "localhost:11211", mustString(t, fresh, "app.cache.dsn"))
}

func TestDumpLoad_WholeFloatKeepsType(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c := New(logger.Nop())

	src := tree.New()
	require.NoError(t, src.Add("app", map[string]any{"ratio": float64(2), "count": 2}))
	require.NoError(t, c.Dump(ctx, src, "f", dir, "dev"))

	fresh := tree.New()
	require.NoError(t, c.Restore(ctx, fresh, "f", dir, "dev"))

	ratio, _ := fresh.Get("app.ratio")
	assert.IsType(t, float64(0), ratio)
	assert.Equal(t, float64(2), ratio)
	count, _ := fresh.Get("app.count")
	assert.Equal(t, 2, count)
}

func mustString(t *testing.T, tr *tree.Tree, path string) string {
	t.Helper()
	s, ok := tr.String(path)
	require.True(t, ok, path)
	return s
}

func TestDump_Envelope(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := New(logger.Nop())
	c.now = func() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) }

	require.NoError(t, c.Dump(ctx, resolvedTree(t), "f", dir, "dev"))

	body, err := os.ReadFile(FilePath("f", dir, "dev"))
	require.NoError(t, err)

	var s models.Snapshot
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, models.SnapshotFormat, s.Format)
	assert.Equal(t, "dev", s.Environment)
	assert.True(t, c.now().Equal(s.CreatedAt))
	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Contains(t, s.Data, "app")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files are left behind")
	assert.Equal(t, "dev_f", entries[0].Name())
}

func TestDump_ReplacesExistingSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c := New(logger.Nop())

	first := tree.New()
	require.NoError(t, first.Add("a", map[string]any{"v": 1}))
	require.NoError(t, c.Dump(ctx, first, "f", dir, "prod"))

	second := tree.New()
	require.NoError(t, second.Add("b", map[string]any{"v": 2}))
	require.NoError(t, c.Dump(ctx, second, "f", dir, "prod"))

	data, err := c.Load(ctx, "f", dir, "prod")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": map[string]any{"v": 2}}, data)
}

func TestDump_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := New(logger.Nop()).Dump(context.Background(), tree.New(), "f", filepath.Join(blocker, "sub"), "prod")
	assert.ErrorIs(t, err, ErrSnapshotWrite)
}

func TestDump_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(logger.Nop()).Dump(ctx, tree.New(), "f", t.TempDir(), "prod")
	assert.ErrorIs(t, err, ErrSnapshotWrite)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_Errors(t *testing.T) {
	valid := func(env string, data any) map[string]any {
		return map[string]any{"id": "x", "format": models.SnapshotFormat, "environment": env, "data": data}
	}

	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		wantErr error
	}{
		{
			name:    "missing file",
			setup:   func(*testing.T, string) {},
			wantErr: ErrSnapshotNotFound,
		},
		{
			name: "not json",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(FilePath("f", dir, "prod"), []byte("<?php return [];"), 0o644))
			},
			wantErr: ErrSnapshotCorrupt,
		},
		{
			name:    "unknown format",
			setup:   func(t *testing.T, dir string) { writeSnapshot(t, dir, "prod", map[string]any{"format": "v0", "environment": "prod"}) },
			wantErr: ErrSnapshotCorrupt,
		},
		{
			name:    "other environment",
			setup:   func(t *testing.T, dir string) { writeSnapshot(t, dir, "prod", valid("dev", map[string]any{})) },
			wantErr: ErrSnapshotCorrupt,
		},
		{
			name:    "data is not a mapping",
			setup:   func(t *testing.T, dir string) { writeSnapshot(t, dir, "prod", valid("prod", []any{1, 2})) },
			wantErr: ErrSnapshotCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			data, err := New(logger.Nop()).Load(context.Background(), "f", dir, "prod")
			assert.Nil(t, data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_NullData(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "prod", map[string]any{"format": models.SnapshotFormat, "environment": "prod", "data": nil})

	data, err := New(logger.Nop()).Load(context.Background(), "f", dir, "prod")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRestore_FailureLeavesTreeUntouched(t *testing.T) {
	tr := resolvedTree(t)
	before := tr.All()

	err := New(logger.Nop()).Restore(context.Background(), tr, "f", t.TempDir(), "prod")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.Equal(t, before, tr.All())
}
