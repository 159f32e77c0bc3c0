package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/loader"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/snapshot"
	"github.com/MKhiriev/go-conf-keeper/internal/tree"
)

// App builds configuration trees for one set of settings.
type App struct {
	cfg       *config.StructuredConfig
	cache     loader.Cache
	snapshots *snapshot.Cache
	logger    *logger.Logger
}

// New returns an App. cache may be nil to disable the parsed-source cache.
func New(cfg *config.StructuredConfig, cache loader.Cache, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &App{
		cfg:       cfg,
		cache:     cache,
		snapshots: snapshot.New(log.WithComponent("snapshot")),
		logger:    log,
	}, nil
}

// Build returns the resolved tree for the configured environment.
//
// An enabled snapshot that exists is restored as is. If it cannot be read
// the source directory is loaded instead. A tree that was loaded is dumped
// when snapshots are enabled; a dump failure is returned.
func (a *App) Build(ctx context.Context) (*tree.Tree, error) {
	env := a.cfg.App.Environment
	snap := a.cfg.Snapshot

	if snap.Enabled && snapshot.Exists(snap.File, snap.Dir, env) {
		t := a.newTree()
		err := a.snapshots.Restore(ctx, t, snap.File, snap.Dir, env)
		if err == nil {
			a.logger.Debug().Str("func", "*App.Build").Str("environment", env).Msg("configuration restored from snapshot")
			return t, nil
		}
		a.logger.Warn().Err(err).Str("func", "*App.Build").Msg("snapshot unusable, loading sources")
	}

	t := a.newTree()
	if err := a.load(ctx, t); err != nil {
		return nil, err
	}

	if snap.Enabled {
		if err := a.snapshots.Dump(ctx, t, snap.File, snap.Dir, env); err != nil {
			a.logger.Err(err).Str("func", "*App.Build").Msg("error dumping snapshot")
			return nil, err
		}
	}

	return t, nil
}

func (a *App) load(ctx context.Context, t *tree.Tree) error {
	opts := []loader.Option{loader.WithLogger(a.logger.WithComponent("loader"))}
	if a.cache != nil {
		opts = append(opts, loader.WithCache(a.cache))
	}

	l := loader.New(t, a.cfg.App.Environment, opts...)
	if err := l.LoadFromDirectory(ctx, a.cfg.Source.Dir, a.cfg.Source.NamespacePrefix); err != nil {
		a.logger.Err(err).Str("func", "*App.load").Str("dir", a.cfg.Source.Dir).Msg("error loading configuration directory")
		return errors.Join(ErrBuildTree, err)
	}

	a.logger.Debug().
		Str("func", "*App.load").
		Str("dir", a.cfg.Source.Dir).
		Strs("namespaces", t.Namespaces()).
		Msg("configuration loaded")
	return nil
}

func (a *App) newTree() *tree.Tree {
	prefix := a.cfg.App.ConstantPrefix
	if prefix == "" {
		prefix = tree.DefaultConstantPrefix
	}

	opts := []tree.Option{
		tree.WithConstantPrefix(prefix),
		tree.WithConstants(tree.ConstantsFromEnviron(prefix)),
	}
	if a.cfg.App.NumericCoercion {
		opts = append(opts, tree.WithNumericCoercion())
	}
	if a.cfg.App.PathCanonicalization {
		opts = append(opts, tree.WithPathCanonicalization())
	}

	return tree.New(opts...)
}
