package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// NewCache builds the cache backend selected by cfg.Driver. The none driver
// (or an empty driver) yields a nil Cache. SQL backends are migrated before
// they are returned.
func NewCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (Cache, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case "", config.CacheDriverNone:
		return nil, nil
	case config.CacheDriverMemory:
		log.Debug().Str("func", "NewCache").Msg("using in-memory cache")
		return NewMemoryCache(), nil
	case config.CacheDriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.CacheDriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewCache").Msg("error migrating cache database")
		_ = db.Close()
		return nil, err
	}

	return NewSQLCache(db), nil
}
