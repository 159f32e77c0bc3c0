package app

import (
	"context"

	"github.com/MKhiriev/go-conf-keeper/internal/adapter"
	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

// NewCache opens the parsed-source cache selected by cfg.Driver. The "http"
// driver talks to a remote cache service; every other driver is served by
// [store.NewCache]. A nil cache with a nil error means caching is off.
func NewCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (store.Cache, error) {
	if cfg.Driver == config.CacheDriverHTTP {
		c, err := adapter.NewHTTPCache(cfg, log.WithComponent("adapter"))
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	return store.NewCache(ctx, cfg, log.WithComponent("store"))
}
