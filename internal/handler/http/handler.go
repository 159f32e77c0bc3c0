package http

//go:generate mockgen -source=handler.go -destination=../../mock/handler_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/models"
)

// CacheStore is the subset of a cache backend served over HTTP. Every
// store.Cache satisfies it.
type CacheStore interface {
	Get(ctx context.Context, key string) (value any, ok bool, err error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type Handler struct {
	cache     CacheStore
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(cache CacheStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cache:     cache,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
