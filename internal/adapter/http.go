package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/parser"
	"github.com/MKhiriev/go-conf-keeper/internal/utils"
	"github.com/MKhiriev/go-conf-keeper/models"
)

const cacheEntryPath = "/api/cache/{key}"

// HTTPCache is a cache backed by the remote cache service.
type HTTPCache struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCache builds a client for the cache service at cfg.HTTPAddress with
// cfg.RequestTimeout per request. A scheme-less address gets "http://".
func NewHTTPCache(cfg config.Cache, log *logger.Logger) (*HTTPCache, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	log.Debug().Str("func", "NewHTTPCache").Str("base_url", baseURL).Msg("creating http cache adapter")

	return &HTTPCache{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get fetches key from GET /api/cache/{key}. A 404 is reported as a miss.
func (h *HTTPCache) Get(ctx context.Context, key string) (any, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Get(cacheEntryPath)
	if err != nil {
		return nil, false, fmt.Errorf("cache get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		h.logger.Err(err).Str("func", "*HTTPCache.Get").Str("key", key).Msg("cache service error")
		return nil, false, err
	}

	var entry struct {
		Value json.RawMessage `json:"value"`
	}
	if err = json.Unmarshal(resp.Body(), &entry); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if len(entry.Value) == 0 {
		return nil, false, nil
	}

	value, err := parser.DecodeJSONBytes(entry.Value)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return value, true, nil
}

// Set stores value under key with PUT /api/cache/{key}.
func (h *HTTPCache) Set(ctx context.Context, key string, value any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CacheEntryRequest{Value: parser.PreserveFloats(value)}).
		Put(cacheEntryPath)
	if err != nil {
		return fmt.Errorf("cache set request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete invalidates key with DELETE /api/cache/{key}.
func (h *HTTPCache) Delete(ctx context.Context, key string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Delete(cacheEntryPath)
	if err != nil {
		return fmt.Errorf("cache delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version queries GET /api/version; used as a reachability check.
func (h *HTTPCache) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// Close releases nothing; it lets HTTPCache satisfy the store cache
// interface.
func (h *HTTPCache) Close() error {
	return nil
}
