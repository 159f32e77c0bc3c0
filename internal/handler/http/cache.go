package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/parser"
	"github.com/MKhiriev/go-conf-keeper/internal/utils"
	"github.com/MKhiriev/go-conf-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxEntryBodySize bounds PUT bodies.
const maxEntryBodySize = 8 << 20

func (h *Handler) getCacheEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := cacheKeyParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	value, ok, err := h.cache.Get(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCacheEntry").Str("key", key).Msg("error reading cache entry")
		h.writeError(w, err)
		return
	}
	if !ok {
		h.writeError(w, ErrEntryNotFound)
		return
	}

	utils.WriteJSON(w, models.CacheEntryResponse{Key: key, Value: parser.PreserveFloats(value)}, http.StatusOK)
}

func (h *Handler) putCacheEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := cacheKeyParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	value, err := decodeEntryValue(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putCacheEntry").Str("key", key).Msg("invalid cache entry body")
		h.writeError(w, err)
		return
	}

	if err = h.cache.Set(r.Context(), key, value); err != nil {
		log.Err(err).Str("func", "*Handler.putCacheEntry").Str("key", key).Msg("error storing cache entry")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCacheEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := cacheKeyParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.cache.Delete(r.Context(), key); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCacheEntry").Str("key", key).Msg("error deleting cache entry")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func cacheKeyParam(r *http.Request) (string, error) {
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		return "", ErrEmptyKey
	}
	return key, nil
}

// decodeEntryValue reads a {"value": ...} body. The value member is required
// and may be any JSON value including null.
func decodeEntryValue(w http.ResponseWriter, r *http.Request) (any, error) {
	body, err := parser.DecodeJSON(http.MaxBytesReader(w, r.Body, maxEntryBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	envelope, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidBody)
	}
	value, ok := envelope["value"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"value\"", ErrInvalidBody)
	}

	return value, nil
}

// writeError hides the details of server-side failures from the caller.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	utils.WriteError(w, message, status)
}
