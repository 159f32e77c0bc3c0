package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api/cache", func(r chi.Router) {
		r.Get("/{key}", h.getCacheEntry)
		r.Put("/{key}", h.putCacheEntry)
		r.Delete("/{key}", h.deleteCacheEntry)
	})
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
