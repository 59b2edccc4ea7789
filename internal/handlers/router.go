// Package handlers exposes the workbench over HTTP: save slots, content
// generation, terrain rendering and document export.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hallwright/scenario-workbench/internal/services"
	"github.com/hallwright/scenario-workbench/internal/storage"
)

// NewRouter assembles the full API surface.
func NewRouter(store storage.Storage, author *services.AuthorService, llm services.LLMService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(150 * time.Second))

	r.Method(http.MethodGet, "/health", NewHealthHandler(store, llm, logger))

	saves := NewSavesHandler(store, logger)
	r.Route("/v1/saves", func(r chi.Router) {
		r.Get("/", saves.List)
		r.Get("/{id}", saves.Get)
		r.Put("/{id}", saves.Put)
		r.Delete("/{id}", saves.Delete)
	})

	r.Method(http.MethodPost, "/v1/generate", NewGenerateHandler(author, logger))
	r.Method(http.MethodGet, "/v1/terrain", NewTerrainHandler(logger))
	r.Method(http.MethodPost, "/v1/export", NewExportHandler(logger))

	return r
}
