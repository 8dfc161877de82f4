// Package http wires the assistant's endpoints into a chi router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"state101-assistant/internal/assistant"
	"state101-assistant/internal/handlers"
	"state101-assistant/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router. Syncer, Indexer, and
// VectorStore are optional; leave them nil when the deployment runs without
// a remote knowledge base or vector backend.
type Deps struct {
	Assistant   *assistant.Assistant
	Syncer      handlers.KnowledgeSyncer
	Indexer     handlers.KnowledgeIndexer
	VectorStore vectorstore.VectorStore
	Collection  string
	IndexHTML   string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.Assistant)
	refreshHandler := handlers.NewRefreshHandler(deps.Assistant, deps.Syncer, deps.Indexer)
	factsHandler := handlers.NewFactsHandler(deps.Assistant)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.Collection)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodPost, "/refresh", refreshHandler)
		r.Method(http.MethodGet, "/facts", factsHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Demo page with the embedded widget.
	if deps.IndexHTML != "" {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(deps.IndexHTML))
		})
	}

	return r
}
