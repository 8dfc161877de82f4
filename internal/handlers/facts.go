package handlers

import (
	"net/http"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/facts"
)

// FactsProvider exposes the assistant's current grounding facts.
type FactsProvider interface {
	Facts() *facts.Record
}

// FactsHandler serves the current facts record, mostly for the widget's
// footer and for operators checking what the model is grounded on.
type FactsHandler struct {
	provider FactsProvider
}

// NewFactsHandler creates a new FactsHandler.
func NewFactsHandler(provider FactsProvider) *FactsHandler {
	return &FactsHandler{provider: provider}
}

// ServeHTTP handles HTTP requests for the facts record.
func (h *FactsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.provider.Facts())
}
