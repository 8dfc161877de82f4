package handlers

import (
	"context"
	"net/http"

	"state101-assistant/internal/contextutil"
)

// Refresher rebuilds the assistant's routing snapshot.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// KnowledgeSyncer pulls the latest knowledge base from the remote source.
type KnowledgeSyncer interface {
	Sync(ctx context.Context) ([]string, error)
}

// KnowledgeIndexer re-chunks and re-indexes the knowledge directory.
type KnowledgeIndexer interface {
	IndexAll(ctx context.Context) error
}

// RefreshHandler triggers a knowledge sync, re-index, and snapshot refresh.
// Syncer and indexer are optional; without them the handler only rebuilds
// the snapshot from whatever is on disk.
type RefreshHandler struct {
	refresher Refresher
	syncer    KnowledgeSyncer
	indexer   KnowledgeIndexer
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(refresher Refresher, syncer KnowledgeSyncer, indexer KnowledgeIndexer) *RefreshHandler {
	return &RefreshHandler{
		refresher: refresher,
		syncer:    syncer,
		indexer:   indexer,
	}
}

// RefreshResponse reports what the refresh did.
type RefreshResponse struct {
	Status  string   `json:"status"`
	Changed []string `json:"changed,omitempty"`
}

// ServeHTTP handles HTTP requests to refresh the knowledge base.
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	status := "refreshed"
	var changed []string
	if h.syncer != nil {
		categories, err := h.syncer.Sync(ctx)
		if err != nil {
			// Stale knowledge still serves; the index and snapshot rebuild
			// below keep the widget answering from the last good copy.
			logger.ErrorContext(ctx, "knowledge sync failed, serving stale copy", "error", err)
			status = "stale"
		} else {
			changed = categories
			logger.InfoContext(ctx, "knowledge synced", "changed", len(changed))
		}
	}

	if h.indexer != nil {
		if err := h.indexer.IndexAll(ctx); err != nil {
			logger.ErrorContext(ctx, "knowledge indexing failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Knowledge indexing failed")
			return
		}
	}

	if err := h.refresher.Refresh(ctx); err != nil {
		logger.ErrorContext(ctx, "snapshot refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Snapshot refresh failed")
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{Status: status, Changed: changed})
}
