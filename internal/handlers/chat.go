// Package handlers exposes the assistant over HTTP: the chat endpoint, the
// knowledge refresh trigger, the facts snapshot, and the health check.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"state101-assistant/internal/assistant"
	"state101-assistant/internal/contextutil"
)

// Responder is the part of the assistant the chat endpoint needs.
type Responder interface {
	Respond(ctx context.Context, message string) (assistant.Reply, error)
}

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	responder Responder
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(responder Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
	Intent string `json:"intent,omitempty"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.responder.Respond(ctx, req.Message)
	if err != nil {
		handleAssistantError(w, ctx, err, "Failed to process chat request")
		return
	}

	logger.InfoContext(ctx, "chat reply", "source", reply.Source, "intent", reply.Intent)

	writeJSON(w, http.StatusOK, ChatResponse{
		Reply:  reply.Answer,
		Source: string(reply.Source),
		Intent: reply.Intent,
	})
}

// handleAssistantError maps assistant errors to HTTP status codes.
func handleAssistantError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "assistant error", "error", err)

	var validationErr *assistant.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, assistant.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, assistant.ErrExternalService) {
		writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}
