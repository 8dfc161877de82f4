package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func setTestDBPath(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "assistant.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setTestDBPath(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SemanticThreshold != 80 {
		t.Errorf("SemanticThreshold = %v, want 80", cfg.SemanticThreshold)
	}
	if cfg.EmbeddingThreshold != 0.58 {
		t.Errorf("EmbeddingThreshold = %v, want 0.58", cfg.EmbeddingThreshold)
	}
	if cfg.DomainEmbedThreshold != 0.62 {
		t.Errorf("DomainEmbedThreshold = %v, want 0.62", cfg.DomainEmbedThreshold)
	}
	if cfg.DomainMinLenForOfftopic != 6 {
		t.Errorf("DomainMinLenForOfftopic = %v, want 6", cfg.DomainMinLenForOfftopic)
	}
	if !cfg.StrictMode {
		t.Error("StrictMode default should be true")
	}
	if !cfg.DomainGatingEnabled || !cfg.ThirdPartyGuardEnabled {
		t.Error("gating defaults should be enabled")
	}
	if cfg.LLMRelevanceEnabled {
		t.Error("LLMRelevanceEnabled default should be false")
	}
	if cfg.RAGTopK != 4 {
		t.Errorf("RAGTopK = %v, want 4", cfg.RAGTopK)
	}
	if cfg.GenerateBurst != 3 {
		t.Errorf("GenerateBurst = %v, want 3", cfg.GenerateBurst)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.EmbeddingAvailable() {
		t.Error("EmbeddingAvailable() should be false without EMBEDDING_BASE_URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setTestDBPath(t)
	t.Setenv("SEMANTIC_THRESHOLD", "85")
	t.Setenv("EMBEDDING_BASE_URL", "http://localhost:9999")
	t.Setenv("STRICT_MODE", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_RELEVANCE_ENABLED", "true")
	t.Setenv("LLM_RELEVANCE_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SemanticThreshold != 85 {
		t.Errorf("SemanticThreshold = %v, want 85", cfg.SemanticThreshold)
	}
	if !cfg.EmbeddingAvailable() {
		t.Error("EmbeddingAvailable() should be true")
	}
	if cfg.StrictMode {
		t.Error("StrictMode should be false")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	// The relevance model falls back to the chat model when unset.
	if cfg.LLMRelevanceModel != cfg.LLMModelName {
		t.Errorf("LLMRelevanceModel = %q, want %q", cfg.LLMRelevanceModel, cfg.LLMModelName)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "semantic threshold out of range", key: "SEMANTIC_THRESHOLD", value: "150"},
		{name: "embedding threshold out of range", key: "EMBEDDING_THRESHOLD", value: "1.5"},
		{name: "rag top k zero", key: "RAG_TOP_K", value: "0"},
		{name: "bad integer", key: "GENERATE_BURST", value: "lots"},
		{name: "bad float", key: "GENERATE_RATE", value: "fast"},
		{name: "bad boolean", key: "STRICT_MODE", value: "maybe"},
		{name: "bad log level", key: "LOG_LEVEL", value: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestDBPath(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s expected error", tt.key, tt.value)
			}
		})
	}
}
