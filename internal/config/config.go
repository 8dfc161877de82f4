package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the assistant service.
type Config struct {
	// LLM chat completions endpoint (OpenAI-compatible).
	LLMBaseURL   string
	LLMModelName string
	LLMAPIKey    string

	// Embeddings endpoint. An empty base URL disables every
	// embedding-dependent subsystem (embedding router, embedding
	// relevance fallback, vector RAG) for the process lifetime.
	EmbeddingBaseURL   string
	EmbeddingModelName string
	EmbeddingSize      int

	// Knowledge base.
	KnowledgeDir string
	KBSyncURL    string
	DBPath       string

	// Vector store. Empty QdrantURL selects the in-memory store.
	QdrantURL        string
	QdrantCollection string

	// Intent routing thresholds.
	SemanticThreshold  float64 // token-set ratio, 0-100
	EmbeddingThreshold float64 // cosine, 0-1

	// Domain relevance gate.
	DomainGatingEnabled     bool
	DomainEmbedThreshold    float64
	DomainMinLenForOfftopic int
	ThirdPartyGuardEnabled  bool
	LLMRelevanceEnabled     bool
	LLMRelevanceModel       string
	LLMRelevanceFailOpen    bool

	// Generation fallback.
	StrictMode    bool
	RAGEnabled    bool
	RAGTopK       int
	GenerateRate  float64 // tokens per second refilled into the bucket
	GenerateBurst int

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the current directory or any parent (up to the project
// root) is loaded first; real environment variables take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:         getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModelName:       getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		LLMAPIKey:          getEnv("LLM_API_KEY", "dummy-key"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "granite-embedding-278m-multilingual"),
		KnowledgeDir:       getEnv("KNOWLEDGE_DIR", "knowledge"),
		KBSyncURL:          getEnv("KB_SYNC_URL", ""),
		DBPath:             getEnv("DB_PATH", "./data/assistant.db"),
		QdrantURL:          getEnv("QDRANT_URL", ""),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "knowledge"),
		LLMRelevanceModel:  getEnv("LLM_RELEVANCE_MODEL", ""),
		APIPort:            getEnv("API_PORT", "9000"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}
	if cfg.LLMRelevanceModel == "" {
		cfg.LLMRelevanceModel = cfg.LLMModelName
	}

	var err error
	if cfg.EmbeddingSize, err = getEnvInt("EMBEDDING_SIZE", 768); err != nil {
		return nil, err
	}
	if cfg.SemanticThreshold, err = getEnvFloat("SEMANTIC_THRESHOLD", 80); err != nil {
		return nil, err
	}
	if cfg.EmbeddingThreshold, err = getEnvFloat("EMBEDDING_THRESHOLD", 0.58); err != nil {
		return nil, err
	}
	if cfg.DomainEmbedThreshold, err = getEnvFloat("DOMAIN_EMBED_THRESHOLD", 0.62); err != nil {
		return nil, err
	}
	if cfg.DomainMinLenForOfftopic, err = getEnvInt("DOMAIN_MIN_LEN_FOR_OFFTOPIC", 6); err != nil {
		return nil, err
	}
	if cfg.RAGTopK, err = getEnvInt("RAG_TOP_K", 4); err != nil {
		return nil, err
	}
	if cfg.GenerateRate, err = getEnvFloat("GENERATE_RATE", 10.0/60.0); err != nil {
		return nil, err
	}
	if cfg.GenerateBurst, err = getEnvInt("GENERATE_BURST", 3); err != nil {
		return nil, err
	}
	if cfg.DomainGatingEnabled, err = getEnvBool("DOMAIN_GATING_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.ThirdPartyGuardEnabled, err = getEnvBool("THIRD_PARTY_GUARD_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.LLMRelevanceEnabled, err = getEnvBool("LLM_RELEVANCE_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.LLMRelevanceFailOpen, err = getEnvBool("LLM_RELEVANCE_FAIL_OPEN", true); err != nil {
		return nil, err
	}
	if cfg.StrictMode, err = getEnvBool("STRICT_MODE", true); err != nil {
		return nil, err
	}
	if cfg.RAGEnabled, err = getEnvBool("RAG_ENABLED", true); err != nil {
		return nil, err
	}

	switch level := getEnv("LOG_LEVEL", "info"); level {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", level)
	}

	if cfg.SemanticThreshold < 0 || cfg.SemanticThreshold > 100 {
		return nil, fmt.Errorf("SEMANTIC_THRESHOLD must be between 0 and 100")
	}
	if cfg.EmbeddingThreshold < 0 || cfg.EmbeddingThreshold > 1 {
		return nil, fmt.Errorf("EMBEDDING_THRESHOLD must be between 0 and 1")
	}
	if cfg.RAGTopK <= 0 {
		return nil, fmt.Errorf("RAG_TOP_K must be greater than 0")
	}

	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// EmbeddingAvailable reports whether an embedding backend is configured.
func (c *Config) EmbeddingAvailable() bool {
	return c.EmbeddingBaseURL != ""
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a valid boolean: %w", key, err)
	}
	return v, nil
}
