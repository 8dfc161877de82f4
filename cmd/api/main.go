package main

import (
	"context"
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"state101-assistant/internal/assistant"
	"state101-assistant/internal/config"
	"state101-assistant/internal/http"
	"state101-assistant/internal/knowledge"
	"state101-assistant/internal/llm"
	"state101-assistant/internal/rag"
	"state101-assistant/internal/relevance"
	"state101-assistant/internal/storage"
	"state101-assistant/internal/vectorstore"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	docRepo := storage.NewDocumentRepo(db)
	chunkRepo := storage.NewChunkRepo(db)

	ctx := context.Background()

	// Vector store: Qdrant when configured, in-memory otherwise.
	var vectorStore vectorstore.VectorStore
	if cfg.QdrantURL != "" {
		qdrantStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		vectorStore = qdrantStore
	} else {
		vectorStore = vectorstore.NewMemoryStore()
		slog.Info("Using in-memory vector store")
	}

	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.EmbeddingSize); err != nil {
		log.Fatalf("Failed to ensure vector collection: %v", err)
	}
	slog.Info("Vector collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.EmbeddingSize)

	// Embeddings are optional; everything downstream degrades to the
	// lexical/keyword paths without them.
	embedClient := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.EmbeddingSize)
	if embedClient != nil {
		testEmbeddings, err := embedClient.EmbedTexts(ctx, []string{"test"})
		if err != nil {
			log.Fatalf("Failed to validate embedding client: %v", err)
		}
		if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.EmbeddingSize {
			log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.EmbeddingSize, len(testEmbeddings[0]))
		}
		slog.Info("Embedding client validated", "vector_size", cfg.EmbeddingSize)
	} else {
		slog.Info("No embedding backend configured, semantic layers disabled")
	}

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Knowledge base: optional remote sync plus local indexing.
	var syncer *knowledge.Syncer
	if cfg.KBSyncURL != "" {
		syncer = knowledge.NewSyncer(cfg.KBSyncURL, cfg.KnowledgeDir, docRepo)
	}
	indexer := knowledge.NewIndexer(cfg.KnowledgeDir, docRepo, chunkRepo, embedClient, vectorStore, cfg.QdrantCollection)

	retriever := rag.NewRetriever(embedClient, vectorStore, chunkRepo, cfg.QdrantCollection)

	// Relevance gate.
	var gate *relevance.Gate
	if cfg.DomainGatingEnabled {
		mode := relevance.ModeHeuristic
		var classifier relevance.ChatCompleter
		if cfg.LLMRelevanceEnabled {
			mode = relevance.ModeLLM
			classifier = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMRelevanceModel)
		}
		gate = relevance.NewGate(relevance.Options{
			Mode:            mode,
			Classifier:      classifier,
			Embedder:        embedClient,
			EmbedThreshold:  cfg.DomainEmbedThreshold,
			RejectMinLen:    cfg.DomainMinLenForOfftopic,
			ThirdPartyGuard: cfg.ThirdPartyGuardEnabled,
			FailOpen:        cfg.LLMRelevanceFailOpen,
		})
		if err := gate.PrimeAnchors(ctx); err != nil {
			slog.Warn("Failed to prime gate anchors, similarity check disabled", "error", err)
		}
	}

	// Assemble the assistant. Interface fields stay nil unless the concrete
	// dependency exists, so disabled layers are skipped cleanly.
	var gateDep assistant.RelevanceGate
	if gate != nil {
		gateDep = gate
	}
	var embedDep assistant.Embedder
	if embedClient != nil {
		embedDep = embedClient
	}

	bot := assistant.New(cfg, gateDep, llmClient, embedDep, retriever)

	deps := &http.Deps{
		Assistant:   bot,
		Indexer:     indexer,
		VectorStore: vectorStore,
		Collection:  cfg.QdrantCollection,
		IndexHTML:   indexHTML,
	}
	if syncer != nil {
		deps.Syncer = syncer
	}
	router := http.NewRouter(deps)

	// Sync, index, and build the first snapshot in the background so a slow
	// knowledge source never delays startup; canned answers serve meanwhile.
	go func() {
		bgCtx := context.Background()
		if syncer != nil {
			if _, err := syncer.Sync(bgCtx); err != nil {
				slog.Error("Initial knowledge sync failed", "error", err)
			}
		}
		if err := indexer.IndexAll(bgCtx); err != nil {
			slog.Error("Initial indexing completed with errors", "error", err)
		}
		if err := bot.Refresh(bgCtx); err != nil {
			slog.Error("Initial snapshot refresh failed", "error", err)
		} else {
			slog.Info("Assistant snapshot ready")
		}
	}()

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{Addr: addr, Handler: router}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-shutdownCtx.Done()
		slog.Info("Shutting down API server")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		log.Fatalf("API server failed to start: %v", err)
	}
}
