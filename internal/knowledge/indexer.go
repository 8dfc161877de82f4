package knowledge

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/google/uuid"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/llm"
	"state101-assistant/internal/storage"
	"state101-assistant/internal/vectorstore"
)

// Indexer loads knowledge-base files into SQLite and the vector store.
// Chunks always land in SQLite so lexical retrieval works; vectors are
// written only when an embedder is configured.
type Indexer struct {
	dir        string
	docRepo    storage.DocumentStore
	chunkRepo  storage.ChunkStore
	embedder   *llm.EmbeddingsClient
	vectors    vectorstore.VectorStore
	collection string
	chunker    *Chunker
}

// NewIndexer creates a new knowledge indexer. embedder may be nil.
func NewIndexer(
	dir string,
	docRepo storage.DocumentStore,
	chunkRepo storage.ChunkStore,
	embedder *llm.EmbeddingsClient,
	vectors vectorstore.VectorStore,
	collection string,
) *Indexer {
	return &Indexer{
		dir:        dir,
		docRepo:    docRepo,
		chunkRepo:  chunkRepo,
		embedder:   embedder,
		vectors:    vectors,
		collection: collection,
		chunker:    NewChunker(),
	}
}

// IndexFile indexes a single knowledge-base file. Unchanged files (by
// content hash) are skipped. Re-indexing a changed file replaces its
// chunks in both SQLite and the vector store.
func (ix *Indexer) IndexFile(ctx context.Context, file ScannedFile) error {
	logger := contextutil.LoggerFromContext(ctx)

	content, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", file.AbsPath, err)
	}

	hashHex := fmt.Sprintf("%x", sha256.Sum256(content))

	existing, err := ix.docRepo.GetBySource(ctx, file.Source)
	if err != nil && err != storage.ErrNotFound {
		return fmt.Errorf("failed to check existing document: %w", err)
	}

	if existing != nil && existing.Hash == hashHex && !existing.Stale {
		logger.DebugContext(ctx, "skipping unchanged file", "source", file.Source, "hash", hashHex)
		return nil
	}

	title, chunks, err := ix.chunker.ChunkFile(content, file.Source)
	if err != nil {
		return fmt.Errorf("failed to chunk %s: %w", file.Source, err)
	}

	doc := &storage.DocumentRecord{
		Source:   file.Source,
		Category: file.Category,
		Title:    title,
		Hash:     hashHex,
	}
	if existing != nil {
		doc.ID = existing.ID
	}
	if err := ix.docRepo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	if existing != nil {
		oldIDs, err := ix.chunkRepo.ListIDsByDocument(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("failed to list old chunk IDs: %w", err)
		}
		if len(oldIDs) > 0 {
			if err := ix.vectors.Delete(ctx, ix.collection, oldIDs); err != nil {
				logger.WarnContext(ctx, "failed to delete old vectors", "source", file.Source, "count", len(oldIDs), "error", err)
			}
			if err := ix.chunkRepo.DeleteByDocument(ctx, doc.ID); err != nil {
				return fmt.Errorf("failed to delete old chunks: %w", err)
			}
		}
	}

	if len(chunks) == 0 {
		logger.WarnContext(ctx, "no chunks generated", "source", file.Source)
		return nil
	}

	records := make([]*storage.ChunkRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = &storage.ChunkRecord{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			ChunkIndex: chunk.Index,
			Category:   file.Category,
			Text:       chunk.Text,
		}
	}

	for _, record := range records {
		if err := ix.chunkRepo.Insert(ctx, record); err != nil {
			return fmt.Errorf("failed to insert chunk: %w", err)
		}
	}

	if ix.embedder == nil {
		logger.DebugContext(ctx, "indexed without vectors", "source", file.Source, "chunks", len(chunks))
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	embeddings, err := ix.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}

	points := make([]vectorstore.Point, len(chunks))
	for i, record := range records {
		points[i] = vectorstore.Point{
			ID:  record.ID,
			Vec: embeddings[i],
			Meta: map[string]any{
				"document_id": doc.ID,
				"source":      file.Source,
				"category":    file.Category,
				"title":       title,
				"chunk_index": record.ChunkIndex,
				"text":        record.Text,
			},
		}
	}
	if err := ix.vectors.Upsert(ctx, ix.collection, points); err != nil {
		return fmt.Errorf("failed to upsert vectors: %w", err)
	}

	logger.InfoContext(ctx, "indexed document", "source", file.Source, "chunks", len(chunks), "title", title)
	return nil
}

// IndexAll scans the knowledge dir and indexes every file. Per-file
// failures are logged and skipped so one bad file cannot block the rest.
func (ix *Indexer) IndexAll(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	files, err := ScanDir(ctx, ix.dir)
	if err != nil {
		return fmt.Errorf("failed to scan knowledge dir: %w", err)
	}

	logger.InfoContext(ctx, "starting knowledge indexing", "total_files", len(files))

	var successCount, errorCount int
	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := ix.IndexFile(ctx, file); err != nil {
			errorCount++
			logger.ErrorContext(ctx, "failed to index file", "source", file.Source, "error", err)
			continue
		}
		successCount++
	}

	logger.InfoContext(ctx, "knowledge indexing completed", "total_files", len(files), "success", successCount, "errors", errorCount)

	if errorCount > 0 {
		return fmt.Errorf("indexing completed with %d errors", errorCount)
	}
	return nil
}
