// Package rag retrieves knowledge-base chunks relevant to a user question
// for the generation fallback. Retrieval is vector search when embeddings
// are configured and a lexical token-set scan otherwise, so the fallback
// keeps working on deployments with no embedding backend.
package rag

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/llm"
	"state101-assistant/internal/router"
	"state101-assistant/internal/storage"
	"state101-assistant/internal/vectorstore"
)

// lexicalFloor is the minimum token-set score (0-100) for a chunk to count
// as relevant in the lexical path.
const lexicalFloor = 45

// Result is one retrieved chunk with its provenance.
type Result struct {
	Text     string
	Source   string
	Category string
	Score    float64
}

// Retriever finds knowledge chunks for a query.
type Retriever struct {
	embedder   *llm.EmbeddingsClient
	vectors    vectorstore.VectorStore
	chunks     storage.ChunkStore
	collection string
}

// NewRetriever creates a retriever. embedder may be nil, which forces the
// lexical path.
func NewRetriever(embedder *llm.EmbeddingsClient, vectors vectorstore.VectorStore, chunks storage.ChunkStore, collection string) *Retriever {
	return &Retriever{
		embedder:   embedder,
		vectors:    vectors,
		chunks:     chunks,
		collection: collection,
	}
}

// Retrieve returns up to k chunks relevant to the query, best first.
// Vector search errors degrade to the lexical path rather than failing the
// whole chat turn.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	if r.embedder != nil {
		results, err := r.vectorSearch(ctx, query, k)
		if err == nil {
			return results, nil
		}
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "vector retrieval failed, using lexical fallback", "error", err)
	}

	return r.lexicalSearch(ctx, query, k)
}

// vectorSearch embeds the query and searches the vector store.
func (r *Retriever) vectorSearch(ctx context.Context, query string, k int) ([]Result, error) {
	vecs, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := r.vectors.Search(ctx, r.collection, vecs[0], k, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search vectors: %w", err)
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		text, _ := hit.Meta["text"].(string)
		if text == "" {
			// Older points without inline text resolve through SQLite
			chunk, err := r.chunks.GetByID(ctx, hit.PointID)
			if err != nil {
				continue
			}
			text = chunk.Text
		}
		source, _ := hit.Meta["source"].(string)
		category, _ := hit.Meta["category"].(string)
		results = append(results, Result{
			Text:     text,
			Source:   source,
			Category: category,
			Score:    float64(hit.Score),
		})
	}
	return results, nil
}

// lexicalSearch ranks all stored chunks by token-set similarity to the
// query. The corpus is a few hundred chunks at most; a linear scan is fine.
func (r *Retriever) lexicalSearch(ctx context.Context, query string, k int) ([]Result, error) {
	chunks, err := r.chunks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks: %w", err)
	}

	normalized := router.Normalize(query)

	var results []Result
	for _, chunk := range chunks {
		score := router.TokenSetRatio(normalized, router.Normalize(chunk.Text))
		if score < lexicalFloor {
			continue
		}
		results = append(results, Result{
			Text:     chunk.Text,
			Source:   chunk.DocumentID,
			Category: chunk.Category,
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// FormatContext renders retrieved chunks as a CONTEXT block for the
// generation prompt. Returns "" when nothing was retrieved.
func FormatContext(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("CONTEXT:\n")
	for i, res := range results {
		b.WriteString(fmt.Sprintf("[%d]", i+1))
		if res.Category != "" {
			b.WriteString(" (")
			b.WriteString(res.Category)
			b.WriteString(")")
		}
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(res.Text))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
