package assistant

import (
	"context"
	"sort"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/facts"
	"state101-assistant/internal/faq"
	"state101-assistant/internal/knowledge"
	"state101-assistant/internal/router"
)

// snapshot is one immutable view of everything the routing pipeline reads:
// the compiled intent index, the knowledge-base answer overrides, the
// grounding facts, and the phrase embeddings. Refresh builds a complete
// replacement and swaps it in atomically, so in-flight requests always see
// a consistent set.
type snapshot struct {
	index      *router.Index
	overrides  map[string]string
	facts      *facts.Record
	phrases    []router.Entry
	phraseVecs [][]float32
}

// faqKeys returns the literal FAQ keys in sorted order so snapshot builds
// are deterministic.
func faqKeys() []string {
	keys := make([]string, 0, len(faq.Responses))
	for key := range faq.Responses {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// newSnapshot builds a snapshot from the given overrides, without phrase
// vectors.
func newSnapshot(overrides map[string]string) *snapshot {
	index := router.NewIndex(faq.IntentSynonyms, faqKeys())
	return &snapshot{
		index:     index,
		overrides: overrides,
		facts:     facts.Pack(overrides),
		phrases:   index.Entries(),
	}
}

// Refresh rebuilds the snapshot from the knowledge dir and swaps it in.
// When an embedder is configured the routing phrases are re-embedded; an
// embedding failure aborts the refresh and keeps the old snapshot serving.
func (a *Assistant) Refresh(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	overrides := map[string]string{}
	if a.knowledgeDir != "" {
		loaded, err := knowledge.Overrides(ctx, a.knowledgeDir)
		if err != nil {
			return WrapError(err, "failed to load knowledge overrides")
		}
		overrides = loaded
	}

	snap := newSnapshot(overrides)

	if a.embedder != nil {
		texts := make([]string, len(snap.phrases))
		for i, entry := range snap.phrases {
			texts[i] = entry.Phrase
		}
		vecs, err := a.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return WrapError(err, "failed to embed routing phrases")
		}
		snap.phraseVecs = vecs
	}

	a.snap.Store(snap)
	logger.InfoContext(ctx, "snapshot refreshed",
		"overrides", len(overrides),
		"phrases", len(snap.phrases),
		"embedded", snap.phraseVecs != nil,
	)
	return nil
}
