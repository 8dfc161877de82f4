package relevance

import (
	"context"
	"math"
	"strings"
	"sync"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/faq"
	"state101-assistant/internal/llm"
	"state101-assistant/internal/router"
)

// Verdict is the outcome of a relevance check.
type Verdict int

const (
	// VerdictAllowed means the message may proceed through the pipeline.
	VerdictAllowed Verdict = iota
	// VerdictOfftopic means the message is outside the visa-assistance domain.
	VerdictOfftopic
	// VerdictThirdPartyPlace means the message asks about some unrelated
	// place or business, not our office.
	VerdictThirdPartyPlace
)

// Mode selects how the gate decides ambiguous messages.
type Mode string

const (
	// ModeHeuristic uses keyword lists plus optional embedding similarity.
	ModeHeuristic Mode = "heuristic"
	// ModeLLM asks the chat model to classify ambiguous messages.
	ModeLLM Mode = "llm"
)

// classifierCacheCap bounds the LLM verdict cache. When the cap is hit the
// whole cache is dropped; per-entry eviction is not worth the bookkeeping
// at this size.
const classifierCacheCap = 500

// domainAnchors are reference texts describing what the assistant covers.
// Message embeddings are compared against these for the similarity check.
var domainAnchors = []string{
	"US and Canada tourist visa application assistance and consulting",
	"visa requirements, documents, fees, and appointment booking",
	"travel agency office location, contact details, and opening hours",
}

// ChatCompleter is the slice of the chat client the gate needs.
type ChatCompleter interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Gate decides whether a message belongs to the visa-assistance domain
// before any routing work is spent on it. The block-list always wins over
// the allow-list. Backend failures in the embedding check never reject a
// message; classifier failures follow the FailOpen setting.
type Gate struct {
	mode            Mode
	classifier      ChatCompleter
	embedder        *llm.EmbeddingsClient
	anchors         [][]float32
	embedThreshold  float64
	rejectMinLen    int
	thirdPartyGuard bool
	failOpen        bool

	mu    sync.Mutex
	cache map[string]bool
}

// Options configures a Gate.
type Options struct {
	// Mode selects heuristic or LLM classification for ambiguous messages.
	Mode Mode
	// Classifier is only consulted in ModeLLM.
	Classifier ChatCompleter
	// Embedder may be nil, which disables the similarity check.
	Embedder *llm.EmbeddingsClient
	// EmbedThreshold is the minimum anchor cosine similarity.
	EmbedThreshold float64
	// RejectMinLen is the token count at which unmatched messages are
	// rejected instead of allowed.
	RejectMinLen int
	// ThirdPartyGuard enables the unrelated-place guard.
	ThirdPartyGuard bool
	// FailOpen allows messages through when the LLM classifier errors.
	FailOpen bool
}

// NewGate creates a relevance gate.
func NewGate(opts Options) *Gate {
	return &Gate{
		mode:            opts.Mode,
		classifier:      opts.Classifier,
		embedder:        opts.Embedder,
		embedThreshold:  opts.EmbedThreshold,
		rejectMinLen:    opts.RejectMinLen,
		thirdPartyGuard: opts.ThirdPartyGuard,
		failOpen:        opts.FailOpen,
		cache:           make(map[string]bool),
	}
}

// PrimeAnchors embeds the domain anchor texts. Call once at startup when an
// embedder is configured; without it the gate skips the similarity check.
func (g *Gate) PrimeAnchors(ctx context.Context) error {
	if g.embedder == nil {
		return nil
	}
	vecs, err := g.embedder.EmbedTexts(ctx, domainAnchors)
	if err != nil {
		return err
	}
	g.anchors = vecs
	return nil
}

// Check classifies one message. It never returns an error: failures in the
// embedding or classifier backends resolve to VerdictAllowed.
func (g *Gate) Check(ctx context.Context, message string) Verdict {
	normalized := router.Normalize(message)
	tokens := router.Tokenize(normalized)

	if g.thirdPartyGuard && g.isThirdPartyPlace(normalized) {
		return VerdictThirdPartyPlace
	}

	// Block-list first: "pizza hours" is about pizza, not our hours.
	if matchesAny(normalized, tokens, faq.OfftopicKeywords) {
		return VerdictOfftopic
	}

	// Short messages (greetings, single topic words) always pass.
	if len(tokens) <= 3 {
		return VerdictAllowed
	}

	if matchesAny(normalized, tokens, faq.RelevantKeywords) {
		return VerdictAllowed
	}

	if g.mode == ModeLLM && g.classifier != nil {
		return g.classify(ctx, normalized)
	}

	if g.embeddingMatch(ctx, message) {
		return VerdictAllowed
	}

	// Long messages with no domain signal at all are off-topic.
	if len(tokens) >= g.rejectMinLen {
		return VerdictOfftopic
	}

	return VerdictAllowed
}

// isThirdPartyPlace reports whether the message names an unrelated place
// or business without any first-person reference to our office.
func (g *Gate) isThirdPartyPlace(normalized string) bool {
	tokens := router.Tokenize(normalized)
	if !matchesAny(normalized, tokens, faq.ThirdPartyPlaceTerms) {
		return false
	}
	for _, marker := range faq.FirstPersonMarkers {
		if strings.Contains(normalized, marker) {
			return false
		}
	}
	return true
}

// embeddingMatch reports whether the message is semantically close to any
// domain anchor. Backend failures count as no match.
func (g *Gate) embeddingMatch(ctx context.Context, message string) bool {
	if g.embedder == nil || len(g.anchors) == 0 {
		return false
	}

	vecs, err := g.embedder.EmbedTexts(ctx, []string{message})
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "gate embedding failed", "error", err)
		return false
	}

	for _, anchor := range g.anchors {
		if CosineSimilarity(vecs[0], anchor) >= g.embedThreshold {
			return true
		}
	}
	return false
}

// classify asks the chat model for a yes/no domain verdict, caching results
// by normalized message. Classifier failures fail open.
func (g *Gate) classify(ctx context.Context, normalized string) Verdict {
	g.mu.Lock()
	if relevant, ok := g.cache[normalized]; ok {
		g.mu.Unlock()
		if relevant {
			return VerdictAllowed
		}
		return VerdictOfftopic
	}
	g.mu.Unlock()

	prompt := "You are a strict topic classifier for a US/Canada visa consulting service. " +
		"Decide if the user message is about visas, travel documents, appointments, fees, " +
		"or the agency's office (location, hours, contact). " +
		"Reply with exactly one word, YES or NO.\n\nMessage: " + normalized

	reply, err := g.classifier.Chat(ctx, prompt)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "gate classifier failed", "error", err, "fail_open", g.failOpen)
		if g.failOpen {
			return VerdictAllowed
		}
		return VerdictOfftopic
	}

	relevant := strings.Contains(strings.ToUpper(reply), "YES")

	g.mu.Lock()
	if len(g.cache) >= classifierCacheCap {
		g.cache = make(map[string]bool)
	}
	g.cache[normalized] = relevant
	g.mu.Unlock()

	if relevant {
		return VerdictAllowed
	}
	return VerdictOfftopic
}

// matchesAny reports whether any keyword appears in the message. Single
// words match whole tokens; multi-word phrases match as substrings.
func matchesAny(normalized string, tokens []string, keywords []string) bool {
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}
	for _, keyword := range keywords {
		if strings.ContainsRune(keyword, ' ') {
			if strings.Contains(normalized, keyword) {
				return true
			}
			continue
		}
		if tokenSet[keyword] {
			return true
		}
	}
	return false
}

// CosineSimilarity computes the cosine similarity of two vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
