// Package assistant implements the layered reply pipeline: cheap
// deterministic matchers first, semantic matchers next, and the language
// model last. Every layer that answers short-circuits the rest, so most
// traffic never touches the model at all.
package assistant

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/time/rate"

	"state101-assistant/internal/config"
	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/facts"
	"state101-assistant/internal/faq"
	"state101-assistant/internal/relevance"
	"state101-assistant/internal/router"
)

// Source identifies which pipeline layer produced a reply.
type Source string

const (
	SourceGreeting   Source = "greeting"
	SourceGuard      Source = "guard"
	SourceRejected   Source = "rejected"
	SourceFused      Source = "fused"
	SourceIntent     Source = "intent"
	SourceFuzzy      Source = "fuzzy"
	SourceEmbedding  Source = "embedding"
	SourceOverlap    Source = "overlap"
	SourceForm       Source = "form"
	SourceComposed   Source = "composed"
	SourceClassified Source = "classified"
	SourceStrict     Source = "strict"
	SourceGenerated  Source = "generated"
	SourceBusy       Source = "busy"
	SourceRefused    Source = "refused"
)

// Reply is the assistant's answer to one message.
type Reply struct {
	Answer string
	Source Source
	Intent string
}

// Assistant routes user messages to answers.
type Assistant struct {
	gate       RelevanceGate
	chat       ChatCompleter
	embedder   Embedder
	retriever  Retriever
	translator Translator
	limiter    *rate.Limiter

	knowledgeDir       string
	semanticThreshold  float64
	embeddingThreshold float64
	strictMode         bool
	ragEnabled         bool
	ragTopK            int

	snap atomic.Pointer[snapshot]
}

// New creates an assistant. gate, embedder, and retriever may each be nil,
// disabling the corresponding layer. The assistant is usable immediately
// with the compiled-in answers; call Refresh to load knowledge overrides
// and phrase vectors.
func New(cfg *config.Config, gate RelevanceGate, chat ChatCompleter, embedder Embedder, retriever Retriever) *Assistant {
	a := &Assistant{
		gate:               gate,
		chat:               chat,
		embedder:           embedder,
		retriever:          retriever,
		limiter:            rate.NewLimiter(rate.Limit(cfg.GenerateRate), cfg.GenerateBurst),
		knowledgeDir:       cfg.KnowledgeDir,
		semanticThreshold:  cfg.SemanticThreshold,
		embeddingThreshold: cfg.EmbeddingThreshold,
		strictMode:         cfg.StrictMode,
		ragEnabled:         cfg.RAGEnabled,
		ragTopK:            cfg.RAGTopK,
	}
	a.snap.Store(newSnapshot(nil))
	return a
}

// WithTranslator sets an optional translation step applied before routing.
func (a *Assistant) WithTranslator(t Translator) *Assistant {
	a.translator = t
	return a
}

// Facts returns the current grounding facts record.
func (a *Assistant) Facts() *facts.Record {
	return a.snap.Load().facts
}

// Respond runs one message through the pipeline.
func (a *Assistant) Respond(ctx context.Context, message string) (Reply, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(message) == "" {
		return Reply{}, &ValidationError{Field: "message", Message: "cannot be empty"}
	}

	if a.translator != nil {
		translated, err := a.translator.Translate(ctx, message)
		if err != nil {
			logger.WarnContext(ctx, "translation failed, routing original text", "error", err)
		} else if strings.TrimSpace(translated) != "" {
			message = translated
		}
	}

	snap := a.snap.Load()
	normalized := router.Normalize(message)

	if isGreeting(normalized) {
		return Reply{Answer: faq.GreetingMessage, Source: SourceGreeting}, nil
	}

	if a.gate != nil {
		switch a.gate.Check(ctx, message) {
		case relevance.VerdictThirdPartyPlace:
			logger.InfoContext(ctx, "message guarded", "reason", "third_party_place")
			return Reply{Answer: faq.RejectionMessage, Source: SourceGuard}, nil
		case relevance.VerdictOfftopic:
			logger.InfoContext(ctx, "message rejected", "reason", "offtopic")
			return Reply{Answer: faq.RejectionMessage, Source: SourceRejected}, nil
		}
	}

	// Two or more distinct whitelisted topics in one message get their
	// answers fused instead of first-match-wins picking just one.
	if candidates := snap.index.FusionCandidates(message); len(candidates) >= 2 {
		if answer := router.FuseIntents(candidates, snap.overrides); answer != "" {
			return Reply{Answer: answer, Source: SourceFused, Intent: strings.Join(candidates, "+")}, nil
		}
	}

	if intent := snap.index.MatchIntent(message); intent != "" {
		if answer := faq.Canonical(intent, snap.overrides); answer != "" {
			return Reply{Answer: answer, Source: SourceIntent, Intent: intent}, nil
		}
		// Strict mode never invents text for a recognized intent that has
		// no canonical answer; unrecognized messages still fall through to
		// the grounded generation layer.
		if a.strictMode {
			return Reply{Answer: faq.StrictModeMessage, Source: SourceStrict, Intent: intent}, nil
		}
	}

	if intent, score, ok := snap.index.FuzzyRoute(message, a.semanticThreshold); ok {
		if answer := faq.Canonical(intent, snap.overrides); answer != "" {
			logger.DebugContext(ctx, "fuzzy route", "intent", intent, "score", score)
			return Reply{Answer: answer, Source: SourceFuzzy, Intent: intent}, nil
		}
		if a.strictMode {
			return Reply{Answer: faq.StrictModeMessage, Source: SourceStrict, Intent: intent}, nil
		}
	}

	if intent, ok := a.embedRoute(ctx, snap, message); ok {
		if answer := faq.Canonical(intent, snap.overrides); answer != "" {
			return Reply{Answer: answer, Source: SourceEmbedding, Intent: intent}, nil
		}
	}

	if intent, ok := router.OverlapRoute(message); ok {
		if answer := faq.Canonical(intent, snap.overrides); answer != "" {
			return Reply{Answer: answer, Source: SourceOverlap, Intent: intent}, nil
		}
	}

	if wantsApplicationForm(normalized) {
		return Reply{Answer: faq.FormHintMessage, Source: SourceForm}, nil
	}

	if wantsComposition(normalized) {
		return a.compose(ctx, snap, message), nil
	}

	if intent := a.classifyIntent(ctx, message); intent != "" {
		if answer := faq.Canonical(intent, snap.overrides); answer != "" {
			return Reply{Answer: answer, Source: SourceClassified, Intent: intent}, nil
		}
	}

	return a.generate(ctx, snap, message), nil
}

// embedRoute matches the message against the embedded routing phrases.
// Any backend failure means no match; the pipeline has cheaper layers left.
func (a *Assistant) embedRoute(ctx context.Context, snap *snapshot, message string) (string, bool) {
	if a.embedder == nil || len(snap.phraseVecs) == 0 {
		return "", false
	}

	vecs, err := a.embedder.EmbedTexts(ctx, []string{message})
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "embedding route failed", "error", err)
		return "", false
	}

	bestIdx := -1
	bestSim := 0.0
	for i, phraseVec := range snap.phraseVecs {
		if sim := relevance.CosineSimilarity(vecs[0], phraseVec); sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestSim < a.embeddingThreshold {
		return "", false
	}
	return snap.phrases[bestIdx].Intent, true
}

// classifyIntent asks the chat model to name the single best canned intent
// for the message, or NONE. Errors and unknown answers mean no match.
func (a *Assistant) classifyIntent(ctx context.Context, message string) string {
	if a.chat == nil {
		return ""
	}

	intents := faq.Intents()
	prompt := "Classify the user message into exactly one of these intents:\n" +
		strings.Join(intents, ", ") +
		"\n\nReply with the intent name only, or NONE if none fits.\n\nMessage: " + message

	reply, err := a.chat.Chat(ctx, prompt)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "intent classifier failed", "error", err)
		return ""
	}

	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(reply), `"'.`))
	for _, intent := range intents {
		if cleaned == intent {
			return intent
		}
	}
	return ""
}

// isGreeting reports whether the normalized message is just a greeting.
func isGreeting(normalized string) bool {
	for _, greeting := range faq.Greetings {
		if normalized == greeting {
			return true
		}
	}
	return false
}

// wantsApplicationForm detects requests for the application form itself.
func wantsApplicationForm(normalized string) bool {
	tokens := router.TokenSet(normalized)
	return tokens["form"] || (tokens["apply"] && tokens["online"]) || strings.Contains(normalized, "application form")
}

// wantsComposition detects requests to reshape our information (tables,
// summaries) rather than answer a single question.
func wantsComposition(normalized string) bool {
	tokens := router.TokenSet(normalized)
	return tokens["table"] || tokens["summary"] || tokens["summarize"]
}
