package assistant

import (
	"context"
	"strings"

	"state101-assistant/internal/contextutil"
	"state101-assistant/internal/faq"
	"state101-assistant/internal/llm"
	"state101-assistant/internal/rag"
)

// generateMaxTokens bounds fallback replies; canned answers set the tone
// and none of them run long.
const generateMaxTokens = 512

// codeMarkers in a model reply mean it drifted into writing code, which the
// widget never does regardless of what the user asked for.
var codeMarkers = []string{
	"```",
	"<code>",
	"def ",
	"function(",
	"console.log",
	"print(",
	"import ",
	"#include",
	"public static void",
}

// generate produces a model-written answer grounded in the facts record
// and retrieved knowledge chunks. Rate-limit and upstream failures resolve
// to the busy message; replies that look like code are replaced with the
// refusal.
func (a *Assistant) generate(ctx context.Context, snap *snapshot, message string) Reply {
	logger := contextutil.LoggerFromContext(ctx)

	if a.chat == nil || !a.limiter.Allow() {
		return a.busyReply(snap)
	}

	system := faq.SystemPrompt + "\n\n" + faq.FactsInstructions + "\n\n" + snap.facts.Prompt()

	if a.ragEnabled && a.retriever != nil {
		results, err := a.retriever.Retrieve(ctx, message, a.ragTopK)
		if err != nil {
			logger.WarnContext(ctx, "retrieval failed, generating without context", "error", err)
		} else if block := rag.FormatContext(results); block != "" {
			system += "\n\n" + block
		}
	}

	reply, err := a.chat.ChatWithMessages(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: message},
	}, llm.ChatParams{MaxTokens: generateMaxTokens})
	if err != nil {
		logger.ErrorContext(ctx, "generation failed", "error", err)
		return a.busyReply(snap)
	}

	if looksLikeCode(reply) {
		logger.InfoContext(ctx, "generated reply refused", "reason", "code_markers")
		return Reply{Answer: faq.CodeRefusalMessage, Source: SourceRefused}
	}

	return Reply{Answer: strings.TrimSpace(reply), Source: SourceGenerated}
}

// compose handles reshaping requests (tables, summaries) over our fixed
// facts. It shares the generation limiter: both paths spend a model call.
func (a *Assistant) compose(ctx context.Context, snap *snapshot, message string) Reply {
	logger := contextutil.LoggerFromContext(ctx)

	if a.chat == nil || !a.limiter.Allow() {
		return a.busyReply(snap)
	}

	system := faq.SystemPrompt + "\n\n" + faq.FactsInstructions + "\n\n" + snap.facts.Prompt() +
		"\n\nThe user wants the information reshaped (for example as a table or summary). " +
		"Use ONLY the facts above; do not add or invent any detail."

	reply, err := a.chat.ChatWithMessages(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: message},
	}, llm.ChatParams{MaxTokens: generateMaxTokens})
	if err != nil {
		logger.ErrorContext(ctx, "composition failed", "error", err)
		return a.busyReply(snap)
	}

	if looksLikeCode(reply) {
		return Reply{Answer: faq.CodeRefusalMessage, Source: SourceRefused}
	}

	return Reply{Answer: strings.TrimSpace(reply), Source: SourceComposed}
}

// busyReply is the canned high-traffic answer with our contact details
// appended so the user always has a way forward.
func (a *Assistant) busyReply(snap *snapshot) Reply {
	return Reply{Answer: faq.BusyMessagePrefix + snap.facts.Contact, Source: SourceBusy}
}

// looksLikeCode reports whether a model reply contains code markers.
func looksLikeCode(reply string) bool {
	lower := strings.ToLower(reply)
	for _, marker := range codeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
