package assistant

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_completer.go -package=mocks state101-assistant/internal/assistant ChatCompleter
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks state101-assistant/internal/assistant Embedder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retriever.go -package=mocks state101-assistant/internal/assistant Retriever

import (
	"context"

	"state101-assistant/internal/llm"
	"state101-assistant/internal/rag"
	"state101-assistant/internal/relevance"
)

// ChatCompleter is the slice of the chat client the assistant needs.
// Defined from the consumer's perspective.
type ChatCompleter interface {
	// Chat sends a single user message and returns the model's reply.
	Chat(ctx context.Context, message string) (string, error)
	// ChatWithMessages sends a full message list with explicit parameters.
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Embedder generates embedding vectors for texts. A nil Embedder disables
// the embedding route.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Retriever finds knowledge chunks relevant to a question for the
// generation fallback. A nil Retriever disables retrieval context.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]rag.Result, error)
}

// RelevanceGate classifies messages as in- or out-of-domain. A nil gate
// lets everything through.
type RelevanceGate interface {
	Check(ctx context.Context, message string) relevance.Verdict
}

// Translator rewrites a message into the pipeline's working language.
// A nil Translator leaves messages untouched; translation failures fall
// back to the original text.
type Translator interface {
	Translate(ctx context.Context, message string) (string, error)
}
