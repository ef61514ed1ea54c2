package services

import "context"

// ChatMessageRole defines the role of the message sender (system, user, assistant).
type ChatMessageRole string

const (
	ChatMessageRoleSystem    ChatMessageRole = "system"
	ChatMessageRoleUser      ChatMessageRole = "user"
	ChatMessageRoleAssistant ChatMessageRole = "assistant" // "model" for Gemini
)

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// CompletionProvider generates chat responses. A provider that failed to
// construct is represented by a nil CompletionProvider upstream, not by a
// provider returning errors forever.
type CompletionProvider interface {
	GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
	Name() string      // provider name (e.g. "openai", "gemini")
	ModelName() string // specific model used
}
