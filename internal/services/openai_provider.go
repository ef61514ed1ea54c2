package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// DefaultOpenAIModel is the chat model used for reply generation.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAICompletion implements CompletionProvider using the OpenAI chat API.
type OpenAICompletion struct {
	client *openai.Client
	model  string
}

// NewOpenAICompletion creates an OpenAI completion provider.
func NewOpenAICompletion(apiKey, model string) (*OpenAICompletion, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key not provided")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	client := openai.NewClient(apiKey)
	log.Infof("openai completion provider initialized with model %s", model)
	return &OpenAICompletion{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *OpenAICompletion) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (p *OpenAICompletion) ModelName() string { return p.model }

func (p *OpenAICompletion) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("openai completion provider is not initialized")
	}

	reqMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		reqMessages[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    reqMessages,
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ CompletionProvider = (*OpenAICompletion)(nil)
