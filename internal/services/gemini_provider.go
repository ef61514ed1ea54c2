package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the generative model used when none is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiCompletion implements CompletionProvider using the Google Gemini API.
type GeminiCompletion struct {
	client *genai.Client
	model  string
}

// NewGeminiCompletion creates a Gemini completion provider. Client
// construction talks to the credential layer and can fail; the caller treats
// that as the provider being permanently unavailable.
func NewGeminiCompletion(ctx context.Context, apiKey, model string) (*GeminiCompletion, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not provided")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	log.Infof("gemini completion provider initialized with model %s", model)
	return &GeminiCompletion{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *GeminiCompletion) Name() string { return "gemini" }

// ModelName returns the specific model identifier.
func (p *GeminiCompletion) ModelName() string { return p.model }

func (p *GeminiCompletion) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini completion provider is not initialized")
	}

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(replyTemperature)
	model.SetMaxOutputTokens(replyMaxTokens)

	var parts []genai.Part
	for _, m := range messages {
		switch m.Role {
		case ChatMessageRoleSystem:
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
		default:
			parts = append(parts, genai.Text(m.Content))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no user content to send to Gemini")
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no completion candidates returned")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini candidate carried no text parts")
	}
	return b.String(), nil
}

// Close releases the underlying client resources.
func (p *GeminiCompletion) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

var _ CompletionProvider = (*GeminiCompletion)(nil)
