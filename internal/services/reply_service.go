package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"smartreply/internal/nlp"
)

// Fixed generation parameters for reply completions.
const (
	replyTemperature = 0.3
	replyMaxTokens   = 220

	// replySystemPrompt and the prompt shape below are part of the output
	// contract with the previous service generation.
	replySystemPrompt = "Voce e um assistente de atendimento ao cliente."

	// replyPromptLimit caps how much of the email body is embedded in the
	// prompt, counted in characters.
	replyPromptLimit = 2500
)

// ReplyService produces a reply for a classified email. When a completion
// provider is configured it is preferred; any failure falls back to the fixed
// per-category template, so Reply never returns an empty string and never
// fails.
type ReplyService struct {
	provider CompletionProvider
}

// NewReplyService wraps a provider; nil means template-only operation.
func NewReplyService(provider CompletionProvider) *ReplyService {
	return &ReplyService{provider: provider}
}

// Reply generates a reply for text classified under category.
func (s *ReplyService) Reply(ctx context.Context, text, category string) string {
	if s == nil || s.provider == nil {
		return nlp.TemplateReply(category)
	}

	out, err := s.provider.GenerateChatCompletion(ctx, []ChatMessage{
		{Role: ChatMessageRoleSystem, Content: replySystemPrompt},
		{Role: ChatMessageRoleUser, Content: buildReplyPrompt(category, text)},
	})
	if err != nil {
		log.Warnf("%s reply failed, falling back to template: %v", s.provider.Name(), err)
		return nlp.TemplateReply(category)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		log.Warnf("%s returned an empty reply, falling back to template", s.provider.Name())
		return nlp.TemplateReply(category)
	}
	return out
}

func buildReplyPrompt(category, text string) string {
	runes := []rune(text)
	if len(runes) > replyPromptLimit {
		text = string(runes[:replyPromptLimit])
	}
	return fmt.Sprintf(
		"Categoria: %s\n\n"+
			"Escreva uma resposta de email profissional, objetiva e cordial em PT-BR, "+
			"com ate 120 palavras. Se precisar de dados, liste-os em marcadores.\n\n"+
			"Texto recebido:\n%s",
		category, text,
	)
}
