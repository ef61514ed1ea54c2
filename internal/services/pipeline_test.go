package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartreply/internal/models"
	"smartreply/internal/nlp"
	"smartreply/pkg/classifier"
)

// stubClassifier is a scriptable model stage.
type stubClassifier struct {
	pred  classifier.Prediction
	err   error
	calls int
}

func (s *stubClassifier) Classify(ctx context.Context, text string, candidates []string) (classifier.Prediction, error) {
	s.calls++
	if s.err != nil {
		return classifier.Prediction{}, s.err
	}
	return s.pred, nil
}

// stubProvider is a scriptable completion provider.
type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	return s.reply, s.err
}
func (s *stubProvider) Name() string      { return "stub" }
func (s *stubProvider) ModelName() string { return "stub-model" }

func TestPipelineHeuristicFallbackWhenModelDisabled(t *testing.T) {
	p := NewPipeline(nil, NewReplyService(nil))

	res := p.ClassifyAndRespond(context.Background(), "Preciso saber o status do chamado 123")

	assert.Equal(t, models.CategoryStatus, res.PrimaryCategory)
	assert.Equal(t, models.OverallProductive, res.OverallCategory)
	assert.Equal(t, "Heuristic", res.Engine)
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)
	assert.Equal(t, nlp.TemplateReply(models.CategoryStatus), res.Reply)
}

func TestPipelinePrefersModelStage(t *testing.T) {
	stub := &stubClassifier{pred: classifier.Prediction{
		Label:      models.CategoryFinance,
		Confidence: 0.87654,
		Engine:     "ZeroShot (facebook/bart-large-mnli)",
	}}
	p := NewPipeline(stub, NewReplyService(nil))

	res := p.ClassifyAndRespond(context.Background(), "qualquer texto")

	assert.Equal(t, models.CategoryFinance, res.PrimaryCategory)
	assert.Equal(t, "ZeroShot (facebook/bart-large-mnli)", res.Engine)
	assert.Equal(t, 0.877, res.Confidence, "confidence is rounded to 3 decimals")
	assert.Equal(t, 1, stub.calls)
}

func TestPipelineModelFailureDegradesToHeuristic(t *testing.T) {
	stub := &stubClassifier{err: fmt.Errorf("inference endpoint down")}
	p := NewPipeline(stub, NewReplyService(nil))

	res := p.ClassifyAndRespond(context.Background(), "minha senha de acesso bloqueou")

	assert.Equal(t, models.CategoryAccess, res.PrimaryCategory)
	assert.Equal(t, "Heuristic", res.Engine)
}

func TestPipelineUnproductiveMapping(t *testing.T) {
	p := NewPipeline(nil, NewReplyService(nil))

	res := p.ClassifyAndRespond(context.Background(), "Feliz natal e boas festas!")
	assert.Equal(t, models.CategoryUnproductive, res.PrimaryCategory)
	assert.Equal(t, models.OverallUnproductive, res.OverallCategory)

	res = p.ClassifyAndRespond(context.Background(), "erro de timeout na api")
	assert.Equal(t, models.OverallProductive, res.OverallCategory)
}

func TestPipelineHashCoversRawInput(t *testing.T) {
	p := NewPipeline(nil, NewReplyService(nil))
	raw := "status  do\nchamado"

	res := p.ClassifyAndRespond(context.Background(), raw)

	sum := sha256.Sum256([]byte(raw))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.TextHash)
}

func TestReplyServiceUsesProvider(t *testing.T) {
	svc := NewReplyService(&stubProvider{reply: "  Resposta gerada.  "})
	out := svc.Reply(context.Background(), "texto", models.CategoryStatus)
	assert.Equal(t, "Resposta gerada.", out)
}

func TestReplyServiceFallsBackOnProviderError(t *testing.T) {
	svc := NewReplyService(&stubProvider{err: fmt.Errorf("quota exceeded")})
	out := svc.Reply(context.Background(), "texto", models.CategoryFinance)
	assert.Equal(t, nlp.TemplateReply(models.CategoryFinance), out)
}

func TestReplyServiceFallsBackOnEmptyCompletion(t *testing.T) {
	svc := NewReplyService(&stubProvider{reply: "   "})
	out := svc.Reply(context.Background(), "texto", models.CategoryDocuments)
	assert.Equal(t, nlp.TemplateReply(models.CategoryDocuments), out)
}

func TestReplyServiceNeverEmpty(t *testing.T) {
	svc := NewReplyService(nil)
	for _, category := range append(append([]string{}, models.Categories...), "desconhecida") {
		assert.NotEmpty(t, svc.Reply(context.Background(), "texto", category))
	}
}

func TestBuildReplyPromptTruncates(t *testing.T) {
	long := make([]rune, 4000)
	for i := range long {
		long[i] = 'é'
	}
	prompt := buildReplyPrompt(models.CategoryStatus, string(long))

	require.Contains(t, prompt, "Categoria: "+models.CategoryStatus)
	// The embedded body is capped at 2500 characters.
	assert.LessOrEqual(t, len([]rune(prompt)), 2500+200)
}
