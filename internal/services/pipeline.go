package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"

	log "github.com/sirupsen/logrus"

	"smartreply/internal/models"
	"smartreply/internal/nlp"
	"smartreply/pkg/classifier"
)

// Pipeline composes normalization, the two-stage classifier and the reply
// generator into one classify-and-respond unit of work.
type Pipeline struct {
	zeroShot classifier.Classifier // nil disables the model-backed stage
	reply    *ReplyService
}

// NewPipeline builds a pipeline. zeroShot may be nil.
func NewPipeline(zeroShot classifier.Classifier, reply *ReplyService) *Pipeline {
	return &Pipeline{zeroShot: zeroShot, reply: reply}
}

// HashText returns the sha256 hex digest of text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ClassifyAndRespond runs the full pipeline over one raw text. The hash
// covers the input as given; classification and reply generation operate on
// the whitespace-normalized form.
func (p *Pipeline) ClassifyAndRespond(ctx context.Context, raw string) models.ProcessResult {
	text := nlp.Normalize(raw)
	pred := p.predict(ctx, text)

	return models.ProcessResult{
		PrimaryCategory: pred.Label,
		OverallCategory: models.OverallFromCategory(pred.Label),
		Confidence:      round3(pred.Confidence),
		Engine:          pred.Engine,
		Reply:           p.reply.Reply(ctx, text, pred.Label),
		TextHash:        HashText(raw),
	}
}

// predict runs the model-backed stage when available and falls back to the
// heuristic, which always yields a result. Model failures degrade silently.
func (p *Pipeline) predict(ctx context.Context, text string) classifier.Prediction {
	if p.zeroShot != nil {
		pred, err := p.zeroShot.Classify(ctx, text, models.Categories)
		if err == nil && pred.Label != "" {
			return pred
		}
		if err != nil {
			log.Warnf("zero-shot classification failed: %v", err)
		}
	}

	label, confidence := nlp.HeuristicClassify(text)
	return classifier.Prediction{
		Label:      label,
		Confidence: confidence,
		Engine:     nlp.HeuristicEngine,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
