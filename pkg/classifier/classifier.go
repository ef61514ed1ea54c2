package classifier

import "context"

// Prediction holds one classifier verdict over a fixed label set.
type Prediction struct {
	Label      string
	Confidence float64
	Engine     string
}

// Classifier assigns one label from candidates to a text.
type Classifier interface {
	Classify(ctx context.Context, text string, candidates []string) (Prediction, error)
}
