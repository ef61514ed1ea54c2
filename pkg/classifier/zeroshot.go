package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultZeroShotModel is the hosted zero-shot NLI model used for
// classification when no override is configured.
const DefaultZeroShotModel = "facebook/bart-large-mnli"

const defaultEndpoint = "https://api-inference.huggingface.co/models/"

// ZeroShot classifies text against candidate labels through a hosted
// zero-shot inference endpoint. The underlying HTTP client is built lazily on
// first use and the construction outcome sticks for the process lifetime: a
// failed setup leaves the classifier permanently unavailable rather than
// retrying per request.
type ZeroShot struct {
	model    string
	token    string
	endpoint string
	timeout  time.Duration

	once      sync.Once
	client    *http.Client
	available bool
}

// ZeroShotOption customizes a ZeroShot classifier.
type ZeroShotOption func(*ZeroShot)

// WithModel overrides the model identifier.
func WithModel(model string) ZeroShotOption {
	return func(z *ZeroShot) { z.model = model }
}

// WithEndpoint overrides the inference base URL (used by tests).
func WithEndpoint(url string) ZeroShotOption {
	return func(z *ZeroShot) { z.endpoint = url }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ZeroShotOption {
	return func(z *ZeroShot) { z.timeout = d }
}

// NewZeroShot creates a zero-shot classifier. The token may be empty; the
// hosted endpoint accepts anonymous calls at a reduced rate.
func NewZeroShot(token string, opts ...ZeroShotOption) *ZeroShot {
	z := &ZeroShot{
		model:    DefaultZeroShotModel,
		token:    token,
		endpoint: defaultEndpoint,
		timeout:  20 * time.Second,
	}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// Engine names the stage for result records, e.g.
// "ZeroShot (facebook/bart-large-mnli)".
func (z *ZeroShot) Engine() string {
	return fmt.Sprintf("ZeroShot (%s)", z.model)
}

func (z *ZeroShot) init() {
	z.once.Do(func() {
		if z.endpoint == "" {
			log.Warn("zero-shot classifier has no endpoint configured, disabling")
			return
		}
		z.client = &http.Client{Timeout: z.timeout}
		z.available = true
		log.Infof("zero-shot classifier initialized with model %s", z.model)
	})
}

type zeroShotRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
	} `json:"parameters"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify returns the top-scoring candidate label. Any transport or decoding
// failure surfaces as an error; callers treat that as "stage yielded nothing"
// and fall through to the next stage.
func (z *ZeroShot) Classify(ctx context.Context, text string, candidates []string) (Prediction, error) {
	z.init()
	if !z.available {
		return Prediction{}, fmt.Errorf("zero-shot classifier unavailable")
	}

	reqBody := zeroShotRequest{Inputs: text}
	reqBody.Parameters.CandidateLabels = candidates
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Prediction{}, fmt.Errorf("encode zero-shot request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.endpoint+z.model, bytes.NewReader(payload))
	if err != nil {
		return Prediction{}, fmt.Errorf("build zero-shot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if z.token != "" {
		req.Header.Set("Authorization", "Bearer "+z.token)
	}

	resp, err := z.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("zero-shot call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		hint, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Prediction{}, fmt.Errorf("zero-shot call: status %d: %s", resp.StatusCode, string(hint))
	}

	var parsed zeroShotResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Prediction{}, fmt.Errorf("decode zero-shot response: %w", err)
	}
	if len(parsed.Labels) == 0 || len(parsed.Scores) == 0 {
		return Prediction{}, fmt.Errorf("zero-shot response carried no labels")
	}

	return Prediction{
		Label:      parsed.Labels[0],
		Confidence: parsed.Scores[0],
		Engine:     z.Engine(),
	}, nil
}

var _ Classifier = (*ZeroShot)(nil)
