package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"smartreply/internal/audit"
	"smartreply/internal/config"
	"smartreply/internal/models"
)

// BatchService runs the pipeline over single items and batches, records audit
// events, and enforces the client-facing size limits.
type BatchService struct {
	pipeline *Pipeline
	audit    *audit.Recorder
	cfg      *config.Config
}

// NewBatchService creates a BatchService.
func NewBatchService(pipeline *Pipeline, recorder *audit.Recorder, cfg *config.Config) *BatchService {
	return &BatchService{pipeline: pipeline, audit: recorder, cfg: cfg}
}

// EnsurePayloadLimit rejects payloads over the configured upload cap.
func (s *BatchService) EnsurePayloadLimit(sizeBytes int64) error {
	if sizeBytes > s.cfg.MaxUploadBytes() {
		return &RequestError{
			Status:  http.StatusRequestEntityTooLarge,
			Code:    "payload_too_large",
			Message: fmt.Sprintf("Payload excede o limite de %d MB.", s.cfg.MaxUploadMB),
		}
	}
	return nil
}

// ProcessSingle classifies one text and records an audit event for route.
func (s *BatchService) ProcessSingle(ctx context.Context, content, route string) models.ProcessResult {
	result := s.pipeline.ClassifyAndRespond(ctx, content)
	s.audit.RecordClassification(route, "", result, false)
	return result
}

// ProcessBatch classifies a JSON batch. Submitting more items than the
// configured maximum is a rejection, never a truncation. Results preserve
// input order.
func (s *BatchService) ProcessBatch(ctx context.Context, texts []string) ([]models.ProcessResult, error) {
	if len(texts) > s.cfg.MaxBatchItems {
		return nil, &RequestError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "batch_too_large",
			Message: fmt.Sprintf("Lote excede o limite de %d registros.", s.cfg.MaxBatchItems),
		}
	}

	normalized := make([]string, len(texts))
	for i, t := range texts {
		normalized[i] = strings.TrimSpace(t)
	}

	results := s.ClassifyMany(ctx, normalized)
	for _, result := range results {
		s.audit.RecordClassification("/api/batch", "", result, false)
	}
	return results, nil
}

// ClassifyMany runs the pipeline over texts bounded by the configured worker
// count. The admission gate is a fixed-size channel semaphore; results are
// collected positionally so completion order never reorders the output.
func (s *BatchService) ClassifyMany(ctx context.Context, texts []string) []models.ProcessResult {
	workers := s.cfg.ClassificationWorkers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	results := make([]models.ProcessResult, len(texts))

	var wg sync.WaitGroup
	for i := range texts {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer func() {
				<-sem
				wg.Done()
			}()
			results[i] = s.pipeline.ClassifyAndRespond(ctx, texts[i])
		}(i)
	}
	wg.Wait()

	return results
}
