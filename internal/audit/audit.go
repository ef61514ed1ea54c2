// Package audit appends classification events to a newline-delimited JSON
// log. It is a fire-and-forget sink: write failures are logged and swallowed
// so they can never affect the request that produced the event.
package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"smartreply/internal/models"
)

// Event is one append-only audit record.
type Event struct {
	ID              string  `json:"id"`
	Ts              float64 `json:"ts"`
	Route           string  `json:"route"`
	Filename        string  `json:"filename,omitempty"`
	TextHash        string  `json:"text_hash"`
	PrimaryCategory string  `json:"primary_category"`
	OverallCategory string  `json:"overall_category"`
	Confidence      float64 `json:"confidence"`
	Engine          string  `json:"engine"`
	Reply           string  `json:"reply,omitempty"`
}

// Recorder appends events to a single JSONL file, creating parent directories
// on demand. Concurrent appends rely on O_APPEND; no extra locking.
type Recorder struct {
	path string
}

// NewRecorder returns a recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// RecordClassification emits one event for a classified item. includeReply
// controls whether the generated reply is persisted (ZIP report rows carry
// it, plain API calls do not).
func (r *Recorder) RecordClassification(route, filename string, res models.ProcessResult, includeReply bool) {
	ev := Event{
		ID:              uuid.NewString(),
		Ts:              float64(time.Now().UnixMilli()) / 1000,
		Route:           route,
		Filename:        filename,
		TextHash:        res.TextHash,
		PrimaryCategory: res.PrimaryCategory,
		OverallCategory: res.OverallCategory,
		Confidence:      res.Confidence,
		Engine:          res.Engine,
	}
	if includeReply {
		ev.Reply = res.Reply
	}
	r.append(ev)
}

func (r *Recorder) append(ev Event) {
	if r == nil || r.path == "" {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Warnf("unable to encode audit event: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		log.Warnf("unable to create audit log dir: %v", err)
		return
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warnf("unable to open audit log %s: %v", r.path, err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(payload, '\n')); err != nil {
		log.Warnf("unable to write audit log %s: %v", r.path, err)
	}
}
