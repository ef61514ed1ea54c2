package app

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"smartreply/internal/audit"
	"smartreply/internal/config"
	"smartreply/internal/services"
	"smartreply/pkg/classifier"
)

// App holds every wired component. Construction happens once at startup;
// degraded capabilities (no model, no reply credential) leave the relevant
// field nil and the services fall back accordingly.
type App struct {
	Config *config.Config

	Audit    *audit.Recorder
	ZeroShot classifier.Classifier
	Reply    *services.ReplyService
	Pipeline *services.Pipeline
	Batch    *services.BatchService
}

// NewApp wires the application from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := os.MkdirAll(cfg.ReportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}

	app.Audit = audit.NewRecorder(cfg.AuditLogPath)
	app.initZeroShot()
	app.initReplyProvider()

	app.Pipeline = services.NewPipeline(app.ZeroShot, app.Reply)
	app.Batch = services.NewBatchService(app.Pipeline, app.Audit, cfg)

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initZeroShot() {
	if !a.Config.EnableZeroShot {
		log.Info("zero-shot classification disabled by configuration")
		return
	}
	a.ZeroShot = classifier.NewZeroShot(
		a.Config.HFAPIToken,
		classifier.WithTimeout(time.Duration(a.Config.ZeroShotTimeoutSeconds)*time.Second),
	)
}

// initReplyProvider builds the configured completion provider. Construction
// failure logs a warning and leaves replies on the template path for the
// process lifetime.
func (a *App) initReplyProvider() {
	var provider services.CompletionProvider
	var err error

	switch a.Config.ReplyProvider {
	case "gemini":
		provider, err = services.NewGeminiCompletion(context.Background(), a.Config.GoogleAPIKey, "")
	default:
		provider, err = services.NewOpenAICompletion(a.Config.OpenAIAPIKey, "")
	}
	if err != nil {
		log.Warnf("reply provider unavailable, using templates: %v", err)
		provider = nil
	}

	a.Reply = services.NewReplyService(provider)
}
