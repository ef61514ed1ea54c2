package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. It is built once at startup and passed
// into components explicitly; nothing reads viper after LoadConfig returns.
type Config struct {
	AuditLogPath string `mapstructure:"audit_log_path"`
	ReportsDir   string `mapstructure:"reports_dir"`

	EnableZeroShot         bool   `mapstructure:"enable_zero_shot"`
	HFAPIToken             string `mapstructure:"hf_api_token"`
	ZeroShotTimeoutSeconds int    `mapstructure:"zero_shot_timeout_seconds"`

	ReplyProvider string `mapstructure:"reply_provider"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	GoogleAPIKey  string `mapstructure:"google_api_key"`

	Port                  int `mapstructure:"port"`
	MaxUploadMB           int `mapstructure:"max_upload_mb"`
	BatchPreviewLimit     int `mapstructure:"batch_preview_limit"`
	ClassificationWorkers int `mapstructure:"classification_workers"`
	MaxBatchItems         int `mapstructure:"max_batch_items"`
}

// MaxUploadBytes is the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

// LoadConfig reads an optional config.yaml from the working directory and
// overlays environment variables. A missing config file is fine; env vars and
// defaults carry the full surface.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("audit_log_path", "logs/email_events.jsonl")
	v.SetDefault("reports_dir", "reports")
	v.SetDefault("enable_zero_shot", true)
	v.SetDefault("zero_shot_timeout_seconds", 20)
	v.SetDefault("reply_provider", "openai")
	v.SetDefault("port", 7860)
	v.SetDefault("max_upload_mb", 8)
	v.SetDefault("batch_preview_limit", 50)
	v.SetDefault("classification_workers", 4)
	v.SetDefault("max_batch_items", 200)

	v.AutomaticEnv()

	// Explicit bindings so the conventional env var names work without a
	// prefix (OPENAI_API_KEY rather than SMARTREPLY_OPENAI_API_KEY).
	bindings := map[string]string{
		"audit_log_path":            "AUDIT_LOG_PATH",
		"reports_dir":               "REPORTS_DIR",
		"enable_zero_shot":          "ENABLE_ZERO_SHOT",
		"hf_api_token":              "HF_API_TOKEN",
		"zero_shot_timeout_seconds": "ZERO_SHOT_TIMEOUT_SECONDS",
		"reply_provider":            "REPLY_PROVIDER",
		"openai_api_key":            "OPENAI_API_KEY",
		"google_api_key":            "GOOGLE_API_KEY",
		"port":                      "PORT",
		"max_upload_mb":             "MAX_UPLOAD_MB",
		"batch_preview_limit":       "BATCH_PREVIEW_LIMIT",
		"classification_workers":    "CLASSIFICATION_WORKERS",
		"max_batch_items":           "MAX_BATCH_ITEMS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.ClassificationWorkers < 1 {
		config.ClassificationWorkers = 1
	}
	return &config, nil
}
