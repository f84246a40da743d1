package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// DatabaseURL backs the persisted viewer preference store. When empty the
	// preference store falls back to process memory.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBMinConns  int32  `envconfig:"YT_DB_MIN_CONNS" default:"1"`
	DBMaxConns  int32  `envconfig:"YT_DB_MAX_CONNS" default:"4"`

	TimedTextBaseURL string `envconfig:"TIMEDTEXT_BASE_URL" default:"https://www.youtube.com/api/timedtext"`
	WatchPageBaseURL string `envconfig:"WATCH_PAGE_BASE_URL" default:"https://www.youtube.com"`
	CaptionLanguage  string `envconfig:"CAPTION_LANGUAGE" default:"en"`

	TranslateBaseURL  string `envconfig:"TRANSLATE_BASE_URL" default:"https://translate.googleapis.com/translate_a/single"`
	MaxChunkChars     int    `envconfig:"MAX_CHUNK_CHARS" default:"500"`
	DefaultTargetLang string `envconfig:"DEFAULT_TARGET_LANG" default:"en"`

	SummaryEndpoint string `envconfig:"SUMMARY_ENDPOINT" default:"https://api-inference.huggingface.co/models/facebook/bart-large-cnn"`
	SummaryToken    string `envconfig:"SUMMARY_TOKEN" default:""`
	SummaryMaxLen   int    `envconfig:"SUMMARY_MAX_LENGTH" default:"150"`
	SummaryMinLen   int    `envconfig:"SUMMARY_MIN_LENGTH" default:"40"`

	SettleDelay    time.Duration `envconfig:"SETTLE_DELAY" default:"2s"`
	SettleAttempts int           `envconfig:"SETTLE_ATTEMPTS" default:"5"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TimedTextBaseURL) == "" {
		return fmt.Errorf("TIMEDTEXT_BASE_URL is required")
	}
	if strings.TrimSpace(c.WatchPageBaseURL) == "" {
		return fmt.Errorf("WATCH_PAGE_BASE_URL is required")
	}
	if strings.TrimSpace(c.TranslateBaseURL) == "" {
		return fmt.Errorf("TRANSLATE_BASE_URL is required")
	}
	if strings.TrimSpace(c.SummaryEndpoint) == "" {
		return fmt.Errorf("SUMMARY_ENDPOINT is required")
	}
	if c.MaxChunkChars < 1 {
		return fmt.Errorf("MAX_CHUNK_CHARS must be >= 1")
	}
	if c.SummaryMaxLen < 1 || c.SummaryMinLen < 1 {
		return fmt.Errorf("SUMMARY_MAX_LENGTH and SUMMARY_MIN_LENGTH must be >= 1")
	}
	if c.SummaryMinLen > c.SummaryMaxLen {
		return fmt.Errorf("SUMMARY_MIN_LENGTH (%d) cannot exceed SUMMARY_MAX_LENGTH (%d)", c.SummaryMinLen, c.SummaryMaxLen)
	}
	if c.SettleAttempts < 1 {
		return fmt.Errorf("SETTLE_ATTEMPTS must be >= 1")
	}
	if c.DatabaseURL != "" {
		if c.DBMinConns < 0 {
			return fmt.Errorf("YT_DB_MIN_CONNS must be >= 0")
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf("YT_DB_MAX_CONNS must be >= 1")
		}
		if c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("YT_DB_MIN_CONNS (%d) cannot exceed YT_DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
		}
	}
	return nil
}
