package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mnadalc/yt-translate-transcription/internal/cli"
	"github.com/mnadalc/yt-translate-transcription/internal/config"
	"github.com/mnadalc/yt-translate-transcription/internal/db"
	"github.com/mnadalc/yt-translate-transcription/internal/dom"
	"github.com/mnadalc/yt-translate-transcription/internal/enhancer"
	"github.com/mnadalc/yt-translate-transcription/internal/logging"
	"github.com/mnadalc/yt-translate-transcription/internal/prefs"
	"github.com/mnadalc/yt-translate-transcription/internal/transcript"
	"github.com/mnadalc/yt-translate-transcription/internal/translation"
)

// bootstrap loads the env file, configuration, and logger for a command.
func bootstrap(envLoader *cli.EnvLoader) (*config.Config, zerolog.Logger, error) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("initialize logger: %w", err)
	}

	return cfg, logger, nil
}

func buildExtractor(cfg *config.Config, logger zerolog.Logger) *transcript.Extractor {
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	timedText := transcript.NewTimedTextSource(cfg.TimedTextBaseURL, cfg.CaptionLanguage, client)
	scrape := transcript.NewScrapeSource(
		transcript.NewHTTPPageFetcher(cfg.WatchPageBaseURL, client),
		dom.NewLocator(),
		dom.NewWaiter(cfg.SettleDelay, cfg.SettleAttempts),
	)

	return transcript.NewExtractor(logger, timedText, scrape)
}

func buildTranslation(cfg *config.Config, logger zerolog.Logger) (*translation.Translator, *translation.Registry, error) {
	registry := translation.NewRegistryFromEnv(cfg.TranslateBaseURL)
	provider, err := registry.Provider("")
	if err != nil {
		return nil, nil, fmt.Errorf("resolve translation provider: %w", err)
	}
	return translation.NewTranslator(provider, cfg.MaxChunkChars, logger), registry, nil
}

func buildEnhancer(cfg *config.Config, logger zerolog.Logger) *enhancer.Client {
	return enhancer.New(enhancer.Options{
		Endpoint:  cfg.SummaryEndpoint,
		Token:     cfg.SummaryToken,
		MaxLength: cfg.SummaryMaxLen,
		MinLength: cfg.SummaryMinLen,
	}, logger)
}

// buildStore picks the preference backend: the database when DATABASE_URL is
// configured, process memory otherwise. The returned func releases the
// backend.
func buildStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (prefs.Store, func(), error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		logger.Debug().Msg("no database configured, using in-memory preference store")
		return prefs.NewMemoryStore(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return prefs.NewDBStore(pool), func() { _ = pool.Close() }, nil
}

// readTextArg resolves a positional text argument, reading stdin when the
// argument is "-".
func readTextArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
