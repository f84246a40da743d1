package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mnadalc/yt-translate-transcription/internal/cli"
	"github.com/mnadalc/yt-translate-transcription/internal/language"
)

// runPipeline chains the full flow: retrieve the transcript, translate it,
// and optionally summarize the translated text.
func runPipeline(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 5*time.Minute, "Command timeout")
	lang := fs.String("lang", "", "Target language (ISO 639-1); defaults to the configured target")
	summarize := fs.Bool("summarize", false, "Also produce a summary of the translated transcript")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "run requires one watch page URL argument")
		return 2
	}

	pageURL := strings.TrimSpace(fs.Arg(0))
	if pageURL == "" {
		fmt.Fprintln(os.Stderr, "watch page URL must not be empty")
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	targetLang := language.NormalizeCode(*lang)
	if targetLang == "" {
		targetLang = language.NormalizeCode(cfg.DefaultTargetLang)
	}
	if targetLang == "" {
		fmt.Fprintln(os.Stderr, "--lang is required and must be a valid language code")
		return 2
	}

	translator, _, err := buildTranslation(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	text, err := buildExtractor(cfg, logger).Extract(ctx, pageURL)
	if err != nil {
		logger.Error().Err(err).Str("url", pageURL).Msg("transcript retrieval failed")
		fmt.Fprintf(os.Stderr, "Failed to retrieve transcript: %v\n", err)
		return 1
	}

	translated, err := translator.Translate(ctx, text, targetLang)
	if err != nil {
		logger.Error().Err(err).Str("lang", targetLang).Msg("translation failed")
		fmt.Fprintf(os.Stderr, "Failed to translate: %v\n", err)
		return 1
	}

	fmt.Println(translated)

	if *summarize {
		summary, err := buildEnhancer(cfg, logger).Enhance(ctx, translated)
		if err != nil {
			logger.Error().Err(err).Msg("summarization failed")
			fmt.Fprintf(os.Stderr, "Failed to summarize: %v\n", err)
			return 1
		}
		fmt.Println()
		fmt.Println(summary)
	}

	return 0
}
