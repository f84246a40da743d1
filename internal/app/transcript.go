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
)

func runTranscript(args []string) int {
	fs := flag.NewFlagSet("transcript", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 2*time.Minute, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "transcript requires one watch page URL argument")
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

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	extractor := buildExtractor(cfg, logger)
	text, err := extractor.Extract(ctx, pageURL)
	if err != nil {
		logger.Error().Err(err).Str("url", pageURL).Msg("transcript retrieval failed")
		fmt.Fprintf(os.Stderr, "Failed to retrieve transcript: %v\n", err)
		return 1
	}

	fmt.Println(text)
	return 0
}
