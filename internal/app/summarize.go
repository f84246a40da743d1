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
	"github.com/mnadalc/yt-translate-transcription/internal/reader"
)

// maxSummaryInputChars bounds what is sent to the summarization endpoint.
const maxSummaryInputChars = 4000

func runSummarize(args []string) int {
	fs := flag.NewFlagSet("summarize", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 3*time.Minute, "Command timeout")
	articleURL := fs.String("url", "", "Summarize the readable text of this article URL instead of an argument")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	fromURL := strings.TrimSpace(*articleURL) != ""
	if fromURL && fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "summarize takes either --url or a text argument, not both")
		return 2
	}
	if !fromURL && fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "summarize requires one text argument (\"-\" reads stdin) or --url")
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var text string
	if fromURL {
		text, err = reader.FetchText(ctx, strings.TrimSpace(*articleURL), "")
		if err != nil {
			logger.Error().Err(err).Str("url", *articleURL).Msg("article fetch failed")
			fmt.Fprintf(os.Stderr, "Failed to fetch article: %v\n", err)
			return 1
		}
	} else {
		text, err = readTextArg(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "text to summarize must not be empty")
		return 2
	}

	// Hosted summarization models reject very long inputs.
	if clipped, truncated := reader.TruncateText(text, maxSummaryInputChars); truncated {
		logger.Debug().Int("max_chars", maxSummaryInputChars).Msg("summary input truncated")
		text = clipped
	}

	summary, err := buildEnhancer(cfg, logger).Enhance(ctx, text)
	if err != nil {
		logger.Error().Err(err).Msg("summarization failed")
		fmt.Fprintf(os.Stderr, "Failed to summarize: %v\n", err)
		return 1
	}

	fmt.Println(summary)
	return 0
}
