// Package transcript retrieves a video's full caption text from ordered
// sources: the public timed-text endpoint first, then a scrape of the
// rendered watch page.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrNotAvailable is returned when every source came up empty.
	ErrNotAvailable = errors.New("no transcript available for this video")
	// ErrMissingVideoID is returned when the watch page URL carries no "v"
	// query parameter.
	ErrMissingVideoID = errors.New("watch page URL is missing a video id")
)

// Strategy is one ordered transcript source. A source that finds nothing
// returns an empty string; errors are treated the same as empty results by
// the extractor.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, videoID string) (string, error)
}

// Extractor tries strategies in order and returns the first non-empty
// transcript. Source-local failures are demoted to empty results; only the
// exhaustion of all sources surfaces an error.
type Extractor struct {
	strategies []Strategy
	logger     zerolog.Logger
}

func NewExtractor(logger zerolog.Logger, strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies, logger: logger}
}

// Extract resolves the video id from pageURL and walks the source chain.
// Each source fully resolves before the next one starts.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	if e == nil {
		return "", fmt.Errorf("extractor is not initialized")
	}

	videoID, err := VideoID(pageURL)
	if err != nil {
		return "", err
	}

	for _, strategy := range e.strategies {
		text, err := strategy.Fetch(ctx, videoID)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("source", strategy.Name()).
				Str("video_id", videoID).
				Msg("transcript source failed, trying next")
			continue
		}
		if text != "" {
			e.logger.Debug().
				Str("source", strategy.Name()).
				Str("video_id", videoID).
				Int("chars", len(text)).
				Msg("transcript retrieved")
			return text, nil
		}
	}

	return "", ErrNotAvailable
}

// VideoID extracts the "v" query parameter from a watch page URL.
func VideoID(pageURL string) (string, error) {
	trimmed := strings.TrimSpace(pageURL)
	if trimmed == "" {
		return "", ErrMissingVideoID
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", ErrMissingVideoID
	}
	videoID := strings.TrimSpace(parsed.Query().Get("v"))
	if videoID == "" {
		return "", ErrMissingVideoID
	}
	return videoID, nil
}

// collapseWhitespace joins text fragments with single spaces, collapsing
// internal whitespace and newlines.
func collapseWhitespace(fragments []string) string {
	joined := strings.Join(fragments, " ")
	return strings.Join(strings.Fields(joined), " ")
}
