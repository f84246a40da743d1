// Package enhancer produces an abstractive summary of a transcript through a
// hosted inference endpoint.
package enhancer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mnadalc/yt-translate-transcription/internal/globaltime"
)

var (
	// ErrRateLimited is returned on HTTP 429. The wrapped message carries a
	// retry hint parsed from the reset header when the endpoint sends one.
	ErrRateLimited = errors.New("summarization rate limit reached")
	// ErrModelLoading is returned on HTTP 503 while the hosted model warms up.
	ErrModelLoading = errors.New("summarization model is loading")
	// ErrUpstream is returned for any other non-success status.
	ErrUpstream = errors.New("summarization request failed")
)

// DefaultEndpoint is the hosted summarization model.
const DefaultEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

// Client calls a summarization endpoint with fixed generation parameters.
// Decoding is deterministic (do_sample=false) so repeated calls on the same
// text yield the same summary.
type Client struct {
	endpoint  string
	token     string
	maxLength int
	minLength int
	client    *http.Client
	logger    zerolog.Logger
}

type Options struct {
	Endpoint  string
	Token     string
	MaxLength int
	MinLength int
	Client    *http.Client
}

func New(opts Options, logger zerolog.Logger) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = 150
	}
	if opts.MinLength <= 0 {
		opts.MinLength = 40
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		endpoint:  opts.Endpoint,
		token:     opts.Token,
		maxLength: opts.MaxLength,
		minLength: opts.MinLength,
		client:    opts.Client,
		logger:    logger,
	}
}

type summaryRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters summaryParameters `json:"parameters"`
}

type summaryParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type summaryResult struct {
	SummaryText string `json:"summary_text"`
}

// Enhance summarizes text in one request. No automatic retry: rate limits and
// model warmup surface as typed errors and the caller decides what to do.
func (c *Client) Enhance(ctx context.Context, text string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("enhancer client is nil")
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text to summarize is empty")
	}

	payload, err := json.Marshal(summaryRequest{
		Inputs: text,
		Parameters: summaryParameters{
			MaxLength: c.maxLength,
			MinLength: c.minLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode summary request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build summary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call summarization endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read summary response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: %s", ErrRateLimited, retryHint(resp.Header.Get("x-ratelimit-reset")))
	case resp.StatusCode == http.StatusServiceUnavailable:
		return "", fmt.Errorf("%w: wait about 20 seconds and retry", ErrModelLoading)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var results []summaryResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("decode summary response: %w", err)
	}
	if len(results) == 0 || strings.TrimSpace(results[0].SummaryText) == "" {
		return "", fmt.Errorf("summary response has no summary text")
	}

	c.logger.Debug().
		Int("input_chars", len(text)).
		Int("summary_chars", len(results[0].SummaryText)).
		Msg("summary generated")

	return results[0].SummaryText, nil
}

// retryHint turns a unix-seconds rate-limit reset header into a human
// readable wait suggestion.
func retryHint(resetHeader string) string {
	resetHeader = strings.TrimSpace(resetHeader)
	if resetHeader == "" {
		return "retry later"
	}
	resetUnix, err := strconv.ParseInt(resetHeader, 10, 64)
	if err != nil {
		return "retry later"
	}
	wait := time.Unix(resetUnix, 0).Sub(globaltime.Now())
	if wait <= 0 {
		return "retry now"
	}
	return fmt.Sprintf("retry in about %s", wait.Round(time.Second))
}
