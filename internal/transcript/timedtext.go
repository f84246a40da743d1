package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TimedTextSource fetches captions from the public timed-text endpoint for a
// fixed caption language. The response shape is best effort, not a stable
// contract: missing fields yield an empty result, not an error.
type TimedTextSource struct {
	baseURL string
	lang    string
	client  *http.Client
}

func NewTimedTextSource(baseURL, lang string, client *http.Client) *TimedTextSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &TimedTextSource{baseURL: baseURL, lang: lang, client: client}
}

func (s *TimedTextSource) Name() string {
	return "timedtext"
}

type timedTextResponse struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// Fetch requests the caption track as json3 and flattens all segment text
// into one whitespace-collapsed string.
func (s *TimedTextSource) Fetch(ctx context.Context, videoID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("timedtext source is nil")
	}

	query := url.Values{}
	query.Set("v", videoID)
	query.Set("lang", s.lang)
	query.Set("fmt", "json3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build timedtext request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("timedtext status %d", resp.StatusCode)
	}

	var payload timedTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode timedtext response: %w", err)
	}

	fragments := make([]string, 0, len(payload.Events))
	for _, event := range payload.Events {
		for _, seg := range event.Segs {
			if seg.UTF8 != "" {
				fragments = append(fragments, seg.UTF8)
			}
		}
	}
	return collapseWhitespace(fragments), nil
}
